package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/verdict-dev/verdict/internal/adapter"
	"github.com/verdict-dev/verdict/internal/controller"
	m "github.com/verdict-dev/verdict/internal/model"
	"github.com/verdict-dev/verdict/pkg"
	"golang.org/x/sync/errgroup"
)

// ErrTestsFailed marks a run whose summary contains failed tests. The CLI
// maps it to a non-zero exit code without printing a second error.
var ErrTestsFailed = errors.New("tests failed")

// RunArgs holds the parameters for one test run.
type RunArgs struct {
	Paths      []m.Path
	Exclude    []string
	TestSuffix string
	WorkDir    string
	Workers    int
	Reports    m.Path
}

// ViewArgs holds the parameters for viewing a stored report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow orchestrates discovery, execution, normalization and display.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.RunnerAdapter
	adapter.ReportStore
	controller.UI

	names *NameTable
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	runner adapter.RunnerAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	names *NameTable,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		RunnerAdapter:   runner,
		ReportStore:     reportStore,
		UI:              ui,
		names:           names,
	}
}

// Run executes the configured runner over every discovered test file,
// normalizes each outcome event and streams the results to the UI.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	files, err := w.CollectTestFiles(args.Paths, args.TestSuffix, args.Exclude)
	if err != nil {
		slog.Error("failed to collect test files", "error", err)
		return fmt.Errorf("collect test files: %w", err)
	}

	workers := args.Workers
	if workers < 1 {
		workers = 1
	}

	slog.Info("starting run", "files", len(files), "workers", workers)
	w.DisplayRunInfo(ctx, len(files), workers)

	resultLog, err := pkg.NewDiskLog[m.Result]("", "verdict-results-*.gob")
	if err != nil {
		return fmt.Errorf("create result log: %w", err)
	}
	defer func() { _ = resultLog.Close() }()

	summary, err := w.runFiles(ctx, args, files, workers, resultLog)
	if err != nil {
		return err
	}

	if err := w.DisplaySummary(ctx, summary); err != nil {
		slog.Error("failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if err := w.saveReport(args.Reports, summary, resultLog); err != nil {
		slog.Error("failed to save report", "error", err)
		return err
	}

	// Wait for the UI to be closed by the user (press 'q').
	w.Wait(ctx)

	if summary.Failures() > 0 {
		return fmt.Errorf("%d of %d: %w", summary.Failures(), summary.Total, ErrTestsFailed)
	}

	return nil
}

func (w *workflow) runFiles(
	ctx context.Context,
	args RunArgs,
	files []m.Path,
	workers int,
	resultLog pkg.DiskLog[m.Result],
) (m.Summary, error) {
	builder := NewSummaryBuilder()
	results := make(chan m.Result)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	collectorDone := make(chan error, 1)

	go func() {
		collectorDone <- w.collectResults(ctx, results, builder, resultLog)
	}()

	for _, file := range files {
		group.Go(func() error {
			return w.runFile(groupCtx, args, file, results)
		})
	}

	runErr := group.Wait()
	close(results)

	collectErr := <-collectorDone

	if runErr != nil {
		return m.Summary{}, runErr
	}

	if collectErr != nil {
		return m.Summary{}, collectErr
	}

	return builder.Build(), nil
}

func (w *workflow) runFile(ctx context.Context, args RunArgs, file m.Path, results chan<- m.Result) error {
	started := time.Now()

	output, err := w.RunTests(ctx, args.WorkDir, string(file))
	if err != nil {
		return err
	}

	slog.Debug("runner finished", "file", file, "took", time.Since(started))

	events, err := adapter.ReadEvents(strings.NewReader(output))
	if err != nil {
		return fmt.Errorf("parse events from %s: %w", file, err)
	}

	for _, event := range events {
		if event.Kind != m.EventTest {
			continue
		}

		result, err := w.normalizeEvent(event)
		if err != nil {
			return err
		}

		select {
		case results <- result:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// normalizeEvent maps one raw test event onto its display record, applying
// any configured name override for the event's case.
func (w *workflow) normalizeEvent(event m.Event) (m.Result, error) {
	kind := adapter.KindForStatus(event.Status)

	var opts []NormalizeOption
	if provider, ok := w.names.Provider(event.Identity); ok {
		opts = append(opts, WithNameProvider(provider))
	}

	return Normalize(event.Identity, kind, event.Detail, opts...)
}

func (w *workflow) collectResults(
	ctx context.Context,
	results <-chan m.Result,
	builder *SummaryBuilder,
	resultLog pkg.DiskLog[m.Result],
) error {
	var firstErr error

	// Keep draining after an error so blocked producers can finish.
	for result := range results {
		if firstErr != nil {
			continue
		}

		if err := resultLog.Append(result); err != nil {
			firstErr = err
			continue
		}

		builder.Add(result.Kind)
		w.DisplayResult(ctx, result)
	}

	return firstErr
}

func (w *workflow) saveReport(dir m.Path, summary m.Summary, resultLog pkg.DiskLog[m.Result]) error {
	report := m.Report{
		CreatedAt: time.Now(),
		Summary:   summary,
		Results:   make([]m.Result, 0, resultLog.Len()),
	}

	err := resultLog.Range(func(_ uint64, result m.Result) error {
		report.Results = append(report.Results, result)
		return nil
	})
	if err != nil {
		return fmt.Errorf("replay results: %w", err)
	}

	if err := w.SaveReport(dir, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("saved report", "dir", dir, "results", len(report.Results))

	return nil
}

// View loads a stored report and replays it through the UI.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	report, err := w.LoadReport(args.Reports)
	if err != nil {
		slog.Error("failed to load report", "dir", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	for _, result := range report.Results {
		w.DisplayResult(ctx, result)
	}

	if err := w.DisplaySummary(ctx, report.Summary); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}
