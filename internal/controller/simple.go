package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "github.com/verdict-dev/verdict/internal/model"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// styleFor maps a result color tag onto its terminal style.
func styleFor(color m.Color) lipgloss.Style {
	switch color {
	case m.ColorRed:
		return redStyle
	case m.ColorYellow:
		return yellowStyle
	default:
		return greenStyle
	}
}

// SimpleUI implements UI using cobra Command's output, one line per result.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayRunInfo shows the run parameters.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, files int, workers int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d test file(s) with %d worker(s)\n", files, workers)
}

// DisplayResult prints one normalized result line.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", FormatResult(result))
}

// DisplaySummary renders the per-kind counts as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	if failures := summary.Failures(); failures > 0 {
		s.printf("%s\n", redStyle.Render(fmt.Sprintf("%d test(s) failed", failures)))
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// FormatResult renders one result as a colored display line.
func FormatResult(result m.Result) string {
	style := styleFor(result.Color)
	line := style.Render(fmt.Sprintf("%s %s", result.Icon, result.Description))

	if result.CaseName != "" {
		line += dimStyle.Render(fmt.Sprintf(" (%s)", result.CaseName))
	}

	if result.WarningText != "" {
		line += "\n" + dimStyle.Render(fmt.Sprintf("    %s", result.WarningText))
	}

	return line
}

func renderSummaryTable(summary m.Summary) string {
	kinds := make([]m.OutcomeKind, 0, len(summary.Counts))
	for kind := range summary.Counts {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, kind := range kinds {
		table.Append([]string{kind.String(), fmt.Sprintf("%d", summary.Counts[kind])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total)})
	table.Render()

	return tableBuffer.String()
}
