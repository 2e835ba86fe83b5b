package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	m "github.com/verdict-dev/verdict/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background. Results and the
// summary are streamed to it as messages.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	model := newRunModel(cfg.mode)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	p.program = tea.NewProgram(model, tea.WithOutput(p.output))
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		_, _ = p.program.Run()
	}()

	return nil
}

// Close asks the program to quit.
func (p *TUI) Close(ctx context.Context) {
	if p.program == nil {
		return
	}

	if err := ctx.Err(); err != nil {
		p.program.Kill()
		return
	}

	p.program.Quit()
}

// Wait blocks until the user closes the TUI or the context is cancelled.
func (p *TUI) Wait(ctx context.Context) {
	if p.program == nil {
		return
	}

	select {
	case <-p.done:
	case <-ctx.Done():
		p.program.Kill()
	}
}

// DisplayRunInfo shows the run parameters.
func (p *TUI) DisplayRunInfo(ctx context.Context, files int, workers int) {
	if p.program == nil || ctx.Err() != nil {
		return
	}

	p.program.Send(runInfoMsg{files: files, workers: workers})
}

// DisplayResult adds one normalized result line to the live list.
func (p *TUI) DisplayResult(ctx context.Context, result m.Result) {
	if p.program == nil || ctx.Err() != nil {
		return
	}

	p.program.Send(resultMsg{result: result})
}

// DisplaySummary marks the run as finished and shows the summary block.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if p.program == nil {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p.program.Send(summaryMsg{summary: summary})

	return nil
}

type runInfoMsg struct {
	files   int
	workers int
}

type resultMsg struct {
	result m.Result
}

type summaryMsg struct {
	summary m.Summary
}

// runModel is the Bubble Tea model for live result display.
type runModel struct {
	mode     StartMode
	spin     spinner.Model
	info     string
	lines    []string
	summary  *m.Summary
	height   int
	width    int
	offset   int // Current scroll offset
	follow   bool
	quitting bool
}

func newRunModel(mode StartMode) runModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = yellowStyle

	return runModel{
		mode:   mode,
		spin:   spin,
		follow: true, // stick to the newest results until the user scrolls
	}
}

func (rm runModel) Init() tea.Cmd {
	if rm.mode == ModeRun {
		return rm.spin.Tick
	}

	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.height = msg.Height
		rm.width = msg.Width

		return rm, nil

	case runInfoMsg:
		rm.info = fmt.Sprintf("Running %d test file(s) with %d worker(s)", msg.files, msg.workers)

		return rm, nil

	case resultMsg:
		rm.lines = append(rm.lines, FormatResult(msg.result))
		if rm.follow {
			rm.offset = rm.maxOffset()
		}

		return rm, nil

	case summaryMsg:
		summary := msg.summary
		rm.summary = &summary

		return rm, nil

	case spinner.TickMsg:
		if rm.summary != nil {
			return rm, nil
		}

		var cmd tea.Cmd
		rm.spin, cmd = rm.spin.Update(msg)

		return rm, cmd

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)
	}

	return rm, nil
}

func (rm runModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rm.quitting = true
		return rm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		rm.quitting = true
		return rm, tea.Quit

	case "down", "j":
		rm.follow = false
		rm.offset++

		maxOffset := rm.maxOffset()
		if rm.offset >= maxOffset {
			rm.offset = maxOffset
			rm.follow = true
		}

		return rm, nil

	case "up", "k":
		rm.follow = false

		rm.offset--
		if rm.offset < 0 {
			rm.offset = 0
		}

		return rm, nil

	case "g", "home":
		rm.follow = false
		rm.offset = 0

		return rm, nil

	case "G", "end":
		rm.follow = true
		rm.offset = rm.maxOffset()

		return rm, nil
	}

	return rm, nil
}

// itemsPerPage calculates how many result lines fit on screen.
func (rm runModel) itemsPerPage() int {
	if rm.height == 0 {
		return 10 // Default
	}

	// Reserve space for the info line, spinner/summary block and footer.
	reserved := 10

	available := rm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (rm runModel) maxOffset() int {
	maxOff := len(rm.lines) - rm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (rm runModel) View() string {
	var b strings.Builder

	if rm.info != "" {
		fmt.Fprintf(&b, "  %s\n\n", rm.info)
	}

	rm.renderLines(&b)

	if rm.summary == nil {
		if rm.mode == ModeRun {
			fmt.Fprintf(&b, "\n  %s running...\n", rm.spin.View())
		}
	} else {
		b.WriteString("\n")
		b.WriteString(renderSummaryTable(*rm.summary))

		if failures := rm.summary.Failures(); failures > 0 {
			fmt.Fprintf(&b, "%s\n", redStyle.Render(fmt.Sprintf("%d test(s) failed", failures)))
		}

		b.WriteString("\n  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}

func (rm runModel) renderLines(b *strings.Builder) {
	total := len(rm.lines)
	if total == 0 {
		b.WriteString("  no results yet\n")
		return
	}

	perPage := rm.itemsPerPage()

	start := rm.offset
	if start > total-1 {
		start = total - 1
	}

	if start < 0 {
		start = 0
	}

	end := start + perPage
	if end > total {
		end = total
	}

	for _, line := range rm.lines[start:end] {
		fmt.Fprintf(b, "  %s\n", line)
	}

	if total > perPage {
		fmt.Fprintf(b, "\n  Showing %d-%d of %d\n", start+1, end, total)
	}
}
