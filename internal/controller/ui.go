// Package controller provides the presentation layer for verdict: a plain
// line-oriented UI and an interactive TUI, selected by terminal detection.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	m "github.com/verdict-dev/verdict/internal/model"
	"golang.org/x/term"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeView
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to live run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to stored-report view mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI is the rendering contract consumed by the workflow. Implementations
// receive normalized results as they arrive and the summary at the end.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for the UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, files int, workers int)
	DisplayResult(ctx context.Context, result m.Result)
	DisplaySummary(ctx context.Context, summary m.Summary) error
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// NewUI selects the TUI on an interactive terminal and the simple
// line-oriented UI everywhere else.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
