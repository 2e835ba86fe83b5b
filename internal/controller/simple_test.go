package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "github.com/verdict-dev/verdict/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayResult(t *testing.T) {
	tests := []struct {
		name         string
		result       m.Result
		wantContains []string
	}{
		{
			name: "passed line",
			result: m.Result{
				CaseName:    "AuthTest",
				Description: "user can login",
				Kind:        m.Passed,
				Icon:        "✓",
				Color:       m.ColorGreen,
			},
			wantContains: []string{"✓", "user can login", "AuthTest"},
		},
		{
			name: "failed line",
			result: m.Result{
				Description: "lockout",
				Kind:        m.Failed,
				Icon:        "⨯",
				Color:       m.ColorRed,
			},
			wantContains: []string{"⨯", "lockout"},
		},
		{
			name: "skipped line with warning text",
			result: m.Result{
				Description: "add item",
				Kind:        m.Skipped,
				Icon:        "-",
				Color:       m.ColorYellow,
				WarningText: "requires redis",
			},
			wantContains: []string{"- add item", "requires redis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedUI()

			ui.DisplayResult(context.Background(), tt.result)

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newBufferedUI()

	summary := m.Summary{
		Counts: map[m.OutcomeKind]int{
			m.Passed:  5,
			m.Failed:  2,
			m.Skipped: 1,
		},
		Total: 8,
	}

	require.NoError(t, ui.DisplaySummary(context.Background(), summary))

	got := buf.String()
	assert.Contains(t, got, "passed")
	assert.Contains(t, got, "failed")
	assert.Contains(t, got, "skipped")
	assert.Contains(t, got, "8")
	assert.Contains(t, got, "2 test(s) failed")
}

func TestSimpleUI_DisplaySummary_NoFailures(t *testing.T) {
	ui, buf := newBufferedUI()

	summary := m.Summary{
		Counts: map[m.OutcomeKind]int{m.Passed: 3},
		Total:  3,
	}

	require.NoError(t, ui.DisplaySummary(context.Background(), summary))
	assert.NotContains(t, buf.String(), "failed")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newBufferedUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayResult(ctx, m.Result{Description: "ignored"})
	require.Error(t, ui.DisplaySummary(ctx, m.Summary{}))
	assert.Empty(t, buf.String())
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, redStyle, styleFor(m.ColorRed))
	assert.Equal(t, yellowStyle, styleFor(m.ColorYellow))
	assert.Equal(t, greenStyle, styleFor(m.ColorGreen))
}
