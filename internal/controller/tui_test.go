package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "github.com/verdict-dev/verdict/internal/model"
)

func updateModel(t *testing.T, model tea.Model, msg tea.Msg) runModel {
	t.Helper()

	updated, _ := model.Update(msg)

	rm, ok := updated.(runModel)
	require.True(t, ok)

	return rm
}

func TestRunModel_ResultsAccumulate(t *testing.T) {
	rm := newRunModel(ModeRun)

	rm = updateModel(t, rm, runInfoMsg{files: 2, workers: 1})
	rm = updateModel(t, rm, resultMsg{result: m.Result{Description: "user can login", Icon: "✓"}})
	rm = updateModel(t, rm, resultMsg{result: m.Result{Description: "lockout", Icon: "⨯", Color: m.ColorRed}})

	view := rm.View()
	assert.Contains(t, view, "Running 2 test file(s) with 1 worker(s)")
	assert.Contains(t, view, "user can login")
	assert.Contains(t, view, "lockout")
	assert.Contains(t, view, "running...")
}

func TestRunModel_SummaryEndsSpinner(t *testing.T) {
	rm := newRunModel(ModeRun)

	rm = updateModel(t, rm, resultMsg{result: m.Result{Description: "user can login"}})
	rm = updateModel(t, rm, summaryMsg{summary: m.Summary{
		Counts: map[m.OutcomeKind]int{m.Passed: 1},
		Total:  1,
	}})

	view := rm.View()
	assert.NotContains(t, view, "running...")
	assert.Contains(t, view, "passed")
	assert.Contains(t, view, "q: quit")
}

func TestRunModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			rm := newRunModel(ModeView)

			var msg tea.KeyMsg

			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := rm.Update(msg)
			require.NotNil(t, cmd)
			assert.True(t, updated.(runModel).quitting)
		})
	}
}

func TestRunModel_Scrolling(t *testing.T) {
	rm := newRunModel(ModeView)
	rm.height = 14 // 4 visible lines after reserved space

	for i := 0; i < 10; i++ {
		rm = updateModel(t, rm, resultMsg{result: m.Result{Description: "result"}})
	}

	// Follow mode keeps the window pinned to the tail.
	assert.Equal(t, rm.maxOffset(), rm.offset)

	rm = updateModel(t, rm, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.False(t, rm.follow)
	assert.Equal(t, rm.maxOffset()-1, rm.offset)

	rm = updateModel(t, rm, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, rm.offset)

	rm = updateModel(t, rm, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, rm.maxOffset(), rm.offset)
	assert.True(t, rm.follow)

	view := rm.View()
	assert.Contains(t, view, "Showing")
}

func TestRunModel_EmptyView(t *testing.T) {
	rm := newRunModel(ModeView)

	assert.Contains(t, rm.View(), "no results yet")
}

func TestRunModel_WindowSize(t *testing.T) {
	rm := newRunModel(ModeRun)
	rm = updateModel(t, rm, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 24, rm.height)
	assert.Equal(t, 80, rm.width)
	assert.Equal(t, 14, rm.itemsPerPage())
}
