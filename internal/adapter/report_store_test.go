package adapter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "github.com/verdict-dev/verdict/internal/model"
)

func TestReportStore_RoundTrip(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewReportStore()

	report := m.Report{
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Summary: m.Summary{
			Counts: map[m.OutcomeKind]int{
				m.Passed: 2,
				m.Failed: 1,
			},
			Total:    3,
			Duration: 1500 * time.Millisecond,
		},
		Results: []m.Result{
			{
				ID:          "AuthTest::testUserCanLogin",
				CaseName:    "AuthTest",
				Description: "user can login",
				Kind:        m.Passed,
				Icon:        "✓",
				Color:       m.ColorGreen,
			},
			{
				ID:          "AuthTest::testLockout",
				CaseName:    "AuthTest",
				Description: "lockout",
				Kind:        m.Failed,
				Icon:        "⨯",
				Color:       m.ColorRed,
			},
		},
	}

	require.NoError(t, store.SaveReport(dir, report))

	loaded, err := store.LoadReport(dir)
	require.NoError(t, err)

	assert.Equal(t, report.Summary, loaded.Summary)
	assert.Equal(t, report.Results, loaded.Results)
	assert.True(t, report.CreatedAt.Equal(loaded.CreatedAt))
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReport(m.Path(filepath.Join(t.TempDir(), "absent")))
	require.Error(t, err)
}
