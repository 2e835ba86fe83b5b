package domain

import (
	"time"

	m "github.com/verdict-dev/verdict/internal/model"
)

// SummaryBuilder accumulates per-kind counts while results stream in.
// It is not safe for concurrent use; the workflow feeds it from a single
// collector goroutine.
type SummaryBuilder struct {
	counts  map[m.OutcomeKind]int
	total   int
	started time.Time
}

// NewSummaryBuilder starts a summary; the run duration is measured from now.
func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{
		counts:  make(map[m.OutcomeKind]int),
		started: time.Now(),
	}
}

// Add counts one result.
func (b *SummaryBuilder) Add(kind m.OutcomeKind) {
	b.counts[kind]++
	b.total++
}

// Build finalizes the summary.
func (b *SummaryBuilder) Build() m.Summary {
	return m.Summary{
		Counts:   b.counts,
		Total:    b.total,
		Duration: time.Since(b.started),
	}
}
