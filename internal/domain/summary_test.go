package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	m "github.com/verdict-dev/verdict/internal/model"
)

func TestSummaryBuilder(t *testing.T) {
	builder := NewSummaryBuilder()

	builder.Add(m.Passed)
	builder.Add(m.Passed)
	builder.Add(m.Failed)
	builder.Add(m.Skipped)

	summary := builder.Build()

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Counts[m.Passed])
	assert.Equal(t, 1, summary.Counts[m.Failed])
	assert.Equal(t, 1, summary.Counts[m.Skipped])
	assert.Equal(t, 1, summary.Failures())
	assert.GreaterOrEqual(t, summary.Duration, time.Duration(0))
}

func TestSummaryBuilder_Empty(t *testing.T) {
	summary := NewSummaryBuilder().Build()

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Failures())
	assert.Empty(t, summary.Counts)
}
