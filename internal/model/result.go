package model

import "time"

// Color is the display color tag of a normalized result.
type Color int

// The closed palette used by renderers.
const (
	ColorGreen Color = iota
	ColorYellow
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Result is a normalized, display-ready record for one test outcome.
// It is constructed once per raw outcome event and never mutated.
type Result struct {
	ID          string      `yaml:"id"`
	CaseName    string      `yaml:"case"`
	Description string      `yaml:"description"`
	Kind        OutcomeKind `yaml:"kind"`
	Icon        string      `yaml:"icon"`
	Color       Color       `yaml:"color"`
	WarningText string      `yaml:"warning,omitempty"`
}

// Summary aggregates result counts for one run.
type Summary struct {
	Counts   map[OutcomeKind]int `yaml:"counts"`
	Total    int                 `yaml:"total"`
	Duration time.Duration       `yaml:"duration"`
}

// Failures reports how many results ended in the Failed kind.
func (s Summary) Failures() int {
	return s.Counts[Failed]
}

// Report is the persisted form of one completed run.
type Report struct {
	CreatedAt time.Time `yaml:"created_at"`
	Summary   Summary   `yaml:"summary"`
	Results   []Result  `yaml:"results"`
}
