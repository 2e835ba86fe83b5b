// Package model defines the data structures for test outcome reporting.
package model

// OutcomeKind represents the category of a single test outcome.
type OutcomeKind int

const (
	// Passed indicates the test completed successfully.
	Passed OutcomeKind = iota
	// Failed indicates the test failed an assertion or errored.
	Failed
	// Skipped indicates the test was skipped.
	Skipped
	// Incomplete indicates the test was marked incomplete.
	Incomplete
	// Risky indicates the test was flagged as risky by the runner.
	Risky
	// Deprecated indicates the test triggered a deprecation.
	Deprecated
	// Warning indicates the test emitted a warning.
	Warning
	// Running indicates the test is still executing (pending outcome).
	Running
)

func (k OutcomeKind) String() string {
	switch k {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	case Incomplete:
		return "incomplete"
	case Risky:
		return "risky"
	case Deprecated:
		return "deprecated"
	case Warning:
		return "warning"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}
