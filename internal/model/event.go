package model

// Path represents a file system path.
type Path string

// EventKind distinguishes the granularity of a raw runner event.
type EventKind string

const (
	// EventTest is an outcome event for an individual test method.
	EventTest EventKind = "test"
	// EventSuite is a suite or group level event (start/end of a case class).
	EventSuite EventKind = "suite"
)

// DataSet identifies one data-provider invocation of a parameterized test.
// A set is keyed either by a string name or by an integer index.
type DataSet struct {
	Name    string
	Index   int
	Indexed bool
}

// Identity identifies one raw test invocation as reported by the runner.
type Identity struct {
	ID      string // stable identifier, e.g. "App\Tests\AuthTest::testUserCanLogin"
	Case    string // declaring test case class
	Method  string // test method name; empty for suite-level events
	DataSet *DataSet
}

// FailureDetail carries the diagnostic payload of a non-passing outcome.
type FailureDetail struct {
	Message string
	Trace   string
}

// Event is one decoded entry of a runner's event stream.
type Event struct {
	Kind     EventKind
	Identity Identity
	Status   string // raw status label as emitted by the runner
	Detail   *FailureDetail
}
