// Package adapter contains ingestion and infrastructure adapters for the
// verdict CLI: the runner event stream decoder, the runner executor, test
// file discovery, report persistence, and config-backed display names.
package adapter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	m "github.com/verdict-dev/verdict/internal/model"
)

// maxEventLine bounds a single event-stream line. Stack traces can get long
// but anything past this is a malformed stream.
const maxEventLine = 1024 * 1024

// eventRecord is the wire shape of one line of the runner's event stream.
type eventRecord struct {
	Event   string         `json:"event"`
	ID      string         `json:"id"`
	Class   string         `json:"class"`
	Method  string         `json:"method"`
	DataSet *dataSetRecord `json:"dataSet"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Trace   string         `json:"trace"`
}

// dataSetRecord carries either an integer index or a string name for a
// data-provider invocation. Index is a pointer so that index 0 is
// distinguishable from "no index".
type dataSetRecord struct {
	Index *int   `json:"index"`
	Name  string `json:"name"`
}

// ReadEvents decodes a JSON-lines event stream into model events.
// Blank lines are ignored; a malformed line aborts the whole read with an
// error naming the offending line.
func ReadEvents(r io.Reader) ([]m.Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLine)

	var events []m.Event

	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var record eventRecord
		if err := json.Unmarshal([]byte(text), &record); err != nil {
			return nil, fmt.Errorf("decode event stream line %d: %w", line, err)
		}

		events = append(events, record.toEvent())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read event stream: %w", err)
	}

	return events, nil
}

func (r eventRecord) toEvent() m.Event {
	event := m.Event{
		Kind: m.EventKind(r.Event),
		Identity: m.Identity{
			ID:     r.ID,
			Case:   r.Class,
			Method: r.Method,
		},
		Status: r.Status,
	}

	if r.DataSet != nil {
		dataSet := &m.DataSet{Name: r.DataSet.Name}
		if r.DataSet.Index != nil {
			dataSet.Index = *r.DataSet.Index
			dataSet.Indexed = true
		}

		event.Identity.DataSet = dataSet
	}

	if r.Message != "" || r.Trace != "" {
		event.Detail = &m.FailureDetail{Message: r.Message, Trace: r.Trace}
	}

	return event
}

// KindForStatus maps a runner status label onto an outcome kind. Unknown
// labels fall through to Passed, mirroring the normalizer's default arm.
func KindForStatus(status string) m.OutcomeKind {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "failed", "failure", "error":
		return m.Failed
	case "skipped":
		return m.Skipped
	case "incomplete":
		return m.Incomplete
	case "risky":
		return m.Risky
	case "deprecated":
		return m.Deprecated
	case "warning":
		return m.Warning
	case "running", "pending":
		return m.Running
	default:
		return m.Passed
	}
}
