// Package domain implements outcome normalization and the run workflow.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	m "github.com/verdict-dev/verdict/internal/model"
)

// ErrUnsupportedIdentity is returned when an identity does not reference an
// individual test method (e.g. a suite-level event). Hitting it means the
// upstream adapter fed the normalizer something it never should.
var ErrUnsupportedIdentity = errors.New("identity does not reference an individual test method")

// PrintableNameProvider lets a test case supply its own display names,
// overriding the default humanization pipeline entirely.
type PrintableNameProvider interface {
	// CaseName returns the display name for the containing test case.
	CaseName() string
	// CaseMethodName returns the display description for the test method.
	CaseMethodName() string
}

// NormalizeOption configures a single Normalize call.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	names PrintableNameProvider
}

// WithNameProvider attaches a custom name provider. When present it is
// authoritative for both the case name and the method description.
func WithNameProvider(p PrintableNameProvider) NormalizeOption {
	return func(c *normalizeConfig) {
		c.names = p
	}
}

// Normalize maps one raw outcome event onto a display-ready Result.
// It is pure: all inputs are read-only and the Result is freshly allocated.
// The only failure mode is ErrUnsupportedIdentity for identities that do not
// name a concrete test method.
func Normalize(identity m.Identity, kind m.OutcomeKind, detail *m.FailureDetail, opts ...NormalizeOption) (m.Result, error) {
	if identity.Method == "" {
		return m.Result{}, fmt.Errorf("normalize %q: %w", identity.ID, ErrUnsupportedIdentity)
	}

	var cfg normalizeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	caseName := identity.Case
	description := Describe(identity.Method, identity.DataSet)

	if cfg.names != nil {
		caseName = cfg.names.CaseName()
		description = cfg.names.CaseMethodName()
	}

	return m.Result{
		ID:          identity.ID,
		CaseName:    caseName,
		Description: description,
		Kind:        kind,
		Icon:        IconFor(kind),
		Color:       ColorFor(kind),
		WarningText: warningText(kind, detail),
	}, nil
}

// Describe renders a method name as a humanized description, with the
// data-set suffix appended for parameterized invocations.
func Describe(method string, dataSet *m.DataSet) string {
	return Humanize(method) + dataSetSuffix(dataSet)
}

// Humanize turns a test method name into a lower-case, space-separated
// phrase: underscores become spaces, camelCase words are split, and a
// literal leading "test" is stripped.
func Humanize(method string) string {
	s := strings.ReplaceAll(method, "_", " ")

	var b strings.Builder

	b.Grow(len(s) + len(s)/4)

	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}

		b.WriteRune(r)
	}

	s = strings.TrimPrefix(b.String(), "test")
	s = strings.TrimSpace(s)

	return strings.ToLower(s)
}

func dataSetSuffix(dataSet *m.DataSet) string {
	if dataSet == nil {
		return ""
	}

	if dataSet.Name != "" {
		return fmt.Sprintf(" with data set %q", dataSet.Name)
	}

	if dataSet.Indexed {
		return fmt.Sprintf(" with data set #%d", dataSet.Index)
	}

	return ""
}

// IconFor returns the single-glyph indicator for an outcome kind.
func IconFor(kind m.OutcomeKind) string {
	switch kind {
	case m.Deprecated:
		return "d"
	case m.Failed:
		return "⨯"
	case m.Skipped:
		return "-"
	case m.Warning, m.Risky:
		return "!"
	case m.Incomplete:
		return "…"
	case m.Running:
		return "•"
	default:
		// Unknown kinds deliberately render as passed; see the color table.
		return "✓"
	}
}

// ColorFor returns the display color for an outcome kind.
func ColorFor(kind m.OutcomeKind) m.Color {
	switch kind {
	case m.Failed:
		return m.ColorRed
	case m.Deprecated, m.Skipped, m.Incomplete, m.Risky, m.Warning, m.Running:
		return m.ColorYellow
	default:
		return m.ColorGreen
	}
}

var lineBreakReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// warningText extracts the collapsed diagnostic message for kinds that
// surface it inline. Passed and Failed never carry warning text.
func warningText(kind m.OutcomeKind, detail *m.FailureDetail) string {
	if detail == nil {
		return ""
	}

	switch kind {
	case m.Warning, m.Risky, m.Skipped, m.Deprecated, m.Incomplete:
		return strings.TrimSpace(lineBreakReplacer.Replace(detail.Message))
	default:
		return ""
	}
}
