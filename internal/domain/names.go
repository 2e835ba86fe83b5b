package domain

import (
	m "github.com/verdict-dev/verdict/internal/model"
)

// CaseNames is the configured display-name override for one test case class.
type CaseNames struct {
	Case    string            `mapstructure:"case"`
	Methods map[string]string `mapstructure:"methods"`
}

// NameTable resolves configured display names into the PrintableNameProvider
// capability. The table is built at the CLI boundary from configuration; the
// normalizer itself never inspects configuration or types.
type NameTable struct {
	cases map[string]CaseNames
}

// NewNameTable builds a NameTable keyed by test case class.
func NewNameTable(cases map[string]CaseNames) *NameTable {
	return &NameTable{cases: cases}
}

// Provider returns the name provider for the given identity, or false when
// the identity's case has no configured override.
func (t *NameTable) Provider(identity m.Identity) (PrintableNameProvider, bool) {
	if t == nil {
		return nil, false
	}

	entry, ok := t.cases[identity.Case]
	if !ok {
		return nil, false
	}

	return boundNames{identity: identity, entry: entry}, true
}

// boundNames adapts one NameTable entry to a specific identity.
type boundNames struct {
	identity m.Identity
	entry    CaseNames
}

func (b boundNames) CaseName() string {
	if b.entry.Case != "" {
		return b.entry.Case
	}

	return b.identity.Case
}

func (b boundNames) CaseMethodName() string {
	if name, ok := b.entry.Methods[b.identity.Method]; ok {
		return name
	}

	// No per-method override: render the default description so a partial
	// table still yields a usable line.
	return Describe(b.identity.Method, b.identity.DataSet)
}
