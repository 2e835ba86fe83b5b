package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "github.com/verdict-dev/verdict/internal/model"
)

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"tests"}, []m.Path{m.Path("tests")}},
		{
			"multiple",
			[]string{"tests/unit", "tests/integration"},
			[]m.Path{m.Path("tests/unit"), m.Path("tests/integration")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseRootCmd(t *testing.T) {
	cmd := baseRootCmd()
	assert.Equal(t, "verdict", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	help := output.String()
	assert.Contains(t, help, "verdict")
	assert.Contains(t, help, "--output")
	assert.Contains(t, help, "--exclude")
}

func TestLoadNameTable_EmptyConfig(t *testing.T) {
	table, err := loadNameTable()
	require.NoError(t, err)
	require.NotNil(t, table)

	_, ok := table.Provider(m.Identity{Case: "SomeTest", Method: "testX"})
	assert.False(t, ok)
}

func TestNewWorkflow(t *testing.T) {
	workflow, err := newWorkflow()
	require.NoError(t, err)
	assert.NotNil(t, workflow)
}
