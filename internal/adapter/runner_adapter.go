package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// RunnerAdapter abstracts execution of the external test runner.
type RunnerAdapter interface {
	// RunTests executes the runner against a single test file in workDir and
	// returns its raw event-stream output. A non-zero runner exit is not an
	// error here: failing tests still produce a usable stream.
	RunTests(ctx context.Context, workDir, testFile string) (output string, err error)
}

// LocalRunnerAdapter executes the configured runner command via os/exec.
type LocalRunnerAdapter struct {
	command []string
	timeout time.Duration
}

// NewLocalRunnerAdapter constructs a LocalRunnerAdapter. The command is the
// runner binary plus any fixed arguments; the test file path is appended per
// invocation.
func NewLocalRunnerAdapter(command []string, timeout time.Duration) *LocalRunnerAdapter {
	return &LocalRunnerAdapter{
		command: command,
		timeout: timeout,
	}
}

// RunTests runs the configured command on a single test file.
func (a *LocalRunnerAdapter) RunTests(ctx context.Context, workDir, testFile string) (string, error) {
	if len(a.command) == 0 {
		return "", fmt.Errorf("run tests: no runner command configured")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	args := make([]string, 0, len(a.command))
	args = append(args, a.command[1:]...)
	args = append(args, testFile)

	cmd := exec.CommandContext(ctx, a.command[0], args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	if ctx.Err() != nil {
		return output, fmt.Errorf("run tests %s: %w", testFile, ctx.Err())
	}

	// Failing tests make most runners exit non-zero; the stream is still the
	// source of truth for per-test outcomes.
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return output, fmt.Errorf("run tests %s: %w", testFile, err)
	}

	return output, nil
}
