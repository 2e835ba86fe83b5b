package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRunnerAdapter_RunTests(t *testing.T) {
	adapter := NewLocalRunnerAdapter([]string{"echo", "event:"}, time.Minute)

	out, err := adapter.RunTests(context.Background(), t.TempDir(), "FooTest.php")
	require.NoError(t, err)
	assert.Contains(t, out, "event: FooTest.php")
}

func TestLocalRunnerAdapter_NonZeroExitIsNotAnError(t *testing.T) {
	// Failing suites make runners exit non-zero; the stream must survive.
	adapter := NewLocalRunnerAdapter([]string{"sh", "-c", `echo "failed stream"; exit 1`}, time.Minute)

	out, err := adapter.RunTests(context.Background(), t.TempDir(), "FooTest.php")
	require.NoError(t, err)
	assert.Contains(t, out, "failed stream")
}

func TestLocalRunnerAdapter_NoCommand(t *testing.T) {
	adapter := NewLocalRunnerAdapter(nil, time.Minute)

	_, err := adapter.RunTests(context.Background(), "", "FooTest.php")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runner command")
}

func TestLocalRunnerAdapter_Timeout(t *testing.T) {
	adapter := NewLocalRunnerAdapter([]string{"sleep", "5"}, 50*time.Millisecond)

	_, err := adapter.RunTests(context.Background(), "", "FooTest.php")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocalRunnerAdapter_MissingBinary(t *testing.T) {
	adapter := NewLocalRunnerAdapter([]string{"definitely-not-a-runner-binary"}, time.Minute)

	_, err := adapter.RunTests(context.Background(), "", "FooTest.php")
	require.Error(t, err)
}
