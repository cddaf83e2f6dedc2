package crash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/farlang/far/internal/logging"
)

func TestCrashPanicsWithDiagnostic(t *testing.T) {
	require.PanicsWithError(t, "fatal runtime error: bad extent -3 in dimension 2", func() {
		Crash("bad extent %d in dimension %d", -3, 2)
	})
}

func TestCheckPassesOnTrue(t *testing.T) {
	assert.NotPanics(t, func() {
		Check(true, "never evaluated")
	})
}

func TestCheckFailsOnFalse(t *testing.T) {
	require.PanicsWithError(t, "fatal runtime error: rank 16 out of range", func() {
		Check(false, "rank %d out of range", 16)
	})
}

func TestNoCasePrefix(t *testing.T) {
	require.PanicsWithError(t, "fatal runtime error: no case: integer element size 5", func() {
		NoCase("integer element size %d", 5)
	})
}

func TestCrashLogsBeforePanicking(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(zap.NewNop())

	require.Panics(t, func() { Crash("allocation failed (status %d)", 2) })

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fatal runtime error", entries[0].Message)
	assert.Equal(t, "allocation failed (status 2)", entries[0].ContextMap()["detail"])
}
