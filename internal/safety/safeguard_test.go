package safety

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzimmerman2022/genetic-analyzer-ultra/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestGuardSuccess(t *testing.T) {
	guard := NewGuard(testLogger(), t.TempDir())
	err := guard.Run("stats", nil, func() error { return nil })
	assert.NoError(t, err)
}

func TestGuardCapturesError(t *testing.T) {
	dumpDir := t.TempDir()
	guard := NewGuard(testLogger(), dumpDir)
	boom := errors.New("boom")
	partial := map[string]int{"computed": 3}

	err := guard.Run("disease_risk", partial, func() error { return boom })
	require.Error(t, err)

	var stageErr *domain.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "disease_risk", stageErr.Stage)
	assert.ErrorIs(t, err, boom)
	require.FileExists(t, stageErr.DumpPath)

	raw, readErr := os.ReadFile(stageErr.DumpPath)
	require.NoError(t, readErr)
	var dump map[string]any
	require.NoError(t, json.Unmarshal(raw, &dump))
	assert.Equal(t, "disease_risk", dump["stage"])
	assert.Equal(t, "boom", dump["error_message"])
	assert.NotEmpty(t, dump["timestamp_utc"])
	assert.NotNil(t, dump["partial_results"])
}

func TestGuardRecoversPanic(t *testing.T) {
	guard := NewGuard(testLogger(), t.TempDir())

	err := guard.Run("scores", nil, func() error { panic("unexpected state") })
	require.Error(t, err)

	var stageErr *domain.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Contains(t, stageErr.Err.Error(), "unexpected state")
}

func TestGuardUnserializablePartial(t *testing.T) {
	guard := NewGuard(testLogger(), t.TempDir())
	// Channels cannot be marshaled; the dump must still be written.
	err := guard.Run("stage", map[string]any{"ch": make(chan int)}, func() error {
		return errors.New("fail")
	})

	var stageErr *domain.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.FileExists(t, stageErr.DumpPath)
}
