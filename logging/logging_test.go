package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingDisabled(t *testing.T) {
	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, IsDebugMode())
	Infof("dropped %d", 1) // must not panic with the discard handler
}

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	assert.True(t, IsDebugMode())

	Debug("sheet mounted", "offset", 0)
	Warnf("threshold %d", 6)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sheet mounted")
	assert.Contains(t, string(data), "offset=0")
	assert.Contains(t, string(data), "threshold 6")

	_, err = SetupLogging("")
	require.NoError(t, err)
}

func TestSetOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelInfo)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, slog.LevelInfo) })

	Debugf("hidden")
	Infof("shown %s", "here")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown here")
}
