package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, systemErr error, osc bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldWrite, oldOut, oldSupported := writeAll, stdout, supported
	t.Cleanup(func() { writeAll, stdout, supported = oldWrite, oldOut, oldSupported })

	writeAll = func(string) error { return systemErr }
	stdout = &buf
	supported = func() bool { return osc }
	return &buf
}

func TestCopyUsesSystemClipboard(t *testing.T) {
	buf := stub(t, nil, true)

	m, err := Copy("row 1")
	require.NoError(t, err)
	assert.Equal(t, MethodSystem, m)
	assert.Zero(t, buf.Len())
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	buf := stub(t, errors.New("no xclip"), true)

	m, err := Copy("row 1")
	require.NoError(t, err)
	assert.Equal(t, MethodOSC52, m)
	assert.Contains(t, buf.String(), "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte("row 1")))
}

func TestCopyFailsWithoutTerminalSupport(t *testing.T) {
	stub(t, errors.New("no xclip"), false)

	_, err := Copy("row 1")
	assert.ErrorIs(t, err, ErrUnsupported)
}
