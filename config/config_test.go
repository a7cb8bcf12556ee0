package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/siftly-sheet/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
sheet:
  close_threshold: 10
  shape: double
  width: 60
  exit:
    kind: spring
    frequency: 12
    damping: 0.8
`))
	require.NoError(t, err)

	s := cfg.Sheet
	assert.Equal(t, 10.0, s.CloseThreshold)
	assert.Equal(t, "double", s.Shape)
	assert.Equal(t, 60, s.Width)
	assert.True(t, s.Handle, "unset keys keep their defaults")
	assert.Equal(t, defaultAnimation(), s.Enter)
	assert.Equal(t, sheet.Spring{Frequency: 12, Damping: 0.8}, s.Exit.Spec())
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative threshold", "sheet: {close_threshold: -1}"},
		{"negative width", "sheet: {width: -3}"},
		{"unknown shape", "sheet: {shape: wobbly}"},
		{"unknown easing", "sheet: {enter: {easing: bouncy}}"},
		{"unknown kind", "sheet: {exit: {kind: teleport}}"},
		{"negative duration", "sheet: {enter: {duration_ms: -5}}"},
		{"flat spring", "sheet: {enter: {kind: spring, frequency: 0}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("sheet: {threshold: 3}"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestDefaultTweenSpec(t *testing.T) {
	spec, ok := defaultAnimation().Spec().(sheet.Tween)
	require.True(t, ok)
	assert.Equal(t, sheet.DefaultDuration, spec.Duration)
	assert.InDelta(t, sheet.LinearOutSlowIn(0.3), spec.Easing(0.3), 1e-12)
}

func TestOptionsApply(t *testing.T) {
	cfg := Default()
	cfg.Sheet.CloseThreshold = 2
	cfg.Sheet.Handle = false
	cfg.Sheet.SheetColor = "#112233"

	var o sheet.Options
	for _, opt := range cfg.Sheet.Options() {
		opt(&o)
	}
	assert.Equal(t, 2.0, o.CloseThreshold)
	assert.Nil(t, o.DragHandle)
	assert.NotNil(t, o.SheetColor)
	assert.Nil(t, o.ContainerColor, "empty color keeps the sheet default")
	assert.Equal(t, sheet.DefaultFPS, o.FPS)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfsheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet: {close_threshold: 1}\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 16)
	errs := make(chan error, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config, err error) {
			if err != nil {
				errs <- err
				return
			}
			got <- c
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("sheet: {close_threshold: 9}\n"), 0o600))

	// a truncating write can be seen half done, so wait for the final content
	timeout := time.After(3 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case c := <-got:
			reloaded = c.Sheet.CloseThreshold == 9
		case err := <-errs:
			t.Fatalf("unexpected reload error: %v", err)
		case <-timeout:
			t.Fatal("no reload after write")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
