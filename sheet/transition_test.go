package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func run(t *testing.T, tr *Transition, max int) int {
	t.Helper()
	for i := 1; i <= max; i++ {
		if tr.Step(frame) {
			return i
		}
	}
	require.FailNow(t, "transition did not settle")
	return 0
}

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":             Linear,
		"linear-out-slow-in": LinearOutSlowIn,
		"fast-out-slow-in":   FastOutSlowIn,
		"fast-out-linear-in": FastOutLinearIn,
	} {
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
		prev := 0.0
		for x := 0.05; x < 1; x += 0.05 {
			v := e(x)
			assert.GreaterOrEqual(t, v, prev-1e-9, "%s must be monotonic at %v", name, x)
			prev = v
		}
	}
}

func TestLinearOutSlowInDecelerates(t *testing.T) {
	// most of the distance is covered early
	assert.Greater(t, LinearOutSlowIn(0.5), 0.75)
}

func TestTweenSettlesAfterDuration(t *testing.T) {
	tr := NewTransition(false, Tween{Duration: 100 * time.Millisecond, Easing: Linear}, DefaultTween())
	tr.SetTarget(true)
	require.False(t, tr.IsIdle())

	tr.Step(50 * time.Millisecond)
	assert.InDelta(t, 0.5, tr.Value(), 1e-9)
	assert.False(t, tr.IsIdle())

	assert.True(t, tr.Step(50*time.Millisecond))
	assert.Equal(t, 1.0, tr.Value())
}

func TestTransitionReversesFromCurrentValue(t *testing.T) {
	tr := NewTransition(false, Tween{Duration: 100 * time.Millisecond, Easing: Linear}, Tween{Duration: 100 * time.Millisecond, Easing: Linear})
	tr.SetTarget(true)
	tr.Step(40 * time.Millisecond)

	tr.SetTarget(false)
	tr.Step(50 * time.Millisecond)
	assert.InDelta(t, 0.2, tr.Value(), 1e-9)
}

func TestSetSameTargetKeepsIdle(t *testing.T) {
	tr := NewTransition(true, nil, nil)
	tr.SetTarget(true)
	assert.True(t, tr.IsIdle())
	assert.Equal(t, 1.0, tr.Value())
}

func TestDefaultTweenSettles(t *testing.T) {
	tr := NewTransition(false, DefaultTween(), DefaultTween())
	tr.SetTarget(true)
	n := run(t, tr, 100)
	assert.Equal(t, 19, n, "300ms at 60fps, truncated frame length")
}

func TestSpringSettles(t *testing.T) {
	tr := NewTransition(false, Spring{Frequency: 12, Damping: 1}, Spring{Frequency: 12, Damping: 1})
	tr.SetTarget(true)
	run(t, tr, 600)
	assert.Equal(t, 1.0, tr.Value())

	tr.SetTarget(false)
	run(t, tr, 600)
	assert.Equal(t, 0.0, tr.Value())
}
