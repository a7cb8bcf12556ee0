package sheet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screen(h float64) func() float64 { return func() float64 { return h } }

func moves(c *DragDismissController, deltas ...float64) []bool {
	fired := make([]bool, len(deltas))
	for i, d := range deltas {
		fired[i] = c.Move(d)
	}
	return fired
}

func TestDragCloseByThreshold(t *testing.T) {
	c := NewDragDismissController(150, screen(1000))

	assert.Equal(t, []bool{false, false, false}, moves(c, 50, 40, 35))
	assert.Equal(t, 125.0, c.Offset())
	assert.Equal(t, 125.0, c.Total())
	c.End()

	assert.Equal(t, []bool{false, false, true}, moves(c, 60, 60, 40))
	assert.Equal(t, 160.0, c.Offset())
	assert.Equal(t, PhaseCloseRequested, c.Phase())
}

func TestDragCloseByScreenFraction(t *testing.T) {
	c := NewDragDismissController(400, screen(500))

	assert.Equal(t, []bool{false, true}, moves(c, 80, 80))
	assert.Equal(t, 160.0, c.Offset())
	assert.Less(t, c.Total(), 400.0)
}

func TestDragCancelResets(t *testing.T) {
	c := NewDragDismissController(1000, screen(10000))
	moves(c, 120, 80)
	require.Equal(t, 200.0, c.Offset())

	c.Cancel()
	assert.Zero(t, c.Offset())
	assert.Zero(t, c.Total())
	assert.Equal(t, PhaseIdle, c.Phase())

	c.Move(10)
	assert.Equal(t, 10.0, c.Offset())
}

func TestDragEndAndCancelAlwaysZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		c := NewDragDismissController(50, screen(200))
		for j := 0; j < rng.Intn(30); j++ {
			c.Move(float64(rng.Intn(41) - 20))
		}
		if i%2 == 0 {
			c.End()
		} else {
			c.Cancel()
		}
		require.Zero(t, c.Offset())
		require.Zero(t, c.Total())
	}
}

func TestDragOffsetNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewDragDismissController(1e9, screen(1e9))
	for i := 0; i < 5000; i++ {
		c.Move(rng.Float64()*40 - 25)
		require.GreaterOrEqual(t, c.Offset(), 0.0)
	}
}

func TestDragUpwardPastRestIsIgnored(t *testing.T) {
	c := NewDragDismissController(100, screen(1000))

	c.Move(-5)
	assert.Zero(t, c.Offset())
	assert.Equal(t, -5.0, c.Total())

	c.Move(20)
	c.Move(-15)
	assert.Equal(t, 5.0, c.Offset(), "partial correction while still below rest")

	c.Move(-30)
	assert.Equal(t, 5.0, c.Offset(), "overshoot keeps the previous offset")
}

func TestDragClosesOncePerGesture(t *testing.T) {
	c := NewDragDismissController(10, screen(1000))

	fired := moves(c, 5, 10, 10, 10, -3, 20)
	count := 0
	for _, f := range fired {
		if f {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 52.0, c.Offset(), "offset keeps following after the close request")

	c.End()
	assert.Equal(t, []bool{false, true}, moves(c, 5, 10), "a new gesture can close again")
}

// The offset is clamped but the accumulator is not, so an upward detour
// is "owed" before the threshold can trip even though the sheet has
// visibly travelled further than the threshold.
func TestDragAccumulatorLagsClampedOffset(t *testing.T) {
	c := NewDragDismissController(10, screen(1000))

	assert.Equal(t, []bool{false, false, false}, moves(c, 8, -20, 15))
	assert.Equal(t, 23.0, c.Offset())
	assert.Equal(t, 3.0, c.Total())

	assert.True(t, c.Move(8))
}

func TestDragQueriesScreenOncePerGesture(t *testing.T) {
	calls := 0
	c := NewDragDismissController(1e6, func() float64 {
		calls++
		return 100
	})

	moves(c, 1, 1, 1)
	assert.Equal(t, 1, calls)
	c.End()
	moves(c, 1)
	assert.Equal(t, 2, calls)
}

func TestDragThresholdCanChangeBetweenGestures(t *testing.T) {
	c := NewDragDismissController(100, screen(1000))
	assert.False(t, c.Move(20))
	c.End()

	c.SetThreshold(15)
	assert.Equal(t, 15.0, c.Threshold())
	assert.True(t, c.Move(20))
}
