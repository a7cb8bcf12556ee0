package sheet

// ScreenFraction is the share of the screen height a drag offset must
// exceed to dismiss the sheet regardless of the close threshold.
const ScreenFraction = 0.3

// GesturePhase is the state of the current drag gesture.
type GesturePhase int

const (
	PhaseIdle GesturePhase = iota
	PhaseDragging
	PhaseCloseRequested
)

func (p GesturePhase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCloseRequested:
		return "close-requested"
	default:
		return "idle"
	}
}

// DragDismissController turns pointer drag deltas into a sheet offset and a
// close decision.
//
// The rendered offset is clamped to stay below the resting position while the
// accumulator tracks the raw signed distance. Because of that asymmetry a
// gesture that goes up and then down can trip the threshold through the
// accumulator even though the sheet barely moved.
type DragDismissController struct {
	threshold    float64
	screenHeight func() float64

	offset float64
	total  float64
	phase  GesturePhase

	// screen height captured at the first move of the gesture
	gestureScreen float64
}

// NewDragDismissController returns a controller that compares the
// accumulated drag against threshold and queries screenHeight once per gesture.
func NewDragDismissController(threshold float64, screenHeight func() float64) *DragDismissController {
	if screenHeight == nil {
		screenHeight = func() float64 { return 0 }
	}
	return &DragDismissController{threshold: threshold, screenHeight: screenHeight}
}

// Move applies one pointer-move delta. It returns true exactly once per
// gesture, on the move where the close predicate first holds.
func (c *DragDismissController) Move(d float64) bool {
	if c.phase == PhaseIdle {
		c.phase = PhaseDragging
		c.gestureScreen = c.screenHeight()
	}

	next := c.offset
	if c.offset+d > 0 {
		next = c.offset + d
	}
	c.total += d

	fire := false
	if c.phase == PhaseDragging && c.shouldClose(next) {
		c.phase = PhaseCloseRequested
		fire = true
	}
	c.offset = next
	return fire
}

func (c *DragDismissController) shouldClose(offset float64) bool {
	return offset > c.gestureScreen*ScreenFraction || c.total > c.threshold
}

// End finishes the gesture. The sheet snaps back to rest; a close already
// requested during the gesture is unaffected.
func (c *DragDismissController) End() { c.reset() }

// Cancel aborts the gesture with the same reset as End.
func (c *DragDismissController) Cancel() { c.reset() }

// Reset clears any offset, used when the sheet is shown again.
func (c *DragDismissController) Reset() { c.reset() }

func (c *DragDismissController) reset() {
	c.offset = 0
	c.total = 0
	c.phase = PhaseIdle
	c.gestureScreen = 0
}

func (c *DragDismissController) SetThreshold(t float64) { c.threshold = t }
func (c *DragDismissController) Threshold() float64     { return c.threshold }
func (c *DragDismissController) Offset() float64        { return c.offset }
func (c *DragDismissController) Total() float64         { return c.total }
func (c *DragDismissController) Phase() GesturePhase    { return c.phase }
