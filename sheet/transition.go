package sheet

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultDuration matches the usual material tween length.
const DefaultDuration = 300 * time.Millisecond

// Frame is the input to one animation step. Value runs from 0 (hidden) to
// 1 (shown).
type Frame struct {
	From, To        float64
	Value, Velocity float64
	Elapsed         time.Duration // since the current target was set, including Delta
	Delta           time.Duration
}

// AnimationSpec advances a transition by one frame.
type AnimationSpec interface {
	Advance(f Frame) (value, velocity float64, done bool)
}

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(float64) float64

// CubicBezier returns a CSS-style cubic-bezier easing with fixed end points
// (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	bez := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	dbez := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		t := x
		for i := 0; i < 8; i++ {
			d := dbez(x1, x2, t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= (bez(x1, x2, t) - x) / d
		}
		if t < 0 || t > 1 || math.Abs(bez(x1, x2, t)-x) > 1e-5 {
			lo, hi := 0.0, 1.0
			t = x
			for i := 0; i < 40; i++ {
				v := bez(x1, x2, t)
				if math.Abs(v-x) < 1e-7 {
					break
				}
				if v < x {
					lo = t
				} else {
					hi = t
				}
				t = (lo + hi) / 2
			}
		}
		return bez(y1, y2, t)
	}
}

var (
	Linear          Easing = func(x float64) float64 { return x }
	LinearOutSlowIn        = CubicBezier(0, 0, 0.2, 1)
	FastOutSlowIn          = CubicBezier(0.4, 0, 0.2, 1)
	FastOutLinearIn        = CubicBezier(0.4, 0, 1, 1)
)

// Tween animates over a fixed duration with an easing curve.
type Tween struct {
	Duration time.Duration
	Easing   Easing
}

// DefaultTween is the enter and exit animation used when none is configured.
func DefaultTween() Tween {
	return Tween{Duration: DefaultDuration, Easing: LinearOutSlowIn}
}

func (tw Tween) Advance(f Frame) (float64, float64, bool) {
	if tw.Duration <= 0 || f.Elapsed >= tw.Duration {
		return f.To, 0, true
	}
	ease := tw.Easing
	if ease == nil {
		ease = Linear
	}
	p := ease(float64(f.Elapsed) / float64(tw.Duration))
	return f.From + (f.To-f.From)*p, 0, false
}

// Spring animates with a damped harmonic oscillator.
type Spring struct {
	Frequency float64 // angular frequency
	Damping   float64 // damping ratio, 1 is critically damped
}

const (
	springPosEpsilon = 1e-3
	springVelEpsilon = 1e-2
)

func (s Spring) Advance(f Frame) (float64, float64, bool) {
	if f.Delta <= 0 {
		return f.Value, f.Velocity, false
	}
	sp := harmonica.NewSpring(f.Delta.Seconds(), s.Frequency, s.Damping)
	v, vel := sp.Update(f.Value, f.Velocity, f.To)
	if math.Abs(v-f.To) < springPosEpsilon && math.Abs(vel) < springVelEpsilon {
		return f.To, 0, true
	}
	return v, vel, false
}

// Transition is the animation state of a sheet: a writable target and a
// value that follows it frame by frame.
type Transition struct {
	enter, exit AnimationSpec

	target   bool
	from     float64
	value    float64
	velocity float64
	elapsed  time.Duration
	idle     bool
}

// NewTransition returns an idle transition resting at initial.
func NewTransition(initial bool, enter, exit AnimationSpec) *Transition {
	t := &Transition{enter: enter, exit: exit, target: initial, idle: true}
	if initial {
		t.value = 1
	}
	return t
}

// SetTarget starts animating toward target from the current value.
func (t *Transition) SetTarget(target bool) {
	if target == t.target {
		return
	}
	t.target = target
	t.from = t.value
	t.elapsed = 0
	t.idle = t.value == t.to()
}

func (t *Transition) to() float64 {
	if t.target {
		return 1
	}
	return 0
}

// Step advances the value by dt and reports whether the transition is idle
// afterwards.
func (t *Transition) Step(dt time.Duration) bool {
	if t.idle {
		return true
	}
	spec := t.exit
	if t.target {
		spec = t.enter
	}
	if spec == nil {
		spec = DefaultTween()
	}
	t.elapsed += dt
	v, vel, done := spec.Advance(Frame{
		From:     t.from,
		To:       t.to(),
		Value:    t.value,
		Velocity: t.velocity,
		Elapsed:  t.elapsed,
		Delta:    dt,
	})
	t.value, t.velocity = v, vel
	if done {
		t.value, t.velocity = t.to(), 0
		t.idle = true
	}
	return t.idle
}

// SetSpecs swaps the enter and exit specs; an in-flight animation picks
// them up on its next step.
func (t *Transition) SetSpecs(enter, exit AnimationSpec) {
	t.enter, t.exit = enter, exit
}

func (t *Transition) Target() bool   { return t.target }
func (t *Transition) Value() float64 { return t.value }
func (t *Transition) IsIdle() bool   { return t.idle }
