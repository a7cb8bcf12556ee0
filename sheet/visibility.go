package sheet

// VisibilityState is the mount lifecycle of a sheet overlay.
type VisibilityState struct {
	Mounted          bool
	TargetVisible    bool
	AnimationSettled bool
}

// VisibilityCoordinator decides when the overlay should exist at all.
// Mounted lags the caller's visible flag: it turns on immediately on show,
// but only turns off once the exit animation has settled on the hidden target.
type VisibilityCoordinator struct {
	state VisibilityState
}

// ShowRequested mounts the overlay synchronously. It reports whether the
// target changed; a show while already showing is a no-op.
func (c *VisibilityCoordinator) ShowRequested() bool {
	if c.state.TargetVisible {
		return false
	}
	c.state.TargetVisible = true
	c.state.Mounted = true
	c.state.AnimationSettled = false
	return true
}

// HideRequested records the hidden target. The overlay stays mounted so the
// exit animation can play against it.
func (c *VisibilityCoordinator) HideRequested() bool {
	if !c.state.TargetVisible {
		return false
	}
	c.state.TargetVisible = false
	c.state.AnimationSettled = false
	return true
}

// AnimationSettled is called whenever the animation reaches a stable state
// for target. It reports whether the overlay was unmounted.
func (c *VisibilityCoordinator) AnimationSettled(target bool) bool {
	if target != c.state.TargetVisible {
		// settle for a target the caller has already moved away from
		return false
	}
	c.state.AnimationSettled = true
	if target || !c.state.Mounted {
		return false
	}
	c.state = VisibilityState{}
	return true
}

func (c *VisibilityCoordinator) Mounted() bool       { return c.state.Mounted }
func (c *VisibilityCoordinator) TargetVisible() bool { return c.state.TargetVisible }
func (c *VisibilityCoordinator) State() VisibilityState {
	return c.state
}
