package sheet

import tea "github.com/charmbracelet/bubbletea"

// InteractionKind is a press feedback event on the drag handle.
type InteractionKind int

const (
	InteractionPress InteractionKind = iota
	InteractionRelease
)

func (k InteractionKind) String() string {
	if k == InteractionRelease {
		return "release"
	}
	return "press"
}

// InteractionMsg is emitted on handle press and release. It is purely visual
// feedback.
type InteractionMsg struct {
	Kind InteractionKind
	X, Y int
}

// InteractionSource pairs every press with exactly one release.
type InteractionSource struct {
	pressed bool
	x, y    int
}

// Press marks the handle pressed and returns the press message.
func (s *InteractionSource) Press(x, y int) tea.Cmd {
	s.pressed = true
	s.x, s.y = x, y
	return interactionCmd(InteractionMsg{Kind: InteractionPress, X: x, Y: y})
}

// Release ends a press. Without a pending press it does nothing.
func (s *InteractionSource) Release() tea.Cmd {
	if !s.pressed {
		return nil
	}
	s.pressed = false
	return interactionCmd(InteractionMsg{Kind: InteractionRelease, X: s.x, Y: s.y})
}

func (s *InteractionSource) Pressed() bool { return s.pressed }

func interactionCmd(msg InteractionMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
