// Package sheet implements a modal bottom sheet for Bubble Tea programs.
//
// The sheet slides up from the bottom of the screen over a dimmed backdrop.
// It closes on a backdrop click, on esc, or when its drag handle is pulled
// down past a threshold. Closing is a request: the sheet emits
// CloseRequestedMsg and the host decides by calling SetVisible(false). The
// overlay stays mounted until the exit animation has settled, then the
// sheet emits ClosedMsg.
//
//	sh := sheet.New(func(w int) string { return "hello" })
//
//	// In Update():
//	case sheet.CloseRequestedMsg:
//	    return m, m.sheet.SetVisible(false)
//	default:
//	    var cmd tea.Cmd
//	    m.sheet, cmd = m.sheet.Update(msg)
//
//	// In View():
//	return m.sheet.View(background)
package sheet

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/andareed/siftly-sheet/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CloseReason says which trigger asked for the sheet to close.
type CloseReason int

const (
	CloseBackdrop CloseReason = iota
	CloseBack
	CloseDrag
)

func (r CloseReason) String() string {
	switch r {
	case CloseBack:
		return "back"
	case CloseDrag:
		return "drag"
	default:
		return "backdrop"
	}
}

// --- Messages ---------------------------------------------------------------

type (
	// CloseRequestedMsg asks the host to set the sheet invisible.
	CloseRequestedMsg struct {
		ID     int
		Reason CloseReason
	}
	// ClosedMsg is sent once the exit animation has finished and the overlay
	// has been removed.
	ClosedMsg struct{ ID int }

	frameMsg struct {
		id, seq int
	}
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// Model is a bottom sheet. The zero value is not usable; call New.
type Model struct {
	id      int
	opts    Options
	content ContentFunc

	coord *VisibilityCoordinator
	drag  *DragDismissController
	trans *Transition
	press InteractionSource

	width, height int

	// frame loop; at most one tick chain is alive per sheet
	ticking  bool
	frameSeq int

	// pointer went down on the handle and has not been released
	armed bool
	lastY int
}

// New returns a hidden sheet rendering content.
func New(content ContentFunc, opts ...Option) *Model {
	m := &Model{
		id:      nextID(),
		opts:    defaultOptions(),
		content: content,
		coord:   &VisibilityCoordinator{},
	}
	for _, opt := range opts {
		opt(&m.opts)
	}
	m.drag = NewDragDismissController(m.opts.CloseThreshold, func() float64 { return float64(m.height) })
	m.trans = NewTransition(false, m.opts.Enter, m.opts.Exit)
	return m
}

// ID identifies the messages of this sheet.
func (m *Model) ID() int { return m.id }

// SetOptions applies options to a live sheet. Threshold and animation
// changes take effect immediately. Removing the handle cancels a gesture
// in progress.
func (m *Model) SetOptions(opts ...Option) tea.Cmd {
	for _, opt := range opts {
		opt(&m.opts)
	}
	m.drag.SetThreshold(m.opts.CloseThreshold)
	m.trans.SetSpecs(m.opts.Enter, m.opts.Exit)
	if m.opts.DragHandle == nil {
		return m.cancelGesture("handle removed")
	}
	return nil
}

// SetContent swaps the body render slot.
func (m *Model) SetContent(content ContentFunc) { m.content = content }

// SetSize records the screen size.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// SetVisible mirrors the caller's visible flag. Redundant calls are no-ops.
func (m *Model) SetVisible(visible bool) tea.Cmd {
	if visible {
		if !m.coord.ShowRequested() {
			return nil
		}
		cancel := m.cancelGesture("show")
		m.drag.Reset()
		m.trans.SetTarget(true)
		logging.Debug("sheet: show requested", "id", m.id, "mounted", m.coord.Mounted())
		return tea.Batch(cancel, m.startFrames())
	}
	if !m.coord.HideRequested() {
		return nil
	}
	m.trans.SetTarget(false)
	logging.Debug("sheet: hide requested", "id", m.id, "offset", m.drag.Offset())
	return m.startFrames()
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.handleFrame(msg)
	case tea.WindowSizeMsg:
		cmd := m.cancelGesture("resize")
		m.SetSize(msg.Width, msg.Height)
		return m, cmd
	case tea.BlurMsg:
		return m, m.cancelGesture("blur")
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, m.Back()
		}
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

// Back handles the back signal. It is only honored while the sheet is
// mounted and meant to be visible.
func (m *Model) Back() tea.Cmd {
	if !m.coord.Mounted() || !m.coord.TargetVisible() {
		return nil
	}
	return m.requestClose(CloseBack)
}

func (m *Model) requestClose(reason CloseReason) tea.Cmd {
	logging.Debug("sheet: close requested", "id", m.id, "reason", reason.String(),
		"offset", m.drag.Offset(), "total", m.drag.Total())
	id := m.id
	return func() tea.Msg { return CloseRequestedMsg{ID: id, Reason: reason} }
}

// --- Animation --------------------------------------------------------------

func (m *Model) frameInterval() time.Duration {
	fps := m.opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.frameSeq++
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	id, seq := m.id, m.frameSeq
	return tea.Tick(m.frameInterval(), func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if !m.ticking || msg.seq != m.frameSeq {
		return nil
	}
	if !m.trans.Step(m.frameInterval()) {
		return m.tick()
	}
	m.ticking = false
	if !m.coord.AnimationSettled(m.trans.Target()) {
		return nil
	}

	logging.Debug("sheet: unmounted", "id", m.id)
	cmd := m.cancelGesture("unmount")
	m.drag.Reset()
	id := m.id
	return tea.Batch(cmd, func() tea.Msg { return ClosedMsg{ID: id} })
}

// --- Pointer ----------------------------------------------------------------

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.coord.Mounted() {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			if m.armed && !tea.MouseEvent(msg).IsWheel() {
				return m.cancelGesture("button")
			}
			return nil
		}
		var cancel tea.Cmd
		if m.armed {
			// lost the release of the previous press
			cancel = m.cancelGesture("repress")
		}
		lay := m.layout()
		switch {
		case !lay.handle.Empty() && lay.handle.Contains(msg.X, msg.Y):
			if !m.coord.TargetVisible() {
				return cancel
			}
			m.armed = true
			m.lastY = msg.Y
			return tea.Batch(cancel, m.press.Press(msg.X, msg.Y))
		case lay.sheet.Contains(msg.X, msg.Y):
			// taps on the body never reach the backdrop
			return cancel
		default:
			if !m.coord.TargetVisible() {
				return cancel
			}
			return tea.Batch(cancel, m.requestClose(CloseBackdrop))
		}

	case tea.MouseActionMotion:
		if !m.armed {
			return nil
		}
		d := msg.Y - m.lastY
		m.lastY = msg.Y
		if d == 0 {
			return nil
		}
		if m.drag.Phase() == PhaseIdle {
			logging.Debug("sheet: drag started", "id", m.id, "y", msg.Y, "threshold", m.drag.Threshold())
		}
		if m.drag.Move(float64(d)) {
			return m.requestClose(CloseDrag)
		}

	case tea.MouseActionRelease:
		if !m.armed {
			return nil
		}
		m.armed = false
		if m.drag.Phase() != PhaseIdle {
			logging.Debug("sheet: drag ended", "id", m.id, "offset", m.drag.Offset(), "total", m.drag.Total())
			m.drag.End()
		}
		return m.press.Release()
	}
	return nil
}

// cancelGesture aborts a gesture in progress, snapping the sheet back.
func (m *Model) cancelGesture(why string) tea.Cmd {
	if !m.armed && m.drag.Phase() == PhaseIdle {
		return nil
	}
	logging.Debug("sheet: drag cancelled", "id", m.id, "why", why)
	m.armed = false
	m.drag.Cancel()
	return m.press.Release()
}

// --- Rendering --------------------------------------------------------------

type sheetLayout struct {
	lines  []string
	left   int
	top    int
	width  int
	sheet  Rect
	handle Rect
}

func (m *Model) boxStyle() lipgloss.Style {
	s := m.opts.Shape
	return lipgloss.NewStyle().
		Border(s.Border, true, true, s.Bottom, true).
		BorderForeground(handleColor).
		BorderBackground(m.opts.SheetColor).
		Background(m.opts.SheetColor)
}

func (m *Model) layout() sheetLayout {
	w := m.width
	if m.opts.Width > 0 && m.opts.Width < w {
		w = m.opts.Width
	}
	box := m.boxStyle()
	inner := max(w-box.GetHorizontalBorderSize(), 0)

	var parts []string
	handleHeight := 0
	if m.opts.DragHandle != nil {
		h := m.opts.DragHandle(inner, m.press.Pressed())
		handleHeight = lipgloss.Height(h)
		parts = append(parts, h)
	}
	if m.content != nil {
		if body := m.content(inner); body != "" {
			parts = append(parts, body)
		}
	}

	lines := strings.Split(box.Width(inner).Render(strings.Join(parts, "\n")), "\n")
	h := len(lines)
	slide := int(math.Round((1-m.trans.Value())*float64(h) + m.drag.Offset()))
	top := m.height - h + slide
	left := max((m.width-w)/2, 0)

	return sheetLayout{
		lines:  lines,
		left:   left,
		top:    top,
		width:  w,
		sheet:  Rect{X: left, Y: top, W: w, H: h},
		handle: Rect{X: left, Y: top + box.GetBorderTopSize(), W: w, H: handleHeight},
	}
}

// View draws the backdrop and the sheet over background. When the sheet is
// not mounted background is returned untouched.
func (m *Model) View(background string) string {
	if !m.coord.Mounted() || m.width <= 0 || m.height <= 0 {
		return background
	}
	lay := m.layout()
	dim := lipgloss.NewStyle().Faint(true).Background(m.opts.ContainerColor)
	return composite(backdropLines(background, m.width, m.height), lay.lines, lay.left, lay.top, lay.width, dim)
}

// --- State ------------------------------------------------------------------

// Mounted reports whether the overlay is on screen.
func (m *Model) Mounted() bool { return m.coord.Mounted() }

// Visible reports the caller's last requested visibility.
func (m *Model) Visible() bool { return m.coord.TargetVisible() }

// Offset is the current drag offset in rows.
func (m *Model) Offset() float64 { return m.drag.Offset() }

// Dragging reports whether a gesture is in progress.
func (m *Model) Dragging() bool { return m.drag.Phase() != PhaseIdle }

// Animating reports whether an enter or exit transition is in flight.
func (m *Model) Animating() bool { return !m.trans.IsIdle() }

func (m *Model) VisibilityState() VisibilityState { return m.coord.State() }
