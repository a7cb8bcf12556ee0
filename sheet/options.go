package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCloseThreshold is the accumulated drag, in rows, that dismisses
// the sheet.
const DefaultCloseThreshold = 6

// DefaultFPS drives enter and exit animations.
const DefaultFPS = 60

// Shape is the outline of the sheet. The bottom edge is normally left open
// because the sheet is anchored to the bottom of the screen.
type Shape struct {
	Border lipgloss.Border
	Bottom bool
}

// DefaultShape has rounded top corners and no bottom edge.
func DefaultShape() Shape {
	return Shape{Border: lipgloss.RoundedBorder()}
}

// HandleFunc renders the drag handle for the given inner width.
type HandleFunc func(width int, pressed bool) string

// ContentFunc renders the sheet body for the given inner width.
type ContentFunc func(width int) string

var (
	defaultContainerColor lipgloss.TerminalColor = lipgloss.Color("236")
	defaultSheetColor     lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "255", Dark: "235"}
	handleColor                                  = lipgloss.AdaptiveColor{Light: "240", Dark: "252"}
	handlePressedColor                           = lipgloss.Color("#ff9f1c")
)

const handleWidth = 8

// DefaultHandle draws a short divider centered above the content.
func DefaultHandle(width int, pressed bool) string {
	fg := lipgloss.TerminalColor(handleColor)
	if pressed {
		fg = handlePressedColor
	}
	bar := lipgloss.NewStyle().Foreground(fg).Render(strings.Repeat("━", min(handleWidth, max(width, 0))))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// Options configures a sheet.
type Options struct {
	CloseThreshold float64
	ContainerColor lipgloss.TerminalColor
	SheetColor     lipgloss.TerminalColor
	Shape          Shape
	Enter          AnimationSpec
	Exit           AnimationSpec
	DragHandle     HandleFunc
	// Width of the sheet in cells; 0 spans the screen.
	Width int
	FPS   int
}

func defaultOptions() Options {
	return Options{
		CloseThreshold: DefaultCloseThreshold,
		ContainerColor: defaultContainerColor,
		SheetColor:     defaultSheetColor,
		Shape:          DefaultShape(),
		Enter:          DefaultTween(),
		Exit:           DefaultTween(),
		DragHandle:     DefaultHandle,
		FPS:            DefaultFPS,
	}
}

type Option func(*Options)

func WithCloseThreshold(rows float64) Option {
	return func(o *Options) { o.CloseThreshold = rows }
}

func WithContainerColor(c lipgloss.TerminalColor) Option {
	return func(o *Options) { o.ContainerColor = c }
}

func WithSheetColor(c lipgloss.TerminalColor) Option {
	return func(o *Options) { o.SheetColor = c }
}

func WithShape(s Shape) Option {
	return func(o *Options) { o.Shape = s }
}

func WithEnter(spec AnimationSpec) Option {
	return func(o *Options) { o.Enter = spec }
}

func WithExit(spec AnimationSpec) Option {
	return func(o *Options) { o.Exit = spec }
}

// WithDragHandle replaces the default divider handle.
func WithDragHandle(h HandleFunc) Option {
	return func(o *Options) { o.DragHandle = h }
}

// WithoutDragHandle removes the handle. The sheet can then only be closed
// from the backdrop or with back.
func WithoutDragHandle() Option {
	return func(o *Options) { o.DragHandle = nil }
}

func WithWidth(w int) Option {
	return func(o *Options) { o.Width = w }
}

func WithFPS(fps int) Option {
	return func(o *Options) {
		if fps > 0 {
			o.FPS = fps
		}
	}
}
