package dialogs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Field is one labelled line of a Details sheet.
type Field struct {
	Label string
	Value string
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// Details shows a fixed set of fields.
type Details struct {
	title  string
	fields []Field
}

func NewDetailsDialog(title string, fields []Field) *Details {
	return &Details{title: title, fields: fields}
}

func (d *Details) Init() tea.Cmd { return nil }

func (d *Details) Update(msg tea.Msg) (Dialog, tea.Cmd) { return d, nil }

func (d *Details) View(width int) string {
	labelWidth := 0
	for _, f := range d.fields {
		labelWidth = max(labelWidth, ansi.StringWidth(f.Label))
	}
	valueWidth := max(width-labelWidth-4, 1)

	lines := make([]string, 0, len(d.fields))
	for _, f := range d.fields {
		label := labelStyle.Width(labelWidth).Render(f.Label)
		lines = append(lines, label+"  "+ansi.Truncate(f.Value, valueWidth, "…"))
	}
	return frame(d.title, strings.Join(lines, "\n"), "y to copy • esc to close", width)
}

func (d *Details) Focus() tea.Cmd { return nil }
func (d *Details) Blur()          {}
