package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is the body of a bottom sheet. The sheet owns visibility, so a
// dialog only renders for the width it is given and reacts to keys. esc never
// reaches a dialog; it closes the sheet instead.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View(width int) string

	Focus() tea.Cmd
	Blur()
}

var (
	hintStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9f1c"))
	bodyStyle  = lipgloss.NewStyle().Padding(0, 1)
)

func frame(title, body, hint string, width int) string {
	parts := []string{titleStyle.Render(title), "", body}
	if hint != "" {
		parts = append(parts, "", hintStyle.Render(hint))
	}
	return bodyStyle.Width(max(width, 0)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
