package dialogs

import tea "github.com/charmbracelet/bubbletea"

// SaveConfirmedMsg carries the path the gesture trace should be written to.
type SaveConfirmedMsg struct{ Path string }

// Save asks for the JSON trace file name.
type Save struct {
	pathInput
}

func NewSaveDialog(defaultName, lastDir string) *Save {
	return &Save{newPathInput("Save gesture trace", "Save as: ", "enter to save • esc to cancel",
		defaultName, lastDir, func(p string) tea.Msg { return SaveConfirmedMsg{Path: p} })}
}

func (d *Save) Init() tea.Cmd { return d.input.Focus() }

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	return d, d.update(msg)
}

func (d *Save) View(width int) string { return d.view(width) }
func (d *Save) Focus() tea.Cmd        { return d.input.Focus() }
func (d *Save) Blur()                 { d.input.Blur() }
