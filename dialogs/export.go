package dialogs

import tea "github.com/charmbracelet/bubbletea"

// ExportConfirmedMsg carries the path the CSV export should be written to.
type ExportConfirmedMsg struct{ Path string }

// Export asks for the CSV file name.
type Export struct {
	pathInput
}

func NewExportDialog(defaultName, lastDir string) *Export {
	return &Export{newPathInput("Export gesture trace", "Export as: ", "enter to export • esc to cancel",
		defaultName, lastDir, func(p string) tea.Msg { return ExportConfirmedMsg{Path: p} })}
}

func (d *Export) Init() tea.Cmd { return d.input.Focus() }

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	return d, d.update(msg)
}

func (d *Export) View(width int) string { return d.view(width) }
func (d *Export) Focus() tea.Cmd        { return d.input.Focus() }
func (d *Export) Blur()                 { d.input.Blur() }
