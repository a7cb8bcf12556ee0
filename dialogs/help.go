package dialogs

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Help lists the host's key bindings.
type Help struct {
	keys help.KeyMap
	view help.Model
}

func NewHelpDialog(keys help.KeyMap) *Help {
	h := help.New()
	h.ShowAll = true
	return &Help{keys: keys, view: h}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) { return d, nil }

func (d *Help) View(width int) string {
	d.view.Width = width
	return frame("Keys", d.view.View(d.keys), "drag the handle down, click outside or press esc to close", width)
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
