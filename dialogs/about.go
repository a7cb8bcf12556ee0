package dialogs

import (
	"strings"

	"github.com/andareed/siftly-sheet/logging"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// About renders a markdown document. Long documents scroll.
type About struct {
	markdown string
	height   int
	vp       viewport.Model

	// rendered is cached per wrap width
	width    int
	rendered string
}

// NewAboutDialog shows markdown in at most height rows.
func NewAboutDialog(markdown string, height int) *About {
	return &About{markdown: markdown, height: height, vp: viewport.New(0, height), width: -1}
}

func (d *About) Init() tea.Cmd { return nil }

func (d *About) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

func (d *About) render(width int) string {
	if width == d.width {
		return d.rendered
	}
	d.width = width
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Warnf("about: glamour renderer: %v", err)
		d.rendered = d.markdown
		return d.rendered
	}
	out, err := r.Render(d.markdown)
	if err != nil {
		logging.Warnf("about: render markdown: %v", err)
		d.rendered = d.markdown
		return d.rendered
	}
	d.rendered = strings.Trim(out, "\n")
	return d.rendered
}

func (d *About) View(width int) string {
	body := d.render(max(width-2, 10))
	lines := strings.Count(body, "\n") + 1
	d.vp.Width = width
	d.vp.Height = min(lines, d.height)
	d.vp.SetContent(body)
	return d.vp.View()
}

func (d *About) Focus() tea.Cmd { return nil }
func (d *About) Blur()          {}
