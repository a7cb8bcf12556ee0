package dialogs

import (
	"path/filepath"

	"github.com/andareed/siftly-sheet/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pathInput is the file name prompt shared by Save and Export.
type pathInput struct {
	title   string
	hint    string
	input   textinput.Model
	lastDir string
	confirm func(path string) tea.Msg
}

func newPathInput(title, prompt, hint, defaultName, lastDir string, confirm func(string) tea.Msg) pathInput {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return pathInput{title: title, hint: hint, input: ti, lastDir: lastDir, confirm: confirm}
}

// resolve picks the typed path, falling back to the placeholder, and puts
// bare file names in lastDir.
func (p *pathInput) resolve() string {
	val := p.input.Value()
	if val == "" {
		val = p.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if p.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		val = filepath.Join(p.lastDir, filepath.Base(val))
	}
	return val
}

func (p *pathInput) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		path := p.resolve()
		logging.Debug("dialog: path confirmed", "title", p.title, "path", path)
		if path == "" {
			return nil
		}
		return func() tea.Msg { return p.confirm(path) }
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *pathInput) view(width int) string {
	p.input.Width = max(width-len(p.input.Prompt)-3, 10)
	return frame(p.title, p.input.View(), p.hint, width)
}
