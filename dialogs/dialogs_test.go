package dialogs

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enter(t *testing.T, d Dialog) tea.Msg {
	t.Helper()
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	return cmd()
}

func TestSaveConfirmsTypedPath(t *testing.T) {
	d := NewSaveDialog("", "")
	d.Init()
	for _, r := range "trace.json" {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, SaveConfirmedMsg{Path: "trace.json"}, enter(t, d))
}

func TestSaveFallsBackToPlaceholderInLastDir(t *testing.T) {
	d := NewSaveDialog("trace.json", "/tmp/out")
	d.input.SetValue("")
	assert.Equal(t, SaveConfirmedMsg{Path: filepath.Join("/tmp/out", "trace.json")}, enter(t, d))
}

func TestSaveWithoutNameDoesNothing(t *testing.T) {
	d := NewSaveDialog("", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestExportKeepsAbsolutePath(t *testing.T) {
	d := NewExportDialog("/var/log/trace.csv", "/tmp/out")
	assert.Equal(t, ExportConfirmedMsg{Path: "/var/log/trace.csv"}, enter(t, d))
}

func TestPathDialogViewFitsWidth(t *testing.T) {
	d := NewExportDialog("trace.csv", "")
	out := ansi.Strip(d.View(40))
	assert.Contains(t, out, "Export gesture trace")
	assert.Contains(t, out, "Export as: ")
}

type keys struct{ quit, open key.Binding }

func (k keys) ShortHelp() []key.Binding  { return []key.Binding{k.quit} }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.quit, k.open}} }

func TestHelpListsBindings(t *testing.T) {
	d := NewHelpDialog(keys{
		quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	})
	out := ansi.Strip(d.View(60))
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "details")
}

func TestDetailsAlignsLabels(t *testing.T) {
	d := NewDetailsDialog("Row 3", []Field{{"Line", "3"}, {"Text", "hello world"}})
	out := ansi.Strip(d.View(40))
	assert.Contains(t, out, "Row 3")
	assert.Contains(t, out, "Line  3")
	assert.Contains(t, out, "Text  hello world")
}

func TestAboutRendersMarkdown(t *testing.T) {
	d := NewAboutDialog("# Title\n\nSome *text*.", 10)
	out := ansi.Strip(d.View(50))
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some text.")
	assert.NotContains(t, out, "*text*")
}
