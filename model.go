package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-sheet/clipboard"
	"github.com/andareed/siftly-sheet/config"
	"github.com/andareed/siftly-sheet/dialogs"
	"github.com/andareed/siftly-sheet/logging"
	"github.com/andareed/siftly-sheet/sheet"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	configReloadedMsg struct {
		cfg config.Config
		err error
	}
	copiedMsg struct {
		method clipboard.Method
		err    error
	}
)

type model struct {
	data  dataState
	ui    uiState
	trace *gestureTrace

	sheet *sheet.Model
	// sheetVisible is the host's visible flag; the sheet only mirrors it.
	sheetVisible bool
	dialog       dialogs.Dialog

	viewport     viewport.Model
	filterInput  textinput.Model
	filterBefore string
	cursor       int // position in data.filteredIndices

	terminalWidth  int
	terminalHeight int
	ready          bool
	lastDir        string
}

func newModel(source string, rows []row, cfg config.Config) *model {
	fi := textinput.New()
	fi.Placeholder = "fuzzy filter..."
	fi.Prompt = "/"
	fi.CharLimit = 156
	fi.Width = 40

	m := &model{
		data:        dataState{source: source, rows: rows},
		trace:       newGestureTrace(),
		filterInput: fi,
	}
	m.sheet = sheet.New(m.sheetContent, cfg.Sheet.Options()...)
	m.data.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sfsheet: initialised with %d rows from %s", len(m.data.rows), m.data.source)
	return tea.SetWindowTitle("sfsheet " + m.data.source)
}

func (m *model) sheetContent(width int) string {
	if m.dialog == nil {
		return ""
	}
	return m.dialog.View(width)
}

func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height
	m.viewport = viewport.New(max(width-2, 1), max(height-4, 1))
	m.ready = width > 0 && height > 0
	m.scrollToCursor()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m, m.updateKey(msg)
	case tea.MouseMsg:
		if !m.sheet.Mounted() {
			return m, m.handleListMouse(msg)
		}
	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg, m.ui.noticeType = "", ""
		}
		return m, nil

	case sheet.CloseRequestedMsg:
		if msg.ID != m.sheet.ID() {
			return m, nil
		}
		m.trace.add("close-requested", msg.Reason.String(), m.sheet.Offset())
		return m, m.closeSheet()
	case sheet.ClosedMsg:
		// a sheet reopened before this arrived keeps its content
		if msg.ID != m.sheet.ID() || m.sheet.Mounted() {
			return m, nil
		}
		m.trace.add("closed", m.ui.sheet.String(), 0)
		m.dialog = nil
		m.ui.sheet = sheetNone
		return m, nil
	case sheet.InteractionMsg:
		m.trace.add("handle-"+msg.Kind.String(), "", m.sheet.Offset())
		return m, nil

	case dialogs.SaveConfirmedMsg:
		return m, m.writeTrace(msg.Path, SaveTrace, "saved")
	case dialogs.ExportConfirmedMsg:
		return m, m.writeTrace(msg.Path, func(t *gestureTrace, _ string, p string) error { return ExportTrace(t, p) }, "exported")
	case copiedMsg:
		if msg.err != nil {
			return m, m.startNotice(msg.err.Error(), noticeError, noticeDuration)
		}
		return m, m.startNotice(fmt.Sprintf("row copied (%s)", msg.method), noticeSuccess, noticeDuration)
	case configReloadedMsg:
		if msg.err != nil {
			return m, m.startNotice("config: "+msg.err.Error(), noticeError, 2*noticeDuration)
		}
		cancel := m.sheet.SetOptions(msg.cfg.Sheet.Options()...)
		return m, tea.Batch(cancel, m.startNotice("config reloaded", noticeInfo, noticeDuration))
	}

	// frames, focus and size all belong to the sheet as well
	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	cmds := []tea.Cmd{cmd}

	// cursor blinks and scrolling for whatever is showing
	if m.dialog != nil && m.sheet.Mounted() {
		m.dialog, cmd = m.dialog.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.ui.mode == modeFilter {
		m.filterInput, cmd = m.filterInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *model) updateKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.sheet.Mounted() {
		return m.handleSheetKey(msg)
	}
	if m.ui.mode == modeFilter {
		return m.handleFilterKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleSheetKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, Keys.Back) {
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(msg)
		return cmd
	}
	if !m.sheetVisible || m.dialog == nil {
		return nil
	}
	if m.ui.sheet == sheetDetails && key.Matches(msg, Keys.CopyRow) {
		return m.copyCurrentRow()
	}
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return cmd
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit
	case key.Matches(msg, Keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, Keys.PageDown):
		m.moveCursor(m.viewport.Height)
	case key.Matches(msg, Keys.PageUp):
		m.moveCursor(-m.viewport.Height)
	case key.Matches(msg, Keys.Top):
		m.moveCursor(-len(m.data.filteredIndices))
	case key.Matches(msg, Keys.Bottom):
		m.moveCursor(len(m.data.filteredIndices))
	case key.Matches(msg, Keys.Filter):
		return m.startFilter()
	case key.Matches(msg, Keys.ClearFilter):
		m.setFilterPattern("")
		m.filterInput.SetValue("")
	case key.Matches(msg, Keys.Details):
		return m.openDetails()
	case key.Matches(msg, Keys.OpenHelp):
		return m.openSheet(sheetHelp, dialogs.NewHelpDialog(Keys))
	case key.Matches(msg, Keys.About):
		return m.openSheet(sheetAbout, dialogs.NewAboutDialog(aboutMarkdown, max(m.terminalHeight/2, 5)))
	case key.Matches(msg, Keys.SaveToFile):
		return m.openSheet(sheetSave, dialogs.NewSaveDialog(m.defaultTraceName(".json"), m.lastDir))
	case key.Matches(msg, Keys.ExportFile):
		return m.openSheet(sheetExport, dialogs.NewExportDialog(m.defaultTraceName(".csv"), m.lastDir))
	case key.Matches(msg, Keys.CopyRow):
		return m.copyCurrentRow()
	}
	return nil
}

func (m *model) handleListMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// row 0 is the list border
		line := msg.Y - 1
		if line < 0 || line >= m.viewport.Height {
			return nil
		}
		pos := m.ui.top + line
		if pos < len(m.data.filteredIndices) {
			m.cursor = pos
		}
	}
	return nil
}

// --- Cursor -----------------------------------------------------------------

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *model) clampCursor() {
	n := len(m.data.filteredIndices)
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
	m.scrollToCursor()
}

// scrollToCursor keeps the cursor inside the drawn window.
func (m *model) scrollToCursor() {
	h := max(m.viewport.Height, 1)
	if m.cursor < m.ui.top {
		m.ui.top = m.cursor
	}
	if m.cursor >= m.ui.top+h {
		m.ui.top = m.cursor - h + 1
	}
	m.ui.top = max(min(m.ui.top, len(m.data.filteredIndices)-h), 0)
}

func (m *model) currentRow() (row, bool) {
	return m.data.rowAt(m.cursor)
}

// --- Sheets -----------------------------------------------------------------

func (m *model) openSheet(kind sheetKind, d dialogs.Dialog) tea.Cmd {
	if m.dialog != nil {
		m.dialog.Blur()
	}
	m.dialog = d
	m.ui.sheet = kind
	m.sheetVisible = true
	m.trace.add("show", kind.String(), 0)
	logging.Debug("host: open sheet", "kind", kind.String())
	return tea.Batch(d.Init(), m.sheet.SetVisible(true))
}

func (m *model) closeSheet() tea.Cmd {
	if !m.sheetVisible {
		return nil
	}
	m.sheetVisible = false
	if m.dialog != nil {
		m.dialog.Blur()
	}
	m.trace.add("hide", m.ui.sheet.String(), m.sheet.Offset())
	return m.sheet.SetVisible(false)
}

func (m *model) openDetails() tea.Cmd {
	r, ok := m.currentRow()
	if !ok {
		return m.startNotice("no row selected", noticeWarn, noticeDuration)
	}
	fields := []dialogs.Field{
		{Label: "Line", Value: fmt.Sprintf("%d", r.originalIndex)},
		{Label: "Source", Value: m.data.source},
		{Label: "ID", Value: fmt.Sprintf("%016x", r.id)},
		{Label: "Text", Value: r.text},
	}
	if m.data.filterQuery != "" {
		fields = append(fields, dialogs.Field{Label: "Filter", Value: m.data.filterQuery})
	}
	return m.openSheet(sheetDetails, dialogs.NewDetailsDialog(fmt.Sprintf("Row %d", r.originalIndex), fields))
}

func (m *model) copyCurrentRow() tea.Cmd {
	r, ok := m.currentRow()
	if !ok {
		return m.startNotice("no row selected", noticeWarn, noticeDuration)
	}
	text := r.String()
	return func() tea.Msg {
		method, err := clipboard.Copy(text)
		return copiedMsg{method: method, err: err}
	}
}

func (m *model) defaultTraceName(ext string) string {
	base := strings.TrimSuffix(filepath.Base(m.data.source), filepath.Ext(m.data.source))
	if base == "" || base == "." || m.data.source == sampleSource {
		base = "sfsheet"
	}
	return base + "-trace" + ext
}

func (m *model) writeTrace(path string, write func(*gestureTrace, string, string) error, verb string) tea.Cmd {
	closeCmd := m.closeSheet()
	if err := write(m.trace, m.data.source, path); err != nil {
		logging.Errorf("trace %s to %s failed: %v", verb, path, err)
		return tea.Batch(closeCmd, m.startNotice(err.Error(), noticeError, 2*noticeDuration))
	}
	m.lastDir = filepath.Dir(path)
	logging.Infof("trace %s to %s (%d events)", verb, path, m.trace.Len())
	return tea.Batch(closeCmd, m.startNotice(fmt.Sprintf("%s %d events to %s", verb, m.trace.Len(), path), noticeSuccess, noticeDuration))
}
