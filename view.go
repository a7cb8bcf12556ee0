package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-sheet/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.sheet.View(m.backgroundView())
}

// backgroundView is the list and footer the sheet is drawn over.
func (m *model) backgroundView() string {
	m.viewport.SetContent(m.renderList())
	list := tableStyle.Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, list, m.footerView(m.terminalWidth))
}

func (m *model) gutterWidth() int {
	return len(fmt.Sprintf("%d", len(m.data.rows)+1))
}

func (m *model) renderList() string {
	if len(m.data.filteredIndices) == 0 {
		msg := "no rows"
		if m.data.filterQuery != "" {
			msg = fmt.Sprintf("no rows match %q", m.data.filterQuery)
		}
		return emptyListStyle.Render(msg)
	}

	h := m.viewport.Height
	end := min(m.ui.top+h, len(m.data.filteredIndices))
	lines := make([]string, 0, end-m.ui.top)
	for pos := m.ui.top; pos < end; pos++ {
		lines = append(lines, m.renderRowAt(pos))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderRowAt(pos int) string {
	idx := m.data.filteredIndices[pos]
	r := m.data.rows[idx]
	w := m.viewport.Width

	gutter := gutterStyle.Render(fmt.Sprintf("%*d ", m.gutterWidth(), r.originalIndex))
	textW := max(w-ansi.StringWidth(gutter), 0)

	style := rowTextStyle
	if pos == m.cursor {
		style = rowSelectedStyle
	}
	text := ansi.Truncate(r.text, textW, "…")
	if matched := m.data.matched[idx]; len(matched) > 0 {
		text = highlightMatches(text, matched, style)
	} else {
		text = style.Render(text)
	}
	if pad := textW - ansi.StringWidth(text); pad > 0 {
		text += style.Render(strings.Repeat(" ", pad))
	}
	return gutter + text
}

// highlightMatches styles the bytes at the fuzzy match offsets. Offsets past
// a truncation are simply not found.
func highlightMatches(text string, offsets []int, base lipgloss.Style) string {
	hit := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		hit[o] = true
	}
	var b, run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runHit {
			b.WriteString(searchHighlight.Render(run.String()))
		} else {
			b.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}
	for i, r := range text {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

func (m *model) sheetStatusLabel() string {
	switch {
	case !m.sheet.Mounted():
		return "closed"
	case m.sheet.Dragging():
		return fmt.Sprintf("%s ↓%.0f", m.ui.sheet, m.sheet.Offset())
	case m.sheet.Visible() && m.sheet.Animating():
		return "opening"
	case m.sheet.Visible():
		return m.ui.sheet.String()
	default:
		return "closing"
	}
}

func (m *model) footerView(width int) string {
	st := footerState{
		Mode:        "NORMAL",
		FileName:    m.data.source,
		FilterLabel: "None",
		SheetLabel:  m.sheetStatusLabel(),
		Row:         m.cursor + 1,
		TotalRows:   len(m.data.filteredIndices),
		Legend:      "(? help · / filter · enter details · a about · s save · e export)",
	}
	if len(m.data.filteredIndices) == 0 {
		st.Row = 0
	}
	switch {
	case m.sheet.Mounted():
		st.Mode = "SHEET"
	case m.ui.mode == modeFilter:
		st.Mode = "FILTER"
		st.ModeInput = m.filterInput.Prompt + m.filterInput.Value() + "▏"
	}
	if m.data.filterQuery != "" {
		st.FilterLabel = m.data.filterQuery
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		v := m.sheet.VisibilityState()
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d top=%d mounted=%v target=%v trace=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.ui.top, v.Mounted, v.TargetVisible, m.trace.Len())
	}
	return renderFooter(width, st, defaultFooterStyles())
}
