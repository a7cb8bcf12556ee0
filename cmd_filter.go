package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheet/logging"
)

func (m *model) setFilterPattern(pattern string) {
	logging.Infof("Setting filter to: %q", pattern)
	m.data.setFilter(pattern)
	m.clampCursor()
}

// region Filtering

func (m *model) startFilter() tea.Cmd {
	m.ui.mode = modeFilter
	m.filterBefore = m.data.filterQuery
	m.filterInput.SetValue(m.data.filterQuery)
	return m.filterInput.Focus()
}

// handleFilterKey edits the query live. Enter keeps it, esc restores the
// query that was active when filtering started.
func (m *model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.ui.mode = modeView
		m.filterInput.Blur()
		return nil
	case tea.KeyEsc:
		m.ui.mode = modeView
		m.filterInput.Blur()
		m.setFilterPattern(m.filterBefore)
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if q := m.filterInput.Value(); q != m.data.filterQuery {
		m.setFilterPattern(q)
	}
	return cmd
}
