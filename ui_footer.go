package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type footerState struct {
	Mode      string
	ModeInput string

	FileName string

	FilterLabel string
	SheetLabel  string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	Pill    lipgloss.Style
	File    lipgloss.Style
	Labels  lipgloss.Style
	Rows    lipgloss.Style
	Message lipgloss.Style
	Legend  lipgloss.Style
}

func defaultFooterStyles() footerStyles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("#2b2b2b")).Foreground(lipgloss.Color("#cfcfcf"))
	status := lipgloss.NewStyle().Background(lipgloss.Color("#000000"))
	return footerStyles{
		Pill:    lipgloss.NewStyle().Background(lipgloss.Color("#ff9f1c")).Foreground(lipgloss.Color("#000000")).Bold(true),
		File:    bar.Foreground(lipgloss.Color("#e0e0e0")),
		Labels:  bar.Foreground(lipgloss.Color("#a0a0a0")),
		Rows:    bar,
		Message: status.Foreground(lipgloss.Color("#9a9a9a")),
		Legend:  status.Foreground(lipgloss.Color("#b0b0b0")),
	}
}

const (
	filterValW = 12
	sheetValW  = 10
	minFileW   = 12
)

// renderFooter draws the two footer lines: a control bar and a status bar.
// Each line is exactly width cells wide.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "None"
	}
	if st.SheetLabel == "" {
		st.SheetLabel = "closed"
	}
	if st.Legend == "" {
		st.Legend = "(? help)"
	}
	st.Row = max(st.Row, 0)
	st.TotalRows = max(st.TotalRows, 0)

	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

// renderControlBar lays out pill, file, labels and row counter left to
// right. The counter and pill keep their width; the labels give way before
// the file name drops below minFileW.
func renderControlBar(width int, st footerState, styles footerStyles) string {
	rows := fit(fmt.Sprintf(" Rows %d/%d", st.Row, st.TotalRows), width)
	room := width - runewidth.StringWidth(rows)

	pill := fit(" "+st.Mode+" ", room)
	room -= runewidth.StringWidth(pill)

	labels := fmt.Sprintf("[FILTER: %s] · [SHEET: %s]",
		fit(strings.TrimSpace(st.FilterLabel), filterValW),
		fit(st.SheetLabel, sheetValW))
	labelsW := min(runewidth.StringWidth(labels), max(room-minFileW, 0))
	labels = runewidth.FillRight(fit(labels, labelsW), labelsW)

	fileW := room - labelsW
	file := runewidth.FillRight(fit(fileText(st), fileW), fileW)

	return styles.Pill.Render(pill) + styles.File.Render(file) +
		styles.Labels.Render(labels) + styles.Rows.Render(rows)
}

func fileText(st footerState) string {
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	s := " ▸ " + name
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		s += " ▸ " + input
	}
	return s + " "
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legend := fit(st.Legend, width)
	msgW := width - runewidth.StringWidth(legend)
	msg := runewidth.FillRight(fit(st.StatusMessage, msgW), msgW)
	return styles.Message.Render(msg) + styles.Legend.Render(legend)
}

// fit truncates s to at most w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}
