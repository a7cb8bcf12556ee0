package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterLinesMatchWidth(t *testing.T) {
	st := footerState{
		Mode:          "FILTER",
		ModeInput:     "/nginx",
		FileName:      "/var/log/some/rather/long/path/host.log",
		FilterLabel:   "nginx",
		SheetLabel:    "details",
		Row:           4,
		TotalRows:     120,
		StatusMessage: "saved 12 events to trace.json",
	}
	for _, w := range []int{40, 80, 132} {
		out := renderFooter(w, st, defaultFooterStyles())
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		for i, l := range lines {
			assert.Equal(t, w, ansi.StringWidth(l), "width %d line %d", w, i)
		}
	}
}

func TestFooterContent(t *testing.T) {
	out := ansi.Strip(renderFooter(100, footerState{Mode: "NORMAL", FileName: "host.log", Row: 1, TotalRows: 3}, defaultFooterStyles()))

	assert.Contains(t, out, " NORMAL ")
	assert.Contains(t, out, "▸ host.log")
	assert.Contains(t, out, "[FILTER: None] · [SHEET: closed]")
	assert.Contains(t, out, "Rows 1/3")
	assert.Contains(t, out, "(? help)")
}

func TestFooterZeroWidth(t *testing.T) {
	assert.Empty(t, renderFooter(0, footerState{}, defaultFooterStyles()))
}
