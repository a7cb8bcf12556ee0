package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// backdropLines flattens background into exactly height plain lines of
// exactly width cells. Styling is dropped so the backdrop color can be
// applied uniformly.
func backdropLines(background string, width, height int) []string {
	src := strings.Split(background, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = ansi.Strip(src[i])
		}
		out[i] = fitPlain(line, width)
	}
	return out
}

func fitPlain(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// composite splices sheet lines over the dimmed backdrop. Sheet line i is
// drawn at screen row top+i, starting at column left; rows outside the
// screen are clipped.
func composite(backdrop []string, sheet []string, left, top, sheetWidth int, dim lipgloss.Style) string {
	out := make([]string, len(backdrop))
	for y, plain := range backdrop {
		i := y - top
		if i < 0 || i >= len(sheet) {
			out[y] = dim.Render(plain)
			continue
		}
		var b strings.Builder
		if left > 0 {
			b.WriteString(dim.Render(ansi.Truncate(plain, left, "")))
		}
		b.WriteString(resetSeq)
		b.WriteString(sheet[i])
		b.WriteString(resetSeq)
		if rest := ansi.TruncateLeft(plain, left+sheetWidth, ""); rest != "" {
			b.WriteString(dim.Render(rest))
		}
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}
