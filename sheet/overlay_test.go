package sheet

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackdropLinesFitsScreen(t *testing.T) {
	bg := "\x1b[31mred\x1b[0m\nthis line is far too long for the screen"
	lines := backdropLines(bg, 10, 4)

	require.Len(t, lines, 4)
	assert.Equal(t, "red       ", lines[0])
	assert.Equal(t, "this line ", lines[1])
	assert.Equal(t, strings.Repeat(" ", 10), lines[3])
}

func TestCompositeClipsSheetRows(t *testing.T) {
	backdrop := backdropLines("aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc", 10, 3)
	sheet := []string{"XXXX", "YYYY"}

	out := strings.Split(composite(backdrop, sheet, 3, 2, 4, lipgloss.NewStyle()), "\n")
	require.Len(t, out, 3)
	assert.Equal(t, "aaaaaaaaaa", ansi.Strip(out[0]))
	assert.Equal(t, "bbbbbbbbbb", ansi.Strip(out[1]))
	assert.Equal(t, "cccXXXXccc", ansi.Strip(out[2]), "second sheet row falls off screen")
}

func TestCompositeAboveScreen(t *testing.T) {
	backdrop := backdropLines("", 4, 2)
	out := strings.Split(composite(backdrop, []string{"1111", "2222", "3333"}, 0, -1, 4, lipgloss.NewStyle()), "\n")

	assert.Equal(t, []string{"2222", "3333"}, []string{ansi.Strip(out[0]), ansi.Strip(out[1])})
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 1}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 3))
	assert.False(t, r.Contains(6, 3))
	assert.False(t, r.Contains(2, 4))
	assert.False(t, Rect{X: 0, Y: 0, W: 5}.Contains(0, 0), "zero height hits nothing")
	assert.True(t, Rect{X: 0, Y: 0, W: 5}.Empty())
	assert.False(t, r.Empty())
}
