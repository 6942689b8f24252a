// Package render draws session snapshots onto a character canvas.
package render

import "strings"

// Color is a terminal color, optionally combined with AttrBold.
type Color uint16

// Colors, in the same order as the eight ANSI colors.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// AttrBold brightens a foreground color.
const AttrBold Color = 1 << 9

// Canvas is a grid of character cells. Writes outside Size are ignored.
type Canvas interface {
	SetCell(x, y int, ch rune, fg, bg Color)
	Size() (int, int)
	Clear()
	Flush() error
}

// Cell is one character cell of a Buffer.
type Cell struct {
	Ch rune
	Fg Color
	Bg Color
}

// Buffer is an in memory canvas.
type Buffer struct {
	w, h  int
	cells []Cell
}

// NewBuffer returns a blank w×h buffer.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{w: w, h: h, cells: make([]Cell, w*h)}
	b.Clear()
	return b
}

func (b *Buffer) SetCell(x, y int, ch rune, fg, bg Color) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = Cell{Ch: ch, Fg: fg, Bg: bg}
}

func (b *Buffer) Size() (int, int) { return b.w, b.h }

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' '}
	}
}

func (b *Buffer) Flush() error { return nil }

// At returns the cell at x, y.
func (b *Buffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Cell{}
	}
	return b.cells[y*b.w+x]
}

// String renders the characters, one line per row, without trailing blanks.
func (b *Buffer) String() string {
	lines := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			sb.WriteRune(b.cells[y*b.w+x].Ch)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
