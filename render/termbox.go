package render

import (
	termbox "github.com/nsf/termbox-go"
)

var termboxColors = map[Color]termbox.Attribute{
	ColorDefault: termbox.ColorDefault,
	ColorBlack:   termbox.ColorBlack,
	ColorRed:     termbox.ColorRed,
	ColorGreen:   termbox.ColorGreen,
	ColorYellow:  termbox.ColorYellow,
	ColorBlue:    termbox.ColorBlue,
	ColorMagenta: termbox.ColorMagenta,
	ColorCyan:    termbox.ColorCyan,
	ColorWhite:   termbox.ColorWhite,
}

func toAttribute(c Color) termbox.Attribute {
	a := termboxColors[c&^AttrBold]
	if c&AttrBold != 0 {
		a |= termbox.AttrBold
	}
	return a
}

// Termbox is a Canvas on the terminal. Only one may be open at a time.
type Termbox struct{}

// OpenTermbox takes over the terminal until Close.
func OpenTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return &Termbox{}, nil
}

func (*Termbox) SetCell(x, y int, ch rune, fg, bg Color) {
	termbox.SetCell(x, y, ch, toAttribute(fg), toAttribute(bg))
}

func (*Termbox) Size() (int, int) { return termbox.Size() }

func (*Termbox) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (*Termbox) Flush() error { return termbox.Flush() }

// Close gives the terminal back.
func (*Termbox) Close() { termbox.Close() }
