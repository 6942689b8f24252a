package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/rules"
)

const (
	defaultColor = ColorDefault
	bgColor      = ColorDefault
	borderColor  = ColorWhite

	left = 2
	top  = 2

	progressWidth = 20
)

var headGlyphs = map[rules.Direction]rune{
	rules.Up:    '▲',
	rules.Down:  '▼',
	rules.Left:  '◀',
	rules.Right: '▶',
}

var foodGlyphs = map[rules.Shape]rune{
	rules.ShapeSquare:  '■',
	rules.ShapeCircle:  '●',
	rules.ShapeDiamond: '◆',
	rules.ShapeCrown:   '♛',
}

// Draw renders snap onto c and flushes it. Every board cell is two columns
// wide so the board keeps its proportions in a terminal.
func Draw(c Canvas, snap controller.Snapshot) error {
	c.Clear()

	cols, rows := snap.Grid.Cols, snap.Grid.Rows
	right := left + cols*2
	bottom := top + rows + 1

	renderTitle(c, snap)
	renderBoard(c, right, bottom)
	if snap.HasFood {
		renderFood(c, snap.Food)
	}
	renderSnake(c, snap)
	renderHUD(c, right+3, snap)

	switch snap.Status {
	case controller.StatusIdle:
		renderOverlay(c, right, bottom, []string{
			"S N A K E",
			"",
			"1 easy  2 normal  3 hard",
			"selected: " + snap.Selected.Name,
			"",
			"space to start",
		})
	case controller.StatusPaused:
		renderOverlay(c, right, bottom, []string{
			"PAUSED",
			"",
			"p resume  r restart  m menu",
		})
	case controller.StatusEnded:
		lines := []string{
			"GAME OVER",
			"",
			"score " + humanize.Comma(int64(snap.Score)),
			fmt.Sprintf("level %d", snap.Level),
		}
		if snap.NewRecord {
			lines = append(lines, "NEW RECORD!")
		}
		lines = append(lines, "", "r restart  m menu")
		renderOverlay(c, right, bottom, lines)
	}

	return c.Flush()
}

func renderTitle(c Canvas, snap controller.Snapshot) {
	tbprint(c, left, top-1, defaultColor|AttrBold, bgColor, fmt.Sprintf("Snake! - Tick %d", snap.Ticks))
}

func renderBoard(c Canvas, right, bottom int) {
	for i := top + 1; i < bottom; i++ {
		c.SetCell(left-1, i, '│', borderColor, bgColor)
		c.SetCell(right, i, '│', borderColor, bgColor)
	}

	c.SetCell(left-1, top, '┌', borderColor, bgColor)
	c.SetCell(left-1, bottom, '└', borderColor, bgColor)
	c.SetCell(right, top, '┐', borderColor, bgColor)
	c.SetCell(right, bottom, '┘', borderColor, bgColor)

	fill(c, left, top, right-left, 1, Cell{Ch: '─', Fg: borderColor})
	fill(c, left, bottom, right-left, 1, Cell{Ch: '─', Fg: borderColor})
}

// cellPos is the screen position of the left column of a board cell.
func cellPos(p rules.Cell) (int, int) {
	return left + p.X*2, top + 1 + p.Y
}

func renderSnake(c Canvas, snap controller.Snapshot) {
	// Tail first so the head wins on a self collision. A head that left the
	// board is not drawn.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		if !snap.Grid.Contains(p) {
			continue
		}
		x, y := cellPos(p)
		color := segmentColor(i)
		if i > 0 {
			c.SetCell(x, y, '█', color, bgColor)
			c.SetCell(x+1, y, '█', color, bgColor)
			continue
		}
		ch := headGlyphs[snap.Direction]
		if snap.GameOver() {
			ch = '✖'
		}
		c.SetCell(x, y, ch, ColorBlack, color)
		c.SetCell(x+1, y, ' ', ColorBlack, color)
	}
}

func renderFood(c Canvas, food rules.Food) {
	x, y := cellPos(food.Position)
	ch, ok := foodGlyphs[food.Category.Shape]
	if !ok {
		ch = '*'
	}
	c.SetCell(x, y, ch, HexColor(food.Category.Color)|AttrBold, bgColor)
}

func renderHUD(c Canvas, x int, snap controller.Snapshot) {
	y := top
	line := func(format string, args ...interface{}) {
		tbprint(c, x, y, defaultColor, bgColor, fmt.Sprintf(format, args...))
		y++
	}

	line("Score  %s", humanize.Comma(int64(snap.Score)))
	line("High   %s", humanize.Comma(int64(snap.HighScore)))
	y++
	line("Level  %d", snap.Level)
	renderProgress(c, x, y, snap.Progress)
	y++
	if snap.Required > 0 {
		line("       %d/%d", snap.LevelScore, snap.Required)
	} else {
		y++
	}
	y++
	difficulty := snap.Difficulty.Name
	if snap.Status == controller.StatusIdle || snap.Status == controller.StatusEnded {
		difficulty = snap.Selected.Name
	}
	line("Mode   %s", difficulty)
	if snap.Speed > 0 {
		line("Speed  %s", snap.Speed)
	}
	y++
	for _, cat := range rules.FoodCatalog {
		c.SetCell(x, y, foodGlyphs[cat.Shape], HexColor(cat.Color)|AttrBold, bgColor)
		tbprint(c, x+2, y, defaultColor, bgColor, fmt.Sprintf("%-10s %3d", cat.Name, cat.Value))
		y++
	}
}

func renderProgress(c Canvas, x, y int, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	filled := int(fraction * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	tbprint(c, x, y, defaultColor, bgColor, "Next")
	for i := 0; i < progressWidth; i++ {
		color := ColorBlack
		if i < filled {
			color = ColorGreen
		}
		c.SetCell(x+7+i, y, ' ', color, color)
	}
}

// renderOverlay centers lines over the board inside a blank box clipped to
// the board interior.
func renderOverlay(c Canvas, right, bottom int, lines []string) {
	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	width += 4
	height := len(lines) + 2

	x0 := left + (right-left-width)/2
	y0 := top + 1 + (bottom-top-1-height)/2
	clip := clipped{Canvas: c, x0: left, y0: top + 1, x1: right, y1: bottom}
	fill(clip, x0, y0, width, height, Cell{Ch: ' '})
	for i, l := range lines {
		x := x0 + (width-runewidth.StringWidth(l))/2
		fg := defaultColor
		if i == 0 || strings.HasPrefix(l, "NEW RECORD") {
			fg = ColorYellow | AttrBold
		}
		tbprint(clip, x, y0+1+i, fg, bgColor, l)
	}
}

// clipped drops writes outside [x0,x1)×[y0,y1).
type clipped struct {
	Canvas
	x0, y0, x1, y1 int
}

func (c clipped) SetCell(x, y int, ch rune, fg, bg Color) {
	if x < c.x0 || y < c.y0 || x >= c.x1 || y >= c.y1 {
		return
	}
	c.Canvas.SetCell(x, y, ch, fg, bg)
}

func fill(c Canvas, x, y, w, h int, cell Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			c.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(c Canvas, x, y int, fg, bg Color, msg string) {
	for _, ch := range msg {
		c.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}
