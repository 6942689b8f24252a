package render

import (
	"strings"
	"testing"
	"time"

	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/rules"
	"github.com/stretchr/testify/require"
)

var grid = rules.Grid{Cols: 10, Rows: 8, CellSize: 20}

func snapshot(status controller.Status) controller.Snapshot {
	return controller.Snapshot{
		Status:     status,
		Grid:       grid,
		Snake:      []rules.Cell{{X: 3, Y: 4}, {X: 2, Y: 4}, {X: 1, Y: 4}},
		Direction:  rules.Right,
		Food:       rules.Food{Position: rules.Cell{X: 7, Y: 2}, Category: rules.Diamond},
		HasFood:    status != controller.StatusIdle,
		Score:      1250,
		Level:      4,
		LevelScore: 50,
		Required:   200,
		Progress:   0.25,
		HighScore:  4000,
		Difficulty: rules.Hard,
		Selected:   rules.Hard,
		Speed:      80 * time.Millisecond,
	}
}

func TestDraw_AllStates(t *testing.T) {
	states := []controller.Status{
		controller.StatusIdle,
		controller.StatusRunning,
		controller.StatusPaused,
		controller.StatusEnded,
	}
	for _, st := range states {
		t.Run(string(st), func(t *testing.T) {
			b := NewBuffer(80, 24)
			require.NoError(t, Draw(b, snapshot(st)))
			require.Contains(t, b.String(), "Score  1,250")
		})
	}
}

func TestDraw_Board(t *testing.T) {
	b := NewBuffer(80, 24)
	require.NoError(t, Draw(b, snapshot(controller.StatusRunning)))

	// Corners of the board.
	require.Equal(t, '┌', b.At(left-1, top).Ch)
	require.Equal(t, '┘', b.At(left+grid.Cols*2, top+grid.Rows+1).Ch)

	// Head, body and food.
	x, y := cellPos(rules.Cell{X: 3, Y: 4})
	require.Equal(t, '▶', b.At(x, y).Ch)
	x, y = cellPos(rules.Cell{X: 2, Y: 4})
	require.Equal(t, '█', b.At(x, y).Ch)
	require.Equal(t, '█', b.At(x+1, y).Ch)
	x, y = cellPos(rules.Cell{X: 7, Y: 2})
	require.Equal(t, '◆', b.At(x, y).Ch)
	require.Equal(t, ColorCyan|AttrBold, b.At(x, y).Fg)

	out := b.String()
	require.Contains(t, out, "Level  4")
	require.Contains(t, out, "50/200")
	require.Contains(t, out, "Mode   hard")
	require.Contains(t, out, "High   4,000")
	require.NotContains(t, out, "PAUSED")
}

func TestDraw_Overlays(t *testing.T) {
	b := NewBuffer(80, 24)
	require.NoError(t, Draw(b, snapshot(controller.StatusPaused)))
	require.Contains(t, b.String(), "PAUSED")

	snap := snapshot(controller.StatusEnded)
	snap.NewRecord = true
	require.NoError(t, Draw(b, snap))
	require.Contains(t, b.String(), "GAME OVER")
	require.Contains(t, b.String(), "NEW RECORD!")
	require.Contains(t, b.String(), "score 1,250")

	require.NoError(t, Draw(b, snapshot(controller.StatusIdle)))
	require.Contains(t, b.String(), "space to start")
	require.Contains(t, b.String(), "selected: hard")
}

func TestDraw_HeadOffBoard(t *testing.T) {
	snap := snapshot(controller.StatusEnded)
	snap.Snake = []rules.Cell{{X: 10, Y: 4}, {X: 9, Y: 4}, {X: 8, Y: 4}}

	b := NewBuffer(80, 24)
	require.NoError(t, Draw(b, snap))
	x, y := cellPos(rules.Cell{X: 10, Y: 4})
	require.Equal(t, '│', b.At(x, y).Ch)
}

func TestDraw_SmallCanvas(t *testing.T) {
	b := NewBuffer(5, 3)
	require.NoError(t, Draw(b, snapshot(controller.StatusEnded)))
}

func TestProgressBar(t *testing.T) {
	b := NewBuffer(40, 1)
	renderProgress(b, 0, 0, 0.5)
	require.Equal(t, ColorGreen, b.At(7+9, 0).Bg)
	require.Equal(t, ColorBlack, b.At(7+10, 0).Bg)

	renderProgress(b, 0, 0, 3)
	require.Equal(t, ColorGreen, b.At(7+progressWidth-1, 0).Bg)
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		Hex      string
		Expected Color
	}{
		{Hex: rules.RedPacket.Color, Expected: ColorRed},
		{Hex: rules.Coin.Color, Expected: ColorYellow},
		{Hex: rules.Diamond.Color, Expected: ColorCyan},
		{Hex: rules.Crown.Color, Expected: ColorMagenta},
		{Hex: "#ffffff", Expected: ColorWhite},
		{Hex: "nope", Expected: ColorDefault},
		{Hex: "#zzzzzz", Expected: ColorDefault},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, HexColor(test.Hex), test.Hex)
	}
}

func TestBufferString(t *testing.T) {
	b := NewBuffer(4, 2)
	tbprint(b, 0, 0, ColorDefault, ColorDefault, "hi")
	require.Equal(t, "hi", b.String())
	require.True(t, strings.HasPrefix(b.String(), "hi"))
}
