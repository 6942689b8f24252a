package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	termbox "github.com/nsf/termbox-go"
	"github.com/snakearcade/engine/config"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/rules"
	"github.com/snakearcade/engine/worker"
	"github.com/stretchr/testify/require"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		want action
		ok   bool
	}{
		{"arrow", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, action{event: worker.DirectionEvent{Direction: rules.Left}}, true},
		{"wasd", termbox.Event{Type: termbox.EventKey, Ch: 'w'}, action{event: worker.DirectionEvent{Direction: rules.Up}}, true},
		{"upper case", termbox.Event{Type: termbox.EventKey, Ch: 'D'}, action{event: worker.DirectionEvent{Direction: rules.Right}}, true},
		{"pause", termbox.Event{Type: termbox.EventKey, Ch: 'p'}, action{event: worker.TogglePauseEvent{}}, true},
		{"esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, action{event: worker.TogglePauseEvent{}}, true},
		{"space", termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, action{event: worker.StartEvent{}}, true},
		{"enter", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, action{event: worker.StartEvent{}}, true},
		{"restart", termbox.Event{Type: termbox.EventKey, Ch: 'r'}, action{event: worker.RestartEvent{}}, true},
		{"menu", termbox.Event{Type: termbox.EventKey, Ch: 'm'}, action{event: worker.MenuEvent{}}, true},
		{"hard", termbox.Event{Type: termbox.EventKey, Ch: '3'}, action{event: worker.SelectDifficultyEvent{Name: "hard"}}, true},
		{"quit", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, action{event: worker.QuitEvent{}}, true},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, action{event: worker.QuitEvent{}}, true},
		{"mute", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, action{mute: true}, true},
		{"unbound", termbox.Event{Type: termbox.EventKey, Ch: 'z'}, action{}, false},
		{"resize", termbox.Event{Type: termbox.EventResize}, action{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := keyAction(test.ev)
			require.Equal(t, test.ok, ok)
			if ok {
				require.Equal(t, test.want, got)
			}
		})
	}
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		kind string
		dsn  string
	}{
		{config.StoreMem, ""},
		{config.StoreFile, filepath.Join(dir, "highscore.json")},
		{config.StoreSQLite, filepath.Join(dir, "highscore.db")},
	}
	for _, test := range tests {
		t.Run(test.kind, func(t *testing.T) {
			store, err := openStore(test.kind, test.dsn)
			require.NoError(t, err)
			defer closeStore(store)

			var out bytes.Buffer
			require.NoError(t, highScore(context.Background(), &out, store, 1250))
			require.Equal(t, "1,250 is the new high score\nhigh score: 1,250\n", out.String())

			out.Reset()
			require.NoError(t, highScore(context.Background(), &out, store, 10))
			require.Equal(t, "10 did not beat the high score\nhigh score: 1,250\n", out.String())
		})
	}
}

func TestOpenStoreErrors(t *testing.T) {
	_, err := openStore("floppy", "")
	require.Error(t, err)

	_, err = openStore(config.StoreRedis, "://nope")
	require.Error(t, err)
}

func TestHighScoreReadOnly(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, highScore(context.Background(), &out, controller.InMemStore(), -1))
	require.Equal(t, "high score: 0\n", out.String())
}

func TestSimulateIsDeterministic(t *testing.T) {
	grid := rules.ComputeGrid(200, 200, rules.DefaultCellSize)

	a, err := simulate(context.Background(), grid, rules.Normal, 99, 500, worker.Autopilot)
	require.NoError(t, err)
	b, err := simulate(context.Background(), grid, rules.Normal, 99, 500, worker.Autopilot)
	require.NoError(t, err)

	require.Equal(t, a.Ticks, b.Ticks)
	require.Equal(t, a.Snapshot.Score, b.Snapshot.Score)
	require.Equal(t, a.Snapshot.Snake, b.Snapshot.Snake)
	require.Equal(t, a.Snapshot.Food, b.Snapshot.Food)
}

func TestParseScript(t *testing.T) {
	dirs, err := parseScript("up, Left,down,right")
	require.NoError(t, err)
	require.Equal(t, []rules.Direction{rules.Up, rules.Left, rules.Down, rules.Right}, dirs)

	_, err = parseScript("up,sideways")
	require.Error(t, err)
}

func TestSimulateScripted(t *testing.T) {
	grid := rules.ComputeGrid(200, 200, rules.DefaultCellSize)
	dirs, err := parseScript("up,up,up,up,up,up")
	require.NoError(t, err)

	// Head starts at row 5 of 10 and leaves the board on the sixth move up.
	res, err := simulate(context.Background(), grid, rules.Normal, 1, 0, worker.Script(dirs...))
	require.NoError(t, err)
	require.True(t, res.Ended)
	require.Equal(t, 6, res.Ticks)
	require.Equal(t, rules.DeathCauseWallCollision, res.End.Cause)
}

func TestReport(t *testing.T) {
	res := worker.RunResult{
		Ticks: 1200,
		Ended: true,
		End:   controller.EndResult{Cause: rules.DeathCauseWallCollision},
		Snapshot: controller.Snapshot{
			Status:     controller.StatusEnded,
			Grid:       rules.Grid{Cols: 10, Rows: 10, CellSize: 20},
			Snake:      []rules.Cell{{X: 9, Y: 0}, {X: 8, Y: 0}, {X: 7, Y: 0}},
			Score:      4500,
			Level:      12,
			Difficulty: rules.Easy,
		},
	}

	simRender = true
	defer func() { simRender = false }()

	var out bytes.Buffer
	require.NoError(t, report(&out, 7, res))
	text := out.String()
	require.Contains(t, text, "seed:       7\n")
	require.Contains(t, text, "ticks:      1,200")
	require.Contains(t, text, "outcome:    wall-collision\n")
	require.Contains(t, text, "score:      4,500\n")
	require.Contains(t, text, "length:     3 of 100 cells\n")
	require.Contains(t, text, "GAME OVER")
}

func TestFitGrid(t *testing.T) {
	g := fitGrid(120, 40)
	require.Equal(t, 36, g.Rows)
	require.Equal(t, g.Cols, g.Rows)

	// A tiny terminal still gets the smallest board.
	g = fitGrid(10, 5)
	require.Equal(t, rules.MinCanvasSize/rules.DefaultCellSize, g.Cols)
}

func TestApplyFlags(t *testing.T) {
	cfg = config.Default()
	defer func() { cfg = config.Default() }()

	require.NoError(t, playCmd.Flags().Set("difficulty", "hard"))
	require.NoError(t, playCmd.Flags().Set("cell-size", "10"))
	require.NoError(t, playCmd.Flags().Set("mute", "true"))
	require.NoError(t, applyFlags(playCmd))

	require.Equal(t, "hard", cfg.Difficulty)
	require.Equal(t, 10, cfg.CellSize)
	require.True(t, cfg.Muted)
	require.Equal(t, config.Default().Width, cfg.Width)
}
