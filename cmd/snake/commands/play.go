package commands

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"time"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/audio"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/render"
	"github.com/snakearcade/engine/rules"
	"github.com/snakearcade/engine/worker"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// hudWidth is the room the score panel needs right of the board.
const hudWidth = 36

var (
	playLogFile = filepath.Join(os.TempDir(), "snake.log")
	playFit     = false
)

func init() {
	playCmd.Flags().String("difficulty", "", "difficulty, one of: [easy, normal, hard]")
	playCmd.Flags().Int("width", 0, "canvas width")
	playCmd.Flags().Int("height", 0, "canvas height")
	playCmd.Flags().Int("cell-size", 0, "canvas units per board cell")
	playCmd.Flags().String("store", "", "high score store, one of: [mem, file, redis, sqlite, postgres]")
	playCmd.Flags().String("dsn", "", "store specific path, URL or DSN")
	playCmd.Flags().Bool("mute", false, "start with sound muted")
	playCmd.Flags().Float64("max-fps", 0, "maximum frames drawn per second")
	playCmd.Flags().StringVar(&playLogFile, "log-file", playLogFile, "file to log to while the terminal is in use")
	playCmd.Flags().BoolVar(&playFit, "fit", playFit, "size the board to the terminal")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		logFile, err := os.OpenFile(playLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "unable to open log file")
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		defer log.SetOutput(os.Stderr)

		store, err := openStore(cfg.Store, cfg.StoreDSN)
		if err != nil {
			return err
		}
		defer closeStore(store)

		screen, err := render.OpenTermbox()
		if err != nil {
			return errors.Wrap(err, "unable to open terminal")
		}
		defer screen.Close()

		grid, err := cfg.Grid()
		if err != nil {
			return err
		}
		if playFit {
			grid = fitGrid(screen.Size())
		}

		sound := audio.NewSoundManager()
		sound.SetSFXVolume(cfg.SFXVolume)
		sound.SetBGMVolume(cfg.BGMVolume)
		sound.SetMuted(cfg.Muted)
		defer sound.Cleanup()

		d, _ := rules.LookupDifficulty(cfg.Difficulty)
		session, err := controller.New(grid,
			controller.WithStore(store),
			controller.WithDifficulty(d),
			controller.WithNotifier(controller.MultiNotifier{controller.LogNotifier{}, sound}),
			controller.WithMetrics(controller.NewMetrics(prom.DefaultRegisterer)),
		)
		if err != nil {
			return err
		}

		loop := worker.NewLoop(session, 16)
		throttle := render.NewThrottle(screen, cfg.FPS())
		loop.OnFrame = throttle.Frame

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go readInput(ctx, loop, sound)
		go flushFrames(ctx, throttle, cfg.FPS())

		log.WithFields(log.Fields{
			"Grid":       grid,
			"Difficulty": d.Name,
			"Store":      cfg.Store,
		}).Info("starting game")
		err = loop.Run(ctx)
		// Unblock the input goroutine's PollEvent.
		termbox.Interrupt()
		return err
	},
}

// fitGrid sizes a square board to a w x h terminal, one row per cell and two
// columns per cell, leaving room for the border and the HUD.
func fitGrid(w, h int) rules.Grid {
	cols := (w - hudWidth) / 2
	rows := h - 4
	size := rules.CanvasSize(cols*rules.DefaultCellSize, rows*rules.DefaultCellSize)
	return rules.ComputeGrid(size, size, rules.DefaultCellSize)
}

func readInput(ctx context.Context, loop *worker.Loop, sound *audio.SoundManager) {
	for {
		ev := termbox.PollEvent()
		if ctx.Err() != nil || ev.Type == termbox.EventInterrupt {
			return
		}
		if ev.Type == termbox.EventError {
			log.WithError(ev.Err).Error("terminal input failed")
			loop.Send(ctx, worker.QuitEvent{})
			return
		}
		a, ok := keyAction(ev)
		if !ok {
			continue
		}
		if a.mute {
			log.WithField("Muted", sound.ToggleMute()).Info("sound toggled")
			continue
		}
		if err := loop.Send(ctx, a.event); err != nil {
			return
		}
	}
}

// flushFrames draws frames the throttle held back once the rate allows.
func flushFrames(ctx context.Context, t *render.Throttle, fps rate.Limit) {
	if fps == rate.Inf || fps <= 0 {
		return
	}
	interval := time.Duration(math.Ceil(float64(time.Second) / float64(fps)))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Flush()
		}
	}
}
