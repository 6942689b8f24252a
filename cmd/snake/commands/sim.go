package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/render"
	"github.com/snakearcade/engine/rules"
	"github.com/snakearcade/engine/worker"
	"github.com/spf13/cobra"
)

var (
	simTicks  = 10000
	simSeed   = int64(0)
	simDump   = false
	simRender = false
	simScript = ""
)

func init() {
	simCmd.Flags().IntVar(&simTicks, "ticks", simTicks, "tick budget, 0 for no limit")
	simCmd.Flags().Int64Var(&simSeed, "seed", simSeed, "random seed, 0 picks one from the clock")
	simCmd.Flags().String("difficulty", "", "difficulty, one of: [easy, normal, hard]")
	simCmd.Flags().BoolVar(&simDump, "dump", simDump, "dump the final snapshot")
	simCmd.Flags().BoolVar(&simRender, "render", simRender, "print the final frame")
	simCmd.Flags().StringVar(&simScript, "script", simScript, "comma separated moves, one per tick, instead of the autopilot")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "run a headless game with a food seeking autopilot",
	RunE: func(c *cobra.Command, args []string) error {
		seed := simSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid, err := cfg.Grid()
		if err != nil {
			return err
		}
		steer := worker.Autopilot
		if simScript != "" {
			dirs, err := parseScript(simScript)
			if err != nil {
				return err
			}
			steer = worker.Script(dirs...)
		}
		d, _ := rules.LookupDifficulty(cfg.Difficulty)
		res, err := simulate(context.Background(), grid, d, seed, simTicks, steer)
		if err != nil {
			return err
		}
		return report(c.OutOrStdout(), seed, res)
	},
}

// parseScript reads moves such as "up,up,left".
func parseScript(script string) ([]rules.Direction, error) {
	var dirs []rules.Direction
	for _, name := range strings.Split(script, ",") {
		d, err := rules.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// simulate plays one session on an in-memory store, steered by steer.
func simulate(ctx context.Context, grid rules.Grid, d rules.Difficulty, seed int64, ticks int, steer worker.Steer) (worker.RunResult, error) {
	s, err := controller.New(grid,
		controller.WithDifficulty(d),
		controller.WithRand(rand.New(rand.NewSource(seed))),
		controller.WithNotifier(controller.LogNotifier{}),
	)
	if err != nil {
		return worker.RunResult{}, err
	}
	r := worker.NewRunner(s, ticks)
	r.Steer = steer
	return r.Run(ctx)
}

func report(w io.Writer, seed int64, res worker.RunResult) error {
	snap := res.Snapshot
	outcome := "budget spent"
	if res.Ended {
		outcome = res.End.Cause
	}
	fmt.Fprintf(w, "seed:       %d\n", seed)
	fmt.Fprintf(w, "difficulty: %s\n", snap.Difficulty.Name)
	fmt.Fprintf(w, "ticks:      %s (%v of play)\n", humanize.Comma(int64(res.Ticks)), res.Elapsed)
	fmt.Fprintf(w, "outcome:    %s\n", outcome)
	fmt.Fprintf(w, "score:      %s\n", humanize.Comma(int64(snap.Score)))
	fmt.Fprintf(w, "level:      %d\n", snap.Level)
	fmt.Fprintf(w, "length:     %d of %d cells\n", len(snap.Snake), snap.Grid.Cells())

	if simRender {
		b := render.NewBuffer(2*snap.Grid.Cols+hudWidth, snap.Grid.Rows+4)
		if err := render.Draw(b, snap); err != nil {
			return err
		}
		fmt.Fprintln(w, b.String())
	}
	if simDump {
		spew.Fdump(w, snap)
	}
	return nil
}
