package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/snakearcade/engine/controller"
	"github.com/spf13/cobra"
)

var highScoreSubmit = -1

func init() {
	highScoreCmd.Flags().String("store", "", "high score store, one of: [mem, file, redis, sqlite, postgres]")
	highScoreCmd.Flags().String("dsn", "", "store specific path, URL or DSN")
	highScoreCmd.Flags().IntVar(&highScoreSubmit, "submit", highScoreSubmit, "offer a score as the new record")
}

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "print or submit the stored high score",
	RunE: func(c *cobra.Command, args []string) error {
		store, err := openStore(cfg.Store, cfg.StoreDSN)
		if err != nil {
			return err
		}
		defer closeStore(store)

		ctx, cancel := context.WithTimeout(context.Background(), controller.StoreTimeout)
		defer cancel()
		return highScore(ctx, c.OutOrStdout(), store, highScoreSubmit)
	},
}

// highScore prints the record, first offering submit when it is not
// negative.
func highScore(ctx context.Context, w io.Writer, store controller.Store, submit int) error {
	if submit >= 0 {
		saved, err := store.SaveHighScore(ctx, submit)
		if err != nil {
			return err
		}
		if saved {
			fmt.Fprintf(w, "%s is the new high score\n", humanize.Comma(int64(submit)))
		} else {
			fmt.Fprintf(w, "%s did not beat the high score\n", humanize.Comma(int64(submit)))
		}
	}
	hs, err := store.GetHighScore(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "high score: %s\n", humanize.Comma(int64(hs)))
	return nil
}
