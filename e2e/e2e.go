// Package e2e plays whole sessions through every layer: config, controller,
// a persistent store, the headless runner and the text renderer.
package e2e

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/snakearcade/engine/config"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/controller/sqlstore"
	"github.com/snakearcade/engine/render"
	"github.com/snakearcade/engine/rules"
	"github.com/snakearcade/engine/worker"
)

type game struct {
	session  *controller.Session
	runner   *worker.Runner
	store    *sqlstore.Store
	registry *prometheus.Registry
	screen   *render.Buffer
}

// newGame builds a session for cfg backed by a sqlite store at dsn.
func newGame(cfg config.Config, dsn string, rnd rules.Rand, maxTicks int) (*game, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	d, _ := rules.LookupDifficulty(cfg.Difficulty)

	store, err := sqlstore.NewSQLStore(sqlstore.DriverSQLite, dsn)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	s, err := controller.New(grid,
		controller.WithStore(controller.InstrumentStore(store)),
		controller.WithDifficulty(d),
		controller.WithRand(rnd),
		controller.WithMetrics(controller.NewMetrics(reg)),
	)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &game{
		session:  s,
		runner:   worker.NewRunner(s, maxTicks),
		store:    store,
		registry: reg,
		screen:   render.NewBuffer(2*grid.Cols+60, grid.Rows+4),
	}, nil
}

// play runs the session headlessly and draws the final frame.
func (g *game) play(ctx context.Context) (worker.RunResult, error) {
	res, err := g.runner.Run(ctx)
	if err != nil {
		return res, err
	}
	return res, render.Draw(g.screen, res.Snapshot)
}

func (g *game) close() error {
	return g.store.Close()
}
