package worker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/rules"
)

// Steer picks the direction for the next tick. Returning false leaves the
// snake's heading alone.
type Steer func(controller.Snapshot) (rules.Direction, bool)

// Script steers with dirs, one per tick, then stops steering.
func Script(dirs ...rules.Direction) Steer {
	i := 0
	return func(controller.Snapshot) (rules.Direction, bool) {
		if i >= len(dirs) {
			return rules.Direction{}, false
		}
		d := dirs[i]
		i++
		return d, true
	}
}

// RunResult is the outcome of a headless run.
type RunResult struct {
	Ticks    int
	Ended    bool
	End      controller.EndResult
	Snapshot controller.Snapshot
	// Elapsed is the game time the run covered: the sum of every tick delay.
	Elapsed time.Duration
}

// Runner will run an individual session without real time. Ticks happen as
// fast as the runner is called, in the order the session scheduled them.
type Runner struct {
	session   *controller.Session
	scheduler *ManualScheduler

	MaxTicks int
	Steer    Steer
}

// NewRunner attaches a manual scheduler to s.
func NewRunner(s *controller.Session, maxTicks int) *Runner {
	r := &Runner{
		session:   s,
		scheduler: &ManualScheduler{},
		MaxTicks:  maxTicks,
	}
	s.SetScheduler(r.scheduler)
	return r
}

// Run starts or resumes the session and ticks it until it ends,
// the tick budget runs out or ctx is done.
func (r *Runner) Run(ctx context.Context) (RunResult, error) {
	res := RunResult{}
	switch r.session.Status() {
	case controller.StatusPaused:
		r.session.Resume()
	case controller.StatusIdle, controller.StatusEnded:
		r.session.Start()
	}

	for r.MaxTicks <= 0 || res.Ticks < r.MaxTicks {
		if err := ctx.Err(); err != nil {
			res.Snapshot = r.session.Snapshot()
			return res, err
		}
		delay, ok := r.scheduler.Pending()
		if !ok {
			break
		}
		if r.Steer != nil {
			if d, ok := r.Steer(r.session.Snapshot()); ok {
				r.session.SetDirection(d)
			}
		}
		r.session.Tick()
		res.Ticks++
		res.Elapsed += delay
	}

	res.Snapshot = r.session.Snapshot()
	if res.Snapshot.GameOver() {
		res.Ended = true
		res.End = controller.EndResult{
			Score:     res.Snapshot.Score,
			Level:     res.Snapshot.Level,
			NewRecord: res.Snapshot.NewRecord,
			Cause:     res.Snapshot.Cause,
		}
	}
	log.WithFields(log.Fields{
		"SessionID": res.Snapshot.SessionID,
		"Ticks":     res.Ticks,
		"Score":     res.Snapshot.Score,
		"Ended":     res.Ended,
	}).Info("headless run finished")
	return res, nil
}
