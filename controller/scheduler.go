package controller

import "time"

// Scheduler runs the session's next tick after a delay. The session always
// cancels before scheduling, so at most one tick is ever pending. Cancel must
// be safe to call when nothing is scheduled.
type Scheduler interface {
	Schedule(d time.Duration)
	Cancel()
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration) {}
func (nopScheduler) Cancel()                {}
