// Package worker drives a session in time: a Loop services real timers and
// player input on one goroutine, a Runner steps a session headlessly.
package worker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/controller"
)

// Loop owns a session and is its only caller. It is also the session's
// Scheduler: Schedule and Cancel are only ever invoked from inside Run, so
// the timer needs no locking.
type Loop struct {
	session *controller.Session
	events  chan Event
	timer   *time.Timer
	timerC  <-chan time.Time

	// OnFrame, if set, is called with a fresh snapshot after the initial
	// state and after every tick or event.
	OnFrame func(controller.Snapshot)
}

// NewLoop attaches a loop to s. Input is buffered up to buffer events.
func NewLoop(s *controller.Session, buffer int) *Loop {
	l := &Loop{
		session: s,
		events:  make(chan Event, buffer),
	}
	s.SetScheduler(l)
	return l
}

// Schedule arms the tick timer.
func (l *Loop) Schedule(d time.Duration) {
	l.Cancel()
	l.timer = time.NewTimer(d)
	l.timerC = l.timer.C
}

// Cancel disarms the tick timer. Safe to call when nothing is scheduled.
func (l *Loop) Cancel() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.timerC = nil
}

// Send queues ev for the loop, giving up when ctx is done.
func (l *Loop) Send(ctx context.Context, ev Event) error {
	select {
	case l.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events is the input channel. Closing it stops the loop.
func (l *Loop) Events() chan<- Event { return l.events }

// Run processes ticks and input until ctx is done, a QuitEvent arrives or
// the event channel is closed. A nil return means a clean quit.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Cancel()
	l.frame()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.timerC:
			l.timer = nil
			l.timerC = nil
			l.session.Tick()
			l.frame()

		case ev, ok := <-l.events:
			if !ok {
				return nil
			}
			if ev.apply(l.session) {
				log.Info("quit requested")
				return nil
			}
			l.frame()
		}
	}
}

func (l *Loop) frame() {
	if l.OnFrame != nil {
		l.OnFrame(l.session.Snapshot())
	}
}
