package worker

import "time"

// ManualScheduler records tick requests instead of timing them. Whoever owns
// it decides when the pending tick happens.
type ManualScheduler struct {
	pending  bool
	delay    time.Duration
	requests int
}

// Schedule records a pending tick after d.
func (m *ManualScheduler) Schedule(d time.Duration) {
	m.pending = true
	m.delay = d
	m.requests++
}

// Cancel drops the pending tick.
func (m *ManualScheduler) Cancel() { m.pending = false }

// Pending reports the delay of the pending tick, if there is one.
func (m *ManualScheduler) Pending() (time.Duration, bool) { return m.delay, m.pending }

// Requests is the number of Schedule calls so far.
func (m *ManualScheduler) Requests() int { return m.requests }
