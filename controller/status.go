package controller

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusIdle is the menu: no snake, no food, no timer.
	StatusIdle Status = "idle"
	// StatusRunning represents a session that is ticking
	StatusRunning Status = "running"
	// StatusPaused represents a session with its tick timer cancelled
	StatusPaused Status = "paused"
	// StatusEnded represents a session that is over
	StatusEnded Status = "ended"
)
