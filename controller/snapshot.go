package controller

import (
	"time"

	"github.com/snakearcade/engine/rules"
)

// Snapshot is a read-only copy of a session for presentation. Mutating it
// has no effect on the session it was taken from.
type Snapshot struct {
	SessionID  string
	Status     Status
	Grid       rules.Grid
	Snake      []rules.Cell
	Direction  rules.Direction
	Food       rules.Food
	HasFood    bool
	Score      int
	Level      int
	LevelScore int
	Required   int
	Progress   float64
	HighScore  int
	NewRecord  bool
	Difficulty rules.Difficulty
	Selected   rules.Difficulty
	Speed      time.Duration
	Ticks      int64
	Cause      string
}

// Running reports whether the snapshot was taken while ticking.
func (s Snapshot) Running() bool { return s.Status == StatusRunning }

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool { return s.Status == StatusPaused }

// GameOver reports whether the snapshot was taken after the session ended.
func (s Snapshot) GameOver() bool { return s.Status == StatusEnded }

// Snapshot copies the state needed to draw the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		Status:     s.status,
		Grid:       s.grid,
		Score:      s.progress.Score,
		Level:      s.progress.Level,
		LevelScore: s.progress.LevelScore,
		HighScore:  s.highScore,
		NewRecord:  s.newRecord,
		Difficulty: s.active,
		Selected:   s.selected,
		Speed:      s.progress.Speed,
		Ticks:      s.ticks,
		Cause:      s.cause,
	}
	if s.progress.Level > 0 {
		snap.Required = s.progress.Required()
		snap.Progress = s.progress.Fraction()
	}
	if s.snake != nil {
		snap.Snake = s.snake.Body()
		snap.Direction = s.snake.Direction()
		snap.Food = s.food
		snap.HasFood = true
	}
	return snap
}
