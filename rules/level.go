package rules

import (
	"math"
	"time"
)

const (
	// PointsPerLevel times the current level is the score needed to level up.
	PointsPerLevel = 50
	// MinSpeed is the shortest tick interval a session can reach.
	MinSpeed = 50 * time.Millisecond
)

// Progress is the scoring state of a session.
type Progress struct {
	Score      int
	Level      int
	LevelScore int
	Speed      time.Duration
}

// NewProgress is the progress at the start of a session on d.
func NewProgress(d Difficulty) Progress {
	return Progress{Level: 1, Speed: d.BaseSpeed}
}

// RequiredScore is the level score needed to leave level.
func RequiredScore(level int) int {
	return level * PointsPerLevel
}

// Required is the level score needed to leave the current level.
func (p Progress) Required() int {
	return RequiredScore(p.Level)
}

// Fraction is how far through the current level the session is, in [0,1].
func (p Progress) Fraction() float64 {
	f := float64(p.LevelScore) / float64(p.Required())
	if f > 1 {
		return 1
	}
	return f
}

// Award adds points and applies every level-up they pay for. The threshold
// is fixed by the level held before the award, so a single large award is
// split into as many levels as that threshold fits. It returns the new
// progress and the number of levels gained.
func (p Progress) Award(points int, d Difficulty) (Progress, int) {
	p.Score += points
	p.LevelScore += points
	required := p.Required()
	gained := 0
	for p.LevelScore >= required {
		p.LevelScore -= required
		p.Level++
		p.Speed = NextSpeed(p.Speed, d)
		gained++
	}
	return p, gained
}

// NextSpeed shortens speed by the difficulty's per-level factor, never going
// below MinSpeed.
func NextSpeed(speed time.Duration, d Difficulty) time.Duration {
	next := time.Duration(math.Round(float64(speed) * (1 - d.SpeedIncrease)))
	if next < MinSpeed {
		return MinSpeed
	}
	return next
}
