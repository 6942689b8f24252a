package rules

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty sets how fast a session starts and how much faster each level
// gets.
type Difficulty struct {
	Name string
	// BaseSpeed is the tick interval at level 1.
	BaseSpeed time.Duration
	// SpeedIncrease is the fraction taken off the tick interval per level.
	SpeedIncrease float64
}

// Difficulty presets.
var (
	Easy   = Difficulty{Name: "easy", BaseSpeed: 200 * time.Millisecond, SpeedIncrease: 0.03}
	Normal = Difficulty{Name: "normal", BaseSpeed: 150 * time.Millisecond, SpeedIncrease: 0.05}
	Hard   = Difficulty{Name: "hard", BaseSpeed: 100 * time.Millisecond, SpeedIncrease: 0.08}

	Difficulties = []Difficulty{Easy, Normal, Hard}
)

// DefaultDifficulty is selected until the player picks another one.
var DefaultDifficulty = Normal

// LookupDifficulty finds a preset by name, case-insensitively.
func LookupDifficulty(name string) (Difficulty, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%v, -%.0f%%/level)", d.Name, d.BaseSpeed, d.SpeedIncrease*100)
}
