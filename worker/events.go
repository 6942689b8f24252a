package worker

import (
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/rules"
)

// Event is a piece of player input. Events are applied by the loop goroutine
// between ticks, never concurrently with one.
type Event interface {
	apply(s *controller.Session) (quit bool)
}

// DirectionEvent queues a direction change.
type DirectionEvent struct{ Direction rules.Direction }

// TogglePauseEvent pauses a running session or resumes a paused one.
type TogglePauseEvent struct{}

// StartEvent starts a session from the menu or the game over screen.
type StartEvent struct{}

// RestartEvent abandons the current session and starts a new one.
type RestartEvent struct{}

// MenuEvent returns to the menu.
type MenuEvent struct{}

// SelectDifficultyEvent selects the difficulty for the next start.
type SelectDifficultyEvent struct{ Name string }

// QuitEvent stops the loop.
type QuitEvent struct{}

func (e DirectionEvent) apply(s *controller.Session) bool {
	if !s.SetDirection(e.Direction) {
		log.WithField("Direction", e.Direction).Debug("direction ignored")
	}
	return false
}

func (TogglePauseEvent) apply(s *controller.Session) bool {
	s.TogglePause()
	return false
}

func (StartEvent) apply(s *controller.Session) bool {
	s.Start()
	return false
}

func (RestartEvent) apply(s *controller.Session) bool {
	s.Restart()
	return false
}

func (MenuEvent) apply(s *controller.Session) bool {
	s.Reset()
	return false
}

func (e SelectDifficultyEvent) apply(s *controller.Session) bool {
	if err := s.SelectDifficulty(e.Name); err != nil {
		log.WithError(err).Warn("difficulty not selected")
	}
	return false
}

func (QuitEvent) apply(*controller.Session) bool { return true }
