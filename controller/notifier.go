package controller

import (
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/rules"
)

// Notifier receives fire-and-forget notifications about session events.
// Nothing it returns or does can change the course of a session.
type Notifier interface {
	OnFoodEaten(category rules.FoodCategory)
	OnLevelUp(level int)
	OnGameOver()
	OnSessionStart()
	OnSessionPause()
	OnSessionResume()
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) OnFoodEaten(rules.FoodCategory) {}
func (NopNotifier) OnLevelUp(int)                  {}
func (NopNotifier) OnGameOver()                    {}
func (NopNotifier) OnSessionStart()                {}
func (NopNotifier) OnSessionPause()                {}
func (NopNotifier) OnSessionResume()               {}

// LogNotifier writes every notification to the debug log.
type LogNotifier struct{}

func (LogNotifier) OnFoodEaten(c rules.FoodCategory) {
	log.WithFields(log.Fields{"Category": c.Name, "Value": c.Value}).Debug("food eaten")
}
func (LogNotifier) OnLevelUp(level int) { log.WithField("Level", level).Debug("level up") }
func (LogNotifier) OnGameOver()         { log.Debug("game over") }
func (LogNotifier) OnSessionStart()     { log.Debug("session start") }
func (LogNotifier) OnSessionPause()     { log.Debug("session pause") }
func (LogNotifier) OnSessionResume()    { log.Debug("session resume") }

// MultiNotifier fans each notification out to every notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) OnFoodEaten(c rules.FoodCategory) {
	for _, n := range m {
		n.OnFoodEaten(c)
	}
}

func (m MultiNotifier) OnLevelUp(level int) {
	for _, n := range m {
		n.OnLevelUp(level)
	}
}

func (m MultiNotifier) OnGameOver() {
	for _, n := range m {
		n.OnGameOver()
	}
}

func (m MultiNotifier) OnSessionStart() {
	for _, n := range m {
		n.OnSessionStart()
	}
}

func (m MultiNotifier) OnSessionPause() {
	for _, n := range m {
		n.OnSessionPause()
	}
}

func (m MultiNotifier) OnSessionResume() {
	for _, n := range m {
		n.OnSessionResume()
	}
}
