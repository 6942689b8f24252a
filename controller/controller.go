// Package controller runs a single snake session: it owns the snake, the
// food and the score, decides when ticks happen and reports what happened to
// the injected collaborators (high score store, notifier, scheduler).
package controller

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/rules"
)

var (
	// ErrUnknownDifficulty is returned when selecting a difficulty that is
	// not one of the presets.
	ErrUnknownDifficulty = errors.New("controller: unknown difficulty")
	// StoreTimeout bounds every call to the high score store.
	StoreTimeout = 2 * time.Second
)

// DeathCauseEnded is the cause recorded when a session is ended on request
// rather than by a collision.
const DeathCauseEnded = "ended"

// Option configures a Session.
type Option func(*Session)

// WithStore sets the high score store. Defaults to InMemStore.
func WithStore(store Store) Option { return func(s *Session) { s.store = store } }

// WithNotifier sets the notifier. Defaults to NopNotifier.
func WithNotifier(n Notifier) Option { return func(s *Session) { s.notifier = n } }

// WithScheduler sets the tick scheduler. Without one the session only
// advances when Tick is called directly.
func WithScheduler(sc Scheduler) Option { return func(s *Session) { s.scheduler = sc } }

// WithRand sets the random source used for food.
func WithRand(r rules.Rand) Option { return func(s *Session) { s.rnd = r } }

// WithDifficulty sets the initially selected difficulty.
func WithDifficulty(d rules.Difficulty) Option { return func(s *Session) { s.selected = d } }

// WithMetrics records session events on m.
func WithMetrics(m *Metrics) Option { return func(s *Session) { s.metrics = m } }

// WithLogger logs through l instead of the standard logger.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.log = l } }

// EndResult describes how a session finished.
type EndResult struct {
	Score     int
	Level     int
	NewRecord bool
	Cause     string
}

// Session is the session controller. It is not safe for concurrent use: the
// owner (see package worker) calls every method from one goroutine.
type Session struct {
	grid      rules.Grid
	store     Store
	notifier  Notifier
	scheduler Scheduler
	rnd       rules.Rand
	metrics   *Metrics
	log       *log.Logger

	selected rules.Difficulty
	active   rules.Difficulty

	status    Status
	id        string
	snake     *rules.Snake
	spawner   *rules.FoodSpawner
	food      rules.Food
	progress  rules.Progress
	highScore int
	newRecord bool
	ticks     int64
	cause     string
}

// New creates an idle session on grid and reads the current high score from
// the store. An invalid grid is rejected.
func New(grid rules.Grid, opts ...Option) (*Session, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := rules.ValidateCatalog(rules.FoodCatalog); err != nil {
		return nil, err
	}
	s := &Session{
		grid:     grid,
		status:   StatusIdle,
		selected: rules.DefaultDifficulty,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = InMemStore()
	}
	if s.notifier == nil {
		s.notifier = NopNotifier{}
	}
	if s.scheduler == nil {
		s.scheduler = nopScheduler{}
	}
	if s.log == nil {
		s.log = log.StandardLogger()
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.active = s.selected
	s.highScore = s.loadHighScore()
	return s, nil
}

// SetScheduler replaces the tick scheduler. It is meant for owners that are
// constructed after the session, such as the worker loop.
func (s *Session) SetScheduler(sc Scheduler) {
	s.scheduler.Cancel()
	s.scheduler = sc
}

func (s *Session) logger() *log.Entry {
	return s.log.WithFields(log.Fields{
		"SessionID": s.id,
		"Tick":      s.ticks,
	})
}

// SelectDifficulty picks the difficulty used by the next Start. A session in
// progress keeps its difficulty.
func (s *Session) SelectDifficulty(name string) error {
	d, ok := rules.LookupDifficulty(name)
	if !ok {
		return errors.Wrapf(ErrUnknownDifficulty, "%q", name)
	}
	s.selected = d
	return nil
}

// Start begins a new session from Idle or Ended on the selected difficulty.
// It reports whether a session was started.
func (s *Session) Start() bool {
	if s.status != StatusIdle && s.status != StatusEnded {
		s.logger().WithField("Status", s.status).Debug("start ignored")
		return false
	}

	s.active = s.selected
	s.id = uuid.NewV4().String()
	s.ticks = 0
	s.cause = ""
	s.newRecord = false
	s.progress = rules.NewProgress(s.active)
	s.snake = rules.NewSnake(s.grid)
	s.spawner = rules.NewFoodSpawner(s.grid, s.rnd)
	s.food = s.spawner.Spawn(s.snake.Body())
	s.metrics.spawned(s.spawner.Starved())
	s.status = StatusRunning

	s.logger().WithFields(log.Fields{
		"Difficulty": s.active.Name,
		"Speed":      s.progress.Speed,
		"Food":       s.food.Position,
	}).Info("session started")
	s.metrics.sessionStarted()
	s.notify("OnSessionStart", func(n Notifier) { n.OnSessionStart() })
	s.schedule()
	return true
}

// Tick runs one simulation step: advance, eat, level up, collide. Ticks that
// arrive while the session is not running are ignored.
func (s *Session) Tick() {
	if s.status != StatusRunning {
		s.logger().WithField("Status", s.status).Debug("tick ignored")
		return
	}
	s.ticks++
	s.metrics.tick()

	s.snake.Advance()

	if s.snake.IsEatingFood(s.food.Position) {
		s.eat()
	}

	// Collision is checked against the same post-move head as the food, so
	// a tick that eats and dies keeps the points but still ends the session.
	if cause, dead := rules.CheckCollision(s.grid, s.snake); dead {
		s.end(cause)
		return
	}

	s.schedule()
}

func (s *Session) eat() {
	category := s.food.Category
	var gained int
	s.progress, gained = s.progress.Award(category.Value, s.active)
	s.snake.MarkGrowth()
	s.food = s.spawner.Spawn(s.snake.Body())

	s.logger().WithFields(log.Fields{
		"Category": category.Name,
		"Score":    s.progress.Score,
		"Level":    s.progress.Level,
		"NextFood": s.food.Position,
	}).Info("snake ate")
	s.metrics.ate(category.Name)
	s.metrics.spawned(s.spawner.Starved())
	s.notify("OnFoodEaten", func(n Notifier) { n.OnFoodEaten(category) })

	if gained == 0 {
		return
	}
	s.logger().WithFields(log.Fields{
		"Level": s.progress.Level,
		"Speed": s.progress.Speed,
	}).Info("level up")
	s.metrics.leveledUp(gained)
	for l := s.progress.Level - gained + 1; l <= s.progress.Level; l++ {
		level := l
		s.notify("OnLevelUp", func(n Notifier) { n.OnLevelUp(level) })
	}
}

// Pause suspends a running session and cancels its pending tick. Pausing a
// session that is not running does nothing.
func (s *Session) Pause() bool {
	if s.status != StatusRunning {
		return false
	}
	s.scheduler.Cancel()
	s.status = StatusPaused
	s.logger().Info("session paused")
	s.notify("OnSessionPause", func(n Notifier) { n.OnSessionPause() })
	return true
}

// Resume continues a paused session with a full tick interval.
func (s *Session) Resume() bool {
	if s.status != StatusPaused {
		return false
	}
	s.status = StatusRunning
	s.logger().Info("session resumed")
	s.notify("OnSessionResume", func(n Notifier) { n.OnSessionResume() })
	s.schedule()
	return true
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() bool {
	if s.status == StatusPaused {
		return s.Resume()
	}
	return s.Pause()
}

// SetDirection queues a direction change for the next tick. Input is only
// accepted while the session is running.
func (s *Session) SetDirection(d rules.Direction) bool {
	if s.status != StatusRunning {
		return false
	}
	return s.snake.SetDirection(d)
}

// End finishes a running or paused session. The second return value is
// false when there was nothing to end.
func (s *Session) End() (EndResult, bool) {
	if s.status != StatusRunning && s.status != StatusPaused {
		return EndResult{}, false
	}
	return s.end(DeathCauseEnded), true
}

func (s *Session) end(cause string) EndResult {
	s.scheduler.Cancel()
	s.status = StatusEnded
	s.cause = cause
	s.newRecord = s.saveHighScore(s.progress.Score)

	s.logger().WithFields(log.Fields{
		"Cause":     cause,
		"Score":     s.progress.Score,
		"Level":     s.progress.Level,
		"NewRecord": s.newRecord,
	}).Info("session ended")
	s.metrics.ended(cause, s.progress.Score)
	s.notify("OnGameOver", func(n Notifier) { n.OnGameOver() })

	return EndResult{
		Score:     s.progress.Score,
		Level:     s.progress.Level,
		NewRecord: s.newRecord,
		Cause:     cause,
	}
}

// Restart abandons the current session, if any, and starts a new one on the
// selected difficulty. Restarting from Idle does nothing.
func (s *Session) Restart() bool {
	if s.status == StatusIdle {
		return false
	}
	s.scheduler.Cancel()
	s.status = StatusEnded
	return s.Start()
}

// Reset returns to the menu from any state, discarding the snake and food.
func (s *Session) Reset() {
	s.scheduler.Cancel()
	wasPlaying := s.status == StatusRunning
	s.status = StatusIdle
	s.snake = nil
	s.spawner = nil
	s.food = rules.Food{}
	if wasPlaying {
		s.notify("OnSessionPause", func(n Notifier) { n.OnSessionPause() })
	}
	s.logger().Info("returned to menu")
}

// Status is the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// HighScore is the last known high score.
func (s *Session) HighScore() int { return s.highScore }

func (s *Session) schedule() {
	s.scheduler.Cancel()
	s.scheduler.Schedule(s.progress.Speed)
}

// notify calls fn on the notifier, recovering from any panic so a broken
// collaborator cannot take the session down.
func (s *Session) notify(event string, fn func(Notifier)) {
	defer func() {
		if r := recover(); r != nil {
			s.logger().WithFields(log.Fields{
				"Event": event,
				"Panic": r,
			}).Error("notifier failed")
		}
	}()
	fn(s.notifier)
}

func (s *Session) loadHighScore() int {
	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout)
	defer cancel()

	hs, err := s.store.GetHighScore(ctx)
	if err != nil {
		s.log.WithError(err).Warn("unable to read high score, using 0")
		return 0
	}
	if hs < 0 {
		return 0
	}
	return hs
}

// saveHighScore offers score to the store and refreshes the cached high
// score. If the store cannot be reached the cached value decides whether
// this is a new record.
func (s *Session) saveHighScore(score int) bool {
	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout)
	defer cancel()

	saved, err := s.store.SaveHighScore(ctx, score)
	if err != nil {
		s.logger().WithError(err).Warn("unable to save high score")
		if score > s.highScore {
			s.highScore = score
			return true
		}
		return false
	}
	if saved {
		s.highScore = score
		return true
	}
	if hs, err := s.store.GetHighScore(ctx); err == nil && hs > s.highScore {
		s.highScore = hs
	}
	return false
}
