package controller

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts session events. A nil *Metrics records nothing.
type Metrics struct {
	sessions   prometheus.Counter
	ticks      prometheus.Counter
	foodEaten  *prometheus.CounterVec
	levelUps   prometheus.Counter
	gameOvers  *prometheus.CounterVec
	starvation prometheus.Counter
	score      prometheus.Histogram
}

// NewMetrics creates the session metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "started_total",
			Help:      "Sessions started.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "ticks_total",
			Help:      "Ticks processed.",
		}),
		foodEaten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "food_eaten_total",
			Help:      "Food eaten, by category.",
		}, []string{"category"}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "level_ups_total",
			Help:      "Levels gained.",
		}),
		gameOvers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "game_overs_total",
			Help:      "Sessions ended, by cause.",
		}, []string{"cause"}),
		starvation: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "food",
			Name:      "spawn_starved_total",
			Help:      "Food spawns that ran out of attempts and used an occupied cell.",
		}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "final_score",
			Help:      "Score at the end of each session.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
	}
	reg.MustRegister(m.sessions, m.ticks, m.foodEaten, m.levelUps, m.gameOvers, m.starvation, m.score)
	return m
}

func (m *Metrics) sessionStarted() {
	if m != nil {
		m.sessions.Inc()
	}
}

func (m *Metrics) tick() {
	if m != nil {
		m.ticks.Inc()
	}
}

func (m *Metrics) ate(category string) {
	if m != nil {
		m.foodEaten.WithLabelValues(category).Inc()
	}
}

func (m *Metrics) spawned(starved bool) {
	if m != nil && starved {
		m.starvation.Inc()
	}
}

func (m *Metrics) leveledUp(n int) {
	if m != nil {
		m.levelUps.Add(float64(n))
	}
}

func (m *Metrics) ended(cause string, score int) {
	if m == nil {
		return
	}
	m.gameOvers.WithLabelValues(cause).Inc()
	m.score.Observe(float64(score))
}
