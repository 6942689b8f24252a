package controller

import (
	"context"
	"sync"
)

// Store is the interface to the high score backend. A missing or unreadable
// value is reported as 0, not as an error.
type Store interface {
	// GetHighScore returns the stored high score.
	GetHighScore(ctx context.Context) (int, error)
	// SaveHighScore stores candidate if it beats the stored high score and
	// reports whether it did.
	SaveHighScore(ctx context.Context, candidate int) (bool, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{}
}

type inmem struct {
	highScore int
	lock      sync.Mutex
}

func (in *inmem) GetHighScore(ctx context.Context) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	return in.highScore, nil
}

func (in *inmem) SaveHighScore(ctx context.Context, candidate int) (bool, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if candidate <= in.highScore {
		return false, nil
	}
	in.highScore = candidate
	return true, nil
}
