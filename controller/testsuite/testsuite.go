package testsuite

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/snakearcade/engine/controller"
	"github.com/stretchr/testify/require"
)

func testStoreEmpty(t *testing.T, s controller.Store) {
	ctx := context.Background()

	// Nothing stored yet reads as 0.
	hs, err := s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 0, hs)

	// A zero score never beats an empty store.
	ok, err := s.SaveHighScore(ctx, 0)
	require.Nil(t, err)
	require.False(t, ok)
}

func testStoreSave(t *testing.T, s controller.Store) {
	ctx := context.Background()

	ok, err := s.SaveHighScore(ctx, 120)
	require.Nil(t, err)
	require.True(t, ok)

	hs, err := s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 120, hs)

	// Lower and equal candidates are rejected.
	ok, err = s.SaveHighScore(ctx, 80)
	require.Nil(t, err)
	require.False(t, ok)
	ok, err = s.SaveHighScore(ctx, 120)
	require.Nil(t, err)
	require.False(t, ok)

	hs, err = s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 120, hs)

	// Higher candidate replaces it.
	ok, err = s.SaveHighScore(ctx, 350)
	require.Nil(t, err)
	require.True(t, ok)

	hs, err = s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 350, hs)
}

func testStoreConcurrentWriters(t *testing.T, s controller.Store) {
	ctx := context.Background()

	var saved uint32
	var wg sync.WaitGroup
	wg.Add(20)

	for i := 1; i <= 20; i++ {
		go func(score int) {
			defer wg.Done()
			if ok, err := s.SaveHighScore(ctx, score*10); err == nil && ok {
				atomic.AddUint32(&saved, 1)
			}
		}(i)
	}

	wg.Wait()

	// Whatever the interleaving, the best score wins.
	hs, err := s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 200, hs)
	require.True(t, atomic.LoadUint32(&saved) >= 1)
}

// Suite will execute the store testsuite. pretest must leave the store
// empty.
func Suite(t *testing.T, s controller.Store, pretest func()) {
	s = controller.InstrumentStore(s)
	t.Run("Empty", func(t *testing.T) { pretest(); testStoreEmpty(t, s) })
	t.Run("Save", func(t *testing.T) { pretest(); testStoreSave(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
}
