package redisstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/dlsteuer/miniredis"
	"github.com/snakearcade/engine/controller/testsuite"
	"github.com/stretchr/testify/require"
)

var store *RedisStore
var server *miniredis.Miniredis

func TestRedisStore(t *testing.T) {
	testsuite.Suite(t, store, func() {
		require.NoError(t, store.client.FlushAll().Err())
	})
}

func TestRedisStore_NonNumericValue(t *testing.T) {
	require.NoError(t, store.client.FlushAll().Err())
	require.NoError(t, store.client.Set(store.key, "many points", 0).Err())

	hs, err := store.GetHighScore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, hs)

	ok, err := store.SaveHighScore(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, ok)

	v, err := store.client.Get(store.key).Result()
	require.NoError(t, err)
	require.Equal(t, "5", v)
}

func TestRedisStore_ConcurrentSavesKeepBest(t *testing.T) {
	ctx := context.Background()
	for round := 0; round < 3; round++ {
		require.NoError(t, store.client.FlushAll().Err())

		errs := make(chan error, 20)
		var wg sync.WaitGroup
		for i := 1; i <= 20; i++ {
			wg.Add(1)
			go func(score int) {
				defer wg.Done()
				if _, err := store.SaveHighScore(ctx, score); err != nil {
					errs <- err
				}
			}(i * 10)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		hs, err := store.GetHighScore(ctx)
		require.NoError(t, err)
		require.Equal(t, 200, hs, "round %d", round)
	}
}

func TestRedisStore_SaveRejectsLowerAndEqual(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, store.client.FlushAll().Err())

	ok, err := store.SaveHighScore(ctx, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.SaveHighScore(ctx, 30)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.SaveHighScore(ctx, 30)
	require.NoError(t, err)
	require.False(t, ok)

	v, err := store.client.Get(store.key).Result()
	require.NoError(t, err)
	require.Equal(t, "30", v)
}

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := NewRedisStore("not a url", "")
	require.Error(t, err)
}

func TestMain(m *testing.M) {
	redisURL := os.Getenv("REDIS_URL")
	if len(redisURL) == 0 {
		// Setup server
		server = miniredis.NewMiniRedis()
		err := server.StartAddr("127.0.0.1:9736")
		if err != nil {
			fmt.Println("unable to start local redis instance")
			os.Exit(1)
		}
		redisURL = fmt.Sprintf("redis://%s", server.Addr())
	}

	// Setup store
	s, err := NewRedisStore(redisURL, "snake:test:highscore")
	if err != nil {
		fmt.Println("unable to connect redis store")
		os.Exit(1)
	}
	store = s
	retCode := m.Run()

	store.Close()
	if server != nil {
		server.Close()
	}
	os.Exit(retCode)
}
