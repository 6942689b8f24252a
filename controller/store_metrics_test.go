package controller

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentStore_ObservesCalls(t *testing.T) {
	ctx := context.Background()
	errorsBefore := testutil.ToFloat64(storeErrors.WithLabelValues("SaveHighScore"))

	s := InstrumentStore(InMemStore())
	_, err := s.GetHighScore(ctx)
	require.NoError(t, err)
	ok, err := s.SaveHighScore(ctx, 40)
	require.NoError(t, err)
	require.True(t, ok)

	// One histogram series per method.
	require.Equal(t, 2, testutil.CollectAndCount(storeCalls))

	broken := InstrumentStore(brokenStore{})
	_, err = broken.SaveHighScore(ctx, 10)
	require.Error(t, err)
	require.Equal(t, errorsBefore+1, testutil.ToFloat64(storeErrors.WithLabelValues("SaveHighScore")))
}
