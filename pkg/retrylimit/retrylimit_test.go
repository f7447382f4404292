package retrylimit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithRetryMaxSucceedsImmediately(t *testing.T) {
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		return nil
	}, nil, 3)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestWithRetryMaxStopsOnFatal(t *testing.T) {
	boom := errors.New("bad credentials")
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		return &FatalError{Err: boom}
	}, nil, 5)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestWithRetryMaxExhaustsAttempts(t *testing.T) {
	boom := errors.New("flaky")
	err := WithRetryMax(context.Background(), func() error {
		return boom
	}, nil, 1)
	require.ErrorIs(t, err, boom)
}

func TestAdaptiveLimiterAdjustsWithinBounds(t *testing.T) {
	lim := NewAdaptiveLimiter(5, 1, 10, 2, 0.5)
	require.Equal(t, 5.0, lim.CurrentLimit())

	lim.Success()
	require.Equal(t, 7.0, lim.CurrentLimit())

	for i := 0; i < 10; i++ {
		lim.Success()
	}
	require.Equal(t, 10.0, lim.CurrentLimit())

	for i := 0; i < 20; i++ {
		lim.Failure()
	}
	require.Equal(t, 1.0, lim.CurrentLimit())
}
