package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallTimeoutFallsBackToConfigured(t *testing.T) {
	timeout, err := callTimeout(context.Background(), 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)
}

func TestCallTimeoutHonoursShorterDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	timeout, err := callTimeout(ctx, 10*time.Second)
	require.NoError(t, err)
	assert.Greater(t, timeout, time.Duration(0))
	assert.LessOrEqual(t, timeout, 100*time.Millisecond)
}

func TestCallTimeoutKeepsConfiguredWhenDeadlineIsLonger(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	timeout, err := callTimeout(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, timeout)
}

func TestCallTimeoutRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := callTimeout(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCallTimeoutRejectsExpiredDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := callTimeout(ctx, time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestListStopsOnCancelledContext(t *testing.T) {
	c, err := New(Config{BaseURL: "http://tasks.test"}, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Tasks().List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefreshScheduleKeepsSubSecondIntervals(t *testing.T) {
	cases := []struct {
		interval time.Duration
		want     string
	}{
		{500 * time.Millisecond, "@every 500ms"},
		{time.Second, "@every 1s"},
		{30 * time.Second, "@every 30s"},
		{90 * time.Second, "@every 1m30s"},
	}
	for _, tc := range cases {
		cfg := Config{RefreshInterval: tc.interval}
		assert.Equal(t, tc.want, cfg.refreshSchedule())
	}
}
