package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	r, err := l.Hit(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, 1, r.Remaining)

	r, _ = l.Hit(ctx, "a@example.com")
	assert.True(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining)

	r, _ = l.Hit(ctx, "a@example.com")
	assert.False(t, r.Allowed)
	assert.Equal(t, 3, r.Count)
	assert.Equal(t, time.Minute, r.ResetIn)

	r, _ = l.Hit(ctx, "b@example.com")
	assert.True(t, r.Allowed, "keys are independent")

	now = now.Add(time.Minute)
	r, _ = l.Hit(ctx, "a@example.com")
	assert.True(t, r.Allowed)
	assert.Equal(t, 1, r.Count)
}

func TestMemoryLimiter_Reset(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	_, _ = l.Hit(ctx, "k")
	r, _ := l.Hit(ctx, "k")
	require.False(t, r.Allowed)

	require.NoError(t, l.Reset(ctx, "k"))
	r, _ = l.Hit(ctx, "k")
	assert.True(t, r.Allowed)
}
