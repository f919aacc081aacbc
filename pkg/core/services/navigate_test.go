package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNavigateWeek(t *testing.T) {
	b := newTestBoard()
	logger := zap.NewNop()
	ctx := context.Background()

	start := b.WeekStart()

	next, moved := NavigateWeek(ctx, b, logger, 1)
	assert.True(t, moved)
	assert.Equal(t, start.AddDate(0, 0, 7), next)
	assert.Equal(t, next, b.WeekStart())

	back, moved := NavigateWeek(ctx, b, logger, -1)
	assert.True(t, moved)
	assert.Equal(t, start, back)
}

func TestNavigateWeek_SilentlyRefusedOutsideBounds(t *testing.T) {
	b := newTestBoard() // bounds: 2 weeks back, 12 weeks ahead
	logger := zap.NewNop()
	ctx := context.Background()

	start := b.WeekStart()

	// Two weeks back is the earliest navigable week
	_, moved := NavigateWeek(ctx, b, logger, -2)
	require.True(t, moved)
	assert.Equal(t, b.Bounds().Min, b.WeekStart())

	// One more step is refused without an error, cursor unchanged
	cursor, moved := NavigateWeek(ctx, b, logger, -1)
	assert.False(t, moved)
	assert.Equal(t, b.Bounds().Min, cursor)
	assert.Equal(t, b.Bounds().Min, b.WeekStart())

	// Return to the current week, then probe the forward bound
	_, moved = NavigateWeek(ctx, b, logger, 2)
	require.True(t, moved)
	assert.Equal(t, start, b.WeekStart())

	_, moved = NavigateWeek(ctx, b, logger, 12)
	require.True(t, moved, "12 weeks ahead stays inside the bound")

	cursor, moved = NavigateWeek(ctx, b, logger, 1)
	assert.False(t, moved)
	assert.Equal(t, start.AddDate(0, 0, 7*12), cursor)
}

func TestNavigateWeek_CursorStaysOnMonday(t *testing.T) {
	b := newTestBoard()
	logger := zap.NewNop()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		next, moved := NavigateWeek(ctx, b, logger, 1)
		require.True(t, moved)
		assert.Equal(t, time.Monday, next.Weekday())
	}
}
