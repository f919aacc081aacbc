package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
)

// WeekCursorStore defines the board operations needed for navigation
type WeekCursorStore interface {
	WeekStart() time.Time
	SetWeekStart(start time.Time)
	Bounds() week.Bounds
}

// NavigateWeek moves the week cursor by deltaWeeks. A move that would
// leave the navigation bounds is silently refused: the cursor stays
// put, no error is surfaced, and moved is false.
func NavigateWeek(ctx context.Context, store WeekCursorStore, logger *zap.Logger, deltaWeeks int) (time.Time, bool) {
	current := store.WeekStart()
	candidate := current.AddDate(0, 0, 7*deltaWeeks)

	if !week.CanNavigate(candidate, store.Bounds()) {
		logger.Debug("Navigation refused: outside bounds",
			zap.Time("candidate", candidate),
			zap.Time("min", store.Bounds().Min),
			zap.Time("max", store.Bounds().Max))
		return current, false
	}

	store.SetWeekStart(candidate)
	logger.Info("Week cursor moved",
		zap.Time("week_start", candidate),
		zap.Int("delta_weeks", deltaWeeks))

	return candidate, true
}
