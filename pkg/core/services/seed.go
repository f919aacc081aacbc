package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/internal/config"
	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
)

// SeedStore defines the board operations needed to seed a week from
// the configured event templates
type SeedStore interface {
	EventStore
	WeekStart() time.Time
	Day(dayKey string) *model.DayState
}

// SeededEvent records one event created by SeedWeek
type SeededEvent struct {
	Template string
	DayKey   string
	Event    *model.Event
}

// SeedWeek expands each configured event template's recurrence rule
// over the currently displayed week and creates the matching events
// through the normal creation path, so they come out locked like any
// other event. A day that already carries an event with the template's
// details is skipped, which makes re-seeding a week idempotent.
func SeedWeek(ctx context.Context, store SeedStore, logger *zap.Logger, templates []config.EventTemplate) ([]SeededEvent, error) {
	weekStart := store.WeekStart()
	weekEnd := weekStart.AddDate(0, 0, 6)

	var seeded []SeededEvent
	for _, tmpl := range templates {
		rule, err := rrule.StrToRRule(tmpl.RRule)
		if err != nil {
			// Config validation checks rrule syntax, so this only
			// fires for templates passed in programmatically.
			return nil, fmt.Errorf("invalid rrule for template %q: %w", tmpl.Name, err)
		}
		rule.DTStart(weekStart)

		occurrences := rule.Between(weekStart, weekEnd, true)
		logger.Debug("Template expanded",
			zap.String("template", tmpl.Name),
			zap.Int("occurrences", len(occurrences)))

		for _, occ := range occurrences {
			dayKey := week.Key(occ)

			if dayHasEvent(store.Day(dayKey), tmpl.Details) {
				logger.Debug("Skipping already-seeded day",
					zap.String("template", tmpl.Name),
					zap.String("day", dayKey))
				continue
			}

			ev, err := AddEvent(ctx, store, logger, dayKey, tmpl.Details)
			if err != nil {
				return nil, fmt.Errorf("failed to seed %q on %s: %w", tmpl.Name, dayKey, err)
			}
			seeded = append(seeded, SeededEvent{Template: tmpl.Name, DayKey: dayKey, Event: ev})
		}
	}

	logger.Info("Week seeded from templates",
		zap.Time("week_start", weekStart),
		zap.Int("created", len(seeded)))

	return seeded, nil
}

func dayHasEvent(day *model.DayState, details string) bool {
	for _, ev := range day.Events {
		if ev.Details == details {
			return true
		}
	}
	return false
}
