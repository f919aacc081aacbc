package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
)

// EventStore defines the board operations needed for event lifecycle intents
type EventStore interface {
	FindEvent(dayKey, eventID string) *model.Event
	AddEvent(dayKey string, ev *model.Event)
	DeleteEvent(dayKey, eventID string) bool
	Now() time.Time
}

// AddEvent creates a new event on the given day. Events are always
// created locked; unlocking requires an explicit confirmed intent.
func AddEvent(ctx context.Context, store EventStore, logger *zap.Logger, dayKey, details string) (*model.Event, error) {
	if _, err := week.ParseKey(dayKey); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(details)
	if trimmed == "" {
		return nil, fmt.Errorf("event details are required")
	}

	ev := &model.Event{
		ID:        uuid.New().String(),
		Details:   trimmed,
		Locked:    true,
		Roles:     map[string][]model.VolunteerEntry{},
		CreatedAt: store.Now(),
	}
	store.AddEvent(dayKey, ev)

	logger.Info("Event created",
		zap.String("event_id", ev.ID),
		zap.String("day", dayKey),
		zap.String("details", trimmed))

	return ev, nil
}

// UpdateEventDetails saves a new details string for an unlocked event.
// Saving locks the event again; locked events must be unlocked first.
func UpdateEventDetails(ctx context.Context, store EventStore, logger *zap.Logger, dayKey, eventID, details string) (*model.Event, error) {
	ev := store.FindEvent(dayKey, eventID)
	if ev == nil {
		return nil, fmt.Errorf("event not found: %s on %s", eventID, dayKey)
	}

	if ev.Locked {
		return nil, fmt.Errorf("event is locked - unlock it before editing")
	}

	trimmed := strings.TrimSpace(details)
	if trimmed == "" {
		return nil, fmt.Errorf("event details are required")
	}

	ev.Details = trimmed
	ev.Locked = true

	logger.Info("Event details updated",
		zap.String("event_id", ev.ID),
		zap.String("day", dayKey))

	return ev, nil
}

// SetEventLock applies a lock-state transition. Unlocking a locked
// event is the transition that needs a human confirmation; callers
// must have collected it before invoking this.
func SetEventLock(ctx context.Context, store EventStore, logger *zap.Logger, dayKey, eventID string, locked bool) (*model.Event, error) {
	ev := store.FindEvent(dayKey, eventID)
	if ev == nil {
		return nil, fmt.Errorf("event not found: %s on %s", eventID, dayKey)
	}

	ev.Locked = locked

	logger.Info("Event lock state changed",
		zap.String("event_id", ev.ID),
		zap.String("day", dayKey),
		zap.Bool("locked", locked))

	return ev, nil
}

// DeleteEvent removes an event and all of its volunteer signups.
// Permitted from either lock state; callers collect the confirmation.
func DeleteEvent(ctx context.Context, store EventStore, logger *zap.Logger, dayKey, eventID string) error {
	if !store.DeleteEvent(dayKey, eventID) {
		return fmt.Errorf("event not found: %s on %s", eventID, dayKey)
	}

	logger.Info("Event deleted",
		zap.String("event_id", eventID),
		zap.String("day", dayKey))

	return nil
}
