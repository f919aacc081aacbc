package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/roster"
)

// RosterStore defines the board operations needed for signup intents
type RosterStore interface {
	FindEvent(dayKey, eventID string) *model.Event
	RoleByLabel(label string) (model.RoleDefinition, bool)
}

// AddVolunteerResult carries the stored entry and the updated coverage
// for the role that was signed up for
type AddVolunteerResult struct {
	Entry    model.VolunteerEntry
	Role     model.RoleDefinition
	Coverage model.Coverage
}

// AddVolunteer validates a signup submission and appends the entry to
// the target role's roster. Signups are permitted regardless of the
// event's lock state; the lock only protects the details text.
func AddVolunteer(ctx context.Context, store RosterStore, logger *zap.Logger, dayKey, eventID, roleLabel, name, rawPhone string) (*AddVolunteerResult, error) {
	ev := store.FindEvent(dayKey, eventID)
	if ev == nil {
		return nil, fmt.Errorf("event not found: %s on %s", eventID, dayKey)
	}

	role, ok := store.RoleByLabel(roleLabel)
	if !ok {
		return nil, fmt.Errorf("unknown role: %s", roleLabel)
	}

	entry, err := roster.NewEntry(ev.Volunteers(role.ID), name, rawPhone)
	if err != nil {
		return nil, err
	}

	if ev.Roles == nil {
		ev.Roles = map[string][]model.VolunteerEntry{}
	}
	ev.Roles[role.ID] = append(ev.Roles[role.ID], entry)

	cov := roster.Coverage(ev, role)
	logger.Info("Volunteer added",
		zap.String("event_id", ev.ID),
		zap.String("day", dayKey),
		zap.String("role", role.Label),
		zap.String("volunteer", entry.Name),
		zap.Int("current", cov.Current),
		zap.Int("minimum", cov.Minimum))

	return &AddVolunteerResult{Entry: entry, Role: role, Coverage: cov}, nil
}

// RemoveVolunteer removes an entry by id from the target role's
// roster. Removing an id that is not present is a silent no-op and
// reports removed=false.
func RemoveVolunteer(ctx context.Context, store RosterStore, logger *zap.Logger, dayKey, eventID, roleLabel, entryID string) (bool, error) {
	ev := store.FindEvent(dayKey, eventID)
	if ev == nil {
		return false, fmt.Errorf("event not found: %s on %s", eventID, dayKey)
	}

	role, ok := store.RoleByLabel(roleLabel)
	if !ok {
		return false, fmt.Errorf("unknown role: %s", roleLabel)
	}

	entries, removed := roster.Remove(ev.Volunteers(role.ID), entryID)
	if !removed {
		logger.Debug("Volunteer removal was a no-op",
			zap.String("event_id", ev.ID),
			zap.String("entry_id", entryID))
		return false, nil
	}

	ev.Roles[role.ID] = entries
	logger.Info("Volunteer removed",
		zap.String("event_id", ev.ID),
		zap.String("day", dayKey),
		zap.String("role", role.Label),
		zap.String("entry_id", entryID))

	return true, nil
}
