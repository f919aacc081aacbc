// Package roster implements the signup rules for volunteer rosters:
// duplicate detection, coverage computation and entry construction.
package roster

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/phone"
)

// IsDuplicate reports whether the candidate name/phone pair already
// appears in the existing entries. Names compare trimmed and
// case-insensitively; phones compare by cleaned digits.
func IsDuplicate(existing []model.VolunteerEntry, name, rawPhone string) bool {
	candidateName := strings.TrimSpace(name)
	candidatePhone := phone.Clean(rawPhone)

	for _, entry := range existing {
		if strings.EqualFold(strings.TrimSpace(entry.Name), candidateName) &&
			phone.Clean(entry.Phone) == candidatePhone {
			return true
		}
	}
	return false
}

// DayMatch identifies a volunteer found outside the day being edited
type DayMatch struct {
	DayKey  string
	EventID string
	RoleID  string
	Entry   model.VolunteerEntry
}

// FindInOtherDays scans every day except excludeKey for entries
// matching the candidate name/phone pair. Currently unused by the
// signup flow itself; callers may surface the matches as a hint.
func FindInOtherDays(days map[string]*model.DayState, excludeKey, name, rawPhone string) []DayMatch {
	var matches []DayMatch
	for key, day := range days {
		if key == excludeKey || day == nil {
			continue
		}
		for _, ev := range day.Events {
			for roleID, entries := range ev.Roles {
				for _, entry := range entries {
					if IsDuplicate([]model.VolunteerEntry{entry}, name, rawPhone) {
						matches = append(matches, DayMatch{
							DayKey:  key,
							EventID: ev.ID,
							RoleID:  roleID,
							Entry:   entry,
						})
					}
				}
			}
		}
	}
	return matches
}

// Coverage computes the signup count for one role on one event against
// the role's minimum
func Coverage(event *model.Event, role model.RoleDefinition) model.Coverage {
	current := len(event.Volunteers(role.ID))
	return model.Coverage{
		Current: current,
		Minimum: role.MinVolunteers,
		IsMet:   current >= role.MinVolunteers,
	}
}

// NewEntry validates a signup submission and constructs the entry to
// append: trimmed name, freshly generated id, digits-only phone.
// Validation failures leave the roster untouched and are returned as
// plain errors for the caller to surface.
func NewEntry(existing []model.VolunteerEntry, name, rawPhone string) (model.VolunteerEntry, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return model.VolunteerEntry{}, fmt.Errorf("volunteer name is required")
	}

	cleaned := phone.Clean(rawPhone)
	if cleaned == "" {
		return model.VolunteerEntry{}, fmt.Errorf("phone number must contain exactly 10 digits")
	}

	if IsDuplicate(existing, trimmedName, cleaned) {
		return model.VolunteerEntry{}, fmt.Errorf("%s is already signed up for this role", trimmedName)
	}

	return model.VolunteerEntry{
		ID:    uuid.New().String(),
		Name:  trimmedName,
		Phone: cleaned,
	}, nil
}

// Remove deletes the entry with the given id from the sequence.
// Removing an absent id is a silent no-op: the input is returned
// unchanged and removed is false.
func Remove(entries []model.VolunteerEntry, entryID string) (result []model.VolunteerEntry, removed bool) {
	for i, entry := range entries {
		if entry.ID == entryID {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}
