// Package board holds the in-memory state for one scheduling session:
// the week cursor, the day states keyed by "2006-01-02" date strings,
// and the role set. Nothing here is persisted; a new session starts
// from an empty board.
package board

import (
	"strings"
	"time"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
)

// Board is the single owned state aggregate for a session. Handlers
// receive it by reference; all mutations are synchronous.
type Board struct {
	now       func() time.Time
	weekStart time.Time
	bounds    week.Bounds
	days      map[string]*model.DayState
	roles     []model.RoleDefinition
}

// New creates a board showing the current week, with navigation bounds
// of backWeeks behind and aheadWeeks ahead of now. The now func is
// injected so tests can pin the clock.
func New(now func() time.Time, roles []model.RoleDefinition, backWeeks, aheadWeeks int) *Board {
	current := now()
	return &Board{
		now:       now,
		weekStart: week.Start(current),
		bounds:    week.NavigationBounds(current, backWeeks, aheadWeeks),
		days:      make(map[string]*model.DayState),
		roles:     append([]model.RoleDefinition(nil), roles...),
	}
}

// Now returns the board's current time
func (b *Board) Now() time.Time {
	return b.now()
}

// WeekStart returns the Monday of the currently displayed week
func (b *Board) WeekStart() time.Time {
	return b.weekStart
}

// SetWeekStart moves the week cursor. Callers are expected to have
// checked the navigation bounds first.
func (b *Board) SetWeekStart(start time.Time) {
	b.weekStart = start
}

// Bounds returns the fixed navigation bounds for this session
func (b *Board) Bounds() week.Bounds {
	return b.bounds
}

// Day returns the state for a day key, materializing an empty DayState
// the first time the date is referenced
func (b *Board) Day(dayKey string) *model.DayState {
	day, ok := b.days[dayKey]
	if !ok {
		day = &model.DayState{}
		b.days[dayKey] = day
	}
	return day
}

// Days returns the underlying day map. Callers must not mutate it
// outside a handler.
func (b *Board) Days() map[string]*model.DayState {
	return b.days
}

// AddEvent appends an event to the given day
func (b *Board) AddEvent(dayKey string, ev *model.Event) {
	day := b.Day(dayKey)
	day.Events = append(day.Events, ev)
}

// FindEvent returns the event with the given id on the given day, or
// nil when either the day or the event is absent
func (b *Board) FindEvent(dayKey, eventID string) *model.Event {
	day, ok := b.days[dayKey]
	if !ok {
		return nil
	}
	return day.FindEvent(eventID)
}

// DeleteEvent removes an event and all its volunteer data from the
// given day. Returns false when the event was not found.
func (b *Board) DeleteEvent(dayKey, eventID string) bool {
	day, ok := b.days[dayKey]
	if !ok {
		return false
	}
	for i, ev := range day.Events {
		if ev.ID == eventID {
			day.Events = append(day.Events[:i], day.Events[i+1:]...)
			return true
		}
	}
	return false
}

// Roles returns a copy of the role set in definition order
func (b *Board) Roles() []model.RoleDefinition {
	return append([]model.RoleDefinition(nil), b.roles...)
}

// AddRole appends a role definition. Duplicate labels are permitted.
func (b *Board) AddRole(role model.RoleDefinition) {
	b.roles = append(b.roles, role)
}

// RoleByID looks a role up by id
func (b *Board) RoleByID(roleID string) (model.RoleDefinition, bool) {
	for _, r := range b.roles {
		if r.ID == roleID {
			return r, true
		}
	}
	return model.RoleDefinition{}, false
}

// RoleByLabel looks a role up by display label (case-insensitive
// exact match). When duplicate labels exist the first definition wins.
func (b *Board) RoleByLabel(label string) (model.RoleDefinition, bool) {
	for _, r := range b.roles {
		if strings.EqualFold(r.Label, label) {
			return r, true
		}
	}
	return model.RoleDefinition{}, false
}
