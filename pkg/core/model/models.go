package model

import "time"

// VolunteerEntry represents a single volunteer signup for one role on one event
type VolunteerEntry struct {
	ID    string
	Name  string // trimmed, non-empty
	Phone string // digits only, exactly 10
}

// RoleDefinition represents a named volunteer function with a minimum headcount
type RoleDefinition struct {
	ID            string
	Label         string
	MinVolunteers int
	IsDefault     bool
}

// Event represents a single scheduled happening on a calendar day
type Event struct {
	ID        string
	Details   string
	Locked    bool
	Roles     map[string][]VolunteerEntry // keyed by RoleDefinition.ID
	CreatedAt time.Time
}

// DayState holds the events scheduled for one calendar day.
// Days are keyed externally by "2006-01-02" date strings and
// materialize empty the first time a date is referenced.
type DayState struct {
	Events []*Event
}

// Coverage compares current signups against a role's minimum for one event
type Coverage struct {
	Current int
	Minimum int
	IsMet   bool
}

// FindEvent returns the event with the given ID, or nil if absent
func (d *DayState) FindEvent(eventID string) *Event {
	for _, ev := range d.Events {
		if ev.ID == eventID {
			return ev
		}
	}
	return nil
}

// Volunteers returns the signup sequence for the given role, which may be nil
func (e *Event) Volunteers(roleID string) []VolunteerEntry {
	if e.Roles == nil {
		return nil
	}
	return e.Roles[roleID]
}
