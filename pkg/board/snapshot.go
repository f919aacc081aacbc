package board

import (
	"time"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
)

// Snapshot is a deep-copied, read-only view of the currently displayed
// week. Exporters and the presentation layer consume snapshots so that
// nothing outside a handler can mutate live board state.
type Snapshot struct {
	WeekStart time.Time
	WeekDays  []time.Time
	Days      map[string]model.DayState // keyed by day key, week days only
	Roles     []model.RoleDefinition
}

// Snapshot captures the displayed week. Days that were never
// referenced appear as empty DayStates.
func (b *Board) Snapshot() *Snapshot {
	weekDays := week.Days(b.weekStart)

	days := make(map[string]model.DayState, len(weekDays))
	for _, d := range weekDays {
		key := week.Key(d)
		if day, ok := b.days[key]; ok {
			days[key] = copyDay(day)
		} else {
			days[key] = model.DayState{}
		}
	}

	return &Snapshot{
		WeekStart: b.weekStart,
		WeekDays:  weekDays,
		Days:      days,
		Roles:     b.Roles(),
	}
}

func copyDay(day *model.DayState) model.DayState {
	copied := model.DayState{Events: make([]*model.Event, len(day.Events))}
	for i, ev := range day.Events {
		copied.Events[i] = copyEvent(ev)
	}
	return copied
}

func copyEvent(ev *model.Event) *model.Event {
	copied := &model.Event{
		ID:        ev.ID,
		Details:   ev.Details,
		Locked:    ev.Locked,
		CreatedAt: ev.CreatedAt,
	}
	if ev.Roles != nil {
		copied.Roles = make(map[string][]model.VolunteerEntry, len(ev.Roles))
		for roleID, entries := range ev.Roles {
			copied.Roles[roleID] = append([]model.VolunteerEntry(nil), entries...)
		}
	}
	return copied
}
