package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/pkg/board"
	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/phone"
	"github.com/hudacentre/fundraiser-rota/pkg/core/roster"
	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
)

// VolunteerLine is one roster row prepared for display
type VolunteerLine struct {
	ID    string
	Name  string
	Phone string // formatted "(XXX) XXX-XXXX"
}

// RoleOverview is one role's coverage and roster on one event
type RoleOverview struct {
	Role       model.RoleDefinition
	Coverage   model.Coverage
	Volunteers []VolunteerLine
}

// EventOverview is one event prepared for display
type EventOverview struct {
	ID      string
	Details string
	Locked  bool
	Roles   []RoleOverview
}

// DayOverview is one day column of the week grid
type DayOverview struct {
	Date    time.Time
	Key     string
	IsToday bool
	Events  []EventOverview
}

// WeekOverviewResult is the coverage rollup for the displayed week
type WeekOverviewResult struct {
	WeekStart time.Time
	Days      []DayOverview
}

// WeekOverview projects a board snapshot into the display shape used
// by the CLI grid and the exporters: per day, per event, per role, the
// coverage triple plus the roster with formatted phone numbers.
func WeekOverview(ctx context.Context, snap *board.Snapshot, logger *zap.Logger, now time.Time) *WeekOverviewResult {
	result := &WeekOverviewResult{
		WeekStart: snap.WeekStart,
		Days:      make([]DayOverview, 0, len(snap.WeekDays)),
	}

	eventCount := 0
	for _, d := range snap.WeekDays {
		key := week.Key(d)
		day := snap.Days[key]

		overview := DayOverview{
			Date:    d,
			Key:     key,
			IsToday: week.IsToday(d, now),
			Events:  make([]EventOverview, 0, len(day.Events)),
		}

		for _, ev := range day.Events {
			eventCount++
			evOverview := EventOverview{
				ID:      ev.ID,
				Details: ev.Details,
				Locked:  ev.Locked,
				Roles:   make([]RoleOverview, 0, len(snap.Roles)),
			}

			for _, role := range snap.Roles {
				ro := RoleOverview{
					Role:     role,
					Coverage: roster.Coverage(ev, role),
				}
				for _, entry := range ev.Volunteers(role.ID) {
					ro.Volunteers = append(ro.Volunteers, VolunteerLine{
						ID:    entry.ID,
						Name:  entry.Name,
						Phone: phone.Format(entry.Phone),
					})
				}
				evOverview.Roles = append(evOverview.Roles, ro)
			}

			overview.Events = append(overview.Events, evOverview)
		}

		result.Days = append(result.Days, overview)
	}

	logger.Debug("Week overview built",
		zap.Time("week_start", snap.WeekStart),
		zap.Int("events", eventCount))

	return result
}
