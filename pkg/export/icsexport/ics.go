// Package icsexport serializes the displayed week as an iCalendar
// document, one all-day VEVENT per scheduled event, so the schedule
// can be dropped into any calendar client.
package icsexport

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/hudacentre/fundraiser-rota/pkg/core/services"
)

// Export builds the VCALENDAR for a week overview and returns its
// serialized form
func Export(overview *services.WeekOverviewResult, organization string, now time.Time) ([]byte, error) {
	if overview == nil {
		return nil, fmt.Errorf("ics export: overview is required")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//" + organization + "//fundraiser-rota//EN")

	for _, day := range overview.Days {
		for _, ev := range day.Events {
			vevent := cal.AddEvent(ev.ID)
			vevent.SetDtStampTime(now)
			vevent.SetAllDayStartAt(day.Date)
			vevent.SetAllDayEndAt(day.Date.AddDate(0, 0, 1))
			vevent.SetSummary(ev.Details)
			vevent.SetDescription(describeRoles(ev))
		}
	}

	return []byte(cal.Serialize()), nil
}

// describeRoles summarizes signup coverage per role for the VEVENT
// description, listing only roles that have signups or a minimum
func describeRoles(ev services.EventOverview) string {
	var lines []string
	for _, ro := range ev.Roles {
		if ro.Coverage.Current == 0 && ro.Coverage.Minimum == 0 {
			continue
		}
		status := "needs more"
		if ro.Coverage.IsMet {
			status = "covered"
		}
		lines = append(lines, fmt.Sprintf("%s: %d/%d (%s)",
			ro.Role.Label, ro.Coverage.Current, ro.Coverage.Minimum, status))
	}
	if len(lines) == 0 {
		return "No volunteer roles tracked"
	}
	return strings.Join(lines, "\n")
}
