package week

import (
	"fmt"
	"time"
)

// DayKeyFormat is the date layout used to key day state throughout the app
const DayKeyFormat = "2006-01-02"

// Bounds limits how far the week cursor may be moved in either direction
type Bounds struct {
	Min time.Time // earliest navigable week start
	Max time.Time // latest navigable date
}

// Start returns the Monday on or before the given date, normalized to
// start of day UTC to avoid time-of-day issues
func Start(d time.Time) time.Time {
	normalized := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	// Monday is 1; Sunday (0) sits 6 days after its week's Monday
	daysSinceMonday := (int(normalized.Weekday()) + 6) % 7
	return normalized.AddDate(0, 0, -daysSinceMonday)
}

// Days returns the 7 consecutive dates starting at weekStart, in order
func Days(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// NavigationBounds returns the closed navigation interval around now:
// backWeeks full weeks into the past (snapped to a week start) and
// aheadWeeks weeks into the future
func NavigationBounds(now time.Time, backWeeks, aheadWeeks int) Bounds {
	normalized := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Bounds{
		Min: Start(normalized.AddDate(0, 0, -7*backWeeks)),
		Max: normalized.AddDate(0, 0, 7*aheadWeeks),
	}
}

// CanNavigate reports whether the candidate week start lies inside the
// bounds. The interval is closed: week starts equal to either bound are
// still navigable.
func CanNavigate(candidate time.Time, bounds Bounds) bool {
	return !candidate.Before(bounds.Min) && !candidate.After(bounds.Max)
}

// IsToday reports calendar-day equality between d and now
func IsToday(d, now time.Time) bool {
	return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
}

// Key formats a date as the day key used to store day state
func Key(d time.Time) string {
	return d.Format(DayKeyFormat)
}

// ParseKey parses a day key back into a midnight-UTC date
func ParseKey(key string) (time.Time, error) {
	d, err := time.Parse(DayKeyFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return d, nil
}
