package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// FirstOfMonth returns midnight of day 1 of the given month
func FirstOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// FirstOfNextMonth returns day 1 of the month following the given one.
// December rolls over to January of year+1.
func FirstOfNextMonth(year int, month time.Month, loc *time.Location) time.Time {
	if month == time.December {
		return FirstOfMonth(year+1, time.January, loc)
	}
	return FirstOfMonth(year, month+1, loc)
}

// DaysInMonth returns the number of days in the month: the day-of-month of
// the day before the first of the next month
func DaysInMonth(year int, month time.Month) int {
	return FirstOfNextMonth(year, month, time.UTC).AddDate(0, 0, -1).Day()
}

// WeekdayColumn returns the 0-based column of date in a week that starts on weekStart.
// With weekStart = Monday: Monday=0 .. Sunday=6
func WeekdayColumn(date time.Time, weekStart time.Weekday) int {
	return (int(date.Weekday()) - int(weekStart) + 7) % 7
}

// WeekOrder returns the seven weekdays starting from weekStart
func WeekOrder(weekStart time.Weekday) []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = time.Weekday((int(weekStart) + i) % 7)
	}
	return days
}

// ParseWeekday parses an English weekday name ("monday", "Mon", "SUN")
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if name == full || name == full[:3] {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday: %q", s)
}

// Today returns today's date in UTC (start of day)
func Today() time.Time {
	return StartOfDay(time.Now().UTC())
}
