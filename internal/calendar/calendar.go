package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/username/month-calendar/pkg/dateutil"
)

var (
	// ErrInvalidDate is returned when a (year, month) pair cannot form a calendar month
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidWeekStart is returned for a first weekday outside Sunday..Saturday.
	// It wraps ErrInvalidDate.
	ErrInvalidWeekStart = fmt.Errorf("%w: week start out of range", ErrInvalidDate)
)

// Week is one row of the month grid, one cell per weekday column.
// A zero cell holds no day of the month.
type Week [7]int

// Month is a single calendar month laid out as week rows
type Month struct {
	Year      int
	Month     time.Month
	Name      string
	Today     int          // Day to highlight, 0 for none
	WeekStart time.Weekday // Weekday of column 0
	Weeks     []Week
}

// Build lays out a Monday-first month without a highlighted day
func Build(year, month int) (*Month, error) {
	return New(year, month, 0, time.Monday)
}

// New lays out the given month with weekStart in column 0.
// today outside 1..N is stored as 0.
func New(year, month, today int, weekStart time.Weekday) (*Month, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range 1..12", ErrInvalidDate, month)
	}
	if year < math.MinInt32 || year > math.MaxInt32 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekStart, int(weekStart))
	}

	first := dateutil.FirstOfMonth(year, time.Month(month), time.UTC)
	if first.Year() != year || first.Month() != time.Month(month) {
		return nil, fmt.Errorf("%w: %d-%02d", ErrInvalidDate, year, month)
	}

	last := dateutil.DaysInMonth(year, time.Month(month))

	weeks := []Week{{}}
	for index, date := 0, first; index < last; index, date = index+1, date.AddDate(0, 0, 1) {
		column := dateutil.WeekdayColumn(date, weekStart)
		weeks[len(weeks)-1][column] = index + 1

		if column == 6 && index+1 < last {
			weeks = append(weeks, Week{})
		}
	}

	if today < 1 || today > last {
		today = 0
	}

	return &Month{
		Year:      year,
		Month:     time.Month(month),
		Name:      time.Month(month).String(),
		Today:     today,
		WeekStart: weekStart,
		Weeks:     weeks,
	}, nil
}

// DaysInMonth returns the last day number placed in the grid
func (m *Month) DaysInMonth() int {
	last := 0
	for _, week := range m.Weeks {
		for _, day := range week {
			if day > last {
				last = day
			}
		}
	}
	return last
}

// Days returns the non-empty cells in row-major order
func (m *Month) Days() []int {
	days := make([]int, 0, 31)
	for _, week := range m.Weeks {
		for _, day := range week {
			if day != 0 {
				days = append(days, day)
			}
		}
	}
	return days
}

// Weekdays returns the weekday shown in each grid column
func (m *Month) Weekdays() []time.Weekday {
	return dateutil.WeekOrder(m.WeekStart)
}

// Title returns "<month name> - <year>"
func (m *Month) Title() string {
	return fmt.Sprintf("%s - %d", m.Name, m.Year)
}
