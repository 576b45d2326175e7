package session

import (
	"fmt"
	"time"
)

// DateFormat is the YYYY-MM-DD layout used for concrete occurrence dates.
const DateFormat = "2006-01-02"

// Instance is one concrete calendar occurrence of a session template.
// It is derived, never persisted. Weekly instances share the template's ID;
// their identity for attendance purposes is the (SessionID, Date) pair.
type Instance struct {
	Session
	Date  string // YYYY-MM-DD of this occurrence
	Start time.Time
	End   time.Time
}

// Expand generates the concrete instances of a weekly template whose dates
// fall within [rangeStart, rangeEnd]. All date arithmetic is naive local
// wall-clock time; no timezone conversion happens.
//
// Out-of-domain input (inverted range, bad weekday, unparseable clock times,
// non-weekly template) yields an empty result rather than an error; callers
// render an empty schedule instead of failing.
// POST: instances are 7 days apart, each on the template's weekday
func Expand(s Session, rangeStart, rangeEnd time.Time) []Instance {
	if s.Kind != KindWeekly {
		return nil
	}
	if rangeEnd.Before(rangeStart) {
		return nil
	}
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return nil
	}
	startHour, startMinute, err := parseClock(s.StartTime)
	if err != nil {
		return nil
	}
	endHour, endMinute, err := parseClock(s.EndTime)
	if err != nil {
		return nil
	}

	// First date on or after rangeStart that lands on the template's weekday.
	offset := (s.DayOfWeek - int(rangeStart.Weekday()) + 7) % 7
	day := dateOnly(rangeStart).AddDate(0, 0, offset)
	lastDay := dateOnly(rangeEnd)

	var instances []Instance
	for !day.After(lastDay) {
		instances = append(instances, Instance{
			Session: s,
			Date:    day.Format(DateFormat),
			Start:   at(day, startHour, startMinute),
			End:     at(day, endHour, endMinute),
		})
		day = day.AddDate(0, 0, 7)
	}
	return instances
}

// SpecialInstance returns the single instance of a special template.
// PRE: s.Kind is KindSpecial and StartAt/EndAt are set
func SpecialInstance(s Session) Instance {
	return Instance{
		Session: s,
		Date:    s.StartAt.Format(DateFormat),
		Start:   s.StartAt,
		End:     s.EndAt,
	}
}

// InDateRange reports whether a special template's start date falls within
// [rangeStart, rangeEnd], compared at date granularity (inclusive both ends).
func InDateRange(s Session, rangeStart, rangeEnd time.Time) bool {
	d := dateOnly(s.StartAt)
	return !d.Before(dateOnly(rangeStart)) && !d.After(dateOnly(rangeEnd))
}

// parseClock parses an HH:MM wall-clock string.
func parseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t.Hour(), t.Minute(), nil
}

// minutesOfDay converts an HH:MM string to minutes since midnight.
func minutesOfDay(value string) (int, error) {
	hour, minute, err := parseClock(value)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
