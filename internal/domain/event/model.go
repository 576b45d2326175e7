package event

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyTitle   = errors.New("event title cannot be empty")
	ErrEmptyDate    = errors.New("event date is required")
	ErrInvalidDate  = errors.New("event date must be YYYY-MM-DD")
	ErrInvalidClock = errors.New("event time must be HH:MM")
)

// Event is a one-off calendar entry. Unlike a session template it is never
// expanded and carries no attendance or notes. It only appears in feeds.
type Event struct {
	ID          string
	TenantID    string
	SeasonID    string
	Title       string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, optional
	Location    string
	Description string
}

// Validate checks the event's invariants.
// POST: returns nil if valid, error describing the first violation otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.Time != "" {
		if _, err := time.Parse("15:04", e.Time); err != nil {
			return ErrInvalidClock
		}
	}
	return nil
}

// StartInstant resolves the event's date and optional time to a naive local
// instant for feed ordering. Events without a time sort at midnight.
func (e *Event) StartInstant() time.Time {
	day, err := time.ParseInLocation("2006-01-02", e.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	if e.Time == "" {
		return day
	}
	clock, err := time.Parse("15:04", e.Time)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
}
