package season

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("season name cannot be empty")
	ErrEmptyStartDate = errors.New("season start date cannot be zero")
	ErrEmptyEndDate   = errors.New("season end date cannot be zero")
	ErrInvalidDates   = errors.New("season start date must be before end date")
)

// Season is a tenant-scoped time window partitioning players, coaches,
// groups and sessions.
type Season struct {
	ID        string
	TenantID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks if the Season has valid data.
// POST: Returns nil if valid, error otherwise
func (s *Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.StartDate.IsZero() {
		return ErrEmptyStartDate
	}
	if s.EndDate.IsZero() {
		return ErrEmptyEndDate
	}
	if !s.StartDate.Before(s.EndDate) {
		return ErrInvalidDates
	}
	return nil
}

// Contains returns true if the given date falls within this season.
// INVARIANT: Season fields are not mutated
func (s *Season) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	start := s.StartDate.Truncate(24 * time.Hour)
	end := s.EndDate.Truncate(24 * time.Hour)
	return (d.Equal(start) || d.After(start)) && (d.Equal(end) || d.Before(end))
}
