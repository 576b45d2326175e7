package attendance

import (
	"errors"
	"time"
)

// Status constants.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusExcused = "excused"
)

// Domain errors
var (
	ErrEmptyPlayer    = errors.New("attendance must be associated with a player")
	ErrEmptySession   = errors.New("attendance must be associated with a session")
	ErrEmptyClassDate = errors.New("attendance class date cannot be empty")
	ErrInvalidDate    = errors.New("attendance class date must be YYYY-MM-DD")
	ErrInvalidStatus  = errors.New("attendance status must be present, absent or excused")
)

// Record is one attendance outcome for a player at a concrete session
// occurrence. Weekly templates share one ID across occurrences, so the
// identity that matters is the (SessionID, PlayerID, ClassDate) triple;
// the store upserts on it.
type Record struct {
	ID         string
	TenantID   string
	SessionID  string
	PlayerID   string
	ClassDate  string // YYYY-MM-DD
	Status     string
	RecordedAt time.Time
}

// ValidStatus reports whether the given status is one of the known values.
func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// Validate checks if the Record has valid data.
// PRE: Record struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: (SessionID, PlayerID, ClassDate) identifies the record
func (r *Record) Validate() error {
	if r.PlayerID == "" {
		return ErrEmptyPlayer
	}
	if r.SessionID == "" {
		return ErrEmptySession
	}
	if r.ClassDate == "" {
		return ErrEmptyClassDate
	}
	if _, err := time.Parse("2006-01-02", r.ClassDate); err != nil {
		return ErrInvalidDate
	}
	if !ValidStatus(r.Status) {
		return ErrInvalidStatus
	}
	return nil
}
