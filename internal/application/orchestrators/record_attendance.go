package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sideline/internal/application/fault"
	"sideline/internal/domain/attendance"
	"sideline/internal/domain/session"
)

// AttendanceUpsertStore defines the attendance store interface for this use case.
type AttendanceUpsertStore interface {
	Upsert(ctx context.Context, r attendance.Record) error
}

// AttendanceSessionStore defines the session store interface for this use case.
type AttendanceSessionStore interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (session.Session, error)
}

// AttendanceEntry is one player's status within a submission batch.
type AttendanceEntry struct {
	PlayerID string
	Status   string
}

// RecordAttendanceInput carries one attendance submission for a concrete
// session occurrence.
type RecordAttendanceInput struct {
	TenantID  string
	SessionID string
	ClassDate string // YYYY-MM-DD of the occurrence
	Records   []AttendanceEntry
}

// RecordAttendanceDeps holds dependencies for RecordAttendance.
type RecordAttendanceDeps struct {
	SessionStore    AttendanceSessionStore
	AttendanceStore AttendanceUpsertStore
	GroupStore      GroupLookupStore
	GenerateID      func() string
	Now             func() time.Time
}

// ExecuteRecordAttendance upserts one attendance record per
// (session, player, date) in the batch. Submitting the same batch twice
// yields the same final state; a changed status overwrites the old one.
// PRE: actor has been authenticated
// POST: Exactly one record per (SessionID, PlayerID, ClassDate) key
func ExecuteRecordAttendance(ctx context.Context, actor Actor, input RecordAttendanceInput, deps RecordAttendanceDeps) error {
	if _, err := time.Parse("2006-01-02", input.ClassDate); err != nil {
		return fmt.Errorf("%w: class date must be YYYY-MM-DD", fault.ErrValidation)
	}

	s, err := deps.SessionStore.GetByIDForTenant(ctx, input.SessionID, input.TenantID)
	if err != nil {
		return fmt.Errorf("%w: session %s", fault.ErrNotFound, input.SessionID)
	}

	if err := authorizeCoachAction(ctx, actor, s, deps.GroupStore); err != nil {
		return err
	}

	for _, entry := range input.Records {
		r := attendance.Record{
			ID:         deps.GenerateID(),
			TenantID:   input.TenantID,
			SessionID:  s.ID,
			PlayerID:   entry.PlayerID,
			ClassDate:  input.ClassDate,
			Status:     entry.Status,
			RecordedAt: deps.Now(),
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%w: %v", fault.ErrValidation, err)
		}
		if err := deps.AttendanceStore.Upsert(ctx, r); err != nil {
			return err
		}
	}

	slog.Info("attendance_recorded", "session_id", s.ID, "class_date", input.ClassDate, "count", len(input.Records))
	return nil
}
