package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"sideline/internal/application/fault"
	"sideline/internal/domain/account"
	"sideline/internal/domain/session"
)

// SessionWriteStore defines the session store interface for scheduling.
type SessionWriteStore interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
	Delete(ctx context.Context, id string, tenantID string) error
}

// ScheduleSessionInput carries a session template create or update.
type ScheduleSessionInput struct {
	ID       string // empty on create
	TenantID string
	Session  session.Session
}

// ScheduleSessionDeps holds dependencies for ScheduleSession.
type ScheduleSessionDeps struct {
	SessionStore SessionWriteStore
	GenerateID   func() string
}

// ExecuteScheduleSession creates or updates a session template. Scheduling
// is an admin operation; coaches record against sessions but do not shape
// the calendar.
// PRE: input.Session passes domain validation
// POST: Template is persisted under the caller's tenant
func ExecuteScheduleSession(ctx context.Context, actor Actor, input ScheduleSessionInput, deps ScheduleSessionDeps) (session.Session, error) {
	if actor.Role != account.RoleAdmin {
		return session.Session{}, fmt.Errorf("%w: only admins can schedule sessions", fault.ErrForbidden)
	}

	s := input.Session
	s.TenantID = input.TenantID

	if input.ID == "" {
		s.ID = deps.GenerateID()
	} else {
		existing, err := deps.SessionStore.GetByIDForTenant(ctx, input.ID, input.TenantID)
		if err != nil {
			return session.Session{}, fmt.Errorf("%w: session %s", fault.ErrNotFound, input.ID)
		}
		s.ID = existing.ID
		// Updating the template never discards an already recorded result.
		if existing.Game != nil && s.Game != nil && !s.Game.IsCompleted {
			s.Game.TeamScore = existing.Game.TeamScore
			s.Game.OpponentScore = existing.Game.OpponentScore
			s.Game.IsCompleted = existing.Game.IsCompleted
			s.Game.GameNotes = existing.Game.GameNotes
		}
	}

	if err := s.Validate(); err != nil {
		return session.Session{}, fmt.Errorf("%w: %v", fault.ErrValidation, err)
	}

	if err := deps.SessionStore.Save(ctx, s); err != nil {
		return session.Session{}, err
	}

	slog.Info("session_scheduled", "session_id", s.ID, "kind", s.Kind, "event_type", s.EventType)
	return s, nil
}

// ExecuteDeleteSession removes a session template. Attendance and notes
// recorded against it are left in place; history outlives the schedule.
// POST: Template is gone; attendance and note rows remain
func ExecuteDeleteSession(ctx context.Context, actor Actor, id string, tenantID string, deps ScheduleSessionDeps) error {
	if actor.Role != account.RoleAdmin {
		return fmt.Errorf("%w: only admins can delete sessions", fault.ErrForbidden)
	}

	if _, err := deps.SessionStore.GetByIDForTenant(ctx, id, tenantID); err != nil {
		return fmt.Errorf("%w: session %s", fault.ErrNotFound, id)
	}

	if err := deps.SessionStore.Delete(ctx, id, tenantID); err != nil {
		return err
	}

	slog.Info("session_deleted", "session_id", id)
	return nil
}
