package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"sideline/internal/application/fault"
	"sideline/internal/domain/account"
	"sideline/internal/domain/event"
)

// EventWriteStore defines the event store interface for this use case.
type EventWriteStore interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (event.Event, error)
	Save(ctx context.Context, e event.Event) error
	Delete(ctx context.Context, id string, tenantID string) error
}

// CreateEventInput carries a calendar event create or update.
type CreateEventInput struct {
	ID       string // empty on create
	TenantID string
	Event    event.Event
}

// CreateEventDeps holds dependencies for CreateEvent.
type CreateEventDeps struct {
	EventStore EventWriteStore
	GenerateID func() string
}

// ExecuteCreateEvent creates or updates a one-off calendar entry.
// POST: Event is persisted under the caller's tenant
func ExecuteCreateEvent(ctx context.Context, actor Actor, input CreateEventInput, deps CreateEventDeps) (event.Event, error) {
	if actor.Role != account.RoleAdmin {
		return event.Event{}, fmt.Errorf("%w: only admins can manage calendar events", fault.ErrForbidden)
	}

	e := input.Event
	e.TenantID = input.TenantID

	if input.ID == "" {
		e.ID = deps.GenerateID()
	} else {
		existing, err := deps.EventStore.GetByIDForTenant(ctx, input.ID, input.TenantID)
		if err != nil {
			return event.Event{}, fmt.Errorf("%w: event %s", fault.ErrNotFound, input.ID)
		}
		e.ID = existing.ID
	}

	if err := e.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", fault.ErrValidation, err)
	}

	if err := deps.EventStore.Save(ctx, e); err != nil {
		return event.Event{}, err
	}

	slog.Info("calendar_event_saved", "event_id", e.ID, "date", e.Date)
	return e, nil
}

// ExecuteDeleteEvent removes a calendar event.
func ExecuteDeleteEvent(ctx context.Context, actor Actor, id string, tenantID string, deps CreateEventDeps) error {
	if actor.Role != account.RoleAdmin {
		return fmt.Errorf("%w: only admins can manage calendar events", fault.ErrForbidden)
	}
	if _, err := deps.EventStore.GetByIDForTenant(ctx, id, tenantID); err != nil {
		return fmt.Errorf("%w: event %s", fault.ErrNotFound, id)
	}
	return deps.EventStore.Delete(ctx, id, tenantID)
}
