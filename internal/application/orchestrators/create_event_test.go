package orchestrators

import (
	"context"
	"errors"
	"testing"

	"sideline/internal/application/fault"
	"sideline/internal/domain/event"
)

// mockEventStore implements EventWriteStore for testing.
type mockEventStore struct {
	events map[string]event.Event
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{events: make(map[string]event.Event)}
}

func (m *mockEventStore) GetByIDForTenant(_ context.Context, id string, tenantID string) (event.Event, error) {
	e, ok := m.events[id]
	if !ok || e.TenantID != tenantID {
		return event.Event{}, errors.New("not found")
	}
	return e, nil
}

func (m *mockEventStore) Save(_ context.Context, e event.Event) error {
	m.events[e.ID] = e
	return nil
}

func (m *mockEventStore) Delete(_ context.Context, id string, tenantID string) error {
	delete(m.events, id)
	return nil
}

// TestExecuteCreateEvent_Valid tests creating a calendar entry.
func TestExecuteCreateEvent_Valid(t *testing.T) {
	store := newMockEventStore()
	e, err := ExecuteCreateEvent(context.Background(), adminActor, CreateEventInput{
		TenantID: "admin-1",
		Event: event.Event{
			Title: "End of Season BBQ",
			Date:  "2026-06-20",
			Time:  "15:00",
		},
	}, CreateEventDeps{EventStore: store, GenerateID: fixedID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "test-id-001" {
		t.Errorf("expected generated ID, got %s", e.ID)
	}
	if _, ok := store.events["test-id-001"]; !ok {
		t.Error("expected event to be persisted")
	}
}

// TestExecuteCreateEvent_BadDate tests rejection of a malformed date.
func TestExecuteCreateEvent_BadDate(t *testing.T) {
	_, err := ExecuteCreateEvent(context.Background(), adminActor, CreateEventInput{
		TenantID: "admin-1",
		Event:    event.Event{Title: "BBQ", Date: "20/06/2026"},
	}, CreateEventDeps{EventStore: newMockEventStore(), GenerateID: fixedID})
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// TestExecuteCreateEvent_CoachForbidden tests that coaches cannot manage
// calendar events.
func TestExecuteCreateEvent_CoachForbidden(t *testing.T) {
	_, err := ExecuteCreateEvent(context.Background(), coachActor, CreateEventInput{
		TenantID: "admin-1",
		Event:    event.Event{Title: "BBQ", Date: "2026-06-20"},
	}, CreateEventDeps{EventStore: newMockEventStore(), GenerateID: fixedID})
	if !errors.Is(err, fault.ErrForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}

// TestExecuteDeleteEvent_NotFound tests deleting a missing event.
func TestExecuteDeleteEvent_NotFound(t *testing.T) {
	err := ExecuteDeleteEvent(context.Background(), adminActor, "nonexistent", "admin-1", CreateEventDeps{EventStore: newMockEventStore(), GenerateID: fixedID})
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
