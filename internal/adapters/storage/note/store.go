package note

import (
	"context"

	domain "sideline/internal/domain/note"
)

// Store persists SessionNotes. Notes are append-only: Save always inserts,
// there is no update path.
type Store interface {
	Save(ctx context.Context, value domain.SessionNote) error
	ListBySessionAndDate(ctx context.Context, sessionID string, classDate string) ([]domain.SessionNote, error)
	ListByCoachID(ctx context.Context, coachID string) ([]domain.SessionNote, error)
}
