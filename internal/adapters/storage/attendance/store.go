package attendance

import (
	"context"

	domain "sideline/internal/domain/attendance"
)

// Store persists attendance Records.
type Store interface {
	// Upsert inserts the record or, if one already exists for its
	// (SessionID, PlayerID, ClassDate) key, overwrites that row's status.
	Upsert(ctx context.Context, value domain.Record) error
	ListBySessionAndDate(ctx context.Context, sessionID string, classDate string) ([]domain.Record, error)
	ListByPlayerAndDateRange(ctx context.Context, playerID string, startDate string, endDate string) ([]domain.Record, error)
	DeleteBySessionPlayerDate(ctx context.Context, sessionID string, playerID string, classDate string) error
}
