package coach

import (
	"context"

	domain "sideline/internal/domain/coach"
)

// Store persists Coaches.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Coach, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Coach, error)
	Save(ctx context.Context, value domain.Coach) error
	Delete(ctx context.Context, id string) error
}
