package season

import (
	"context"

	domain "sideline/internal/domain/season"
)

// Store persists Seasons.
type Store interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (domain.Season, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Season, error)
	Save(ctx context.Context, value domain.Season) error
	Delete(ctx context.Context, id string, tenantID string) error
}
