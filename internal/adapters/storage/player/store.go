package player

import (
	"context"

	domain "sideline/internal/domain/player"
)

// Store persists Players.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Player, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Player, error)
	ListByTenantAndSeason(ctx context.Context, tenantID string, seasonID string) ([]domain.Player, error)
	Save(ctx context.Context, value domain.Player) error
	Delete(ctx context.Context, id string) error
}
