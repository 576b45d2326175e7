package group

import (
	"context"

	domain "sideline/internal/domain/group"
)

// Store persists Groups and their membership lists.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Group, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Group, error)
	ListIDsByCoach(ctx context.Context, coachID string) ([]string, error)
	ListIDsByPlayer(ctx context.Context, playerID string) ([]string, error)
	Save(ctx context.Context, value domain.Group) error
	Delete(ctx context.Context, id string) error
}
