package session

import (
	"context"

	domain "sideline/internal/domain/session"
)

// Store persists Session templates. All reads are tenant-scoped: a template
// that exists under another tenant is indistinguishable from one that does
// not exist at all.
type Store interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (domain.Session, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Session, error)
	ListByTenantAndSeason(ctx context.Context, tenantID string, seasonID string) ([]domain.Session, error)
	ListByGroupIDs(ctx context.Context, groupIDs []string) ([]domain.Session, error)
	ListByCoachOrSubstitute(ctx context.Context, coachID string) ([]domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	Delete(ctx context.Context, id string, tenantID string) error
}
