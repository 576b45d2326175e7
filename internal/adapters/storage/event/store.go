package event

import (
	"context"

	domain "sideline/internal/domain/event"
)

// Store persists calendar Events.
type Store interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (domain.Event, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Event, error)
	ListByTenantAndDateRange(ctx context.Context, tenantID string, startDate string, endDate string) ([]domain.Event, error)
	Save(ctx context.Context, value domain.Event) error
	Delete(ctx context.Context, id string, tenantID string) error
}
