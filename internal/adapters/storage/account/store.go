package account

import (
	"context"

	domain "sideline/internal/domain/account"
)

// Store persists Accounts.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, value domain.Account) error
	Delete(ctx context.Context, id string) error
}
