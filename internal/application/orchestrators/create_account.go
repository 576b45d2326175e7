package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sideline/internal/application/fault"
	"sideline/internal/domain/account"
)

// AccountStore defines the account store interface for account management.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, value account.Account) error
}

// CreateAccountInput carries a new login identity.
type CreateAccountInput struct {
	TenantID string
	Email    string
	Password string
	Role     string
	PersonID string // coach or player row, empty for admins
}

// CreateAccountDeps holds dependencies for CreateAccount.
type CreateAccountDeps struct {
	AccountStore AccountStore
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteCreateAccount creates a coach or player login under the admin's
// tenant. Emails are globally unique across tenants.
// PRE: actor is an admin
// POST: Account exists with a bcrypt password hash
func ExecuteCreateAccount(ctx context.Context, actor Actor, input CreateAccountInput, deps CreateAccountDeps) (account.Account, error) {
	if actor.Role != account.RoleAdmin {
		return account.Account{}, fmt.Errorf("%w: only admins can create accounts", fault.ErrForbidden)
	}
	if input.Role == account.RoleAdmin {
		return account.Account{}, fmt.Errorf("%w: admin accounts are created at startup only", fault.ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if existing, err := deps.AccountStore.GetByEmail(ctx, email); err == nil && existing.ID != "" {
		return account.Account{}, fmt.Errorf("%w: email already registered", fault.ErrValidation)
	}

	a := account.Account{
		ID:        deps.GenerateID(),
		Email:     email,
		Role:      input.Role,
		TenantID:  input.TenantID,
		PersonID:  input.PersonID,
		CreatedAt: deps.Now(),
	}
	if err := a.Validate(); err != nil {
		return account.Account{}, fmt.Errorf("%w: %v", fault.ErrValidation, err)
	}
	if err := a.SetPassword(input.Password); err != nil {
		return account.Account{}, fmt.Errorf("%w: %v", fault.ErrValidation, err)
	}

	if err := deps.AccountStore.Save(ctx, a); err != nil {
		return account.Account{}, err
	}

	slog.Info("account_created", "account_id", a.ID, "role", a.Role)
	return a, nil
}

// ExecuteSeedAdmin ensures an admin account exists at startup. It is a no-op
// when any account is already present, so restarts never clobber credentials.
// POST: At least one admin account exists
func ExecuteSeedAdmin(ctx context.Context, email string, password string, deps CreateAccountDeps) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	id := deps.GenerateID()
	a := account.Account{
		ID:        id,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      account.RoleAdmin,
		TenantID:  id,
		CreatedAt: deps.Now(),
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := a.SetPassword(password); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := deps.AccountStore.Save(ctx, a); err != nil {
		return err
	}

	slog.Info("admin_seeded", "account_id", a.ID)
	return nil
}
