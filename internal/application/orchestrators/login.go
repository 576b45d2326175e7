package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sideline/internal/application/fault"
	"sideline/internal/domain/account"
)

// ErrBadCredentials is returned for any failed login. Unknown email and
// wrong password are indistinguishable to the caller.
var ErrBadCredentials = errors.New("invalid email or password")

// LoginStore defines the account store interface for login.
type LoginStore interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore LoginStore
}

// ExecuteLogin verifies credentials and returns the matching account.
// POST: Returned account's password hash matched the supplied password
func ExecuteLogin(ctx context.Context, email string, password string, deps LoginDeps) (account.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return account.Account{}, fmt.Errorf("%w: %v", fault.ErrValidation, ErrBadCredentials)
	}

	a, err := deps.AccountStore.GetByEmail(ctx, email)
	if err != nil {
		return account.Account{}, ErrBadCredentials
	}
	if err := a.CheckPassword(password); err != nil {
		return account.Account{}, ErrBadCredentials
	}
	return a, nil
}
