package orchestrators

import (
	"context"
	"errors"
	"testing"

	"sideline/internal/domain/account"
)

func seededLoginStore(t *testing.T) *mockAccountStore {
	t.Helper()
	a := account.Account{
		ID:       "acct-1",
		Email:    "coach@example.com",
		Role:     account.RoleCoach,
		TenantID: "admin-1",
		PersonID: "coach-001",
	}
	if err := a.SetPassword("correct-horse-battery"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	store := newMockAccountStore()
	store.accounts[a.ID] = a
	return store
}

// TestExecuteLogin_Valid tests a successful login.
func TestExecuteLogin_Valid(t *testing.T) {
	store := seededLoginStore(t)
	a, err := ExecuteLogin(context.Background(), "Coach@Example.com", "correct-horse-battery", LoginDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "acct-1" {
		t.Errorf("expected acct-1, got %s", a.ID)
	}
}

// TestExecuteLogin_WrongPassword tests rejection of a bad password.
func TestExecuteLogin_WrongPassword(t *testing.T) {
	store := seededLoginStore(t)
	_, err := ExecuteLogin(context.Background(), "coach@example.com", "wrong-password-here", LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected bad credentials, got %v", err)
	}
}

// TestExecuteLogin_UnknownEmail tests that an unknown email yields the same
// error as a wrong password.
func TestExecuteLogin_UnknownEmail(t *testing.T) {
	store := seededLoginStore(t)
	_, err := ExecuteLogin(context.Background(), "nobody@example.com", "correct-horse-battery", LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected bad credentials, got %v", err)
	}
}

// TestExecuteLogin_EmptyInput tests rejection of blank credentials.
func TestExecuteLogin_EmptyInput(t *testing.T) {
	store := seededLoginStore(t)
	if _, err := ExecuteLogin(context.Background(), "", "correct-horse-battery", LoginDeps{AccountStore: store}); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := ExecuteLogin(context.Background(), "coach@example.com", "", LoginDeps{AccountStore: store}); err == nil {
		t.Error("expected error for empty password")
	}
}
