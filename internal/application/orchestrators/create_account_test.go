package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"sideline/internal/application/fault"
	"sideline/internal/domain/account"
)

// mockAccountStore implements AccountStore and LoginStore for testing.
type mockAccountStore struct {
	accounts map[string]account.Account
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]account.Account)}
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, errors.New("not found")
}

func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.accounts), nil
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func accountDeps(store *mockAccountStore) CreateAccountDeps {
	return CreateAccountDeps{AccountStore: store, GenerateID: fixedID, Now: fixedNow}
}

// TestExecuteCreateAccount_Valid tests creating a coach login.
func TestExecuteCreateAccount_Valid(t *testing.T) {
	store := newMockAccountStore()
	a, err := ExecuteCreateAccount(context.Background(), adminActor, CreateAccountInput{
		TenantID: "admin-1",
		Email:    "Coach@Example.com",
		Password: "correct-horse-battery",
		Role:     account.RoleCoach,
		PersonID: "coach-001",
	}, accountDeps(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Email != "coach@example.com" {
		t.Errorf("expected lowercased email, got %s", a.Email)
	}
	if a.TenantID != "admin-1" {
		t.Errorf("expected tenant=admin-1, got %s", a.TenantID)
	}
	if a.PasswordHash == "" || a.PasswordHash == "correct-horse-battery" {
		t.Error("expected password to be hashed")
	}
	if err := a.CheckPassword("correct-horse-battery"); err != nil {
		t.Errorf("expected stored hash to verify: %v", err)
	}
}

// TestExecuteCreateAccount_DuplicateEmail tests that a registered email
// is rejected.
func TestExecuteCreateAccount_DuplicateEmail(t *testing.T) {
	store := newMockAccountStore()
	store.accounts["existing"] = account.Account{ID: "existing", Email: "coach@example.com"}

	_, err := ExecuteCreateAccount(context.Background(), adminActor, CreateAccountInput{
		TenantID: "admin-1",
		Email:    "coach@example.com",
		Password: "correct-horse-battery",
		Role:     account.RoleCoach,
	}, accountDeps(store))
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// TestExecuteCreateAccount_CoachForbidden tests that only admins create
// accounts.
func TestExecuteCreateAccount_CoachForbidden(t *testing.T) {
	_, err := ExecuteCreateAccount(context.Background(), coachActor, CreateAccountInput{
		TenantID: "admin-1",
		Email:    "player@example.com",
		Password: "correct-horse-battery",
		Role:     account.RolePlayer,
	}, accountDeps(newMockAccountStore()))
	if !errors.Is(err, fault.ErrForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}

// TestExecuteCreateAccount_NoAdminRole tests that admin accounts cannot be
// minted through this path.
func TestExecuteCreateAccount_NoAdminRole(t *testing.T) {
	_, err := ExecuteCreateAccount(context.Background(), adminActor, CreateAccountInput{
		TenantID: "admin-1",
		Email:    "second-admin@example.com",
		Password: "correct-horse-battery",
		Role:     account.RoleAdmin,
	}, accountDeps(newMockAccountStore()))
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// TestExecuteCreateAccount_ShortPassword tests the bcrypt length floor.
func TestExecuteCreateAccount_ShortPassword(t *testing.T) {
	_, err := ExecuteCreateAccount(context.Background(), adminActor, CreateAccountInput{
		TenantID: "admin-1",
		Email:    "coach@example.com",
		Password: "short",
		Role:     account.RoleCoach,
	}, accountDeps(newMockAccountStore()))
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// TestExecuteSeedAdmin_Fresh tests seeding into an empty store.
func TestExecuteSeedAdmin_Fresh(t *testing.T) {
	store := newMockAccountStore()
	if err := ExecuteSeedAdmin(context.Background(), "admin@example.com", "correct-horse-battery", accountDeps(store)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := store.accounts["test-id-001"]
	if !ok {
		t.Fatal("expected seeded admin account")
	}
	if a.Role != account.RoleAdmin {
		t.Errorf("expected admin role, got %s", a.Role)
	}
	if a.TenantID != a.ID {
		t.Errorf("expected admin to be its own tenant, got tenant=%s", a.TenantID)
	}
}

// TestExecuteSeedAdmin_ProductionDeps tests seeding with deps wired the way
// the server wires them: real UUID generation and the real clock, not test
// injectors. Seeding an empty store must succeed without touching either
// injector being nil.
func TestExecuteSeedAdmin_ProductionDeps(t *testing.T) {
	store := newMockAccountStore()
	deps := CreateAccountDeps{
		AccountStore: store,
		GenerateID:   func() string { return uuid.New().String() },
		Now:          time.Now,
	}
	if err := ExecuteSeedAdmin(context.Background(), "admin@example.com", "correct-horse-battery", deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("expected one seeded account, got %d", len(store.accounts))
	}
	for _, a := range store.accounts {
		if a.ID == "" {
			t.Error("expected generated account ID")
		}
		if a.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}
	}
}

// TestExecuteSeedAdmin_NoClobber tests that seeding is a no-op when any
// account already exists.
func TestExecuteSeedAdmin_NoClobber(t *testing.T) {
	store := newMockAccountStore()
	store.accounts["existing"] = account.Account{ID: "existing", Email: "admin@example.com", Role: account.RoleAdmin}

	if err := ExecuteSeedAdmin(context.Background(), "admin@example.com", "different-password-123", accountDeps(store)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Errorf("expected no new accounts, got %d", len(store.accounts))
	}
}
