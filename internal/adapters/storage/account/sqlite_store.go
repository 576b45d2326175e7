package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new account store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Account by its ID.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, role, tenant_id, person_id, created_at FROM account WHERE id = ?", id)
	entity, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return entity, err
}

// GetByEmail retrieves an Account by its email.
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, role, tenant_id, person_id, created_at FROM account WHERE email = ?", email)
	entity, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return entity, err
}

// Count returns the number of accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM account").Scan(&n)
	return n, err
}

// Save persists an Account (insert or update).
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Account) error {
	var personID any
	if entity.PersonID != "" {
		personID = entity.PersonID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO account (id, email, password_hash, role, tenant_id, person_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET email=excluded.email, password_hash=excluded.password_hash,
			role=excluded.role, tenant_id=excluded.tenant_id, person_id=excluded.person_id`,
		entity.ID, entity.Email, entity.PasswordHash, entity.Role,
		entity.TenantID, personID, entity.CreatedAt.Format(time.RFC3339Nano))
	return err
}

// Delete removes an Account.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM account WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var entity domain.Account
	var personID sql.NullString
	var createdAt string
	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.PasswordHash,
		&entity.Role,
		&entity.TenantID,
		&personID,
		&createdAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	entity.PersonID = personID.String
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, perr := time.Parse(layout, createdAt); perr == nil {
			entity.CreatedAt = parsed
			break
		}
	}
	return entity, nil
}
