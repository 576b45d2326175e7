package coach

import (
	"context"
	"database/sql"
	"fmt"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/coach"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new coach store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Coach by its ID.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Coach, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, tenant_id, season_id, name FROM coach WHERE id = ?", id)
	var entity domain.Coach
	err := row.Scan(&entity.ID, &entity.TenantID, &entity.SeasonID, &entity.Name)
	if err == sql.ErrNoRows {
		return domain.Coach{}, fmt.Errorf("coach not found: %w", err)
	}
	return entity, err
}

// ListByTenant retrieves all coaches of a tenant, ordered by name.
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Coach, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, tenant_id, season_id, name FROM coach WHERE tenant_id = ? ORDER BY name", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Coach
	for rows.Next() {
		var entity domain.Coach
		if err := rows.Scan(&entity.ID, &entity.TenantID, &entity.SeasonID, &entity.Name); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Save persists a Coach (insert or update).
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Coach) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO coach (id, tenant_id, season_id, name) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET tenant_id=excluded.tenant_id,
			season_id=excluded.season_id, name=excluded.name`,
		entity.ID, entity.TenantID, entity.SeasonID, entity.Name)
	return err
}

// Delete removes a Coach.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM coach WHERE id = ?", id)
	return err
}
