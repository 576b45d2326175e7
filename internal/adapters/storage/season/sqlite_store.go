package season

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/season"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new season store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByIDForTenant retrieves a Season by ID under the given tenant.
func (s *SQLiteStore) GetByIDForTenant(ctx context.Context, id string, tenantID string) (domain.Season, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, tenant_id, name, start_date, end_date FROM season WHERE id = ? AND tenant_id = ?",
		id, tenantID)
	entity, err := scanSeason(row)
	if err == sql.ErrNoRows {
		return domain.Season{}, fmt.Errorf("season not found: %w", err)
	}
	return entity, err
}

// ListByTenant retrieves all seasons of a tenant, newest first.
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Season, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, tenant_id, name, start_date, end_date FROM season WHERE tenant_id = ? ORDER BY start_date DESC",
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Season
	for rows.Next() {
		entity, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Save persists a Season (insert or update).
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Season) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO season (id, tenant_id, name, start_date, end_date) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET tenant_id=excluded.tenant_id, name=excluded.name,
			start_date=excluded.start_date, end_date=excluded.end_date`,
		entity.ID, entity.TenantID, entity.Name,
		entity.StartDate.Format("2006-01-02"), entity.EndDate.Format("2006-01-02"))
	return err
}

// Delete removes a Season under the given tenant.
func (s *SQLiteStore) Delete(ctx context.Context, id string, tenantID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM season WHERE id = ? AND tenant_id = ?", id, tenantID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeason(row rowScanner) (domain.Season, error) {
	var entity domain.Season
	var startDate, endDate string
	err := row.Scan(&entity.ID, &entity.TenantID, &entity.Name, &startDate, &endDate)
	if err != nil {
		return domain.Season{}, err
	}
	entity.StartDate, err = time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return domain.Season{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	entity.EndDate, err = time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return domain.Season{}, fmt.Errorf("failed to parse end_date: %w", err)
	}
	return entity, nil
}
