package player

import (
	"context"
	"database/sql"
	"fmt"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/player"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new player store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Player by its ID.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Player, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, tenant_id, season_id, name FROM player WHERE id = ?", id)
	var entity domain.Player
	err := row.Scan(&entity.ID, &entity.TenantID, &entity.SeasonID, &entity.Name)
	if err == sql.ErrNoRows {
		return domain.Player{}, fmt.Errorf("player not found: %w", err)
	}
	return entity, err
}

// ListByTenant retrieves all players of a tenant, ordered by name.
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Player, error) {
	return s.list(ctx, "SELECT id, tenant_id, season_id, name FROM player WHERE tenant_id = ? ORDER BY name", tenantID)
}

// ListByTenantAndSeason retrieves a tenant's players for one season.
func (s *SQLiteStore) ListByTenantAndSeason(ctx context.Context, tenantID string, seasonID string) ([]domain.Player, error) {
	return s.list(ctx,
		"SELECT id, tenant_id, season_id, name FROM player WHERE tenant_id = ? AND season_id = ? ORDER BY name",
		tenantID, seasonID)
}

// Save persists a Player (insert or update).
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Player) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO player (id, tenant_id, season_id, name) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET tenant_id=excluded.tenant_id,
			season_id=excluded.season_id, name=excluded.name`,
		entity.ID, entity.TenantID, entity.SeasonID, entity.Name)
	return err
}

// Delete removes a Player.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM player WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.Player, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Player
	for rows.Next() {
		var entity domain.Player
		if err := rows.Scan(&entity.ID, &entity.TenantID, &entity.SeasonID, &entity.Name); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
