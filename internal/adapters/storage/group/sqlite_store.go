package group

import (
	"context"
	"database/sql"
	"fmt"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/group"
)

// SQLiteStore implements Store using SQLite. Membership lives in the
// group_coach and group_player join tables and is rewritten on every Save.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new group store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Group with its membership lists.
// PRE: id is non-empty
// POST: Returns the group or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Group, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, tenant_id, season_id, name FROM team_group WHERE id = ?", id)

	var entity domain.Group
	err := row.Scan(&entity.ID, &entity.TenantID, &entity.SeasonID, &entity.Name)
	if err == sql.ErrNoRows {
		return domain.Group{}, fmt.Errorf("group not found: %w", err)
	}
	if err != nil {
		return domain.Group{}, err
	}

	entity.CoachIDs, err = s.listMemberIDs(ctx, "SELECT coach_id FROM group_coach WHERE group_id = ?", id)
	if err != nil {
		return domain.Group{}, err
	}
	entity.PlayerIDs, err = s.listMemberIDs(ctx, "SELECT player_id FROM group_player WHERE group_id = ?", id)
	if err != nil {
		return domain.Group{}, err
	}
	return entity, nil
}

// ListByTenant retrieves all groups of a tenant with membership attached.
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM team_group WHERE tenant_id = ? ORDER BY name", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var results []domain.Group
	for _, id := range ids {
		g, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		results = append(results, g)
	}
	return results, nil
}

// ListIDsByCoach returns the IDs of groups the coach is a member of.
func (s *SQLiteStore) ListIDsByCoach(ctx context.Context, coachID string) ([]string, error) {
	return s.listMemberIDs(ctx, "SELECT group_id FROM group_coach WHERE coach_id = ?", coachID)
}

// ListIDsByPlayer returns the IDs of groups the player is a member of.
func (s *SQLiteStore) ListIDsByPlayer(ctx context.Context, playerID string) ([]string, error) {
	return s.listMemberIDs(ctx, "SELECT group_id FROM group_player WHERE player_id = ?", playerID)
}

// Save persists a Group and replaces its membership lists.
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO team_group (id, tenant_id, season_id, name) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET tenant_id=excluded.tenant_id,
			season_id=excluded.season_id, name=excluded.name`,
		entity.ID, entity.TenantID, entity.SeasonID, entity.Name)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM group_coach WHERE group_id = ?", entity.ID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM group_player WHERE group_id = ?", entity.ID); err != nil {
		return err
	}
	for _, coachID := range entity.CoachIDs {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO group_coach (group_id, coach_id) VALUES (?, ?)", entity.ID, coachID); err != nil {
			return err
		}
	}
	for _, playerID := range entity.PlayerIDs {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO group_player (group_id, player_id) VALUES (?, ?)", entity.ID, playerID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes a Group and its membership rows.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM group_coach WHERE group_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM group_player WHERE group_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM team_group WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) listMemberIDs(ctx context.Context, query string, arg string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
