package event

import (
	"context"
	"database/sql"
	"fmt"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/event"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new calendar event store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByIDForTenant retrieves an event by ID under the given tenant.
func (s *SQLiteStore) GetByIDForTenant(ctx context.Context, id string, tenantID string) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, season_id, title, event_date, event_time, location, description
		FROM calendar_event WHERE id = ? AND tenant_id = ?`, id, tenantID)
	entity, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return domain.Event{}, fmt.Errorf("event not found: %w", err)
	}
	return entity, err
}

// ListByTenant retrieves all events owned by a tenant, ordered by date.
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Event, error) {
	query := `SELECT id, tenant_id, season_id, title, event_date, event_time, location, description
		FROM calendar_event WHERE tenant_id = ? ORDER BY event_date, event_time`
	return s.list(ctx, query, tenantID)
}

// ListByTenantAndDateRange retrieves a tenant's events whose date lies in
// [startDate, endDate], both inclusive.
func (s *SQLiteStore) ListByTenantAndDateRange(ctx context.Context, tenantID string, startDate string, endDate string) ([]domain.Event, error) {
	query := `SELECT id, tenant_id, season_id, title, event_date, event_time, location, description
		FROM calendar_event WHERE tenant_id = ? AND event_date >= ? AND event_date <= ?
		ORDER BY event_date, event_time`
	return s.list(ctx, query, tenantID, startDate, endDate)
}

// Save persists an event (insert or update).
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Event) error {
	var eventTime, location, description any
	if entity.Time != "" {
		eventTime = entity.Time
	}
	if entity.Location != "" {
		location = entity.Location
	}
	if entity.Description != "" {
		description = entity.Description
	}
	query := `INSERT INTO calendar_event (id, tenant_id, season_id, title, event_date, event_time, location, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			season_id=excluded.season_id, title=excluded.title, event_date=excluded.event_date,
			event_time=excluded.event_time, location=excluded.location, description=excluded.description`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.TenantID, entity.SeasonID, entity.Title,
		entity.Date, eventTime, location, description)
	return err
}

// Delete removes an event under the given tenant.
func (s *SQLiteStore) Delete(ctx context.Context, id string, tenantID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM calendar_event WHERE id = ? AND tenant_id = ?", id, tenantID)
	return err
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Event
	for rows.Next() {
		entity, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var entity domain.Event
	var eventTime, location, description sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.TenantID,
		&entity.SeasonID,
		&entity.Title,
		&entity.Date,
		&eventTime,
		&location,
		&description,
	)
	if err != nil {
		return domain.Event{}, err
	}
	entity.Time = eventTime.String
	entity.Location = location.String
	entity.Description = description.String
	return entity, nil
}
