package attendance

import (
	"context"
	"fmt"
	"time"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/attendance"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new attendance store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Upsert persists a Record, overwriting the status of an existing row with
// the same (session_id, player_id, class_date) key.
// PRE: entity has been validated
// POST: Exactly one row exists for the key; its status is entity.Status
func (s *SQLiteStore) Upsert(ctx context.Context, entity domain.Record) error {
	query := `INSERT INTO attendance (id, tenant_id, session_id, player_id, class_date, status, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, player_id, class_date) DO UPDATE SET
			status=excluded.status, recorded_at=excluded.recorded_at`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.TenantID,
		entity.SessionID,
		entity.PlayerID,
		entity.ClassDate,
		entity.Status,
		entity.RecordedAt.Format(time.RFC3339Nano),
	)
	return err
}

// ListBySessionAndDate retrieves the attendance sheet of one concrete
// session occurrence.
// PRE: sessionID is non-empty, classDate is YYYY-MM-DD
func (s *SQLiteStore) ListBySessionAndDate(ctx context.Context, sessionID string, classDate string) ([]domain.Record, error) {
	query := `SELECT id, tenant_id, session_id, player_id, class_date, status, recorded_at
		FROM attendance WHERE session_id = ? AND class_date = ?`
	return s.list(ctx, query, sessionID, classDate)
}

// ListByPlayerAndDateRange retrieves a player's attendance history within a
// date range (inclusive).
func (s *SQLiteStore) ListByPlayerAndDateRange(ctx context.Context, playerID string, startDate string, endDate string) ([]domain.Record, error) {
	query := `SELECT id, tenant_id, session_id, player_id, class_date, status, recorded_at
		FROM attendance WHERE player_id = ? AND class_date >= ? AND class_date <= ?
		ORDER BY class_date`
	return s.list(ctx, query, playerID, startDate, endDate)
}

// DeleteBySessionPlayerDate removes one attendance row by its natural key.
func (s *SQLiteStore) DeleteBySessionPlayerDate(ctx context.Context, sessionID string, playerID string, classDate string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM attendance WHERE session_id = ? AND player_id = ? AND class_date = ?",
		sessionID, playerID, classDate)
	return err
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Record
	for rows.Next() {
		var entity domain.Record
		var recordedAt string
		if err := rows.Scan(
			&entity.ID,
			&entity.TenantID,
			&entity.SessionID,
			&entity.PlayerID,
			&entity.ClassDate,
			&entity.Status,
			&recordedAt,
		); err != nil {
			return nil, err
		}
		parsed, err := parseStoredTime(recordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse recorded_at: %w", err)
		}
		entity.RecordedAt = parsed
		results = append(results, entity)
	}
	return results, rows.Err()
}

func parseStoredTime(value string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
