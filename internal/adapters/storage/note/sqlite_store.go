package note

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/note"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new note store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts a SessionNote and its player sub-notes in one transaction.
// PRE: entity has been validated and pruned
// POST: A new note row exists; existing notes for the same (session, date)
// are untouched
func (s *SQLiteStore) Save(ctx context.Context, entity domain.SessionNote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var generalNote any
	if entity.GeneralNote != "" {
		generalNote = entity.GeneralNote
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO session_note (id, tenant_id, session_id, class_date, coach_id, general_note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.ID,
		entity.TenantID,
		entity.SessionID,
		entity.ClassDate,
		entity.CoachID,
		generalNote,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	for _, pn := range entity.PlayerNotes {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_note_entry (id, note_id, player_id, note) VALUES (?, ?, ?, ?)",
			pn.ID, entity.ID, pn.PlayerID, pn.Text)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListBySessionAndDate retrieves all notes for one concrete session
// occurrence, oldest first, each with its player sub-notes attached.
func (s *SQLiteStore) ListBySessionAndDate(ctx context.Context, sessionID string, classDate string) ([]domain.SessionNote, error) {
	query := `SELECT id, tenant_id, session_id, class_date, coach_id, general_note, created_at
		FROM session_note WHERE session_id = ? AND class_date = ? ORDER BY created_at`
	return s.list(ctx, query, sessionID, classDate)
}

// ListByCoachID retrieves all notes authored by a coach, newest first.
func (s *SQLiteStore) ListByCoachID(ctx context.Context, coachID string) ([]domain.SessionNote, error) {
	query := `SELECT id, tenant_id, session_id, class_date, coach_id, general_note, created_at
		FROM session_note WHERE coach_id = ? ORDER BY created_at DESC`
	return s.list(ctx, query, coachID)
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.SessionNote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SessionNote
	for rows.Next() {
		var entity domain.SessionNote
		var generalNote sql.NullString
		var createdAt string
		if err := rows.Scan(
			&entity.ID,
			&entity.TenantID,
			&entity.SessionID,
			&entity.ClassDate,
			&entity.CoachID,
			&generalNote,
			&createdAt,
		); err != nil {
			return nil, err
		}
		entity.GeneralNote = generalNote.String
		parsed, err := parseStoredTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entity.CreatedAt = parsed
		results = append(results, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		entries, err := s.listEntries(ctx, results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].PlayerNotes = entries
	}
	return results, nil
}

func (s *SQLiteStore) listEntries(ctx context.Context, noteID string) ([]domain.PlayerNote, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, player_id, note FROM session_note_entry WHERE note_id = ?", noteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PlayerNote
	for rows.Next() {
		var pn domain.PlayerNote
		if err := rows.Scan(&pn.ID, &pn.PlayerID, &pn.Text); err != nil {
			return nil, err
		}
		entries = append(entries, pn)
	}
	return entries, rows.Err()
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
