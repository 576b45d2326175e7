package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sideline/internal/adapters/storage"
	domain "sideline/internal/domain/session"
)

const sessionColumns = `id, tenant_id, season_id, kind, event_type, title, location, group_id,
	coach_id, substitute_coach_id, start_at, end_at, day_of_week, start_time, end_time,
	opponent, location_type, team_score, opponent_score, is_completed, game_notes`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByIDForTenant retrieves a session by ID under the given tenant.
// PRE: id and tenantID are non-empty
// POST: Returns the session or an error if not found under that tenant
func (s *SQLiteStore) GetByIDForTenant(ctx context.Context, id string, tenantID string) (domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM session WHERE id = ? AND tenant_id = ?"
	row := s.db.QueryRowContext(ctx, query, id, tenantID)
	entity, err := scanSession(row)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("session not found: %w", err)
	}
	return entity, err
}

// ListByTenant retrieves all session templates owned by a tenant.
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM session WHERE tenant_id = ?"
	return s.list(ctx, query, tenantID)
}

// ListByTenantAndSeason retrieves a tenant's templates for one season.
func (s *SQLiteStore) ListByTenantAndSeason(ctx context.Context, tenantID string, seasonID string) ([]domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM session WHERE tenant_id = ? AND season_id = ?"
	return s.list(ctx, query, tenantID, seasonID)
}

// ListByGroupIDs retrieves templates belonging to any of the given groups.
// POST: Returns nil for an empty groupIDs slice
func (s *SQLiteStore) ListByGroupIDs(ctx context.Context, groupIDs []string) ([]domain.Session, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(groupIDs))
	args := make([]any, len(groupIDs))
	for i, id := range groupIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf("SELECT "+sessionColumns+" FROM session WHERE group_id IN (%s)",
		strings.Join(placeholders, ","))
	return s.list(ctx, query, args...)
}

// ListByCoachOrSubstitute retrieves templates where the coach is directly
// assigned, as primary or as substitute.
func (s *SQLiteStore) ListByCoachOrSubstitute(ctx context.Context, coachID string) ([]domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM session WHERE coach_id = ? OR substitute_coach_id = ?"
	return s.list(ctx, query, coachID, coachID)
}

// Save persists a session template (insert or update).
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Session) error {
	var startAt, endAt any
	if !entity.StartAt.IsZero() {
		startAt = entity.StartAt.Format(time.RFC3339Nano)
	}
	if !entity.EndAt.IsZero() {
		endAt = entity.EndAt.Format(time.RFC3339Nano)
	}
	var location, coachID, subCoachID, startTime, endTime any
	if entity.Location != "" {
		location = entity.Location
	}
	if entity.CoachID != "" {
		coachID = entity.CoachID
	}
	if entity.SubstituteCoachID != "" {
		subCoachID = entity.SubstituteCoachID
	}
	if entity.StartTime != "" {
		startTime = entity.StartTime
	}
	if entity.EndTime != "" {
		endTime = entity.EndTime
	}

	var opponent, locationType, gameNotes any
	var teamScore, opponentScore, isCompleted int
	if entity.Game != nil {
		opponent = entity.Game.Opponent
		locationType = entity.Game.LocationType
		teamScore = entity.Game.TeamScore
		opponentScore = entity.Game.OpponentScore
		if entity.Game.IsCompleted {
			isCompleted = 1
		}
		if entity.Game.GameNotes != "" {
			gameNotes = entity.Game.GameNotes
		}
	}

	query := `INSERT INTO session (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tenant_id=excluded.tenant_id, season_id=excluded.season_id, kind=excluded.kind,
			event_type=excluded.event_type, title=excluded.title, location=excluded.location,
			group_id=excluded.group_id, coach_id=excluded.coach_id,
			substitute_coach_id=excluded.substitute_coach_id, start_at=excluded.start_at,
			end_at=excluded.end_at, day_of_week=excluded.day_of_week,
			start_time=excluded.start_time, end_time=excluded.end_time,
			opponent=excluded.opponent, location_type=excluded.location_type,
			team_score=excluded.team_score, opponent_score=excluded.opponent_score,
			is_completed=excluded.is_completed, game_notes=excluded.game_notes`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.TenantID, entity.SeasonID, entity.Kind, entity.EventType,
		entity.Title, location, entity.GroupID, coachID, subCoachID,
		startAt, endAt, entity.DayOfWeek, startTime, endTime,
		opponent, locationType, teamScore, opponentScore, isCompleted, gameNotes,
	)
	return err
}

// Delete removes a session template under the given tenant. Attendance and
// note rows referencing the template are left in place.
func (s *SQLiteStore) Delete(ctx context.Context, id string, tenantID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = ? AND tenant_id = ?", id, tenantID)
	return err
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		entity, err := scanSession(rows)
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

func scanSession(row rowScanner) (domain.Session, error) {
	var entity domain.Session
	var location, coachID, subCoachID, startAt, endAt, startTime, endTime sql.NullString
	var opponent, locationType, gameNotes sql.NullString
	var dayOfWeek sql.NullInt64
	var teamScore, opponentScore, isCompleted int

	err := row.Scan(
		&entity.ID,
		&entity.TenantID,
		&entity.SeasonID,
		&entity.Kind,
		&entity.EventType,
		&entity.Title,
		&location,
		&entity.GroupID,
		&coachID,
		&subCoachID,
		&startAt,
		&endAt,
		&dayOfWeek,
		&startTime,
		&endTime,
		&opponent,
		&locationType,
		&teamScore,
		&opponentScore,
		&isCompleted,
		&gameNotes,
	)
	if err != nil {
		return domain.Session{}, err
	}

	entity.Location = location.String
	entity.CoachID = coachID.String
	entity.SubstituteCoachID = subCoachID.String
	entity.DayOfWeek = int(dayOfWeek.Int64)
	entity.StartTime = startTime.String
	entity.EndTime = endTime.String

	if startAt.Valid {
		entity.StartAt, err = parseStoredTime(startAt.String)
		if err != nil {
			return domain.Session{}, fmt.Errorf("failed to parse start_at: %w", err)
		}
	}
	if endAt.Valid {
		entity.EndAt, err = parseStoredTime(endAt.String)
		if err != nil {
			return domain.Session{}, fmt.Errorf("failed to parse end_at: %w", err)
		}
	}

	if entity.EventType != domain.TypeTraining {
		entity.Game = &domain.GameDetails{
			Opponent:      opponent.String,
			LocationType:  locationType.String,
			TeamScore:     teamScore,
			OpponentScore: opponentScore,
			IsCompleted:   isCompleted != 0,
			GameNotes:     gameNotes.String,
		}
	}
	return entity, nil
}

func parseStoredTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
