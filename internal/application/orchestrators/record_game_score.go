package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"sideline/internal/application/fault"
	"sideline/internal/domain/session"
)

// ScoreSessionStore defines the session store interface for this use case.
type ScoreSessionStore interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
}

// RecordGameScoreInput carries a final score submission.
type RecordGameScoreInput struct {
	TenantID      string
	SessionID     string
	TeamScore     int
	OpponentScore int
	GameNotes     string // optional; overwrites when non-empty
}

// RecordGameScoreDeps holds dependencies for RecordGameScore.
type RecordGameScoreDeps struct {
	SessionStore ScoreSessionStore
	GroupStore   GroupLookupStore
}

// ExecuteRecordGameScore writes the score onto the session template and
// marks it completed. Scores live on the template: every instance expanded
// from a weekly game template reports the same result.
// PRE: the session is a game, meet or competition
// POST: Template has the submitted scores and IsCompleted=true
func ExecuteRecordGameScore(ctx context.Context, actor Actor, input RecordGameScoreInput, deps RecordGameScoreDeps) error {
	s, err := deps.SessionStore.GetByIDForTenant(ctx, input.SessionID, input.TenantID)
	if err != nil {
		return fmt.Errorf("%w: session %s", fault.ErrNotFound, input.SessionID)
	}

	if err := authorizeCoachAction(ctx, actor, s, deps.GroupStore); err != nil {
		return err
	}

	if !s.IsCompetitive() || s.Game == nil {
		return fmt.Errorf("%w: cannot submit scores for training sessions", fault.ErrValidation)
	}

	s.Game.TeamScore = input.TeamScore
	s.Game.OpponentScore = input.OpponentScore
	s.Game.IsCompleted = true
	if input.GameNotes != "" {
		s.Game.GameNotes = input.GameNotes
	}

	if err := deps.SessionStore.Save(ctx, s); err != nil {
		return err
	}

	slog.Info("game_score_recorded", "session_id", s.ID, "team", input.TeamScore, "opponent", input.OpponentScore)
	return nil
}
