package orchestrators

import (
	"context"
	"errors"
	"testing"

	"sideline/internal/application/fault"
	"sideline/internal/domain/group"
	"sideline/internal/domain/session"
)

func storedWeeklyGame() session.Session {
	return session.Session{
		ID:        "game-1",
		TenantID:  "admin-1",
		SeasonID:  "season-1",
		Kind:      session.KindWeekly,
		EventType: session.TypeGame,
		Title:     "League Match",
		GroupID:   "group-1",
		DayOfWeek: 6,
		StartTime: "10:00",
		EndTime:   "11:30",
		Game: &session.GameDetails{
			Opponent:     "Rovers",
			LocationType: session.LocationAway,
		},
	}
}

// TestExecuteRecordGameScore_Valid tests that the score lands on the template
// and marks it completed.
func TestExecuteRecordGameScore_Valid(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["game-1"] = storedWeeklyGame()
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-001"}}

	err := ExecuteRecordGameScore(context.Background(), coachActor, RecordGameScoreInput{
		TenantID:      "admin-1",
		SessionID:     "game-1",
		TeamScore:     3,
		OpponentScore: 1,
		GameNotes:     "Strong second half.",
	}, RecordGameScoreDeps{SessionStore: sessions, GroupStore: groups})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := sessions.sessions["game-1"]
	if saved.Game == nil {
		t.Fatal("expected game details to survive")
	}
	if saved.Game.TeamScore != 3 || saved.Game.OpponentScore != 1 {
		t.Errorf("expected score 3-1, got %d-%d", saved.Game.TeamScore, saved.Game.OpponentScore)
	}
	if !saved.Game.IsCompleted {
		t.Error("expected IsCompleted=true after score submission")
	}
	if saved.Game.GameNotes != "Strong second half." {
		t.Errorf("expected game notes to be stored, got %q", saved.Game.GameNotes)
	}
}

// TestExecuteRecordGameScore_TrainingRejected tests that a score against a
// training session fails validation.
func TestExecuteRecordGameScore_TrainingRejected(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()

	err := ExecuteRecordGameScore(context.Background(), adminActor, RecordGameScoreInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		TeamScore: 2,
	}, RecordGameScoreDeps{SessionStore: sessions, GroupStore: newMockGroupStore()})
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// TestExecuteRecordGameScore_KeepsNotesWhenOmitted tests that an empty notes
// field does not wipe an earlier remark.
func TestExecuteRecordGameScore_KeepsNotesWhenOmitted(t *testing.T) {
	s := storedWeeklyGame()
	s.Game.GameNotes = "First leg remarks."
	sessions := newMockSessionStore()
	sessions.sessions["game-1"] = s

	err := ExecuteRecordGameScore(context.Background(), adminActor, RecordGameScoreInput{
		TenantID:      "admin-1",
		SessionID:     "game-1",
		TeamScore:     0,
		OpponentScore: 0,
	}, RecordGameScoreDeps{SessionStore: sessions, GroupStore: newMockGroupStore()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.sessions["game-1"].Game.GameNotes != "First leg remarks." {
		t.Error("expected earlier game notes to survive an empty submission")
	}
}

// TestExecuteRecordGameScore_NotFound tests the unknown-session path.
func TestExecuteRecordGameScore_NotFound(t *testing.T) {
	err := ExecuteRecordGameScore(context.Background(), adminActor, RecordGameScoreInput{
		TenantID:  "admin-1",
		SessionID: "nonexistent",
	}, RecordGameScoreDeps{SessionStore: newMockSessionStore(), GroupStore: newMockGroupStore()})
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

// TestExecuteRecordGameScore_UnassignedCoach tests that an unrelated coach
// cannot submit a score.
func TestExecuteRecordGameScore_UnassignedCoach(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["game-1"] = storedWeeklyGame()
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-999"}}

	err := ExecuteRecordGameScore(context.Background(), coachActor, RecordGameScoreInput{
		TenantID:  "admin-1",
		SessionID: "game-1",
		TeamScore: 1,
	}, RecordGameScoreDeps{SessionStore: sessions, GroupStore: groups})
	if !errors.Is(err, fault.ErrForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}
