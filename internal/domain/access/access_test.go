package access_test

import (
	"testing"

	"sideline/internal/domain/access"
	"sideline/internal/domain/group"
	"sideline/internal/domain/session"
)

func fixtureSession() session.Session {
	return session.Session{
		ID:                "s-1",
		GroupID:           "g-1",
		CoachID:           "coach-primary",
		SubstituteCoachID: "coach-sub",
	}
}

func fixtureGroup() group.Group {
	return group.Group{
		ID:        "g-1",
		CoachIDs:  []string{"coach-member"},
		PlayerIDs: []string{"player-1", "player-2"},
	}
}

// TestCoachCanAct_ORSemantics verifies that any one of group membership,
// primary assignment or substitute assignment is sufficient.
func TestCoachCanAct_ORSemantics(t *testing.T) {
	s := fixtureSession()
	g := fixtureGroup()

	tests := []struct {
		name    string
		coachID string
		want    bool
	}{
		{"group member only", "coach-member", true},
		{"primary coach only", "coach-primary", true},
		{"substitute only", "coach-sub", true},
		{"no relationship", "coach-stranger", false},
		{"empty coach id", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := access.CoachCanAct(tt.coachID, s, g); got != tt.want {
				t.Errorf("CoachCanAct(%q) = %v, want %v", tt.coachID, got, tt.want)
			}
		})
	}
}

// TestPlayerCanView verifies player visibility is group membership only.
func TestPlayerCanView(t *testing.T) {
	s := fixtureSession()
	g := fixtureGroup()

	if !access.PlayerCanView("player-1", s, g) {
		t.Error("group member should see the session")
	}
	if access.PlayerCanView("player-9", s, g) {
		t.Error("non-member should not see the session")
	}
	if access.PlayerCanView("", s, g) {
		t.Error("empty player id should never pass")
	}
}
