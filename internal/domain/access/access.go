// Package access decides who may see or act on a session. It is pure:
// callers fetch the session and its group, then ask.
package access

import (
	"sideline/internal/domain/group"
	"sideline/internal/domain/session"
)

// CoachCanAct reports whether a coach may record attendance, notes or scores
// for a session. Any one of the three grants is sufficient: membership in the
// session's group, being the assigned coach, or being the substitute.
func CoachCanAct(coachID string, s session.Session, g group.Group) bool {
	if coachID == "" {
		return false
	}
	return g.HasCoach(coachID) || s.CoachID == coachID || s.SubstituteCoachID == coachID
}

// PlayerCanView reports whether a player may see a session. Players only view,
// never mutate; visibility requires membership in the session's group.
func PlayerCanView(playerID string, s session.Session, g group.Group) bool {
	if playerID == "" {
		return false
	}
	return g.HasPlayer(playerID)
}
