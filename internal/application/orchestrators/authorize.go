package orchestrators

import (
	"context"
	"fmt"

	"sideline/internal/application/fault"
	"sideline/internal/domain/access"
	"sideline/internal/domain/account"
	"sideline/internal/domain/group"
	"sideline/internal/domain/session"
)

// Actor identifies the caller of a use case. PersonID is the coach or
// player roster row linked to the account; empty for admins.
type Actor struct {
	Role      string
	AccountID string
	PersonID  string
}

// GroupLookupStore is the group store interface needed for access checks.
type GroupLookupStore interface {
	GetByID(ctx context.Context, id string) (group.Group, error)
}

// authorizeCoachAction checks whether the actor may record attendance,
// notes or scores for the session. Admins always may; coaches need group
// membership or a direct (or substitute) assignment.
// POST: nil, or fault.ErrForbidden
func authorizeCoachAction(ctx context.Context, actor Actor, s session.Session, groups GroupLookupStore) error {
	if actor.Role == account.RoleAdmin {
		return nil
	}
	if actor.Role != account.RoleCoach {
		return fmt.Errorf("%w: only coaches and admins can act on sessions", fault.ErrForbidden)
	}
	g, err := groups.GetByID(ctx, s.GroupID)
	if err != nil {
		// Group probe failed; direct assignment on the session can still grant.
		g = group.Group{}
	}
	if !access.CoachCanAct(actor.PersonID, s, g) {
		return fmt.Errorf("%w: coach has no access to this session", fault.ErrForbidden)
	}
	return nil
}
