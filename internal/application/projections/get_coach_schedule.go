package projections

import (
	"context"

	"sideline/internal/domain/session"
)

// CoachScheduleSessionStore defines the session store interface needed by this projection.
type CoachScheduleSessionStore interface {
	ListByGroupIDs(ctx context.Context, groupIDs []string) ([]session.Session, error)
	ListByCoachOrSubstitute(ctx context.Context, coachID string) ([]session.Session, error)
}

// CoachScheduleGroupStore defines the group store interface needed by this projection.
type CoachScheduleGroupStore interface {
	ListIDsByCoach(ctx context.Context, coachID string) ([]string, error)
}

// GetCoachScheduleDeps holds dependencies for the projection.
type GetCoachScheduleDeps struct {
	SessionStore CoachScheduleSessionStore
	GroupStore   CoachScheduleGroupStore
	EventStore   FeedEventStore
}

// GetCoachScheduleInput carries the coach and requested date range.
type GetCoachScheduleInput struct {
	TenantID   string
	CoachID    string
	RangeStart string
	RangeEnd   string
}

// QueryGetCoachSchedule returns the merged feed restricted to sessions the
// coach may act on: sessions of groups the coach belongs to, plus sessions
// naming the coach directly or as substitute. The two lists overlap, so
// templates are deduplicated by ID before expansion. Calendar events are
// tenant-wide and always included.
func QueryGetCoachSchedule(ctx context.Context, input GetCoachScheduleInput, deps GetCoachScheduleDeps) ([]FeedItem, error) {
	groupIDs, err := deps.GroupStore.ListIDsByCoach(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}

	var templates []session.Session
	if len(groupIDs) > 0 {
		templates, err = deps.SessionStore.ListByGroupIDs(ctx, groupIDs)
		if err != nil {
			return nil, err
		}
	}
	assigned, err := deps.SessionStore.ListByCoachOrSubstitute(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(templates))
	for _, s := range templates {
		seen[s.ID] = true
	}
	for _, s := range assigned {
		if !seen[s.ID] {
			templates = append(templates, s)
			seen[s.ID] = true
		}
	}

	// Stores are not tenant-scoped for group/coach lookups; drop anything
	// that crossed a tenant boundary.
	kept := templates[:0]
	for _, s := range templates {
		if s.TenantID == input.TenantID {
			kept = append(kept, s)
		}
	}

	events, err := deps.EventStore.ListByTenant(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	return BuildFeed(kept, events, input.RangeStart, input.RangeEnd), nil
}
