package projections

import (
	"context"

	"sideline/internal/domain/session"
)

// PlayerScheduleGroupStore defines the group store interface needed by this projection.
type PlayerScheduleGroupStore interface {
	ListIDsByPlayer(ctx context.Context, playerID string) ([]string, error)
}

// GetPlayerScheduleDeps holds dependencies for the projection.
type GetPlayerScheduleDeps struct {
	SessionStore CoachScheduleSessionStore
	GroupStore   PlayerScheduleGroupStore
	EventStore   FeedEventStore
}

// GetPlayerScheduleInput carries the player and requested date range.
type GetPlayerScheduleInput struct {
	TenantID   string
	PlayerID   string
	RangeStart string
	RangeEnd   string
}

// QueryGetPlayerSchedule returns the merged feed restricted to sessions of
// groups the player belongs to. Players have no direct-assignment path;
// group membership is the only grant.
func QueryGetPlayerSchedule(ctx context.Context, input GetPlayerScheduleInput, deps GetPlayerScheduleDeps) ([]FeedItem, error) {
	groupIDs, err := deps.GroupStore.ListIDsByPlayer(ctx, input.PlayerID)
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
