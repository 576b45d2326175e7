package projections

import (
	"context"
	"time"

	"sideline/internal/domain/group"
	"sideline/internal/domain/player"
	"sideline/internal/domain/session"
)

// DashboardPlayerStore defines the player store interface needed by this projection.
type DashboardPlayerStore interface {
	ListByTenant(ctx context.Context, tenantID string) ([]player.Player, error)
}

// DashboardGroupStore defines the group store interface needed by this projection.
type DashboardGroupStore interface {
	ListByTenant(ctx context.Context, tenantID string) ([]group.Group, error)
}

// GetDashboardDeps holds dependencies for the projection.
type GetDashboardDeps struct {
	SessionStore FeedSessionStore
	EventStore   FeedEventStore
	PlayerStore  DashboardPlayerStore
	GroupStore   DashboardGroupStore
}

// DashboardResult summarizes a tenant for the admin landing page.
type DashboardResult struct {
	PlayerCount    int
	GroupCount     int
	UpcomingWeek   []FeedItem // next 7 days, sorted by start
	CompletedGames int
	UnplayedGames  int
}

// QueryGetDashboard computes tenant stats and the coming week's schedule.
// The week feed reuses the same expansion as the main schedule.
func QueryGetDashboard(ctx context.Context, tenantID string, now time.Time, deps GetDashboardDeps) (DashboardResult, error) {
	players, err := deps.PlayerStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return DashboardResult{}, err
	}
	groups, err := deps.GroupStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return DashboardResult{}, err
	}
	templates, err := deps.SessionStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return DashboardResult{}, err
	}
	events, err := deps.EventStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return DashboardResult{}, err
	}

	result := DashboardResult{
		PlayerCount: len(players),
		GroupCount:  len(groups),
	}
	for _, s := range templates {
		if !s.IsCompetitive() || s.Game == nil {
			continue
		}
		if s.Game.IsCompleted {
			result.CompletedGames++
		} else {
			result.UnplayedGames++
		}
	}

	start := now.Format(session.DateFormat)
	end := now.AddDate(0, 0, 7).Format(session.DateFormat)
	result.UpcomingWeek = BuildFeed(templates, events, start, end)
	return result, nil
}
