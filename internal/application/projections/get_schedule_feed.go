package projections

import (
	"context"
	"sort"
	"time"

	"sideline/internal/domain/event"
	"sideline/internal/domain/session"
)

// Feed item type constants.
const (
	FeedItemSession = "session"
	FeedItemEvent   = "event"
)

// FeedItem is one entry in a merged schedule feed: either a concrete session
// occurrence or a one-off calendar event.
type FeedItem struct {
	ItemType string // session, event
	Session  session.Instance
	Event    event.Event
	Start    time.Time
}

// FeedSessionStore defines the session store interface needed by this projection.
type FeedSessionStore interface {
	ListByTenant(ctx context.Context, tenantID string) ([]session.Session, error)
}

// FeedEventStore defines the event store interface needed by this projection.
type FeedEventStore interface {
	ListByTenant(ctx context.Context, tenantID string) ([]event.Event, error)
}

// GetScheduleFeedDeps holds dependencies for the projection.
type GetScheduleFeedDeps struct {
	SessionStore FeedSessionStore
	EventStore   FeedEventStore
}

// GetScheduleFeedInput carries the tenant and requested date range.
type GetScheduleFeedInput struct {
	TenantID   string
	RangeStart string // YYYY-MM-DD
	RangeEnd   string // YYYY-MM-DD
}

// QueryGetScheduleFeed returns every session occurrence and calendar event for
// the tenant in the requested range, sorted by start time. Admin view: no
// access filtering.
func QueryGetScheduleFeed(ctx context.Context, input GetScheduleFeedInput, deps GetScheduleFeedDeps) ([]FeedItem, error) {
	templates, err := deps.SessionStore.ListByTenant(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	events, err := deps.EventStore.ListByTenant(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	return BuildFeed(templates, events, input.RangeStart, input.RangeEnd), nil
}

// BuildFeed merges session templates and calendar events into one feed for
// [rangeStart, rangeEnd]. Specials whose start date falls in the range map to
// one item each; weekly templates are expanded into one item per occurrence;
// events with a date in the range are appended. The concatenation
// special, weekly, event is then stably sorted ascending by start time.
//
// A missing or unparseable range date disables expansion: the raw templates
// come back as items in stored order, which callers render as-is. This is a
// fallback, not an error.
func BuildFeed(templates []session.Session, events []event.Event, rangeStart, rangeEnd string) []FeedItem {
	start, errStart := time.ParseInLocation(session.DateFormat, rangeStart, time.Local)
	end, errEnd := time.ParseInLocation(session.DateFormat, rangeEnd, time.Local)
	if errStart != nil || errEnd != nil {
		return rawTemplateFeed(templates, events)
	}

	var items []FeedItem
	for _, s := range templates {
		if s.Kind != session.KindSpecial {
			continue
		}
		if !session.InDateRange(s, start, end) {
			continue
		}
		inst := session.SpecialInstance(s)
		items = append(items, FeedItem{ItemType: FeedItemSession, Session: inst, Start: inst.Start})
	}
	for _, s := range templates {
		if s.Kind != session.KindWeekly {
			continue
		}
		for _, inst := range session.Expand(s, start, end) {
			items = append(items, FeedItem{ItemType: FeedItemSession, Session: inst, Start: inst.Start})
		}
	}
	for _, e := range events {
		d, err := time.ParseInLocation(session.DateFormat, e.Date, time.Local)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		items = append(items, FeedItem{ItemType: FeedItemEvent, Event: e, Start: e.StartInstant()})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})
	return items
}

// rawTemplateFeed returns the templates without expansion, in stored order.
// Specials keep their absolute instants; weekly templates carry zero instants
// and no occurrence date.
func rawTemplateFeed(templates []session.Session, events []event.Event) []FeedItem {
	var items []FeedItem
	for _, s := range templates {
		if s.Kind == session.KindSpecial {
			inst := session.SpecialInstance(s)
			items = append(items, FeedItem{ItemType: FeedItemSession, Session: inst, Start: inst.Start})
			continue
		}
		items = append(items, FeedItem{ItemType: FeedItemSession, Session: session.Instance{Session: s}})
	}
	for _, e := range events {
		items = append(items, FeedItem{ItemType: FeedItemEvent, Event: e, Start: e.StartInstant()})
	}
	return items
}
