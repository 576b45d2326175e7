package projections

import (
	"context"
	"fmt"

	"sideline/internal/application/fault"
	"sideline/internal/domain/access"
	"sideline/internal/domain/account"
	"sideline/internal/domain/attendance"
	"sideline/internal/domain/group"
	"sideline/internal/domain/player"
	"sideline/internal/domain/session"
)

// SheetSessionStore defines the session store interface needed by this projection.
type SheetSessionStore interface {
	GetByIDForTenant(ctx context.Context, id string, tenantID string) (session.Session, error)
}

// SheetGroupStore defines the group store interface needed by this projection.
type SheetGroupStore interface {
	GetByID(ctx context.Context, id string) (group.Group, error)
}

// SheetAttendanceStore defines the attendance store interface needed by this projection.
type SheetAttendanceStore interface {
	ListBySessionAndDate(ctx context.Context, sessionID string, classDate string) ([]attendance.Record, error)
}

// SheetPlayerStore defines the player store interface needed by this projection.
type SheetPlayerStore interface {
	GetByID(ctx context.Context, id string) (player.Player, error)
}

// GetAttendanceSheetDeps holds dependencies for the projection.
type GetAttendanceSheetDeps struct {
	SessionStore    SheetSessionStore
	GroupStore      SheetGroupStore
	AttendanceStore SheetAttendanceStore
	PlayerStore     SheetPlayerStore
}

// GetAttendanceSheetInput identifies one session occurrence and the caller.
type GetAttendanceSheetInput struct {
	TenantID  string
	SessionID string
	ClassDate string // YYYY-MM-DD
	Role      string
	CoachID   string // caller's coach row, empty for admins
}

// SheetRow is one roster line: a player and their recorded status, if any.
type SheetRow struct {
	PlayerID   string
	PlayerName string
	Status     string // empty when nothing recorded yet
}

// AttendanceSheet is the roster of a session occurrence with recorded statuses.
type AttendanceSheet struct {
	SessionID    string
	SessionTitle string
	ClassDate    string
	GroupID      string
	GroupName    string
	Rows         []SheetRow
}

// QueryGetAttendanceSheet resolves the group roster for a (session, date)
// pair and overlays any statuses already recorded. Players without a record
// appear with an empty status so the caller can render a blank sheet.
func QueryGetAttendanceSheet(ctx context.Context, input GetAttendanceSheetInput, deps GetAttendanceSheetDeps) (AttendanceSheet, error) {
	s, err := deps.SessionStore.GetByIDForTenant(ctx, input.SessionID, input.TenantID)
	if err != nil {
		return AttendanceSheet{}, fmt.Errorf("%w: session %s", fault.ErrNotFound, input.SessionID)
	}

	g, err := deps.GroupStore.GetByID(ctx, s.GroupID)
	if err != nil {
		g = group.Group{}
	}
	if input.Role != account.RoleAdmin && !access.CoachCanAct(input.CoachID, s, g) {
		return AttendanceSheet{}, fmt.Errorf("%w: coach has no access to this session", fault.ErrForbidden)
	}

	records, err := deps.AttendanceStore.ListBySessionAndDate(ctx, s.ID, input.ClassDate)
	if err != nil {
		return AttendanceSheet{}, err
	}
	statusByPlayer := make(map[string]string, len(records))
	for _, r := range records {
		statusByPlayer[r.PlayerID] = r.Status
	}

	sheet := AttendanceSheet{
		SessionID:    s.ID,
		SessionTitle: s.Title,
		ClassDate:    input.ClassDate,
		GroupID:      g.ID,
		GroupName:    g.Name,
	}
	for _, playerID := range g.PlayerIDs {
		row := SheetRow{PlayerID: playerID, Status: statusByPlayer[playerID]}
		if p, err := deps.PlayerStore.GetByID(ctx, playerID); err == nil {
			row.PlayerName = p.Name
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}
