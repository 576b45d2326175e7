package projections

import (
	"context"
	"fmt"

	"sideline/internal/application/fault"
	"sideline/internal/domain/access"
	"sideline/internal/domain/account"
	"sideline/internal/domain/group"
	"sideline/internal/domain/note"
)

// NotesNoteStore defines the note store interface needed by this projection.
type NotesNoteStore interface {
	ListBySessionAndDate(ctx context.Context, sessionID string, classDate string) ([]note.SessionNote, error)
}

// GetSessionNotesDeps holds dependencies for the projection.
type GetSessionNotesDeps struct {
	SessionStore SheetSessionStore
	GroupStore   SheetGroupStore
	NoteStore    NotesNoteStore
}

// GetSessionNotesInput identifies one session occurrence and the caller.
type GetSessionNotesInput struct {
	TenantID  string
	SessionID string
	ClassDate string // YYYY-MM-DD
	Role      string
	CoachID   string
}

// QueryGetSessionNotes returns every note written about a (session, date)
// pair, oldest first. Visible to admins and to coaches with access to the
// session; players never see coaching notes.
func QueryGetSessionNotes(ctx context.Context, input GetSessionNotesInput, deps GetSessionNotesDeps) ([]note.SessionNote, error) {
	s, err := deps.SessionStore.GetByIDForTenant(ctx, input.SessionID, input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: session %s", fault.ErrNotFound, input.SessionID)
	}

	if input.Role != account.RoleAdmin {
		if input.Role != account.RoleCoach {
			return nil, fmt.Errorf("%w: notes are coach-only", fault.ErrForbidden)
		}
		g, err := deps.GroupStore.GetByID(ctx, s.GroupID)
		if err != nil {
			g = group.Group{}
		}
		if !access.CoachCanAct(input.CoachID, s, g) {
			return nil, fmt.Errorf("%w: coach has no access to this session", fault.ErrForbidden)
		}
	}

	return deps.NoteStore.ListBySessionAndDate(ctx, s.ID, input.ClassDate)
}
