package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sideline/internal/application/fault"
	"sideline/internal/domain/note"
)

// NoteStore defines the note store interface for this use case.
type NoteStore interface {
	Save(ctx context.Context, n note.SessionNote) error
}

// PlayerNoteEntry is one player remark within a note submission.
type PlayerNoteEntry struct {
	PlayerID string
	Text     string
}

// RecordNoteInput carries a coach's note about a concrete session occurrence.
type RecordNoteInput struct {
	TenantID    string
	SessionID   string
	ClassDate   string // YYYY-MM-DD
	GeneralNote string
	PlayerNotes []PlayerNoteEntry
}

// RecordNoteDeps holds dependencies for RecordNote.
type RecordNoteDeps struct {
	SessionStore AttendanceSessionStore
	NoteStore    NoteStore
	GroupStore   GroupLookupStore
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteRecordNote inserts a new SessionNote. Notes are cumulative: the
// same coach may submit again, and other coaches may add their own. Nothing
// is ever overwritten. Half-filled player rows are dropped silently.
// PRE: actor is the authoring coach (or an admin)
// POST: A new note row exists; prior notes for the occurrence are untouched
func ExecuteRecordNote(ctx context.Context, actor Actor, input RecordNoteInput, deps RecordNoteDeps) (note.SessionNote, error) {
	if _, err := time.Parse("2006-01-02", input.ClassDate); err != nil {
		return note.SessionNote{}, fmt.Errorf("%w: class date must be YYYY-MM-DD", fault.ErrValidation)
	}

	s, err := deps.SessionStore.GetByIDForTenant(ctx, input.SessionID, input.TenantID)
	if err != nil {
		return note.SessionNote{}, fmt.Errorf("%w: session %s", fault.ErrNotFound, input.SessionID)
	}

	if err := authorizeCoachAction(ctx, actor, s, deps.GroupStore); err != nil {
		return note.SessionNote{}, err
	}

	n := note.SessionNote{
		ID:          deps.GenerateID(),
		TenantID:    input.TenantID,
		SessionID:   s.ID,
		ClassDate:   input.ClassDate,
		CoachID:     actor.PersonID,
		GeneralNote: input.GeneralNote,
		CreatedAt:   deps.Now(),
	}
	if actor.PersonID == "" {
		// Admin-authored notes carry the account ID instead of a roster row.
		n.CoachID = actor.AccountID
	}
	for _, pn := range input.PlayerNotes {
		n.PlayerNotes = append(n.PlayerNotes, note.PlayerNote{
			ID:       deps.GenerateID(),
			PlayerID: pn.PlayerID,
			Text:     pn.Text,
		})
	}
	n.PrunePlayerNotes()

	if err := n.Validate(); err != nil {
		return note.SessionNote{}, fmt.Errorf("%w: %v", fault.ErrValidation, err)
	}
	if err := deps.NoteStore.Save(ctx, n); err != nil {
		return note.SessionNote{}, err
	}

	slog.Info("session_note_recorded", "session_id", s.ID, "class_date", input.ClassDate, "coach_id", n.CoachID, "player_notes", len(n.PlayerNotes))
	return n, nil
}
