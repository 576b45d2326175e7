package note

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptySession = errors.New("note must be associated with a session")
	ErrEmptyCoach   = errors.New("note must have an authoring coach")
	ErrEmptyDate    = errors.New("note class date cannot be empty")
	ErrEmptyContent = errors.New("note needs a general note or at least one player note")
)

// PlayerNote is a free-text remark about one player within a session note.
type PlayerNote struct {
	ID       string
	PlayerID string
	Text     string
}

// SessionNote is a coach's note about one concrete session occurrence.
// Notes are cumulative: several coaches may write about the same
// (session, date), and one coach may write more than once. There is no
// uniqueness constraint, only inserts.
type SessionNote struct {
	ID          string
	TenantID    string
	SessionID   string
	ClassDate   string // YYYY-MM-DD
	CoachID     string
	GeneralNote string
	PlayerNotes []PlayerNote
	CreatedAt   time.Time
}

// PrunePlayerNotes drops sub-notes with a missing player or blank text.
// The source of truth is what coaches actually wrote down; half-filled form
// rows are discarded silently rather than rejected.
func (n *SessionNote) PrunePlayerNotes() {
	kept := n.PlayerNotes[:0]
	for _, pn := range n.PlayerNotes {
		if pn.PlayerID == "" || strings.TrimSpace(pn.Text) == "" {
			continue
		}
		kept = append(kept, pn)
	}
	n.PlayerNotes = kept
}

// Validate checks if the SessionNote has valid data.
// PRE: PrunePlayerNotes has been called
// POST: Returns nil if valid, error otherwise
func (n *SessionNote) Validate() error {
	if n.SessionID == "" {
		return ErrEmptySession
	}
	if n.CoachID == "" {
		return ErrEmptyCoach
	}
	if n.ClassDate == "" {
		return ErrEmptyDate
	}
	if strings.TrimSpace(n.GeneralNote) == "" && len(n.PlayerNotes) == 0 {
		return ErrEmptyContent
	}
	return nil
}
