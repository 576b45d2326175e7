package web

import (
	"net/http"

	"sideline/internal/adapters/http/middleware"
	"sideline/internal/application/orchestrators"
	"sideline/internal/application/projections"
)

// noteJSON is the wire shape of one session note, with the general note
// rendered to sanitized HTML for display.
type noteJSON struct {
	ID              string           `json:"id"`
	SessionID       string           `json:"sessionId"`
	ClassDate       string           `json:"classDate"`
	CoachID         string           `json:"coachId"`
	GeneralNote     string           `json:"generalNote"`
	GeneralNoteHTML string           `json:"generalNoteHtml"`
	PlayerNotes     []playerNoteJSON `json:"playerNotes,omitempty"`
	CreatedAt       string           `json:"createdAt"`
}

type playerNoteJSON struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

// handleNotes handles GET (list for occurrence) and POST (add) for /api/notes.
func handleNotes(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case "GET":
		notes, err := projections.QueryGetSessionNotes(r.Context(), projections.GetSessionNotesInput{
			TenantID:  sess.TenantID,
			SessionID: r.URL.Query().Get("sessionId"),
			ClassDate: r.URL.Query().Get("date"),
			Role:      sess.Role,
			CoachID:   sess.PersonID,
		}, projections.GetSessionNotesDeps{
			SessionStore: stores.SessionStore,
			GroupStore:   stores.GroupStore,
			NoteStore:    stores.NoteStore,
		})
		if err != nil {
			writeAppError(w, err)
			return
		}

		out := make([]noteJSON, 0, len(notes))
		for _, n := range notes {
			row := noteJSON{
				ID:              n.ID,
				SessionID:       n.SessionID,
				ClassDate:       n.ClassDate,
				CoachID:         n.CoachID,
				GeneralNote:     n.GeneralNote,
				GeneralNoteHTML: renderMarkdown(n.GeneralNote),
				CreatedAt:       n.CreatedAt.Format("2006-01-02T15:04:05"),
			}
			for _, pn := range n.PlayerNotes {
				row.PlayerNotes = append(row.PlayerNotes, playerNoteJSON{
					PlayerID: pn.PlayerID,
					Text:     pn.Text,
				})
			}
			out = append(out, row)
		}
		writeJSON(w, http.StatusOK, out)

	case "POST":
		var input struct {
			SessionID   string
			Date        string
			GeneralNote string
			PlayerNotes []struct {
				PlayerID string
				Text     string
			}
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		noteInput := orchestrators.RecordNoteInput{
			TenantID:    sess.TenantID,
			SessionID:   input.SessionID,
			ClassDate:   input.Date,
			GeneralNote: input.GeneralNote,
		}
		for _, pn := range input.PlayerNotes {
			noteInput.PlayerNotes = append(noteInput.PlayerNotes, orchestrators.PlayerNoteEntry{
				PlayerID: pn.PlayerID,
				Text:     pn.Text,
			})
		}

		n, err := orchestrators.ExecuteRecordNote(r.Context(), actorFromSession(sess), noteInput, orchestrators.RecordNoteDeps{
			SessionStore: stores.SessionStore,
			NoteStore:    stores.NoteStore,
			GroupStore:   stores.GroupStore,
			GenerateID:   generateID,
			Now:          timeNow,
		})
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": n.ID})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleScores handles POST /api/scores for final game results.
func handleScores(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SessionID     string
		TeamScore     int
		OpponentScore int
		GameNotes     string
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteRecordGameScore(r.Context(), actorFromSession(sess), orchestrators.RecordGameScoreInput{
		TenantID:      sess.TenantID,
		SessionID:     input.SessionID,
		TeamScore:     input.TeamScore,
		OpponentScore: input.OpponentScore,
		GameNotes:     input.GameNotes,
	}, orchestrators.RecordGameScoreDeps{
		SessionStore: stores.SessionStore,
		GroupStore:   stores.GroupStore,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
