package web

import (
	"net/http"
	"time"

	"sideline/internal/adapters/http/middleware"
	"sideline/internal/application/orchestrators"
	"sideline/internal/application/projections"
	accountDomain "sideline/internal/domain/account"
	sessionDomain "sideline/internal/domain/session"
)

// feedItemJSON is the wire shape of one schedule feed entry.
type feedItemJSON struct {
	ItemType string `json:"itemType"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Location string `json:"location,omitempty"`

	// Session-only fields.
	Kind              string `json:"kind,omitempty"`
	EventType         string `json:"eventType,omitempty"`
	GroupID           string `json:"group,omitempty"`
	CoachID           string `json:"coach,omitempty"`
	SubstituteCoachID string `json:"substituteCoach,omitempty"`

	// Competitive-session fields.
	Opponent      string `json:"opponent,omitempty"`
	LocationType  string `json:"locationType,omitempty"`
	TeamScore     *int   `json:"teamScore,omitempty"`
	OpponentScore *int   `json:"opponentScore,omitempty"`
	IsCompleted   bool   `json:"isCompleted,omitempty"`
	GameNotes     string `json:"gameNotes,omitempty"`

	// Event-only fields.
	Description string `json:"description,omitempty"`
}

func toFeedJSON(items []projections.FeedItem) []feedItemJSON {
	out := make([]feedItemJSON, 0, len(items))
	for _, item := range items {
		if item.ItemType == projections.FeedItemEvent {
			e := item.Event
			out = append(out, feedItemJSON{
				ItemType:    projections.FeedItemEvent,
				ID:          e.ID,
				Title:       e.Title,
				Date:        e.Date,
				Start:       formatInstant(item.Start),
				Location:    e.Location,
				Description: e.Description,
			})
			continue
		}
		inst := item.Session
		row := feedItemJSON{
			ItemType:          projections.FeedItemSession,
			ID:                inst.ID,
			Title:             inst.Title,
			Date:              inst.Date,
			Start:             formatInstant(inst.Start),
			End:               formatInstant(inst.End),
			Location:          inst.Location,
			Kind:              inst.Kind,
			EventType:         inst.EventType,
			GroupID:           inst.GroupID,
			CoachID:           inst.CoachID,
			SubstituteCoachID: inst.SubstituteCoachID,
		}
		if inst.Game != nil {
			row.Opponent = inst.Game.Opponent
			row.LocationType = inst.Game.LocationType
			row.IsCompleted = inst.Game.IsCompleted
			row.GameNotes = inst.Game.GameNotes
			team, opp := inst.Game.TeamScore, inst.Game.OpponentScore
			row.TeamScore = &team
			row.OpponentScore = &opp
		}
		out = append(out, row)
	}
	return out
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}

// handleSchedule handles GET /api/schedule?start=YYYY-MM-DD&end=YYYY-MM-DD.
// The feed is access-filtered by role: admins see the whole tenant, coaches
// their groups and assignments, players their groups only.
func handleSchedule(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	var (
		feed []projections.FeedItem
		err  error
	)
	switch sess.Role {
	case accountDomain.RoleAdmin:
		feed, err = projections.QueryGetScheduleFeed(r.Context(), projections.GetScheduleFeedInput{
			TenantID:   sess.TenantID,
			RangeStart: start,
			RangeEnd:   end,
		}, projections.GetScheduleFeedDeps{
			SessionStore: stores.SessionStore,
			EventStore:   stores.EventStore,
		})
	case accountDomain.RoleCoach:
		feed, err = projections.QueryGetCoachSchedule(r.Context(), projections.GetCoachScheduleInput{
			TenantID:   sess.TenantID,
			CoachID:    sess.PersonID,
			RangeStart: start,
			RangeEnd:   end,
		}, projections.GetCoachScheduleDeps{
			SessionStore: stores.SessionStore,
			GroupStore:   stores.GroupStore,
			EventStore:   stores.EventStore,
		})
	default:
		feed, err = projections.QueryGetPlayerSchedule(r.Context(), projections.GetPlayerScheduleInput{
			TenantID:   sess.TenantID,
			PlayerID:   sess.PersonID,
			RangeStart: start,
			RangeEnd:   end,
		}, projections.GetPlayerScheduleDeps{
			SessionStore: stores.SessionStore,
			GroupStore:   stores.GroupStore,
			EventStore:   stores.EventStore,
		})
	}
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedJSON(feed))
}

// sessionInput is the wire shape of a session template create/update.
type sessionInput struct {
	SeasonID          string
	Kind              string
	EventType         string
	Title             string
	Location          string
	GroupID           string
	CoachID           string
	SubstituteCoachID string
	StartAt           string // RFC 3339, special sessions
	EndAt             string
	DayOfWeek         int    // weekly sessions
	StartTime         string // HH:MM
	EndTime           string
	Opponent          string
	LocationType      string
}

func (in sessionInput) toDomain() (sessionDomain.Session, error) {
	s := sessionDomain.Session{
		SeasonID:          in.SeasonID,
		Kind:              in.Kind,
		EventType:         in.EventType,
		Title:             in.Title,
		Location:          in.Location,
		GroupID:           in.GroupID,
		CoachID:           in.CoachID,
		SubstituteCoachID: in.SubstituteCoachID,
		DayOfWeek:         in.DayOfWeek,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
	}
	if in.StartAt != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04:05", in.StartAt, time.Local)
		if err != nil {
			return s, err
		}
		s.StartAt = t
	}
	if in.EndAt != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04:05", in.EndAt, time.Local)
		if err != nil {
			return s, err
		}
		s.EndAt = t
	}
	if in.EventType != sessionDomain.TypeTraining {
		s.Game = &sessionDomain.GameDetails{
			Opponent:     in.Opponent,
			LocationType: in.LocationType,
		}
	}
	return s, nil
}

// handleSessions handles POST (create), PUT (update, ?id=) and DELETE
// (?id=) for /api/sessions. Admin only.
func handleSessions(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	deps := orchestrators.ScheduleSessionDeps{
		SessionStore: stores.SessionStore,
		GenerateID:   generateID,
	}

	switch r.Method {
	case "POST", "PUT":
		var input sessionInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		s, err := input.toDomain()
		if err != nil {
			http.Error(w, "Invalid start/end instant", http.StatusBadRequest)
			return
		}
		id := ""
		if r.Method == "PUT" {
			id = r.URL.Query().Get("id")
			if id == "" {
				http.Error(w, "Missing id", http.StatusBadRequest)
				return
			}
		}
		saved, err := orchestrators.ExecuteScheduleSession(r.Context(), actorFromSession(sess), orchestrators.ScheduleSessionInput{
			ID:       id,
			TenantID: sess.TenantID,
			Session:  s,
		}, deps)
		if err != nil {
			writeAppError(w, err)
			return
		}
		status := http.StatusCreated
		if r.Method == "PUT" {
			status = http.StatusOK
		}
		writeJSON(w, status, map[string]string{"id": saved.ID})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		if err := orchestrators.ExecuteDeleteSession(r.Context(), actorFromSession(sess), id, sess.TenantID, deps); err != nil {
			writeAppError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleDashboard handles GET /api/dashboard. Admin only.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sess.Role != accountDomain.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	result, err := projections.QueryGetDashboard(r.Context(), sess.TenantID, timeNow(), projections.GetDashboardDeps{
		SessionStore: stores.SessionStore,
		EventStore:   stores.EventStore,
		PlayerStore:  stores.PlayerStore,
		GroupStore:   stores.GroupStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"playerCount":    result.PlayerCount,
		"groupCount":     result.GroupCount,
		"completedGames": result.CompletedGames,
		"unplayedGames":  result.UnplayedGames,
		"upcomingWeek":   toFeedJSON(result.UpcomingWeek),
	})
}
