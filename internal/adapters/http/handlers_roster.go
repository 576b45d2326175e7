package web

import (
	"net/http"
	"time"

	"sideline/internal/adapters/http/middleware"
	coachDomain "sideline/internal/domain/coach"
	groupDomain "sideline/internal/domain/group"
	playerDomain "sideline/internal/domain/player"
	seasonDomain "sideline/internal/domain/season"
)

// requireAdminSession checks auth and role for the roster management
// endpoints. Returns the session and false when the response was written.
func requireAdminSession(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleSeasons handles GET (list), POST (create) and DELETE (?id=) for
// /api/seasons. Admin only.
func handleSeasons(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireAdminSession(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		seasons, err := stores.SeasonStore.ListByTenant(r.Context(), sess.TenantID)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, seasons)

	case "POST":
		var input struct {
			Name      string
			StartDate string // YYYY-MM-DD
			EndDate   string
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		start, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
		if err != nil {
			http.Error(w, "StartDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
		if err != nil {
			http.Error(w, "EndDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		s := seasonDomain.Season{
			ID:        generateID(),
			TenantID:  sess.TenantID,
			Name:      input.Name,
			StartDate: start,
			EndDate:   end,
		}
		if err := s.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.SeasonStore.Save(r.Context(), s); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": s.ID})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		if err := stores.SeasonStore.Delete(r.Context(), id, sess.TenantID); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handlePlayers handles GET (list, ?season= optional), POST (create) and
// DELETE (?id=) for /api/players. Admin only.
func handlePlayers(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireAdminSession(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		seasonID := r.URL.Query().Get("season")
		var (
			players []playerDomain.Player
			err     error
		)
		if seasonID != "" {
			players, err = stores.PlayerStore.ListByTenantAndSeason(r.Context(), sess.TenantID, seasonID)
		} else {
			players, err = stores.PlayerStore.ListByTenant(r.Context(), sess.TenantID)
		}
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)

	case "POST":
		var input struct {
			SeasonID string
			Name     string
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		p := playerDomain.Player{
			ID:       generateID(),
			TenantID: sess.TenantID,
			SeasonID: input.SeasonID,
			Name:     input.Name,
		}
		if err := p.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.PlayerStore.Save(r.Context(), p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": p.ID})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		if err := stores.PlayerStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCoaches handles GET (list), POST (create) and DELETE (?id=) for
// /api/coaches. Admin only.
func handleCoaches(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireAdminSession(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		coaches, err := stores.CoachStore.ListByTenant(r.Context(), sess.TenantID)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, coaches)

	case "POST":
		var input struct {
			SeasonID string
			Name     string
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		c := coachDomain.Coach{
			ID:       generateID(),
			TenantID: sess.TenantID,
			SeasonID: input.SeasonID,
			Name:     input.Name,
		}
		if err := c.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.CoachStore.Save(r.Context(), c); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": c.ID})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		if err := stores.CoachStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleGroups handles GET (list), POST (create or replace, membership
// lists included) and DELETE (?id=) for /api/groups. Admin only.
func handleGroups(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireAdminSession(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		groups, err := stores.GroupStore.ListByTenant(r.Context(), sess.TenantID)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, groups)

	case "POST", "PUT":
		var input struct {
			SeasonID  string
			Name      string
			CoachIDs  []string
			PlayerIDs []string
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		g := groupDomain.Group{
			ID:        r.URL.Query().Get("id"),
			TenantID:  sess.TenantID,
			SeasonID:  input.SeasonID,
			Name:      input.Name,
			CoachIDs:  input.CoachIDs,
			PlayerIDs: input.PlayerIDs,
		}
		status := http.StatusOK
		if g.ID == "" {
			g.ID = generateID()
			status = http.StatusCreated
		}
		if err := g.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.GroupStore.Save(r.Context(), g); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, status, map[string]string{"id": g.ID})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		if err := stores.GroupStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
