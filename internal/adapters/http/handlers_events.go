package web

import (
	"net/http"

	"sideline/internal/adapters/http/middleware"
	"sideline/internal/application/orchestrators"
	eventDomain "sideline/internal/domain/event"
)

// handleEvents handles GET (list), POST (create), PUT (?id=) and DELETE
// (?id=) for /api/events. Reads are open to any authenticated tenant member;
// writes are admin only.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	deps := orchestrators.CreateEventDeps{
		EventStore: stores.EventStore,
		GenerateID: generateID,
	}

	switch r.Method {
	case "GET":
		start := r.URL.Query().Get("start")
		end := r.URL.Query().Get("end")
		var (
			events []eventDomain.Event
			err    error
		)
		if start != "" && end != "" {
			events, err = stores.EventStore.ListByTenantAndDateRange(r.Context(), sess.TenantID, start, end)
		} else {
			events, err = stores.EventStore.ListByTenant(r.Context(), sess.TenantID)
		}
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, events)

	case "POST", "PUT":
		var input struct {
			SeasonID    string
			Title       string
			Date        string
			Time        string
			Location    string
			Description string
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
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
		e, err := orchestrators.ExecuteCreateEvent(r.Context(), actorFromSession(sess), orchestrators.CreateEventInput{
			ID:       id,
			TenantID: sess.TenantID,
			Event: eventDomain.Event{
				SeasonID:    input.SeasonID,
				Title:       input.Title,
				Date:        input.Date,
				Time:        input.Time,
				Location:    input.Location,
				Description: input.Description,
			},
		}, deps)
		if err != nil {
			writeAppError(w, err)
			return
		}
		status := http.StatusCreated
		if r.Method == "PUT" {
			status = http.StatusOK
		}
		writeJSON(w, status, map[string]string{"id": e.ID})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		if err := orchestrators.ExecuteDeleteEvent(r.Context(), actorFromSession(sess), id, sess.TenantID, deps); err != nil {
			writeAppError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
