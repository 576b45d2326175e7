package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"sideline/internal/adapters/http/middleware"
	"sideline/internal/application/fault"
	"sideline/internal/application/orchestrators"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// writeAppError maps application error sentinels to HTTP status codes.
// Anything unmatched is treated as internal.
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fault.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, fault.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, fault.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		internalError(w, err)
	}
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_response", "error", err.Error())
	}
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// renderMarkdown converts markdown to sanitized HTML.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// actorFromSession converts an HTTP session into an application-layer actor.
func actorFromSession(sess middleware.Session) orchestrators.Actor {
	return orchestrators.Actor{
		Role:      sess.Role,
		AccountID: sess.AccountID,
		PersonID:  sess.PersonID,
	}
}

// registerRoutes attaches all handlers to the mux. Authentication is enforced
// inside each handler so unauthenticated requests get a JSON-friendly 401.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	mux.HandleFunc("/api/schedule", handleSchedule)
	mux.HandleFunc("/api/sessions", handleSessions)
	mux.HandleFunc("/api/attendance", handleAttendance)
	mux.HandleFunc("/api/notes", handleNotes)
	mux.HandleFunc("/api/scores", handleScores)
	mux.HandleFunc("/api/events", handleEvents)
	mux.HandleFunc("/api/accounts", handleAccounts)
	mux.HandleFunc("/api/dashboard", handleDashboard)

	mux.HandleFunc("/api/seasons", handleSeasons)
	mux.HandleFunc("/api/players", handlePlayers)
	mux.HandleFunc("/api/coaches", handleCoaches)
	mux.HandleFunc("/api/groups", handleGroups)
}

// handleLogin handles POST /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Email    string
		Password string
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	a, err := orchestrators.ExecuteLogin(r.Context(), input.Email, input.Password, orchestrators.LoginDeps{
		AccountStore: stores.AccountStore,
	})
	if err != nil {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := sessions.Create(a)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]string{
		"accountId": a.ID,
		"role":      a.Role,
		"tenantId":  a.TenantID,
	})
}

// handleLogout handles POST /logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleAccounts handles POST /api/accounts (admin creates coach/player logins).
func handleAccounts(w http.ResponseWriter, r *http.Request) {
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
		Email    string
		Password string
		Role     string
		PersonID string
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	a, err := orchestrators.ExecuteCreateAccount(r.Context(), actorFromSession(sess), orchestrators.CreateAccountInput{
		TenantID: sess.TenantID,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		PersonID: input.PersonID,
	}, orchestrators.CreateAccountDeps{
		AccountStore: stores.AccountStore,
		GenerateID:   generateID,
		Now:          timeNow,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":    a.ID,
		"email": a.Email,
		"role":  a.Role,
	})
}
