package web

import (
	"net/http"

	"sideline/internal/adapters/http/middleware"
	"sideline/internal/application/orchestrators"
	"sideline/internal/application/projections"
)

// handleAttendance handles GET (sheet) and POST (record batch) for
// /api/attendance.
//
// GET /api/attendance?sessionId=...&date=YYYY-MM-DD returns the group roster
// with any recorded statuses. POST records a batch of statuses for one
// occurrence; resubmission overwrites.
func handleAttendance(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case "GET":
		sheet, err := projections.QueryGetAttendanceSheet(r.Context(), projections.GetAttendanceSheetInput{
			TenantID:  sess.TenantID,
			SessionID: r.URL.Query().Get("sessionId"),
			ClassDate: r.URL.Query().Get("date"),
			Role:      sess.Role,
			CoachID:   sess.PersonID,
		}, projections.GetAttendanceSheetDeps{
			SessionStore:    stores.SessionStore,
			GroupStore:      stores.GroupStore,
			AttendanceStore: stores.AttendanceStore,
			PlayerStore:     stores.PlayerStore,
		})
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sheet)

	case "POST":
		var input struct {
			SessionID string
			Date      string
			Records   []struct {
				PlayerID string
				Status   string
			}
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		batch := orchestrators.RecordAttendanceInput{
			TenantID:  sess.TenantID,
			SessionID: input.SessionID,
			ClassDate: input.Date,
		}
		for _, rec := range input.Records {
			batch.Records = append(batch.Records, orchestrators.AttendanceEntry{
				PlayerID: rec.PlayerID,
				Status:   rec.Status,
			})
		}

		err := orchestrators.ExecuteRecordAttendance(r.Context(), actorFromSession(sess), batch, orchestrators.RecordAttendanceDeps{
			SessionStore:    stores.SessionStore,
			AttendanceStore: stores.AttendanceStore,
			GroupStore:      stores.GroupStore,
			GenerateID:      generateID,
			Now:             timeNow,
		})
		if err != nil {
			writeAppError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
