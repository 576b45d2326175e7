package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"sideline/internal/application/fault"
	"sideline/internal/domain/account"
	"sideline/internal/domain/attendance"
	"sideline/internal/domain/group"
	"sideline/internal/domain/session"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

// mockSessionStore implements the session store interfaces for testing.
type mockSessionStore struct {
	sessions map[string]session.Session
	deleted  []string
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]session.Session)}
}

func (m *mockSessionStore) GetByIDForTenant(_ context.Context, id string, tenantID string) (session.Session, error) {
	s, ok := m.sessions[id]
	if !ok || s.TenantID != tenantID {
		return session.Session{}, errors.New("not found")
	}
	return s, nil
}

func (m *mockSessionStore) Save(_ context.Context, s session.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionStore) Delete(_ context.Context, id string, tenantID string) error {
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// mockAttendanceStore keys records by (session, player, date) like the
// real store's unique index.
type mockAttendanceStore struct {
	records map[string]attendance.Record
	upserts int
}

func newMockAttendanceStore() *mockAttendanceStore {
	return &mockAttendanceStore{records: make(map[string]attendance.Record)}
}

func (m *mockAttendanceStore) Upsert(_ context.Context, r attendance.Record) error {
	m.upserts++
	key := r.SessionID + "|" + r.PlayerID + "|" + r.ClassDate
	if existing, ok := m.records[key]; ok {
		existing.Status = r.Status
		existing.RecordedAt = r.RecordedAt
		m.records[key] = existing
		return nil
	}
	m.records[key] = r
	return nil
}

// mockGroupStore implements GroupLookupStore for testing.
type mockGroupStore struct {
	groups map[string]group.Group
}

func newMockGroupStore() *mockGroupStore {
	return &mockGroupStore{groups: make(map[string]group.Group)}
}

func (m *mockGroupStore) GetByID(_ context.Context, id string) (group.Group, error) {
	g, ok := m.groups[id]
	if !ok {
		return group.Group{}, errors.New("not found")
	}
	return g, nil
}

var (
	adminActor = Actor{Role: account.RoleAdmin, AccountID: "admin-1"}
	coachActor = Actor{Role: account.RoleCoach, AccountID: "acct-c1", PersonID: "coach-001"}
)

func storedWeeklyTraining() session.Session {
	return session.Session{
		ID:        "sess-1",
		TenantID:  "admin-1",
		SeasonID:  "season-1",
		Kind:      session.KindWeekly,
		EventType: session.TypeTraining,
		Title:     "U14 Training",
		GroupID:   "group-1",
		DayOfWeek: 2,
		StartTime: "17:00",
		EndTime:   "18:30",
	}
}

func attendanceDeps(sessions *mockSessionStore, records *mockAttendanceStore, groups *mockGroupStore) RecordAttendanceDeps {
	return RecordAttendanceDeps{
		SessionStore:    sessions,
		AttendanceStore: records,
		GroupStore:      groups,
		GenerateID:      fixedID,
		Now:             fixedNow,
	}
}

// TestExecuteRecordAttendance_Valid tests recording a batch for a group coach.
func TestExecuteRecordAttendance_Valid(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()
	records := newMockAttendanceStore()
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-001"}}

	err := ExecuteRecordAttendance(context.Background(), coachActor, RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records: []AttendanceEntry{
			{PlayerID: "player-1", Status: attendance.StatusPresent},
			{PlayerID: "player-2", Status: attendance.StatusAbsent},
		},
	}, attendanceDeps(sessions, records, groups))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records.records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records.records))
	}
	r, ok := records.records["sess-1|player-1|2026-03-03"]
	if !ok {
		t.Fatal("expected record for player-1 on 2026-03-03")
	}
	if r.Status != attendance.StatusPresent {
		t.Errorf("expected status=present, got %s", r.Status)
	}
}

// TestExecuteRecordAttendance_ResubmitOverwrites tests that submitting the
// same (session, player, date) again replaces the status instead of adding
// a second record.
func TestExecuteRecordAttendance_ResubmitOverwrites(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()
	records := newMockAttendanceStore()
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-001"}}
	deps := attendanceDeps(sessions, records, groups)

	first := RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}
	if err := ExecuteRecordAttendance(context.Background(), coachActor, first, deps); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second := first
	second.Records = []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusExcused}}
	if err := ExecuteRecordAttendance(context.Background(), coachActor, second, deps); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if len(records.records) != 1 {
		t.Fatalf("expected 1 record after resubmit, got %d", len(records.records))
	}
	r := records.records["sess-1|player-1|2026-03-03"]
	if r.Status != attendance.StatusExcused {
		t.Errorf("expected status=excused after resubmit, got %s", r.Status)
	}
}

// TestExecuteRecordAttendance_Idempotent tests that the identical batch twice
// leaves the same final state.
func TestExecuteRecordAttendance_Idempotent(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()
	records := newMockAttendanceStore()
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-001"}}
	deps := attendanceDeps(sessions, records, groups)

	input := RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}
	for i := 0; i < 2; i++ {
		if err := ExecuteRecordAttendance(context.Background(), coachActor, input, deps); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}
	if len(records.records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records.records))
	}
	if records.records["sess-1|player-1|2026-03-03"].Status != attendance.StatusPresent {
		t.Error("expected status unchanged after identical resubmit")
	}
}

// TestExecuteRecordAttendance_BadDate tests that a malformed date is rejected
// before any write.
func TestExecuteRecordAttendance_BadDate(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()
	records := newMockAttendanceStore()

	err := ExecuteRecordAttendance(context.Background(), adminActor, RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "03/03/2026",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}, attendanceDeps(sessions, records, newMockGroupStore()))
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if records.upserts != 0 {
		t.Error("expected no writes for malformed date")
	}
}

// TestExecuteRecordAttendance_UnknownSession tests the not-found path.
func TestExecuteRecordAttendance_UnknownSession(t *testing.T) {
	err := ExecuteRecordAttendance(context.Background(), adminActor, RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "nonexistent",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}, attendanceDeps(newMockSessionStore(), newMockAttendanceStore(), newMockGroupStore()))
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

// TestExecuteRecordAttendance_WrongTenant tests that a session under another
// tenant reads as not found rather than forbidden.
func TestExecuteRecordAttendance_WrongTenant(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()

	err := ExecuteRecordAttendance(context.Background(), adminActor, RecordAttendanceInput{
		TenantID:  "other-tenant",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}, attendanceDeps(sessions, newMockAttendanceStore(), newMockGroupStore()))
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

// TestExecuteRecordAttendance_UnassignedCoach tests that a coach with no
// grant on the session is forbidden.
func TestExecuteRecordAttendance_UnassignedCoach(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-999"}}

	err := ExecuteRecordAttendance(context.Background(), coachActor, RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}, attendanceDeps(sessions, newMockAttendanceStore(), groups))
	if !errors.Is(err, fault.ErrForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}

// TestExecuteRecordAttendance_SubstituteCoach tests that a substitute
// assignment on the session grants access without group membership.
func TestExecuteRecordAttendance_SubstituteCoach(t *testing.T) {
	s := storedWeeklyTraining()
	s.SubstituteCoachID = "coach-001"
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = s
	groups := newMockGroupStore()
	groups.groups["group-1"] = group.Group{ID: "group-1", CoachIDs: []string{"coach-999"}}

	err := ExecuteRecordAttendance(context.Background(), coachActor, RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: attendance.StatusPresent}},
	}, attendanceDeps(sessions, newMockAttendanceStore(), groups))
	if err != nil {
		t.Errorf("expected substitute coach to be allowed, got %v", err)
	}
}

// TestExecuteRecordAttendance_BadStatus tests that an unknown status value
// is rejected.
func TestExecuteRecordAttendance_BadStatus(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["sess-1"] = storedWeeklyTraining()

	err := ExecuteRecordAttendance(context.Background(), adminActor, RecordAttendanceInput{
		TenantID:  "admin-1",
		SessionID: "sess-1",
		ClassDate: "2026-03-03",
		Records:   []AttendanceEntry{{PlayerID: "player-1", Status: "late"}},
	}, attendanceDeps(sessions, newMockAttendanceStore(), newMockGroupStore()))
	if !errors.Is(err, fault.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
