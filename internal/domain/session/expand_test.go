package session_test

import (
	"testing"
	"time"

	"sideline/internal/domain/session"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// TestExpand_WeeklyCardinality verifies that a four-week window containing
// four Tuesdays yields exactly four instances, 7 days apart, at the
// template's wall-clock times.
func TestExpand_WeeklyCardinality(t *testing.T) {
	s := validWeeklyTraining() // Tuesday 17:00-18:30

	// 2024-01-01 is a Monday, 2024-01-29 is a Monday.
	instances := session.Expand(s, date(2024, time.January, 1), date(2024, time.January, 29))

	wantDates := []string{"2024-01-02", "2024-01-09", "2024-01-16", "2024-01-23"}
	if len(instances) != len(wantDates) {
		t.Fatalf("Expand returned %d instances, want %d", len(instances), len(wantDates))
	}
	for i, inst := range instances {
		if inst.Date != wantDates[i] {
			t.Errorf("instance[%d].Date = %s, want %s", i, inst.Date, wantDates[i])
		}
		if inst.Start.Weekday() != time.Tuesday {
			t.Errorf("instance[%d] falls on %s, want Tuesday", i, inst.Start.Weekday())
		}
		if inst.Start.Hour() != 17 || inst.Start.Minute() != 0 {
			t.Errorf("instance[%d].Start = %v, want 17:00", i, inst.Start)
		}
		if inst.End.Hour() != 18 || inst.End.Minute() != 30 {
			t.Errorf("instance[%d].End = %v, want 18:30", i, inst.End)
		}
		if i > 0 {
			if got := inst.Start.Sub(instances[i-1].Start); got != 7*24*time.Hour {
				t.Errorf("gap between instance %d and %d = %v, want 168h", i-1, i, got)
			}
		}
	}
}

// TestExpand_RangeStartOnMatchingDay verifies the first instance can land on
// rangeStart itself.
func TestExpand_RangeStartOnMatchingDay(t *testing.T) {
	s := validWeeklyTraining()
	s.DayOfWeek = 1 // Monday

	instances := session.Expand(s, date(2024, time.January, 1), date(2024, time.January, 1))
	if len(instances) != 1 {
		t.Fatalf("Expand returned %d instances, want 1", len(instances))
	}
	if instances[0].Date != "2024-01-01" {
		t.Errorf("instance date = %s, want 2024-01-01", instances[0].Date)
	}
}

// TestExpand_Degenerate verifies out-of-domain inputs produce an empty
// result instead of an error or an unbounded loop.
func TestExpand_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*session.Session)
		start  time.Time
		end    time.Time
	}{
		{
			name:   "inverted range",
			mutate: func(*session.Session) {},
			start:  date(2024, time.January, 29),
			end:    date(2024, time.January, 1),
		},
		{
			name:   "day of week out of range",
			mutate: func(s *session.Session) { s.DayOfWeek = 9 },
			start:  date(2024, time.January, 1),
			end:    date(2024, time.January, 29),
		},
		{
			name:   "unparseable start time",
			mutate: func(s *session.Session) { s.StartTime = "half five" },
			start:  date(2024, time.January, 1),
			end:    date(2024, time.January, 29),
		},
		{
			name:   "unparseable end time",
			mutate: func(s *session.Session) { s.EndTime = "25:99" },
			start:  date(2024, time.January, 1),
			end:    date(2024, time.January, 29),
		},
		{
			name:   "special template never expands",
			mutate: func(s *session.Session) { s.Kind = session.KindSpecial },
			start:  date(2024, time.January, 1),
			end:    date(2024, time.January, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validWeeklyTraining()
			tt.mutate(&s)
			if got := session.Expand(s, tt.start, tt.end); len(got) != 0 {
				t.Errorf("Expand returned %d instances, want 0", len(got))
			}
		})
	}
}

// TestExpand_SundayZero verifies the Sunday=0 weekday convention.
func TestExpand_SundayZero(t *testing.T) {
	s := validWeeklyTraining()
	s.DayOfWeek = 0

	// 2024-01-07 is the only Sunday in the window.
	instances := session.Expand(s, date(2024, time.January, 1), date(2024, time.January, 13))
	if len(instances) != 1 {
		t.Fatalf("Expand returned %d instances, want 1", len(instances))
	}
	if instances[0].Date != "2024-01-07" {
		t.Errorf("instance date = %s, want 2024-01-07", instances[0].Date)
	}
}

// TestExpand_ScoredGameSharedAcrossInstances verifies that a result recorded
// on a weekly game template shows up on every expanded occurrence, since the
// score lives on the template itself.
func TestExpand_ScoredGameSharedAcrossInstances(t *testing.T) {
	s := validWeeklyTraining()
	s.EventType = session.TypeGame
	s.Game = &session.GameDetails{
		Opponent:      "Rovers",
		LocationType:  session.LocationAway,
		TeamScore:     3,
		OpponentScore: 1,
		IsCompleted:   true,
		GameNotes:     "Tight first half",
	}

	instances := session.Expand(s, date(2024, time.January, 1), date(2024, time.January, 29))
	if len(instances) != 4 {
		t.Fatalf("Expand returned %d instances, want 4", len(instances))
	}
	for i, inst := range instances {
		if inst.Game == nil {
			t.Fatalf("instance[%d].Game is nil, want shared game details", i)
		}
		if !inst.Game.IsCompleted {
			t.Errorf("instance[%d] not marked completed", i)
		}
		if inst.Game.TeamScore != 3 || inst.Game.OpponentScore != 1 {
			t.Errorf("instance[%d] score = %d-%d, want 3-1",
				i, inst.Game.TeamScore, inst.Game.OpponentScore)
		}
	}
}

// TestSpecialInstance verifies the one-instance mapping for special templates.
func TestSpecialInstance(t *testing.T) {
	s := validSpecialGame()
	inst := session.SpecialInstance(s)
	if inst.Date != "2024-03-09" {
		t.Errorf("instance date = %s, want 2024-03-09", inst.Date)
	}
	if !inst.Start.Equal(s.StartAt) || !inst.End.Equal(s.EndAt) {
		t.Errorf("instance times = %v-%v, want %v-%v", inst.Start, inst.End, s.StartAt, s.EndAt)
	}
}

// TestInDateRange verifies inclusive date-granularity membership for specials.
func TestInDateRange(t *testing.T) {
	s := validSpecialGame() // starts 2024-03-09 10:00

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside", date(2024, time.March, 1), date(2024, time.March, 31), true},
		{"on range start", date(2024, time.March, 9), date(2024, time.March, 31), true},
		{"on range end", date(2024, time.March, 1), date(2024, time.March, 9), true},
		{"before", date(2024, time.March, 10), date(2024, time.March, 31), false},
		{"after", date(2024, time.February, 1), date(2024, time.February, 29), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := session.InDateRange(s, tt.start, tt.end); got != tt.want {
				t.Errorf("InDateRange = %v, want %v", got, tt.want)
			}
		})
	}
}
