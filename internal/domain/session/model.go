package session

import (
	"errors"
	"strings"
	"time"
)

// Kind constants. A special session happens once at an absolute time; a weekly
// session is a template that repeats on a fixed weekday.
const (
	KindSpecial = "special"
	KindWeekly  = "weekly"
)

// Event type constants.
const (
	TypeTraining    = "training"
	TypeGame        = "game"
	TypeMeet        = "meet"
	TypeCompetition = "competition"
)

// Location type constants for competitive sessions.
const (
	LocationHome    = "home"
	LocationAway    = "away"
	LocationNeutral = "neutral"
)

// Domain errors
var (
	ErrEmptyTitle          = errors.New("session title cannot be empty")
	ErrEmptyGroup          = errors.New("session must belong to a group")
	ErrInvalidKind         = errors.New("session kind must be 'special' or 'weekly'")
	ErrInvalidEventType    = errors.New("event type must be training, game, meet or competition")
	ErrMissingInstants     = errors.New("special session requires start and end instants")
	ErrInstantOrder        = errors.New("special session must end after it starts")
	ErrInvalidDayOfWeek    = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidClockTime    = errors.New("start and end times must be in HH:MM format")
	ErrClockOrder          = errors.New("weekly session must end after it starts")
	ErrMissingGameDetails  = errors.New("non-training session requires opponent and location type")
	ErrGameDetailsTraining = errors.New("training session cannot carry game details")
	ErrInvalidLocationType = errors.New("location type must be home, away or neutral")
)

// GameDetails carries the competitive-only fields of a session.
// Present exactly when EventType is not training.
type GameDetails struct {
	Opponent      string
	LocationType  string // home, away, neutral
	TeamScore     int
	OpponentScore int
	IsCompleted   bool
	GameNotes     string
}

// Session is a persisted session template, owned by one tenant and one season.
// A weekly template is never shown directly. It is expanded into Instances
// over a date range. A special template maps to exactly one instance.
type Session struct {
	ID                string
	TenantID          string
	SeasonID          string
	Kind              string // special, weekly
	EventType         string // training, game, meet, competition
	Title             string
	Location          string
	GroupID           string
	CoachID           string // optional
	SubstituteCoachID string // optional

	// Special sessions: absolute start/end instants.
	StartAt time.Time
	EndAt   time.Time

	// Weekly sessions: weekday plus wall-clock times, no date.
	DayOfWeek int    // 0=Sunday .. 6=Saturday
	StartTime string // HH:MM
	EndTime   string // HH:MM

	// Game is nil for training sessions and required otherwise.
	Game *GameDetails
}

// IsCompetitive reports whether the session is anything other than a training.
func (s *Session) IsCompetitive() bool {
	return s.EventType != TypeTraining
}

// Validate checks the session's invariants.
// PRE: Session struct is populated
// POST: Returns nil if valid, the first violated invariant otherwise
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	if s.GroupID == "" {
		return ErrEmptyGroup
	}
	switch s.EventType {
	case TypeTraining:
		if s.Game != nil {
			return ErrGameDetailsTraining
		}
	case TypeGame, TypeMeet, TypeCompetition:
		if s.Game == nil || strings.TrimSpace(s.Game.Opponent) == "" {
			return ErrMissingGameDetails
		}
		switch s.Game.LocationType {
		case LocationHome, LocationAway, LocationNeutral:
		default:
			return ErrInvalidLocationType
		}
	default:
		return ErrInvalidEventType
	}
	switch s.Kind {
	case KindSpecial:
		if s.StartAt.IsZero() || s.EndAt.IsZero() {
			return ErrMissingInstants
		}
		if !s.EndAt.After(s.StartAt) {
			return ErrInstantOrder
		}
	case KindWeekly:
		if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
			return ErrInvalidDayOfWeek
		}
		startMin, err := minutesOfDay(s.StartTime)
		if err != nil {
			return ErrInvalidClockTime
		}
		endMin, err := minutesOfDay(s.EndTime)
		if err != nil {
			return ErrInvalidClockTime
		}
		// Overnight-spanning weekly sessions are not supported.
		if endMin <= startMin {
			return ErrClockOrder
		}
	default:
		return ErrInvalidKind
	}
	return nil
}
