package group

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName   = errors.New("group name cannot be empty")
	ErrEmptySeason = errors.New("group must belong to a season")
)

// Group is a tenant-scoped squad of players with one or more coaches.
// Access to a session flows through its group's membership lists.
type Group struct {
	ID        string
	TenantID  string
	SeasonID  string
	Name      string
	CoachIDs  []string
	PlayerIDs []string
}

// Validate checks if the Group has valid data.
// POST: Returns nil if valid, error otherwise
func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if g.SeasonID == "" {
		return ErrEmptySeason
	}
	return nil
}

// HasCoach reports whether the coach is in the group's coaches list.
func (g *Group) HasCoach(coachID string) bool {
	for _, id := range g.CoachIDs {
		if id == coachID {
			return true
		}
	}
	return false
}

// HasPlayer reports whether the player is in the group's players list.
func (g *Group) HasPlayer(playerID string) bool {
	for _, id := range g.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
