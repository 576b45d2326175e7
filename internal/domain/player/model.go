package player

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned for a player without a name.
var ErrEmptyName = errors.New("player name cannot be empty")

// Player is a tenant- and season-scoped roster entry.
type Player struct {
	ID       string
	TenantID string
	SeasonID string
	Name     string
}

// Validate checks if the Player has valid data.
func (p *Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
