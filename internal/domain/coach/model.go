package coach

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned for a coach without a name.
var ErrEmptyName = errors.New("coach name cannot be empty")

// Coach is a tenant- and season-scoped staff entry.
type Coach struct {
	ID       string
	TenantID string
	SeasonID string
	Name     string
}

// Validate checks if the Coach has valid data.
func (c *Coach) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
