package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/socialchaos/internal/common/uuid UUID

// UUID generates the identifiers handed out for players and avatar seeds
type UUID interface {
	NewUUID() string
}

// DefaultUUID hands out random v4 UUIDs. Each one becomes a player's ID
// and the seed of their avatar URL, so two players never share a face.
type DefaultUUID struct{}

// New returns the generator the session engine is wired with outside tests
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a fresh player ID in canonical string form
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
