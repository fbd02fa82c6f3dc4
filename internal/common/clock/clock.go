package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/socialchaos/internal/common/clock Clock

// Clock stamps session creation and the start and end of each game
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the wall clock for a local play session
type DefaultClock struct{}

// Now returns the current time in UTC so snapshot timestamps compare cleanly
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
