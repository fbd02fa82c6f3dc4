package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/socialchaos/internal/random Source

// Source provides the random selections made by the engine
type Source interface {
	// Intn returns a uniformly distributed value in [0, n)
	Intn(n int) int
}

// Rand is the default Source backed by math/rand
type Rand struct {
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a value in [0, n); n below 1 yields 0
func (r *Rand) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}
