package president

import (
	"time"

	"president-server/internal/rng"
)

// Options are options for creating a new game
type Options struct {
	// RoundLimit is how many rounds are played before final standings are computed
	RoundLimit int

	// DealerDelay is how long the dealer waits before moving between rounds on its own
	// Zero disables dealer pacing, round transitions must then be requested explicitly
	DealerDelay time.Duration

	// StrictInvariants turns invariant violations into panics instead of loud log lines
	StrictInvariants bool

	// Generator shuffles the deck. Defaults to rng.Crypto
	Generator rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		RoundLimit:  5,
		DealerDelay: 1500 * time.Millisecond,
		Generator:   rng.Crypto{},
	}
}
