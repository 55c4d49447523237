package retryuntil

import "github.com/jonboulle/clockwork"

// config holds per-session configuration.
type config struct {
	clock clockwork.Clock
}

// Option configures a retry session.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithClock sets the clock used for stop-condition deadlines and
// inter-attempt waits. Useful for testing.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}
