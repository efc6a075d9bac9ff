package arena

import (
	"io"
	"log/slog"
)

// DefaultCapacity is the number of slots reserved by New when no capacity
// is given.
const DefaultCapacity = 10

// Option configures an Arena.
type Option func(*config)

type config struct {
	capacity int
	limit    int
	logger   *slog.Logger
}

// WithCapacity sets the number of slots reserved at construction.
// Values <= 0 select DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithLimit caps the slot count of a single heap block. Growth past the
// limit fails with ErrAllocationFailure. Ignored by NewWithSource.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}

// WithLogger sets the logger used for growth and release events.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newConfig(opts []Option) config {
	c := config{capacity: DefaultCapacity, logger: discardLogger}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity <= 0 {
		c.capacity = DefaultCapacity
	}
	if c.logger == nil {
		c.logger = discardLogger
	}
	return c
}
