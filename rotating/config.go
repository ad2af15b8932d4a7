package rotating

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	ErrBadCapacity = errors.New("rotating: capacity must be greater than zero")
	ErrBadFilters  = errors.New("rotating: at least one filter must be retained")
	ErrNoLogger    = errors.New("rotating: a logger is required")
)

type Config struct {
	// HashCount and BitCount size every generation. See bloom.New.
	HashCount uint64
	BitCount  uint64

	// Capacity is the number of new fingerprints the newest generation accepts
	// before a fresh generation is started.
	Capacity uint64

	// Filters is the number of generations retained, including the newest.
	// When a rotation would exceed it the oldest generation is dropped and the
	// fingerprints only it held are forgotten.
	Filters int
}

func (c Config) validate() error {
	if c.Capacity == 0 {
		return ErrBadCapacity
	}
	if c.Filters < 1 {
		return ErrBadFilters
	}
	return nil
}

type Options struct {
	seedSource io.Reader
}

type Option func(*Options)

// WithSeedSource sets the reader the seeds are drawn from. It defaults to
// crypto/rand. A deterministic reader gives reproducible filters.
func WithSeedSource(r io.Reader) Option {
	return func(o *Options) {
		o.seedSource = r
	}
}

func newOptions(opts ...Option) Options {
	o := Options{seedSource: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
