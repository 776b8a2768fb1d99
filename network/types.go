package network

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptyID reports an operation that required a non-empty ID.
	ErrEmptyID = errors.New("network: empty id")

	// ErrDuplicateID reports an explicit ID already in use.
	ErrDuplicateID = errors.New("network: id already in use")

	// ErrNodeNotFound reports a junction ID absent from the network.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrRoadNotFound reports a segment ID absent from the network.
	ErrRoadNotFound = errors.New("network: road not found")
)

// Options configures a Network; use the With* helpers.
type Options struct {
	// IDGen supplies IDs for nodes and roads added without one. It must
	// eventually return unused values; collisions are retried.
	IDGen func() string
}

// Option mutates Options during New.
type Option func(*Options)

// WithIDGenerator replaces the default UUID generator, typically with a
// counter for reproducible fixtures.
func WithIDGenerator(fn func() string) Option {
	return func(o *Options) {
		if fn != nil {
			o.IDGen = fn
		}
	}
}

// DefaultOptions returns the baseline configuration: UUID identity.
func DefaultOptions() Options {
	return Options{IDGen: uuid.NewString}
}
