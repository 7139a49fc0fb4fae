package generator

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/fedimser/GroupEnumerator/fingroup"
)

// Option configures optional behavior of Generate.
type Option func(*Options)

// Options holds the configurable parameters of one enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug traces; defaults to a discarding logger.
	Logger *log.Logger

	// OnLeaf, if non-nil, is called for every complete table, with
	// duplicate reporting whether an isomorphic group was already kept.
	OnLeaf func(candidate *fingroup.Group, duplicate bool)
}

// DefaultOptions returns Options with a Background context, a discarding
// logger and no leaf hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLeaf installs fn as the leaf hook.
func WithOnLeaf(fn func(candidate *fingroup.Group, duplicate bool)) Option {
	return func(o *Options) {
		o.OnLeaf = fn
	}
}

// Stats counts the work done by one enumeration.
type Stats struct {
	Nodes      int // branch values tried
	Pruned     int // branches rejected by propagation
	Leaves     int // complete tables reached
	Duplicates int // leaves isomorphic to an already kept group
}

// Result is the outcome of Generate.
type Result struct {
	// Groups holds one group per isomorphism class, in discovery order.
	Groups []*fingroup.Group
	Stats  Stats
}
