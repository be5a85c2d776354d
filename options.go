package strqueue

import (
	"strings"

	"github.com/yhchiang/strqueue/internal/memtrack"
	"github.com/yhchiang/strqueue/internal/natural"
)

// CompareFunc orders two element values: negative if a sorts before b,
// positive if after, zero otherwise.
type CompareFunc func(a, b string) int

// Natural orders strings with embedded digit runs compared as numbers, so
// "img2" sorts before "img10". See the internal/natural package for the
// exact rules, including the leading-zero exception.
func Natural(a, b string) int {
	return natural.Compare(a, b)
}

// Lexicographic orders strings byte-wise.
func Lexicographic(a, b string) int {
	return strings.Compare(a, b)
}

type options struct {
	compare CompareFunc
	gate    AllocGate
	track   *memtrack.Counters
}

func defaultOptions() options {
	return options{
		compare: Natural,
		track:   memtrack.Default(),
	}
}

// Option configures a queue at construction time.
type Option func(*options)

// WithCompare selects the comparator used by Sort. The default is Natural.
func WithCompare(cmp CompareFunc) Option {
	return func(opts *options) {
		if cmp != nil {
			opts.compare = cmp
		}
	}
}

// WithAllocGate installs a gate consulted before every reservation, letting
// callers simulate allocation exhaustion at any single site.
func WithAllocGate(gate AllocGate) Option {
	return func(opts *options) {
		opts.gate = gate
	}
}

// WithCounters directs reservation accounting to track instead of the
// package-wide memtrack default.
func WithCounters(track *memtrack.Counters) Option {
	return func(opts *options) {
		if track != nil {
			opts.track = track
		}
	}
}
