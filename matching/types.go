// Package matching - core types, options and sentinel errors for the
// perfect-matching oracle.
package matching

import "errors"

// Sentinel errors returned by Match and its backends.
var (
	// ErrOddNodeCount indicates an odd n; a perfect matching needs even n.
	ErrOddNodeCount = errors.New("matching: node count must be even")
	// ErrBadEndpoint indicates an edge endpoint outside [0,n) or a self-loop.
	ErrBadEndpoint = errors.New("matching: edge endpoint out of range")
	// ErrNegativeWeight indicates an edge with negative weight.
	ErrNegativeWeight = errors.New("matching: edge weight must be non-negative")
	// ErrTooManyNodes indicates AlgoExact beyond the MaxExactNodes cap.
	ErrTooManyNodes = errors.New("matching: node count exceeds exact-backend cap")
	// ErrNoPerfectMatching indicates the given edges cover no perfect matching.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching over given edges")
	// ErrUnknownAlgo indicates an Options.Algo outside the defined set.
	ErrUnknownAlgo = errors.New("matching: unknown algorithm")
)

// Edge is one weighted, undirected candidate pair. Endpoint order does not
// matter; duplicates collapse to the cheapest weight.
type Edge struct {
	U, V   int
	Weight float64
}

// Algo selects the matching backend.
type Algo int

const (
	// AlgoAuto routes to AlgoExact up to MaxExactNodes nodes, else AlgoGreedy.
	AlgoAuto Algo = iota
	// AlgoExact is the bitmask-DP backend: exact, O(2ⁿ·n).
	AlgoExact
	// AlgoGreedy is the global-greedy heap backend: near-exact, O(E log E).
	AlgoGreedy
)

// DefaultMaxExactNodes is the default cap for the bitmask-DP backend.
// 2²⁰ float64 dp entries ≈ 8 MiB; beyond that Auto falls back to greedy.
const DefaultMaxExactNodes = 20

// Options configures Match.
//
// Algo          – backend selection (AlgoAuto by default).
// MaxExactNodes – largest n the exact backend accepts; also the Auto
// crossover point. Must be in [2,30].
type Options struct {
	Algo          Algo
	MaxExactNodes int
}

// Option is a functional option for configuring Match.
type Option func(*Options)

// WithAlgo pins the backend instead of Auto routing.
func WithAlgo(a Algo) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithMaxExactNodes overrides the exact-backend cap. Values outside [2,30]
// panic: below 2 no pairing exists, above 30 the dp table would not fit.
func WithMaxExactNodes(n int) Option {
	return func(o *Options) {
		if n < 2 || n > 30 {
			panic(ErrTooManyNodes.Error())
		}
		o.MaxExactNodes = n
	}
}

// DefaultOptions returns the canonical starting configuration:
// AlgoAuto with MaxExactNodes = DefaultMaxExactNodes.
func DefaultOptions() Options {
	return Options{
		Algo:          AlgoAuto,
		MaxExactNodes: DefaultMaxExactNodes,
	}
}
