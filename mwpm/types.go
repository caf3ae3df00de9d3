// Package mwpm - core types, options and sentinel errors for the decoder.
package mwpm

import (
	"errors"

	"github.com/stabkit/stabkit/matching"
)

// Sentinel errors returned by the decoder.
var (
	// ErrNilLattice indicates New received a nil lattice.
	ErrNilLattice = errors.New("mwpm: lattice is nil")
	// ErrUnknownCode indicates an unrecognized lattice code type.
	ErrUnknownCode = errors.New("mwpm: unknown lattice code type")
	// ErrIncompleteMatching indicates the oracle did not cover every defect.
	ErrIncompleteMatching = errors.New("mwpm: oracle returned incomplete matching")
	// ErrMissingNeighbor indicates a correction path hit an absent link.
	ErrMissingNeighbor = errors.New("mwpm: missing neighbor link on correction path")
)

// NodeTag distinguishes real defects from virtual boundary nodes in a
// matching, so the boundary filter is a tag check rather than a type switch.
type NodeTag int

const (
	// RealDefect is an active stabilizer.
	RealDefect NodeTag = iota
	// VirtualBoundary is a synthetic boundary companion (planar only).
	VirtualBoundary
)

// Node is one matchable defect. Index points into Lattice.Stabs for a
// RealDefect and into Lattice.Bounds for a VirtualBoundary. Row and Col are
// cached for weight computation; for boundary nodes they hold the fixed-axis
// identity (e.g. Col == Size, or Row == −1).
type Node struct {
	Tag      NodeTag
	Index    int
	Row, Col int
}

// Pair is one matched defect pair in the final (post-filter) matching,
// with its declared weight.
type Pair struct {
	A, B   Node
	Weight float64
}

// Result summarizes one decode round: the applied pairs (virtual-virtual
// pairs are filtered out before application), the number of qubit toggles,
// and the total matched weight.
type Result struct {
	Pairs        []Pair
	EdgesToggled int
	Weight       float64
}

// Oracle computes a minimum-weight perfect matching over n nodes: disjoint
// (i,j) pairs covering all nodes, minimizing total weight with maximum
// cardinality as the primary objective. Absent pairs in edges are non-edges;
// the graph may be sparse (planar geometry). Implementations must return an
// error rather than a partial matching. Total weight is minimized — never
// supply a sign-negated oracle.
type Oracle interface {
	MatchMinWeight(n int, edges []matching.Edge) ([][2]int, error)
}

// Options configures a Decoder.
//
// Oracle       – external matching implementation; nil selects the built-in
// adapter over package matching.
// MatchOptions – forwarded to the built-in adapter (ignored when Oracle is set).
type Options struct {
	Oracle       Oracle
	MatchOptions []matching.Option
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithOracle substitutes an external matching oracle for the built-in one.
func WithOracle(o Oracle) Option {
	return func(opts *Options) {
		opts.Oracle = o
	}
}

// WithMatchOptions forwards options to the built-in matching adapter.
func WithMatchOptions(mo ...matching.Option) Option {
	return func(opts *Options) {
		opts.MatchOptions = mo
	}
}

// DefaultOptions returns the canonical configuration: built-in oracle,
// default matching options.
func DefaultOptions() Options {
	return Options{}
}

// matchAdapter is the built-in Oracle over package matching.
type matchAdapter struct {
	opts []matching.Option
}

// MatchMinWeight delegates to matching.Match.
func (m matchAdapter) MatchMinWeight(n int, edges []matching.Edge) ([][2]int, error) {
	return matching.Match(n, edges, m.opts...)
}
