// Package mwpm - decoder construction and the per-round pipeline.
package mwpm

import (
	"fmt"

	"github.com/stabkit/stabkit/lattice"
)

// Decoder runs minimum-weight perfect-matching decode rounds against one
// lattice. It holds no per-round state: defect sets, weighted graphs and
// matchings are rebuilt fresh each round and discarded after correction.
type Decoder struct {
	lat    *lattice.Lattice
	oracle Oracle
}

// New builds a decoder bound to lat. The geometry is read from lat.Code here
// and never re-read, so toric weights can never be applied to a planar
// lattice or vice versa.
//
// Returns ErrNilLattice for a nil lattice and ErrUnknownCode when lat.Code is
// neither Toric nor Planar.
func New(lat *lattice.Lattice, opts ...Option) (*Decoder, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if lat == nil {
		return nil, ErrNilLattice
	}
	if lat.Code != lattice.Toric && lat.Code != lattice.Planar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCode, int(lat.Code))
	}

	oracle := cfg.Oracle
	if oracle == nil {
		oracle = matchAdapter{opts: cfg.MatchOptions}
	}

	return &Decoder{lat: lat, oracle: oracle}, nil
}

// Decode runs one decode round: for each check kind it extracts the defect
// partition, matches it, filters virtual-virtual pairs (planar) and applies
// the corrections, toggling qubit error states in place. Edge InCorrection
// flags are cleared at round start and set on every toggled qubit.
//
// An empty partition (no active checks of that kind) is skipped, not an
// error. If the oracle fails or returns an incomplete matching for a
// partition, nothing from that partition is applied and Decode returns the
// error; the Vertex partition may already have been applied when the
// Plaquette partition fails, since partitions are corrected in kind order.
//
// Complexity per round: O(Size² + k²) graph building for k defects, plus
// the oracle's own cost.
func (d *Decoder) Decode() (Result, error) {
	var res Result
	d.lat.ResetCorrection()

	var kind lattice.StabKind
	for _, kind = range []lattice.StabKind{lattice.Vertex, lattice.Plaquette} {
		part := d.Defects(kind)
		if len(part) == 0 {
			continue // nothing to pair for this check kind
		}

		raw, err := d.oracle.MatchMinWeight(len(part), d.PartitionEdges(part))
		if err != nil {
			return res, fmt.Errorf("mwpm: %s partition: %w", kind, err)
		}
		pairs, err := d.resolvePairs(part, raw)
		if err != nil {
			return res, fmt.Errorf("%s partition: %w", kind, err)
		}

		var p Pair
		for _, p = range pairs {
			if p.A.Tag == VirtualBoundary && p.B.Tag == VirtualBoundary {
				continue // two chains each absorbed at the boundary: no correction
			}
			toggled, aerr := d.applyPair(p)
			if aerr != nil {
				return res, aerr
			}
			res.Pairs = append(res.Pairs, p)
			res.EdgesToggled += toggled
			res.Weight += p.Weight
		}
	}

	return res, nil
}

// Decode is the one-shot form: it builds a Decoder for lat and runs a single
// round. Reuse a Decoder when decoding many rounds against the same lattice.
func Decode(lat *lattice.Lattice, opts ...Option) (Result, error) {
	d, err := New(lat, opts...)
	if err != nil {
		return Result{}, err
	}

	return d.Decode()
}

// resolvePairs validates the oracle output against the partition — every
// index used exactly once, all in range — and materializes Pair values with
// their declared weights. Any violation is ErrIncompleteMatching: a matching
// that does not cover the partition is a decode failure, never partially
// applied.
func (d *Decoder) resolvePairs(part []Node, raw [][2]int) ([]Pair, error) {
	if len(raw)*2 != len(part) {
		return nil, fmt.Errorf("%w: %d pairs for %d defects", ErrIncompleteMatching, len(raw), len(part))
	}

	seen := make([]bool, len(part))
	pairs := make([]Pair, 0, len(raw))
	var (
		ij   [2]int
		i, j int
	)
	for _, ij = range raw {
		i, j = ij[0], ij[1]
		if i < 0 || i >= len(part) || j < 0 || j >= len(part) || i == j || seen[i] || seen[j] {
			return nil, fmt.Errorf("%w: bad pair (%d,%d)", ErrIncompleteMatching, i, j)
		}
		seen[i], seen[j] = true, true
		pairs = append(pairs, Pair{
			A:      part[i],
			B:      part[j],
			Weight: d.pairWeight(part[i], part[j]),
		})
	}

	return pairs, nil
}
