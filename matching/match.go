// Package matching - unified dispatcher for the perfect-matching backends.
//
// Design principles:
//   - Deterministic: no randomness; ties resolve by ascending node index.
//   - Strict sentinels: only errors from types.go, wrapped with %w for context.
//   - Explicit contract: total weight is minimized, maximum cardinality first;
//     a shortfall is an error, never a partial result.
package matching

import (
	"fmt"
	"sort"
)

// Match returns a minimum-weight perfect matching over n nodes, given the
// candidate edges. Every node is covered exactly once; pairs are disjoint,
// normalized as (low,high) and sorted by first member.
//
// Contract:
//   - n must be even and non-negative; n == 0 yields an empty matching.
//   - Endpoints lie in [0,n), no self-loops, weights ≥ 0.
//   - Absent pairs are non-edges; the graph may be sparse. If no perfect
//     matching exists over the given edges, ErrNoPerfectMatching is returned
//     and no partial pairing is produced.
//   - Total weight is MINIMIZED (maximum cardinality is the primary
//     objective and is saturated by the perfect-matching requirement).
//
// Complexity: validation O(E); then per backend — exact O(2ⁿ·n + E),
// greedy O(E log E).
func Match(n int, edges []Edge, opts ...Option) ([][2]int, error) {
	// Stage 1 - options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 2 - node-count sanity.
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadEndpoint, n)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrOddNodeCount, n)
	}
	if n == 0 {
		return [][2]int{}, nil
	}

	// Stage 3 - edge validation.
	var e Edge
	for _, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return nil, fmt.Errorf("%w: (%d,%d) with n=%d", ErrBadEndpoint, e.U, e.V, n)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: (%d,%d) weight=%v", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	// Stage 4 - route by algorithm.
	switch cfg.Algo {
	case AlgoExact:
		if n > cfg.MaxExactNodes {
			return nil, fmt.Errorf("%w: n=%d cap=%d", ErrTooManyNodes, n, cfg.MaxExactNodes)
		}

		return exactMatch(n, edges)

	case AlgoGreedy:
		return greedyMatch(n, edges)

	case AlgoAuto:
		if n <= cfg.MaxExactNodes {
			return exactMatch(n, edges)
		}

		return greedyMatch(n, edges)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgo, int(cfg.Algo))
	}
}

// sortPairs orders a matching by its first member for stable output.
func sortPairs(pairs [][2]int) [][2]int {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	return pairs
}
