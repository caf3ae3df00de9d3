package matching

import (
	"math"
	"math/bits"
)

// exactMatch computes an exact minimum-weight perfect matching by dynamic
// programming over node subsets.
//
// dp[mask] is the minimum total weight pairing exactly the nodes whose bits
// are set in mask. Only even-popcount masks are reachable. For each mask the
// lowest set bit i is pinned and paired against every other member j, so each
// subset is considered exactly once:
//
//	dp[mask] = min over j of dp[mask ^ 1<<i ^ 1<<j] + w[i][j]
//
// choice[mask] remembers the winning j for reconstruction. Infinity marks
// both "no edge" and "unreachable subset"; dp[full] staying infinite means
// the graph admits no perfect matching.
//
// Ties resolve to the smallest j (strict < on candidates), making the result
// fully deterministic.
//
// Time complexity:   O(2ⁿ·n + E)
// Memory complexity: O(2ⁿ)
func exactMatch(n int, edges []Edge) ([][2]int, error) {
	// --- 1. Dense weight table; duplicates collapse to the cheapest. ---
	inf := math.Inf(1)
	w := make([][]float64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			w[i][j] = inf
		}
	}
	var e Edge
	for _, e = range edges {
		if e.Weight < w[e.U][e.V] {
			w[e.U][e.V] = e.Weight
			w[e.V][e.U] = e.Weight
		}
	}

	// --- 2. DP and choice tables. ---
	full := 1<<uint(n) - 1
	dp := make([]float64, full+1)
	choice := make([]int32, full+1)
	for mask := 1; mask <= full; mask++ {
		dp[mask] = inf
		choice[mask] = -1
	}
	dp[0] = 0

	// --- 3. Fill even-popcount masks in increasing order. ---
	var (
		mask, i, j, prev int
		cand             float64
	)
	for mask = 1; mask <= full; mask++ {
		if bits.OnesCount(uint(mask))%2 != 0 {
			continue // odd subsets cannot be perfectly matched
		}
		i = bits.TrailingZeros(uint(mask)) // pin the lowest member
		for j = i + 1; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue // j not in subset
			}
			if math.IsInf(w[i][j], 1) {
				continue // no edge i–j
			}
			prev = mask ^ 1<<uint(i) ^ 1<<uint(j)
			if math.IsInf(dp[prev], 1) {
				continue // predecessor subset unreachable
			}
			cand = dp[prev] + w[i][j]
			if cand < dp[mask] {
				dp[mask] = cand
				choice[mask] = int32(j)
			}
		}
	}

	if math.IsInf(dp[full], 1) {
		return nil, ErrNoPerfectMatching
	}

	// --- 4. Reconstruct pairs from the choice table. ---
	pairs := make([][2]int, 0, n/2)
	for mask = full; mask != 0; {
		i = bits.TrailingZeros(uint(mask))
		j = int(choice[mask])
		pairs = append(pairs, [2]int{i, j})
		mask ^= 1<<uint(i) | 1<<uint(j)
	}

	return sortPairs(pairs), nil
}
