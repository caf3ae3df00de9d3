// Package matching computes minimum-weight perfect matchings on small
// weighted graphs — the pairing oracle behind the surface-code decoder.
//
// What:
//
//   - Match pairs every one of n nodes with exactly one other node, choosing
//     the pairing of maximum cardinality first and minimum total weight
//     second. The direction is fixed and explicit: total weight is MINIMIZED;
//     there is no sign-negation convention anywhere in this package.
//   - Graphs may be sparse: absent pairs are simply never matched. When the
//     given edges admit no perfect matching, Match reports
//     ErrNoPerfectMatching rather than returning a partial pairing.
//   - Two interchangeable backends sit behind one entry point. Swapping
//     backends never changes results beyond tie-breaking.
//
// Algorithms:
//
//   - AlgoExact — dynamic programming over node subsets (bitmask DP):
//     dp[mask] is the cheapest pairing of the nodes in mask; the lowest set
//     bit is paired against every other member. Exact on any graph, sparse
//     or dense. Time O(2ⁿ·n), memory O(2ⁿ); capped by MaxExactNodes.
//   - AlgoGreedy — global-greedy: all edges enter a binary heap ordered by
//     (weight, endpoints); the cheapest edge whose endpoints are both free
//     is accepted until every node is covered. Near-exact on dense metric
//     graphs; may fail (ErrNoPerfectMatching) on sparse graphs even when a
//     perfect matching exists. Time O(E log E).
//   - AlgoAuto (default) — AlgoExact up to MaxExactNodes nodes, then
//     AlgoGreedy.
//
// Errors:
//
//   - ErrOddNodeCount: n is odd; no perfect matching can exist.
//   - ErrBadEndpoint: an edge endpoint is out of [0,n) or a self-loop.
//   - ErrNegativeWeight: an edge carries a negative weight.
//   - ErrTooManyNodes: AlgoExact requested beyond MaxExactNodes.
//   - ErrNoPerfectMatching: the backend could not cover every node.
//   - ErrUnknownAlgo: Options.Algo is not one of the defined algorithms.
//
// Determinism: both backends are fully deterministic — equal-weight
// alternatives resolve by ascending node index, and returned pairs are
// normalized as (low,high) and sorted by first member.
package matching
