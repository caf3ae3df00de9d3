package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stabkit/stabkit/matching"
)

// MatchSuite exercises the dispatcher and both backends.
type MatchSuite struct {
	suite.Suite
}

// k4 is a dense 4-node metric with a unique optimum {0–1, 2–3}.
func k4() []matching.Edge {
	return []matching.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 0, V: 2, Weight: 5},
		{U: 0, V: 3, Weight: 5},
		{U: 1, V: 2, Weight: 5},
		{U: 1, V: 3, Weight: 5},
	}
}

// totalWeight sums the matched pairs' weights over the given edge list.
func totalWeight(pairs [][2]int, edges []matching.Edge) float64 {
	var sum float64
	for _, p := range pairs {
		for _, e := range edges {
			if (e.U == p[0] && e.V == p[1]) || (e.U == p[1] && e.V == p[0]) {
				sum += e.Weight
				break
			}
		}
	}

	return sum
}

// TestK4UniqueOptimum verifies both backends find the unique cheapest pairing.
func (s *MatchSuite) TestK4UniqueOptimum() {
	for _, algo := range []matching.Algo{matching.AlgoExact, matching.AlgoGreedy} {
		pairs, err := matching.Match(4, k4(), matching.WithAlgo(algo))
		require.NoError(s.T(), err)
		require.Equal(s.T(), [][2]int{{0, 1}, {2, 3}}, pairs)
	}
}

// TestExactBeatsGreedy uses the classic trap where the locally cheapest edge
// forces an expensive completion: exact must avoid it, greedy must fall in.
func (s *MatchSuite) TestExactBeatsGreedy() {
	edges := []matching.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 0, V: 1, Weight: 2},
		{U: 2, V: 3, Weight: 2},
		{U: 0, V: 3, Weight: 10},
		{U: 0, V: 2, Weight: 100},
		{U: 1, V: 3, Weight: 100},
	}

	exact, err := matching.Match(4, edges, matching.WithAlgo(matching.AlgoExact))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, totalWeight(exact, edges), "exact must pick {0-1, 2-3}")

	greedy, err := matching.Match(4, edges, matching.WithAlgo(matching.AlgoGreedy))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 11.0, totalWeight(greedy, edges), "greedy takes 1-2 first")
}

// TestSparseGraph verifies the exact backend on a non-complete graph shaped
// like a planar defect partition: reals, boundary companions, zero-weight
// virtual pair.
func (s *MatchSuite) TestSparseGraph() {
	edges := []matching.Edge{
		{U: 0, V: 1, Weight: 1}, // real-real
		{U: 2, V: 3, Weight: 0}, // virtual-virtual
		{U: 0, V: 2, Weight: 1}, // real to own boundary
		{U: 1, V: 3, Weight: 2},
	}
	pairs, err := matching.Match(4, edges, matching.WithAlgo(matching.AlgoExact))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][2]int{{0, 1}, {2, 3}}, pairs)
}

// TestNoPerfectMatching verifies both backends refuse partial coverage.
func (s *MatchSuite) TestNoPerfectMatching() {
	edges := []matching.Edge{{U: 0, V: 1, Weight: 1}}
	for _, algo := range []matching.Algo{matching.AlgoExact, matching.AlgoGreedy} {
		_, err := matching.Match(4, edges, matching.WithAlgo(algo))
		require.ErrorIs(s.T(), err, matching.ErrNoPerfectMatching)
	}
}

// TestValidation covers the input sentinels.
func (s *MatchSuite) TestValidation() {
	_, err := matching.Match(3, nil)
	require.ErrorIs(s.T(), err, matching.ErrOddNodeCount)

	_, err = matching.Match(2, []matching.Edge{{U: 0, V: 2, Weight: 1}})
	require.ErrorIs(s.T(), err, matching.ErrBadEndpoint)

	_, err = matching.Match(2, []matching.Edge{{U: 1, V: 1, Weight: 1}})
	require.ErrorIs(s.T(), err, matching.ErrBadEndpoint)

	_, err = matching.Match(2, []matching.Edge{{U: 0, V: 1, Weight: -0.5}})
	require.ErrorIs(s.T(), err, matching.ErrNegativeWeight)

	_, err = matching.Match(4, k4(), matching.WithAlgo(matching.AlgoExact), matching.WithMaxExactNodes(2))
	require.ErrorIs(s.T(), err, matching.ErrTooManyNodes)

	_, err = matching.Match(2, nil, matching.WithAlgo(matching.Algo(42)))
	require.ErrorIs(s.T(), err, matching.ErrUnknownAlgo)
}

// TestEmptyInput verifies n == 0 yields an empty matching, not an error.
func (s *MatchSuite) TestEmptyInput() {
	pairs, err := matching.Match(0, nil)
	require.NoError(s.T(), err)
	require.Empty(s.T(), pairs)
}

// TestAutoCrossover verifies Auto routes to greedy past the exact cap.
func (s *MatchSuite) TestAutoCrossover() {
	pairs, err := matching.Match(4, k4(), matching.WithMaxExactNodes(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][2]int{{0, 1}, {2, 3}}, pairs, "K4 optimum is greedy-safe")
}

// TestGreedyLargeDense sanity-checks coverage and disjointness on a dense
// 26-node instance, beyond the exact cap.
func (s *MatchSuite) TestGreedyLargeDense() {
	const n = 26
	var edges []matching.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Deterministic pseudo-metric weights.
			edges = append(edges, matching.Edge{U: i, V: j, Weight: float64((i*7+j*13)%19 + 1)})
		}
	}
	pairs, err := matching.Match(n, edges)
	require.NoError(s.T(), err)
	require.Len(s.T(), pairs, n/2)

	seen := make([]bool, n)
	for _, p := range pairs {
		require.False(s.T(), seen[p[0]], "node %d matched twice", p[0])
		require.False(s.T(), seen[p[1]], "node %d matched twice", p[1])
		seen[p[0]], seen[p[1]] = true, true
		require.Less(s.T(), p[0], p[1], "pairs must be normalized (low,high)")
	}
}

// TestDuplicateEdgesCollapse verifies duplicates keep the cheapest weight.
func (s *MatchSuite) TestDuplicateEdgesCollapse() {
	edges := []matching.Edge{
		{U: 0, V: 1, Weight: 9},
		{U: 1, V: 0, Weight: 2},
	}
	pairs, err := matching.Match(2, edges, matching.WithAlgo(matching.AlgoExact))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][2]int{{0, 1}}, pairs)
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchSuite))
}
