package matching

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// greedyMatch performs a global-greedy perfect matching: every candidate edge
// enters a min-heap ordered by (weight, endpoints), and the cheapest edge
// whose endpoints are both still free is accepted until all nodes are
// covered. On dense metric graphs this lands within a small factor of the
// optimum; on sparse graphs it may dead-end even when a perfect matching
// exists, in which case ErrNoPerfectMatching is returned and nothing partial
// escapes.
//
// Complexity: O(E log E) time, O(E) memory.
func greedyMatch(n int, edges []Edge) ([][2]int, error) {
	h := binaryheap.NewWith(edgeComparator)
	var e Edge
	for _, e = range edges {
		if e.U > e.V {
			e.U, e.V = e.V, e.U // normalize for deterministic ordering
		}
		h.Push(e)
	}

	matched := make([]bool, n)
	pairs := make([][2]int, 0, n/2)
	remaining := n
	for remaining > 0 && !h.Empty() {
		v, _ := h.Pop()
		e = v.(Edge)
		if matched[e.U] || matched[e.V] {
			continue // an endpoint was consumed by a cheaper edge
		}
		matched[e.U], matched[e.V] = true, true
		pairs = append(pairs, [2]int{e.U, e.V})
		remaining -= 2
	}
	if remaining > 0 {
		return nil, ErrNoPerfectMatching
	}

	return sortPairs(pairs), nil
}

// edgeComparator orders heap entries by ascending weight, breaking ties by
// ascending (U,V) so identical inputs always pop in the same order.
func edgeComparator(a, b interface{}) int {
	ea, eb := a.(Edge), b.(Edge)
	switch {
	case ea.Weight < eb.Weight:
		return -1
	case ea.Weight > eb.Weight:
		return 1
	case ea.U != eb.U:
		return ea.U - eb.U
	default:
		return ea.V - eb.V
	}
}
