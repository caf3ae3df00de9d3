package mwpm

import (
	"github.com/stabkit/stabkit/lattice"
	"github.com/stabkit/stabkit/matching"
)

// PartitionEdges builds the weighted defect graph for one partition, as
// produced by Defects, in the node indexing the oracle will see.
//
// Toric: the partition is all real defects; the graph is complete with
// weight = periodic Manhattan distance.
//
// Planar: the partition is mid reals followed by mid companions. Three edge
// classes exist — real-real at unwrapped Manhattan distance, virtual-virtual
// at zero weight for every companion pair, and each real i to its own
// companion mid+i at the perpendicular distance to the assigned boundary.
// No other edges: the graph is sparse and the oracle must tolerate that.
//
// Complexity: O(k²) for k partition nodes.
func (d *Decoder) PartitionEdges(part []Node) []matching.Edge {
	if d.lat.Code == lattice.Toric {
		return d.toricEdges(part)
	}

	return d.planarEdges(part)
}

// toricEdges emits the complete graph at periodic Manhattan distance.
func (d *Decoder) toricEdges(part []Node) []matching.Edge {
	edges := make([]matching.Edge, 0, len(part)*(len(part)-1)/2)
	var i, j int
	for i = 0; i < len(part)-1; i++ {
		for j = i + 1; j < len(part); j++ {
			edges = append(edges, matching.Edge{
				U:      i,
				V:      j,
				Weight: float64(d.torusDistance(part[i], part[j])),
			})
		}
	}

	return edges
}

// planarEdges emits the sparse three-class planar graph.
func (d *Decoder) planarEdges(part []Node) []matching.Edge {
	mid := len(part) / 2
	edges := make([]matching.Edge, 0, mid*mid+mid)
	var i, j int

	// Real-real: unwrapped Manhattan distance.
	for i = 0; i < mid-1; i++ {
		for j = i + 1; j < mid; j++ {
			edges = append(edges, matching.Edge{
				U:      i,
				V:      j,
				Weight: float64(abs(part[i].Row-part[j].Row) + abs(part[i].Col-part[j].Col)),
			})
		}
	}

	// Virtual-virtual: free for every companion pair, letting the oracle
	// absorb any defect into the boundary without forcing a routing.
	for i = mid; i < len(part)-1; i++ {
		for j = i + 1; j < len(part); j++ {
			edges = append(edges, matching.Edge{U: i, V: j, Weight: 0})
		}
	}

	// Each real to its own companion: perpendicular distance only.
	for i = 0; i < mid; i++ {
		edges = append(edges, matching.Edge{
			U:      i,
			V:      mid + i,
			Weight: float64(perpDistance(part[i], part[mid+i])),
		})
	}

	return edges
}

// pairWeight recomputes the declared weight of a matched pair, so Result
// accounting always agrees with the graph the oracle saw.
func (d *Decoder) pairWeight(a, b Node) float64 {
	switch {
	case a.Tag == VirtualBoundary && b.Tag == VirtualBoundary:
		return 0
	case a.Tag == VirtualBoundary || b.Tag == VirtualBoundary:
		if a.Tag == VirtualBoundary {
			a, b = b, a
		}

		return float64(perpDistance(a, b))
	case d.lat.Code == lattice.Toric:
		return float64(d.torusDistance(a, b))
	default:
		return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
	}
}

// torusDistance is the Manhattan distance on the torus of side Size:
// min(wy, Size−wy) + min(wx, Size−wx). Symmetric in its arguments.
func (d *Decoder) torusDistance(a, b Node) int {
	n := d.lat.Size
	wy := mod(a.Row-b.Row, n)
	wx := mod(a.Col-b.Col, n)

	return min(wy, n-wy) + min(wx, n-wx)
}

// perpDistance is the distance from a real defect to its boundary companion:
// horizontal for the vertex kind (the boundary fixes a column), vertical for
// the plaquette kind (the boundary fixes a row).
func perpDistance(real, virt Node) int {
	if virt.Row == real.Row { // vertex kind: the boundary fixes a column
		return abs(virt.Col - real.Col)
	}

	return abs(virt.Row - real.Row)
}

// mod is the non-negative remainder of v modulo n.
func mod(v, n int) int {
	return ((v % n) + n) % n
}

// abs returns |v|.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
