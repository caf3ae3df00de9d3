package mwpm

import (
	"fmt"

	"github.com/stabkit/stabkit/lattice"
)

// applyPair walks the correction for one matched pair, toggling qubit error
// states along the path and returning the number of qubits toggled.
// Virtual-virtual pairs never reach here; Decode filters them first.
func (d *Decoder) applyPair(p Pair) (int, error) {
	if p.A.Tag == VirtualBoundary || p.B.Tag == VirtualBoundary {
		real, virt := p.A, p.B
		if real.Tag == VirtualBoundary {
			real, virt = virt, real
		}

		return d.applyBoundaryLeg(real, virt)
	}

	return d.applyRealPair(p.A, p.B)
}

// applyRealPair corrects a real-real pair along an L-shaped path. The row
// deltas are taken both ways — steps walking Up from A versus steps walking
// Down — modulo Size for toric, signed for planar where the wrong way round
// is infeasible; the smaller feasible leg wins and equal alternatives
// resolve to Down (rows) and Left (columns). The vertical leg then walks
// from A and the horizontal leg from B: the two legs meet at the lattice
// point where row and column align, with no pathfinding needed.
func (d *Decoder) applyRealPair(a, b Node) (int, error) {
	var dyUp, dyDown, dxRight, dxLeft int
	if d.lat.Code == lattice.Toric {
		n := d.lat.Size
		dyUp, dyDown = mod(a.Row-b.Row, n), mod(b.Row-a.Row, n)
		dxRight, dxLeft = mod(a.Col-b.Col, n), mod(b.Col-a.Col, n)
	} else {
		dyUp, dyDown = a.Row-b.Row, b.Row-a.Row
		dxRight, dxLeft = a.Col-b.Col, b.Col-a.Col
	}
	dy, ydir := chooseLeg(dyUp, dyDown, lattice.Up, lattice.Down)
	dx, xdir := chooseLeg(dxRight, dxLeft, lattice.Right, lattice.Left)

	if err := d.walk(a.Index, ydir, dy); err != nil {
		return 0, err
	}
	if err := d.walk(b.Index, xdir, dx); err != nil {
		return 0, err
	}

	return dy + dx, nil
}

// applyBoundaryLeg corrects a real-boundary pair: a single perpendicular leg
// from the real defect toward its boundary companion. A zero-length leg (the
// defect already sits on the boundary) is a no-op.
func (d *Decoder) applyBoundaryLeg(real, virt Node) (int, error) {
	var (
		steps int
		dir   lattice.Direction
	)
	if virt.Row == real.Row { // vertex kind: walk along the row
		steps, dir = virt.Col-real.Col, lattice.Right
		if steps < 0 {
			steps, dir = -steps, lattice.Left
		}
	} else { // plaquette kind: walk along the column
		steps, dir = virt.Row-real.Row, lattice.Down
		if steps < 0 {
			steps, dir = -steps, lattice.Up
		}
	}

	if err := d.walk(real.Index, dir, steps); err != nil {
		return 0, err
	}

	return steps, nil
}

// chooseLeg picks between the two ways around: a negative step count is
// infeasible (planar signed deltas), and an exact tie resolves to the second
// alternative, i.e. Down for rows and Left for columns.
func chooseLeg(first, second int, d1, d2 lattice.Direction) (int, lattice.Direction) {
	if first >= 0 && (second < 0 || first < second) {
		return first, d1
	}

	return second, d2
}

// walk steps `steps` times in direction dir from the stabilizer at index
// from, toggling ErrorState and setting InCorrection on every traversed
// qubit. The decoder assumes a fully connected lattice; an absent link along
// the path is fatal and reported as ErrMissingNeighbor.
func (d *Decoder) walk(from int, dir lattice.Direction, steps int) error {
	lat := d.lat
	cur := from
	var s int
	for s = 0; s < steps; s++ {
		if cur < 0 {
			return fmt.Errorf("%w: walked off-lattice at step %d of %d going %s", ErrMissingNeighbor, s, steps, dir)
		}
		ln := lat.Stabs[cur].Neighbors[dir]
		if ln.Edge == lattice.Absent {
			stab := lat.Stabs[cur]
			return fmt.Errorf("%w: (%s,%d,%d) has no %s edge", ErrMissingNeighbor, stab.Kind, stab.Row, stab.Col, dir)
		}
		lat.Edges[ln.Edge].ErrorState = !lat.Edges[ln.Edge].ErrorState
		lat.Edges[ln.Edge].InCorrection = true
		cur = int(ln.Stab)
	}

	return nil
}
