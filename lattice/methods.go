package lattice

import "fmt"

// SetActive sets the syndrome bit of the stabilizer at (kind,row,col).
// Returns ErrNoSuchStab for positions outside the grid.
func (l *Lattice) SetActive(kind StabKind, row, col int, active bool) error {
	s, err := l.Stab(kind, row, col)
	if err != nil {
		return err
	}
	s.Active = active

	return nil
}

// FlipAt toggles the error state of the qubit in direction dir from the
// stabilizer at (kind,row,col). Returns ErrNoSuchStab or ErrNoSuchEdge.
// Toggling is mod 2: flipping twice restores the original state.
func (l *Lattice) FlipAt(kind StabKind, row, col int, dir Direction) error {
	s, err := l.Stab(kind, row, col)
	if err != nil {
		return err
	}
	e := s.Neighbors[dir].Edge
	if e == Absent {
		return fmt.Errorf("%w: (%s,%d,%d) %s", ErrNoSuchEdge, kind, row, col, dir)
	}
	l.Edges[e].ErrorState = !l.Edges[e].ErrorState

	return nil
}

// Measure recomputes every stabilizer's Active bit as the mod-2 parity of
// its incident edges' error states, the way a stabilizer measurement round
// projects the physical error pattern onto the syndrome.
//
// Complexity: O(Size²).
func (l *Lattice) Measure() {
	var (
		i, d   int
		parity bool
		e      int32
	)
	for i = range l.Stabs {
		parity = false
		for d = 0; d < NumDirections; d++ {
			e = l.Stabs[i].Neighbors[d].Edge
			if e != Absent && l.Edges[e].ErrorState {
				parity = !parity
			}
		}
		l.Stabs[i].Active = parity
	}
}

// ErrorCount returns the number of qubits currently in the error state.
// Complexity: O(E).
func (l *Lattice) ErrorCount() int {
	var n int
	for i := range l.Edges {
		if l.Edges[i].ErrorState {
			n++
		}
	}

	return n
}

// ResetCorrection clears every edge's InCorrection flag, preparing the
// lattice for the next decode round. Error states are untouched.
// Complexity: O(E).
func (l *Lattice) ResetCorrection() {
	for i := range l.Edges {
		l.Edges[i].InCorrection = false
	}
}

// Reset clears all mutable state: every edge's ErrorState and InCorrection
// flag and every stabilizer's Active bit. The wiring is untouched.
// Complexity: O(Size²).
func (l *Lattice) Reset() {
	for i := range l.Edges {
		l.Edges[i] = Edge{}
	}
	for i := range l.Stabs {
		l.Stabs[i].Active = false
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Clones may be decoded concurrently with the original.
// Complexity: O(Size²).
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{
		Size:   l.Size,
		Code:   l.Code,
		Stabs:  make([]Stabilizer, len(l.Stabs)),
		Edges:  make([]Edge, len(l.Edges)),
		Bounds: make([]Boundary, len(l.Bounds)),
	}
	copy(c.Stabs, l.Stabs)
	copy(c.Edges, l.Edges)
	copy(c.Bounds, l.Bounds)

	return c
}
