package lattice

import "fmt"

// Lattice is the stabilizer lattice of one surface-code instance.
//
// Stabs holds both sublattices back to back: the Vertex block first, then the
// Plaquette block, each in row-major order (see StabIndex). Edges holds every
// qubit; Bounds holds the virtual boundary nodes (planar only, empty for
// toric). All adjacency is by index, so a Lattice contains no pointer cycles.
//
// A Lattice is built once by New and persists across decode rounds; only
// Active bits and Edge state mutate afterwards. Distinct instances share no
// state and may be decoded concurrently; a single instance must not run two
// rounds at once.
type Lattice struct {
	Size   int
	Code   CodeType
	Stabs  []Stabilizer
	Edges  []Edge
	Bounds []Boundary
}

// New constructs a fully wired lattice of the given linear size and code type.
// Returns ErrBadSize if size < 2 and ErrUnknownCode for an unrecognized code.
//
// Complexity: O(size²) time and memory.
func New(size int, code CodeType) (*Lattice, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if code != Toric && code != Planar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCode, int(code))
	}

	l := &Lattice{
		Size:  size,
		Code:  code,
		Stabs: make([]Stabilizer, 2*size*size),
	}

	// Identity pass: every slot gets its (kind,row,col) and absent links.
	var (
		kind StabKind
		y, x int
		d    Direction
	)
	for _, kind = range []StabKind{Vertex, Plaquette} {
		for y = 0; y < size; y++ {
			for x = 0; x < size; x++ {
				s := &l.Stabs[l.StabIndex(kind, y, x)]
				s.Kind, s.Row, s.Col = kind, y, x
				for d = 0; d < NumDirections; d++ {
					s.Neighbors[d] = Link{Stab: Absent, Edge: Absent}
				}
			}
		}
	}

	if code == Toric {
		l.wireToric()
	} else {
		l.wirePlanar()
	}

	return l, nil
}

// StabIndex maps (kind,row,col) to the flat index in Stabs: the Vertex block
// precedes the Plaquette block, each row-major.
// Complexity: O(1).
func (l *Lattice) StabIndex(kind StabKind, row, col int) int {
	return int(kind)*l.Size*l.Size + row*l.Size + col
}

// InBounds reports whether (row,col) lies within the stabilizer grid.
// Complexity: O(1).
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.Size && col >= 0 && col < l.Size
}

// Stab returns the stabilizer at (kind,row,col), or ErrNoSuchStab when the
// position is out of the grid.
func (l *Lattice) Stab(kind StabKind, row, col int) (*Stabilizer, error) {
	if (kind != Vertex && kind != Plaquette) || !l.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%s,%d,%d)", ErrNoSuchStab, kind, row, col)
	}

	return &l.Stabs[l.StabIndex(kind, row, col)], nil
}

// BoundaryIndex maps a boundary node identity (kind plus its fixed row/col)
// to the flat index in Bounds, or -1 when no such node exists (toric
// lattices have none).
// Complexity: O(1).
func (l *Lattice) BoundaryIndex(kind StabKind, row, col int) int {
	if l.Code != Planar {
		return -1
	}
	switch kind {
	case Vertex:
		if row < 0 || row >= l.Size {
			return -1
		}
		if col == 0 {
			return 2 * row
		}
		if col == l.Size {
			return 2*row + 1
		}
	case Plaquette:
		if col < 0 || col >= l.Size {
			return -1
		}
		if row == -1 {
			return 2*l.Size + 2*col
		}
		if row == l.Size-1 {
			return 2*l.Size + 2*col + 1
		}
	}

	return -1
}

// addEdge appends a fresh qubit edge and returns its index.
func (l *Lattice) addEdge() int32 {
	l.Edges = append(l.Edges, Edge{})

	return int32(len(l.Edges) - 1)
}

// connect wires stabilizer indices a ↔ b through a new edge, setting the
// forward link on a and the mirror link on b.
func (l *Lattice) connect(a, b int, dir Direction) {
	e := l.addEdge()
	l.Stabs[a].Neighbors[dir] = Link{Stab: int32(b), Edge: e}
	l.Stabs[b].Neighbors[opposite(dir)] = Link{Stab: int32(a), Edge: e}
}

// opposite returns the reverse of dir.
func opposite(dir Direction) Direction {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// wireToric connects both sublattices periodically: each stabilizer gains a
// Down edge to ((row+1) mod Size, col) and a Right edge to (row, (col+1) mod
// Size); the mirror Up/Left links are set on the neighbor. 2·Size² qubits per
// sublattice.
func (l *Lattice) wireToric() {
	n := l.Size
	var (
		kind StabKind
		y, x int
	)
	for _, kind = range []StabKind{Vertex, Plaquette} {
		for y = 0; y < n; y++ {
			for x = 0; x < n; x++ {
				i := l.StabIndex(kind, y, x)
				l.connect(i, l.StabIndex(kind, (y+1)%n, x), Down)
				l.connect(i, l.StabIndex(kind, y, (x+1)%n), Right)
			}
		}
	}
}

// wirePlanar connects both sublattices without wraparound and registers the
// virtual boundary nodes.
//
// The Vertex sublattice is bounded left and right: column 0 sits on the open
// boundary directly (no Left edge), while column Size−1 carries one extra
// Right qubit terminating off-lattice. The Plaquette sublattice is bounded
// top and bottom analogously: row 0 carries an off-lattice Up qubit and row
// Size−1 sits on the boundary.
func (l *Lattice) wirePlanar() {
	n := l.Size
	var (
		kind StabKind
		y, x int
	)
	for _, kind = range []StabKind{Vertex, Plaquette} {
		for y = 0; y < n; y++ {
			for x = 0; x < n; x++ {
				i := l.StabIndex(kind, y, x)
				if y < n-1 {
					l.connect(i, l.StabIndex(kind, y+1, x), Down)
				}
				if x < n-1 {
					l.connect(i, l.StabIndex(kind, y, x+1), Right)
				}
				// Boundary-incident qubits: one end off-lattice.
				if kind == Vertex && x == n-1 {
					l.Stabs[i].Neighbors[Right] = Link{Stab: Absent, Edge: l.addEdge()}
				}
				if kind == Plaquette && y == 0 {
					l.Stabs[i].Neighbors[Up] = Link{Stab: Absent, Edge: l.addEdge()}
				}
			}
		}
	}

	// Virtual boundary nodes, in the order BoundaryIndex expects.
	l.Bounds = make([]Boundary, 0, 4*n)
	for y = 0; y < n; y++ {
		l.Bounds = append(l.Bounds,
			Boundary{Kind: Vertex, Row: y, Col: 0},
			Boundary{Kind: Vertex, Row: y, Col: n},
		)
	}
	for x = 0; x < n; x++ {
		l.Bounds = append(l.Bounds,
			Boundary{Kind: Plaquette, Row: -1, Col: x},
			Boundary{Kind: Plaquette, Row: n - 1, Col: x},
		)
	}
}
