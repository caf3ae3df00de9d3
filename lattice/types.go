// Package lattice defines core types and sentinel errors for the stabilizer
// lattice model of github.com/stabkit/stabkit.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrBadSize indicates a requested lattice size below the 2×2 minimum.
	ErrBadSize = errors.New("lattice: size must be at least 2")
	// ErrUnknownCode indicates a CodeType that is neither Toric nor Planar.
	ErrUnknownCode = errors.New("lattice: unknown code type")
	// ErrNoSuchStab indicates a (kind,row,col) stabilizer lookup out of range.
	ErrNoSuchStab = errors.New("lattice: no stabilizer at given position")
	// ErrNoSuchEdge indicates a direction that carries no edge at a stabilizer.
	ErrNoSuchEdge = errors.New("lattice: no edge in given direction")
)

// CodeType selects the boundary condition of the code: periodic (Toric)
// or open with physical edges (Planar).
type CodeType int

const (
	// Toric wraps both axes modulo Size; every stabilizer has four links.
	Toric CodeType = iota
	// Planar has open boundaries; defect chains may terminate at virtual
	// boundary nodes instead of pairing with another real defect.
	Planar
)

// String returns "toric" or "planar".
func (c CodeType) String() string {
	if c == Planar {
		return "planar"
	}

	return "toric"
}

// StabKind is the check type of a stabilizer operator.
type StabKind int

const (
	// Vertex is the star operator kind.
	Vertex StabKind = iota
	// Plaquette is the plaquette operator kind.
	Plaquette
)

// String returns "vertex" or "plaquette".
func (k StabKind) String() string {
	if k == Plaquette {
		return "plaquette"
	}

	return "vertex"
}

// Direction indexes the four neighbor links of a stabilizer.
// Up decreases the row, Down increases it; Left decreases the column,
// Right increases it.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right

	// NumDirections is the length of a neighbor-link array.
	NumDirections = 4
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Absent marks a missing stabilizer or edge index inside a Link.
const Absent int32 = -1

// Link is one neighbor slot of a stabilizer: the adjacent stabilizer of the
// same kind and the qubit edge crossed to reach it. Stab == Absent with
// Edge ≥ 0 is a boundary-incident qubit terminating off-lattice (planar).
// Stab == Absent and Edge == Absent means the link does not exist.
type Link struct {
	Stab int32 // index into Lattice.Stabs, or Absent
	Edge int32 // index into Lattice.Edges, or Absent
}

// Stabilizer is one parity-check operator, identified by (Kind,Row,Col)
// within its lattice. Active is the syndrome bit of the current round.
type Stabilizer struct {
	Kind     StabKind
	Row, Col int
	Active   bool
	// Neighbors is indexed by Direction; absent links hold {Absent, Absent}.
	Neighbors [NumDirections]Link
}

// Edge is one qubit. ErrorState is the mod-2 error bit (toggling twice is a
// no-op); InCorrection marks that the current decode toggled the edge.
type Edge struct {
	ErrorState   bool
	InCorrection bool
}

// Boundary is a virtual boundary node of a planar lattice: a synthetic
// endpoint at a fixed row or column, carrying no syndrome bit. For the
// Vertex kind it sits at Col 0 or Col Size; for the Plaquette kind at
// Row −1 or Row Size−1.
type Boundary struct {
	Kind     StabKind
	Row, Col int
}
