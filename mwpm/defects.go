package mwpm

import "github.com/stabkit/stabkit/lattice"

// Defects extracts the defect partition of one check kind: every stabilizer
// of that kind with an Active syndrome bit, scanned in row-major order.
//
// For the planar geometry each real defect is followed, after the full real
// block, by its virtual boundary companion on the nearest open edge: a
// vertex-kind defect in the left half of the lattice maps to the column-0
// boundary of its row, otherwise to column Size; a plaquette-kind defect
// maps to row −1 or row Size−1 of its column. The companion block preserves
// index correspondence — the real at position i owns the companion at
// position mid+i, where mid is the real count.
//
// Complexity: O(Size²).
func (d *Decoder) Defects(kind lattice.StabKind) []Node {
	lat := d.lat
	n := lat.Size

	var reals, virts []Node
	var y, x int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			idx := lat.StabIndex(kind, y, x)
			if !lat.Stabs[idx].Active {
				continue
			}
			reals = append(reals, Node{Tag: RealDefect, Index: idx, Row: y, Col: x})

			if lat.Code != lattice.Planar {
				continue
			}
			// Nearest-edge companion. 2·coord < Size keeps the halfway rule
			// exact for odd sizes as well.
			var brow, bcol int
			if kind == lattice.Vertex {
				brow, bcol = y, n
				if 2*x < n {
					bcol = 0
				}
			} else {
				brow, bcol = n-1, x
				if 2*y < n {
					brow = -1
				}
			}
			virts = append(virts, Node{
				Tag:   VirtualBoundary,
				Index: lat.BoundaryIndex(kind, brow, bcol),
				Row:   brow,
				Col:   bcol,
			})
		}
	}

	return append(reals, virts...)
}
