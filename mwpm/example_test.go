package mwpm_test

import (
	"fmt"

	"github.com/stabkit/stabkit/lattice"
	"github.com/stabkit/stabkit/mwpm"
)

// ExampleDecode runs one full round: inject a two-qubit error chain on a
// toric lattice, measure the syndrome, decode, and verify the lattice is
// restored.
func ExampleDecode() {
	l, err := lattice.New(8, lattice.Toric)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	// Error chain: two horizontal qubits on the vertex sublattice.
	_ = l.FlipAt(lattice.Vertex, 3, 2, lattice.Right)
	_ = l.FlipAt(lattice.Vertex, 3, 3, lattice.Right)
	l.Measure()

	res, err := mwpm.Decode(l)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}

	fmt.Println("pairs:", len(res.Pairs))
	fmt.Println("qubits toggled:", res.EdgesToggled)
	fmt.Println("residual errors:", l.ErrorCount())
	// Output:
	// pairs: 1
	// qubits toggled: 2
	// residual errors: 0
}

// ExampleDecoder_Decode decodes a planar lattice where the cheapest
// correction routes a defect off the open boundary.
func ExampleDecoder_Decode() {
	l, _ := lattice.New(4, lattice.Planar)
	_ = l.FlipAt(lattice.Vertex, 2, 3, lattice.Right) // boundary-incident qubit
	l.Measure()

	d, err := mwpm.New(l)
	if err != nil {
		fmt.Println("new failed:", err)
		return
	}
	res, err := d.Decode()
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}

	for _, p := range res.Pairs {
		fmt.Printf("defect (%d,%d) routed to boundary (%d,%d)\n", p.A.Row, p.A.Col, p.B.Row, p.B.Col)
	}
	fmt.Println("residual errors:", l.ErrorCount())
	// Output:
	// defect (2,3) routed to boundary (2,4)
	// residual errors: 0
}
