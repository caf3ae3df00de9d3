// Package mwpm decodes surface-code syndromes by minimum-weight perfect
// matching: active stabilizers are paired at minimal total lattice distance,
// and each pair is annihilated by toggling the qubits along a shortest
// rectilinear path between its members.
//
// What:
//
//   - Decoder wraps one lattice.Lattice and runs decode rounds against it.
//     The geometry (toric or planar) is read from the lattice at construction
//     and frozen, so a geometry mismatch cannot arise mid-decode.
//   - A round runs the pipeline: extract defects per check kind → build the
//     weighted defect graph → invoke the matching oracle → drop
//     virtual-virtual pairs (planar) → apply corrections, mutating edge state.
//   - The oracle is pluggable: any implementation of Oracle substitutes for
//     the built-in adapter over package matching without changing results
//     beyond tie-breaking.
//
// Geometry:
//
//   - Toric: defect distance is the Manhattan distance on the torus —
//     min(wy, Size−wy) + min(wx, Size−wx) with deltas taken modulo Size. The
//     defect graph is complete within each check-kind partition.
//   - Planar: distance is unwrapped Manhattan among real defects. Every real
//     defect additionally gets one virtual boundary companion on its nearest
//     open edge; the companion edge costs the perpendicular distance to that
//     boundary, and every virtual-virtual pair costs zero, so the oracle may
//     absorb any defect into the boundary for free. The graph is sparse: a
//     real defect connects only to other reals and to its own companion.
//
// Correction:
//
//   - A matched real-real pair is corrected along an L-shaped path: the
//     vertical leg walks from the first member, the horizontal leg from the
//     second, meeting where row and column align. Equal-length alternatives
//     resolve to Down and Left.
//   - A real-boundary pair applies only the perpendicular leg toward the
//     boundary; a zero-length leg is a no-op.
//   - Each traversed qubit toggles ErrorState (mod 2) and is flagged
//     InCorrection for the round.
//
// Errors:
//
//   - ErrNilLattice: New received a nil lattice.
//   - ErrUnknownCode: the lattice's CodeType is unrecognized (config time).
//   - ErrIncompleteMatching: the oracle failed to cover every defect; the
//     partial matching is NOT applied.
//   - ErrMissingNeighbor: a correction path ran off a malformed lattice.
//
// Concurrency: a round is a synchronous, single-threaded pipeline. Distinct
// lattices decode concurrently with no shared state; rounds against one
// lattice must be serialized by the caller (or decode a Clone).
package mwpm
