// Package lattice models the stabilizer lattice of a surface code, in both
// toric (periodic) and planar (open-boundary) geometries.
//
// What:
//
//   - Lattice owns two size×size grids of stabilizers — the Vertex (star) and
//     Plaquette sublattices — wired to each other through qubit edges.
//   - Stabilizers, edges and virtual boundary nodes live in flat indexed
//     slices; adjacency is plain index lookup, so there are no pointer cycles
//     and a built lattice can be read-shared or cloned freely.
//   - Edges carry the mutable per-round state: ErrorState (the mod-2 qubit
//     error bit) and InCorrection (set when a decoder toggled the edge).
//   - Planar lattices additionally own virtual boundary nodes, synthetic
//     endpoints that let a defect chain terminate at the open lattice edge.
//   - Measure recomputes every stabilizer's Active bit as the parity of its
//     incident edges' error states.
//
// Why:
//
//   - Surface-code decoding: the mwpm package consumes this model.
//   - Monte-Carlo trials: Clone gives each worker a fully disjoint lattice,
//     so independent trials decode concurrently with no locking.
//
// Geometry:
//
//   - Toric: every stabilizer has all four neighbor links; coordinates wrap
//     modulo Size.
//   - Planar: links that would cross the open boundary are absent, except for
//     the boundary-incident qubits — the rightmost Vertex column carries a
//     Right edge, and the topmost Plaquette row an Up edge, each terminating
//     off-lattice (link stabilizer index −1, edge index ≥ 0). Virtual boundary
//     nodes sit at column 0 / Size for the Vertex kind and at row −1 / Size−1
//     for the Plaquette kind.
//
// Complexity:
//
//   - New:     O(Size²) time and memory.
//   - Measure: O(Size²).
//   - Clone:   O(Size²).
//
// Errors:
//
//   - ErrBadSize: requested lattice size is below the 2×2 minimum.
//   - ErrUnknownCode: CodeType is neither Toric nor Planar.
//   - ErrNoSuchStab: a (kind,row,col) lookup is out of range.
//   - ErrNoSuchEdge: a direction carries no edge at the given stabilizer.
//
// Lifecycle: a Lattice is built once and persists across many decode rounds;
// only Active bits and edge state mutate. Two rounds must not run against the
// same instance concurrently — serialize them or Clone.
package lattice
