// Package stabkit decodes syndromes of stabilizer lattice quantum
// error-correcting codes — the toric and planar surface codes — by
// minimum-weight perfect matching.
//
// 🚀 What is stabkit?
//
//	A small, deterministic library that brings together:
//		• lattice/  — the stabilizer lattice model: toric (periodic) and planar
//		  (open-boundary) geometries, flat indexed stabilizer/edge arrays,
//		  syndrome measurement, cloning for concurrent trials
//		• matching/ — the minimum-weight perfect-matching oracle: an exact
//		  bitmask-DP backend, a global-greedy heap backend, and an Auto dispatcher
//		• mwpm/     — the decoding pipeline: defect extraction, geometry-aware
//		  edge weights (periodic Manhattan for toric; bounded Manhattan plus
//		  virtual boundary nodes for planar), oracle invocation, boundary
//		  filtering, and correction application by lattice path-walking
//
// ✨ Why choose stabkit?
//
//   - Deterministic – no randomness anywhere in the decode path; identical
//     inputs yield identical corrections
//   - Rock-solid guarantees – sentinel errors, strict validation, in-code docs
//   - Pluggable oracle – swap in any exact matcher (e.g. a blossom binding)
//     behind a one-method interface without touching the pipeline
//   - Concurrency-friendly – distinct lattices own disjoint state and decode
//     in parallel with no locking
//
// Quick ASCII example (one toric unit cell):
//
//	    |       |
//	- Star  -  Q_0 -
//	    |       |
//	-  Q_1  - Plaq  -
//	    |       |
//
//	Star (vertex) and Plaq (plaquette) operators check the parity of their
//	incident qubits Q; a triggered check is a defect the decoder must pair.
//
// A decode round runs: extract defects → build weighted defect graph →
// match → (drop virtual-virtual pairs, planar only) → walk corrections,
// toggling qubit error states mod 2 along shortest rectilinear paths.
//
//	go get github.com/stabkit/stabkit/mwpm
package stabkit
