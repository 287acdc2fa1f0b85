// Package origami turns abstract polyhedral and lattice designs into
// nucleotide-level DNA helix placements ready for oxDNA molecular-dynamics
// input.
//
// 🚀 What is origami?
//
//	A small, deterministic geometry engine plus the plumbing around it:
//		• geometry — Node arena & Edge: lengths, orientation frames,
//		  interior angles and length→nucleotide conversion
//		• oxdna    — nucleotides, strands, the double-helix generator and
//		  oxDNA configuration/topology writers
//		• blockdna — alternating double-/single-stranded block systems and
//		  the (total, ds, ss) parameter sweep
//		• cmd/blockdna — the sweep CLI
//
// ✨ Why origami?
//
//   - Explicit geometry — every edge carries a full orientation frame
//     (unit vector, perpendicular reference, 3′/5′ node vectors)
//   - Fail-loud — degenerate edges and frame conflicts are sentinel errors,
//     never NaN vectors that surface three tools downstream
//   - Deterministic — seeded random sequences, reproducible sweeps
//
// A typical flow: build Edges over a shared geometry.Arena, ask each Edge for
// its strands via an oxdna.Generator, collect them into an oxdna.System and
// write the simulation input folder.
//
//	go get github.com/lamr18/origami
package origami
