// Package oxdna models the pieces of an oxDNA simulation input: nucleotides,
// strands, the double-helix generator, and the System container with its
// configuration/topology writers.
//
// What:
//
//   - Nucleotide — base identity plus a center of mass and the two oxDNA
//     orientation versors (a1 backbone-base, a3 stacking).
//   - Strand — an ordered 3′→5′ run of nucleotides.
//   - GenerateHelix — lays a B-form helix along a stacking axis from a start
//     position and an orientation frame; optionally the complementary
//     antiparallel strand too.
//   - System — collects strands inside a periodic box and writes the oxDNA
//     configuration (.conf) and topology (.top) files.
//
// Why:
//
//   - Higher layers (geometry.Edge, blockdna) only decide *where* helices go;
//     everything that knows oxDNA's unit system and file formats lives here.
//
// Determinism:
//
//   - Random base padding is driven by a caller-visible seed
//     (HelixOptions.Seed); the same seed always yields the same strands.
//
// Errors:
//
//   - ErrBasePairs       — requested base-pair count is not positive.
//   - ErrZeroOrientation — an orientation vector has zero length.
//   - ErrCollinearFrame  — backbone and stacking orientations are collinear.
//   - ErrBadBase         — a sequence contains a symbol outside A/C/G/T.
//   - ErrEmptySystem     — writing a System that holds no strands.
//
// See examples in example_test.go.
package oxdna
