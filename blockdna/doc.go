// Package blockdna assembles "block DNA" systems: straight constructs of
// alternating double-stranded and single-stranded segments, and sweeps over
// (total, double-stranded, single-stranded) length combinations to emit one
// oxDNA input folder per valid combination.
//
// What:
//
//   - GenerateSystem(total, ds, ss) — builds one construct along x̂: the
//     total length is divided into total/(ds+ss) repeating units, each a
//     ds-base-pair duplex followed by an ss-base single strand. Consecutive
//     segments share geometry nodes, so joint angles are well-defined.
//   - Range / Sweep — enumerate three start/step/stop ranges, keep the
//     combinations where total is evenly divisible by ds+ss, generate each
//     system and optionally write it under a numbered folder.
//
// Why:
//
//   - This is the protocol layer: pure iteration and wiring over the
//     geometry and oxdna packages, useful for parameter scans of block-DNA
//     designs before committing simulation time.
//
// Errors:
//
//   - ErrBadLength   — a segment length is not positive.
//   - ErrIndivisible — total is not a whole number of (ds+ss) units.
//   - ErrBadRange    — a sweep range has a non-positive step.
//
// See examples in example_test.go.
package blockdna
