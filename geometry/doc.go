// Package geometry is the edge/node engine that turns pairs of lattice
// vertices into DNA helix placements.
//
// What:
//
//   - Arena owns Node records and hands out NodeID handles; a node may be
//     shared by two edges meeting at a joint.
//   - Each Node carries a position plus two optional adjacent-edge direction
//     vectors (vector_3p arriving from the 3′ side, vector_5p leaving toward
//     the 5′ side) and a derived interior angle.
//   - Edge owns an ordered (3′, 5′) pair of NodeIDs and derives the edge
//     vector, length, unit vector, perpendicular reference vector, and the
//     nucleotide count the physical length can accommodate.
//   - Edge.Strand converts the geometry into a helix-generation request
//     against an injectable HelixGenerator (oxdna.Generator in production).
//
// Why:
//
//   - This is the only non-trivial algorithmic content between an abstract
//     polyhedral design and oxDNA input: unit conventions, joint angles, and
//     the length→nucleotide conversion all live here and nowhere else.
//
// Conventions:
//
//   - An Edge is directional from its first node (3′ end) to its second
//     (5′ end). Construction stamps vector_5p on the 3′ node and the negated
//     edge vector as vector_3p on the 5′ node; each direction field is
//     write-once, so two edges sharing a node must claim opposite ends.
//   - PerpVector is unit × ẑ and is therefore the zero vector for edges
//     parallel to ẑ. Callers building an orientation frame from a vertical
//     edge must handle that case; the oxdna generator rejects it with
//     ErrZeroOrientation.
//
// Errors:
//
//   - ErrDegenerateEdge  — the two endpoints coincide (zero-length edge).
//   - ErrNodeNotFound    — a NodeID does not belong to the arena.
//   - ErrFieldAlreadySet — an edge would overwrite a node's direction vector.
//   - ErrNodeHint        — Edge.Node received zero or two hints, or a hint
//     that does not occupy the named end of the edge.
//
// All operations are synchronous and deterministic; the only mutations are
// the two write-once direction-vector assignments at Edge construction.
//
// See examples in example_test.go.
package geometry
