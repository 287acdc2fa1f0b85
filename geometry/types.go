// Package geometry defines the Arena, NodeID, and Edge types, conversion constants,
// and sentinel errors for the geometry subpackage of
// github.com/lamr18/origami.
package geometry

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for geometry operations.
var (
	// ErrDegenerateEdge indicates an edge whose two endpoints coincide.
	ErrDegenerateEdge = errors.New("geometry: edge endpoints coincide")

	// ErrNodeNotFound indicates a NodeID outside the arena.
	ErrNodeNotFound = errors.New("geometry: node not found in arena")

	// ErrFieldAlreadySet indicates an attempt to overwrite a node direction
	// vector that another edge already assigned.
	ErrFieldAlreadySet = errors.New("geometry: node direction vector already set")

	// ErrNodeHint indicates Edge.Node received zero or two hints, or a hint
	// that does not occupy the named end of the edge.
	ErrNodeHint = errors.New("geometry: exactly one matching endpoint hint must be supplied")
)

// NucleotidesPerUnit converts a physical edge length (oxDNA distance units)
// into the number of nucleotides the edge can accommodate. It encodes the
// helix rise per base pair of the downstream physical model; keep it in sync
// with the oxdna package constants.
const NucleotidesPerUnit = 2.45

// ZAxis is the fixed reference axis against which perpendicular edge vectors
// are taken, constraining them to the xy plane.
var ZAxis = r3.Vec{Z: 1}

// NodeID identifies a node record inside an Arena.
type NodeID int

// NoNode is the absent NodeID, used where a hint may be omitted.
const NoNode NodeID = -1

// node is a single arena record: a position plus the two optional
// adjacent-edge direction vectors. Absence is an explicit flag, never a
// NaN or zero-vector sentinel.
type node struct {
	pos    r3.Vec
	vec3p  r3.Vec
	vec5p  r3.Vec
	has3p  bool
	has5p  bool
}

// Arena owns node records and enforces the write-once policy on their
// direction vectors. Edges reference nodes by NodeID, so a node shared by two
// edges is a single record, not two aliased copies.
type Arena struct {
	nodes []node
}

// NewArena creates an empty Arena.
// Complexity: O(1).
func NewArena() *Arena {
	return &Arena{}
}
