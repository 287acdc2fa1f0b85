package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is a directed structural segment between two arena nodes, running from
// its 3′ node to its 5′ node. All geometric queries derive from the two node
// positions, which are immutable once set.
type Edge struct {
	arena *Arena
	v0    NodeID // 3′ end
	v1    NodeID // 5′ end
}

// NewEdge materializes two nodes at p0 and p1 in the arena and builds the
// edge between them. See NewEdgeBetween for the construction contract.
// Complexity: O(1).
func NewEdge(a *Arena, p0, p1 r3.Vec) (*Edge, error) {
	return NewEdgeBetween(a, a.AddNode(p0), a.AddNode(p1))
}

// NewEdgeBetween builds the edge from node v0 (3′ end) to node v1 (5′ end),
// reusing existing records so a node can be shared by two edges at a joint.
//
// Contract:
//   - both ids must belong to the arena, else ErrNodeNotFound;
//   - the two positions must differ, else ErrDegenerateEdge;
//   - stamps v0.vector_5p = (v1-v0) and v1.vector_3p = -(v1-v0); a field
//     already claimed by another edge fails with ErrFieldAlreadySet.
//
// Complexity: O(1).
func NewEdgeBetween(a *Arena, v0, v1 NodeID) (*Edge, error) {
	p0, err := a.Position(v0)
	if err != nil {
		return nil, fmt.Errorf("geometry: 3′ endpoint: %w", err)
	}
	p1, err := a.Position(v1)
	if err != nil {
		return nil, fmt.Errorf("geometry: 5′ endpoint: %w", err)
	}
	vec := r3.Sub(p1, p0)
	if vec == (r3.Vec{}) {
		return nil, ErrDegenerateEdge
	}
	if err = a.setVector5p(v0, vec); err != nil {
		return nil, fmt.Errorf("geometry: 3′ node %d: %w", v0, err)
	}
	if err = a.setVector3p(v1, r3.Scale(-1, vec)); err != nil {
		return nil, fmt.Errorf("geometry: 5′ node %d: %w", v1, err)
	}

	return &Edge{arena: a, v0: v0, v1: v1}, nil
}

// Nodes returns the edge's (3′, 5′) node handles.
// Complexity: O(1).
func (e *Edge) Nodes() (node3p, node5p NodeID) { return e.v0, e.v1 }

// Vector returns the edge vector, 3′ position to 5′ position.
// Complexity: O(1).
func (e *Edge) Vector() r3.Vec {
	p0, _ := e.arena.Position(e.v0)
	p1, _ := e.arena.Position(e.v1)
	return r3.Sub(p1, p0)
}

// Length returns the Euclidean length of the edge in oxDNA distance units.
// Complexity: O(1).
func (e *Edge) Length() float64 {
	return r3.Norm(e.Vector())
}

// UnitVector returns the normalized edge vector.
// Returns ErrDegenerateEdge if the length is zero; construction rejects that
// case, so the guard only fires on a hand-rolled zero-length Edge value.
// Complexity: O(1).
func (e *Edge) UnitVector() (r3.Vec, error) {
	v := e.Vector()
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, ErrDegenerateEdge
	}
	return r3.Scale(1/n, v), nil
}

// PerpVector returns unit × ẑ: a vector perpendicular to the edge, lying in
// the xy plane, used as the helix's backbone reference orientation.
//
// For an edge parallel to ẑ the cross product is the zero vector; that is
// returned as-is, and frame-building callers must handle it (the oxdna
// generator rejects it with ErrZeroOrientation).
//
// Complexity: O(1).
func (e *Edge) PerpVector() (r3.Vec, error) {
	u, err := e.UnitVector()
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Cross(u, ZAxis), nil
}

// NTLength returns the number of nucleotides the edge's physical length can
// accommodate: floor(length × NucleotidesPerUnit).
// Complexity: O(1).
func (e *Edge) NTLength() int {
	return int(math.Floor(e.Length() * NucleotidesPerUnit))
}

// Node returns the endpoint opposite to the one supplied.
//
// Exactly one of node3p/node5p must be given (the other passed as NoNode),
// and the given hint must occupy the named end of this edge: a node3p hint
// must be the edge's 3′ node, a node5p hint its 5′ node. Anything else fails
// with ErrNodeHint.
//
// Complexity: O(1).
func (e *Edge) Node(node3p, node5p NodeID) (NodeID, error) {
	switch {
	case node3p == NoNode && node5p == NoNode:
		return NoNode, fmt.Errorf("%w: got neither", ErrNodeHint)
	case node3p != NoNode && node5p != NoNode:
		return NoNode, fmt.Errorf("%w: got both", ErrNodeHint)
	case node3p != NoNode:
		if node3p != e.v0 {
			return NoNode, fmt.Errorf("%w: node %d is not this edge's 3′ end", ErrNodeHint, node3p)
		}
		return e.v1, nil
	default:
		if node5p != e.v1 {
			return NoNode, fmt.Errorf("%w: node %d is not this edge's 5′ end", ErrNodeHint, node5p)
		}
		return e.v0, nil
	}
}
