package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AddNode appends a node at pos and returns its handle.
// Complexity: O(1) amortized.
func (a *Arena) AddNode(pos r3.Vec) NodeID {
	a.nodes = append(a.nodes, node{pos: pos})
	return NodeID(len(a.nodes) - 1)
}

// Len returns the number of nodes in the arena.
// Complexity: O(1).
func (a *Arena) Len() int { return len(a.nodes) }

// valid reports whether id refers to a record in this arena.
func (a *Arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// Position returns the node's position.
// Returns ErrNodeNotFound for an id outside the arena.
// Complexity: O(1).
func (a *Arena) Position(id NodeID) (r3.Vec, error) {
	if !a.valid(id) {
		return r3.Vec{}, ErrNodeNotFound
	}
	return a.nodes[id].pos, nil
}

// Vector3p returns the direction vector entering the node from its 3′
// neighbour, with ok=false while unassigned (or for an invalid id).
// Complexity: O(1).
func (a *Arena) Vector3p(id NodeID) (v r3.Vec, ok bool) {
	if !a.valid(id) || !a.nodes[id].has3p {
		return r3.Vec{}, false
	}
	return a.nodes[id].vec3p, true
}

// Vector5p returns the direction vector leaving the node toward its 5′
// neighbour, with ok=false while unassigned (or for an invalid id).
// Complexity: O(1).
func (a *Arena) Vector5p(id NodeID) (v r3.Vec, ok bool) {
	if !a.valid(id) || !a.nodes[id].has5p {
		return r3.Vec{}, false
	}
	return a.nodes[id].vec5p, true
}

// Angle returns the interior angle at the node in radians: the angle between
// the negated incoming 3′ vector and the outgoing 5′ vector, each normalized.
// ok is false until both direction vectors are assigned.
//
// The cosine is clamped to [-1, 1] before acos so floating-point overshoot on
// (anti)parallel vectors cannot produce NaN.
//
// Complexity: O(1).
func (a *Arena) Angle(id NodeID) (angle float64, ok bool) {
	if !a.valid(id) {
		return 0, false
	}
	n := a.nodes[id]
	if !n.has3p || !n.has5p {
		return 0, false
	}
	in := r3.Norm(n.vec3p)
	out := r3.Norm(n.vec5p)
	if in == 0 || out == 0 {
		return 0, false
	}
	cos := r3.Dot(r3.Scale(-1/in, n.vec3p), r3.Scale(1/out, n.vec5p))
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), true
}

// setVector3p assigns the node's incoming 3′ vector, exactly once.
// Only Edge construction calls this.
func (a *Arena) setVector3p(id NodeID, v r3.Vec) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	if a.nodes[id].has3p {
		return ErrFieldAlreadySet
	}
	a.nodes[id].vec3p = v
	a.nodes[id].has3p = true

	return nil
}

// setVector5p assigns the node's outgoing 5′ vector, exactly once.
// Only Edge construction calls this.
func (a *Arena) setVector5p(id NodeID, v r3.Vec) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	if a.nodes[id].has5p {
		return ErrFieldAlreadySet
	}
	a.nodes[id].vec5p = v
	a.nodes[id].has5p = true

	return nil
}
