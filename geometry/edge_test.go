package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lamr18/origami/geometry"
)

// mustEdge builds an edge between two fresh points or fails the test.
func mustEdge(t *testing.T, a *geometry.Arena, p0, p1 r3.Vec) *geometry.Edge {
	t.Helper()
	e, err := geometry.NewEdge(a, p0, p1)
	require.NoError(t, err)
	return e
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewEdge_Degenerate verifies coincident endpoints are rejected.
func TestNewEdge_Degenerate(t *testing.T) {
	a := geometry.NewArena()
	_, err := geometry.NewEdge(a, r3.Vec{}, r3.Vec{})
	assert.ErrorIs(t, err, geometry.ErrDegenerateEdge)

	p := r3.Vec{X: 1.5, Y: -2, Z: 0.25}
	_, err = geometry.NewEdge(a, p, p)
	assert.ErrorIs(t, err, geometry.ErrDegenerateEdge)
}

// TestNewEdgeBetween_UnknownNode verifies ids outside the arena are rejected.
func TestNewEdgeBetween_UnknownNode(t *testing.T) {
	a := geometry.NewArena()
	id := a.AddNode(r3.Vec{})

	_, err := geometry.NewEdgeBetween(a, id, geometry.NodeID(42))
	assert.ErrorIs(t, err, geometry.ErrNodeNotFound)
	_, err = geometry.NewEdgeBetween(a, geometry.NoNode, id)
	assert.ErrorIs(t, err, geometry.ErrNodeNotFound)
}

// TestNewEdge_StampsNodeVectors verifies the orientation contract: the 3′
// node receives the edge vector as vector_5p, the 5′ node its negation as
// vector_3p, exactly.
func TestNewEdge_StampsNodeVectors(t *testing.T) {
	a := geometry.NewArena()
	pA := r3.Vec{X: 1, Y: 1, Z: 1}
	pB := r3.Vec{X: 4, Y: -1, Z: 2}
	e := mustEdge(t, a, pA, pB)
	v0, v1 := e.Nodes()

	want := r3.Sub(pB, pA)

	got5p, ok := a.Vector5p(v0)
	require.True(t, ok, "3′ node must have vector_5p after construction")
	assert.Equal(t, want, got5p)

	got3p, ok := a.Vector3p(v1)
	require.True(t, ok, "5′ node must have vector_3p after construction")
	assert.Equal(t, r3.Scale(-1, want), got3p)

	// The opposite fields stay untouched.
	_, ok = a.Vector3p(v0)
	assert.False(t, ok)
	_, ok = a.Vector5p(v1)
	assert.False(t, ok)
}

// TestNewEdgeBetween_FieldAlreadySet verifies two edges both claiming the
// same direction field of a shared node fail loudly.
func TestNewEdgeBetween_FieldAlreadySet(t *testing.T) {
	a := geometry.NewArena()
	shared := a.AddNode(r3.Vec{})
	nb := a.AddNode(r3.Vec{X: 1})
	nc := a.AddNode(r3.Vec{Y: 1})

	// First edge treats shared as its 3′ end: claims vector_5p.
	_, err := geometry.NewEdgeBetween(a, shared, nb)
	require.NoError(t, err)

	// Second edge also treats shared as its 3′ end: conflict.
	_, err = geometry.NewEdgeBetween(a, shared, nc)
	assert.ErrorIs(t, err, geometry.ErrFieldAlreadySet)

	// Claiming the opposite end is the legal joint construction.
	nd := a.AddNode(r3.Vec{X: -1})
	_, err = geometry.NewEdgeBetween(a, nd, shared)
	assert.NoError(t, err)
}

//----------------------------------------------------------------------------//
// Geometric queries
//----------------------------------------------------------------------------//

// TestEdge_ReversalSymmetry checks Edge(A,B) against Edge(B,A):
// equal lengths, negated vectors, negated unit vectors.
func TestEdge_ReversalSymmetry(t *testing.T) {
	pA := r3.Vec{X: 0.3, Y: -1.2, Z: 2}
	pB := r3.Vec{X: -2, Y: 4, Z: 0.7}

	// Separate arenas: with one arena the two edges would fight over the
	// same direction fields of shared endpoints.
	eAB := mustEdge(t, geometry.NewArena(), pA, pB)
	eBA := mustEdge(t, geometry.NewArena(), pB, pA)

	assert.Equal(t, eAB.Length(), eBA.Length())
	assert.Equal(t, eAB.Vector(), r3.Scale(-1, eBA.Vector()))

	uAB, err := eAB.UnitVector()
	require.NoError(t, err)
	uBA, err := eBA.UnitVector()
	require.NoError(t, err)
	assert.InDelta(t, 0, r3.Norm(r3.Add(uAB, uBA)), 1e-15, "unit vectors must be exact opposites")
}

// TestEdge_UnitVectorNorm verifies |unit| == 1 for assorted edges.
func TestEdge_UnitVectorNorm(t *testing.T) {
	pairs := [][2]r3.Vec{
		{{}, {X: 1}},
		{{}, {X: 1, Y: 2, Z: 3}},
		{{X: -5, Y: 0.1}, {X: 2, Y: 2, Z: -9}},
		{{Z: 1e-3}, {Z: 2e-3}},
	}
	for _, p := range pairs {
		e := mustEdge(t, geometry.NewArena(), p[0], p[1])
		u, err := e.UnitVector()
		require.NoError(t, err)
		assert.InDelta(t, 1, r3.Norm(u), 1e-12)
	}
}

// TestEdge_PerpVector verifies orthogonality to the edge and confinement to
// the xy plane, plus the documented vertical-edge degeneracy.
func TestEdge_PerpVector(t *testing.T) {
	e := mustEdge(t, geometry.NewArena(), r3.Vec{}, r3.Vec{X: 1, Y: 2, Z: 3})
	u, err := e.UnitVector()
	require.NoError(t, err)
	perp, err := e.PerpVector()
	require.NoError(t, err)

	assert.InDelta(t, 0, r3.Dot(perp, u), 1e-12, "perp ⟂ unit")
	assert.Equal(t, 0.0, perp.Z, "perp must lie in the xy plane")

	// Vertical edge: unit ∥ ẑ, cross product collapses to zero.
	vert := mustEdge(t, geometry.NewArena(), r3.Vec{}, r3.Vec{Z: 4})
	perp, err = vert.PerpVector()
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{}, perp, "vertical edges yield the zero perpendicular, by contract")
}

// TestEdge_NTLength pins the length→nucleotide conversion.
func TestEdge_NTLength(t *testing.T) {
	cases := []struct {
		name   string
		length float64
		want   int
	}{
		{"TwoUnits", 2.0, 4},    // floor(4.9)
		{"FourPointOne", 4.1, 10}, // floor(10.045)
		{"One", 1.0, 2},         // floor(2.45)
		{"Short", 0.1, 0},       // floor(0.245)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEdge(t, geometry.NewArena(), r3.Vec{}, r3.Vec{X: tc.length})
			assert.Equal(t, tc.want, e.NTLength())
		})
	}
}

// TestEdge_NTLengthMonotone verifies nt_length never decreases with length.
func TestEdge_NTLengthMonotone(t *testing.T) {
	prev := 0
	for l := 0.1; l < 8; l += 0.1 {
		e := mustEdge(t, geometry.NewArena(), r3.Vec{}, r3.Vec{X: l})
		nt := e.NTLength()
		assert.GreaterOrEqual(t, nt, prev, "nt_length must be monotone in length (l=%v)", l)
		prev = nt
	}
}

//----------------------------------------------------------------------------//
// Opposite-node lookup
//----------------------------------------------------------------------------//

// TestEdge_Node covers the exactly-one-hint contract and the opposite lookup.
func TestEdge_Node(t *testing.T) {
	a := geometry.NewArena()
	e := mustEdge(t, a, r3.Vec{}, r3.Vec{X: 2})
	v0, v1 := e.Nodes()
	stranger := a.AddNode(r3.Vec{Y: 9})

	t.Run("NeitherHint", func(t *testing.T) {
		_, err := e.Node(geometry.NoNode, geometry.NoNode)
		assert.ErrorIs(t, err, geometry.ErrNodeHint)
	})
	t.Run("BothHints", func(t *testing.T) {
		_, err := e.Node(v0, v1)
		assert.ErrorIs(t, err, geometry.ErrNodeHint)
	})
	t.Run("Opposite3p", func(t *testing.T) {
		got, err := e.Node(v0, geometry.NoNode)
		require.NoError(t, err)
		assert.Equal(t, v1, got)
	})
	t.Run("Opposite5p", func(t *testing.T) {
		got, err := e.Node(geometry.NoNode, v1)
		require.NoError(t, err)
		assert.Equal(t, v0, got)
	})
	t.Run("WrongEnd", func(t *testing.T) {
		// v1 is the 5′ node; offering it as a 3′ hint must fail.
		_, err := e.Node(v1, geometry.NoNode)
		assert.ErrorIs(t, err, geometry.ErrNodeHint)
	})
	t.Run("ForeignNode", func(t *testing.T) {
		_, err := e.Node(stranger, geometry.NoNode)
		assert.ErrorIs(t, err, geometry.ErrNodeHint)
	})
}
