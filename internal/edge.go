package internal

import (
	"fmt"
	"math"
)

// Angle sums within this many radians of π count as legal. Exact co-circular
// quadrilaterals are legal by definition, and float error in the angle
// computation can land on either side of π for them.
const LegalityEpsilon = 1e-9

// An unordered pair of points. As a value it is only a key; the triangles that
// share an edge are tracked by the EdgeIndex.
type Edge struct {
	A, B Point
}

func (e Edge) Equal(other Edge) bool {
	return (e.A.Equal(other.A) && e.B.Equal(other.B)) ||
		(e.A.Equal(other.B) && e.B.Equal(other.A))
}

func (e Edge) Length() float64 {
	return e.A.Distance(e.B)
}

func (e Edge) HasEndpoint(p Point) bool {
	return e.A.Equal(p) || e.B.Equal(p)
}

func (e Edge) String() string {
	return fmt.Sprintf("%v–%v", e.A, e.B)
}

// Angle at vertex v subtended by the segment ab, in [0, π].
func subtendedAngle(v, a, b Point) float64 {
	ux, uy := float64(a.X-v.X), float64(a.Y-v.Y)
	wx, wy := float64(b.X-v.X), float64(b.Y-v.Y)
	return math.Atan2(math.Abs(ux*wy-uy*wx), ux*wx+uy*wy)
}

// An edge is legal if it is on the boundary (fewer than two triangles) or if
// the angles opposite it in its two triangles sum to at most π. This is the
// inscribed angle form of the empty circumcircle test.
func (m *Mesh) isLegal(id EdgeID) (bool, error) {
	r := *m.index.record(id)
	if r.triangleCount() < 2 {
		return true, nil
	}

	v1, err := m.triangles[r.m].OppositeVertex(r.Edge)
	if err != nil {
		return false, err
	}
	v2, err := m.triangles[r.n].OppositeVertex(r.Edge)
	if err != nil {
		return false, err
	}

	if legal, ok := m.symbolicLegality(r.Edge, v1, v2); ok {
		return legal, nil
	}

	alpha := subtendedAngle(v1, r.A, r.B)
	gamma := subtendedAngle(v2, r.A, r.B)
	return alpha+gamma <= math.Pi+m.epsilon, nil
}

// Decide legality for quadrilaterals involving supertriangle corners, which
// behave as if infinitely far away: an edge between two input points is never
// flipped toward a corner, and an edge from a corner to an input point always
// gives way to a diagonal between two input points when the quadrilateral is
// convex. The second result is false when the geometric test applies.
func (m *Mesh) symbolicLegality(e Edge, v1, v2 Point) (bool, bool) {
	superA, superB := m.isSuper(e.A), m.isSuper(e.B)
	super1, super2 := m.isSuper(v1), m.isSuper(v2)
	switch {
	case !superA && !superB && (super1 || super2):
		return true, true
	case superA != superB && !super1 && !super2:
		return cross(v1, v2, e.A)*cross(v1, v2, e.B) >= 0, true
	}
	return false, false
}

// Flip the edge. Both of its triangles are invalidated and replaced by the two
// triangles on the other diagonal of their quadrilateral. The handle of that
// new diagonal is returned along with the two new triangles; the caller is
// responsible for swapping them into whatever live set it keeps.
func (m *Mesh) flip(id EdgeID) (EdgeID, [2]TriangleID, error) {
	var created [2]TriangleID
	r := *m.index.record(id)
	if !r.alive || r.triangleCount() != 2 {
		return 0, created, failf(ErrNotFlippable, "edge %v has %d triangles", r.Edge, r.triangleCount())
	}

	tm := m.triangles[r.m].Triangle
	oppm, err := tm.OppositeVertex(r.Edge)
	if err != nil {
		return 0, created, err
	}
	oppn, err := m.triangles[r.n].OppositeVertex(r.Edge)
	if err != nil {
		return 0, created, err
	}

	// The two remaining vertices of tm are the ends of the old diagonal. Each of
	// them gets a new triangle with the two opposite vertices.
	var first, second Point
	switch {
	case oppm.Equal(tm.A):
		first, second = tm.B, tm.C
	case oppm.Equal(tm.B):
		first, second = tm.A, tm.C
	case oppm.Equal(tm.C):
		first, second = tm.B, tm.A
	default:
		return 0, created, failf(ErrUnrelated, "cannot find opposite vertex %v in triangle %v", oppm, tm)
	}

	if err := m.invalidate(r.m); err != nil {
		return 0, created, err
	}
	if err := m.invalidate(r.n); err != nil {
		return 0, created, err
	}

	if created[0], err = m.newTriangle(oppm, oppn, first); err != nil {
		return 0, created, err
	}
	if created[1], err = m.newTriangle(oppm, oppn, second); err != nil {
		return 0, created, err
	}

	diagonal, ok := m.index.lookup(Edge{oppm, oppn})
	if !ok {
		return 0, created, failf(ErrUnrelated, "flipped diagonal %v missing from index", Edge{oppm, oppn})
	}
	return diagonal, created, nil
}
