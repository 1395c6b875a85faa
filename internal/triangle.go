package internal

import (
	"fmt"
	"math"
)

// A triangle is just its three vertices. The mesh is what gives a triangle an
// identity (a TriangleID) and ties it to the edge index; this type only
// answers geometric questions, so it can be handed out freely.
type Triangle struct {
	A, B, C Point
}

// Two triangles are equal if they have the same vertex set, in any rotation or
// reflection.
func (t Triangle) Equal(other Triangle) bool {
	a, b, c := other.A, other.B, other.C
	return (t.A.Equal(a) && t.B.Equal(b) && t.C.Equal(c)) ||
		(t.A.Equal(b) && t.B.Equal(c) && t.C.Equal(a)) ||
		(t.A.Equal(c) && t.B.Equal(a) && t.C.Equal(b)) ||
		(t.A.Equal(a) && t.B.Equal(c) && t.C.Equal(b)) ||
		(t.A.Equal(b) && t.B.Equal(a) && t.C.Equal(c)) ||
		(t.A.Equal(c) && t.B.Equal(b) && t.C.Equal(a))
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A.Equal(p) || t.B.Equal(p) || t.C.Equal(p)
}

// Zero area means the vertices are collinear (or coincident).
func (t Triangle) Area() float64 {
	return math.Abs(cross(t.A, t.B, t.C)) / 2
}

// Unrounded circumcircle. For a degenerate triangle there is no circle, and the
// radius is +Inf.
func (t Triangle) Circumcircle() (x, y, r float64) {
	ax, ay := float64(t.A.X), float64(t.A.Y)
	bx, by := float64(t.B.X), float64(t.B.Y)
	cx, cy := float64(t.C.X), float64(t.C.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return math.NaN(), math.NaN(), math.Inf(1)
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	x = (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	y = (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	r = math.Hypot(x-ax, y-ay)
	return x, y, r
}

// The circumcenter, rounded to the integer grid so that it can be compared with
// other points. Voronoi vertices are circumcenters, and rounding is what lets
// two cells agree on a shared vertex. A degenerate triangle yields the zero
// point.
func (t Triangle) Circumcenter() Point {
	x, y, r := t.Circumcircle()
	if math.IsInf(r, 1) {
		return Point{}
	}
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Does p lie strictly inside the circumcircle? This is the usual lifted 3×3
// determinant, with the sign corrected for the triangle's winding so that both
// orientations give the same answer.
func (t Triangle) CircContains(p Point) bool {
	row := func(q Point) (float64, float64, float64) {
		dx := float64(q.X - p.X)
		dy := float64(q.Y - p.Y)
		return dx, dy, dx*dx + dy*dy
	}
	a, b, c := row(t.A)
	d, e, f := row(t.B)
	g, h, i := row(t.C)

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	orientation := cross(t.A, t.B, t.C)
	if orientation < 0 {
		det = -det
	}
	return det > 0
}

// Does the (closed) triangle contain p? Points on an edge or at a vertex count
// as contained. A degenerate triangle contains nothing.
func (t Triangle) Contains(p Point) bool {
	if t.Area() == 0 {
		return false
	}
	return sameSide(p, t.A, t.B, t.C) &&
		sameSide(p, t.B, t.A, t.C) &&
		sameSide(p, t.C, t.A, t.B)
}

// Are p1 and p2 on the same side of the line through a and b? Being on the line
// counts as both sides.
func sameSide(p1, p2, a, b Point) bool {
	return cross(a, b, p1)*cross(a, b, p2) >= 0
}

// Find the vertex that is not an endpoint of e.
func (t Triangle) OppositeVertex(e Edge) (Point, error) {
	switch {
	case e.Equal(Edge{t.A, t.B}):
		return t.C, nil
	case e.Equal(Edge{t.B, t.C}):
		return t.A, nil
	case e.Equal(Edge{t.C, t.A}):
		return t.B, nil
	}
	return Point{}, failf(ErrUnrelated, "edge %v, triangle %v", e, t)
}

func (t Triangle) String() string {
	return fmt.Sprintf("{%v %v %v}", t.A, t.B, t.C)
}
