package internal

// This contains no actual tests. It is just a helper for checking the mesh and
// the diagram built from it.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mesh invariants that hold after every insertion:
//  1. Every indexed edge has one or two triangles.
//  2. Every edge with two triangles is legal.
//  3. Every live triangle is alive in the arena and has nonzero area.
func AssertValidMesh(t *testing.T, d *Diagram) {
	index := d.mesh.Index()
	index.forEach(func(id EdgeID, r *edgeRecord) {
		count := r.triangleCount()
		require.True(t, count == 1 || count == 2, "edge %v has %d triangles", r.Edge, count)
		legal, err := d.mesh.isLegal(id)
		require.NoError(t, err)
		require.True(t, legal, "illegal edge %v", r.Edge)
	})
	for _, id := range d.live {
		require.True(t, d.mesh.Alive(id), "dead triangle %d in live list", id)
		require.NotZero(t, d.mesh.Triangle(id).Area())
	}
}

// Checks on a finished diagram:
//  1. The mesh invariants above.
//  2. No input point is inside the circumcircle of any triangle.
//  3. Every triangle vertex is an input point.
//  4. There is one cell per point, centered on it, and every cell whose site is
//     surrounded by triangles is closed around its site.
//  5. No cell boundary crosses itself, whether closed or open.
func AssertValidDiagram(t *testing.T, d *Diagram) {
	AssertValidMesh(t, d)

	points := make(map[Point]bool)
	for _, p := range d.points {
		points[p] = true
	}
	for _, tri := range d.Triangles() {
		for _, v := range []Point{tri.A, tri.B, tri.C} {
			require.True(t, points[v], "triangle %v has a vertex that is not an input point", tri)
		}
		x, y, r := tri.Circumcircle()
		for _, p := range d.points {
			distance := math.Hypot(float64(p.X)-x, float64(p.Y)-y)
			assert.False(t, distance < r*(1-1e-6), "%v is inside the circumcircle of %v", p, tri)
		}
	}

	cells := d.Cells()
	require.Len(t, cells, len(d.points))
	for i, cell := range cells {
		assert.Equal(t, d.points[i], cell.Center)
		assert.False(t, selfIntersecting(cell), "cell %v crosses itself: %v", cell.Center, cell.Vertices)
		if !surrounded(d, cell.Center) {
			continue
		}
		if assert.True(t, cell.Closed(), "cell %v is not closed: %v", cell.Center, cell.Vertices) {
			assert.True(t, pointInPolygon(cell.Center, cell.Polygon()), "cell %v does not contain its site: %v", cell.Center, cell.Vertices)
		}
	}
}

// Is every edge at p shared by two triangles of the final triangulation?
func surrounded(d *Diagram, p Point) bool {
	live := make(map[TriangleID]bool, len(d.live))
	for _, id := range d.live {
		live[id] = true
	}
	result := true
	d.mesh.Index().forEach(func(_ EdgeID, r *edgeRecord) {
		if r.HasEndpoint(p) && !(live[r.m] && live[r.n]) {
			result = false
		}
	})
	return result
}

// Even-odd ray casting.
func pointInPolygon(p Point, polygon []Point) bool {
	x, y := float64(p.X), float64(p.Y)
	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		xi, yi := float64(polygon[i].X), float64(polygon[i].Y)
		xj, yj := float64(polygon[j].X), float64(polygon[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Does any segment of the cell boundary properly cross a non-adjacent one?
// Closed cells are checked as a polygon, so the closing segment counts and is
// adjacent to the first.
func selfIntersecting(cell Cell) bool {
	vs := cell.Polygon()
	closed := cell.Closed()
	var segments []Edge
	for i := 0; i+1 < len(vs); i++ {
		segments = append(segments, Edge{vs[i], vs[i+1]})
	}
	if closed {
		segments = append(segments, Edge{vs[len(vs)-1], vs[0]})
	}
	for i := range segments {
		for j := i + 2; j < len(segments); j++ {
			if closed && i == 0 && j == len(segments)-1 {
				continue
			}
			if segmentsCross(segments[i], segments[j]) {
				return true
			}
		}
	}
	return false
}

// Proper crossing: each segment has the ends of the other strictly on
// opposite sides.
func segmentsCross(e, f Edge) bool {
	straddles := func(a, b float64) bool {
		return (a > 0 && b < 0) || (a < 0 && b > 0)
	}
	return straddles(cross(f.A, f.B, e.A), cross(f.A, f.B, e.B)) &&
		straddles(cross(e.A, e.B, f.A), cross(e.A, e.B, f.B))
}
