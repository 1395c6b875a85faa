package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// A triangle in the arena. Invalidated triangles stay in the arena (handles are
// never reused) but are no longer registered on any edge.
type meshTriangle struct {
	Triangle
	alive bool
}

// The mesh owns the triangle arena and the edge index that every triangle is
// registered in. All topology changes go through it.
type Mesh struct {
	triangles []meshTriangle
	index     *EdgeIndex
	epsilon   float64

	// Corners of the enclosing triangle, if any. Legality treats them as
	// points at infinity rather than by their coordinates.
	super []Point
}

func NewMesh(epsilon float64) *Mesh {
	return &Mesh{index: NewEdgeIndex(), epsilon: epsilon}
}

// Mark the corners of t as supertriangle vertices.
func (m *Mesh) setSuper(t Triangle) {
	m.super = []Point{t.A, t.B, t.C}
}

func (m *Mesh) isSuper(p Point) bool {
	for _, s := range m.super {
		if s.Equal(p) {
			return true
		}
	}
	return false
}

func (m *Mesh) Index() *EdgeIndex {
	return m.index
}

func (m *Mesh) Triangle(id TriangleID) Triangle {
	return m.triangles[id].Triangle
}

func (m *Mesh) Alive(id TriangleID) bool {
	return id >= 0 && int(id) < len(m.triangles) && m.triangles[id].alive
}

// Create a triangle and register its three edges. Zero area triangles are
// refused; they only arise from coincident or collinear input.
func (m *Mesh) newTriangle(a, b, c Point) (TriangleID, error) {
	t := Triangle{a, b, c}
	if t.Area() == 0 {
		return noTriangle, failf(ErrDegenerate, "zero area triangle %v", t)
	}

	id := TriangleID(len(m.triangles))
	m.triangles = append(m.triangles, meshTriangle{Triangle: t, alive: true})
	for _, e := range t.Edges() {
		if _, err := m.index.supplement(e, id); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Invalidate a triangle, in essence deleting it: each of its edges is deprived
// of it. Invalidating the same triangle twice fails.
func (m *Mesh) invalidate(id TriangleID) error {
	if !m.Alive(id) {
		return failf(ErrUnrelated, "triangle %d is not alive", id)
	}
	t := m.triangles[id].Triangle
	for _, e := range t.Edges() {
		if err := m.index.deprive(e, id); err != nil {
			return err
		}
	}
	m.triangles[id].alive = false
	return nil
}

// "Smash" a triangle into three pieces that all share the new vertex p, which
// is assumed to lie inside it. The original triangle is invalidated. As with
// flips, the caller swaps the pieces into its live set.
func (m *Mesh) smash(id TriangleID, p Point) ([3]TriangleID, error) {
	var pieces [3]TriangleID
	t := m.triangles[id].Triangle
	corners := [3][2]Point{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}

	// Check before touching the index, so that a point sitting on an edge or a
	// vertex leaves the mesh as it was.
	for _, corner := range corners {
		if (Triangle{corner[0], corner[1], p}).Area() == 0 {
			return pieces, failf(ErrDegenerate, "point %v lies on the boundary of triangle %v", p, t)
		}
	}

	if err := m.invalidate(id); err != nil {
		return pieces, err
	}
	for i, corner := range corners {
		var err error
		if pieces[i], err = m.newTriangle(corner[0], corner[1], p); err != nil {
			return pieces, err
		}
	}
	return pieces, nil
}

// Human readable triangle name for logs. Live triangles are green, invalidated
// ones red.
type triangleRef struct {
	mesh *Mesh
	id   TriangleID
}

func (m *Mesh) ref(id TriangleID) fmt.Stringer {
	return triangleRef{mesh: m, id: id}
}

func (r triangleRef) String() string {
	if r.id == noTriangle || int(r.id) >= len(r.mesh.triangles) {
		return r.id.String()
	}
	name := aurora.Green(r.id.String())
	if !r.mesh.Alive(r.id) {
		name = aurora.Red(r.id.String())
	}
	return fmt.Sprintf("%s%v", name, r.mesh.triangles[r.id].Triangle)
}
