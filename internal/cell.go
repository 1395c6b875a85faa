package internal

import "go.uber.org/zap"

// A Voronoi cell: the generating point and the boundary of its region, as a
// sequence of circumcenters.
//
// Cells of interior sites are closed, with the first vertex repeated at the
// end. A site on the convex hull loses its spokes to the supertriangle during
// trimming, so its boundary is an open chain whose ends are the circumcenters
// of trimmed triangles.
type Cell struct {
	Center   Point
	Vertices []Point
	edges    []Edge
}

// Zero length edges (two circumcenters rounding to the same point) carry no
// boundary and are silently discarded.
func (c *Cell) addEdge(e Edge) {
	if e.A.Equal(e.B) {
		return
	}
	c.edges = append(c.edges, e)
}

// Order the collected edges into a single chain of vertices. The chain starts
// with the last edge collected, and grows by repeatedly finding an edge that
// fits onto either end of it.
func (c *Cell) order() error {
	if len(c.edges) == 0 {
		return nil
	}
	e := c.edges[len(c.edges)-1]
	c.edges = c.edges[:len(c.edges)-1]
	vs := []Point{e.A, e.B}

	for len(c.edges) > 0 {
		detected := false
		for i, e := range c.edges {
			first, last := vs[0], vs[len(vs)-1]
			switch {
			case first.Equal(e.A):
				vs = append([]Point{e.B}, vs...)
			case first.Equal(e.B):
				vs = append([]Point{e.A}, vs...)
			case last.Equal(e.A):
				vs = append(vs, e.B)
			case last.Equal(e.B):
				vs = append(vs, e.A)
			default:
				continue
			}
			c.edges = append(c.edges[:i], c.edges[i+1:]...)
			detected = true
			break
		}

		// If no edge fits, the boundary is malformed or disconnected
		if !detected {
			return failf(ErrCellOrder, "cell %v: %d edges left over, chain %v", c.Center, len(c.edges), vs)
		}
	}
	c.Vertices = vs
	return nil
}

// Does the boundary close on itself?
func (c Cell) Closed() bool {
	n := len(c.Vertices)
	return n > 3 && c.Vertices[0].Equal(c.Vertices[n-1])
}

// The boundary without the repeated closing vertex, for consumers that close
// paths implicitly.
func (c Cell) Polygon() []Point {
	vs := c.Vertices
	if c.Closed() {
		vs = vs[:len(vs)-1]
	}
	return append([]Point(nil), vs...)
}

// Every edge of the trimmed triangulation with two triangles contributes the
// segment between their circumcenters to the cells of both its endpoints.
func (d *Diagram) buildCells() error {
	d.cells = make([]Cell, len(d.points))
	byCenter := make(map[Point][]int, len(d.points))
	for i, p := range d.points {
		d.cells[i].Center = p
		byCenter[p] = append(byCenter[p], i)
	}

	d.mesh.index.forEach(func(_ EdgeID, r *edgeRecord) {
		if r.triangleCount() != 2 {
			return
		}
		dual := Edge{
			A: d.mesh.Triangle(r.m).Circumcenter(),
			B: d.mesh.Triangle(r.n).Circumcenter(),
		}
		for _, endpoint := range []Point{r.A, r.B} {
			for _, i := range byCenter[endpoint] {
				d.cells[i].addEdge(dual)
			}
		}
	})

	closed := 0
	for i := range d.cells {
		if err := d.cells[i].order(); err != nil {
			return withState(err, d.state)
		}
		if d.cells[i].Closed() {
			closed++
		}
	}
	d.state = stateBuilt
	d.logger.Debug("built cells", zap.Int("cells", len(d.cells)), zap.Int("closed", closed))
	return nil
}
