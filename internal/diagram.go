package internal

import (
	"math"

	"go.uber.org/zap"
)

// The supertriangle's circumradius is this multiple of width+height. Its
// incircle then has radius 1.5*(w+h), far outside the canvas rectangle.
const SuperTriangleScale = 3

// Construction runs through these states in order, once. They only exist to
// make logs and error messages say where a failure happened.
type state int

const (
	stateSeeded state = iota
	stateInserting
	stateLegalizing
	stateTrimmed
	stateBuilt
)

func (s state) String() string {
	switch s {
	case stateSeeded:
		return "seeded"
	case stateInserting:
		return "inserting"
	case stateLegalizing:
		return "legalizing"
	case stateTrimmed:
		return "trimmed"
	case stateBuilt:
		return "built"
	}
	return "unknown"
}

type Option func(*Diagram)

// Log construction progress at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Diagram) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Override the tolerance of the legality test (see LegalityEpsilon).
func WithLegalityEpsilon(epsilon float64) Option {
	return func(d *Diagram) {
		d.epsilon = epsilon
	}
}

// Override SuperTriangleScale.
func WithSuperTriangleScale(scale float64) Option {
	return func(d *Diagram) {
		d.scale = scale
	}
}

// A Delaunay triangulation of a point set together with its Voronoi dual.
//
// Construction is incremental: a supertriangle enclosing the canvas seeds the
// mesh, each point is inserted by smashing the triangle containing it into
// three, and the mesh is then legalized by Lawson flips until no illegal edge
// remains. Once all points are in, everything attached to the supertriangle's
// corners is trimmed away, and the cells are assembled from the circumcenters
// of the triangles on either side of each remaining edge.
type Diagram struct {
	width, height float64
	points        []Point

	mesh *Mesh
	// Triangles making up the current triangulation, in the order they were
	// created. The mesh arena also holds dead and trimmed triangles.
	live  []TriangleID
	super Triangle
	cells []Cell
	flips int
	state state

	epsilon float64
	scale   float64
	logger  *zap.Logger
}

// Compute the triangulation and Voronoi diagram of points inside the canvas
// [0,width]×[0,height]. Points are inserted in the order given. Any failure is
// fatal to the whole construction, and no partial diagram is returned.
func NewDiagram(width, height float64, points []Point, opts ...Option) (*Diagram, error) {
	d, err := newDiagram(width, height, points, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDiagram(width, height float64, points []Point, opts ...Option) (*Diagram, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, failf(ErrInvalidInput, "canvas must have positive finite size, got %vx%v", width, height)
	}
	if len(points) < 3 {
		return nil, failf(ErrInvalidInput, "need at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if !p.InBounds(width, height) {
			return nil, failf(ErrInvalidInput, "point %d %v is outside the %vx%v canvas", i, p, width, height)
		}
	}

	d := &Diagram{
		width:   width,
		height:  height,
		points:  append([]Point(nil), points...),
		epsilon: LegalityEpsilon,
		scale:   SuperTriangleScale,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.mesh = NewMesh(d.epsilon)
	return d, nil
}

func (d *Diagram) run() error {
	if err := d.seed(); err != nil {
		return err
	}
	for _, p := range d.points {
		if err := d.insert(p); err != nil {
			return err
		}
	}
	if err := d.trim(); err != nil {
		return err
	}
	return d.buildCells()
}

// An equilateral triangle centered on the canvas, big enough that no input
// point can fall outside it.
func SuperTriangle(width, height, scale float64) Triangle {
	cx, cy := width/2, height/2
	r := scale * (width + height)
	dx := r * math.Sqrt(3) / 2
	return Triangle{
		A: NewPoint(cx, cy-r),
		B: NewPoint(cx-dx, cy+r/2),
		C: NewPoint(cx+dx, cy+r/2),
	}
}

func (d *Diagram) seed() error {
	d.super = SuperTriangle(d.width, d.height, d.scale)
	d.mesh.setSuper(d.super)
	id, err := d.mesh.newTriangle(d.super.A, d.super.B, d.super.C)
	if err != nil {
		return err
	}
	d.live = append(d.live, id)
	d.state = stateSeeded
	d.logger.Debug("seeded supertriangle", zap.Stringer("triangle", d.mesh.ref(id)))
	return nil
}

// Insert one point: find the first live triangle containing it, smash that
// triangle, and legalize.
func (d *Diagram) insert(p Point) error {
	d.state = stateInserting

	found := -1
	for i, id := range d.live {
		if d.mesh.Triangle(id).Contains(p) {
			found = i
			break
		}
	}
	if found < 0 {
		return failf(ErrNotLocated, "%s: point %v", d.state, p)
	}

	container := d.live[found]
	pieces, err := d.mesh.smash(container, p)
	if err != nil {
		return withState(err, d.state)
	}
	d.live = append(d.live[:found], d.live[found+1:]...)
	d.live = append(d.live, pieces[:]...)
	d.logger.Debug("inserted point",
		zap.Stringer("point", p),
		zap.Stringer("container", d.mesh.ref(container)),
		zap.Int("live", len(d.live)),
	)
	return d.legalize()
}

// Lawson flip relaxation. Each pass looks at every edge in the index and flips
// the illegal ones; passes repeat until one finds nothing to flip. Edges are
// snapshotted at the start of a pass because flips create and remove edges.
// Only flips of edges between two input points are counted; the rest just move
// supertriangle scaffolding around.
func (d *Diagram) legalize() error {
	d.state = stateLegalizing
	index := d.mesh.index
	for pass := 1; ; pass++ {
		flipped, counted := 0, 0
		for _, id := range index.ids() {
			if !index.alive(id) {
				continue // Removed by an earlier flip in this pass
			}
			legal, err := d.mesh.isLegal(id)
			if err != nil {
				return withState(err, d.state)
			}
			if legal {
				continue
			}

			r := *index.record(id)
			_, created, err := d.mesh.flip(id)
			if err != nil {
				return withState(err, d.state)
			}
			d.dropLive(r.m, r.n)
			d.live = append(d.live, created[:]...)
			flipped++
			if !d.mesh.isSuper(r.A) && !d.mesh.isSuper(r.B) {
				counted++
			}
		}

		d.flips += counted
		d.logger.Debug("legalization pass",
			zap.Int("pass", pass),
			zap.Int("flips", flipped),
			zap.Int("counted", counted),
		)
		if flipped == 0 {
			return nil
		}
	}
}

// Remove everything attached to the supertriangle. Every edge with an endpoint
// outside the canvas touches one of its corners; the triangles on those edges
// leave the triangulation and the edges leave the index.
//
// The triangles themselves are not invalidated, so edges between two input
// points can still name a trimmed triangle as a neighbour. That is what gives
// hull sites their outward Voronoi edges.
func (d *Diagram) trim() error {
	index := d.mesh.index
	var remnants []Edge
	var failure error
	index.forEach(func(id EdgeID, r *edgeRecord) {
		if failure != nil {
			return
		}
		legal, err := d.mesh.isLegal(id)
		if err != nil {
			failure = err
			return
		}
		if !legal {
			failure = failf(ErrIllegalEdge, "edge %v", r.Edge)
			return
		}
		if !r.A.InBounds(d.width, d.height) || !r.B.InBounds(d.width, d.height) {
			remnants = append(remnants, r.Edge)
		}
	})
	if failure != nil {
		return withState(failure, d.state)
	}

	for _, e := range remnants {
		id, ok := index.lookup(e)
		if !ok {
			continue
		}
		r := index.record(id)
		d.dropLive(r.m, r.n)
		index.remove(e)
	}
	d.state = stateTrimmed
	d.logger.Debug("trimmed supertriangle",
		zap.Int("edges", len(remnants)),
		zap.Int("triangles", len(d.live)),
		zap.Int("flips", d.flips),
	)

	if len(d.live) == 0 {
		return failf(ErrDegenerate, "%s: no triangle between input points survives", d.state)
	}
	return nil
}

// Remove triangles from the live list, preserving the order of the rest.
// Handles that aren't in the list are ignored.
func (d *Diagram) dropLive(ids ...TriangleID) {
	kept := d.live[:0]
	for _, live := range d.live {
		drop := false
		for _, id := range ids {
			if live == id {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, live)
		}
	}
	d.live = kept
}

func (d *Diagram) Width() float64 {
	return d.width
}

func (d *Diagram) Height() float64 {
	return d.height
}

func (d *Diagram) Points() []Point {
	return append([]Point(nil), d.points...)
}

func (d *Diagram) SuperTriangle() Triangle {
	return d.super
}

// Number of Lawson flips of edges between two input points, over all
// insertions.
func (d *Diagram) Flips() int {
	return d.flips
}

// The triangles of the final triangulation.
func (d *Diagram) Triangles() []Triangle {
	result := make([]Triangle, len(d.live))
	for i, id := range d.live {
		result[i] = d.mesh.Triangle(id)
	}
	return result
}

// The edges left in the index after trimming: every edge of the triangulation,
// including hull edges that still name a trimmed triangle.
func (d *Diagram) Edges() []Edge {
	var result []Edge
	d.mesh.index.forEach(func(_ EdgeID, r *edgeRecord) {
		result = append(result, r.Edge)
	})
	return result
}

// One cell per input point, in input order.
func (d *Diagram) Cells() []Cell {
	return append([]Cell(nil), d.cells...)
}
