// Delaunay triangulation and Voronoi diagrams for Go.
//
// This package takes a set of points on a rectangular canvas and builds their
// Delaunay triangulation by incremental insertion with edge flips, then derives
// the Voronoi diagram as its dual: one cell per point, bounded by the
// circumcenters of the triangles around it.
//
// Coordinates are quantized to integers (by truncation) on the way in, and
// Voronoi vertices are rounded to integers. Duplicate points, collinear input
// and points that land exactly on an existing edge are reported as errors
// rather than handled.
package voronoi

import "github.com/osuushi/voronoi/internal"

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type Cell = internal.Cell
type Diagram = internal.Diagram
type Option = internal.Option

var (
	WithLogger             = internal.WithLogger
	WithLegalityEpsilon    = internal.WithLegalityEpsilon
	WithSuperTriangleScale = internal.WithSuperTriangleScale
)

// Errors returned by Compute. Test for them with errors.Is.
var (
	ErrEdgeOverfull = internal.ErrEdgeOverfull
	ErrNotFlippable = internal.ErrNotFlippable
	ErrUnrelated    = internal.ErrUnrelated
	ErrNotLocated   = internal.ErrNotLocated
	ErrIllegalEdge  = internal.ErrIllegalEdge
	ErrCellOrder    = internal.ErrCellOrder
	ErrDegenerate   = internal.ErrDegenerate
	ErrInvalidInput = internal.ErrInvalidInput
)

// Build a point, truncating the coordinates toward zero.
func NewPoint(x, y float64) Point {
	return internal.NewPoint(x, y)
}

// Compute the Delaunay triangulation and Voronoi diagram of points, which must
// all lie inside [0,width]×[0,height]. At least three points are required.
//
// Points are inserted in the order given, which affects the flip count but not
// the resulting triangulation for points in general position. Any failure
// aborts the whole computation.
func Compute(width, height float64, points []Point, opts ...Option) (*Diagram, error) {
	return internal.NewDiagram(width, height, points, opts...)
}

// The seed triangle Compute would use for a canvas of this size.
func SuperTriangle(width, height float64) Triangle {
	return internal.SuperTriangle(width, height, internal.SuperTriangleScale)
}
