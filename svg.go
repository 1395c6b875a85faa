package voronoi

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

// Which layers WriteSVG draws.
type SVGStyle struct {
	Triangles bool
	Cells     bool
	Sites     bool
}

var DefaultSVGStyle = SVGStyle{Triangles: true, Cells: true, Sites: true}

const (
	triangleStyle = "fill:yellow;fill-opacity:0.25;stroke:red;stroke-width:1"
	cellStyle     = "fill:none;stroke:green;stroke-width:2"
	siteStyle     = "fill:red;stroke:none"
)

// svgo ignores write errors, so keep the first one here.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, nil
}

// Write the diagram as an SVG document the size of its canvas. The y axis
// points up, as it does for the input coordinates.
func WriteSVG(w io.Writer, d *Diagram, style SVGStyle) error {
	ew := &errWriter{w: w}
	width, height := int(d.Width()), int(d.Height())

	s := svg.New(ew)
	s.Start(width, height)
	s.Gtransform(fmt.Sprintf("translate(0,%d) scale(1,-1)", height))

	if style.Triangles {
		s.Gstyle(triangleStyle)
		for _, t := range d.Triangles() {
			s.Polygon([]int{t.A.X, t.B.X, t.C.X}, []int{t.A.Y, t.B.Y, t.C.Y})
		}
		s.Gend()
	}

	if style.Cells {
		s.Gstyle(cellStyle)
		for _, cell := range d.Cells() {
			xs, ys := coordinates(cell.Polygon())
			switch {
			case len(xs) < 2:
				continue
			case cell.Closed():
				s.Polygon(xs, ys)
			default:
				s.Polyline(xs, ys)
			}
		}
		s.Gend()
	}

	if style.Sites {
		s.Gstyle(siteStyle)
		for _, p := range d.Points() {
			s.Circle(p.X, p.Y, 3)
		}
		s.Gend()
	}

	s.Gend()
	s.End()
	return errors.Wrap(ew.err, "writing svg")
}

func coordinates(points []Point) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
