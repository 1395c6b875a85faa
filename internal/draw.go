package internal

import (
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the canvas so that hull cells running off the edge stay
// visible
const drawPadding = 40

// Render the diagram into a gg context. The canvas rectangle is scaled by
// scale, with the origin at the bottom left.
func (d *Diagram) render(scale float64) *gg.Context {
	width := int(scale*d.width) + drawPadding*2
	height := int(scale*d.height) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	// Canvas outline
	c.SetLineWidth(1)
	c.DrawRectangle(0, 0, d.width, d.height)
	c.SetRGB(0.3, 0.3, 0.3)
	c.Stroke()

	// Fill all the triangles, then stroke them
	for _, t := range d.Triangles() {
		t.trace(c)
		c.SetRGBA(1, 1, 0, 0.25)
		c.Fill()
	}
	for _, t := range d.Triangles() {
		t.trace(c)
		c.SetRGB(1, 0, 0)
		c.Stroke()
	}

	c.SetLineWidth(2)
	for _, cell := range d.cells {
		if len(cell.Vertices) < 2 {
			continue
		}
		c.MoveTo(float64(cell.Vertices[0].X), float64(cell.Vertices[0].Y))
		for _, v := range cell.Vertices[1:] {
			c.LineTo(float64(v.X), float64(v.Y))
		}
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	for _, p := range d.points {
		c.DrawCircle(float64(p.X), float64(p.Y), 3/scale)
		c.SetRGB(1, 0, 0)
		c.Fill()
	}
	return c
}

func (t Triangle) trace(c *gg.Context) {
	c.MoveTo(float64(t.A.X), float64(t.A.Y))
	c.LineTo(float64(t.B.X), float64(t.B.Y))
	c.LineTo(float64(t.C.X), float64(t.C.Y))
	c.ClosePath()
}

// Write a PNG snapshot of the triangulation and cells.
func (d *Diagram) DrawPNG(w io.Writer, scale float64) error {
	return errors.Wrap(d.render(scale).EncodePNG(w), "encoding png")
}

func (d *Diagram) SavePNG(path string, scale float64) error {
	return errors.Wrapf(d.render(scale).SavePNG(path), "saving %s", path)
}

// Draw the diagram as an inline terminal image (iTerm only) on w.
func (d *Diagram) Preview(w io.Writer, scale float64) error {
	return errors.Wrap(imgcat.CatImage(d.render(scale).Image(), w), "previewing")
}
