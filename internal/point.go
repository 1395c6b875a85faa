package internal

import (
	"fmt"
	"math"
)

// Points are quantized to integers when they are built. The quantization is a
// truncation toward zero (not rounding), and it is lossy on purpose: equality,
// edge bucketing and the trim bounds check all compare integer coordinates, so
// two inputs that truncate to the same point are the same point.
type Point struct {
	X, Y int
}

func NewPoint(x, y float64) Point {
	return Point{X: int(x), Y: int(y)}
}

func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Is the point inside the closed rectangle [0,w]×[0,h]?
func (p Point) InBounds(w, h float64) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= 0 && x <= w && y >= 0 && y <= h
}

// Cross product of (b - a) and (c - a). Positive when a, b, c wind
// counterclockwise in a y-up frame.
func cross(a, b, c Point) float64 {
	return float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
}
