package internal

import (
	"embed"
	"log"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file loads point sets from the svg fixtures. Every <circle> is a point
// (its center), and the canvas is the root element's width and height. This is
// not a real svg reader: transforms, units and viewBox are ignored. If anything
// goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Width, Height float64
	Points        []Point
}

func LoadFixture(name string) Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer file.Close()

	root, err := svgparser.Parse(file, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var result Fixture
	result.Width = parseFixtureFloat(name, root.Attributes["width"])
	result.Height = parseFixtureFloat(name, root.Attributes["height"])

	circles := root.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	for _, circle := range circles {
		x := parseFixtureFloat(name, circle.Attributes["cx"])
		y := parseFixtureFloat(name, circle.Attributes["cy"])
		result.Points = append(result.Points, NewPoint(x, y))
	}
	return result
}

func parseFixtureFloat(name, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid number %q in fixture %q: %v", value, name, err)
	}
	return f
}

// Random points on the canvas with no duplicates and no three points on a
// line. The supertriangle corners count as points for the collinearity check,
// so no point can land on any edge of the mesh during construction.
//
// Triples of input points are also kept away from collinear by minArea (twice
// the triangle area, in square units). A nearly flat triangle on the hull can
// be cut off along with the supertriangle, leaving a sliver of the hull
// uncovered.
func GeneralPosition(rng *rand.Rand, n int, width, height, minArea float64) []Point {
	super := SuperTriangle(width, height, SuperTriangleScale)
	corners := []Point{super.A, super.B, super.C}

	points := make([]Point, 0, n)
	for len(points) < n {
		p := Point{X: rng.Intn(int(width) + 1), Y: rng.Intn(int(height) + 1)}
		if acceptable(p, points, corners, minArea) {
			points = append(points, p)
		}
	}
	return points
}

func acceptable(p Point, points, corners []Point, minArea float64) bool {
	for _, q := range points {
		if q.Equal(p) {
			return false
		}
	}
	all := append(append([]Point(nil), points...), corners...)
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			limit := 0.0
			if i < len(points) && j < len(points) {
				limit = minArea
			}
			c := cross(all[i], all[j], p)
			if c < 0 {
				c = -c
			}
			if c <= limit {
				return false
			}
		}
	}
	return true
}
