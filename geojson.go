package voronoi

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Convert the diagram into a GeoJSON feature collection, in canvas
// coordinates. Every feature has a "kind" property:
//
//   - "triangle": a Polygon per Delaunay triangle
//   - "cell": a Polygon per closed Voronoi cell, or a LineString for the open
//     chain around a hull site; "closed" says which, and "site" holds the
//     generating point
//   - "site": a Point per input point, with its "index" in the input
//
// Cells with fewer than two vertices have no geometry and are left out.
func FeatureCollection(d *Diagram) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, t := range d.Triangles() {
		ring := orb.Ring{toOrb(t.A), toOrb(t.B), toOrb(t.C), toOrb(t.A)}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["kind"] = "triangle"
		fc.Append(feature)
	}

	for _, cell := range d.Cells() {
		if len(cell.Vertices) < 2 {
			continue
		}
		var geometry orb.Geometry
		if cell.Closed() {
			ring := make(orb.Ring, len(cell.Vertices))
			for i, v := range cell.Vertices {
				ring[i] = toOrb(v)
			}
			geometry = orb.Polygon{ring}
		} else {
			line := make(orb.LineString, len(cell.Vertices))
			for i, v := range cell.Vertices {
				line[i] = toOrb(v)
			}
			geometry = line
		}
		feature := geojson.NewFeature(geometry)
		feature.Properties["kind"] = "cell"
		feature.Properties["closed"] = cell.Closed()
		feature.Properties["site"] = []int{cell.Center.X, cell.Center.Y}
		fc.Append(feature)
	}

	for i, p := range d.Points() {
		feature := geojson.NewFeature(toOrb(p))
		feature.Properties["kind"] = "site"
		feature.Properties["index"] = i
		fc.Append(feature)
	}
	return fc
}

func toOrb(p Point) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}
