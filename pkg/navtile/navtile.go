package navtile

import (
	"github.com/beetlebugorg/navtile/internal/pipeline"
)

// Point is a longitude/latitude pair in WGS-84 decimal degrees.
//
// Coordinates follow GeoJSON convention: longitude first.
type Point struct {
	Lon float64
	Lat float64
}

// Ring is an ordered sequence of points forming a polygon boundary (exterior)
// or hole (interior).
//
// Rings handed to the pipeline do not need to be pre-closed; every ring
// produced by the pipeline is closed (first point equals last point) and has
// at least 3 distinct points.
type Ring []Point

// Polygon is one exterior ring plus zero or more interior rings (holes).
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

// GeometryType identifies the variant stored in a Geometry.
type GeometryType int

const (
	// GeometryTypeNone indicates a feature with no spatial representation.
	GeometryTypeNone GeometryType = iota

	// GeometryTypeLineString is a bare polyline, typically transient data
	// from a source that has not yet been resolved into area features.
	GeometryTypeLineString

	// GeometryTypePolygon is an area with optional holes.
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "None"
	}
}

// Geometry is the spatial representation of a feature: a tagged variant where
// exactly one of Polygon or Line is meaningful, selected by Type.
type Geometry struct {
	Type GeometryType

	// Polygon is set when Type == GeometryTypePolygon.
	Polygon Polygon

	// Line is set when Type == GeometryTypeLineString.
	Line Ring
}

// Feature is a geometry plus an opaque property bag.
//
// Properties carry provenance and debug metadata only (for example the
// "merged": true marker written by the polygon merger); they never affect
// the geometric behavior of the pipeline.
type Feature struct {
	Geometry   Geometry
	Properties map[string]interface{}
}

// Collection is an ordered sequence of features, the unit passed between
// pipeline stages and the input to the NVTL encoder.
//
// Order is not semantically meaningful (stages may reorder features) but is
// deterministic for any given input, so repeated runs are reproducible.
type Collection struct {
	Features []Feature
}

// PointCount returns the total number of coordinate points in the
// collection, counting every ring and line. Useful for progress reporting
// and for sizing comparisons between LOD levels.
func (c Collection) PointCount() int {
	total := 0
	for _, f := range c.Features {
		switch f.Geometry.Type {
		case GeometryTypePolygon:
			total += len(f.Geometry.Polygon.Exterior)
			for _, hole := range f.Geometry.Polygon.Interiors {
				total += len(hole)
			}
		case GeometryTypeLineString:
			total += len(f.Geometry.Line)
		}
	}
	return total
}

// CloseRing returns a closed copy of the ring: if the last point is not
// bitwise equal to the first, the first point is appended. Already-closed
// rings are returned unchanged.
func CloseRing(ring Ring) Ring {
	closed := pipeline.CloseRing(toInternalRing(ring))
	return fromInternalRing(closed)
}

// toInternal converts the public collection to the internal pipeline model.
func toInternal(c Collection) pipeline.Collection {
	features := make([]pipeline.Feature, len(c.Features))
	for i, f := range c.Features {
		features[i] = pipeline.Feature{
			Geometry:   toInternalGeometry(f.Geometry),
			Properties: f.Properties,
		}
	}
	return pipeline.Collection{Features: features}
}

// fromInternal converts an internal pipeline collection to the public model.
func fromInternal(c pipeline.Collection) Collection {
	features := make([]Feature, len(c.Features))
	for i, f := range c.Features {
		features[i] = Feature{
			Geometry:   fromInternalGeometry(f.Geometry),
			Properties: f.Properties,
		}
	}
	return Collection{Features: features}
}

func toInternalGeometry(g Geometry) pipeline.Geometry {
	switch g.Type {
	case GeometryTypePolygon:
		poly := pipeline.Polygon{Exterior: toInternalRing(g.Polygon.Exterior)}
		if len(g.Polygon.Interiors) > 0 {
			poly.Interiors = make([]pipeline.Ring, len(g.Polygon.Interiors))
			for i, hole := range g.Polygon.Interiors {
				poly.Interiors[i] = toInternalRing(hole)
			}
		}
		return pipeline.Geometry{Type: pipeline.GeometryTypePolygon, Polygon: poly}
	case GeometryTypeLineString:
		return pipeline.Geometry{Type: pipeline.GeometryTypeLineString, Line: toInternalRing(g.Line)}
	default:
		return pipeline.Geometry{}
	}
}

func fromInternalGeometry(g pipeline.Geometry) Geometry {
	switch g.Type {
	case pipeline.GeometryTypePolygon:
		poly := Polygon{Exterior: fromInternalRing(g.Polygon.Exterior)}
		if len(g.Polygon.Interiors) > 0 {
			poly.Interiors = make([]Ring, len(g.Polygon.Interiors))
			for i, hole := range g.Polygon.Interiors {
				poly.Interiors[i] = fromInternalRing(hole)
			}
		}
		return Geometry{Type: GeometryTypePolygon, Polygon: poly}
	case pipeline.GeometryTypeLineString:
		return Geometry{Type: GeometryTypeLineString, Line: fromInternalRing(g.Line)}
	default:
		return Geometry{}
	}
}

func toInternalRing(r Ring) pipeline.Ring {
	out := make(pipeline.Ring, len(r))
	for i, p := range r {
		out[i] = pipeline.Point{Lon: p.Lon, Lat: p.Lat}
	}
	return out
}

func fromInternalRing(r pipeline.Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = Point{Lon: p.Lon, Lat: p.Lat}
	}
	return out
}
