// Package pipeline implements the coastline preparation stages: tile-boundary
// artifact filtering, landmass merging, and multi-level Douglas-Peucker
// simplification.
//
// Each stage is a pure transformation from one Collection to a new Collection.
// Stages never mutate their input, so the same merged collection can feed
// every LOD level concurrently.
package pipeline

// Point is a longitude/latitude pair in WGS-84 decimal degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Ring is an ordered sequence of points forming a polygon boundary.
//
// A ring produced by any pipeline stage is closed: its first and last points
// are bitwise equal. Open rings are only tolerated transiently during import
// and must be closed with CloseRing before reaching the merger or encoder.
type Ring []Point

// Polygon is one exterior ring plus zero or more interior rings (holes).
// A polygon exclusively owns its rings; rings are never shared.
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

// GeometryType identifies the variant stored in a Geometry.
type GeometryType int

const (
	// GeometryTypeNone indicates a feature with no spatial representation.
	GeometryTypeNone GeometryType = iota

	// GeometryTypeLineString is a bare polyline. Line geometry only occurs
	// transiently, before source data is resolved into area features.
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

// Geometry is a tagged variant: exactly one of Polygon or Line is meaningful,
// selected by Type. Source data with stringly-typed geometry kinds is resolved
// into this form once, at the import boundary.
type Geometry struct {
	Type GeometryType

	// Polygon is set when Type == GeometryTypePolygon.
	Polygon Polygon

	// Line is set when Type == GeometryTypeLineString.
	Line Ring
}

// Feature is a geometry plus an opaque property bag. Properties carry
// provenance and debug metadata only; they never affect geometric behavior.
type Feature struct {
	Geometry   Geometry
	Properties map[string]interface{}
}

// Collection is an ordered sequence of features, the unit passed between
// pipeline stages. Order carries no meaning but is preserved deterministically
// so runs are reproducible.
type Collection struct {
	Features []Feature
}

// CloseRing returns a closed copy of the ring: if the last point is not
// bitwise equal to the first, the first point is appended. Already-closed
// rings are returned unchanged.
func CloseRing(ring Ring) Ring {
	if len(ring) == 0 {
		return ring
	}
	if ring[0] == ring[len(ring)-1] {
		return ring
	}
	closed := make(Ring, 0, len(ring)+1)
	closed = append(closed, ring...)
	closed = append(closed, ring[0])
	return closed
}

// RingIsDegenerate reports whether a ring has too few points to bound an
// area: fewer than 4 points after closure (3 distinct plus the closing
// duplicate). Degenerate rings are dropped by the stages that encounter them.
func RingIsDegenerate(ring Ring) bool {
	return len(CloseRing(ring)) < 4
}
