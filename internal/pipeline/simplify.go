package pipeline

import (
	"math"
)

// Simplify returns a copy of the collection with every ring and line reduced
// by Douglas-Peucker simplification at the given tolerance (degrees).
//
// A tolerance of zero is the identity transform and returns the input
// collection unchanged; this is the finest LOD level. Callers must not pass a
// negative tolerance (the public API rejects it before reaching here).
//
// Simplified points are always a subset of the original points; no points are
// synthesized. Rings that would collapse below 4 points (after closure) keep
// their original geometry instead: under-simplification is preferred over
// losing a landmass entirely. Line features that collapse below 2 points are
// dropped.
func Simplify(c Collection, tolerance float64) Collection {
	if tolerance <= 0 {
		return c
	}

	out := make([]Feature, 0, len(c.Features))
	for _, f := range c.Features {
		switch f.Geometry.Type {
		case GeometryTypePolygon:
			poly := Polygon{
				Exterior: simplifyRing(f.Geometry.Polygon.Exterior, tolerance),
			}
			if len(f.Geometry.Polygon.Interiors) > 0 {
				poly.Interiors = make([]Ring, 0, len(f.Geometry.Polygon.Interiors))
				for _, hole := range f.Geometry.Polygon.Interiors {
					poly.Interiors = append(poly.Interiors, simplifyRing(hole, tolerance))
				}
			}
			out = append(out, Feature{
				Geometry:   Geometry{Type: GeometryTypePolygon, Polygon: poly},
				Properties: f.Properties,
			})

		case GeometryTypeLineString:
			line := douglasPeucker(f.Geometry.Line, tolerance)
			if len(line) < 2 {
				continue
			}
			out = append(out, Feature{
				Geometry:   Geometry{Type: GeometryTypeLineString, Line: line},
				Properties: f.Properties,
			})

		default:
			out = append(out, f)
		}
	}
	return Collection{Features: out}
}

// simplifyRing simplifies one ring, restoring closure afterwards. If the
// result has fewer than 4 points after closure the original ring is returned
// unsimplified.
func simplifyRing(ring Ring, tolerance float64) Ring {
	simplified := douglasPeucker(ring, tolerance)
	if len(simplified) > 0 && simplified[0] != simplified[len(simplified)-1] {
		simplified = append(simplified, simplified[0])
	}
	if len(simplified) < 4 {
		return ring
	}
	return simplified
}

// douglasPeucker reduces a point sequence so that every removed point lies
// within tolerance of the simplified polyline.
//
// A sequence whose first and last points are equal is treated as a closed
// ring: the closing duplicate is removed before simplification and restored
// afterwards.
//
// The divide-and-conquer recursion is driven by an explicit work stack so
// that pathological rings with tens of thousands of points cannot exhaust the
// call stack.
func douglasPeucker(points []Point, tolerance float64) []Point {
	if len(points) <= 2 || tolerance <= 0 {
		return points
	}

	closed := len(points) > 2 && points[0] == points[len(points)-1]
	working := points
	if closed {
		working = points[:len(points)-1]
	}
	if len(working) <= 2 {
		return points
	}

	keep := make([]bool, len(working))
	keep[0] = true
	keep[len(working)-1] = true

	type span struct {
		first, last int
	}
	stack := make([]span, 0, 64)
	stack = append(stack, span{0, len(working) - 1})

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist := -1.0
		index := 0
		for i := s.first + 1; i < s.last; i++ {
			dist := perpendicularDistance(working[i], working[s.first], working[s.last])
			if dist > maxDist {
				maxDist = dist
				index = i
			}
		}

		if maxDist > tolerance {
			keep[index] = true
			stack = append(stack, span{s.first, index}, span{index, s.last})
		}
	}

	simplified := make([]Point, 0, len(working))
	for i, p := range working {
		if keep[i] {
			simplified = append(simplified, p)
		}
	}

	// Restore closure. The split point can coincide with the start, so the
	// endpoints may no longer match.
	if closed && simplified[0] != simplified[len(simplified)-1] {
		simplified = append(simplified, simplified[0])
	}
	return simplified
}

// perpendicularDistance measures the distance from a point to the line
// segment start-end, not the infinite line through them: the projection
// parameter is clamped to [0,1] first. When the segment endpoints coincide
// the distance degenerates to point-to-point distance. Without the clamp,
// near-degenerate segments manufacture artificially large distances for
// points beyond the segment's span.
func perpendicularDistance(p, start, end Point) float64 {
	dLon := end.Lon - start.Lon
	dLat := end.Lat - start.Lat

	segLen := math.Hypot(dLon, dLat)
	if segLen == 0 {
		return math.Hypot(p.Lon-start.Lon, p.Lat-start.Lat)
	}

	u := ((p.Lon-start.Lon)*dLon + (p.Lat-start.Lat)*dLat) / (segLen * segLen)
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}

	ix := start.Lon + u*dLon
	iy := start.Lat + u*dLat
	return math.Hypot(p.Lon-ix, p.Lat-iy)
}
