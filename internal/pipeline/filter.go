package pipeline

import (
	"math"

	"github.com/rs/zerolog"
)

// Tile-boundary artifact heuristic thresholds.
//
// These are pragmatic, tunable constants, not verified-correct classifier
// semantics: a small genuinely-rectangular natural feature (a rectangular
// harbor basin, say) can be misclassified as an artifact.
const (
	// Candidate exterior rings have 4-10 points after closure. Anything more
	// complex is real coastline, anything less is degenerate.
	artifactMinPoints = 4
	artifactMaxPoints = 10

	// Bounding boxes narrower than this (degrees) are too small to be a
	// meaningful collection tile; filtering them would discard tiny real
	// features.
	artifactMinExtent = 0.0001

	// A polygon filling more than this fraction of its own bounding box is
	// classified as a rectangle.
	artifactAreaRatio = 0.95

	// Edge axis-alignment tolerance (degrees) for the closed-quadrilateral
	// check.
	artifactAxisTolerance = 0.001
)

// IsTileArtifact reports whether a feature is a spurious rectangular polygon
// left behind by tiled data collection (a chart-cell or tile boundary) rather
// than real coastline.
//
// The decision uses geometry alone. Non-polygon features and polygons whose
// exterior ring falls outside the 4-10 point candidate range are never
// artifacts.
func IsTileArtifact(f Feature) bool {
	if f.Geometry.Type != GeometryTypePolygon {
		return false
	}

	exterior := CloseRing(f.Geometry.Polygon.Exterior)
	if len(exterior) < artifactMinPoints || len(exterior) > artifactMaxPoints {
		return false
	}

	minLon, minLat := exterior[0].Lon, exterior[0].Lat
	maxLon, maxLat := minLon, minLat
	for _, p := range exterior {
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
	}

	bboxWidth := maxLon - minLon
	bboxHeight := maxLat - minLat
	if bboxWidth < artifactMinExtent || bboxHeight < artifactMinExtent {
		return false
	}

	// Rectangles fill their bounding box almost completely; real coastline
	// polygons rarely do.
	bboxArea := bboxWidth * bboxHeight
	if bboxArea > 0 && shoelaceArea(exterior)/bboxArea > artifactAreaRatio {
		return true
	}

	// Closed quadrilateral with all four edges axis-aligned.
	if len(exterior) == 5 {
		aligned := 0
		for i := 0; i < 4; i++ {
			dLon := math.Abs(exterior[i].Lon - exterior[i+1].Lon)
			dLat := math.Abs(exterior[i].Lat - exterior[i+1].Lat)
			if dLon < artifactAxisTolerance || dLat < artifactAxisTolerance {
				aligned++
			}
		}
		if aligned == 4 {
			return true
		}
	}

	return false
}

// FilterArtifacts returns a new collection without tile-boundary artifacts.
// Every feature IsTileArtifact rejects is kept unchanged, in input order.
func FilterArtifacts(c Collection, log zerolog.Logger) Collection {
	kept := make([]Feature, 0, len(c.Features))
	for _, f := range c.Features {
		if IsTileArtifact(f) {
			continue
		}
		kept = append(kept, f)
	}
	if dropped := len(c.Features) - len(kept); dropped > 0 {
		log.Debug().
			Int("dropped", dropped).
			Int("kept", len(kept)).
			Msg("filtered tile-boundary artifacts")
	}
	return Collection{Features: kept}
}

// shoelaceArea computes the unsigned area of a closed ring via the shoelace
// formula, excluding the closing duplicate point.
func shoelaceArea(closed Ring) float64 {
	n := len(closed) - 1
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += closed[i].Lon * closed[j].Lat
		area -= closed[j].Lon * closed[i].Lat
	}
	if area < 0 {
		area = -area
	}
	return area / 2.0
}
