package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"
	geos "github.com/twpayne/go-geos"
)

// MergePolygons returns a new collection where all polygonal features are
// replaced by the minimal set of polygons covering their geometric union,
// eliminating the internal seams left where tiled source cells abut. Holes
// survive as interior rings. Each merged polygon is tagged with a
// "merged": true property. Non-polygon features pass through unchanged and
// are appended after the merged polygons.
//
// Invalid polygons are coerced to valid geometry before the union; features
// that remain empty or unparseable are dropped with a diagnostic. If the
// geometry engine fails outright the original collection is returned
// unchanged: merging is an optimization, not a correctness requirement.
func MergePolygons(c Collection, log zerolog.Logger) Collection {
	polygons := make([]*geos.Geom, 0, len(c.Features))
	other := make([]Feature, 0)

	for i, f := range c.Features {
		if f.Geometry.Type != GeometryTypePolygon {
			other = append(other, f)
			continue
		}
		g, err := polygonToGeos(f.Geometry.Polygon)
		if err != nil {
			log.Debug().Err(err).Int("feature", i).Msg("dropping polygon the geometry engine cannot repair")
			continue
		}
		polygons = append(polygons, g)
	}

	if len(polygons) == 0 {
		log.Debug().Msg("no polygons to merge")
		return c
	}

	merged, err := unionAll(polygons)
	if err != nil {
		log.Warn().Err(err).Int("polygons", len(polygons)).Msg("polygon union failed, keeping unmerged geometry")
		return c
	}

	features, err := geosToFeatures(merged)
	if err != nil {
		log.Warn().Err(err).Msg("reading union result failed, keeping unmerged geometry")
		return c
	}

	log.Debug().
		Int("input", len(polygons)).
		Int("merged", len(features)).
		Msg("merged land polygons")

	return Collection{Features: append(features, other...)}
}

// polygonToGeos converts a polygon to a GEOS geometry, closing rings,
// dropping degenerate rings, and coercing invalid geometry to the nearest
// valid shape. GEOS reports failures by panicking, so the conversion recovers
// and returns them as errors.
func polygonToGeos(p Polygon) (g *geos.Geom, err error) {
	defer func() {
		if r := recover(); r != nil {
			g = nil
			err = &ErrMergeFailed{Cause: r}
		}
	}()

	exterior := CloseRing(p.Exterior)
	if len(exterior) < 4 {
		return nil, &ErrDegenerateRing{Points: len(p.Exterior)}
	}

	rings := make(orb.Polygon, 0, 1+len(p.Interiors))
	rings = append(rings, orbRing(exterior))
	for _, hole := range p.Interiors {
		closed := CloseRing(hole)
		if len(closed) < 4 {
			continue
		}
		rings = append(rings, orbRing(closed))
	}

	data, err := json.Marshal(geojson.NewGeometry(rings))
	if err != nil {
		return nil, err
	}
	g, err = geos.NewGeomFromGeoJSON(string(data))
	if err != nil {
		return nil, err
	}

	if !g.IsValid() {
		g = g.MakeValid()
	}
	if g == nil || g.IsEmpty() {
		return nil, &ErrInvalidGeometry{Type: GeometryTypePolygon, Reason: "empty after validity repair"}
	}
	return g, nil
}

// unionAll folds the polygons into a single union. Equivalent to a one-shot
// unary union; GEOS failures surface as panics and are returned as errors.
func unionAll(geoms []*geos.Geom) (merged *geos.Geom, err error) {
	defer func() {
		if r := recover(); r != nil {
			merged = nil
			err = &ErrMergeFailed{Cause: r}
		}
	}()

	merged = geoms[0]
	for _, g := range geoms[1:] {
		merged = merged.Union(g)
	}
	return merged, nil
}

// geosToFeatures converts a union result back into polygon features. The
// result may be a single polygon, a multipolygon, or a mixed collection;
// lower-dimension components are dropped.
func geosToFeatures(g *geos.Geom) (features []Feature, err error) {
	defer func() {
		if r := recover(); r != nil {
			features = nil
			err = &ErrMergeFailed{Cause: r}
		}
	}()

	decoded, err := geojson.UnmarshalGeometry([]byte(g.ToGeoJSON(-1)))
	if err != nil {
		return nil, err
	}

	features = make([]Feature, 0, 1)
	appendPolygon := func(p orb.Polygon) {
		poly, ok := polygonFromOrb(p)
		if !ok {
			return
		}
		features = append(features, Feature{
			Geometry:   Geometry{Type: GeometryTypePolygon, Polygon: poly},
			Properties: map[string]interface{}{"merged": true},
		})
	}

	switch geom := decoded.Geometry().(type) {
	case orb.Polygon:
		appendPolygon(geom)
	case orb.MultiPolygon:
		for _, p := range geom {
			appendPolygon(p)
		}
	case orb.Collection:
		for _, member := range geom {
			switch m := member.(type) {
			case orb.Polygon:
				appendPolygon(m)
			case orb.MultiPolygon:
				for _, p := range m {
					appendPolygon(p)
				}
			}
		}
	default:
		return nil, fmt.Errorf("unexpected union result type %T", geom)
	}

	return features, nil
}

func orbRing(ring Ring) orb.Ring {
	out := make(orb.Ring, len(ring))
	for i, p := range ring {
		out[i] = orb.Point{p.Lon, p.Lat}
	}
	return out
}

// polygonFromOrb converts an orb polygon back to the internal model, closing
// rings and dropping degenerates. Returns false when the exterior itself is
// degenerate.
func polygonFromOrb(p orb.Polygon) (Polygon, bool) {
	if len(p) == 0 {
		return Polygon{}, false
	}
	exterior := CloseRing(ringFromOrb(p[0]))
	if len(exterior) < 4 {
		return Polygon{}, false
	}
	poly := Polygon{Exterior: exterior}
	for _, hole := range p[1:] {
		closed := CloseRing(ringFromOrb(hole))
		if len(closed) < 4 {
			continue
		}
		poly.Interiors = append(poly.Interiors, closed)
	}
	return poly, true
}

func ringFromOrb(ring orb.Ring) Ring {
	out := make(Ring, len(ring))
	for i, p := range ring {
		out[i] = Point{Lon: p[0], Lat: p[1]}
	}
	return out
}
