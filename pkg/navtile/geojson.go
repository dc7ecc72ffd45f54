package navtile

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FromGeoJSON parses a GeoJSON FeatureCollection into a Collection.
//
// Polygons and MultiPolygons become polygon features (a MultiPolygon is
// flattened into one feature per member polygon), LineStrings become line
// features, and point geometries are skipped. Rings are closed on import.
func FromGeoJSON(data []byte) (Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Collection{}, fmt.Errorf("parsing GeoJSON: %w", err)
	}

	var c Collection
	for _, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			poly, ok := polygonFromOrb(geom)
			if !ok {
				continue
			}
			c.Features = append(c.Features, Feature{
				Geometry:   Geometry{Type: GeometryTypePolygon, Polygon: poly},
				Properties: f.Properties,
			})
		case orb.MultiPolygon:
			for _, member := range geom {
				poly, ok := polygonFromOrb(member)
				if !ok {
					continue
				}
				c.Features = append(c.Features, Feature{
					Geometry:   Geometry{Type: GeometryTypePolygon, Polygon: poly},
					Properties: f.Properties,
				})
			}
		case orb.LineString:
			c.Features = append(c.Features, Feature{
				Geometry:   Geometry{Type: GeometryTypeLineString, Line: ringFromOrb(orb.Ring(geom))},
				Properties: f.Properties,
			})
		}
	}
	return c, nil
}

// MarshalGeoJSON renders the collection as a GeoJSON FeatureCollection.
func (c Collection) MarshalGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range c.Features {
		var feature *geojson.Feature
		switch f.Geometry.Type {
		case GeometryTypePolygon:
			feature = geojson.NewFeature(polygonToOrb(f.Geometry.Polygon))
		case GeometryTypeLineString:
			feature = geojson.NewFeature(orb.LineString(ringToOrb(f.Geometry.Line)))
		default:
			continue
		}
		if f.Properties != nil {
			feature.Properties = f.Properties
		}
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding GeoJSON: %w", err)
	}
	return data, nil
}

// polygonFromOrb converts an orb polygon, closing rings and dropping
// degenerate interiors. Returns false when there is no usable exterior ring:
// GeoJSON permits a Polygon with empty coordinates, and malformed features
// are dropped rather than failing the whole import.
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

func polygonToOrb(p Polygon) orb.Polygon {
	rings := make(orb.Polygon, 0, 1+len(p.Interiors))
	rings = append(rings, ringToOrb(p.Exterior))
	for _, hole := range p.Interiors {
		rings = append(rings, ringToOrb(hole))
	}
	return rings
}

func ringFromOrb(r orb.Ring) Ring {
	out := make(Ring, len(r))
	for i, pt := range r {
		out[i] = Point{Lon: pt[0], Lat: pt[1]}
	}
	return out
}

func ringToOrb(r Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, pt := range r {
		out[i] = orb.Point{pt.Lon, pt.Lat}
	}
	return out
}
