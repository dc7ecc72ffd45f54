package navtile

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MinLat float64 // Southern edge
	MaxLon float64 // Eastern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// Bounds computes the bounding box of the collection by scanning the
// exterior ring of every polygon feature. This is the same reduction the
// NVTL encoder writes into the file header: it is recomputed fresh each time
// rather than cached across pipeline stages.
//
// An empty collection (or one without polygon features) yields the zero box.
func (c Collection) Bounds() Bounds {
	var bounds Bounds
	first := true
	for _, f := range c.Features {
		if f.Geometry.Type != GeometryTypePolygon {
			continue
		}
		for _, p := range f.Geometry.Polygon.Exterior {
			if first {
				bounds = Bounds{MinLon: p.Lon, MinLat: p.Lat, MaxLon: p.Lon, MaxLat: p.Lat}
				first = false
				continue
			}
			if p.Lon < bounds.MinLon {
				bounds.MinLon = p.Lon
			}
			if p.Lon > bounds.MaxLon {
				bounds.MaxLon = p.Lon
			}
			if p.Lat < bounds.MinLat {
				bounds.MinLat = p.Lat
			}
			if p.Lat > bounds.MaxLat {
				bounds.MaxLat = p.Lat
			}
		}
	}
	return bounds
}

// featureBounds calculates the bounding box for a feature's geometry,
// including interior rings and line geometry.
func featureBounds(f Feature) Bounds {
	var bounds Bounds
	first := true
	expand := func(points Ring) {
		for _, p := range points {
			if first {
				bounds = Bounds{MinLon: p.Lon, MinLat: p.Lat, MaxLon: p.Lon, MaxLat: p.Lat}
				first = false
				continue
			}
			if p.Lon < bounds.MinLon {
				bounds.MinLon = p.Lon
			}
			if p.Lon > bounds.MaxLon {
				bounds.MaxLon = p.Lon
			}
			if p.Lat < bounds.MinLat {
				bounds.MinLat = p.Lat
			}
			if p.Lat > bounds.MaxLat {
				bounds.MaxLat = p.Lat
			}
		}
	}

	switch f.Geometry.Type {
	case GeometryTypePolygon:
		expand(f.Geometry.Polygon.Exterior)
		for _, hole := range f.Geometry.Polygon.Interiors {
			expand(hole)
		}
	case GeometryTypeLineString:
		expand(f.Geometry.Line)
	}
	return bounds
}
