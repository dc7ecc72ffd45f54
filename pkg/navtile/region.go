package navtile

// Region is a named geographic area for which coastline data is prepared.
type Region struct {
	// ID is the short machine identifier, e.g. "seattle".
	ID string

	// Name is the human-readable region name.
	Name string

	// Bounds is the geographic extent of the region.
	Bounds Bounds

	// Description explains what the region covers.
	Description string
}

// builtinRegions are the areas the navigation application ships charts for.
var builtinRegions = []Region{
	{
		ID:          "seattle",
		Name:        "Seattle / Puget Sound",
		Bounds:      Bounds{MinLon: -123.5, MinLat: 47.0, MaxLon: -121.5, MaxLat: 48.5},
		Description: "Puget Sound area including Seattle, Tacoma, and surrounding waters",
	},
	{
		ID:          "san_francisco",
		Name:        "San Francisco Bay",
		Bounds:      Bounds{MinLon: -123.0, MinLat: 37.4, MaxLon: -121.8, MaxLat: 38.2},
		Description: "San Francisco Bay Area",
	},
	{
		ID:          "chesapeake",
		Name:        "Chesapeake Bay",
		Bounds:      Bounds{MinLon: -77.5, MinLat: 36.5, MaxLon: -75.5, MaxLat: 39.5},
		Description: "Chesapeake Bay area",
	},
	{
		ID:          "florida_keys",
		Name:        "Florida Keys",
		Bounds:      Bounds{MinLon: -82.0, MinLat: 24.3, MaxLon: -80.0, MaxLat: 25.5},
		Description: "Florida Keys and surrounding waters",
	},
	{
		ID:          "la_harbor",
		Name:        "Los Angeles Harbor",
		Bounds:      Bounds{MinLon: -118.4, MinLat: 33.6, MaxLon: -118.0, MaxLat: 33.9},
		Description: "Los Angeles and Long Beach Harbor area",
	},
}

// Regions returns the built-in region registry.
func Regions() []Region {
	out := make([]Region, len(builtinRegions))
	copy(out, builtinRegions)
	return out
}

// RegionByID looks up a built-in region by its identifier.
func RegionByID(id string) (Region, bool) {
	for _, r := range builtinRegions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Clip returns the features intersecting the given bounds, with every
// coordinate clamped into the box. Rings that collapse below 3 distinct
// points after clamping are dropped; surviving rings are re-closed.
//
// Clipping uses simple coordinate clamping, the same normalization the chart
// importers apply: geometry outside the box flattens onto its edge rather
// than being cut along it. That is sufficient for region extraction because
// the artifact filter later removes the resulting box-edge rectangles.
func Clip(c Collection, bounds Bounds) Collection {
	candidates := NewIndex(c).FeaturesInBounds(bounds)

	features := make([]Feature, 0, len(candidates))
	for _, f := range candidates {
		switch f.Geometry.Type {
		case GeometryTypePolygon:
			exterior := clipRing(f.Geometry.Polygon.Exterior, bounds)
			if len(exterior) < 4 {
				continue
			}
			poly := Polygon{Exterior: exterior}
			for _, hole := range f.Geometry.Polygon.Interiors {
				clipped := clipRing(hole, bounds)
				if len(clipped) < 4 {
					continue
				}
				poly.Interiors = append(poly.Interiors, clipped)
			}
			features = append(features, Feature{
				Geometry:   Geometry{Type: GeometryTypePolygon, Polygon: poly},
				Properties: f.Properties,
			})

		case GeometryTypeLineString:
			line := clampPoints(f.Geometry.Line, bounds)
			if len(line) < 2 {
				continue
			}
			features = append(features, Feature{
				Geometry:   Geometry{Type: GeometryTypeLineString, Line: line},
				Properties: f.Properties,
			})

		default:
			features = append(features, f)
		}
	}
	return Collection{Features: features}
}

// clipRing clamps a ring into bounds and re-closes it. Returns a ring with
// fewer than 4 points when the result is degenerate.
func clipRing(ring Ring, bounds Bounds) Ring {
	open := ring
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		open = ring[:len(ring)-1]
	}
	clamped := clampPoints(open, bounds)
	if len(clamped) < 3 {
		return clamped
	}
	return CloseRing(clamped)
}

// clampPoints clamps every point into the box, dropping consecutive
// duplicates produced by the clamping.
func clampPoints(points Ring, bounds Bounds) Ring {
	out := make(Ring, 0, len(points))
	for _, p := range points {
		clamped := Point{
			Lon: clamp(p.Lon, bounds.MinLon, bounds.MaxLon),
			Lat: clamp(p.Lat, bounds.MinLat, bounds.MaxLat),
		}
		if len(out) > 0 && out[len(out)-1] == clamped {
			continue
		}
		out = append(out, clamped)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
