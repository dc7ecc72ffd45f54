package navtile

import (
	"github.com/beetlebugorg/navtile/internal/pipeline"
)

// LevelOfDetail is one output of the preparation pipeline: the collection
// simplified at one tolerance from the LOD ladder.
type LevelOfDetail struct {
	// Level is the index into the tolerance ladder (0 = finest).
	Level int

	// Tolerance is the Douglas-Peucker tolerance in degrees used to
	// produce this level. Zero means full detail.
	Tolerance float64

	// Collection is the simplified geometry for this level.
	Collection Collection
}

// Encode serializes this level's collection into the NVTL binary format.
func (l LevelOfDetail) Encode() []byte {
	return Encode(l.Collection)
}

// Prepare runs the full coastline preparation pipeline:
//
//	input -> artifact filter -> polygon merger -> per-tolerance simplifier
//
// and returns one LevelOfDetail per tolerance, in ladder order. All levels
// are simplified from the same filtered and merged collection, never from
// each other.
//
// Rings in the input do not need to be pre-closed; the pipeline closes them.
// Prepare never mutates the input collection.
//
// Example:
//
//	lods, err := navtile.Prepare(collection, navtile.DefaultPrepareOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, lod := range lods {
//	    os.WriteFile(fmt.Sprintf("coastline_lod%d.bin", lod.Level), lod.Encode(), 0o644)
//	}
func Prepare(c Collection, opts PrepareOptions) ([]LevelOfDetail, error) {
	tolerances := opts.Tolerances
	if len(tolerances) == 0 {
		tolerances = ENCTolerances
	}
	for _, tol := range tolerances {
		if tol < 0 {
			return nil, &ErrNegativeTolerance{Tolerance: tol}
		}
	}

	current := closeRings(toInternal(c))

	if opts.FilterArtifacts {
		current = pipeline.FilterArtifacts(current, opts.Logger)
	}
	if opts.MergePolygons {
		current = pipeline.MergePolygons(current, opts.Logger)
	}

	levels := generateLevels(current, tolerances, opts)

	out := make([]LevelOfDetail, len(levels))
	for i, level := range levels {
		out[i] = LevelOfDetail{
			Level:      i,
			Tolerance:  tolerances[i],
			Collection: fromInternal(level),
		}
	}
	return out, nil
}

// closeRings normalizes imported geometry: every polygon ring is closed and
// degenerate rings are dropped. Features whose exterior is degenerate are
// removed entirely. Line and bare features pass through.
func closeRings(c pipeline.Collection) pipeline.Collection {
	features := make([]pipeline.Feature, 0, len(c.Features))
	for _, f := range c.Features {
		if f.Geometry.Type != pipeline.GeometryTypePolygon {
			features = append(features, f)
			continue
		}
		exterior := pipeline.CloseRing(f.Geometry.Polygon.Exterior)
		if len(exterior) < 4 {
			continue
		}
		poly := pipeline.Polygon{Exterior: exterior}
		for _, hole := range f.Geometry.Polygon.Interiors {
			closed := pipeline.CloseRing(hole)
			if len(closed) < 4 {
				continue
			}
			poly.Interiors = append(poly.Interiors, closed)
		}
		features = append(features, pipeline.Feature{
			Geometry:   pipeline.Geometry{Type: pipeline.GeometryTypePolygon, Polygon: poly},
			Properties: f.Properties,
		})
	}
	return pipeline.Collection{Features: features}
}
