package navtile

import (
	"runtime"

	"github.com/rs/zerolog"
)

// ENCTolerances is the default LOD ladder for NOAA ENC land-area sources
// (degrees). Level 0 keeps full source detail; each subsequent level is
// progressively coarser.
var ENCTolerances = []float64{
	0,       // lod0: finest (full source detail)
	0.00005, // lod1: ultra-high (ENC data is very detailed)
	0.0001,  // lod2: very high
	0.0003,  // lod3: high
	0.0008,  // lod4: medium
	0.002,   // lod5: low
}

// OSMTolerances is the LOD ladder for OpenStreetMap coastline extracts.
// OSM data is much more detailed than chart-derived sources, so the ladder
// uses finer tolerances.
var OSMTolerances = []float64{
	0,        // lod0: finest (full OSM detail)
	0.000005, // lod1: ultra-high (~0.5m at equator)
	0.00002,  // lod2: very high (~2m)
	0.00005,  // lod3: high (~5m)
	0.0002,   // lod4: medium (~20m)
	0.0008,   // lod5: low (~80m)
}

// PrepareOptions configures the coastline preparation pipeline.
type PrepareOptions struct {
	// Tolerances is the LOD ladder: one output collection is produced per
	// tolerance, each computed independently from the same filtered and
	// merged input (never from each other, to avoid compounding error).
	// Tolerances must be non-negative; zero means no simplification.
	// If empty, ENCTolerances is used.
	Tolerances []float64

	// FilterArtifacts removes rectangular tile/cell-boundary polygons
	// before merging.
	FilterArtifacts bool

	// MergePolygons unions overlapping and adjacent land polygons into
	// continuous landmasses, eliminating internal seams from tiled sources.
	// Merging is an optimization: if the geometry engine fails, the
	// pipeline continues with unmerged geometry.
	MergePolygons bool

	// Parallel enables concurrent LOD generation.
	// Each tolerance level is computed independently, so levels can be
	// simplified by multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of parallel simplifier goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// Progress is an optional callback for tracking LOD generation.
	// Called after each level completes. Parameters: (done, total).
	Progress func(done, total int)

	// Logger receives pipeline diagnostics: dropped features, filter
	// counts, merge failures. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultPrepareOptions returns prepare options with sensible defaults:
// the ENC LOD ladder, artifact filtering and merging enabled, and parallel
// LOD generation across all CPUs.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		Tolerances:      ENCTolerances,
		FilterArtifacts: true,
		MergePolygons:   true,
		Parallel:        true,
		Workers:         runtime.NumCPU(),
		Logger:          zerolog.Nop(),
	}
}

// RecommendedLevel maps a display scale denominator to an LOD level for a
// six-level ladder. The bands follow ENC usage-band conventions: berthing
// scales get full detail, overview scales get the coarsest level.
func RecommendedLevel(scaleDenominator int) int {
	switch {
	case scaleDenominator <= 4000: // berthing
		return 0
	case scaleDenominator <= 22000: // harbour
		return 1
	case scaleDenominator <= 90000: // approach
		return 2
	case scaleDenominator <= 350000: // coastal
		return 3
	case scaleDenominator <= 1500000: // general
		return 4
	default: // overview
		return 5
	}
}
