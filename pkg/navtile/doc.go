// Package navtile prepares marine coastline geometry for navigation displays.
//
// The package takes raw coastline polygons (typically extracted from ENC
// charts or OpenStreetMap), removes tiling artifacts, merges adjacent land
// masses, and produces a ladder of simplified detail levels encoded in a
// compact binary format the renderer can load directly.
//
// # Basic Usage
//
//	collection, err := navtile.FromGeoJSON(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	levels, err := navtile.Prepare(collection, navtile.DefaultPrepareOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, lod := range levels {
//	    os.WriteFile(fmt.Sprintf("coastline_lod%d.nvtl", lod.Level), lod.Encode(), 0o644)
//	}
//
// # Pipeline Stages
//
// Prepare runs three stages before generating detail levels:
//
//   - Ring normalization: rings are closed and degenerate rings dropped.
//   - Artifact filtering: near-perfect axis-aligned rectangles left behind by
//     tiled data extraction are removed (see PrepareOptions.FilterArtifacts).
//   - Polygon merging: touching and overlapping land polygons are unioned
//     into single land masses (see PrepareOptions.MergePolygons).
//
// Each detail level then applies Douglas-Peucker simplification at the
// tolerance configured for that level. Level 0 always preserves the input
// geometry unchanged.
//
// # Detail Levels
//
// Two tolerance ladders are provided: ENCTolerances for chart-sourced data
// and OSMTolerances for denser OpenStreetMap coastlines. Pick a level at
// render time with RecommendedLevel:
//
//	level := navtile.RecommendedLevel(scaleDenominator)
//	render(levels[level])
//
// # Binary Format
//
// Encode and Decode implement the NVTL container, a little-endian binary
// layout holding polygon rings as raw float64 coordinate pairs. The format
// is described in detail on Encode.
//
// # Regions
//
// The built-in region registry (Regions, RegionByID) lists the areas the
// application ships prepared data for. Clip extracts a region's geometry
// from a larger collection using a spatial index:
//
//	region, _ := navtile.RegionByID("seattle")
//	clipped := navtile.Clip(collection, region.Bounds)
package navtile
