package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/navtile/pkg/navtile"
	"github.com/rs/zerolog"
)

// Prepares OSM-sourced coastline with the finer OSM tolerance ladder, a
// progress bar, and pipeline diagnostics enabled.
func main() {
	data, err := os.ReadFile("osm_coastline.geojson")
	if err != nil {
		log.Fatal(err)
	}
	collection, err := navtile.FromGeoJSON(data)
	if err != nil {
		log.Fatal(err)
	}

	opts := navtile.DefaultPrepareOptions()

	// OSM coastline is far denser than chart-derived data; use the finer
	// tolerance ladder.
	opts.Tolerances = navtile.OSMTolerances

	// Log dropped artifacts and merge diagnostics to stderr.
	opts.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	// Report per-level progress (levels finish out of order when parallel).
	opts.Progress = func(done, total int) {
		fmt.Printf("\rsimplifying: %d/%d levels", done, total)
		if done == total {
			fmt.Println()
		}
	}

	levels, err := navtile.Prepare(collection, opts)
	if err != nil {
		log.Fatal(err)
	}

	base := levels[0].Collection.PointCount()
	for _, lod := range levels {
		n := lod.Collection.PointCount()
		fmt.Printf("lod%d: tolerance %-8g %8d points (%.1f%% of full detail)\n",
			lod.Level, lod.Tolerance, n, 100*float64(n)/float64(base))
	}

	// Pick the level a renderer would use at 1:50,000
	fmt.Printf("recommended level at 1:50,000 = %d\n", navtile.RecommendedLevel(50000))
}
