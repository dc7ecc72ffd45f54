package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/navtile/pkg/navtile"
)

func main() {
	// Read raw coastline geometry
	data, err := os.ReadFile("coastline.geojson")
	if err != nil {
		log.Fatal(err)
	}

	collection, err := navtile.FromGeoJSON(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Input: %d features, %d points\n",
		len(collection.Features), collection.PointCount())

	// Run the preparation pipeline with default settings:
	// artifact filtering, polygon merging, ENC LOD ladder
	levels, err := navtile.Prepare(collection, navtile.DefaultPrepareOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Write one binary file per detail level
	for _, lod := range levels {
		name := fmt.Sprintf("coastline_lod%d.nvtl", lod.Level)
		if err := os.WriteFile(name, lod.Encode(), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("lod%d (tolerance %g): %d points -> %s\n",
			lod.Level, lod.Tolerance, lod.Collection.PointCount(), name)
	}
}
