package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/navtile/pkg/navtile"
)

// Loads an NVTL file the way a renderer would: decode, index, and query the
// viewport. Shows how to tell a wrong file apart from a corrupt one.
func main() {
	data, err := os.ReadFile("seattle_lod2.nvtl")
	if err != nil {
		log.Fatal(err)
	}

	collection, err := navtile.Decode(data)
	if err != nil {
		var notNVTL *navtile.ErrNotNVTL
		var truncated *navtile.ErrTruncated
		switch {
		case errors.As(err, &notNVTL):
			log.Fatalf("not an NVTL file: %s", notNVTL.Reason)
		case errors.As(err, &truncated):
			log.Fatalf("file is corrupt: needed %d bytes at offset %d",
				truncated.Need, truncated.Offset)
		default:
			log.Fatal(err)
		}
	}

	bounds := collection.Bounds()
	fmt.Printf("%d polygons, %d points\n", len(collection.Features), collection.PointCount())
	fmt.Printf("coverage: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat, bounds.MaxLon, bounds.MaxLat)

	// Build a spatial index for viewport queries
	idx := navtile.NewIndex(collection)

	viewport := navtile.Bounds{
		MinLon: -122.45, MinLat: 47.55,
		MaxLon: -122.25, MaxLat: 47.70,
	}
	visible := idx.FeaturesInBounds(viewport)
	fmt.Printf("%d of %d land polygons visible in viewport\n", len(visible), idx.Size())

	for _, f := range visible {
		fmt.Printf("  polygon: %d exterior points, %d holes\n",
			len(f.Geometry.Polygon.Exterior), len(f.Geometry.Polygon.Interiors))
	}
}
