package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/beetlebugorg/navtile/pkg/navtile"
)

// Extracts every built-in region from a continent-scale coastline extract,
// prepares each one, and maintains a manifest the renderer reads at startup.
func main() {
	data, err := os.ReadFile("us_coastline.geojson")
	if err != nil {
		log.Fatal(err)
	}
	collection, err := navtile.FromGeoJSON(data)
	if err != nil {
		log.Fatal(err)
	}

	outDir := "prepared"
	manifest, err := navtile.LoadManifest(filepath.Join(outDir, "manifest.json"))
	if err != nil {
		log.Fatal(err)
	}

	for _, region := range navtile.Regions() {
		fmt.Printf("=== %s ===\n", region.Name)

		// Clip the region out of the full collection. The spatial index
		// keeps this fast even for very large inputs.
		clipped := navtile.Clip(collection, region.Bounds)
		if len(clipped.Features) == 0 {
			fmt.Println("  no coastline in region, skipping")
			continue
		}

		levels, err := navtile.Prepare(clipped, navtile.DefaultPrepareOptions())
		if err != nil {
			log.Fatal(err)
		}

		files := make(map[string]string, len(levels))
		for _, lod := range levels {
			name := fmt.Sprintf("%s_lod%d.nvtl", region.ID, lod.Level)
			if err := os.WriteFile(filepath.Join(outDir, name), lod.Encode(), 0o644); err != nil {
				log.Fatal(err)
			}
			files[fmt.Sprintf("%d", lod.Level)] = name
			fmt.Printf("  lod%d: %d points\n", lod.Level, lod.Collection.PointCount())
		}

		manifest.Update(region, "US_ENC", levels, files)
	}

	if err := manifest.Save(filepath.Join(outDir, "manifest.json")); err != nil {
		log.Fatal(err)
	}
	fmt.Println("manifest updated")
}
