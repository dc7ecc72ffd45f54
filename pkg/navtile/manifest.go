package navtile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// manifestVersion is bumped when the manifest layout changes.
const manifestVersion = 1

// Manifest describes the prepared coastline data available on disk. The
// navigation application reads it at startup to discover which regions and
// detail levels it can load.
type Manifest struct {
	Version     int                       `json:"version"`
	LastUpdated string                    `json:"lastUpdated"`
	Regions     map[string]ManifestRegion `json:"regions"`
}

// ManifestRegion records the prepared output for a single region.
type ManifestRegion struct {
	Name   string            `json:"name"`
	Bounds [4]float64        `json:"bounds"` // minLon, minLat, maxLon, maxLat
	Source string            `json:"source,omitempty"`
	Levels []int             `json:"lods"`
	Files  map[string]string `json:"files"`
}

// NewManifest returns an empty manifest with the current layout version.
func NewManifest() *Manifest {
	return &Manifest{
		Version: manifestVersion,
		Regions: make(map[string]ManifestRegion),
	}
}

// LoadManifest reads a manifest from path. A missing file yields a fresh
// empty manifest rather than an error, so callers can update unconditionally.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewManifest(), nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Regions == nil {
		m.Regions = make(map[string]ManifestRegion)
	}
	return &m, nil
}

// Save writes the manifest to path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Update records prepared detail levels for a region and stamps the
// manifest's lastUpdated time. Files maps each level (as a string key,
// e.g. "0") to the file name holding its encoded geometry.
func (m *Manifest) Update(region Region, source string, levels []LevelOfDetail, files map[string]string) {
	ids := make([]int, len(levels))
	for i, lod := range levels {
		ids[i] = lod.Level
	}

	m.Version = manifestVersion
	m.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	m.Regions[region.ID] = ManifestRegion{
		Name:   region.Name,
		Bounds: [4]float64{region.Bounds.MinLon, region.Bounds.MinLat, region.Bounds.MaxLon, region.Bounds.MaxLat},
		Source: source,
		Levels: ids,
		Files:  files,
	}
}
