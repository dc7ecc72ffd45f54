package navtile

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// coastFeature returns an irregular closed polygon shaped nothing like a
// tile-boundary rectangle, so it survives artifact filtering.
func coastFeature() Feature {
	return Feature{
		Geometry: Geometry{Type: GeometryTypePolygon, Polygon: Polygon{
			Exterior: Ring{
				{Lon: -122.50, Lat: 47.50},
				{Lon: -122.41, Lat: 47.52},
				{Lon: -122.35, Lat: 47.48},
				{Lon: -122.28, Lat: 47.55},
				{Lon: -122.22, Lat: 47.51},
				{Lon: -122.18, Lat: 47.60},
				{Lon: -122.27, Lat: 47.66},
				{Lon: -122.36, Lat: 47.62},
				{Lon: -122.45, Lat: 47.69},
				{Lon: -122.52, Lat: 47.61},
				{Lon: -122.50, Lat: 47.50},
			},
		}},
		Properties: map[string]interface{}{"source": "test"},
	}
}

// rectArtifact returns a near-perfect axis-aligned rectangle of the kind the
// artifact filter removes.
func rectArtifact() Feature {
	return Feature{
		Geometry: Geometry{Type: GeometryTypePolygon, Polygon: Polygon{
			Exterior: Ring{
				{Lon: -123.0, Lat: 47.0},
				{Lon: -122.0, Lat: 47.0},
				{Lon: -122.0, Lat: 48.0},
				{Lon: -123.0, Lat: 48.0},
				{Lon: -123.0, Lat: 47.0},
			},
		}},
	}
}

func serialOptions(tolerances []float64) PrepareOptions {
	return PrepareOptions{
		Tolerances: tolerances,
		Logger:     zerolog.Nop(),
	}
}

func TestPrepareLevelLadder(t *testing.T) {
	c := Collection{Features: []Feature{coastFeature()}}
	tolerances := []float64{0, 0.01, 0.05}

	levels, err := Prepare(c, serialOptions(tolerances))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(levels) != len(tolerances) {
		t.Fatalf("got %d levels, want %d", len(levels), len(tolerances))
	}

	for i, lod := range levels {
		if lod.Level != i {
			t.Errorf("levels[%d].Level = %d", i, lod.Level)
		}
		if lod.Tolerance != tolerances[i] {
			t.Errorf("levels[%d].Tolerance = %v, want %v", i, lod.Tolerance, tolerances[i])
		}
	}

	base := levels[0].Collection.PointCount()
	if base != c.PointCount() {
		t.Errorf("level 0 has %d points, want full detail %d", base, c.PointCount())
	}
	for _, lod := range levels[1:] {
		if n := lod.Collection.PointCount(); n > base {
			t.Errorf("level %d has %d points, more than level 0's %d", lod.Level, n, base)
		}
	}
}

func TestPrepareDefaultsToENCTolerances(t *testing.T) {
	c := Collection{Features: []Feature{coastFeature()}}

	levels, err := Prepare(c, serialOptions(nil))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(levels) != len(ENCTolerances) {
		t.Errorf("got %d levels, want %d", len(levels), len(ENCTolerances))
	}
}

func TestPrepareNegativeTolerance(t *testing.T) {
	c := Collection{Features: []Feature{coastFeature()}}

	_, err := Prepare(c, serialOptions([]float64{0, -0.001}))
	var negErr *ErrNegativeTolerance
	if !errors.As(err, &negErr) {
		t.Fatalf("Prepare error = %v, want *ErrNegativeTolerance", err)
	}
	if negErr.Tolerance != -0.001 {
		t.Errorf("reported tolerance = %v, want -0.001", negErr.Tolerance)
	}
}

func TestPrepareClosesOpenRings(t *testing.T) {
	open := coastFeature()
	ring := open.Geometry.Polygon.Exterior
	open.Geometry.Polygon.Exterior = ring[:len(ring)-1]

	levels, err := Prepare(Collection{Features: []Feature{open}}, serialOptions([]float64{0}))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	out := levels[0].Collection.Features[0].Geometry.Polygon.Exterior
	if out[0] != out[len(out)-1] {
		t.Errorf("output ring is not closed: first %v, last %v", out[0], out[len(out)-1])
	}
}

func TestPrepareDropsDegenerateFeatures(t *testing.T) {
	degenerate := Feature{
		Geometry: Geometry{Type: GeometryTypePolygon, Polygon: Polygon{
			Exterior: Ring{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}},
		}},
	}
	c := Collection{Features: []Feature{coastFeature(), degenerate}}

	levels, err := Prepare(c, serialOptions([]float64{0}))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if n := len(levels[0].Collection.Features); n != 1 {
		t.Errorf("got %d features, want degenerate polygon dropped", n)
	}
}

func TestPrepareFiltersArtifacts(t *testing.T) {
	c := Collection{Features: []Feature{coastFeature(), rectArtifact()}}

	opts := serialOptions([]float64{0})
	opts.FilterArtifacts = true

	levels, err := Prepare(c, opts)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if n := len(levels[0].Collection.Features); n != 1 {
		t.Errorf("got %d features, want tile artifact removed", n)
	}
}

func TestPrepareParallelMatchesSerial(t *testing.T) {
	c := Collection{Features: []Feature{coastFeature()}}
	tolerances := []float64{0, 0.005, 0.01, 0.02, 0.05}

	serial, err := Prepare(c, serialOptions(tolerances))
	if err != nil {
		t.Fatalf("serial Prepare: %v", err)
	}

	opts := serialOptions(tolerances)
	opts.Parallel = true
	opts.Workers = 3
	parallel, err := Prepare(c, opts)
	if err != nil {
		t.Fatalf("parallel Prepare: %v", err)
	}

	if len(parallel) != len(serial) {
		t.Fatalf("parallel produced %d levels, serial %d", len(parallel), len(serial))
	}
	for i := range serial {
		s := serial[i].Collection
		p := parallel[i].Collection
		if s.PointCount() != p.PointCount() {
			t.Errorf("level %d: parallel %d points, serial %d", i, p.PointCount(), s.PointCount())
		}
	}
}

func TestPrepareProgressCallback(t *testing.T) {
	c := Collection{Features: []Feature{coastFeature()}}
	tolerances := []float64{0, 0.01, 0.05}

	var calls int
	var lastDone, lastTotal int
	opts := serialOptions(tolerances)
	opts.Parallel = true
	opts.Workers = 2
	opts.Progress = func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	}

	if _, err := Prepare(c, opts); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if calls != len(tolerances) {
		t.Errorf("progress called %d times, want %d", calls, len(tolerances))
	}
	if lastDone != len(tolerances) || lastTotal != len(tolerances) {
		t.Errorf("final progress = (%d, %d), want (%d, %d)",
			lastDone, lastTotal, len(tolerances), len(tolerances))
	}
}

func TestPrepareDoesNotMutateInput(t *testing.T) {
	open := coastFeature()
	ring := open.Geometry.Polygon.Exterior[:len(open.Geometry.Polygon.Exterior)-1]
	open.Geometry.Polygon.Exterior = ring
	before := len(ring)

	if _, err := Prepare(Collection{Features: []Feature{open}}, serialOptions([]float64{0, 0.01})); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(open.Geometry.Polygon.Exterior) != before {
		t.Error("Prepare mutated the input ring")
	}
}

func TestRecommendedLevel(t *testing.T) {
	tests := []struct {
		scale int
		want  int
	}{
		{2000, 0},
		{4000, 0},
		{12000, 1},
		{45000, 2},
		{180000, 3},
		{700000, 4},
		{3500000, 5},
	}
	for _, tt := range tests {
		if got := RecommendedLevel(tt.scale); got != tt.want {
			t.Errorf("RecommendedLevel(%d) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}
