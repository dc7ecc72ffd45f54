package pipeline

import (
	"testing"
)

// TestCloseRing tests ring closure behavior
func TestCloseRing(t *testing.T) {
	tests := []struct {
		name     string
		ring     Ring
		expected int
	}{
		{
			name: "open ring gets closing point",
			ring: Ring{
				{Lon: 0, Lat: 0},
				{Lon: 1, Lat: 0},
				{Lon: 1, Lat: 1},
			},
			expected: 4,
		},
		{
			name: "closed ring unchanged",
			ring: Ring{
				{Lon: 0, Lat: 0},
				{Lon: 1, Lat: 0},
				{Lon: 1, Lat: 1},
				{Lon: 0, Lat: 0},
			},
			expected: 4,
		},
		{
			name:     "empty ring unchanged",
			ring:     Ring{},
			expected: 0,
		},
		{
			name:     "single point closes to two",
			ring:     Ring{{Lon: 5, Lat: 5}},
			expected: 1, // already "closed": first equals last
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := CloseRing(tt.ring)
			if len(closed) != tt.expected {
				t.Errorf("Expected %d points, got %d", tt.expected, len(closed))
			}
			if len(closed) > 0 && closed[0] != closed[len(closed)-1] {
				t.Error("Closed ring must start and end at the same point")
			}
		})
	}
}

// TestCloseRingDoesNotMutate verifies closure returns a new slice rather than
// appending into the caller's backing array.
func TestCloseRingDoesNotMutate(t *testing.T) {
	ring := make(Ring, 3, 8)
	ring[0] = Point{Lon: 0, Lat: 0}
	ring[1] = Point{Lon: 1, Lat: 0}
	ring[2] = Point{Lon: 1, Lat: 1}

	closed := CloseRing(ring)
	if len(ring) != 3 {
		t.Errorf("Original ring length changed: %d", len(ring))
	}
	if len(closed) != 4 {
		t.Errorf("Expected closed length 4, got %d", len(closed))
	}
	closed[0] = Point{Lon: 99, Lat: 99}
	if ring[0] != (Point{Lon: 0, Lat: 0}) {
		t.Error("Closing a ring must not alias the original storage")
	}
}

// TestCloseRingBitwiseEquality verifies closure compares points exactly, not
// within a tolerance.
func TestCloseRingBitwiseEquality(t *testing.T) {
	ring := Ring{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 0},
		{Lon: 1, Lat: 1},
		{Lon: 1e-12, Lat: 0}, // almost, but not exactly, the first point
	}
	closed := CloseRing(ring)
	if len(closed) != 5 {
		t.Errorf("Nearly-equal endpoint should still get a closing point, got %d points", len(closed))
	}
}

// TestRingIsDegenerate tests the degenerate ring predicate
func TestRingIsDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		ring       Ring
		degenerate bool
	}{
		{
			name:       "empty",
			ring:       Ring{},
			degenerate: true,
		},
		{
			name:       "two points",
			ring:       Ring{{0, 0}, {1, 1}},
			degenerate: true,
		},
		{
			name:       "open triangle is valid",
			ring:       Ring{{0, 0}, {1, 0}, {0, 1}},
			degenerate: false,
		},
		{
			name:       "closed triangle is valid",
			ring:       Ring{{0, 0}, {1, 0}, {0, 1}, {0, 0}},
			degenerate: false,
		},
		{
			name:       "closed two-point sliver",
			ring:       Ring{{0, 0}, {1, 1}, {0, 0}},
			degenerate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RingIsDegenerate(tt.ring); got != tt.degenerate {
				t.Errorf("RingIsDegenerate = %v, want %v", got, tt.degenerate)
			}
		})
	}
}

// TestGeometryTypeString tests geometry type names
func TestGeometryTypeString(t *testing.T) {
	tests := []struct {
		geomType GeometryType
		expected string
	}{
		{GeometryTypeNone, "None"},
		{GeometryTypeLineString, "LineString"},
		{GeometryTypePolygon, "Polygon"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.geomType.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.geomType.String())
			}
		})
	}
}
