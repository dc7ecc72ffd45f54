package navtile

import (
	"github.com/dhconnelly/rtreego"
)

// Index provides fast bounding-box queries over a collection using an R-tree.
//
// Building the index is O(n log n); queries are O(log n) instead of the O(n)
// linear scan, which matters when clipping a region out of a continent-sized
// source collection.
//
// Example:
//
//	idx := navtile.NewIndex(collection)
//	visible := idx.FeaturesInBounds(navtile.Bounds{
//	    MinLon: -123.5, MaxLon: -121.5,
//	    MinLat: 47.0, MaxLat: 48.5,
//	})
type Index struct {
	rtree *rtreego.Rtree
	size  int
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  Bounds
}

// Bounds implements rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	point := rtreego.Point{f.bounds.MinLon, f.bounds.MinLat}

	// R-tree requires non-zero dimensions; pad zero-area features with a
	// small epsilon (~11 meters at the equator).
	const epsilon = 0.0001
	lonLength := f.bounds.MaxLon - f.bounds.MinLon
	latLength := f.bounds.MaxLat - f.bounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// NewIndex builds a spatial index over the collection's features.
func NewIndex(c Collection) *Index {
	// 2D, min=25, max=50 children per node.
	rtree := rtreego.NewTree(2, 25, 50)
	for _, f := range c.Features {
		rtree.Insert(&indexedFeature{feature: f, bounds: featureBounds(f)})
	}
	return &Index{rtree: rtree, size: len(c.Features)}
}

// Size returns the number of indexed features.
func (idx *Index) Size() int {
	return idx.size
}

// FeaturesInBounds returns all features whose bounding box intersects the
// given bounds.
func (idx *Index) FeaturesInBounds(bounds Bounds) []Feature {
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{
		bounds.MaxLon - bounds.MinLon,
		bounds.MaxLat - bounds.MinLat,
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(queryRect)
	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}
	return result
}
