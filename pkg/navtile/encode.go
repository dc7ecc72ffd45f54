package navtile

import (
	"encoding/binary"
	"math"
)

// NVTL binary format, little-endian, no padding:
//
//	Magic           4 bytes   ASCII "NVTL"
//	Version         uint16    currently 1
//	Polygon count   uint32    N
//	Bounds          4×float64 min-lon, min-lat, max-lon, max-lat
//	N times:
//	  Exterior count  uint32      E
//	  Interior count  uint32      H
//	  Exterior points E×2 float64 lon, lat pairs
//	  H times:
//	    Ring count    uint32      plus that many lon, lat pairs
const (
	nvtlMagic   = "NVTL"
	nvtlVersion = 1

	// Magic + version + polygon count + bounds.
	nvtlHeaderSize = 4 + 2 + 4 + 4*8
)

// Encode serializes the collection's polygon features into the NVTL binary
// format. The output is deterministic: the same collection always produces
// byte-identical output, and coordinates are preserved exactly as IEEE-754
// doubles.
//
// Non-polygon features are silently skipped; earlier pipeline stages must
// have resolved them into polygons if they are to be represented. An empty
// collection still yields a well-formed header with a zero polygon count and
// a zeroed bounds box.
func Encode(c Collection) []byte {
	polygons := make([]Polygon, 0, len(c.Features))
	size := nvtlHeaderSize
	for _, f := range c.Features {
		if f.Geometry.Type != GeometryTypePolygon {
			continue
		}
		p := f.Geometry.Polygon
		polygons = append(polygons, p)
		size += 8 + 16*len(p.Exterior)
		for _, hole := range p.Interiors {
			size += 4 + 16*len(hole)
		}
	}

	bounds := c.Bounds()

	buf := make([]byte, 0, size)
	buf = append(buf, nvtlMagic...)
	buf = binary.LittleEndian.AppendUint16(buf, nvtlVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(polygons)))
	buf = appendFloat64(buf, bounds.MinLon)
	buf = appendFloat64(buf, bounds.MinLat)
	buf = appendFloat64(buf, bounds.MaxLon)
	buf = appendFloat64(buf, bounds.MaxLat)

	for _, p := range polygons {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.Exterior)))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.Interiors)))
		buf = appendRing(buf, p.Exterior)
		for _, hole := range p.Interiors {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(len(hole)))
			buf = appendRing(buf, hole)
		}
	}
	return buf
}

func appendRing(buf []byte, ring Ring) []byte {
	for _, p := range ring {
		buf = appendFloat64(buf, p.Lon)
		buf = appendFloat64(buf, p.Lat)
	}
	return buf
}

func appendFloat64(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}
