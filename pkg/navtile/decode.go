package navtile

import (
	"encoding/binary"
	"math"
)

// Decode parses an NVTL buffer back into a collection of polygon features.
// Coordinates are preserved exactly; re-encoding the result yields a
// byte-identical buffer.
//
// Decode returns *ErrNotNVTL when the magic bytes or version do not match,
// and *ErrTruncated when a valid-looking buffer ends before its declared
// payload. The two are distinct types so callers can tell "wrong file" from
// "corrupt file".
func Decode(data []byte) (Collection, error) {
	r := nvtlReader{data: data}

	magic, err := r.bytes(4)
	if err != nil {
		return Collection{}, err
	}
	if string(magic) != nvtlMagic {
		return Collection{}, &ErrNotNVTL{Reason: "bad magic " + quoteASCII(magic)}
	}
	version, err := r.uint16()
	if err != nil {
		return Collection{}, err
	}
	if version != nvtlVersion {
		return Collection{}, &ErrNotNVTL{Reason: "unsupported version"}
	}

	count, err := r.uint32()
	if err != nil {
		return Collection{}, err
	}
	// Bounds are carried for the renderer's benefit; decoding does not need
	// them, but the header must be complete.
	for i := 0; i < 4; i++ {
		if _, err := r.float64(); err != nil {
			return Collection{}, err
		}
	}

	features := make([]Feature, 0, count)
	for i := uint32(0); i < count; i++ {
		exteriorCount, err := r.uint32()
		if err != nil {
			return Collection{}, err
		}
		interiorCount, err := r.uint32()
		if err != nil {
			return Collection{}, err
		}

		exterior, err := r.ring(exteriorCount)
		if err != nil {
			return Collection{}, err
		}
		poly := Polygon{Exterior: exterior}
		for h := uint32(0); h < interiorCount; h++ {
			holeCount, err := r.uint32()
			if err != nil {
				return Collection{}, err
			}
			hole, err := r.ring(holeCount)
			if err != nil {
				return Collection{}, err
			}
			poly.Interiors = append(poly.Interiors, hole)
		}

		features = append(features, Feature{
			Geometry: Geometry{Type: GeometryTypePolygon, Polygon: poly},
		})
	}

	return Collection{Features: features}, nil
}

// nvtlReader reads little-endian values, reporting the offset and size of
// the first read that runs past the end of the buffer.
type nvtlReader struct {
	data   []byte
	offset int
}

func (r *nvtlReader) bytes(n int) ([]byte, error) {
	if r.offset+n > len(r.data) {
		return nil, &ErrTruncated{Offset: r.offset, Need: n}
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *nvtlReader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *nvtlReader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *nvtlReader) float64() (float64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (r *nvtlReader) ring(count uint32) (Ring, error) {
	// Check the whole ring is present before allocating: a corrupt count
	// must not trigger a huge allocation.
	if r.offset+int(count)*16 > len(r.data) {
		return nil, &ErrTruncated{Offset: r.offset, Need: int(count) * 16}
	}
	ring := make(Ring, count)
	for i := range ring {
		lon, err := r.float64()
		if err != nil {
			return nil, err
		}
		lat, err := r.float64()
		if err != nil {
			return nil, err
		}
		ring[i] = Point{Lon: lon, Lat: lat}
	}
	return ring, nil
}

// quoteASCII renders the magic bytes for error messages, escaping anything
// unprintable.
func quoteASCII(b []byte) string {
	out := make([]byte, 0, len(b)+2)
	out = append(out, '"')
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			out = append(out, c)
		} else {
			out = append(out, '?')
		}
	}
	out = append(out, '"')
	return string(out)
}
