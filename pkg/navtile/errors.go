package navtile

import (
	"fmt"
)

// ErrNotNVTL indicates a buffer that is not an NVTL buffer at all: the magic
// bytes or format version do not match. This is distinct from ErrTruncated,
// which indicates a buffer that starts as valid NVTL but ends early.
type ErrNotNVTL struct {
	Reason string
}

func (e *ErrNotNVTL) Error() string {
	return fmt.Sprintf("not an NVTL buffer: %s", e.Reason)
}

// ErrTruncated indicates an NVTL buffer whose payload ends before the
// declared contents: the header counts promise more bytes than are present.
type ErrTruncated struct {
	Offset int // byte offset where reading stopped
	Need   int // bytes required at that offset
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("truncated NVTL buffer: need %d bytes at offset %d", e.Need, e.Offset)
}

// ErrNegativeTolerance indicates a caller passed a negative simplification
// tolerance. Tolerances must be >= 0; zero means no simplification.
type ErrNegativeTolerance struct {
	Tolerance float64
}

func (e *ErrNegativeTolerance) Error() string {
	return fmt.Sprintf("negative simplification tolerance: %g", e.Tolerance)
}
