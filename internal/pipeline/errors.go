package pipeline

import (
	"fmt"
)

// ErrDegenerateRing indicates a ring with too few points to bound an area.
type ErrDegenerateRing struct {
	Points int
}

func (e *ErrDegenerateRing) Error() string {
	return fmt.Sprintf("degenerate ring: %d points (need at least 3 distinct points before closure)", e.Points)
}

// ErrInvalidGeometry indicates geometry the pipeline cannot process.
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
}

// ErrMergeFailed indicates the geometry engine failed while computing the
// polygon union. The merger recovers from this by returning the unmerged
// input; it is never surfaced as a pipeline failure.
type ErrMergeFailed struct {
	Cause interface{}
}

func (e *ErrMergeFailed) Error() string {
	return fmt.Sprintf("polygon union failed: %v", e.Cause)
}
