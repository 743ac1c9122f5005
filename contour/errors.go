package contour

import (
	"errors"
	"fmt"
)

// GridMappingError is returned when grid coordinates map outside the clipping
// area, or the clipping area itself is degenerate. Fatal to the current slice;
// callers must propagate it, not swallow it.
type GridMappingError struct {
	X, Y float32
	Clip ClippingArea
}

func (e *GridMappingError) Error() string {
	return fmt.Sprintf("contour: grid coordinate (%.4f, %.4f) does not map into clipping area %+v", e.X, e.Y, e.Clip)
}

// ErrOutOfDomain is returned by Quadtree.Insert when the point lies outside the root rectangle.
var ErrOutOfDomain = errors.New("contour: point is outside quadtree domain")

// ErrDegeneratePolygon marks a polyline with fewer than 3 distinct vertices. Non-fatal:
// such polylines are silently dropped before they reach the closed set.
var ErrDegeneratePolygon = errors.New("contour: polygon has fewer than 3 distinct vertices")
