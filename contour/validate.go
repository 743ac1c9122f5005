//-----------------------------------------------------------------------------
/*

Self-intersection validator, grounded on ContourValidator.cpp.

*/
//-----------------------------------------------------------------------------

package contour

import "github.com/3MFConsortium/gladius-sub002/vec/v2"

// defaultIntersectionWindow is the half-size (in vertices) of the neighborhood
// examined around each vertex by Validate.
const defaultIntersectionWindow = 50

// intersectionTolerance excludes endpoint grazes: an intersection is only reported
// when both parametric coordinates lie strictly in (tolerance, 1-tolerance).
const intersectionTolerance = 5e-2

// ValidationResult reports whether a polyline is free of self-intersections.
type ValidationResult struct {
	IntersectionFree bool
}

// hasIntersectionInRange checks the segment ending at vertex (vertices[idx-1], vertices[idx])
// against every candidate segment in [begin, end), excluding the three segments adjacent
// to vertex itself, and returns the first intersection found.
func hasIntersectionInRange(vertices []v2.Vec, idx, begin, end int) (v2.Vec, bool) {
	if idx == begin {
		return v2.Vec{}, false
	}
	prevVertex := vertices[idx-1]
	vertex := vertices[idx]

	for i := begin; i+1 < end; i++ {
		if i == idx || i == idx-1 || i == idx+1 {
			continue
		}
		if pt, ok := IntersectSegments(vertices[i], vertices[i+1], prevVertex, vertex, intersectionTolerance); ok {
			return pt, true
		}
	}
	return v2.Vec{}, false
}

// EndCrossesStart checks the last segment (from the last vertex's predecessor to
// the last vertex) against all earlier segments. Used by
// CloseIfPossible to decide whether to trim the leading vertex before closing.
func EndCrossesStart(poly *PolyLine) bool {
	n := len(poly.Vertices)
	if n < 2 {
		return false
	}
	lastIdx := n - 1
	if pt, ok := hasIntersectionInRange(poly.Vertices, lastIdx, 0, n); ok {
		poly.SelfIntersections = append(poly.SelfIntersections, pt)
		return true
	}
	return false
}

// Validate populates poly.SelfIntersections with every self-intersection found by
// examining, for each vertex v_i (i >= 1), the segments in a window of 2*numberOfNeighbors
// centered at i (excluding the three segments adjacent to v_i).
func Validate(poly *PolyLine, numberOfNeighbors int) ValidationResult {
	result := ValidationResult{IntersectionFree: true}
	if len(poly.Vertices) < 3 {
		return result
	}
	poly.SelfIntersections = poly.SelfIntersections[:0]

	n := len(poly.Vertices)
	for i := 1; i < n; i++ {
		begin := i - numberOfNeighbors
		if begin < 0 {
			begin = 0
		}
		end := i + numberOfNeighbors
		if end > n {
			end = n
		}

		if pt, ok := hasIntersectionInRange(poly.Vertices, i, begin, end); ok {
			result.IntersectionFree = false
			poly.SelfIntersections = append(poly.SelfIntersections, pt)
		}
	}

	if EndCrossesStart(poly) {
		result.IntersectionFree = false
	}

	poly.HasIntersections = !result.IntersectionFree
	return result
}
