//-----------------------------------------------------------------------------
/*

Polyline closure and merging, grounded on closePolyLineIfPossible and
mergeOpenContoursWithNearestNeighbor in the original ContourExtractor.cpp.

*/
//-----------------------------------------------------------------------------

package contour

import (
	"math"

	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

// mergeSelfClosureTolerance is the tolerance merge_nearest_neighbor uses when a
// polyline's nearest neighbor turns out to be itself, and also the maximum gap
// it bridges when appending a different polyline.
const mergeSelfClosureTolerance = 1.0 // mm

// isMergeable reports whether the gap between start and end is small enough to close.
func isMergeable(start, end v2.Vec, allowedGapSize float32) bool {
	return start.Sub(end).Length() <= allowedGapSize
}

// CloseIfPossible closes poly in place if its front and back vertices are within gap
// of each other. It first checks whether the closing segment would cross an earlier
// segment (end_crosses_start) and, if so, trims the leading vertex before appending
// the closing copy of the first vertex.
func CloseIfPossible(poly *PolyLine, gap float32) {
	if len(poly.Vertices) == 0 {
		return
	}
	if !isMergeable(poly.Front(), poly.Back(), gap) {
		return
	}

	if EndCrossesStart(poly) {
		poly.Vertices = poly.Vertices[1:]
	}

	if !closedWithEpsilon(poly.Front(), poly.Back()) {
		poly.Vertices = append(poly.Vertices, poly.Front())
	}
	poly.IsClosed = true
}

// mergePolyLinesIfPossible appends toBeConcatenated's vertices onto target's tail if
// the gap between target's back and toBeConcatenated's front is within allowedGapSize.
// On success toBeConcatenated is emptied.
func mergePolyLinesIfPossible(target, toBeConcatenated *PolyLine, allowedGapSize float32) {
	if target.Empty() || toBeConcatenated.Empty() {
		return
	}
	if target.Back().Sub(toBeConcatenated.Front()).Length() > allowedGapSize {
		return
	}
	target.Vertices = append(target.Vertices, toBeConcatenated.Vertices...)
	toBeConcatenated.Vertices = nil
}

// MergeNearestNeighbor iteratively merges open polylines whose endpoints are close
// enough, for at most len(open)+1 passes (the algorithmic safeguard against
// unbounded SDF-sampling fragments). Polylines that close during a pass are
// validated (self-intersections counted into quality) and appended to closed;
// the remaining still-open polylines are returned.
func MergeNearestNeighbor(open []PolyLine, quality *SliceQuality) (closed, remaining []PolyLine) {
	if len(open) == 0 {
		return nil, nil
	}

	findNearestNeighbor := func(pos int) (int, float32) {
		if open[pos].Empty() {
			return -1, 0
		}
		minDist := float32(math.MaxFloat32)
		minIdx := -1
		for i := range open {
			if open[i].Empty() {
				continue
			}
			dist := open[i].Front().Sub(open[pos].Back()).Length()
			if dist < minDist {
				minDist = dist
				minIdx = i
			}
		}
		return minIdx, minDist
	}

	iterationLimit := len(open) + 1
	for pass := 0; len(open) > 0 && pass < iterationLimit; pass++ {
		for i := range open {
			nbIdx, _ := findNearestNeighbor(i)
			if nbIdx < 0 {
				continue
			}
			if nbIdx == i {
				CloseIfPossible(&open[i], mergeSelfClosureTolerance)
			} else {
				mergePolyLinesIfPossible(&open[i], &open[nbIdx], mergeSelfClosureTolerance)
			}
			if open[i].IsClosed {
				Validate(&open[i], defaultIntersectionWindow)
				if quality != nil {
					quality.SelfIntersections += len(open[i].SelfIntersections)
				}
				closed = append(closed, open[i])
				open[i] = PolyLine{}
			}
		}

		filtered := open[:0]
		for _, p := range open {
			if !p.IsClosed && !p.Empty() {
				filtered = append(filtered, p)
			}
		}
		open = filtered
	}

	return closed, open
}
