//-----------------------------------------------------------------------------
/*

Douglas-Peucker polyline simplification, grounded on simplifyPolyline /
psimpl::simplify_douglas_peucker usage in PathBuilder.cpp. The recursive
perpendicular-distance algorithm is standard; the vertex-count fallback
mirrors psimpl's simplify_douglas_peucker_n, invoked only when the
unbounded result would exceed the downstream file-format vertex cap.

*/
//-----------------------------------------------------------------------------

package contour

import "github.com/3MFConsortium/gladius-sub002/vec/v2"

// maxVertexCount is the hard cap a handful of downstream slice-file writers impose
// on a single polyline (2^32 - 5, mirroring the unsigned-32-bit vertex index minus
// a handful of reserved sentinel values used by those writers).
const maxVertexCount = (1 << 32) - 5

// Simplify replaces poly's vertex sequence with a subset such that every removed
// vertex lies within perpendicular distance tol of the retained polyline. Endpoints
// are always retained. If tol is 0, Simplify is a no-op.
func Simplify(poly *PolyLine, tol float32) {
	if tol == 0 || len(poly.Vertices) < 3 {
		return
	}

	keep := make([]bool, len(poly.Vertices))
	keep[0] = true
	keep[len(poly.Vertices)-1] = true
	douglasPeucker(poly.Vertices, 0, len(poly.Vertices)-1, tol, keep)

	result := make([]v2.Vec, 0, len(poly.Vertices))
	for i, k := range keep {
		if k {
			result = append(result, poly.Vertices[i])
		}
	}

	if len(result) > maxVertexCount {
		result = simplifyToAtMost(poly.Vertices, maxVertexCount)
	}

	poly.Vertices = result
}

// douglasPeucker recursively marks vertices between first and last (inclusive ends,
// which are always kept) that must be retained to stay within tol.
func douglasPeucker(vertices []v2.Vec, first, last int, tol float32, keep []bool) {
	if last <= first+1 {
		return
	}

	var maxDist float32
	splitIdx := -1
	for i := first + 1; i < last; i++ {
		dist := PerpendicularDistance(vertices[i], vertices[first], vertices[last])
		if dist > maxDist {
			maxDist = dist
			splitIdx = i
		}
	}

	if splitIdx == -1 || maxDist <= tol {
		return
	}

	keep[splitIdx] = true
	douglasPeucker(vertices, first, splitIdx, tol, keep)
	douglasPeucker(vertices, splitIdx, last, tol, keep)
}

// simplifyToAtMost produces at most maxVertices vertices while still approximating
// the shape, by running Douglas-Peucker against a binary search over the tolerance
// until the retained count fits under the cap. Endpoints are always retained.
func simplifyToAtMost(vertices []v2.Vec, maxVertices int) []v2.Vec {
	if len(vertices) <= maxVertices {
		return append([]v2.Vec(nil), vertices...)
	}

	lo, hi := float32(0), maxPerpendicularSpread(vertices)
	var best []v2.Vec
	for iter := 0; iter < 32; iter++ {
		mid := (lo + hi) / 2
		keep := make([]bool, len(vertices))
		keep[0] = true
		keep[len(vertices)-1] = true
		douglasPeucker(vertices, 0, len(vertices)-1, mid, keep)

		count := 0
		for _, k := range keep {
			if k {
				count++
			}
		}

		if count <= maxVertices {
			best = make([]v2.Vec, 0, count)
			for i, k := range keep {
				if k {
					best = append(best, vertices[i])
				}
			}
			hi = mid
		} else {
			lo = mid
		}
	}

	if best == nil {
		// Fallback: decimate uniformly, keeping both endpoints.
		best = make([]v2.Vec, 0, maxVertices)
		step := float64(len(vertices)-1) / float64(maxVertices-1)
		for i := 0; i < maxVertices; i++ {
			best = append(best, vertices[int(float64(i)*step)])
		}
	}
	return best
}

func maxPerpendicularSpread(vertices []v2.Vec) float32 {
	var maxSpread float32
	first, last := vertices[0], vertices[len(vertices)-1]
	for _, v := range vertices {
		d := PerpendicularDistance(v, first, last)
		if d > maxSpread {
			maxSpread = d
		}
	}
	if maxSpread == 0 {
		return 1
	}
	return maxSpread
}
