//-----------------------------------------------------------------------------
/*

Point-cloud-to-polyline reconstruction, grounded on PointsToContour.cpp.
See SPEC_FULL.md §4.8 for the resolution of the determineConnectionCost
Open Question: this module sums both squared-distance terms when a
tangent intersection exists, and falls back to plain squared distance
(dimensionally consistent, both in mm^2) otherwise.

*/
//-----------------------------------------------------------------------------

package contour

import "github.com/3MFConsortium/gladius-sub002/vec/v2"

// DetermineConnectionCost scores how good a candidate next-hop end is from start,
// by intersecting the tangent line of each point (perpendicular to its normal).
func DetermineConnectionCost(start, end PointWithNormal) float32 {
	startTangent := v2.Vec{X: start.Normal.Y, Y: -start.Normal.X}
	endTangent := v2.Vec{X: end.Normal.Y, Y: -end.Normal.X}

	intersection, ok := IntersectLines(start.Position, start.Position.Add(startTangent),
		end.Position, end.Position.Add(endTangent))
	if !ok {
		return end.Position.SquaredDistance(start.Position)
	}

	return intersection.SquaredDistance(start.Position) + intersection.SquaredDistance(end.Position)
}

// PointsToPolylines greedily walks pointCloud starting from any stored point,
// repeatedly hopping to the neighbor within maxVertexDistance that minimizes
// DetermineConnectionCost, consuming each point as it is visited. The resulting
// polylines are marked OpenLine: they are raw, unclosed, unoriented point chains --
// closing and orientation are the contour extractor's job once traced/merged.
func PointsToPolylines(pointCloud *Quadtree, maxVertexDistance float32) []PolyLine {
	start, ok := pointCloud.AnyPoint()
	if !ok {
		return nil
	}

	var polyLines []PolyLine
	for ok {
		var poly PolyLine
		poly.Vertices = append(poly.Vertices, start.Position)

		current := start
		pointCloud.Remove(current)

		for {
			neighbors := pointCloud.FindNeighbors(current.Position, maxVertexDistance)
			if len(neighbors) == 0 {
				break
			}

			best := neighbors[0]
			bestCost := DetermineConnectionCost(current, best)
			for _, cand := range neighbors[1:] {
				cost := DetermineConnectionCost(current, cand)
				if cost < bestCost {
					bestCost = cost
					best = cand
				}
			}

			poly.Vertices = append(poly.Vertices, best.Position)
			current = best
			pointCloud.Remove(best)
		}

		poly.IsClosed = false
		poly.ContourMode = OpenLine
		polyLines = append(polyLines, poly)

		start, ok = pointCloud.AnyPoint()
	}

	return polyLines
}
