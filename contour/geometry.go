package contour

import "github.com/3MFConsortium/gladius-sub002/vec/v2"

// flt32Epsilon guards denominators the way FLT_EPSILON does in the source this is ported from.
const flt32Epsilon = 1.1920929e-7

// IntersectSegments computes the proper intersection of two line segments p1-p2 and p3-p4
// using the determinant form, returning it only when both parametric coordinates s, t
// lie strictly in (tolerance, 1-tolerance) -- this excludes endpoint grazes by construction.
func IntersectSegments(p1, p2, p3, p4 v2.Vec, tolerance float32) (v2.Vec, bool) {
	determinant := p1.X*(p4.Y-p3.Y) + p2.X*(p3.Y-p4.Y) + p4.X*(p2.Y-p1.Y) + p3.X*(p1.Y-p2.Y)
	if determinant == 0 {
		return v2.Vec{}, false
	}

	s := (p1.X*(p4.Y-p3.Y) + p3.X*(p1.Y-p4.Y) + p4.X*(p3.Y-p1.Y)) / determinant
	t := -(p1.X*(p3.Y-p2.Y) + p2.X*(p1.Y-p3.Y) + p3.X*(p2.Y-p1.Y)) / determinant

	if s > tolerance && s < 1-tolerance && t > tolerance && t < 1-tolerance {
		return p1.Add(p2.Sub(p1).MulScalar(s)), true
	}
	return v2.Vec{}, false
}

// IntersectLines computes the intersection point of the two infinite lines through
// (p1,p2) and (p3,p4), unbounded by segment extent. Returns false for parallel lines.
func IntersectLines(p1, p2, p3, p4 v2.Vec) (v2.Vec, bool) {
	determinant := (p4.Y-p3.Y)*(p2.X-p1.X) - (p2.Y-p1.Y)*(p4.X-p3.X)
	if absf(determinant) <= flt32Epsilon {
		return v2.Vec{}, false
	}

	x := ((p4.X-p3.X)*(p2.X*p1.Y-p1.X*p2.Y) - (p2.X-p1.X)*(p4.X*p3.Y-p3.X*p4.Y)) / determinant
	y := ((p1.Y-p2.Y)*(p4.X*p3.Y-p3.X*p4.Y) - (p3.Y-p4.Y)*(p2.X*p1.Y-p1.X*p2.Y)) / determinant
	return v2.Vec{X: x, Y: y}, true
}

// PointInPolygon reports whether pt is inside poly using the even-odd ray-cast rule.
// poly is assumed to be a closed loop (first vertex repeats at the end, or not -- the
// wrap-around edge is always included).
func PointInPolygon(pt v2.Vec, poly *PolyLine) bool {
	inside := false
	n := len(poly.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly.Vertices[i], poly.Vertices[j]
		intersects := (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y+flt32Epsilon)+vi.X
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// PerpendicularDistance returns the perpendicular distance from pt to the infinite
// line through a and b, falling back to the distance to a when a == b.
func PerpendicularDistance(pt, a, b v2.Vec) float32 {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return pt.Distance(a)
	}
	// |ab x ap| / |ab|
	ap := pt.Sub(a)
	return absf(ab.Cross(ap)) / length
}
