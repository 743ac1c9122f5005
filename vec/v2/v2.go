//-----------------------------------------------------------------------------
/*

Package v2 provides a 2D vector of float32 components.

Semantic unit is context-determined: millimeters in world space, or
cells in grid space. Mirrors the chainable method style of sdfx's
vec/v3 package (Add/Sub/Mul/DivScalar/Dot/Length/...), adapted to 2D
and to the float32 precision this module's data model requires.

*/
//-----------------------------------------------------------------------------

package v2

import "math"

// Vec is a 2D vector.
type Vec struct {
	X, Y float32
}

// Add returns a+b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a*b.
func (a Vec) Mul(b Vec) Vec {
	return Vec{a.X * b.X, a.Y * b.Y}
}

// Div returns the component-wise quotient a/b.
func (a Vec) Div(b Vec) Vec {
	return Vec{a.X / b.X, a.Y / b.Y}
}

// AddScalar adds s to both components.
func (a Vec) AddScalar(s float32) Vec {
	return Vec{a.X + s, a.Y + s}
}

// MulScalar scales the vector by s.
func (a Vec) MulScalar(s float32) Vec {
	return Vec{a.X * s, a.Y * s}
}

// DivScalar divides both components by s.
func (a Vec) DivScalar(s float32) Vec {
	return Vec{a.X / s, a.Y / s}
}

// Dot returns the dot product a.b.
func (a Vec) Dot(b Vec) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z-component of the 3D cross product (a.X, a.Y, 0) x (b.X, b.Y, 0).
func (a Vec) Cross(b Vec) float32 {
	return a.X*b.Y - a.Y*b.X
}

// SquaredLength returns the squared Euclidean norm.
func (a Vec) SquaredLength() float32 {
	return a.X*a.X + a.Y*a.Y
}

// Length returns the Euclidean norm.
func (a Vec) Length() float32 {
	return float32(math.Sqrt(float64(a.SquaredLength())))
}

// Distance returns the Euclidean distance between a and b.
func (a Vec) Distance(b Vec) float32 {
	return a.Sub(b).Length()
}

// SquaredDistance returns the squared Euclidean distance between a and b, cheaper than Distance.
func (a Vec) SquaredDistance(b Vec) float32 {
	return a.Sub(b).SquaredLength()
}

// Normalize returns a unit vector in the same direction, or the zero vector if a is zero.
func (a Vec) Normalize() Vec {
	l := a.Length()
	if l == 0 {
		return Vec{}
	}
	return a.DivScalar(l)
}

// Perpendicular returns a vector rotated 90 degrees counter-clockwise.
func (a Vec) Perpendicular() Vec {
	return Vec{-a.Y, a.X}
}

// Lerp linearly interpolates between a and b by t in [0,1].
func (a Vec) Lerp(b Vec, t float32) Vec {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Clamp clamps each component of a to the [lo, hi] box, component-wise.
func (a Vec) Clamp(lo, hi Vec) Vec {
	return Vec{clampf(a.X, lo.X, hi.X), clampf(a.Y, lo.Y, hi.Y)}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxComponent returns the largest of X and Y.
func (a Vec) MaxComponent() float32 {
	if a.X > a.Y {
		return a.X
	}
	return a.Y
}

// Equal reports whether a and b are within tol of each other (Euclidean).
func (a Vec) Equal(b Vec, tol float32) bool {
	return a.SquaredDistance(b) <= tol*tol
}
