//-----------------------------------------------------------------------------
/*

Package v2i provides a 2D vector of int components, used for grid cell
indices and marching-squares coordinates. Mirrors sdfx's vec/v2i
package.

*/
//-----------------------------------------------------------------------------

package v2i

// Vec is a 2D integer vector.
type Vec struct {
	X, Y int
}

// Add returns a+b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y}
}

// Equals reports whether a and b are identical.
func (a Vec) Equals(b Vec) bool {
	return a.X == b.X && a.Y == b.Y
}

// IsZero reports whether both components are zero.
func (a Vec) IsZero() bool {
	return a.X == 0 && a.Y == 0
}
