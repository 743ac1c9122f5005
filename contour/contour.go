//-----------------------------------------------------------------------------
/*

Package contour implements the slice-contour pipeline: the
Marching-Squares iso-line tracer, the polyline post-processor (close,
merge, orient, classify), the Douglas-Peucker simplifier, the
self-intersection validator and the quadtree spatial index used for
point-cloud-to-polyline reconstruction.

Winding convention: this package uses the mathematical, Y-up
convention throughout. A positive shoelace sum means counter-clockwise
(CCW). See Extractor.calcSign for how this drives Inner/Outer
classification.

*/
//-----------------------------------------------------------------------------

package contour

import "github.com/3MFConsortium/gladius-sub002/vec/v2"

// ContourMode classifies the role a closed (or not yet closed) polyline plays in a slice.
type ContourMode int

const (
	// Inner marks a hole. Area must be <= 0 (clockwise) once classified.
	Inner ContourMode = iota
	// Outer marks a solid boundary. Area must be >= 0 (counter-clockwise) once classified.
	Outer
	// OpenLine marks a polyline that could not be closed by merging.
	OpenLine
	// ExcludeFromSlice is terminal: such polylines are never rewritten by later passes.
	ExcludeFromSlice
)

func (m ContourMode) String() string {
	switch m {
	case Inner:
		return "Inner"
	case Outer:
		return "Outer"
	case OpenLine:
		return "OpenLine"
	case ExcludeFromSlice:
		return "ExcludeFromSlice"
	default:
		return "Unknown"
	}
}

// Closure tolerances, see PolyLine invariants in spec.
const (
	closeEpsilon       = 1e-3 // mm, front/back distance below which a polyline is considered closed
	closeEpsilonSq     = 1e-6 // mm^2, squared form of closeEpsilon
	defaultMinVertices = 3
)

// PolyLine is an ordered sequence of 2D vertices plus slicing metadata.
type PolyLine struct {
	Vertices          []v2.Vec
	ContourMode       ContourMode
	IsClosed          bool
	HasIntersections  bool
	Area              float32
	SelfIntersections []v2.Vec
}

// NewPolyLine returns an empty open polyline, excluded from the slice until classified.
func NewPolyLine() PolyLine {
	return PolyLine{ContourMode: ExcludeFromSlice}
}

// Front returns the first vertex.
func (p *PolyLine) Front() v2.Vec {
	return p.Vertices[0]
}

// Back returns the last vertex.
func (p *PolyLine) Back() v2.Vec {
	return p.Vertices[len(p.Vertices)-1]
}

// Empty reports whether the polyline holds no vertices.
func (p *PolyLine) Empty() bool {
	return len(p.Vertices) == 0
}

// IsDegenerate reports whether the polyline has fewer than 3 distinct vertices
// (the minimum required to enclose an area).
func (p *PolyLine) IsDegenerate() bool {
	distinct := make([]v2.Vec, 0, defaultMinVertices)
	for _, v := range p.Vertices {
		seen := false
		for _, d := range distinct {
			if d == v {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, v)
			if len(distinct) >= defaultMinVertices {
				return false
			}
		}
	}
	return true
}

// Reverse reverses the vertex order in place.
func (p *PolyLine) Reverse() {
	for i, j := 0, len(p.Vertices)-1; i < j; i, j = i+1, j-1 {
		p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
	}
}

// Clone returns a deep copy, used for snapshot reads (see Extractor.Snapshot).
func (p PolyLine) Clone() PolyLine {
	out := p
	out.Vertices = append([]v2.Vec(nil), p.Vertices...)
	out.SelfIntersections = append([]v2.Vec(nil), p.SelfIntersections...)
	return out
}

// closedWithEpsilon reports whether front and back are within the closure epsilon.
func closedWithEpsilon(front, back v2.Vec) bool {
	return front.SquaredDistance(back) <= closeEpsilonSq
}

// CalcArea computes the signed shoelace area of the polyline, treating it as closed
// (the edge from the last vertex back to the first is always included).
func CalcArea(p *PolyLine) float32 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	var area float32
	for i := 0; i < n-1; i++ {
		a, b := p.Vertices[i], p.Vertices[i+1]
		area += a.X*b.Y - b.X*a.Y
	}
	first, last := p.Vertices[0], p.Vertices[n-1]
	area += last.X*first.Y - first.X*last.Y
	return area * 0.5
}

// IsClockwise reports whether the polyline winds clockwise under the Y-up convention,
// i.e. a negative signed area. Panics-free variant of the original isClockwise: callers
// are expected to only invoke this on polylines with >= 3 vertices.
func IsClockwise(p *PolyLine) bool {
	return CalcArea(p) < 0
}

// SliceQuality aggregates counters updated monotonically during post-processing.
type SliceQuality struct {
	InitiallyOpenPolygons          int
	SelfIntersections              int
	UnusedVertices                 int
	IgnoredPolyLines               int
	ClosedPolyLines                int
	OpenPolyLinesThatCouldNotClose int
	EnclosedArea                   float32
}

// ClippingArea maps grid coordinates (0..W, 0..H) to world coordinates (mm) by affine scaling.
type ClippingArea struct {
	XMin, YMin, XMax, YMax float32
}

// Width returns xmax-xmin.
func (c ClippingArea) Width() float32 { return c.XMax - c.XMin }

// Height returns ymax-ymin.
func (c ClippingArea) Height() float32 { return c.YMax - c.YMin }

// Degenerate reports whether the clipping area has zero width or height.
func (c ClippingArea) Degenerate() bool {
	const eps = 1e-12
	return absf(c.Width()) < eps || absf(c.Height()) < eps
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
