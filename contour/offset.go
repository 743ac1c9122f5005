//-----------------------------------------------------------------------------
/*

Polygon offsetting (inflation), delegated to a pluggable OffsetBackend.
ClipperOffsetBackend wires the go-clipper/clipper2 port of Clipper2 --
the same library (clipper2/clipper.h) the original
ContourExtractor::generateOffsetContours calls into with round joins
and polygon end-caps.

*/
//-----------------------------------------------------------------------------

package contour

import (
	clipper "github.com/go-clipper/clipper2"

	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

// OffsetBackend inflates (or shrinks, for negative offsets) a set of closed paths.
type OffsetBackend interface {
	Inflate(paths [][]v2.Vec, offset float32) ([][]v2.Vec, error)
}

// clipperScale converts between this module's mm-as-float32 coordinates and
// Clipper2's int64 coordinate space. Clipper2 has no native floating-point API,
// so paths are scaled up before offsetting and back down afterwards; this
// preserves sub-micron precision for the mm-scale geometry this module targets.
const clipperScale = 1 << 16

// ClipperOffsetBackend implements OffsetBackend via go-clipper/clipper2's
// InflatePaths64, using round joins and polygon end-caps as specified.
type ClipperOffsetBackend struct {
	MiterLimit   float64
	ArcTolerance float64
}

// NewClipperOffsetBackend returns a backend with Clipper2's conventional defaults.
func NewClipperOffsetBackend() *ClipperOffsetBackend {
	return &ClipperOffsetBackend{MiterLimit: 2.0, ArcTolerance: 0.25}
}

// Inflate implements OffsetBackend.
func (b *ClipperOffsetBackend) Inflate(paths [][]v2.Vec, offset float32) ([][]v2.Vec, error) {
	in := make(clipper.Paths64, len(paths))
	for i, path := range paths {
		p := make(clipper.Path64, len(path))
		for j, v := range path {
			p[j] = clipper.Point64{X: int64(v.X * clipperScale), Y: int64(v.Y * clipperScale)}
		}
		in[i] = p
	}

	out, err := clipper.InflatePaths64(in, float64(offset)*clipperScale, clipper.JoinRound, clipper.EndPolygon,
		clipper.OffsetOptions{MiterLimit: b.MiterLimit, ArcTolerance: b.ArcTolerance})
	if err != nil {
		return nil, err
	}

	result := make([][]v2.Vec, len(out))
	for i, path := range out {
		p := make([]v2.Vec, len(path))
		for j, pt := range path {
			p[j] = v2.Vec{X: float32(pt.X) / clipperScale, Y: float32(pt.Y) / clipperScale}
		}
		result[i] = p
	}
	return result, nil
}
