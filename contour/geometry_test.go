package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

func TestIntersectLines_CrossingLines(t *testing.T) {
	t.Parallel()
	pt, ok := contour.IntersectLines(
		v2.Vec{X: 0, Y: 0}, v2.Vec{X: 2, Y: 2},
		v2.Vec{X: 0, Y: 2}, v2.Vec{X: 2, Y: 0},
	)
	require.True(t, ok)
	require.InDelta(t, 1.0, pt.X, 1e-4)
	require.InDelta(t, 1.0, pt.Y, 1e-4)
}

func TestIntersectLines_ParallelReturnsFalse(t *testing.T) {
	t.Parallel()
	_, ok := contour.IntersectLines(
		v2.Vec{X: 0, Y: 0}, v2.Vec{X: 1, Y: 0},
		v2.Vec{X: 0, Y: 1}, v2.Vec{X: 1, Y: 1},
	)
	require.False(t, ok)
}

func TestIntersectLines_UnboundedBeyondSegmentExtent(t *testing.T) {
	t.Parallel()
	// These segments don't overlap, but the infinite lines through them do.
	pt, ok := contour.IntersectLines(
		v2.Vec{X: 0, Y: 0}, v2.Vec{X: 1, Y: 0},
		v2.Vec{X: 5, Y: -5}, v2.Vec{X: 5, Y: 5},
	)
	require.True(t, ok)
	require.InDelta(t, 5.0, pt.X, 1e-4)
	require.InDelta(t, 0.0, pt.Y, 1e-4)
}

func TestPointInPolygon_InsideAndOutside(t *testing.T) {
	t.Parallel()
	poly := square(4)

	require.True(t, contour.PointInPolygon(v2.Vec{X: 2, Y: 2}, &poly))
	require.False(t, contour.PointInPolygon(v2.Vec{X: 10, Y: 10}, &poly))
}

func TestPerpendicularDistance_OffLine(t *testing.T) {
	t.Parallel()
	d := contour.PerpendicularDistance(v2.Vec{X: 0, Y: 5}, v2.Vec{X: -5, Y: 0}, v2.Vec{X: 5, Y: 0})
	require.InDelta(t, 5.0, d, 1e-4)
}

func TestPerpendicularDistance_OnLineIsZero(t *testing.T) {
	t.Parallel()
	d := contour.PerpendicularDistance(v2.Vec{X: 2, Y: 0}, v2.Vec{X: -5, Y: 0}, v2.Vec{X: 5, Y: 0})
	require.InDelta(t, 0.0, d, 1e-4)
}

func TestPerpendicularDistance_DegenerateSegmentFallsBackToPointDistance(t *testing.T) {
	t.Parallel()
	d := contour.PerpendicularDistance(v2.Vec{X: 3, Y: 4}, v2.Vec{X: 0, Y: 0}, v2.Vec{X: 0, Y: 0})
	require.InDelta(t, 5.0, d, 1e-4)
}
