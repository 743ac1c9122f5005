package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

func TestValidate_NonSelfIntersectingSquare(t *testing.T) {
	t.Parallel()
	poly := square(1)
	result := contour.Validate(&poly, 50)
	require.True(t, result.IntersectionFree)
	require.Empty(t, poly.SelfIntersections)
	require.False(t, poly.HasIntersections)
}

func TestValidate_BowtieIsDetected(t *testing.T) {
	t.Parallel()

	// Classic bowtie/figure-eight: two triangles sharing a crossing in the middle.
	poly := contour.PolyLine{Vertices: []v2.Vec{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}}
	result := contour.Validate(&poly, 50)
	require.False(t, result.IntersectionFree)
	require.NotEmpty(t, poly.SelfIntersections)
	require.True(t, poly.HasIntersections)
}

func TestValidate_ShortPolylineIsTriviallyFree(t *testing.T) {
	t.Parallel()
	poly := contour.PolyLine{Vertices: []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	result := contour.Validate(&poly, 50)
	require.True(t, result.IntersectionFree)
}

func TestIntersectSegments_ProperCrossing(t *testing.T) {
	t.Parallel()
	pt, ok := contour.IntersectSegments(
		v2.Vec{X: 0, Y: 0}, v2.Vec{X: 1, Y: 1},
		v2.Vec{X: 0, Y: 1}, v2.Vec{X: 1, Y: 0},
		5e-2,
	)
	require.True(t, ok)
	require.InDelta(t, 0.5, pt.X, 1e-4)
	require.InDelta(t, 0.5, pt.Y, 1e-4)
}

func TestIntersectSegments_EndpointGrazeExcluded(t *testing.T) {
	t.Parallel()
	_, ok := contour.IntersectSegments(
		v2.Vec{X: 0, Y: 0}, v2.Vec{X: 1, Y: 0},
		v2.Vec{X: 1, Y: 0}, v2.Vec{X: 1, Y: 1},
		5e-2,
	)
	require.False(t, ok)
}

func TestIntersectSegments_Parallel(t *testing.T) {
	t.Parallel()
	_, ok := contour.IntersectSegments(
		v2.Vec{X: 0, Y: 0}, v2.Vec{X: 1, Y: 0},
		v2.Vec{X: 0, Y: 1}, v2.Vec{X: 1, Y: 1},
		5e-2,
	)
	require.False(t, ok)
}
