package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

func openTriangle(gap float32) contour.PolyLine {
	return contour.PolyLine{
		Vertices: []v2.Vec{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 0.5, Y: 1},
			{X: gap, Y: 0},
		},
	}
}

func TestCloseIfPossible_WithinGapCloses(t *testing.T) {
	t.Parallel()
	poly := openTriangle(0.05)
	contour.CloseIfPossible(&poly, 0.2)
	require.True(t, poly.IsClosed)
	require.InDelta(t, poly.Front().X, poly.Back().X, 1e-3)
	require.InDelta(t, poly.Front().Y, poly.Back().Y, 1e-3)
}

func TestCloseIfPossible_BeyondGapStaysOpen(t *testing.T) {
	t.Parallel()
	poly := openTriangle(5)
	contour.CloseIfPossible(&poly, 0.2)
	require.False(t, poly.IsClosed)
}

func TestMergeNearestNeighbor_TwoFragmentsJoinIntoOneClosed(t *testing.T) {
	t.Parallel()

	// Two open halves of a unit square, each ending near the other's start.
	a := contour.PolyLine{Vertices: []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.99}}}
	b := contour.PolyLine{Vertices: []v2.Vec{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0.01}}}

	var quality contour.SliceQuality
	closed, remaining := contour.MergeNearestNeighbor([]contour.PolyLine{a, b}, &quality)

	require.Len(t, closed, 1)
	require.True(t, closed[0].IsClosed)
	// The fragment consumed by the merge is emptied and dropped, so no genuine
	// unclosed polyline is left over.
	for _, p := range remaining {
		require.True(t, p.Empty())
	}
}

func TestMergeNearestNeighbor_EmptyInputReturnsNil(t *testing.T) {
	t.Parallel()
	closed, remaining := contour.MergeNearestNeighbor(nil, nil)
	require.Nil(t, closed)
	require.Nil(t, remaining)
}

func TestMergeNearestNeighbor_DistantFragmentsStayOpen(t *testing.T) {
	t.Parallel()

	// Both gaps (self-closure and cross-merge) are well beyond the 1mm tolerance.
	a := contour.PolyLine{Vertices: []v2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	b := contour.PolyLine{Vertices: []v2.Vec{{X: 1000, Y: 1000}, {X: 1010, Y: 1000}}}

	closed, remaining := contour.MergeNearestNeighbor([]contour.PolyLine{a, b}, nil)
	require.Empty(t, closed)
	require.Len(t, remaining, 2)
	require.False(t, remaining[0].IsClosed)
	require.False(t, remaining[1].IsClosed)
}
