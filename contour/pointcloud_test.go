package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

func TestDetermineConnectionCost_TangentsIntersect(t *testing.T) {
	t.Parallel()

	// Two points on a circle of radius 1 centered at the origin, normals pointing
	// outward: their tangents intersect somewhere off the chord.
	start := contour.PointWithNormal{Position: v2.Vec{X: 1, Y: 0}, Normal: v2.Vec{X: 1, Y: 0}}
	end := contour.PointWithNormal{Position: v2.Vec{X: 0, Y: 1}, Normal: v2.Vec{X: 0, Y: 1}}

	cost := contour.DetermineConnectionCost(start, end)
	require.Greater(t, cost, float32(0))
}

func TestDetermineConnectionCost_ParallelTangentsFallBackToSquaredDistance(t *testing.T) {
	t.Parallel()

	// Identical normals make the tangent lines parallel: no intersection, so the
	// cost must fall back to plain squared distance.
	start := contour.PointWithNormal{Position: v2.Vec{X: 0, Y: 0}, Normal: v2.Vec{X: 0, Y: 1}}
	end := contour.PointWithNormal{Position: v2.Vec{X: 3, Y: 4}, Normal: v2.Vec{X: 0, Y: 1}}

	cost := contour.DetermineConnectionCost(start, end)
	require.InDelta(t, float32(25), cost, 1e-3)
}

func TestPointsToPolylines_ChainsNearbyPoints(t *testing.T) {
	t.Parallel()

	tree := contour.NewQuadtree(contour.Rect{Min: v2.Vec{X: 0, Y: 0}, Max: v2.Vec{X: 10, Y: 10}})
	points := []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	for _, p := range points {
		require.NoError(t, tree.Insert(contour.PointWithNormal{Position: p, Normal: v2.Vec{X: 0, Y: 1}}))
	}

	polylines := contour.PointsToPolylines(tree, 1.5)
	require.NotEmpty(t, polylines)

	totalVertices := 0
	for _, p := range polylines {
		require.Equal(t, contour.OpenLine, p.ContourMode)
		totalVertices += len(p.Vertices)
	}
	require.Equal(t, 4, totalVertices)
}

func TestPointsToPolylines_EmptyCloudReturnsNil(t *testing.T) {
	t.Parallel()
	tree := contour.NewQuadtree(contour.Rect{Min: v2.Vec{X: 0, Y: 0}, Max: v2.Vec{X: 10, Y: 10}})
	require.Nil(t, contour.PointsToPolylines(tree, 1))
}
