package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

func unitTree() *contour.Quadtree {
	return contour.NewQuadtree(contour.Rect{Min: v2.Vec{X: 0, Y: 0}, Max: v2.Vec{X: 10, Y: 10}})
}

func TestQuadtree_InsertAndFind(t *testing.T) {
	t.Parallel()
	tree := unitTree()
	p := contour.PointWithNormal{Position: v2.Vec{X: 1, Y: 1}, Normal: v2.Vec{X: 0, Y: 1}}
	require.NoError(t, tree.Insert(p))

	idx, ok := tree.Find(v2.Vec{X: 1, Y: 1})
	require.True(t, ok)
	require.GreaterOrEqual(t, idx, 0)
}

func TestQuadtree_InsertOutOfDomain(t *testing.T) {
	t.Parallel()
	tree := unitTree()
	err := tree.Insert(contour.PointWithNormal{Position: v2.Vec{X: 100, Y: 100}})
	require.ErrorIs(t, err, contour.ErrOutOfDomain)
}

func TestQuadtree_SplitsOnSecondInsert(t *testing.T) {
	t.Parallel()
	tree := unitTree()
	require.NoError(t, tree.Insert(contour.PointWithNormal{Position: v2.Vec{X: 1, Y: 1}}))
	require.NoError(t, tree.Insert(contour.PointWithNormal{Position: v2.Vec{X: 9, Y: 9}}))

	neighbors := tree.FindNeighbors(v2.Vec{X: 5, Y: 5}, 10)
	require.Len(t, neighbors, 2)
}

func TestQuadtree_FindNearest(t *testing.T) {
	t.Parallel()
	tree := unitTree()
	require.NoError(t, tree.Insert(contour.PointWithNormal{Position: v2.Vec{X: 1, Y: 1}}))
	require.NoError(t, tree.Insert(contour.PointWithNormal{Position: v2.Vec{X: 9, Y: 9}}))

	nearest, ok := tree.FindNearest(v2.Vec{X: 8, Y: 8})
	require.True(t, ok)
	require.Equal(t, v2.Vec{X: 9, Y: 9}, nearest.Position)
}

func TestQuadtree_RemoveKeepsLeafWhileSiblingHoldsPoint(t *testing.T) {
	t.Parallel()
	tree := unitTree()
	a := contour.PointWithNormal{Position: v2.Vec{X: 1, Y: 1}}
	b := contour.PointWithNormal{Position: v2.Vec{X: 9, Y: 9}}
	require.NoError(t, tree.Insert(a))
	require.NoError(t, tree.Insert(b))

	tree.Remove(a)
	_, ok := tree.Find(v2.Vec{X: 1, Y: 1})
	require.True(t, ok) // the leaf still exists, just emptied

	neighbors := tree.FindNeighbors(v2.Vec{X: 0, Y: 0}, 10)
	require.Len(t, neighbors, 1)
	require.Equal(t, b.Position, neighbors[0].Position)
}

func TestQuadtree_AnyPointOnEmptyTree(t *testing.T) {
	t.Parallel()
	tree := unitTree()
	_, ok := tree.AnyPoint()
	require.False(t, ok)
}
