package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/layer"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

// identityOffsetBackend returns its input unchanged, used to test
// GenerateOffsetContours' plumbing without depending on clipper2's actual geometry.
type identityOffsetBackend struct {
	lastOffset float32
}

func (b *identityOffsetBackend) Inflate(paths [][]v2.Vec, offset float32) ([][]v2.Vec, error) {
	b.lastOffset = offset
	out := make([][]v2.Vec, len(paths))
	copy(out, paths)
	return out, nil
}

func TestExtractor_AddAndPostProcess_SquareWithHole(t *testing.T) {
	t.Parallel()

	distmap := squareDistanceMap(16, 2)
	hole := 3
	size := 16
	for y := size/2 - hole; y < size/2+hole; y++ {
		for x := size/2 - hole; x < size/2+hole; x++ {
			distmap.Values[y*size+x] = 1
		}
	}
	grid, clip := layer.BuildGridStates(distmap)

	extractor := contour.NewExtractor(&identityOffsetBackend{})
	require.NoError(t, extractor.AddIsoLineFromMarchingSquare(grid, clip))
	extractor.RunPostProcessing()

	closed := extractor.GetContour()
	require.Len(t, closed, 2)

	var outers, inners int
	for _, p := range closed {
		switch p.ContourMode {
		case contour.Outer:
			outers++
		case contour.Inner:
			inners++
		}
	}
	require.Equal(t, 1, outers)
	require.Equal(t, 1, inners)
}

func TestExtractor_Clear(t *testing.T) {
	t.Parallel()

	distmap := squareDistanceMap(8, 2)
	grid, clip := layer.BuildGridStates(distmap)

	extractor := contour.NewExtractor(&identityOffsetBackend{})
	require.NoError(t, extractor.AddIsoLineFromMarchingSquare(grid, clip))
	extractor.RunPostProcessing()
	require.NotEmpty(t, extractor.GetContour())

	extractor.Clear()
	require.Empty(t, extractor.GetContour())
	require.Empty(t, extractor.GetOpenContours())
	require.Equal(t, contour.SliceQuality{}, extractor.GetSliceQuality())
}

func TestExtractor_Snapshot_IsIndependentCopy(t *testing.T) {
	t.Parallel()

	distmap := squareDistanceMap(8, 2)
	grid, clip := layer.BuildGridStates(distmap)

	extractor := contour.NewExtractor(&identityOffsetBackend{})
	require.NoError(t, extractor.AddIsoLineFromMarchingSquare(grid, clip))
	extractor.RunPostProcessing()

	snap := extractor.Snapshot()
	require.NotEmpty(t, snap)
	snap[0].Vertices[0].X = 12345

	live := extractor.GetContour()
	require.NotEqual(t, float32(12345), live[0].Vertices[0].X)
}

func TestExtractor_GenerateOffsetContours_PassesOffsetThrough(t *testing.T) {
	t.Parallel()

	backend := &identityOffsetBackend{}
	extractor := contour.NewExtractor(backend)

	poly := square(2)
	out, err := extractor.GenerateOffsetContours(0.5, []contour.PolyLine{poly})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, float32(0.5), backend.lastOffset)
}
