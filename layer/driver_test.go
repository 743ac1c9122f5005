package layer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/layer"
)

// planeSampler returns a distance map for the plane z - heightOffset, i.e. a flat
// slab whose sign flips exactly at z == heightOffset, with a circular "inside" disc
// so every sampled slice produces one closed contour.
type planeSampler struct {
	resolution int
}

func (s *planeSampler) Sample(z float32, pixelSize float32) (layer.DistanceMap, error) {
	size := s.resolution
	values := make([]float32, size*size)
	cx, cy := float32(size)/2, float32(size)/2
	radius := float32(size) / 3
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float32(x)-cx, float32(y)-cy
			d := dx*dx + dy*dy - radius*radius
			if d < 0 {
				values[y*size+x] = -1
			} else {
				values[y*size+x] = 1
			}
		}
	}
	return layer.DistanceMap{Width: size, Height: size, PixelSize: pixelSize, Values: values}, nil
}

func newTestDriver(t *testing.T) *layer.Driver {
	t.Helper()
	extractor := contour.NewExtractor(contour.NewClipperOffsetBackend())
	d := layer.NewDriver(&planeSampler{resolution: 32}, extractor)
	d.LayerIncrement = 0.5
	d.BeginExport(0, 2, 1.0, 32, 32)
	return d
}

func TestDriver_ComputeSliceAsync_ProducesContour(t *testing.T) {
	t.Parallel()

	extractor := contour.NewExtractor(contour.NewClipperOffsetBackend())
	d := layer.NewDriver(&planeSampler{resolution: 32}, extractor)
	d.LayerIncrement = 0.5
	d.BeginExport(0, 2, 1.0, 32, 32)

	future := d.ComputeSliceAsync(context.Background(), 1.0)
	require.NoError(t, future.Wait(context.Background()))
	require.NotEmpty(t, extractor.GetContour())
}

func TestDriver_Run_StepsThroughHeightRange(t *testing.T) {
	t.Parallel()

	d := newTestDriver(t)
	err := d.Run(context.Background(), nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d.Progress(), 1e-6)
}

func TestDriver_Run_ConvertsVoxelGridWhenConverterProvided(t *testing.T) {
	t.Parallel()

	d := newTestDriver(t)

	converted := false
	converter := converterFunc(func(grid *layer.VoxelGrid) error {
		converted = true
		require.NotNil(t, grid)
		return nil
	})

	require.NoError(t, d.Run(context.Background(), converter))
	require.True(t, converted)
}

func TestDriver_Cancel_StopsBeforeRangeCompletes(t *testing.T) {
	t.Parallel()

	d := newTestDriver(t)
	d.Cancel()
	require.NoError(t, d.Run(context.Background(), nil))
	require.Less(t, d.Progress(), 1.0)
}

// converterFunc adapts a plain function to the layer.MeshConverter interface.
type converterFunc func(grid *layer.VoxelGrid) error

func (f converterFunc) Convert(grid *layer.VoxelGrid) error { return f(grid) }
