//-----------------------------------------------------------------------------
/*

Driver steps a SDFSampler through a stack of layer heights, feeding
each sampled layer's marching-squares grid into a contour.Extractor
and the raw distance values into a VoxelGrid, grounded on
io::LayerBasedMeshExporter::{beginExport,advanceExport,processLayer}.

*/
//-----------------------------------------------------------------------------

package layer

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/3MFConsortium/gladius-sub002/contour"
)

const (
	defaultLayerIncrement = 0.1 // mm, matches LayerBasedMeshExporter::m_layerIncrement_mm
	defaultQualityLevel   = 3   // 3 = best quality, highest memory use
)

// Driver owns one Extractor and one VoxelGrid and steps them together through
// a height range. computeMu is the "compute token": it serializes sampling,
// AddIsoLineFromMarchingSquare, and the voxel-grid readback into one critical
// section per slice, matching the original's single-threaded GPU dispatch.
type Driver struct {
	Sampler   SDFSampler
	Extractor *contour.Extractor
	Grid      *VoxelGrid

	LayerIncrement float64 // mm
	QualityLevel   int

	startHeight, endHeight, currentHeight float64
	progress                              float64

	computeMu  sync.Mutex
	inProgress atomic.Bool
	cancelled  atomic.Bool

	currentZ   float32
	hasCurrent bool
	requested  chan float32 // length-1: the next-queued height, if any
}

// NewDriver wires sampler and extractor together with the default layer
// increment; BeginExport must be called before Run or ComputeSliceAsync.
func NewDriver(sampler SDFSampler, extractor *contour.Extractor) *Driver {
	return &Driver{
		Sampler:        sampler,
		Extractor:      extractor,
		LayerIncrement: defaultLayerIncrement,
		QualityLevel:   defaultQualityLevel,
		requested:      make(chan float32, 1),
	}
}

// BeginExport aligns the [minZ, maxZ] bounding range to the layer increment
// and allocates the backing VoxelGrid, matching
// LayerBasedMeshExporter::beginExport + initializeGrid.
func (d *Driver) BeginExport(minZ, maxZ float64, voxelSize float32, resX, resY int) {
	d.startHeight = alignToLayer(minZ-d.LayerIncrement, d.LayerIncrement)
	d.endHeight = alignToLayer(maxZ+d.LayerIncrement, d.LayerIncrement)
	d.currentHeight = alignToLayer(d.startHeight, d.LayerIncrement)

	bandwidth := float32(d.LayerIncrement) * 2
	depth := int(alignToLayer((d.endHeight-d.startHeight)/d.LayerIncrement, 1)) + 1
	d.Grid = NewVoxelGrid(resX, resY, depth, voxelSize, bandwidth)
}

// Progress reports how far Run has advanced through [startHeight, endHeight].
func (d *Driver) Progress() float64 {
	return d.progress
}

// Cancel requests that Run stop after finishing its current slice. Polled
// only between slices, never inside the tracer loop.
func (d *Driver) Cancel() {
	d.cancelled.Store(true)
}

// RequestSlice queues z for out-of-band computation (e.g. a UI jumping to an
// arbitrary height). Requesting the in-flight height again is a no-op; a
// different height overwrites any previously queued (not yet started) request.
func (d *Driver) RequestSlice(z float32) {
	if d.hasCurrent && d.currentZ == z && d.inProgress.Load() {
		return
	}
	select {
	case <-d.requested:
	default:
	}
	d.requested <- z
}

// SliceFuture is a handle to a single asynchronously computed slice.
type SliceFuture struct {
	done chan struct{}
	err  error
}

// Wait blocks until the slice finishes or ctx is done.
func (f *SliceFuture) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ComputeSliceAsync computes the slice at z in a goroutine, returning a
// SliceFuture the caller can Wait on. This is the one concurrency join point
// inside the core: no cooperative yielding happens inside computeSlice itself.
func (d *Driver) ComputeSliceAsync(ctx context.Context, z float32) *SliceFuture {
	future := &SliceFuture{done: make(chan struct{})}
	d.inProgress.Store(true)
	go func() {
		defer close(future.done)
		defer d.inProgress.Store(false)
		future.err = d.computeSlice(z)
	}()
	return future
}

// computeSlice runs one sample -> trace -> post-process -> voxel-write cycle
// under computeMu, matching LayerBasedMeshExporter::processLayer.
func (d *Driver) computeSlice(z float32) error {
	d.computeMu.Lock()
	defer d.computeMu.Unlock()

	d.currentZ = z
	d.hasCurrent = true

	distmap, err := d.Sampler.Sample(z, d.Grid.VoxelSize)
	if err != nil {
		return err
	}

	grid, clip := BuildGridStates(&distmap)

	d.Extractor.Clear()
	if err := d.Extractor.AddIsoLineFromMarchingSquare(grid, clip); err != nil {
		return err
	}
	d.Extractor.RunPostProcessing()

	d.writeSlab(&distmap, z)
	return nil
}

// writeSlab clamps every sampled distance to +/-bandwidth and writes it into
// the voxel grid's z-slab, matching processLayer's std::clamp + accessor loop.
// Saturating the bandwidth is not an error: values are simply clamped.
func (d *Driver) writeSlab(distmap *DistanceMap, z float32) {
	zIdx := int(alignToLayer((float64(z)-d.startHeight)/d.LayerIncrement, 1))
	bandwidth := d.Grid.Bandwidth

	for y := 0; y < distmap.Height; y++ {
		for x := 0; x < distmap.Width; x++ {
			value := clampf(distmap.at(x, y), -bandwidth, bandwidth)
			d.Grid.Set(x, y, zIdx, value)
		}
	}
}

// Run drives every layer height from startHeight to endHeight, logging and
// continuing to the next height if a single slice fails (fatal errors abort
// only the current slice). After each completed slice it checks for a queued
// RequestSlice jump and, absent one, steps currentHeight by LayerIncrement.
// Returns when the range is exhausted or Cancel has been called.
func (d *Driver) Run(ctx context.Context, converter MeshConverter) error {
	for d.currentHeight < d.endHeight+d.LayerIncrement {
		if d.cancelled.Load() {
			break
		}

		z := float32(d.currentHeight)
		jumped := false
		select {
		case queued := <-d.requested:
			z = queued
			jumped = true
		default:
		}

		if err := d.computeSlice(z); err != nil {
			log.Printf("[layer] slice at z=%.4f failed, skipping: %v", z, err)
		}

		if !jumped {
			d.progress = (d.currentHeight - d.startHeight) / (d.endHeight - d.startHeight)
			d.currentHeight = alignToLayer(d.currentHeight+d.LayerIncrement, d.LayerIncrement)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	if converter != nil {
		return converter.Convert(d.Grid)
	}
	return nil
}

// BuildGridStates classifies a raw distance map into marching-squares cell
// states (inside/outside per corner sign) spanning the sampled area.
func BuildGridStates(distmap *DistanceMap) (*contour.GridStates, contour.ClippingArea) {
	grid := contour.NewGridStates(distmap.Width, distmap.Height)
	for y := 0; y < distmap.Height-1; y++ {
		for x := 0; x < distmap.Width-1; x++ {
			grid.Set(x, y, cellState(distmap, x, y))
		}
	}

	clip := contour.ClippingArea{
		XMin: 0, YMin: 0,
		XMax: float32(distmap.Width-1) * distmap.PixelSize,
		YMax: float32(distmap.Height-1) * distmap.PixelSize,
	}
	return grid, clip
}

// cellState encodes the grid's 4-bit corner code {TL=1, TR=2, BL=4, BR=8},
// matching GridStates' documented convention.
func cellState(distmap *DistanceMap, x, y int) uint8 {
	var state uint8
	if distmap.at(x, y) < 0 {
		state |= 1 // TL
	}
	if distmap.at(x+1, y) < 0 {
		state |= 2 // TR
	}
	if distmap.at(x, y+1) < 0 {
		state |= 4 // BL
	}
	if distmap.at(x+1, y+1) < 0 {
		state |= 8 // BR
	}
	return state
}
