//-----------------------------------------------------------------------------
/*

Package layer steps a sliceable signed-distance field through a stack
of heights, turning each height into grid states for the contour
package and accumulating the resulting distance samples into a voxel
grid, grounded on io::LayerBasedMeshExporter::{beginExport,
advanceExport, processLayer}. Where the original drives an OpenVDB
grid from a ComputeCore GPU resource context, Driver drives a
VoxelGrid from a pluggable SDFSampler, so the stepping/alignment logic
can be exercised without a GPU.

*/
//-----------------------------------------------------------------------------

package layer

import (
	"math"

	"github.com/3MFConsortium/gladius-sub002/contour"
)

// DistanceMap is a single sampled layer: a width*height grid of signed
// distances in mm, plus the pixel size used to sample it.
type DistanceMap struct {
	Width, Height int
	PixelSize     float32
	Values        []float32 // row-major, len == Width*Height
}

func (d *DistanceMap) at(x, y int) float32 {
	return d.Values[y*d.Width+x]
}

// SDFSampler produces a distance map at height z, sampled at the given pixel size.
type SDFSampler interface {
	Sample(z float32, pixelSize float32) (DistanceMap, error)
}

// GridStateSource builds marching-squares cell states directly, bypassing a raw
// distance-map sample when the caller already has classified grid states (e.g.
// from a cached slice). Most callers drive Driver from an SDFSampler instead.
type GridStateSource interface {
	BuildStates(z float32, w, h int) (*contour.GridStates, contour.ClippingArea, error)
}

// VoxelGrid accumulates sampled distance values into a 3D level-set-like
// volume, one slab (XY layer) at a time. It is the destination
// io::LayerBasedMeshExporter::processLayer writes into via its OpenVDB
// accessor; here it is a flat float32 volume addressed by integer voxel
// coordinates, with out-of-bandwidth values clamped rather than dropped.
type VoxelGrid struct {
	Width, Height, Depth int
	VoxelSize            float32
	Bandwidth            float32
	values               []float32
}

// NewVoxelGrid allocates a grid of the given voxel dimensions, all values
// initialized to +bandwidth (treated as "far outside" until written).
func NewVoxelGrid(w, h, d int, voxelSize, bandwidth float32) *VoxelGrid {
	values := make([]float32, w*h*d)
	for i := range values {
		values[i] = bandwidth
	}
	return &VoxelGrid{Width: w, Height: h, Depth: d, VoxelSize: voxelSize, Bandwidth: bandwidth, values: values}
}

func (g *VoxelGrid) index(x, y, z int) (int, bool) {
	if x < 0 || y < 0 || z < 0 || x >= g.Width || y >= g.Height || z >= g.Depth {
		return 0, false
	}
	return z*g.Width*g.Height + y*g.Width + x, true
}

// Set writes a clamped distance value at a voxel coordinate. Returns false if
// the coordinate is outside the grid (the write is silently skipped, matching
// the original's pruneGrid discarding out-of-range writes).
func (g *VoxelGrid) Set(x, y, z int, value float32) bool {
	idx, ok := g.index(x, y, z)
	if !ok {
		return false
	}
	g.values[idx] = value
	return true
}

// Get reads a voxel value, returning (0, false) if out of range.
func (g *VoxelGrid) Get(x, y, z int) (float32, bool) {
	idx, ok := g.index(x, y, z)
	if !ok {
		return 0, false
	}
	return g.values[idx], true
}

// MeshConverter turns a finished VoxelGrid into a polygon mesh. Implementing
// an actual isosurface mesher (the original's OpenVDB volumeToMesh) is out of
// scope here; this interface exists so Driver.Run has a documented hand-off
// point for a caller-supplied converter.
type MeshConverter interface {
	Convert(grid *VoxelGrid) error
}

// alignToLayer snaps value down to the nearest multiple of increment, matching
// LayerBasedMeshExporter::alignToLayer.
func alignToLayer(value, increment float64) float64 {
	return math.Floor(value/increment) * increment
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
