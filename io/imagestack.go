//-----------------------------------------------------------------------------
/*

ImageStackWriter, grounded on ImageStackExporter::{saveDistanceMapToImage,
createTransformToBoundingBoxNormaliced}. The original embeds its PNG
stack inside a 3MF package's image-stack resource via lib3mf; that
packaging layer is out of scope here (see spec.md Non-goals), but the
per-layer encoding and the bounding-box-to-unit-cube transform are
reproduced exactly, using the standard library's image/png (no example
in the retrieval pack wires an alternative PNG encoder into a write
path: kolesa-team/go-webp is a *decode*-only dependency elsewhere in
the pack, see DESIGN.md).

*/
//-----------------------------------------------------------------------------

package io

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/3MFConsortium/gladius-sub002/layer"
)

// BoundingBox is the axis-aligned extent of the sliced volume in mm.
type BoundingBox struct {
	MinX, MinY, MinZ float32
	MaxX, MaxY, MaxZ float32
}

// Transform is a 4x3 affine matrix (row-major, row 3 is translation),
// mirroring Lib3MF::sTransform's m_Fields[4][3] layout.
type Transform [4][3]float32

// ComputeUnitCubeTransform builds the transform mapping bb to the unit cube
// with Y inverted, matching createTransformToBoundingBoxNormaliced exactly
// (including its Y-flip and Y-offset of 1.0, which compensates for the
// flip so the normalized box still spans [0,1]).
func ComputeUnitCubeTransform(bb BoundingBox) (Transform, error) {
	sizeX := bb.MaxX - bb.MinX
	sizeY := bb.MaxY - bb.MinY
	sizeZ := bb.MaxZ - bb.MinZ
	if sizeX == 0 || sizeY == 0 || sizeZ == 0 {
		return Transform{}, fmt.Errorf("gladius-sub002/io: bounding box has zero size")
	}

	var t Transform
	t[0] = [3]float32{1.0 / sizeX, 0, 0}
	t[1] = [3]float32{0, -1.0 / sizeY, 0}
	t[2] = [3]float32{0, 0, 1.0 / sizeZ}
	t[3] = [3]float32{-bb.MinX / sizeX, 1.0 + bb.MinY/sizeY, -bb.MinZ / sizeZ}
	return t, nil
}

// ImageStackWriter writes one greyscale PNG per sliced layer under
// baseDir/volume/{stackID}/layer_{n:03}.png, matching the path spec.md names.
type ImageStackWriter struct {
	baseDir string
	stackID string
	index   int
}

// NewImageStackWriter creates the output directory for stackID under baseDir.
func NewImageStackWriter(baseDir, stackID string) (*ImageStackWriter, error) {
	dir := filepath.Join(baseDir, "volume", stackID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageStackWriter{baseDir: baseDir, stackID: stackID}, nil
}

// WriteLayer encodes distmap as clamp(128 + distance*1000, 0, 255) greyscale and
// writes it to the next layer_{n:03}.png path, returning that path.
func (w *ImageStackWriter) WriteLayer(distmap *layer.DistanceMap) (string, error) {
	img := image.NewGray(image.Rect(0, 0, distmap.Width, distmap.Height))
	for y := 0; y < distmap.Height; y++ {
		for x := 0; x < distmap.Width; x++ {
			v := distanceToGrey(distmap.Values[y*distmap.Width+x])
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	path := filepath.Join(w.baseDir, "volume", w.stackID, fmt.Sprintf("layer_%03d.png", w.index))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	w.index++
	return path, nil
}

// LayerCount returns how many layers have been written so far.
func (w *ImageStackWriter) LayerCount() int {
	return w.index
}

func distanceToGrey(distance float32) uint8 {
	v := 128 + distance*1000
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
