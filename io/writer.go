//-----------------------------------------------------------------------------
/*

Package io serializes sliced contours to the on-disk slice formats this
module produces: SVG (for quick visual inspection, grounded on
SvgWriter.{h,cpp}), CLI (the common layer interface text format named
but never implemented in the original sources), and a 3MF layered
image stack (grounded on ImageStackExporter.cpp).

*/
//-----------------------------------------------------------------------------

package io

import "github.com/3MFConsortium/gladius-sub002/contour"

// SliceWriter accumulates one layer at a time and flushes on Close.
type SliceWriter interface {
	WriteLayer(z float32, closed, open []contour.PolyLine) error
	Close() error
}
