//-----------------------------------------------------------------------------
/*

SVGWriter, grounded on SvgWriter::{saveCurrentLayer,writeHeader,
writeLayer,writePolyLine}. The original writes exactly one current
layer per invocation; this writer accumulates every WriteLayer call
into one multi-layer document, each layer in its own <g> group so a
viewer can toggle them, and flips Y at serialization time to match the
original's "height_mm - y" convention (SVG's origin is top-left).

*/
//-----------------------------------------------------------------------------

package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/3MFConsortium/gladius-sub002/contour"
)

// SVGWriter writes an SVG document with one <g> group per sliced layer.
type SVGWriter struct {
	file   *os.File
	w      *bufio.Writer
	width  float32
	height float32
	opened bool
}

// NewSVGWriter creates path and writes the SVG header sized to width x height mm.
func NewSVGWriter(path string, width, height float32) (*SVGWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	sw := &SVGWriter{file: f, w: bufio.NewWriter(f), width: width, height: height}
	sw.writeHeader()
	return sw, nil
}

func (sw *SVGWriter) writeHeader() {
	fmt.Fprintf(sw.w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	fmt.Fprintf(sw.w, "<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" "+
		"version=\"1.1\" baseProfile=\"full\" width=\"%gmm\" height=\"%gmm\" viewBox=\"0 0 %g %g\">",
		sw.width, sw.height, sw.width, sw.height)
	sw.opened = true
}

// WriteLayer appends one layer's closed contours as an even-odd-filled path
// group at height z. Open contours are not filled, matching the original
// (only PolyLines::getContour, the closed set, is written); polylines marked
// ExcludeFromSlice are skipped, matching writePolyLine's early return.
func (sw *SVGWriter) WriteLayer(z float32, closed, open []contour.PolyLine) error {
	fmt.Fprintf(sw.w, "\n<g data-z=\"%g\">\n<path fill-rule=\"evenodd\" d=\"", z)
	for i := range closed {
		sw.writePolyLine(&closed[i])
	}
	fmt.Fprintf(sw.w, "\"/>\n</g>\n")
	return sw.w.Flush()
}

func (sw *SVGWriter) writePolyLine(poly *contour.PolyLine) {
	if poly.ContourMode == contour.ExcludeFromSlice || poly.Empty() {
		return
	}

	v0 := poly.Vertices[0]
	fmt.Fprintf(sw.w, "M %g,%g ", v0.X, sw.height-v0.Y)
	for i := 1; i < len(poly.Vertices); i++ {
		v := poly.Vertices[i]
		fmt.Fprintf(sw.w, " L %g,%g ", v.X, sw.height-v.Y)
	}
	fmt.Fprintf(sw.w, " z ")
}

// Close writes the closing tag and closes the underlying file.
func (sw *SVGWriter) Close() error {
	if sw.opened {
		fmt.Fprintf(sw.w, "</svg>")
		sw.opened = false
	}
	if err := sw.w.Flush(); err != nil {
		sw.file.Close()
		return err
	}
	return sw.file.Close()
}
