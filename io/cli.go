//-----------------------------------------------------------------------------
/*

CLIWriter emits the ASCII variant of the CLI (common layer interface)
format described in spec.md's glossary. CLI has no surviving reference
implementation in original_source/ (the original project never wrote
one), so this writer is authored fresh from the public ASCII CLI 2.0
layout, in the style of this module's other writers: header block,
then one $$LAYER section per WriteLayer call containing one
$$POLYLINE per retained contour.

*/
//-----------------------------------------------------------------------------

package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/3MFConsortium/gladius-sub002/contour"
)

// CLIWriter writes the ASCII CLI slice format.
type CLIWriter struct {
	file       *os.File
	w          *bufio.Writer
	layerCount int
	units      float32
}

// NewCLIWriter creates path and writes the CLI header. units is the scale
// factor relating file coordinates to millimeters (CLI's $$UNITS field); 1.0
// means file coordinates are already millimeters.
func NewCLIWriter(path string, units float32) (*CLIWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	cw := &CLIWriter{file: f, w: bufio.NewWriter(f), units: units}
	cw.writeHeader()
	return cw, nil
}

func (cw *CLIWriter) writeHeader() {
	fmt.Fprintf(cw.w, "$$HEADERSTART\n")
	fmt.Fprintf(cw.w, "$$ASCII\n")
	fmt.Fprintf(cw.w, "$$UNITS/%.6f\n", cw.units)
	fmt.Fprintf(cw.w, "$$VERSION/200\n")
	fmt.Fprintf(cw.w, "$$HEADEREND\n")
	fmt.Fprintf(cw.w, "$$GEOMETRYSTART\n")
}

// WriteLayer appends a $$LAYER section at height z containing one $$POLYLINE
// per non-excluded contour. Direction follows CLI convention: 1 for an outer
// (CCW) boundary, 0 for an inner (CW) hole; open polylines are written with
// direction 2, CLI's convention for unclosed hatch-like vectors.
func (cw *CLIWriter) WriteLayer(z float32, closed, open []contour.PolyLine) error {
	fmt.Fprintf(cw.w, "$$LAYER/%g\n", z)
	cw.layerCount++

	id := 1
	for i := range closed {
		poly := &closed[i]
		if poly.ContourMode == contour.ExcludeFromSlice || poly.Empty() {
			continue
		}
		dir := 0
		if poly.ContourMode == contour.Outer {
			dir = 1
		}
		cw.writePolyLine(id, dir, poly)
		id++
	}
	for i := range open {
		poly := &open[i]
		if poly.Empty() {
			continue
		}
		cw.writePolyLine(id, 2, poly)
		id++
	}

	return cw.w.Flush()
}

func (cw *CLIWriter) writePolyLine(id, dir int, poly *contour.PolyLine) {
	fmt.Fprintf(cw.w, "$$POLYLINE/%d,%d,%d", id, dir, len(poly.Vertices))
	for _, v := range poly.Vertices {
		fmt.Fprintf(cw.w, ",%g,%g", v.X, v.Y)
	}
	fmt.Fprintf(cw.w, "\n")
}

// Close writes the $$GEOMETRYEND footer and closes the underlying file.
func (cw *CLIWriter) Close() error {
	fmt.Fprintf(cw.w, "$$GEOMETRYEND\n")
	if err := cw.w.Flush(); err != nil {
		cw.file.Close()
		return err
	}
	return cw.file.Close()
}
