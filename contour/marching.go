//-----------------------------------------------------------------------------
/*

Marching-Squares iso-line tracer.

Walks a GridStates cell-state grid, following iso-line segments across
cells and emitting one polyline per connected iso-line component. The
direction table and saddle-disambiguation rule are grounded on
ContourExtractor::directionFromState / findStart / addIsoLineFromMarchingSquare
in the original gladius sources.

*/
//-----------------------------------------------------------------------------

package contour

import (
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
	"github.com/3MFConsortium/gladius-sub002/vec/v2i"
)

var zeroDir = v2i.Vec{}

// nextDirection returns the marching direction for the given cell state and the
// direction the tracer arrived from (zero if this is the start cell).
func nextDirection(state uint8, prev v2i.Vec) v2i.Vec {
	switch state {
	case 1, 5:
		return v2i.Vec{X: 0, Y: -1} // up
	case 2, 3, 7:
		return v2i.Vec{X: 1, Y: 0} // right
	case 4, 12:
		return v2i.Vec{X: -1, Y: 0} // left
	case 8, 10, 11:
		return v2i.Vec{X: 0, Y: 1} // down
	case 13:
		return v2i.Vec{X: 0, Y: -1} // up
	case 14:
		return v2i.Vec{X: -1, Y: 0} // left
	case 6:
		// saddle: ambiguous unless we know which way we entered
		if prev == (v2i.Vec{X: 0, Y: -1}) {
			return v2i.Vec{X: -1, Y: 0}
		}
		return v2i.Vec{X: 1, Y: 0}
	case 9:
		// saddle: ambiguous unless we know which way we entered
		if prev == (v2i.Vec{X: 1, Y: 0}) {
			return v2i.Vec{X: 0, Y: -1}
		}
		return v2i.Vec{X: 0, Y: 1}
	default:
		// 0, 15: fully outside/inside, nothing to trace
		return zeroDir
	}
}

// findStart scans cells in row-major order, starting from the row of previousStart,
// for the first cell with an unambiguous iso-line crossing (state in {2..14}\{6,9}).
func findStart(g *GridStates, previousStart v2i.Vec) (v2i.Vec, bool) {
	for y := previousStart.Y; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			state := g.Get(x, y)
			if state > 1 && state < 15 && state != 6 && state != 9 {
				return v2i.Vec{X: x, Y: y}, true
			}
		}
	}
	return v2i.Vec{}, false
}

// toWorldPos maps a grid coordinate (which may include a half-cell offset) into
// world-space mm using clip. Returns false if the coordinate is out of bounds or
// clip has zero extent.
func toWorldPos(coord v2.Vec, g *GridStates, clip ClippingArea) (v2.Vec, bool) {
	if coord.X < 0 || coord.Y < 0 || coord.X > float32(g.W) || coord.Y > float32(g.H) {
		return v2.Vec{}, false
	}
	if clip.Degenerate() {
		return v2.Vec{}, false
	}

	cellW := clip.Width() / float32(g.W)
	cellH := clip.Height() / float32(g.H)
	return v2.Vec{
		X: clip.XMin + cellW*coord.X,
		Y: clip.YMin + cellH*coord.Y,
	}, true
}

// Trace walks grid, following iso-line segments across cells, and returns the
// closed and open polyline sets it emits. The grid is mutated destructively
// (see GridStates doc). It returns a *GridMappingError if any grid coordinate
// cannot be mapped into clip -- fatal to the current slice.
func Trace(grid *GridStates, clip ClippingArea) (closed, open []PolyLine, err error) {
	start, ok := findStart(grid, v2i.Vec{})
	for ok {
		var poly PolyLine
		startVertex, mapped := toWorldPos(v2.Vec{X: float32(start.X), Y: float32(start.Y)}, grid, clip)
		if !mapped {
			return nil, nil, &GridMappingError{X: float32(start.X), Y: float32(start.Y), Clip: clip}
		}
		poly.Vertices = append(poly.Vertices, startVertex)

		prevDir := zeroDir
		current := start
		for {
			state := grid.Get(current.X, current.Y)
			dir := nextDirection(state, prevDir)
			if dir == zeroDir {
				break
			}

			vertex, mapped := toWorldPos(v2.Vec{
				X: float32(current.X) + float32(dir.X)*0.5,
				Y: float32(current.Y) + float32(dir.Y)*0.5,
			}, grid, clip)
			if !mapped {
				return nil, nil, &GridMappingError{
					X: float32(current.X) + float32(dir.X)*0.5,
					Y: float32(current.Y) + float32(dir.Y)*0.5,
					Clip: clip,
				}
			}
			poly.Vertices = append(poly.Vertices, vertex)

			if !isSaddle(state) {
				grid.Set(current.X, current.Y, 0)
			}

			current = current.Add(dir)
			prevDir = dir
			if current == start {
				break
			}
		}

		if len(poly.Vertices) > 2 {
			startState := grid.Get(start.X, start.Y)
			if !isSaddle(startState) {
				grid.Set(start.X, start.Y, 0)
			}

			poly.Reverse()
			CloseIfPossible(&poly, defaultCloseGapTolerance)
			if poly.IsClosed {
				closed = append(closed, poly)
			} else {
				open = append(open, poly)
			}
		}

		start, ok = findStart(grid, start)
	}

	return closed, open, nil
}
