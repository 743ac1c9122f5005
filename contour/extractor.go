//-----------------------------------------------------------------------------
/*

Extractor orchestrates tracing, merging, closing, orientation and
quality measurement into a single per-slice pipeline, grounded on
ContourExtractor.{h,cpp}. Within a slice the post-processing order
(simplify -> calcSign -> updateContourMode -> measureQuality) is
load-bearing and must never be reordered.

Concurrency: the extractor owns its open/closed polyline sets
exclusively for the duration of a slice (writer side); Snapshot takes
a read lock and returns an immutable deep copy, so slow readers never
block the writer. Clear, AddIsoLineFromMarchingSquare and
RunPostProcessing each hold the write lock for their whole run, so a
snapshot never sees one of them half-done; a snapshot taken between two
of these calls sees the set as the last completed call left it.

*/
//-----------------------------------------------------------------------------

package contour

import (
	"sync"

	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

const (
	defaultSimplificationTolerance = 1e-2  // mm
	defaultSmallAreaThreshold      = 5e-2  // mm^2
	defaultCloseGapTolerance       = 1.0   // mm, used by Trace's CloseIfPossible call
)

// Extractor is the per-slice contour pipeline. It is not safe for concurrent
// mutation (see package doc); Snapshot is the one operation safe to call
// concurrently with a slice being computed.
type Extractor struct {
	closed []PolyLine
	open   []PolyLine

	simplificationTolerance float32
	offsetBackend           OffsetBackend

	quality SliceQuality

	snapshotMu sync.RWMutex
}

// NewExtractor returns an extractor with default tolerances and the given offset backend.
func NewExtractor(offsetBackend OffsetBackend) *Extractor {
	return &Extractor{
		simplificationTolerance: defaultSimplificationTolerance,
		offsetBackend:           offsetBackend,
	}
}

// Clear discards all accumulated contours and resets quality counters.
func (e *Extractor) Clear() {
	e.snapshotMu.Lock()
	defer e.snapshotMu.Unlock()
	e.closed = nil
	e.open = nil
	e.quality = SliceQuality{}
}

// SetSimplificationTolerance sets the tolerance used by RunPostProcessing's simplify pass.
func (e *Extractor) SetSimplificationTolerance(tol float32) {
	e.simplificationTolerance = tol
}

// AddIsoLineFromMarchingSquare traces grid within clip, merges any open
// fragments it produces with the nearest-neighbor heuristic, and accumulates
// the result into the extractor's closed/open sets. Grid-mapping failures are
// fatal to the current slice and are returned, not swallowed.
func (e *Extractor) AddIsoLineFromMarchingSquare(grid *GridStates, clip ClippingArea) error {
	e.snapshotMu.Lock()
	defer e.snapshotMu.Unlock()

	closed, open, err := Trace(grid, clip)
	if err != nil {
		return err
	}

	e.closed = append(e.closed, closed...)
	e.open = append(e.open, open...)

	mergedClosed, remainingOpen := MergeNearestNeighbor(e.open, &e.quality)
	e.closed = append(e.closed, mergedClosed...)
	e.open = remainingOpen

	for i := range e.closed {
		e.closed[i].Area = CalcArea(&e.closed[i])
	}

	return nil
}

// RunPostProcessing runs the full post-processing pipeline in the mandated order:
// simplify, calcSign (containment-based orientation), updateContourMode,
// measureQuality. Degenerate polygons (<3 vertices) are dropped before this
// pass, matching the "never reach the closed set" contract.
func (e *Extractor) RunPostProcessing() {
	e.snapshotMu.Lock()
	defer e.snapshotMu.Unlock()

	e.dropDegenerate()
	e.simplify()
	e.calcSign()
	e.updateContourMode()
	e.measureQuality()
}

func (e *Extractor) dropDegenerate() {
	kept := e.closed[:0]
	for _, p := range e.closed {
		if !p.IsDegenerate() {
			kept = append(kept, p)
		}
	}
	e.closed = kept
}

func (e *Extractor) simplify() {
	if e.simplificationTolerance == 0 {
		return
	}
	for i := range e.closed {
		Simplify(&e.closed[i], e.simplificationTolerance)
	}
	for i := range e.open {
		Simplify(&e.open[i], e.simplificationTolerance)
	}
}

// calcSign implements the containment-based orientation pass: for each closed
// polyline, count how many *other* closed polylines contain its first vertex.
// An odd count makes it a hole (area <= 0, CW); an even count makes it an
// outer boundary (area >= 0, CCW).
func (e *Extractor) calcSign() {
	for i := range e.closed {
		poly := &e.closed[i]
		if poly.Empty() {
			continue
		}
		sample := poly.Front()

		containmentCount := 0
		for j := range e.closed {
			if j == i {
				continue
			}
			if PointInPolygon(sample, &e.closed[j]) {
				containmentCount++
			}
		}

		area := CalcArea(poly)
		isCW := area < 0 // under this package's Y-up convention, negative area is clockwise

		if containmentCount%2 == 1 {
			// hole: enforce area <= 0 (clockwise)
			if !isCW {
				poly.Reverse()
			}
		} else {
			// outer: enforce area >= 0 (counter-clockwise)
			if isCW {
				poly.Reverse()
			}
		}
		poly.Area = CalcArea(poly)
	}
}

// updateContourMode assigns Inner/Outer/ExcludeFromSlice from the signed area and
// closedness computed by calcSign. Tie-break: degenerate-area polylines are
// marked ExcludeFromSlice and not rewritten thereafter.
func (e *Extractor) updateContourMode() {
	for i := range e.closed {
		poly := &e.closed[i]
		if poly.ContourMode == ExcludeFromSlice {
			continue
		}
		if !poly.IsClosed {
			poly.ContourMode = OpenLine
			continue
		}
		if poly.IsDegenerate() {
			poly.ContourMode = ExcludeFromSlice
			continue
		}
		if absf(poly.Area) < defaultSmallAreaThreshold {
			poly.ContourMode = ExcludeFromSlice
			continue
		}
		if poly.Area < 0 {
			poly.ContourMode = Inner
		} else {
			poly.ContourMode = Outer
		}
	}
}

// measureQuality revalidates every polyline not marked ExcludeFromSlice and
// accumulates SliceQuality counters. It marks nothing itself: the polylines
// updateContourMode excluded (including those below the small-area threshold)
// are counted as ignored.
func (e *Extractor) measureQuality() {
	e.quality.InitiallyOpenPolygons = len(e.open)

	excluded := 0
	for i := range e.open {
		poly := &e.open[i]
		Validate(poly, defaultIntersectionWindow)
		e.quality.SelfIntersections += len(poly.SelfIntersections)
		e.quality.OpenPolyLinesThatCouldNotClose++
	}

	for i := range e.closed {
		poly := &e.closed[i]
		if poly.ContourMode != ExcludeFromSlice {
			Validate(poly, defaultIntersectionWindow)
			e.quality.SelfIntersections += len(poly.SelfIntersections)
		}
		e.quality.EnclosedArea += absf(CalcArea(poly))

		if poly.ContourMode == ExcludeFromSlice {
			excluded++
		}
		if !poly.IsClosed && poly.ContourMode == OpenLine {
			e.quality.OpenPolyLinesThatCouldNotClose++
		}
	}

	e.quality.IgnoredPolyLines = excluded
	e.quality.ClosedPolyLines = len(e.closed)
}

// GetContour returns the live closed-contour slice. Callers that need a stable
// view while a new slice may be computing concurrently should use Snapshot instead.
func (e *Extractor) GetContour() []PolyLine {
	return e.closed
}

// GetOpenContours returns the live open-contour slice.
func (e *Extractor) GetOpenContours() []PolyLine {
	return e.open
}

// GetSliceQuality returns the accumulated quality counters for the current slice.
func (e *Extractor) GetSliceQuality() SliceQuality {
	return e.quality
}

// Snapshot returns a deep, immutable copy of the closed-contour set, safe to read
// while another goroutine mutates the extractor under computeMu (see layer.Driver).
func (e *Extractor) Snapshot() []PolyLine {
	e.snapshotMu.RLock()
	defer e.snapshotMu.RUnlock()

	out := make([]PolyLine, len(e.closed))
	for i, p := range e.closed {
		out[i] = p.Clone()
	}
	return out
}

// GenerateOffsetContours inflates contours by offset using the extractor's offset
// backend, then simplifies the result with the extractor's current tolerance.
func (e *Extractor) GenerateOffsetContours(offset float32, contours []PolyLine) ([]PolyLine, error) {
	paths := make([][]v2.Vec, len(contours))
	for i, c := range contours {
		paths[i] = c.Vertices
	}

	solution, err := e.offsetBackend.Inflate(paths, offset)
	if err != nil {
		return nil, err
	}

	out := make([]PolyLine, len(solution))
	for i, path := range solution {
		out[i] = PolyLine{Vertices: path, IsClosed: true}
		Simplify(&out[i], e.simplificationTolerance)
	}
	return out, nil
}
