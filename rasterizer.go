package polydraw

import (
	"log/slog"

	"github.com/majkcramer/polydraw/scene"
)

// workEdge is one edge of a polygon fragment as it exists mid-render: a
// reference back to its originating scene edge (Segment/Circle, or -1
// for a synthetic cap introduced by a split) plus resolved endpoints that
// get mutated in place as the edge is clipped by successive splits.
type workEdge struct {
	typ     scene.EdgeType
	segment int
	circle  int
	p1, p2  scene.Point
}

func horiRight(p1, p2 scene.Point) workEdge {
	return workEdge{typ: scene.LHR, segment: -1, circle: -1, p1: p1, p2: p2}
}

func horiLeft(p1, p2 scene.Point) workEdge {
	return workEdge{typ: scene.LHL, segment: -1, circle: -1, p1: p1, p2: p2}
}

func vertBottom(p1, p2 scene.Point) workEdge {
	return workEdge{typ: scene.LVB, segment: -1, circle: -1, p1: p1, p2: p2}
}

func vertTop(p1, p2 scene.Point) workEdge {
	return workEdge{typ: scene.LVT, segment: -1, circle: -1, p1: p1, p2: p2}
}

// intersectionRef locates one segment's precomputed grid-line
// intersections within a shared flat table: the half-open slice
// [start,end) of the table, and firstPx, the pixel row/column of the
// table's first entry (needed because a segment's crossings don't
// necessarily start at grid line 0).
type intersectionRef struct {
	start, end int
	firstPx    int64
}

// unresolved marks a segment whose intersection table has not yet been
// computed this render (used in place of the reference rasterizer's
// usize::MAX sentinel, which has no safe Go analogue for a real index).
const unresolved = -1

// Rasterizer renders Scenes onto a Frame via two-phase sweep-line
// decomposition. Its pools and active-set bookkeeping are reused across
// calls to Render, growing as needed, to avoid reallocating per frame.
type Rasterizer struct {
	logger *slog.Logger
	scene  *scene.Scene

	vertRef  []intersectionRef
	horiRef  []intersectionRef
	vertInt  []int64
	horiInt  []int64

	polysLen   int
	polyToPool []int

	upperEdges    []workEdge
	upperEdgesLen []int
	upperMinY     []int64
	upperMaxY     []int64
	upperActive   []int
	upperActiveStart, upperActiveEnd int

	lowerEdges    []workEdge
	lowerEdgesLen []int
	lowerMinX     []int64
	lowerMaxX     []int64
	lowerActive   []int
	lowerActiveStart, lowerActiveEnd, lowerActiveFull int

	finalEdges      []workEdge
	finalEdgesLen   []int
	finalActive     []int
	finalActiveFull int
}

// New returns an empty Rasterizer ready to Render.
func New() *Rasterizer {
	return &Rasterizer{}
}

// Render draws s onto f. It panics on a malformed Scene when built
// without the release build tag (see checks.go); callers that accept
// untrusted scenes should call Scene.Validate first.
func (r *Rasterizer) Render(s *scene.Scene, f Frame) {
	if s == nil {
		panic(&RuntimeError{Op: "Render", Err: ErrNilScene})
	}
	if f == nil {
		panic(&RuntimeError{Op: "Render", Err: ErrNilFrame})
	}
	if len(s.Polys) == 0 {
		return
	}

	r.scene = s
	r.transferScene(s)

	debugCheck(func() { r.checkUpperInitialPool() })

	r.intersectEdges(s)

	debugCheck(func() { r.checkIntersections(s) })

	minX, minY, maxX, maxY := r.minMaxXY(s)

	debugCheck(func() { r.checkMinMaxXY(minX, minY, maxX, maxY) })

	r.updateUpperMinMaxY()

	debugCheck(func() { r.checkUpperMinMaxY(minY, maxY) })

	xStart := toPx(minX)
	xEnd := toPx(maxX-1) + 1
	yStart := toPx(minY)
	yEnd := toPx(maxY-1) + 1

	r.log().Debug("render begin", "polys", r.polysLen, "x_range", [2]int64{xStart, xEnd}, "y_range", [2]int64{yStart, yEnd})

	for y := yStart; y < yEnd; y++ {
		yWorld := fromPx(y)
		ySplit := yWorld + DivPerPixel

		r.lowerActiveStart = 0
		r.lowerActiveEnd = 0
		r.lowerActiveFull = 0

		r.advanceUpperRange(yWorld, ySplit)

		debugCheck(func() { r.checkUpperRange(ySplit) })
		debugCheck(func() { r.checkUpperPool() })

		r.hSplit(ySplit, y+1)

		debugCheck(func() { r.checkUpperBounds(ySplit) })
		debugCheck(func() { r.checkLowerInitialPool() })
		debugCheck(func() { r.checkLowerInitialBounds(ySplit) })

		r.updateLowerMinMaxX()

		debugCheck(func() { r.checkLowerMinMaxX(minX, maxX) })

		x := xStart
		for x < xEnd {
			xWorld := fromPx(x)
			xSplit := xWorld + DivPerPixel

			r.finalActiveFull = 0

			r.advanceLowerRange(xWorld, xSplit)

			debugCheck(func() { r.checkLowerRange(xSplit) })
			debugCheck(func() { r.checkLowerPool() })

			if xDelta, ok := r.canAdvanceStripe(xEnd); ok {
				polyIndex := r.lowerActive[r.lowerActiveStart]

				r.vSplitPoly(polyIndex, fromPx(xDelta), xDelta)

				color := s.Colors[s.Polys[polyIndex].Color]

				for fillX := x; fillX < xDelta; fillX++ {
					f.PutPixel(int32(fillX), int32(y), color)
				}

				x = xDelta
				continue
			}

			r.vSplit(xSplit, x+1)

			debugCheck(func() { r.checkLowerBounds(xSplit) })
			debugCheck(func() { r.checkFinalPool() })
			debugCheck(func() { r.checkFinalBounds(xSplit) })

			if r.finalActiveFull != 0 {
				f.PutPixel(int32(x), int32(y), r.activeColor(s))
			}

			x++
		}
	}
}
