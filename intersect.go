package polydraw

import (
	"math"

	"github.com/majkcramer/polydraw/scene"
)

// resetIntersections grows the per-segment intersection tables to match s
// and marks every segment unresolved, so intersectEdges only computes each
// segment's table once even though several polygons can reference the
// same segment (see scene.Edge.Reversed).
func (r *Rasterizer) resetIntersections(s *scene.Scene) {
	n := len(s.Segments)

	r.horiRef = growRef(r.horiRef, n)
	r.vertRef = growRef(r.vertRef, n)

	for i := 0; i < n; i++ {
		r.horiRef[i] = intersectionRef{start: unresolved, end: unresolved}
		r.vertRef[i] = intersectionRef{start: unresolved, end: unresolved}
	}

	r.horiInt = r.horiInt[:0]
	r.vertInt = r.vertInt[:0]
}

// intersectEdges populates horiRef/horiInt with every working edge's
// crossings of the horizontal pixel grid, and vertRef/vertInt with its
// crossings of the vertical pixel grid. Only the tables an edge's type
// actually needs are built: a horizontal line never crosses a horizontal
// grid line, a vertical line never crosses a vertical one, so only one
// direction is computed for each (the other's table is left unresolved
// and never consulted by hSplit/vSplit).
func (r *Rasterizer) intersectEdges(s *scene.Scene) {
	r.resetIntersections(s)

	for polyIndex := 0; polyIndex < r.polysLen; polyIndex++ {
		start := r.polyToPool[polyIndex]
		end := start + r.upperEdgesLen[polyIndex]

		for i := start; i < end; i++ {
			e := r.upperEdges[i]
			if e.segment < 0 {
				continue
			}

			needsHori := needsHoriTable(e.typ)
			needsVert := needsVertTable(e.typ)

			if needsHori && r.horiRef[e.segment].start == unresolved {
				r.horiRef[e.segment] = r.buildHoriIntersections(e)
			}
			if needsVert && r.vertRef[e.segment].start == unresolved {
				r.vertRef[e.segment] = r.buildVertIntersections(e)
			}
		}
	}
}

func needsHoriTable(t scene.EdgeType) bool {
	switch t {
	case scene.LHR, scene.LHL:
		return false
	default:
		return true
	}
}

func needsVertTable(t scene.EdgeType) bool {
	switch t {
	case scene.LVT, scene.LVB:
		return false
	default:
		return true
	}
}

func (r *Rasterizer) buildHoriIntersections(e workEdge) intersectionRef {
	if e.typ.IsArc() {
		return r.buildHoriArcIntersections(e)
	}

	startLen := len(r.horiInt)
	minPx, maxPx := toPx(min(e.p1.Y, e.p2.Y)-1)+1, toPx(max(e.p1.Y, e.p2.Y)-1)+1
	count := maxPx - minPx
	if count < 0 {
		count = 0
	}
	r.horiInt = growInt64(r.horiInt, startLen+int(count))

	end, firstPx := hMultiIntersectFast(e.p1, e.p2, DivPerPixel, startLen, r.horiInt)
	return intersectionRef{start: startLen, end: end, firstPx: firstPx}
}

func (r *Rasterizer) buildVertIntersections(e workEdge) intersectionRef {
	if e.typ.IsArc() {
		return r.buildVertArcIntersections(e)
	}

	startLen := len(r.vertInt)
	minPx, maxPx := toPx(min(e.p1.X, e.p2.X)-1)+1, toPx(max(e.p1.X, e.p2.X)-1)+1
	count := maxPx - minPx
	if count < 0 {
		count = 0
	}
	r.vertInt = growInt64(r.vertInt, startLen+int(count))

	end, firstPx := vMultiIntersectFast(e.p1, e.p2, DivPerPixel, startLen, r.vertInt)
	return intersectionRef{start: startLen, end: end, firstPx: firstPx}
}

// arcXSign and arcYSign report, for an arc edge type, whether the arc
// lies to the +X / +Y side of its circle's center. Right-side arc types
// (ending in R) resolve x = center.x + offset; top arc types (starting
// with T, smaller Y in a Y-down frame) resolve y = center.y - offset.
func arcXSign(t scene.EdgeType) int64 {
	switch t {
	case scene.CTR, scene.CBR, scene.ATR, scene.ABR:
		return 1
	default:
		return -1
	}
}

func arcYSign(t scene.EdgeType) int64 {
	switch t {
	case scene.CTR, scene.CTL, scene.ATR, scene.ATL:
		return -1
	default:
		return 1
	}
}

func (r *Rasterizer) buildHoriArcIntersections(e workEdge) intersectionRef {
	center := r.circleCenter(e.circle)
	radius := r.circleRadius(e.circle)
	sign := arcXSign(e.typ)

	startLen := len(r.horiInt)
	startPx := toPx(min(e.p1.Y, e.p2.Y)-1) + 1
	endPx := toPx(max(e.p1.Y, e.p2.Y)-1) + 1

	for px := startPx; px < endPx; px++ {
		y := fromPx(px)
		dy := y - center.Y
		x := center.X + sign*isqrt(radius*radius-dy*dy)
		r.horiInt = append(r.horiInt, x)
	}

	return intersectionRef{start: startLen, end: len(r.horiInt), firstPx: startPx}
}

func (r *Rasterizer) buildVertArcIntersections(e workEdge) intersectionRef {
	center := r.circleCenter(e.circle)
	radius := r.circleRadius(e.circle)
	sign := arcYSign(e.typ)

	startLen := len(r.vertInt)
	startPx := toPx(min(e.p1.X, e.p2.X)-1) + 1
	endPx := toPx(max(e.p1.X, e.p2.X)-1) + 1

	for px := startPx; px < endPx; px++ {
		x := fromPx(px)
		dx := x - center.X
		y := center.Y + sign*isqrt(radius*radius-dx*dx)
		r.vertInt = append(r.vertInt, y)
	}

	return intersectionRef{start: startLen, end: len(r.vertInt), firstPx: startPx}
}

func (r *Rasterizer) circleCenter(circle int) scene.Point {
	return r.scene.Points[r.scene.Circles[circle].Center]
}

// circleRadius returns 0 for a line edge's -1 circle reference instead of
// indexing Circles with it: doubleArea's arc-correction branch also
// covers the plain LTL/LBL line types (see integrate.go), and needs
// arcCorrection to see a zero radius for those rather than an
// out-of-range panic.
func (r *Rasterizer) circleRadius(circle int) int64 {
	if circle < 0 {
		return 0
	}
	return r.scene.Circles[circle].Radius
}

// hIntersection returns the X coordinate at which e crosses the
// horizontal grid line at pixel row yPx.
func (r *Rasterizer) hIntersection(e workEdge, yPx int64) int64 {
	switch e.typ {
	case scene.LVT, scene.LVB:
		return e.p1.X
	}

	ref := r.horiRef[e.segment]
	idx := ref.start + int(yPx-ref.firstPx)
	return r.horiInt[idx]
}

// vIntersection returns the Y coordinate at which e crosses the vertical
// grid line at pixel column xPx.
func (r *Rasterizer) vIntersection(e workEdge, xPx int64) int64 {
	switch e.typ {
	case scene.LHR, scene.LHL:
		return e.p1.Y
	}

	ref := r.vertRef[e.segment]
	idx := ref.start + int(xPx-ref.firstPx)
	return r.vertInt[idx]
}

// isqrt returns floor(sqrt(n)) for n >= 0, computed over int64 so every
// circle/grid-line intersection is free of floating-point rounding.
func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}

	x := int64(math.Sqrt(float64(n)))
	for x > 0 && x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

func growRef(s []intersectionRef, n int) []intersectionRef {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]intersectionRef, n)
}
