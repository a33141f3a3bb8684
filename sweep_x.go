package polydraw

import "github.com/majkcramer/polydraw/scene"

// vSplit is hSplit's X-sweep counterpart: it clips every polygon in the
// current lower-active window at the vertical grid line x = xSplit,
// producing this pixel column's fragment of each in the final pool.
func (r *Rasterizer) vSplit(xSplit, xPx int64) {
	for i := r.lowerActiveStart; i < r.lowerActiveEnd; i++ {
		r.vSplitPoly(r.lowerActive[i], xSplit, xPx)
	}
}

// vSplitPoly is hSplitPoly's X-sweep counterpart: it clips polyIndex's
// current row-slice at the vertical grid line x = xSplit (pixel column
// xPx), writing the portion with X <= xSplit to the final pool as this
// pixel's fragment and compacting the remainder back into the lower
// pool for the next column.
func (r *Rasterizer) vSplitPoly(polyIndex int, xSplit, xPx int64) {
	start := r.polyToPool[polyIndex]
	lowerLen := r.lowerEdgesLen[polyIndex]

	finalLen := 0
	newLowerLen := 0
	var splits [2]scene.Point
	splitN := 0

	for i := 0; i < lowerLen; i++ {
		edge := r.lowerEdges[start+i]

		switch {
		case edge.typ.IsXRightChain():
			switch {
			case edge.p2.X <= xSplit:
				r.finalEdges[start+finalLen] = edge
				finalLen++
			case edge.p1.X >= xSplit:
				r.lowerEdges[start+newLowerLen] = edge
				newLowerLen++
			default:
				split := scene.Point{X: xSplit, Y: r.vIntersection(edge, xPx)}
				if splitN < len(splits) {
					splits[splitN] = split
					splitN++
				}

				head := edge
				head.p2 = split
				r.finalEdges[start+finalLen] = head
				finalLen++

				tail := edge
				tail.p1 = split
				r.lowerEdges[start+newLowerLen] = tail
				newLowerLen++
			}

		case edge.typ.IsXLeftChain():
			switch {
			case edge.p1.X <= xSplit:
				r.finalEdges[start+finalLen] = edge
				finalLen++
			case edge.p2.X >= xSplit:
				r.lowerEdges[start+newLowerLen] = edge
				newLowerLen++
			default:
				split := scene.Point{X: xSplit, Y: r.vIntersection(edge, xPx)}
				if splitN < len(splits) {
					splits[splitN] = split
					splitN++
				}

				head := edge
				head.p1 = split
				r.finalEdges[start+finalLen] = head
				finalLen++

				tail := edge
				tail.p2 = split
				r.lowerEdges[start+newLowerLen] = tail
				newLowerLen++
			}

		default:
			r.finalEdges[start+finalLen] = edge
			finalLen++
		}
	}

	if splitN == 2 {
		top, bottom := splits[0], splits[1]
		if top.Y > bottom.Y {
			top, bottom = bottom, top
		}

		r.finalEdges[start+finalLen] = vertBottom(top, bottom)
		finalLen++

		if newLowerLen > 0 {
			r.lowerEdges[start+newLowerLen] = vertTop(bottom, top)
			newLowerLen++
		}
	}

	r.finalEdgesLen[polyIndex] = finalLen
	r.addFinalActive(polyIndex)

	r.lowerEdgesLen[polyIndex] = newLowerLen
}

// canAdvanceStripe reports whether the current column's lower-active
// window holds exactly one polygon and no final-active fragment yet, in
// which case every pixel up to the next polygon entering the lower-active
// window (or xEnd, if there is none) is covered by that one polygon alone
// and can be filled in one run instead of one vSplit call per pixel.
//
// The boundary is the next polygon's min_x, not the current polygon's own
// max_x: a wider polygon further back (e.g. a full-canvas background)
// stays active well past where a narrower foreground polygon begins, so
// stopping at the lone active polygon's own right edge would skip over
// any foreground shape lying within it.
func (r *Rasterizer) canAdvanceStripe(xEnd int64) (int64, bool) {
	if r.finalActiveFull != 0 {
		return 0, false
	}
	if r.lowerActiveEnd-r.lowerActiveStart != 1 {
		return 0, false
	}

	if r.lowerActiveEnd == r.lowerActiveFull {
		return xEnd, true
	}
	nextPoly := r.lowerActive[r.lowerActiveEnd]
	return toPx(r.lowerMinX[nextPoly]), true
}
