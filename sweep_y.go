package polydraw

import "github.com/majkcramer/polydraw/scene"

// hSplit clips every polygon in the current upper-active window at the
// horizontal grid line y = ySplit, producing this row's slice of each in
// the lower pool.
func (r *Rasterizer) hSplit(ySplit, yPx int64) {
	for i := r.upperActiveStart; i < r.upperActiveEnd; i++ {
		r.hSplitPoly(r.upperActive[i], ySplit, yPx)
	}
}

// hSplitPoly clips polyIndex's still-whole upper fragment at the
// horizontal grid line y = ySplit (pixel row yPx): the portion with
// Y <= ySplit is written to the lower pool as this row's slice of the
// polygon, and whatever remains below ySplit is compacted back into the
// upper pool in place for the next row.
//
// Top-chain edges (scene.EdgeType.IsYTopChain, working direction p1->p2
// increasing in Y) are consumed from their p1 end forward; bottom-chain
// edges (IsYBottomChain, p1->p2 decreasing) are the mirror image and are
// consumed from their p2 end forward. Every other edge is a flat cap
// introduced by an earlier split and is always entirely within the
// current row.
//
// A convex polygon's boundary crosses ySplit at exactly two points
// (circle arcs cross it via two simultaneously-active top- or
// bottom-chain edges rather than a single chain, since the reference
// sweep's "one crossing edge per call" assumption only holds for
// straight-sided shapes); those two points are closed off with a
// horizontal cap on each side, completing both the lower slice's
// boundary and the upper remainder's.
func (r *Rasterizer) hSplitPoly(polyIndex int, ySplit, yPx int64) {
	start := r.polyToPool[polyIndex]
	upperLen := r.upperEdgesLen[polyIndex]

	lowerLen := 0
	newUpperLen := 0
	var splits [2]scene.Point
	splitN := 0

	for i := 0; i < upperLen; i++ {
		edge := r.upperEdges[start+i]

		switch {
		case edge.typ.IsYTopChain():
			switch {
			case edge.p2.Y <= ySplit:
				r.lowerEdges[start+lowerLen] = edge
				lowerLen++
			case edge.p1.Y >= ySplit:
				r.upperEdges[start+newUpperLen] = edge
				newUpperLen++
			default:
				split := scene.Point{X: r.hIntersection(edge, yPx), Y: ySplit}
				if splitN < len(splits) {
					splits[splitN] = split
					splitN++
				}

				head := edge
				head.p2 = split
				r.lowerEdges[start+lowerLen] = head
				lowerLen++

				tail := edge
				tail.p1 = split
				r.upperEdges[start+newUpperLen] = tail
				newUpperLen++
			}

		case edge.typ.IsYBottomChain():
			switch {
			case edge.p1.Y <= ySplit:
				r.lowerEdges[start+lowerLen] = edge
				lowerLen++
			case edge.p2.Y >= ySplit:
				r.upperEdges[start+newUpperLen] = edge
				newUpperLen++
			default:
				split := scene.Point{X: r.hIntersection(edge, yPx), Y: ySplit}
				if splitN < len(splits) {
					splits[splitN] = split
					splitN++
				}

				head := edge
				head.p1 = split
				r.lowerEdges[start+lowerLen] = head
				lowerLen++

				tail := edge
				tail.p2 = split
				r.upperEdges[start+newUpperLen] = tail
				newUpperLen++
			}

		default:
			r.lowerEdges[start+lowerLen] = edge
			lowerLen++
		}
	}

	if splitN == 2 {
		left, right := splits[0], splits[1]
		if left.X > right.X {
			left, right = right, left
		}

		r.lowerEdges[start+lowerLen] = horiRight(left, right)
		lowerLen++

		if newUpperLen > 0 {
			r.upperEdges[start+newUpperLen] = horiLeft(right, left)
			newUpperLen++
		}
	}

	r.lowerEdgesLen[polyIndex] = lowerLen
	r.addLowerActive(polyIndex)

	r.upperEdgesLen[polyIndex] = newUpperLen
}
