package polydraw

import (
	"cmp"
	"slices"

	"github.com/majkcramer/polydraw/scene"
)

// padPerPoly is the number of extra pool slots reserved after each
// polygon's edges: every horizontal split emits at most one cap edge and
// one edge pierced in two, and likewise for vertical splits, so 4 spare
// slots make every split an in-place O(edge count) operation with no
// reallocation mid-sweep.
const padPerPoly = 4

// transferScene resets every pool to s's polygons, resolving each edge's
// working p1/p2 from its segment (honoring Edge.Reversed) and seeding the
// upper-active set with every polygon in scene order.
func (r *Rasterizer) transferScene(s *scene.Scene) {
	r.polysLen = len(s.Polys)

	poolCap := 0
	for _, p := range s.Polys {
		poolCap += (p.End - p.Start) + padPerPoly
	}

	r.polyToPool = growInt(r.polyToPool, r.polysLen)
	r.upperEdgesLen = growInt(r.upperEdgesLen, r.polysLen)
	r.upperMinY = growInt64(r.upperMinY, r.polysLen)
	r.upperMaxY = growInt64(r.upperMaxY, r.polysLen)
	r.upperActive = growInt(r.upperActive, r.polysLen)
	r.lowerEdgesLen = growInt(r.lowerEdgesLen, r.polysLen)
	r.lowerMinX = growInt64(r.lowerMinX, r.polysLen)
	r.lowerMaxX = growInt64(r.lowerMaxX, r.polysLen)
	r.lowerActive = growInt(r.lowerActive, r.polysLen)
	r.finalEdgesLen = growInt(r.finalEdgesLen, r.polysLen)
	r.finalActive = growInt(r.finalActive, r.polysLen)

	r.upperEdges = growEdge(r.upperEdges, poolCap)
	r.lowerEdges = growEdge(r.lowerEdges, poolCap)
	r.finalEdges = growEdge(r.finalEdges, poolCap)

	poolIndex := 0
	for i, p := range s.Polys {
		r.polyToPool[i] = poolIndex
		r.upperEdgesLen[i] = p.End - p.Start

		for _, e := range s.Edges[p.Start:p.End] {
			seg := s.Segments[e.Segment]
			p1, p2 := s.Points[seg.P1], s.Points[seg.P2]
			if e.Reversed {
				p1, p2 = p2, p1
			}

			r.upperEdges[poolIndex] = workEdge{
				typ: e.Type, segment: e.Segment, circle: e.Circle,
				p1: p1, p2: p2,
			}
			poolIndex++
		}

		poolIndex += padPerPoly

		r.upperActive[i] = i
	}

	r.upperActiveStart = 0
	r.upperActiveEnd = 0
}

// minMaxXY returns the bounding box of every segment endpoint in s.
//
// Corrected relative to the original source, which computed s_max_x and
// s_max_y with min() instead of max() (see DESIGN.md); that bug would
// make every polygon's apparent right/bottom edge collapse to its
// top/left one.
func (r *Rasterizer) minMaxXY(s *scene.Scene) (minX, minY, maxX, maxY int64) {
	minX, minY = maxInt64, maxInt64
	maxX, maxY = -maxInt64-1, -maxInt64-1

	for _, seg := range s.Segments {
		p1, p2 := s.Points[seg.P1], s.Points[seg.P2]

		if v := min(p1.X, p2.X); v < minX {
			minX = v
		}
		if v := min(p1.Y, p2.Y); v < minY {
			minY = v
		}
		if v := max(p1.X, p2.X); v > maxX {
			maxX = v
		}
		if v := max(p1.Y, p2.Y); v > maxY {
			maxY = v
		}
	}

	return minX, minY, maxX, maxY
}

// updateUpperMinMaxY recomputes every polygon's Y bounding range from its
// still-whole upper edges, then resorts the active set by (min_y, max_y).
func (r *Rasterizer) updateUpperMinMaxY() {
	for polyIndex := 0; polyIndex < r.polysLen; polyIndex++ {
		start := r.polyToPool[polyIndex]
		end := start + r.upperEdgesLen[polyIndex]

		polyMinY, polyMaxY := maxInt64, -maxInt64-1
		for i := start; i < end; i++ {
			y := r.upperEdges[i].p1.Y
			if y < polyMinY {
				polyMinY = y
			}
			if y > polyMaxY {
				polyMaxY = y
			}
		}

		r.upperMinY[polyIndex] = polyMinY
		r.upperMaxY[polyIndex] = polyMaxY
	}

	r.sortUpperActive()
}

func (r *Rasterizer) sortUpperActive() {
	active := r.upperActive[:r.polysLen]
	slices.SortStableFunc(active, func(a, b int) int {
		if c := cmp.Compare(r.upperMinY[a], r.upperMinY[b]); c != 0 {
			return c
		}
		return cmp.Compare(r.upperMaxY[a], r.upperMaxY[b])
	})
}

// updateLowerMinMaxX is updateUpperMinMaxY's X-sweep counterpart, over
// the currently-active lower polygons.
func (r *Rasterizer) updateLowerMinMaxX() {
	for activeIndex := 0; activeIndex < r.lowerActiveFull; activeIndex++ {
		polyIndex := r.lowerActive[activeIndex]

		start := r.polyToPool[polyIndex]
		end := start + r.lowerEdgesLen[polyIndex]

		polyMinX, polyMaxX := maxInt64, -maxInt64-1
		for i := start; i < end; i++ {
			x := r.lowerEdges[i].p1.X
			if x < polyMinX {
				polyMinX = x
			}
			if x > polyMaxX {
				polyMaxX = x
			}
		}

		r.lowerMinX[polyIndex] = polyMinX
		r.lowerMaxX[polyIndex] = polyMaxX
	}

	r.sortLowerActive()
}

func (r *Rasterizer) sortLowerActive() {
	active := r.lowerActive[:r.lowerActiveFull]
	slices.SortStableFunc(active, func(a, b int) int {
		if c := cmp.Compare(r.lowerMinX[a], r.lowerMinX[b]); c != 0 {
			return c
		}
		return cmp.Compare(r.lowerMaxX[a], r.lowerMaxX[b])
	})
}

// advanceUpperRange grows the upper-active window to admit every polygon
// whose min_y is now within the current scanline, and retires (copying
// to the lower pool) every polygon whose max_y has passed it.
func (r *Rasterizer) advanceUpperRange(yWorld, ySplit int64) {
	r.advanceUpperRangeEnd(ySplit)
	r.advanceUpperRangeStart(yWorld, ySplit)
}

func (r *Rasterizer) advanceUpperRangeStart(yWorld, ySplit int64) {
	for r.upperActiveStart < r.upperActiveEnd {
		polyIndex := r.upperActive[r.upperActiveStart]

		maxY := r.upperMaxY[polyIndex]
		if maxY > ySplit {
			break
		}

		if maxY > yWorld {
			r.copyToLower(polyIndex)
		}

		r.upperActiveStart++
	}
}

func (r *Rasterizer) advanceUpperRangeEnd(ySplit int64) {
	for r.upperActiveEnd < r.polysLen {
		polyIndex := r.upperActive[r.upperActiveEnd]

		if r.upperMinY[polyIndex] >= ySplit {
			break
		}

		r.upperActiveEnd++

		r.sortSinkUpperLastPoly()
	}
}

func (r *Rasterizer) copyToLower(polyIndex int) {
	start := r.polyToPool[polyIndex]
	n := r.upperEdgesLen[polyIndex]
	r.lowerEdgesLen[polyIndex] = n

	copy(r.lowerEdges[start:start+n], r.upperEdges[start:start+n])

	r.addLowerActive(polyIndex)
}

func (r *Rasterizer) addLowerActive(polyIndex int) {
	r.lowerActive[r.lowerActiveFull] = polyIndex
	r.lowerActiveFull++
}

// sortSinkUpperLastPoly moves the newest entry of the active window
// backward past every entry with a larger max_y, restoring the window's
// sort order in amortized O(1) instead of a full resort. Grounded on the
// observation that polygons enter in min_y order, so the newcomer is
// almost always already close to its correct place.
//
// Go's signed int indices make the window-start underflow possible in
// the original source's unsigned index arithmetic structurally
// impossible here: a decrement below 0 simply compares less than
// upperActiveStart (>= 0) and the loop exits, rather than wrapping
// around to a huge unsigned value (see DESIGN.md).
func (r *Rasterizer) sortSinkUpperLastPoly() {
	activeThis := r.upperActiveEnd - 1
	if activeThis <= r.upperActiveStart {
		return
	}
	activePrev := activeThis - 1

	for activePrev >= r.upperActiveStart {
		polyThis := r.upperActive[activeThis]
		polyPrev := r.upperActive[activePrev]

		if r.upperMaxY[polyPrev] <= r.upperMaxY[polyThis] {
			return
		}

		r.upperActive[activeThis] = polyPrev
		r.upperActive[activePrev] = polyThis

		activeThis--
		if activeThis <= r.upperActiveStart {
			return
		}
		activePrev = activeThis - 1
	}
}

// advanceLowerRange is advanceUpperRange's X-sweep counterpart.
func (r *Rasterizer) advanceLowerRange(xWorld, xSplit int64) {
	r.advanceLowerRangeEnd(xSplit)
	r.advanceLowerRangeStart(xWorld, xSplit)
}

func (r *Rasterizer) advanceLowerRangeStart(xWorld, xSplit int64) {
	for r.lowerActiveStart < r.lowerActiveEnd {
		polyIndex := r.lowerActive[r.lowerActiveStart]

		maxX := r.lowerMaxX[polyIndex]
		if maxX > xSplit {
			break
		}

		if maxX > xWorld {
			r.copyToFinal(polyIndex)
		}

		r.lowerActiveStart++
	}
}

func (r *Rasterizer) advanceLowerRangeEnd(xSplit int64) {
	for r.lowerActiveEnd < r.lowerActiveFull {
		polyIndex := r.lowerActive[r.lowerActiveEnd]

		if r.lowerMinX[polyIndex] >= xSplit {
			break
		}

		r.lowerActiveEnd++

		r.sortSinkLowerLastPoly()
	}
}

func (r *Rasterizer) copyToFinal(polyIndex int) {
	start := r.polyToPool[polyIndex]
	n := r.lowerEdgesLen[polyIndex]
	r.finalEdgesLen[polyIndex] = n

	copy(r.finalEdges[start:start+n], r.lowerEdges[start:start+n])

	r.addFinalActive(polyIndex)
}

func (r *Rasterizer) addFinalActive(polyIndex int) {
	r.finalActive[r.finalActiveFull] = polyIndex
	r.finalActiveFull++
}

func (r *Rasterizer) sortSinkLowerLastPoly() {
	activeThis := r.lowerActiveEnd - 1
	if activeThis <= r.lowerActiveStart {
		return
	}
	activePrev := activeThis - 1

	for activePrev >= r.lowerActiveStart {
		polyThis := r.lowerActive[activeThis]
		polyPrev := r.lowerActive[activePrev]

		if r.lowerMaxX[polyPrev] <= r.lowerMaxX[polyThis] {
			return
		}

		r.lowerActive[activeThis] = polyPrev
		r.lowerActive[activePrev] = polyThis

		activeThis--
		if activeThis <= r.lowerActiveStart {
			return
		}
		activePrev = activeThis - 1
	}
}

func growInt(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int, n)
}

func growInt64(s []int64, n int) []int64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int64, n)
}

func growEdge(s []workEdge, n int) []workEdge {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]workEdge, n)
}
