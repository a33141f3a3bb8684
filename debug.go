package polydraw

import "github.com/majkcramer/polydraw/scene"

// checkFail panics with a RuntimeError describing a broken invariant.
// Called only from debug-check methods, never from the hot path itself.
func checkFail(op, msg string) {
	panic(&RuntimeError{Op: op, Err: invariantError(msg)})
}

type invariantError string

func (e invariantError) Error() string { return string(e) }

func (r *Rasterizer) checkUpperInitialPool() {
	for i := 0; i < r.polysLen; i++ {
		if r.upperEdgesLen[i] < 3 {
			checkFail("checkUpperInitialPool", "polygon has fewer than 3 edges")
		}
	}
}

func (r *Rasterizer) checkIntersections(s *scene.Scene) {
	for polyIndex := 0; polyIndex < r.polysLen; polyIndex++ {
		start := r.polyToPool[polyIndex]
		end := start + r.upperEdgesLen[polyIndex]

		for i := start; i < end; i++ {
			e := r.upperEdges[i]
			if e.segment < 0 {
				continue
			}
			if needsHoriTable(e.typ) && r.horiRef[e.segment].start == unresolved {
				checkFail("checkIntersections", "horizontal intersection table left unresolved")
			}
			if needsVertTable(e.typ) && r.vertRef[e.segment].start == unresolved {
				checkFail("checkIntersections", "vertical intersection table left unresolved")
			}
		}
	}
}

func (r *Rasterizer) checkMinMaxXY(minX, minY, maxX, maxY int64) {
	if minX > maxX || minY > maxY {
		checkFail("checkMinMaxXY", "scene bounding box is inverted")
	}
}

func (r *Rasterizer) checkUpperMinMaxY(sceneMinY, sceneMaxY int64) {
	for i := 0; i < r.polysLen; i++ {
		if r.upperMinY[i] > r.upperMaxY[i] {
			checkFail("checkUpperMinMaxY", "polygon Y range is inverted")
		}
		if r.upperMinY[i] < sceneMinY || r.upperMaxY[i] > sceneMaxY {
			checkFail("checkUpperMinMaxY", "polygon Y range exceeds the scene bounding box")
		}
	}
}

func (r *Rasterizer) checkUpperRange(ySplit int64) {
	if r.upperActiveStart > r.upperActiveEnd || r.upperActiveEnd > r.polysLen {
		checkFail("checkUpperRange", "upper active window indices out of order")
	}
	for i := r.upperActiveStart; i < r.upperActiveEnd; i++ {
		polyIndex := r.upperActive[i]
		if r.upperMinY[polyIndex] >= ySplit {
			checkFail("checkUpperRange", "active polygon has not yet reached the current row")
		}
	}
}

func (r *Rasterizer) checkUpperPool() {
	for i := r.upperActiveStart; i < r.upperActiveEnd; i++ {
		polyIndex := r.upperActive[i]
		if r.upperEdgesLen[polyIndex] < 0 {
			checkFail("checkUpperPool", "negative upper edge count")
		}
	}
}

func (r *Rasterizer) checkUpperBounds(ySplit int64) {
	for i := r.upperActiveStart; i < r.upperActiveEnd; i++ {
		polyIndex := r.upperActive[i]
		start := r.polyToPool[polyIndex]
		end := start + r.upperEdgesLen[polyIndex]

		for j := start; j < end; j++ {
			e := r.upperEdges[j]
			if e.p1.Y < ySplit && e.p2.Y < ySplit {
				checkFail("checkUpperBounds", "edge left in upper pool lies entirely above the split")
			}
		}
	}
}

func (r *Rasterizer) checkLowerInitialPool() {
	for i := 0; i < r.lowerActiveFull; i++ {
		polyIndex := r.lowerActive[i]
		if r.lowerEdgesLen[polyIndex] < 3 {
			checkFail("checkLowerInitialPool", "row slice has fewer than 3 edges")
		}
	}
}

func (r *Rasterizer) checkLowerInitialBounds(ySplit int64) {
	for i := 0; i < r.lowerActiveFull; i++ {
		polyIndex := r.lowerActive[i]
		start := r.polyToPool[polyIndex]
		end := start + r.lowerEdgesLen[polyIndex]

		for j := start; j < end; j++ {
			e := r.lowerEdges[j]
			if e.p1.Y > ySplit || e.p2.Y > ySplit {
				checkFail("checkLowerInitialBounds", "row slice edge extends past the split")
			}
		}
	}
}

func (r *Rasterizer) checkLowerMinMaxX(sceneMinX, sceneMaxX int64) {
	for i := 0; i < r.lowerActiveFull; i++ {
		polyIndex := r.lowerActive[i]
		if r.lowerMinX[polyIndex] > r.lowerMaxX[polyIndex] {
			checkFail("checkLowerMinMaxX", "row slice X range is inverted")
		}
		if r.lowerMinX[polyIndex] < sceneMinX || r.lowerMaxX[polyIndex] > sceneMaxX {
			checkFail("checkLowerMinMaxX", "row slice X range exceeds the scene bounding box")
		}
	}
}

func (r *Rasterizer) checkLowerRange(xSplit int64) {
	if r.lowerActiveStart > r.lowerActiveEnd || r.lowerActiveEnd > r.lowerActiveFull {
		checkFail("checkLowerRange", "lower active window indices out of order")
	}
	for i := r.lowerActiveStart; i < r.lowerActiveEnd; i++ {
		polyIndex := r.lowerActive[i]
		if r.lowerMinX[polyIndex] >= xSplit {
			checkFail("checkLowerRange", "active row slice has not yet reached the current column")
		}
	}
}

func (r *Rasterizer) checkLowerPool() {
	if r.finalActiveFull < 0 {
		checkFail("checkLowerPool", "negative final active count")
	}
}

func (r *Rasterizer) checkLowerBounds(xSplit int64) {
	for i := r.lowerActiveStart; i < r.lowerActiveEnd; i++ {
		polyIndex := r.lowerActive[i]
		start := r.polyToPool[polyIndex]
		end := start + r.lowerEdgesLen[polyIndex]

		for j := start; j < end; j++ {
			e := r.lowerEdges[j]
			if e.p1.X < xSplit && e.p2.X < xSplit {
				checkFail("checkLowerBounds", "edge left in lower pool lies entirely before the split")
			}
		}
	}
}

func (r *Rasterizer) checkFinalPool() {
	if r.finalActiveFull > r.polysLen {
		checkFail("checkFinalPool", "final active count exceeds the polygon count")
	}
	for i := 0; i < r.finalActiveFull; i++ {
		polyIndex := r.finalActive[i]
		if r.finalEdgesLen[polyIndex] < 3 {
			checkFail("checkFinalPool", "final fragment has fewer than 3 edges")
		}
	}
}

func (r *Rasterizer) checkFinalBounds(xSplit int64) {
	for i := 0; i < r.finalActiveFull; i++ {
		polyIndex := r.finalActive[i]
		start := r.polyToPool[polyIndex]
		end := start + r.finalEdgesLen[polyIndex]

		for j := start; j < end; j++ {
			e := r.finalEdges[j]
			if e.p1.X > xSplit || e.p2.X > xSplit {
				checkFail("checkFinalBounds", "final fragment edge extends past the split")
			}
		}
	}
}
