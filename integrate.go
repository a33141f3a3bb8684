package polydraw

import (
	"math"

	"github.com/majkcramer/polydraw/scene"
)

// activeColor blends the colors of every finally-active polygon at the
// current pixel, weighted by each one's doubled fragment area. The last
// polygon in finalActive (painter's-algorithm order, matching scene.Polys
// order) is assumed to be on top and its area is inferred as whatever of
// the pixel the polys beneath it didn't already cover, saving one
// doubleArea call and sidestepping any rounding drift between the sum of
// every fragment's area and a full pixel's.
func (r *Rasterizer) activeColor(s *scene.Scene) scene.RGB {
	n := r.finalActiveFull

	var sumR, sumG, sumB, areaSum int64

	for idx := 0; idx < n; idx++ {
		polyIndex := r.finalActive[idx]

		var area int64
		if idx == n-1 {
			area = DoublePixelArea - areaSum
		} else {
			area = r.doubleArea(polyIndex)
			areaSum += area
		}

		color := s.Colors[s.Polys[polyIndex].Color]
		sumR += int64(color.R) * area
		sumG += int64(color.G) * area
		sumB += int64(color.B) * area
	}

	return scene.RGB{
		R: uint8(sumR / DoublePixelArea),
		G: uint8(sumG / DoublePixelArea),
		B: uint8(sumB / DoublePixelArea),
	}
}

// doubleArea returns twice polyIndex's final fragment area via the
// shoelace formula, specialized per edge type: a vertical edge (LVT,
// LVB) never contributes (dx is always zero), and an arc edge's chord
// contribution is corrected by the area between the chord and the arc
// it approximates.
func (r *Rasterizer) doubleArea(polyIndex int) int64 {
	start := r.polyToPool[polyIndex]
	n := r.finalEdgesLen[polyIndex]

	var sum int64
	var correction float64

	for i := 0; i < n; i++ {
		e := r.finalEdges[start+i]
		dx := e.p2.X - e.p1.X

		switch e.typ {
		case scene.LHR, scene.LHL:
			sum += dx * 2 * e.p1.Y
		case scene.LTR, scene.LBR, scene.CTR:
			sum += dx * (e.p1.Y + e.p2.Y)
		case scene.LTL, scene.LBL, scene.CTL, scene.CBL, scene.CBR, scene.ATR, scene.ATL, scene.ABR, scene.ABL:
			sum += dx * (e.p1.Y + e.p2.Y)
			correction += r.arcCorrection(e)
		}
	}

	return sum + int64(math.Round(correction))
}

// arcCorrection returns the doubled area between an arc edge's chord and
// the arc itself: positive for a concave arc (the polygon's true
// boundary bulges outside the chord, so the chord underestimates it) and
// negative for a convex one (the boundary bulges inside the chord).
func (r *Rasterizer) arcCorrection(e workEdge) float64 {
	radius := float64(r.circleRadius(e.circle))
	if radius == 0 {
		return 0
	}

	dx := float64(e.p2.X - e.p1.X)
	dy := float64(e.p2.Y - e.p1.Y)
	halfChord := math.Sqrt(dx*dx+dy*dy) / 2

	theta := 2 * math.Asin(clamp01(halfChord/radius))
	segment := radius * radius * (theta - math.Sin(theta))

	if e.typ.IsConvexArc() {
		return -segment
	}
	return segment
}

func clamp01(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
