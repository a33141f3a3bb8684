package polydraw

import "github.com/majkcramer/polydraw/scene"

// DivPerPixel is the number of sub-pixel units spanned by one on-screen
// pixel. All Scene coordinates are in these units.
const DivPerPixel int64 = 1000

// DoublePixelArea is twice the area, in squared sub-pixel units, of one
// full pixel. Fragment areas are tracked doubled throughout (the shoelace
// formula's natural units) to avoid a division until the final average.
const DoublePixelArea int64 = DivPerPixel * DivPerPixel * 2

const maxInt64 = int64(^uint64(0) >> 1)

// halfMaxErr biases the DDA's error accumulator toward round-to-nearest.
const halfMaxErr = maxInt64 / 2

// toPx converts a sub-pixel coordinate to its containing pixel index via
// truncating division, matching the reference rasterizer exactly (and
// its implicit assumption of non-negative scene coordinates: truncation
// rounds a negative coordinate toward zero, not down).
func toPx(v int64) int64 {
	return v / DivPerPixel
}

// fromPx converts a pixel index back to the sub-pixel coordinate of its
// top-left (or left, for a 1-D axis) corner.
func fromPx(p int64) int64 {
	return p * DivPerPixel
}

// hMultiIntersectFast appends, to out starting at index start, the X
// intersection of the line p1->p2 with every horizontal pixel-grid line
// (y = k*stepY) it crosses, in increasing y order. Returns the index one
// past the last value written and the pixel row of the first intersection.
//
// Uses an integer DDA: a constant per-step delta (stepX) plus an error
// accumulator scaled by the maximum representable int64 so that rounding
// is exact and deterministic without floating point or per-step division.
func hMultiIntersectFast(p1, p2 scene.Point, stepY int64, start int, out []int64) (int, int64) {
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	startPx := 1 + p1.Y/stepY
	endPx := 1 + (p2.Y-1)/stepY

	dy := p2.Y - p1.Y
	dx := p2.X - p1.X
	dxSign := signum(dx)

	stepX := dx * stepY / dy

	maxDivDy := maxInt64 / dy

	errStep := maxDivDy * (stepY*dx*dxSign - stepX*dxSign*dy)

	firstY := startPx * stepY
	fdy := firstY - p1.Y
	fdx := dx * fdy / dy

	x := p1.X + fdx

	if errStep == 0 {
		for px := startPx; px < endPx; px++ {
			out[start] = x
			start++
			x += stepX
		}
		return start, startPx
	}

	err := maxDivDy*(fdy*dx*dxSign-fdx*dxSign*dy) - halfMaxErr

	for px := startPx; px < endPx; px++ {
		if err > 0 {
			x += dxSign
			err -= maxInt64
		}

		out[start] = x
		start++

		x += stepX
		err += errStep
	}

	return start, startPx
}

// vMultiIntersectFast is hMultiIntersectFast with X and Y swapped: it
// appends the Y intersection of p1->p2 with every vertical pixel-grid
// line it crosses, in increasing x order.
func vMultiIntersectFast(p1, p2 scene.Point, stepX int64, start int, out []int64) (int, int64) {
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}

	startPx := 1 + p1.X/stepX
	endPx := 1 + (p2.X-1)/stepX

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dySign := signum(dy)

	stepY := dy * stepX / dx

	maxDivDx := maxInt64 / dx

	errStep := maxDivDx * (stepX*dy*dySign - stepY*dySign*dx)

	firstX := startPx * stepX
	fdx := firstX - p1.X
	fdy := dy * fdx / dx

	y := p1.Y + fdy

	if errStep == 0 {
		for px := startPx; px < endPx; px++ {
			out[start] = y
			start++
			y += stepY
		}
		return start, startPx
	}

	err := maxDivDx*(fdx*dy*dySign-fdy*dySign*dx) - halfMaxErr

	for px := startPx; px < endPx; px++ {
		if err > 0 {
			y += dySign
			err -= maxInt64
		}

		out[start] = y
		start++

		y += stepY
		err += errStep
	}

	return start, startPx
}

func signum(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
