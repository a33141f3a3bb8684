package scene

// Rect adds an axis-aligned rectangle poly spanning [x0,x1) x [y0,y1) (in
// sub-pixel units) filled with color, and returns its poly index. Edge
// types are LHR (top), LVB (right), LHL (bottom), LVT (left): the top and
// bottom edges are exactly horizontal (dy == 0), so they must use the
// horizontal cap types, not an inclined LTR/LBL — a horizontal edge fed
// to buildHoriIntersections would divide by its own zero dy. Each segment
// is stored directly in the working direction its type's chain requires
// (left non-decreasing y, right non-increasing y, top/bottom by x), so no
// edge needs its Reversed bit set. LVT (the left side, a top-chain member)
// is listed before LVB (the right side, a bottom-chain member): hSplitPoly
// scans a polygon's edges once, and every top-chain member must be seen
// before any bottom-chain member for a single-pass clip to produce both of
// a row's split points correctly.
func (b *Builder) Rect(x0, y0, x1, y1 int64, color RGB) int {
	tl := b.AddPoint(x0, y0)
	tr := b.AddPoint(x1, y0)
	br := b.AddPoint(x1, y1)
	bl := b.AddPoint(x0, y1)

	top := b.AddSegment(tl, tr)
	left := b.AddSegment(tl, bl)
	bottom := b.AddSegment(br, bl)
	right := b.AddSegment(br, tr)

	c := b.AddColor(color)
	return b.AddPoly(c,
		Line(LHR, top),
		Line(LVT, left),
		Line(LHL, bottom),
		Line(LVB, right),
	)
}

// Circle adds a poly approximating a full circle of the given center and
// radius (sub-pixel units) out of four quarter-arcs (top-right, bottom-
// right, bottom-left, top-left), filled with color, and returns its poly
// index. Each quarter uses a concave (C*) arc type since the polygon
// interior lies on the same side as the circle's center. As with Rect,
// each segment is stored directly in the direction its type's chain
// requires: CTR and CTL ascend from north, CBR and CBL descend from south.
func (b *Builder) Circle(cx, cy, radius int64, color RGB) int {
	center := b.AddPoint(cx, cy)
	circle := b.AddCircle(center, radius)

	east := b.AddPoint(cx+radius, cy)
	north := b.AddPoint(cx, cy-radius)
	west := b.AddPoint(cx-radius, cy)
	south := b.AddPoint(cx, cy+radius)

	segNE := b.AddSegment(north, east)
	segSE := b.AddSegment(south, east)
	segSW := b.AddSegment(south, west)
	segNW := b.AddSegment(north, west)

	c := b.AddColor(color)
	return b.AddPoly(c,
		ArcEdge(CTR, segNE, circle),
		ArcEdge(CBR, segSE, circle),
		ArcEdge(CBL, segSW, circle),
		ArcEdge(CTL, segNW, circle),
	)
}
