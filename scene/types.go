// Package scene defines the read-only input data model consumed by a
// Rasterizer: points, segments, circles, colors, edges and polygons, all in
// 64-bit signed sub-pixel coordinates.
//
// A Scene never changes during rendering. The rasterizer package owns all
// mutable working state (pools, active sets); this package only describes
// what to draw.
package scene

// Point is a coordinate pair in sub-pixel units.
type Point struct {
	X, Y int64
}

// RGB is a constant fill color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Segment is an ordered endpoint pair indexing into Scene.Points. Its
// orientation (P1, P2) is fixed at construction; an Edge referencing it
// carries its own Reversed bit to say whether this particular use of the
// segment runs P1->P2 or P2->P1, so two polygons can share one segment
// while traversing it in opposite directions.
type Segment struct {
	P1, P2 int
}

// Circle is the center point (indexing into Scene.Points) and radius, in
// sub-pixel units, of an arc's supporting circle.
type Circle struct {
	Center int
	Radius int64
}

// EdgeType classifies an Edge by shape family (line, concave arc, convex
// arc) and by the quadrant its p1->p2 traversal departs into.
//
// The directional suffix is one of TR, TL, BR, BL (quadrant the edge departs
// p1 toward), or HR, HL, VT, VB for edges that are exactly horizontal or
// vertical (whether present in the original scene or introduced by a
// split). The suffix fixes the edge's working orientation, independent of
// how its underlying Segment happens to be stored:
//
//   - T-suffixed and VT types belong to the Y-sweep's top chain and must
//     run with working p2.y >= p1.y.
//   - B-suffixed and VB types belong to the bottom chain and must run with
//     working p2.y <= p1.y.
//   - R-suffixed and HR types belong to the X-sweep's right chain and must
//     run with working p2.x >= p1.x.
//   - L-suffixed and HL types belong to the left chain and must run with
//     working p2.x <= p1.x.
//
// "Working" p1/p2 means after applying Edge.Reversed to the referenced
// Segment's stored points.
type EdgeType uint8

const (
	LTR EdgeType = iota // line, departs toward top-right; p1.y < p2.y
	LTL                 // line, departs toward top-left;  p1.y < p2.y
	LBR                 // line, departs toward bottom-right; p1.y > p2.y
	LBL                 // line, departs toward bottom-left;  p1.y > p2.y
	LHR                 // horizontal cap, p1.x < p2.x (introduced by H-split)
	LHL                 // horizontal cap, p1.x > p2.x (introduced by H-split)
	LVT                 // vertical cap, p1.y < p2.y (introduced by V-split)
	LVB                 // vertical cap, p1.y > p2.y (introduced by V-split)
	CTR                 // concave arc, top-right, area contribution added
	CTL                 // concave arc, top-left, area contribution added
	CBR                 // concave arc, bottom-right, area contribution added
	CBL                 // concave arc, bottom-left, area contribution added
	ATR                 // convex (alternate) arc, top-right, area contribution subtracted
	ATL                 // convex (alternate) arc, top-left, area contribution subtracted
	ABR                 // convex (alternate) arc, bottom-right, area contribution subtracted
	ABL                 // convex (alternate) arc, bottom-left, area contribution subtracted
)

// String renders t using its constant name, for panics and log lines.
func (t EdgeType) String() string {
	switch t {
	case LTR:
		return "LTR"
	case LTL:
		return "LTL"
	case LBR:
		return "LBR"
	case LBL:
		return "LBL"
	case LHR:
		return "LHR"
	case LHL:
		return "LHL"
	case LVT:
		return "LVT"
	case LVB:
		return "LVB"
	case CTR:
		return "CTR"
	case CTL:
		return "CTL"
	case CBR:
		return "CBR"
	case CBL:
		return "CBL"
	case ATR:
		return "ATR"
	case ATL:
		return "ATL"
	case ABR:
		return "ABR"
	case ABL:
		return "ABL"
	default:
		return "EdgeType(?)"
	}
}

// IsLine reports whether t is a straight-line edge (the L* family).
func (t EdgeType) IsLine() bool { return t <= LVB }

// IsConcaveArc reports whether t is a C* edge: its circular-segment area
// correction is added in double_area.
func (t EdgeType) IsConcaveArc() bool { return t >= CTR && t <= CBL }

// IsConvexArc reports whether t is an A* edge: its circular-segment area
// correction is subtracted in double_area.
func (t EdgeType) IsConvexArc() bool { return t >= ATR }

// IsArc reports whether t is any circular-arc family (C* or A*).
func (t EdgeType) IsArc() bool { return t >= CTR }

// IsYTopChain reports whether t belongs to the "top chain" consulted by the
// first phase of a horizontal split (h_split_poly).
func (t EdgeType) IsYTopChain() bool {
	switch t {
	case LTR, LTL, LVT, CTR, CTL, ATR, ATL:
		return true
	default:
		return false
	}
}

// IsYBottomChain reports whether t belongs to the "bottom chain" consulted
// by the second phase of a horizontal split (h_split_poly).
func (t EdgeType) IsYBottomChain() bool {
	switch t {
	case LBR, LBL, LVB, CBR, CBL, ABR, ABL:
		return true
	default:
		return false
	}
}

// IsXRightChain reports whether t belongs to the "right chain" consulted by
// the first phase of a vertical split (v_split_poly).
func (t EdgeType) IsXRightChain() bool {
	switch t {
	case LTR, LBR, LHR, CTR, CBR, ATR, ABR:
		return true
	default:
		return false
	}
}

// IsXLeftChain reports whether t belongs to the "left chain" consulted by
// the second phase of a vertical split (v_split_poly).
func (t EdgeType) IsXLeftChain() bool {
	switch t {
	case LTL, LBL, LHL, CTL, CBL, ATL, ABL:
		return true
	default:
		return false
	}
}

// Edge is one tagged boundary element of a polygon: a segment (and, for arc
// families, the circle it lies on). The scene stores only the static
// reference; working endpoints are resolved and mutated in the rasterizer's
// internal pools, never here.
//
// Circle is -1 for line edges. Segment sharing note: a convex (A*) arc edge
// does not get its own intersection table computed — the intersection
// precomputer only dispatches on line and concave-arc types. A scene that
// uses an A*-typed edge must reference a Segment index that some other
// L*- or C*-typed edge (earlier in iteration order) already populated the
// table for — both sides of one physical arc share identical x(y)/y(x)
// tables regardless of which polygon the arc bounds.
type Edge struct {
	Type     EdgeType
	Segment  int
	Circle   int
	Reversed bool // true if this edge traverses Segment from P2 to P1
}

// Poly is a contiguous run [Start, End) of Edges sharing one Color.
type Poly struct {
	Color      int
	Start, End int
}

// Scene is the complete, read-only description of one frame's content.
type Scene struct {
	Points   []Point
	Segments []Segment
	Circles  []Circle
	Colors   []RGB
	Edges    []Edge
	Polys    []Poly
}

// Endpoints resolves the unsplit working points of edge e, honoring
// e.Reversed to pick the segment's traversal direction.
func (s *Scene) Endpoints(e Edge) (p1, p2 Point) {
	seg := s.Segments[e.Segment]
	a, b := s.Points[seg.P1], s.Points[seg.P2]
	if e.Reversed {
		return b, a
	}
	return a, b
}
