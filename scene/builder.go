package scene

// Builder accumulates points, segments, circles, colors, edges and polygons
// into a Scene, resolving indices automatically. It exists because
// hand-built scenes (parallel arrays of points/segments/edges/polys, each
// referenced purely by integer index) are tedious and easy to get subtly
// wrong — a single off-by-one silently produces an unclosed polygon.
// Builder is a convenience only: it still just produces a Scene, the same
// external interface a hand-built one would.
type Builder struct {
	scene Scene
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddPoint appends a point and returns its index.
func (b *Builder) AddPoint(x, y int64) int {
	b.scene.Points = append(b.scene.Points, Point{X: x, Y: y})
	return len(b.scene.Points) - 1
}

// AddSegment appends a segment between two previously added points and
// returns its index.
func (b *Builder) AddSegment(p1, p2 int) int {
	b.scene.Segments = append(b.scene.Segments, Segment{P1: p1, P2: p2})
	return len(b.scene.Segments) - 1
}

// AddCircle appends a circle and returns its index.
func (b *Builder) AddCircle(center int, radius int64) int {
	b.scene.Circles = append(b.scene.Circles, Circle{Center: center, Radius: radius})
	return len(b.scene.Circles) - 1
}

// AddColor appends a color and returns its index.
func (b *Builder) AddColor(c RGB) int {
	b.scene.Colors = append(b.scene.Colors, c)
	return len(b.scene.Colors) - 1
}

// EdgeSpec describes one edge of a polygon about to be added via AddPoly:
// its type, the segment (and, for arcs, circle) it references, and whether
// it traverses that segment in reverse. A segment built once and referenced
// by two EdgeSpecs with opposite Reversed values is shared between two
// polygons that border each other along it.
type EdgeSpec struct {
	Type     EdgeType
	Segment  int
	Circle   int
	Reversed bool
}

// Line builds an EdgeSpec for a straight-line edge over an existing segment,
// traversed P1->P2.
func Line(t EdgeType, segment int) EdgeSpec {
	return EdgeSpec{Type: t, Segment: segment, Circle: -1}
}

// ArcEdge builds an EdgeSpec for a circular-arc edge over an existing
// segment and circle, traversed P1->P2.
func ArcEdge(t EdgeType, segment, circle int) EdgeSpec {
	return EdgeSpec{Type: t, Segment: segment, Circle: circle}
}

// Rev flips an EdgeSpec to traverse its segment P2->P1.
func (e EdgeSpec) Rev() EdgeSpec {
	e.Reversed = !e.Reversed
	return e
}

// AddPoly appends a new polygon with the given fill color and ordered edge
// list, and returns its index. The caller is responsible for the edges
// forming a closed boundary with chain-monotone directions; use
// Scene.Validate to check.
func (b *Builder) AddPoly(color int, edges ...EdgeSpec) int {
	start := len(b.scene.Edges)
	for _, e := range edges {
		b.scene.Edges = append(b.scene.Edges, Edge{Type: e.Type, Segment: e.Segment, Circle: e.Circle, Reversed: e.Reversed})
	}
	b.scene.Polys = append(b.scene.Polys, Poly{Color: color, Start: start, End: len(b.scene.Edges)})
	return len(b.scene.Polys) - 1
}

// Build returns the accumulated Scene.
func (b *Builder) Build() Scene {
	return b.scene
}
