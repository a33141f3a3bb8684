package scene

import "testing"

func rectScene(t *testing.T) Scene {
	t.Helper()
	b := NewBuilder()
	b.Rect(0, 0, 3000, 3000, RGB{R: 200, G: 100, B: 50})
	return b.Build()
}

func TestValidateAcceptsRect(t *testing.T) {
	s := rectScene(t)
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateAcceptsCircle(t *testing.T) {
	b := NewBuilder()
	b.Circle(1500, 1500, 500, RGB{R: 200})
	s := b.Build()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsTooFewEdges(t *testing.T) {
	b := NewBuilder()
	p1 := b.AddPoint(0, 0)
	p2 := b.AddPoint(1000, 0)
	seg := b.AddSegment(p1, p2)
	c := b.AddColor(RGB{})
	b.AddPoly(c, Line(LTR, seg), Line(LBL, seg).Rev())
	s := b.Build()
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for a 2-edge poly")
	}
}

func TestValidateRejectsChainViolation(t *testing.T) {
	b := NewBuilder()
	tl := b.AddPoint(0, 0)
	tr := b.AddPoint(1000, 0)
	br := b.AddPoint(1000, 1000)
	bl := b.AddPoint(0, 1000)

	top := b.AddSegment(tl, tr)
	right := b.AddSegment(br, tr)
	bottom := b.AddSegment(br, bl)
	left := b.AddSegment(tl, bl)

	c := b.AddColor(RGB{})
	// left is stored tl->bl (p1.y < p2.y), but tagged LVB which requires
	// working p2.y <= p1.y: a chain-direction violation.
	b.AddPoly(c,
		Line(LHR, top),
		Line(LVB, right),
		Line(LHL, bottom),
		Line(LVB, left),
	)
	s := b.Build()
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for a chain-direction violation")
	}
}

func TestValidateRejectsUnclosedBoundary(t *testing.T) {
	b := NewBuilder()
	tl := b.AddPoint(0, 0)
	tr := b.AddPoint(1000, 0)
	br := b.AddPoint(1000, 1000)
	bl := b.AddPoint(0, 1000)
	other := b.AddPoint(2000, 2000)

	top := b.AddSegment(tl, tr)
	left := b.AddSegment(tl, bl)
	bottom := b.AddSegment(br, bl)
	strayRight := b.AddSegment(other, tr) // doesn't connect back to tl/bl

	c := b.AddColor(RGB{})
	b.AddPoly(c,
		Line(LHR, top),
		Line(LVT, left),
		Line(LHL, bottom),
		Line(LVB, strayRight),
	)
	s := b.Build()
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for an unclosed boundary")
	}
}

func TestValidateRejectsOutOfRangeSegment(t *testing.T) {
	b := NewBuilder()
	p1 := b.AddPoint(0, 0)
	p2 := b.AddPoint(1000, 0)
	seg := b.AddSegment(p1, p2)
	c := b.AddColor(RGB{})
	b.AddPoly(c, Line(LTR, seg), Line(LBL, seg).Rev(), EdgeSpec{Type: LVT, Segment: 99, Circle: -1})
	s := b.Build()
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for an out-of-range segment reference")
	}
}

func TestValidateRejectsArcMissingCircle(t *testing.T) {
	b := NewBuilder()
	p1 := b.AddPoint(0, 0)
	p2 := b.AddPoint(1000, 1000)
	seg := b.AddSegment(p1, p2)
	c := b.AddColor(RGB{})
	b.AddPoly(c, EdgeSpec{Type: CTR, Segment: seg, Circle: -1}, Line(LBL, seg).Rev(), Line(LTL, seg))
	s := b.Build()
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for an arc edge with no circle")
	}
}

func TestValidateRejectsOutOfRangeColor(t *testing.T) {
	s := rectScene(t)
	s.Polys[0].Color = 5
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for an out-of-range color reference")
	}
}
