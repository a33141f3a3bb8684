package polydraw

import (
	"testing"

	"github.com/majkcramer/polydraw/scene"
)

// TestRenderSquareFullCoverage covers the S1 property: an axis-aligned
// square aligned to the pixel grid renders as a block of exact,
// unblended color, and every pixel outside it is left at the frame's
// initial state.
func TestRenderSquareFullCoverage(t *testing.T) {
	b := scene.NewBuilder()
	color := scene.RGB{R: 200, G: 100, B: 50}
	b.Rect(0, 0, 3000, 3000, color)
	s := b.Build()

	frame := NewImageFrame(5, 5)
	New().Render(&s, frame)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := scene.RGB{}
			if x < 3 && y < 3 {
				want = color
			}
			if got := pixelAt(frame, x, y); got != want {
				t.Errorf("pixel(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

// TestRenderSplitDiagonalHalfBlend covers S3: two triangles sharing a
// diagonal, each covering exactly half of one pixel, blend to the
// truncated integer average of their colors.
func TestRenderSplitDiagonalHalfBlend(t *testing.T) {
	b := scene.NewBuilder()

	tl := b.AddPoint(0, 0)
	tr := b.AddPoint(1000, 0)
	br := b.AddPoint(1000, 1000)
	bl := b.AddPoint(0, 1000)

	top := b.AddSegment(tl, tr)
	diag := b.AddSegment(tl, br)
	right := b.AddSegment(br, tr)
	bottom := b.AddSegment(br, bl)
	left := b.AddSegment(tl, bl)

	red := b.AddColor(scene.RGB{R: 255})
	b.AddPoly(red,
		scene.Line(scene.LHR, top),
		scene.Line(scene.LVB, right),
		scene.Line(scene.LBL, diag).Rev(),
	)

	blue := b.AddColor(scene.RGB{B: 255})
	b.AddPoly(blue,
		scene.Line(scene.LTR, diag),
		scene.Line(scene.LHL, bottom),
		scene.Line(scene.LVT, left),
	)

	s := b.Build()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	frame := NewImageFrame(1, 1)
	New().Render(&s, frame)

	want := scene.RGB{R: 127, G: 0, B: 127}
	if got := pixelAt(frame, 0, 0); got != want {
		t.Errorf("pixel(0,0) = %+v, want %+v", got, want)
	}
}

// TestRenderCircleSmoke renders a circle and checks gross placement:
// opaque at its center, untouched well outside its bounding box. It
// deliberately avoids asserting exact antialiased edge values, which
// depend on floating-point trigonometry this test can't hand-verify.
func TestRenderCircleSmoke(t *testing.T) {
	b := scene.NewBuilder()
	color := scene.RGB{R: 200}
	b.Circle(5000, 5000, 3000, color)
	s := b.Build()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	frame := NewImageFrame(10, 10)
	New().Render(&s, frame)

	if got := pixelAt(frame, 5, 5); got != color {
		t.Errorf("center pixel = %+v, want %+v", got, color)
	}
	if got := pixelAt(frame, 0, 0); got != (scene.RGB{}) {
		t.Errorf("far corner pixel = %+v, want zero value", got)
	}
}

// TestRenderCircleOverBackgroundStripe covers S4: a circle narrower than
// its full-canvas background. This is the scenario canAdvanceStripe's
// fast path must not shortcut past: while the background is the lone
// active polygon in a column range, the stripe boundary must stop at
// where the circle enters the active window, not at the background's
// own (far wider) right edge, or the circle is skipped entirely.
func TestRenderCircleOverBackgroundStripe(t *testing.T) {
	b := scene.NewBuilder()
	bg := scene.RGB{R: 255, G: 255, B: 255}
	b.Rect(0, 0, 10000, 10000, bg)
	fg := scene.RGB{R: 200}
	b.Circle(5000, 5000, 3000, fg)
	s := b.Build()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	frame := NewImageFrame(10, 10)
	New().Render(&s, frame)

	if got := pixelAt(frame, 5, 5); got != fg {
		t.Errorf("center pixel = %+v, want %+v (circle)", got, fg)
	}
	if got := pixelAt(frame, 0, 0); got != bg {
		t.Errorf("corner pixel = %+v, want %+v (background)", got, bg)
	}
	if got := pixelAt(frame, 9, 0); got != bg {
		t.Errorf("far-column pixel = %+v, want %+v (background)", got, bg)
	}
}

// TestRenderStripeFastPath covers S5: a single rectangle spanning many
// pixels in one row renders as a solid stripe of its color.
func TestRenderStripeFastPath(t *testing.T) {
	b := scene.NewBuilder()
	color := scene.RGB{G: 150}
	b.Rect(0, 0, 10000, 1000, color)
	s := b.Build()

	frame := NewImageFrame(10, 1)
	New().Render(&s, frame)

	for x := 0; x < 10; x++ {
		if got := pixelAt(frame, x, 0); got != color {
			t.Errorf("pixel(%d,0) = %+v, want %+v", x, got, color)
		}
	}
}

// TestRenderOrderIndependence covers S6: rendering the same non-
// overlapping polygons in a different scene order must not change the
// output, since sortUpperActive re-sorts the active set by (minY,maxY)
// regardless of declaration order.
func TestRenderOrderIndependence(t *testing.T) {
	build := func(swap bool) scene.Scene {
		b := scene.NewBuilder()
		square := func() { b.Rect(0, 0, 2000, 2000, scene.RGB{R: 100}) }
		triangle := func() {
			p0 := b.AddPoint(5000, 0)
			p1 := b.AddPoint(7000, 0)
			p2 := b.AddPoint(5000, 2000)
			top := b.AddSegment(p0, p1)
			left := b.AddSegment(p0, p2)
			hyp := b.AddSegment(p2, p1)
			c := b.AddColor(scene.RGB{B: 100})
			b.AddPoly(c, scene.Line(scene.LHR, top), scene.Line(scene.LVT, left), scene.Line(scene.LBR, hyp))
		}
		if swap {
			triangle()
			square()
		} else {
			square()
			triangle()
		}
		return b.Build()
	}

	a := build(false)
	bScene := build(true)

	frameA := NewImageFrame(10, 3)
	New().Render(&a, frameA)

	frameB := NewImageFrame(10, 3)
	New().Render(&bScene, frameB)

	for i := range frameA.Pix {
		if frameA.Pix[i] != frameB.Pix[i] {
			t.Fatalf("pixel byte %d differs between declaration orders: %d vs %d", i, frameA.Pix[i], frameB.Pix[i])
		}
	}
}

func pixelAt(f *ImageFrame, x, y int) scene.RGB {
	i := 3 * (y*f.Width + x)
	return scene.RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}
