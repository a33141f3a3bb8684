package polydraw

import (
	"testing"

	"github.com/majkcramer/polydraw/scene"
)

func TestToPxFromPx(t *testing.T) {
	tests := []struct {
		px   int64
		want int64
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{2500, 2},
	}
	for _, tt := range tests {
		if got := toPx(tt.px); got != tt.want {
			t.Errorf("toPx(%d) = %d, want %d", tt.px, got, tt.want)
		}
	}

	if got := fromPx(3); got != 3000 {
		t.Errorf("fromPx(3) = %d, want 3000", got)
	}
}

// TestHMultiIntersectFastDiagonal checks the integer DDA against a 45
// degree line crossing four horizontal grid lines, where every
// intersection's X is exactly representable without rounding.
func TestHMultiIntersectFastDiagonal(t *testing.T) {
	p1 := scene.Point{X: 0, Y: 0}
	p2 := scene.Point{X: 4000, Y: 4000}

	out := make([]int64, 3)
	end, firstPx := hMultiIntersectFast(p1, p2, DivPerPixel, 0, out)

	// Grid lines at y=1000,2000,3000 (y=4000 coincides with p2 itself and
	// is excluded: a segment's own endpoint isn't a crossing).
	if firstPx != 1 {
		t.Fatalf("firstPx = %d, want 1", firstPx)
	}
	if end != 3 {
		t.Fatalf("end = %d, want 3", end)
	}

	want := []int64{1000, 2000, 3000}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d", i, out[i], w)
		}
	}
}

// TestVMultiIntersectFastDiagonal mirrors TestHMultiIntersectFastDiagonal
// over the transposed axis.
func TestVMultiIntersectFastDiagonal(t *testing.T) {
	p1 := scene.Point{X: 0, Y: 0}
	p2 := scene.Point{X: 4000, Y: 4000}

	out := make([]int64, 3)
	end, firstPx := vMultiIntersectFast(p1, p2, DivPerPixel, 0, out)

	if firstPx != 1 {
		t.Fatalf("firstPx = %d, want 1", firstPx)
	}
	if end != 3 {
		t.Fatalf("end = %d, want 3", end)
	}

	want := []int64{1000, 2000, 3000}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d", i, out[i], w)
		}
	}
}
