// Command polydemo exercises the polydraw rasterizer against a handful of
// scenes drawn side by side: an axis-aligned square, a right triangle, two
// triangles sharing a diagonal, and a circle, each on a white background.
package main

import (
	"flag"
	"image"
	"log"
	"os"

	"golang.org/x/image/bmp"

	polydraw "github.com/majkcramer/polydraw"
	"github.com/majkcramer/polydraw/scene"
)

func main() {
	var (
		width  = flag.Int("width", 400, "image width in pixels")
		height = flag.Int("height", 100, "image height in pixels")
		output = flag.String("output", "demo.bmp", "output file")
	)
	flag.Parse()

	s := buildDemoScene(int64(*width), int64(*height))

	frame := polydraw.NewImageFrame(*width, *height)
	r := polydraw.New()
	r.Render(&s, frame)

	if err := writeBMP(*output, frame); err != nil {
		log.Fatalf("write %s failed: %v", *output, err)
	}

	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// buildDemoScene lays out one cell per demo shape, each 100x100 pixels wide,
// on a white background poly spanning the whole canvas.
func buildDemoScene(width, height int64) scene.Scene {
	b := scene.NewBuilder()

	white := scene.RGB{R: 255, G: 255, B: 255}
	b.Rect(0, 0, width*1000, height*1000, white)

	square(b, 0)
	rightTriangle(b, 100)
	splitDiagonal(b, 200)
	circle(b, 300)

	return b.Build()
}

// square draws S1: a 3x3-pixel axis-aligned square offset into its cell.
func square(b *scene.Builder, cellX int64) {
	color := scene.RGB{R: 200, G: 100, B: 50}
	x0 := (cellX + 10) * 1000
	y0 := 10 * 1000
	b.Rect(x0, y0, x0+3000, y0+3000, color)
}

// rightTriangle draws S2: a right triangle with legs along its cell's top
// and left edges.
func rightTriangle(b *scene.Builder, cellX int64) {
	color := scene.RGB{R: 50, G: 150, B: 200}
	ox, oy := (cellX+10)*1000, 10*1000

	p0 := b.AddPoint(ox, oy)
	p1 := b.AddPoint(ox+2000, oy)
	p2 := b.AddPoint(ox, oy+2000)

	top := b.AddSegment(p0, p1)
	left := b.AddSegment(p0, p2)
	hyp := b.AddSegment(p2, p1)

	c := b.AddColor(color)
	b.AddPoly(c,
		scene.Line(scene.LHR, top),
		scene.Line(scene.LVT, left),
		scene.Line(scene.LBR, hyp),
	)
}

// splitDiagonal draws S3: two triangles sharing a diagonal, each a
// distinct color, together forming one square.
func splitDiagonal(b *scene.Builder, cellX int64) {
	red := scene.RGB{R: 255, G: 0, B: 0}
	blue := scene.RGB{R: 0, G: 0, B: 255}
	ox, oy := (cellX+10)*1000, 10*1000

	tl := b.AddPoint(ox, oy)
	tr := b.AddPoint(ox+2000, oy)
	br := b.AddPoint(ox+2000, oy+2000)
	bl := b.AddPoint(ox, oy+2000)

	top := b.AddSegment(tl, tr)
	diag := b.AddSegment(tl, br)
	right := b.AddSegment(br, tr)
	bottom := b.AddSegment(br, bl)
	left := b.AddSegment(tl, bl)

	cRed := b.AddColor(red)
	b.AddPoly(cRed,
		scene.Line(scene.LHR, top),
		scene.Line(scene.LVB, right),
		scene.Line(scene.LBL, diag).Rev(),
	)

	cBlue := b.AddColor(blue)
	b.AddPoly(cBlue,
		scene.Line(scene.LTR, diag),
		scene.Line(scene.LHL, bottom),
		scene.Line(scene.LVT, left),
	)
}

// circle draws S4: a circle inset into its cell.
func circle(b *scene.Builder, cellX int64) {
	color := scene.RGB{R: 200, G: 0, B: 0}
	cx := (cellX + 50) * 1000
	cy := 50 * 1000
	b.Circle(cx, cy, 40000, color)
}

func writeBMP(path string, frame *polydraw.ImageFrame) error {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			i := 3 * (y*frame.Width + x)
			img.Set(x, y, rgbColor{
				r: frame.Pix[i],
				g: frame.Pix[i+1],
				b: frame.Pix[i+2],
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return bmp.Encode(f, img)
}

type rgbColor struct {
	r, g, b uint8
}

func (c rgbColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = 0xffff
	return
}
