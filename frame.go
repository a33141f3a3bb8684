package polydraw

import "github.com/majkcramer/polydraw/scene"

// Frame is the pixel sink a Rasterizer draws into. PutPixel is called at
// most once per (x, y) per Render call, in increasing y then increasing x
// order within each row; implementations needn't be safe for concurrent
// use since Render never calls it from more than one goroutine.
type Frame interface {
	PutPixel(x, y int32, color scene.RGB)
}

// ImageFrame is a Frame backed by a flat, 3-byte-per-pixel RGB buffer. It
// is grounded on the reference renderer's FrameGLContext: a bounds-checked
// put_pixel over a fixed-size backing buffer, minus the GPU texture/blit
// plumbing this module has no use for.
type ImageFrame struct {
	Width, Height int
	Pix           []uint8 // len == Width*Height*3, row-major, 3 bytes per pixel
}

// NewImageFrame allocates a cleared ImageFrame of the given size.
func NewImageFrame(width, height int) *ImageFrame {
	return &ImageFrame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// PutPixel writes color at (x, y), silently doing nothing if the
// coordinate falls outside the frame.
func (fr *ImageFrame) PutPixel(x, y int32, color scene.RGB) {
	if x < 0 || y < 0 || int(x) >= fr.Width || int(y) >= fr.Height {
		return
	}
	i := 3 * (int(y)*fr.Width + int(x))
	fr.Pix[i] = color.R
	fr.Pix[i+1] = color.G
	fr.Pix[i+2] = color.B
}

// Clear resets every pixel to black.
func (fr *ImageFrame) Clear() {
	for i := range fr.Pix {
		fr.Pix[i] = 0
	}
}
