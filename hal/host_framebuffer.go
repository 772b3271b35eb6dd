package hal

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	img    *image.RGBA

	// front is the last presented frame, read by the window's Draw.
	front   []byte
	present uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &hostFramebuffer{
		width:  width,
		height: height,
		img:    img,
		front:  make([]byte, len(img.Pix)),
	}
}

func (f *hostFramebuffer) Width() int         { return f.width }
func (f *hostFramebuffer) Height() int        { return f.height }
func (f *hostFramebuffer) Image() *image.RGBA { return f.img }

func (f *hostFramebuffer) Clear(r, g, b uint8) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 0xFF}), image.Point{}, draw.Src)
}

// Present publishes the back image as the front buffer.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.img.Pix)
	f.present++
	return nil
}

// snapshot copies the front buffer into dst and returns the present count.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.present
}
