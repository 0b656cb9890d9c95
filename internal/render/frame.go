package render

// Frame is the RGBA frame buffer the compositor draws into. It is owned by
// the compositor while a frame is being built and handed to the presentation
// layer read-only; its Pix layout matches what ebiten's WritePixels expects.
type Frame struct {
	W, H int
	Pix  []byte // RGBA, 4 bytes per pixel, row-major
}

// NewFrame allocates a w x h frame buffer.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// SetRGB writes one opaque pixel. Callers are responsible for bounds; the
// renderer only produces in-range coordinates.
func (f *Frame) SetRGB(x, y int, r, g, b byte) {
	i := (y*f.W + x) * 4
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
	f.Pix[i+3] = 255
}

// At returns the color of one pixel, for tests and debugging.
func (f *Frame) At(x, y int) (r, g, b, a byte) {
	i := (y*f.W + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}
