// Package texture owns the read-only pixel data sampled by the renderer:
// wall textures keyed by wall id and the sky panorama.
package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"gloom/internal/world"
)

// Texture is a fixed-size RGBA pixel buffer. It is never written after
// construction, so rendering goroutines share it freely.
type Texture struct {
	W, H int
	Pix  []byte // RGBA, 4 bytes per pixel, row-major
}

// New allocates a zeroed (transparent black) texture.
func New(w, h int) *Texture {
	return &Texture{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// SampleAt returns the color at (x, y), clamping coordinates to the texture
// bounds so callers never need their own range checks.
func (t *Texture) SampleAt(x, y int) (r, g, b, a byte) {
	if x < 0 {
		x = 0
	} else if x >= t.W {
		x = t.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.H {
		y = t.H - 1
	}
	i := (y*t.W + x) * 4
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]
}

func (t *Texture) set(x, y int, r, g, b byte) {
	i := (y*t.W + x) * 4
	t.Pix[i] = r
	t.Pix[i+1] = g
	t.Pix[i+2] = b
	t.Pix[i+3] = 255
}

// Atlas maps wall ids to textures and holds the sky panorama. Wall ids with
// no file in the manifest fall back to a generated brick pattern, so Wall
// never returns nil for a valid id.
type Atlas struct {
	walls map[world.Cell]*Texture
	sky   *Texture
	size  int
}

// LoadAtlas builds the texture atlas from a manifest of wall id -> file.
// Files are decoded as PNG and resampled to size x size. A missing or
// corrupt file is fatal: the engine never runs with partial assets.
func LoadAtlas(dir string, size int, skyFile string, walls map[int]string) (*Atlas, error) {
	atlas := &Atlas{
		walls: make(map[world.Cell]*Texture, len(walls)),
		size:  size,
	}

	for id, file := range walls {
		if id <= 0 {
			return nil, fmt.Errorf("texture manifest: wall id %d is not a wall", id)
		}
		tex, err := loadPNG(filepath.Join(dir, file), size, size)
		if err != nil {
			return nil, fmt.Errorf("wall texture %d: %w", id, err)
		}
		atlas.walls[world.Cell(id)] = tex
	}

	if skyFile != "" {
		sky, err := loadPNG(filepath.Join(dir, skyFile), 0, 0)
		if err != nil {
			return nil, fmt.Errorf("sky texture: %w", err)
		}
		atlas.sky = sky
	} else {
		atlas.sky = GenerateSky(size*16, size*4)
	}

	return atlas, nil
}

// Wall returns the texture for a wall id, generating and caching a brick
// fallback the first time an unmapped id is seen. Safe only during setup;
// callers must touch every id once (via Prewarm) before parallel rendering.
func (a *Atlas) Wall(id world.Cell) *Texture {
	if tex, ok := a.walls[id]; ok {
		return tex
	}
	tex := GenerateBricks(a.size, int(id))
	a.walls[id] = tex
	return tex
}

// Prewarm materializes fallback textures for every wall id the grid can
// produce, so the atlas is immutable once the render loop starts.
func (a *Atlas) Prewarm(grid *world.Grid) {
	a.Wall(grid.Boundary())
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if cell := grid.CellAt(col, row); cell != world.CellEmpty {
				a.Wall(cell)
			}
		}
	}
}

// Sky returns the sky panorama.
func (a *Atlas) Sky() *Texture { return a.sky }

// loadPNG decodes a PNG file into a Texture. When w and h are positive the
// image is resampled to that size; otherwise the native size is kept.
func loadPNG(path string, w, h int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if w <= 0 || h <= 0 {
		w = src.Bounds().Dx()
		h = src.Bounds().Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	tex := &Texture{W: w, H: h, Pix: dst.Pix}
	return tex, nil
}
