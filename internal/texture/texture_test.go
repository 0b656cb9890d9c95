package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gloom/internal/world"
)

// writePNG saves a solid-color PNG fixture and returns its file name.
func writePNG(t *testing.T, dir, name string, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to create PNG fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG fixture: %v", err)
	}
	return name
}

func TestSampleAtClamps(t *testing.T) {
	tex := GenerateBricks(8, 1)

	r0, g0, b0, a0 := tex.SampleAt(0, 0)
	r1, g1, b1, a1 := tex.SampleAt(-5, -5)
	if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
		t.Error("Negative coordinates should clamp to the top-left texel")
	}

	r0, g0, b0, a0 = tex.SampleAt(7, 7)
	r1, g1, b1, a1 = tex.SampleAt(100, 100)
	if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
		t.Error("Overflowing coordinates should clamp to the bottom-right texel")
	}
}

func TestGenerateBricksDeterministic(t *testing.T) {
	a := GenerateBricks(16, 3)
	b := GenerateBricks(16, 3)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Generated bricks should be a pure function of size and id")
	}

	other := GenerateBricks(16, 4)
	if bytes.Equal(a.Pix, other.Pix) {
		t.Error("Different wall ids should produce different patterns")
	}
}

func TestGenerateSkyOpaque(t *testing.T) {
	sky := GenerateSky(64, 16)
	if sky.W != 64 || sky.H != 16 {
		t.Fatalf("Expected 64x16 panorama, got %dx%d", sky.W, sky.H)
	}
	for y := 0; y < sky.H; y++ {
		for x := 0; x < sky.W; x++ {
			if _, _, _, a := sky.SampleAt(x, y); a != 255 {
				t.Fatalf("Sky texel (%d,%d) not opaque", x, y)
			}
		}
	}
}

func TestAtlasFallbackBricks(t *testing.T) {
	atlas, err := LoadAtlas("", 8, "", nil)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}

	tex := atlas.Wall(world.Cell(3))
	if tex == nil || tex.W != 8 || tex.H != 8 {
		t.Fatal("Fallback texture should match the configured size")
	}
	if atlas.Wall(world.Cell(3)) != tex {
		t.Error("Fallback textures should be generated once and cached")
	}
	if atlas.Sky() == nil {
		t.Error("Empty sky file should select the generated panorama")
	}
}

func TestPrewarmMaterializesGridIds(t *testing.T) {
	grid := world.NewGrid([][]world.Cell{
		{1, 2, 3},
		{1, 0, 3},
		{1, 5, 3},
	})
	atlas, err := LoadAtlas("", 8, "", nil)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}

	atlas.Prewarm(grid)

	for _, id := range []world.Cell{1, 2, 3, 5, grid.Boundary()} {
		if atlas.Wall(id) == nil {
			t.Errorf("Wall id %d missing after prewarm", id)
		}
	}
}

func TestLoadAtlasFromFiles(t *testing.T) {
	dir := t.TempDir()
	wall := writePNG(t, dir, "wall.png", 8, 8, color.RGBA{200, 10, 30, 255})
	sky := writePNG(t, dir, "sky.png", 40, 10, color.RGBA{20, 30, 90, 255})

	atlas, err := LoadAtlas(dir, 16, sky, map[int]string{2: wall})
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}

	tex := atlas.Wall(world.Cell(2))
	if tex.W != 16 || tex.H != 16 {
		t.Errorf("Wall texture should be resampled to 16x16, got %dx%d", tex.W, tex.H)
	}
	r, g, b, _ := tex.SampleAt(8, 8)
	if delta(r, 200) > 1 || delta(g, 10) > 1 || delta(b, 30) > 1 {
		t.Errorf("Resampled solid color drifted: got (%d,%d,%d)", r, g, b)
	}

	// The sky keeps its native dimensions.
	if atlas.Sky().W != 40 || atlas.Sky().H != 10 {
		t.Errorf("Sky should keep native size, got %dx%d", atlas.Sky().W, atlas.Sky().H)
	}
}

func TestLoadAtlasErrors(t *testing.T) {
	t.Run("Missing wall file", func(t *testing.T) {
		if _, err := LoadAtlas(t.TempDir(), 16, "", map[int]string{1: "nope.png"}); err == nil {
			t.Error("Expected error for missing wall texture")
		}
	})

	t.Run("Missing sky file", func(t *testing.T) {
		if _, err := LoadAtlas(t.TempDir(), 16, "nope.png", nil); err == nil {
			t.Error("Expected error for missing sky texture")
		}
	})

	t.Run("Invalid wall id", func(t *testing.T) {
		dir := t.TempDir()
		wall := writePNG(t, dir, "wall.png", 4, 4, color.RGBA{1, 2, 3, 255})
		if _, err := LoadAtlas(dir, 16, "", map[int]string{0: wall}); err == nil {
			t.Error("Expected error for wall id 0")
		}
	})

	t.Run("Corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadAtlas(dir, 16, "", map[int]string{1: "bad.png"}); err == nil {
			t.Error("Expected error for corrupt texture")
		}
	})
}

func delta(a, b byte) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
