package texture

import "math"

// Generated textures keep the engine runnable with no binary assets in the
// tree. All patterns are pure functions of their arguments so repeated calls
// produce identical pixels.

// wallPalette provides base colors for generated brick walls; the wall id
// picks the entry.
var wallPalette = [][3]byte{
	{142, 70, 58},  // red brick
	{110, 110, 118}, // gray stone
	{96, 82, 60},   // mud brick
	{74, 96, 74},   // mossy stone
	{120, 96, 128}, // violet block
	{134, 110, 66}, // sandstone
	{84, 88, 104},  // slate
	{124, 84, 48},  // clay
}

// GenerateBricks produces a size x size brick pattern tinted by wall id.
func GenerateBricks(size, id int) *Texture {
	tex := New(size, size)
	base := wallPalette[(id-1+len(wallPalette))%len(wallPalette)]

	courseHeight := size / 8
	if courseHeight < 2 {
		courseHeight = 2
	}
	brickWidth := size / 4
	if brickWidth < 4 {
		brickWidth = 4
	}

	for y := 0; y < size; y++ {
		course := y / courseHeight
		mortarRow := y%courseHeight == 0
		for x := 0; x < size; x++ {
			// Stagger every other course by half a brick.
			bx := x
			if course%2 == 1 {
				bx += brickWidth / 2
			}
			mortarCol := bx%brickWidth == 0

			if mortarRow || mortarCol {
				tex.set(x, y, scaleByte(base[0], 0.55), scaleByte(base[1], 0.55), scaleByte(base[2], 0.55))
				continue
			}

			// Per-brick tone variation keeps large walls from banding.
			tone := 0.88 + 0.12*float64((course*7+bx/brickWidth*13)%5)/4
			tex.set(x, y, scaleByte(base[0], tone), scaleByte(base[1], tone), scaleByte(base[2], tone))
		}
	}
	return tex
}

// GenerateSky produces a w x h panorama: a vertical gradient with a faint
// cloud band, tileable horizontally so panning wraps seamlessly.
func GenerateSky(w, h int) *Texture {
	tex := New(w, h)

	top := [3]float64{24, 32, 58}
	horizon := [3]float64{116, 124, 148}

	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		r := top[0] + (horizon[0]-top[0])*t
		g := top[1] + (horizon[1]-top[1])*t
		b := top[2] + (horizon[2]-top[2])*t

		for x := 0; x < w; x++ {
			// Horizontally periodic cloud bands; the wave frequency is an
			// integer multiple of the width so column 0 meets column w-1.
			u := 2 * math.Pi * float64(x) / float64(w)
			cloud := math.Sin(3*u+float64(y)*0.05) + math.Sin(7*u-float64(y)*0.02)
			lift := 0.0
			if cloud > 1.1 && t > 0.25 {
				lift = 22 * (cloud - 1.1)
			}
			tex.set(x, y, clampByte(r+lift), clampByte(g+lift), clampByte(b+lift))
		}
	}
	return tex
}

func scaleByte(v byte, f float64) byte {
	return clampByte(float64(v) * f)
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
