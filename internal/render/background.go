package render

import (
	"math"

	"gloom/internal/texture"
)

// Background draws everything behind the walls: a sky panorama that pans
// with the facing angle above the horizon, and a shaded flat-color floor
// below it.
type Background struct {
	sky       *texture.Texture
	panFactor float64
	floor     [3]byte
}

// NewBackground builds a background renderer. panFactor is how many times
// the panorama wraps across one full turn.
func NewBackground(sky *texture.Texture, panFactor float64, floorColor [3]int) *Background {
	return &Background{
		sky:       sky,
		panFactor: panFactor,
		floor:     [3]byte{byte(floorColor[0]), byte(floorColor[1]), byte(floorColor[2])},
	}
}

// DrawColumns fills the column range [x0, x1) of the frame with sky above
// the horizon and floor below it. viewAngle is assumed normalized to
// [0, 2pi) so the pan offset is stable across angle wraparound.
func (b *Background) DrawColumns(frame *Frame, viewAngle float64, x0, x1 int) {
	horizon := frame.H / 2

	// The panorama scrolls opposite to the turn direction, wrapping so a
	// full rotation lands back on the same pixels.
	offset := viewAngle / (2 * math.Pi) * float64(b.sky.W) * b.panFactor

	for x := x0; x < x1; x++ {
		skyX := int(math.Floor(float64(x) + offset))
		skyX = ((skyX % b.sky.W) + b.sky.W) % b.sky.W

		for y := 0; y < horizon; y++ {
			skyY := y * (b.sky.H - 1) / max(horizon-1, 1)
			r, g, bb, _ := b.sky.SampleAt(skyX, skyY)
			frame.SetRGB(x, y, r, g, bb)
		}

		for y := horizon; y < frame.H; y++ {
			// Rows near the horizon are farther away; fade them toward
			// black the same way walls fade with distance.
			t := float64(y-horizon) / float64(frame.H-horizon)
			shade := 0.35 + 0.65*t
			frame.SetRGB(x, y,
				byte(float64(b.floor[0])*shade),
				byte(float64(b.floor[1])*shade),
				byte(float64(b.floor[2])*shade))
		}
	}
}
