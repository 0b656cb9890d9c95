package render

import (
	"math"

	"gloom/internal/raycast"
	"gloom/internal/texture"
)

// minWallDistance guards the projection division against walls touching the
// eye; anything closer renders at the same (clamped) height.
const minWallDistance = 1e-4

// WallRenderer turns ray hits into textured vertical strips.
type WallRenderer struct {
	atlas          *texture.Atlas
	projectionDist float64 // distance to the projection plane in pixels
	sideShade      float64
	fogStart       float64
	fogEnd         float64
}

// NewWallRenderer derives the projection-plane distance from the screen
// width and field of view: a wall one cell away projects to projectionDist
// pixels of height.
func NewWallRenderer(atlas *texture.Atlas, screenWidth int, fov, sideShade, fogStart, fogEnd float64) *WallRenderer {
	return &WallRenderer{
		atlas:          atlas,
		projectionDist: float64(screenWidth) / 2 / math.Tan(fov/2),
		sideShade:      sideShade,
		fogStart:       fogStart,
		fogEnd:         fogEnd,
	}
}

// DrawColumn composites one wall strip over the background. x is the left
// screen pixel of the strip and width its pixel width (the strip repeats the
// same ray result across its width).
func (wr *WallRenderer) DrawColumn(frame *Frame, x, width int, hit raycast.Hit) {
	dist := hit.Distance
	if dist < minWallDistance {
		dist = minWallDistance
	}

	wallHeight := int(wr.projectionDist / dist)
	horizon := frame.H / 2

	// The strip is centered on the horizon; stripTop may be off-screen for
	// very close walls, in which case the texture window shrinks around its
	// center instead of stretching past the viewport.
	stripTop := horizon - wallHeight/2
	drawStart := stripTop
	if drawStart < 0 {
		drawStart = 0
	}
	drawEnd := stripTop + wallHeight
	if drawEnd > frame.H {
		drawEnd = frame.H
	}

	tex := wr.atlas.Wall(hit.Cell)
	texX := int(hit.WallX*float64(tex.W)) % tex.W

	shade := 1.0
	if hit.Side == raycast.SideHorizontal {
		shade = wr.sideShade
	}
	shade *= wr.fogFactor(hit.Distance)

	for y := drawStart; y < drawEnd; y++ {
		texY := (y - stripTop) * tex.H / wallHeight
		if texY >= tex.H {
			texY = tex.H - 1
		}
		r, g, b, _ := tex.SampleAt(texX, texY)
		r = byte(float64(r) * shade)
		g = byte(float64(g) * shade)
		b = byte(float64(b) * shade)
		for dx := 0; dx < width; dx++ {
			frame.SetRGB(x+dx, y, r, g, b)
		}
	}
}

// fogFactor returns the brightness multiplier for a distance: 1 before
// fogStart, falling linearly to 0 at fogEnd. Fog is disabled when fogEnd is
// not beyond fogStart.
func (wr *WallRenderer) fogFactor(dist float64) float64 {
	if wr.fogEnd <= wr.fogStart {
		return 1
	}
	if dist <= wr.fogStart {
		return 1
	}
	f := (dist - wr.fogStart) / (wr.fogEnd - wr.fogStart)
	if f > 1 {
		f = 1
	}
	return 1 - f
}
