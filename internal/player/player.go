// Package player holds the only mutable long-lived state in the engine: the
// first-person camera position and facing angle, updated once per tick.
package player

import (
	"math"

	"gloom/internal/world"
)

// Input is the key state snapshot polled once per tick by the game layer.
type Input struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
}

// Player is the camera state. The renderer only reads it; Update is the
// single writer.
type Player struct {
	X, Y  float64 // position in world units, one unit per grid cell
	Angle float64 // facing angle in radians, kept in [0, 2pi)

	MoveSpeed float64 // cells per second
	RotSpeed  float64 // radians per second
	Radius    float64 // clearance margin checked against surrounding cells
}

// New places a player at the given position and facing angle.
func New(x, y, angle, moveSpeed, rotSpeed, radius float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Angle:     wrapAngle(angle),
		MoveSpeed: moveSpeed,
		RotSpeed:  rotSpeed,
		Radius:    radius,
	}
}

// Update applies one tick of input. dt is the elapsed time in seconds so
// movement stays frame-rate independent.
func (p *Player) Update(in Input, dt float64, grid *world.Grid) {
	if in.TurnLeft {
		p.Angle -= p.RotSpeed * dt
	}
	if in.TurnRight {
		p.Angle += p.RotSpeed * dt
	}
	p.Angle = wrapAngle(p.Angle)

	sin, cos := math.Sincos(p.Angle)
	speed := p.MoveSpeed * dt

	var dx, dy float64
	if in.Forward {
		dx += cos * speed
		dy += sin * speed
	}
	if in.Back {
		dx -= cos * speed
		dy -= sin * speed
	}
	if in.StrafeLeft {
		dx += sin * speed
		dy -= cos * speed
	}
	if in.StrafeRight {
		dx -= sin * speed
		dy += cos * speed
	}

	p.move(dx, dy, grid)
}

// move applies a displacement with axis-separated collision: the X and Y
// components are tested independently so a player pushing into a wall at an
// angle still slides along it instead of stopping dead.
func (p *Player) move(dx, dy float64, grid *world.Grid) {
	if p.fits(p.X+dx, p.Y, grid) {
		p.X += dx
	}
	if p.fits(p.X, p.Y+dy, grid) {
		p.Y += dy
	}
}

// fits reports whether the player's clearance box is fully on walkable cells
// at the candidate position. All four corners are probed so the player
// cannot clip into a diagonal wall corner.
func (p *Player) fits(x, y float64, grid *world.Grid) bool {
	r := p.Radius
	corners := [4][2]float64{{-r, -r}, {r, -r}, {-r, r}, {r, r}}
	for _, c := range corners {
		col := int(math.Floor(x + c[0]))
		row := int(math.Floor(y + c[1]))
		if !grid.IsWalkable(col, row) {
			return false
		}
	}
	return true
}

// wrapAngle normalizes an angle into [0, 2pi).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
