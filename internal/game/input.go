package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gloom/internal/player"
)

// pollInput snapshots the movement key state once per tick. Arrow keys and
// WASD both steer; Q/E strafe.
func pollInput() player.Input {
	return player.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Back:        ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyE),
	}
}

// exitRequested reports whether the quit key is held.
func exitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}
