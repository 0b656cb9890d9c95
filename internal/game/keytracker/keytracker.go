// Package keytracker turns ebiten's level-triggered key state into
// edge-triggered presses, for toggle keys that must fire once per press.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker remembers whether its key was down on the previous poll.
// One tracker watches one key; zero value is ready to use.
type KeyStateTracker struct {
	wasDown bool
}

// IsKeyJustPressed reports a rising edge: the key is down now but was up on
// the previous call.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	down := ebiten.IsKeyPressed(key)
	edge := down && !k.wasDown
	k.wasDown = down
	return edge
}
