// Package input maps raylib keyboard state to game actions, so the rest of
// the game never sees raw key codes.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// GameKey is a logical game action bound to one or more physical keys.
type GameKey int

const (
	Accelerate GameKey = iota
	Brake
	SteerLeft
	SteerRight
	Reset
	ToggleDebug
	ToggleGrid
)

// bindings maps each action to its physical keys; the first held key wins.
var bindings = map[GameKey][]int32{
	Accelerate:  {rl.KeyW, rl.KeyUp},
	Brake:       {rl.KeyS, rl.KeyDown},
	SteerLeft:   {rl.KeyA, rl.KeyLeft},
	SteerRight:  {rl.KeyD, rl.KeyRight},
	Reset:       {rl.KeyR},
	ToggleDebug: {rl.KeyF1},
	ToggleGrid:  {rl.KeyG},
}

// IsDown reports whether any key bound to the action is currently held.
func IsDown(k GameKey) bool {
	for _, key := range bindings[k] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// WasPressed reports whether any key bound to the action was pressed this
// frame. Used for toggles.
func WasPressed(k GameKey) bool {
	for _, key := range bindings[k] {
		if rl.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Axis returns -1, 0, or +1 from a negative/positive action pair, e.g.
// steering from SteerLeft/SteerRight.
func Axis(negative, positive GameKey) float32 {
	var v float32
	if IsDown(negative) {
		v -= 1
	}
	if IsDown(positive) {
		v += 1
	}
	return v
}
