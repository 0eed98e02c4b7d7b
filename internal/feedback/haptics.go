package feedback

import rl "github.com/gen2brain/raylib-go/raylib"

// Haptics delivers a short vibration.
type Haptics interface {
	Pulse(seconds float32)
}

// GamepadHaptics rumbles both motors of a gamepad. Missing gamepads are ignored.
type GamepadHaptics struct {
	Gamepad  int32
	Strength float32
}

func NewGamepadHaptics(gamepad int32) *GamepadHaptics {
	return &GamepadHaptics{Gamepad: gamepad, Strength: 1}
}

func (g *GamepadHaptics) Pulse(seconds float32) {
	if !rl.IsGamepadAvailable(g.Gamepad) {
		return
	}
	rl.SetGamepadVibration(g.Gamepad, g.Strength, g.Strength, seconds)
}

// NoHaptics drops every pulse.
type NoHaptics struct{}

func (NoHaptics) Pulse(float32) {}
