package game

import rl "github.com/gen2brain/raylib-go/raylib"

const triggerGamepad int32 = 0

// TriggerPressed reports a trigger this frame: left click, space, or the
// bottom face button of the first gamepad.
func TriggerPressed() bool {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) || rl.IsKeyPressed(rl.KeySpace) {
		return true
	}
	return rl.IsGamepadAvailable(triggerGamepad) &&
		rl.IsGamepadButtonPressed(triggerGamepad, rl.GamepadButtonRightFaceDown)
}
