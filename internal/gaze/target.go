package gaze

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Target is the object's pose in world space plus its current distance from the origin.
// Distance is always positive; relocation divides by it.
type Target struct {
	Model    rl.Matrix
	Distance float32
}

// NewTarget places a target distance units straight ahead (down -Z).
func NewTarget(distance float32) Target {
	assertPositiveDistance(distance)
	return Target{
		Model:    rl.MatrixTranslate(0, 0, -distance),
		Distance: distance,
	}
}

// Position is the translation column of the model transform.
func (t Target) Position() rl.Vector3 {
	return rl.Vector3{X: t.Model.M12, Y: t.Model.M13, Z: t.Model.M14}
}

// Advance spins the target by degrees about axis in model space.
// Translation is left exactly as it was, so gaze results are unaffected.
func (t *Target) Advance(degrees float32, axis rl.Vector3) {
	if degrees == 0 || rl.Vector3Length(axis) == 0 {
		return
	}
	spin := rl.MatrixRotate(axis, degrees*rl.Deg2rad)
	// model · spin
	t.Model = rl.MatrixMultiply(spin, t.Model)
}
