package gaze

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Default half-widths of the gaze cone, in radians.
const (
	DefaultPitchLimit = 0.12
	DefaultYawLimit   = 0.12
)

// Limits is the angular window around the forward axis that counts as looking at something.
type Limits struct {
	Pitch float32
	Yaw   float32
}

// DefaultLimits returns the default cone, ±0.12 rad in pitch and yaw.
func DefaultLimits() Limits {
	return Limits{Pitch: DefaultPitchLimit, Yaw: DefaultYawLimit}
}

// Result is the outcome of one gaze test.
type Result struct {
	Looking bool
	Pitch   float32
	Yaw     float32
}

// Detector tests whether the head's forward axis (-Z in head space) points at a target.
// Only the target's translation matters; its orientation is ignored.
type Detector struct {
	Limits Limits
}

// NewDetector returns a detector using limits.
func NewDetector(limits Limits) Detector {
	return Detector{Limits: limits}
}

// Test transforms the target's local origin into head space and measures
// its pitch and yaw off the forward axis.
func (d Detector) Test(head rl.Matrix, target Target) Result {
	p := HeadSpacePosition(head, target.Model)

	pitch := float32(math.Atan2(float64(p.Y), float64(-p.Z)))
	yaw := float32(math.Atan2(float64(p.X), float64(-p.Z)))

	return Result{
		Looking: abs32(pitch) < d.Limits.Pitch && abs32(yaw) < d.Limits.Yaw,
		Pitch:   pitch,
		Yaw:     yaw,
	}
}

// IsLookingAt is Test without the angles.
func (d Detector) IsLookingAt(head rl.Matrix, target Target) bool {
	return d.Test(head, target).Looking
}

// HeadSpacePosition returns head · model · (0, 0, 0, 1).
func HeadSpacePosition(head, model rl.Matrix) rl.Vector4 {
	modelView := rl.MatrixMultiply(model, head)
	// The origin picks out the last column.
	return rl.Vector4{X: modelView.M12, Y: modelView.M13, Z: modelView.M14, W: modelView.M15}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
