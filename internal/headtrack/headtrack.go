// Package headtrack produces the per-frame head pose on platforms without a
// head-mounted sensor: mouse look on the desktop, or a scripted sweep.
package headtrack

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxPitch keeps the view from flipping over the poles.
const MaxPitch = 89 * math.Pi / 180

// Source supplies one head pose (world -> head) per frame.
type Source interface {
	HeadPose(deltaTime float32) rl.Matrix
}

// Orientation is a yaw/pitch head orientation in radians.
// Positive yaw turns left (counter-clockwise about +Y), positive pitch looks up.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// Forward is the unit view direction in world space. Zero orientation faces -Z.
func (o Orientation) Forward() rl.Vector3 {
	cy, sy := math.Cos(float64(o.Yaw)), math.Sin(float64(o.Yaw))
	cp, sp := math.Cos(float64(o.Pitch)), math.Sin(float64(o.Pitch))
	return rl.Vector3{
		X: float32(-sy * cp),
		Y: float32(sp),
		Z: float32(-cy * cp),
	}
}

// Pose is the world -> head transform for this orientation.
func (o Orientation) Pose() rl.Matrix {
	return rl.MatrixLookAt(rl.Vector3Zero(), o.Forward(), rl.Vector3{X: 0, Y: 1, Z: 0})
}

// Turn adds the given deltas, clamping pitch and wrapping yaw into (-π, π].
func (o *Orientation) Turn(dYaw, dPitch float32) {
	o.Yaw = wrapAngle(o.Yaw + dYaw)
	o.Pitch = clamp(o.Pitch+dPitch, -MaxPitch, MaxPitch)
}

func wrapAngle(a float32) float32 {
	w := math.Remainder(float64(a), 2*math.Pi)
	if w == -math.Pi {
		w = math.Pi
	}
	return float32(w)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
