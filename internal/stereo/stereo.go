// Package stereo renders the scene once per eye and lays the eyes out side by side.
package stereo

import rl "github.com/gen2brain/raylib-go/raylib"

// Clip planes. They only shape the projection; the gaze test never sees them.
const (
	ZNear float32 = 0.1
	ZFar  float32 = 100
)

type Config struct {
	Stereo bool
	IPD    float32 // interpupillary distance in world units
	FovY   float32 // vertical field of view, degrees
	ZNear  float32
	ZFar   float32
}

func DefaultConfig() Config {
	return Config{Stereo: true, IPD: 0.064, FovY: 70, ZNear: ZNear, ZFar: ZFar}
}

// EyeViews offsets the head view by half the IPD for each eye.
// The left eye sits at -IPD/2 in head space, so the world shifts by +IPD/2 in its view.
func EyeViews(head rl.Matrix, ipd float32) (left, right rl.Matrix) {
	half := ipd / 2
	left = rl.MatrixMultiply(head, rl.MatrixTranslate(half, 0, 0))
	right = rl.MatrixMultiply(head, rl.MatrixTranslate(-half, 0, 0))
	return left, right
}

// CameraFromView recovers a raylib camera equivalent to a world -> eye view matrix.
func CameraFromView(view rl.Matrix, fovY float32) rl.Camera3D {
	inv := rl.MatrixInvert(view)
	pos := rl.Vector3{X: inv.M12, Y: inv.M13, Z: inv.M14}
	forward := rl.Vector3{X: -inv.M8, Y: -inv.M9, Z: -inv.M10}
	up := rl.Vector3{X: inv.M4, Y: inv.M5, Z: inv.M6}
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, forward),
		Up:         up,
		Fovy:       fovY,
		Projection: rl.CameraPerspective,
	}
}
