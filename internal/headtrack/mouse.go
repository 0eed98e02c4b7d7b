package headtrack

import rl "github.com/gen2brain/raylib-go/raylib"

// MouseSource turns mouse motion into head motion, like an FPS camera.
// The cursor should be captured (rl.DisableCursor) while it is in use.
type MouseSource struct {
	Orientation
	Sensitivity float32 // radians per pixel
}

func NewMouseSource(sensitivity float32) *MouseSource {
	return &MouseSource{Sensitivity: sensitivity}
}

func (m *MouseSource) HeadPose(float32) rl.Matrix {
	d := rl.GetMouseDelta()
	// Moving the mouse right turns right (negative yaw); moving it up looks up.
	m.Turn(-d.X*m.Sensitivity, -d.Y*m.Sensitivity)
	return m.Pose()
}
