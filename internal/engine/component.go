package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// EyeSide says which eye a draw call is for.
type EyeSide int

const (
	EyeMono EyeSide = iota
	EyeLeft
	EyeRight
)

func (s EyeSide) String() string {
	switch s {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	default:
		return "mono"
	}
}

// Frame is the per-frame input handed to every drawable before any eye is drawn.
type Frame struct {
	HeadPose  rl.Matrix // world -> head
	DeltaTime float32
}

// Eye carries everything needed to draw one eye of a frame.
type Eye struct {
	Side       EyeSide
	View       rl.Matrix // world -> eye
	Projection rl.Matrix
	Camera     rl.Camera3D
	LightPos   rl.Vector3 // light position in eye space
}

// Drawable is the capability set shared by every object in the scene
// (target cube, floor, head-locked reticle). Objects implement it directly;
// there is no base class chain.
type Drawable interface {
	// OnSurfaceCreated builds GPU resources. Called once the GL context exists.
	OnSurfaceCreated()
	// AdvanceFrame runs once per displayed frame before any OnDrawEye.
	AdvanceFrame(f Frame)
	// OnDrawEye draws the object for one eye. It must not mutate shared state.
	OnDrawEye(eye Eye)
	// Unload releases GPU resources.
	Unload()
}

// BaseDrawable provides no-op implementations so objects only override what they need.
type BaseDrawable struct{}

func (BaseDrawable) OnSurfaceCreated()    {}
func (BaseDrawable) AdvanceFrame(f Frame) {}
func (BaseDrawable) OnDrawEye(eye Eye)    {}
func (BaseDrawable) Unload()              {}
