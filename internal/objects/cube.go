package objects

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/engine"
	"gazehunt/internal/gaze"
)

var (
	DefaultCubeColor = rl.NewColor(0, 133, 235, 255)
	FoundCubeColor   = rl.NewColor(255, 166, 0, 255)
)

// TargetSource is what the cube needs from the gaze controller.
type TargetSource interface {
	Target() gaze.Target
	IsLookingAt() bool
}

// Cube draws the target. It switches to FoundColor while the player looks at it.
type Cube struct {
	Source       TargetSource
	Size         float32
	DefaultColor rl.Color
	FoundColor   rl.Color

	lighting  *Lighting
	model     rl.Model
	loaded    bool
	transform rl.Matrix
	looking   bool
}

func NewCube(src TargetSource, lighting *Lighting) *Cube {
	return &Cube{
		Source:       src,
		Size:         2,
		DefaultColor: DefaultCubeColor,
		FoundColor:   FoundCubeColor,
		lighting:     lighting,
		transform:    src.Target().Model,
	}
}

func (c *Cube) OnSurfaceCreated() {
	c.model = rl.LoadModelFromMesh(rl.GenMeshCube(c.Size, c.Size, c.Size))
	if c.lighting != nil {
		c.model.Materials.Shader = c.lighting.Acquire()
	}
	c.loaded = true
}

// AdvanceFrame snapshots the target transform and gaze state for this frame's eyes.
func (c *Cube) AdvanceFrame(engine.Frame) {
	c.transform = c.Source.Target().Model
	c.looking = c.Source.IsLookingAt()
}

func (c *Cube) Color() rl.Color {
	if c.looking {
		return c.FoundColor
	}
	return c.DefaultColor
}

func (c *Cube) Transform() rl.Matrix {
	return c.transform
}

// BoundingRadius encloses the cube at any orientation.
func (c *Cube) BoundingRadius() float32 {
	return c.Size * 0.8660254 // sqrt(3)/2
}

// VisibleIn reports whether any part of the cube falls inside eye's frustum.
func (c *Cube) VisibleIn(eye engine.Eye) bool {
	f := eye.Frustum()
	center := rl.Vector3{X: c.transform.M12, Y: c.transform.M13, Z: c.transform.M14}
	return f.ContainsSphere(center, c.BoundingRadius())
}

func (c *Cube) OnDrawEye(eye engine.Eye) {
	if !c.loaded || !c.VisibleIn(eye) {
		return
	}
	if c.lighting != nil {
		c.lighting.Apply(eye)
	}
	c.model.Transform = c.transform
	c.model.Materials.Maps.Color = c.Color()
	rl.DrawModel(c.model, rl.Vector3Zero(), 1.0, rl.White)
	rl.DrawModelWires(c.model, rl.Vector3Zero(), 1.0, rl.Fade(rl.Black, 0.4))
}

func (c *Cube) Unload() {
	if !c.loaded {
		return
	}
	if c.lighting != nil {
		c.model.Materials.Shader = rl.Shader{}
		c.lighting.Release()
	}
	rl.UnloadModel(c.model)
	c.loaded = false
}
