package objects

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/engine"
)

const (
	FloorDepth = 20.0
	FloorSize  = 200.0
)

// Floor is a large lit plane below the viewer with a grid on top.
type Floor struct {
	engine.BaseDrawable
	Depth float32
	Size  float32
	Color rl.Color

	lighting *Lighting
	model    rl.Model
	loaded   bool
}

func NewFloor(lighting *Lighting) *Floor {
	return &Floor{
		Depth:    FloorDepth,
		Size:     FloorSize,
		Color:    rl.NewColor(40, 50, 60, 255),
		lighting: lighting,
	}
}

func (f *Floor) OnSurfaceCreated() {
	f.model = rl.LoadModelFromMesh(rl.GenMeshPlane(f.Size, f.Size, 1, 1))
	f.model.Materials.Maps.Color = f.Color
	if f.lighting != nil {
		f.model.Materials.Shader = f.lighting.Acquire()
	}
	f.loaded = true
}

// Position is the floor centre in world space.
func (f *Floor) Position() rl.Vector3 {
	return rl.Vector3{X: 0, Y: -f.Depth, Z: 0}
}

func (f *Floor) OnDrawEye(eye engine.Eye) {
	if !f.loaded {
		return
	}
	if f.lighting != nil {
		f.lighting.Apply(eye)
	}
	rl.DrawModel(f.model, f.Position(), 1.0, rl.White)

	rl.PushMatrix()
	rl.Translatef(0, -f.Depth+0.01, 0)
	rl.DrawGrid(int32(f.Size/4), 4)
	rl.PopMatrix()
}

func (f *Floor) Unload() {
	if !f.loaded {
		return
	}
	if f.lighting != nil {
		f.model.Materials.Shader = rl.Shader{}
		f.lighting.Release()
	}
	rl.UnloadModel(f.model)
	f.loaded = false
}
