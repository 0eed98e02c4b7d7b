package objects

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/engine"
)

// Reticle marks the centre of view a fixed distance in front of each eye.
type Reticle struct {
	engine.BaseDrawable
	Distance float32
	Radius   float32
	Color    rl.Color
	Visible  bool
}

func NewReticle() *Reticle {
	return &Reticle{
		Distance: 3,
		Radius:   0.02,
		Color:    rl.RayWhite,
		Visible:  true,
	}
}

// Point returns where the reticle sits for cam.
func (r *Reticle) Point(cam rl.Camera3D) rl.Vector3 {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	return rl.Vector3Add(cam.Position, rl.Vector3Scale(forward, r.Distance))
}

func (r *Reticle) OnDrawEye(eye engine.Eye) {
	if !r.Visible {
		return
	}
	rl.DrawSphere(r.Point(eye.Camera), r.Radius, r.Color)
}
