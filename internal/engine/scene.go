package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Scene is a flat, ordered list of drawables plus the world light.
type Scene struct {
	Name      string
	LightPos  rl.Vector3 // world space, homogeneous w = 1
	drawables []Drawable
	created   bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		LightPos: rl.Vector3{X: 0, Y: 2, Z: 0},
	}
}

// Add appends d. If the surface already exists, d gets OnSurfaceCreated immediately.
func (s *Scene) Add(d Drawable) {
	s.drawables = append(s.drawables, d)
	if s.created {
		d.OnSurfaceCreated()
	}
}

func (s *Scene) Remove(d Drawable) {
	for i, x := range s.drawables {
		if x == d {
			s.drawables = append(s.drawables[:i], s.drawables[i+1:]...)
			return
		}
	}
}

func (s *Scene) Drawables() []Drawable {
	return s.drawables
}

func (s *Scene) SurfaceCreated() {
	if s.created {
		return
	}
	for _, d := range s.drawables {
		d.OnSurfaceCreated()
	}
	s.created = true
}

func (s *Scene) AdvanceFrame(f Frame) {
	for _, d := range s.drawables {
		d.AdvanceFrame(f)
	}
}

// DrawEye fills in the eye-space light position and draws every object for eye.
func (s *Scene) DrawEye(eye Eye) {
	eye.LightPos = rl.Vector3Transform(s.LightPos, eye.View)
	for _, d := range s.drawables {
		d.OnDrawEye(eye)
	}
}

func (s *Scene) Unload() {
	for _, d := range s.drawables {
		d.Unload()
	}
	s.created = false
}
