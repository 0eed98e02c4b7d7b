// Package objects holds the drawables of the gaze scene: the target cube, the
// floor and the head-locked reticle.
package objects

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/engine"
)

//go:embed shaders/light.vs
var lightVS string

//go:embed shaders/light.fs
var lightFS string

// Lighting is a point-light diffuse shader shared by the lit objects.
type Lighting struct {
	Shader   rl.Shader
	lightLoc int32
	refs     int
}

func NewLighting() *Lighting {
	return &Lighting{}
}

// Acquire loads the shader on first use. Each Acquire needs a matching Release.
func (l *Lighting) Acquire() rl.Shader {
	if l.refs == 0 {
		l.Shader = rl.LoadShaderFromMemory(lightVS, lightFS)
		l.lightLoc = rl.GetShaderLocation(l.Shader, "lightPos")
	}
	l.refs++
	return l.Shader
}

func (l *Lighting) Release() {
	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs == 0 {
		rl.UnloadShader(l.Shader)
		l.Shader = rl.Shader{}
	}
}

// Apply uploads the eye-space light position for eye.
func (l *Lighting) Apply(eye engine.Eye) {
	if l.refs == 0 {
		return
	}
	rl.SetShaderValue(l.Shader, l.lightLoc, []float32{eye.LightPos.X, eye.LightPos.Y, eye.LightPos.Z}, rl.ShaderUniformVec3)
}
