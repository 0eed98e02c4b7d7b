package stereo

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/engine"
)

var background = rl.NewColor(20, 20, 30, 255)

// Rig owns the per-eye render targets.
type Rig struct {
	cfg     Config
	width   int32
	height  int32
	targets []rl.RenderTexture2D
}

func NewRig(cfg Config) *Rig {
	return &Rig{cfg: cfg, width: 1280, height: 720}
}

func (r *Rig) Config() Config {
	return r.cfg
}

// Load allocates one render texture per eye for a width x height window.
func (r *Rig) Load(width, height int32) {
	r.Unload()
	r.width, r.height = width, height
	eyeW := r.eyeWidth()
	for range r.eyeCount() {
		r.targets = append(r.targets, rl.LoadRenderTexture(eyeW, height))
	}
}

// SetStereo switches between one and two eyes, reallocating targets if loaded.
func (r *Rig) SetStereo(on bool) {
	if r.cfg.Stereo == on {
		return
	}
	r.cfg.Stereo = on
	if r.targets != nil {
		r.Load(r.width, r.height)
	}
}

func (r *Rig) Unload() {
	for _, t := range r.targets {
		rl.UnloadRenderTexture(t)
	}
	r.targets = nil
}

func (r *Rig) eyeCount() int {
	if r.cfg.Stereo {
		return 2
	}
	return 1
}

func (r *Rig) eyeWidth() int32 {
	if r.cfg.Stereo {
		return r.width / 2
	}
	return r.width
}

// Eyes builds view, projection and camera for each eye of the current frame.
func (r *Rig) Eyes(head rl.Matrix) []engine.Eye {
	aspect := float32(r.eyeWidth()) / float32(r.height)
	proj := rl.MatrixPerspective(r.cfg.FovY*rl.Deg2rad, aspect, r.cfg.ZNear, r.cfg.ZFar)

	if !r.cfg.Stereo {
		return []engine.Eye{r.eye(engine.EyeMono, head, proj)}
	}
	left, right := EyeViews(head, r.cfg.IPD)
	return []engine.Eye{
		r.eye(engine.EyeLeft, left, proj),
		r.eye(engine.EyeRight, right, proj),
	}
}

func (r *Rig) eye(side engine.EyeSide, view, proj rl.Matrix) engine.Eye {
	return engine.Eye{
		Side:       side,
		View:       view,
		Projection: proj,
		Camera:     CameraFromView(view, r.cfg.FovY),
	}
}

// RenderEyes draws the scene into each eye's texture. Call before rl.BeginDrawing.
func (r *Rig) RenderEyes(scene *engine.Scene, head rl.Matrix) {
	for i, eye := range r.Eyes(head) {
		if i >= len(r.targets) {
			return
		}
		rl.BeginTextureMode(r.targets[i])
		rl.ClearBackground(background)
		rl.BeginMode3D(eye.Camera)
		rl.SetMatrixProjection(eye.Projection)
		scene.DrawEye(eye)
		rl.EndMode3D()
		rl.EndTextureMode()
	}
}

// Present blits the eye textures to the screen, left eye first.
func (r *Rig) Present() {
	eyeW := r.eyeWidth()
	for i, t := range r.targets {
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(t.Texture.Width), Height: -float32(t.Texture.Height)}
		rl.DrawTextureRec(t.Texture, src, rl.Vector2{X: float32(int32(i) * eyeW), Y: 0}, rl.White)
	}
	if r.cfg.Stereo {
		rl.DrawLine(eyeW, 0, eyeW, r.height, rl.Black)
	}
}
