// Package game runs the window, input and render loop around a gaze.Controller.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gazehunt/internal/audio"
	"gazehunt/internal/config"
	"gazehunt/internal/dashboard"
	"gazehunt/internal/engine"
	"gazehunt/internal/feedback"
	"gazehunt/internal/gaze"
	"gazehunt/internal/headtrack"
	"gazehunt/internal/log"
	"gazehunt/internal/objects"
	"gazehunt/internal/stereo"
)

const (
	hitSound  = "hit"
	missSound = "miss"
)

type Game struct {
	Session    string
	Config     config.Config
	Controller *gaze.Controller
	Scene      *engine.Scene
	Rig        *stereo.Rig
	Head       headtrack.Source
	Toasts     *feedback.Toaster
	Responder  *feedback.Responder
	Dashboard  *dashboard.Server // nil when disabled
	HUD        *HUD

	mixer    *audio.Mixer
	lighting *objects.Lighting
	cube     *objects.Cube
	reticle  *objects.Reticle

	// Frame timing (ms)
	updateMs float64
	drawMs   float64

	log *slog.Logger
}

// New wires a session from cfg. Nothing here touches the GL context.
func New(cfg config.Config) *Game {
	session := uuid.NewString()
	g := &Game{
		Session: session,
		Config:  cfg,
		Scene:   engine.NewScene("gazehunt"),
		Toasts:  feedback.NewToaster(cfg.Feedback.ToastSeconds),
		log:     log.With("session", session),
	}

	g.Controller = gaze.NewController(cfg.Settings(), gaze.NewRand(cfg.Seed))

	g.lighting = objects.NewLighting()
	g.cube = objects.NewCube(g.Controller, g.lighting)
	g.reticle = objects.NewReticle()
	g.Scene.Add(g.cube)
	g.Scene.Add(objects.NewFloor(g.lighting))
	g.Scene.Add(g.reticle)

	g.Rig = stereo.NewRig(stereo.Config{
		Stereo: cfg.Render.Stereo,
		IPD:    cfg.Render.IPD,
		FovY:   cfg.Render.FovY,
		ZNear:  cfg.Render.ZNear,
		ZFar:   cfg.Render.ZFar,
	})

	if cfg.Input.Sweep {
		g.Head = headtrack.NewSweepSource()
	} else {
		g.Head = headtrack.NewMouseSource(cfg.Input.MouseSensitivity)
	}

	g.Responder = feedback.NewResponder(g.Toasts, feedback.NewGamepadHaptics(0))
	g.Responder.PulseSeconds = cfg.Feedback.HapticSeconds
	g.Responder.Attach(g.Controller)

	if cfg.DashboardAddr != "" {
		g.Dashboard = dashboard.NewServer(session)
		g.Dashboard.Attach(g.Controller)
	}

	g.HUD = NewHUD(cfg.Render.Stereo, cfg.Input.MouseSensitivity)
	return g
}

// Run opens the window and loops until it is closed or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.log.Info("starting",
		"seed", g.Config.Seed,
		"stereo", g.Config.Render.Stereo,
		"sweep", g.Config.Input.Sweep,
		"distance", g.Config.Target.InitialDistance,
	)

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open window %dx%d", g.Config.Window.Width, g.Config.Window.Height)
	}
	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	if !g.Config.Input.Sweep {
		rl.DisableCursor()
	}

	g.openAudio()
	defer g.closeAudio()

	g.Scene.SurfaceCreated()
	defer g.Scene.Unload()
	g.Rig.Load(int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))
	defer g.Rig.Unload()
	initHUDStyle()

	if g.Dashboard != nil {
		g.Dashboard.ListenAsync(g.Config.DashboardAddr)
		defer func() {
			if err := g.Dashboard.Shutdown(); err != nil {
				g.log.Warn("dashboard shutdown", "error", err)
			}
		}()
	}

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		if rl.IsWindowResized() {
			g.Rig.Load(int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))
		}
		g.Update()
		g.Draw()
	}

	g.log.Info("shutting down", "score", g.Controller.Score(), "frames", g.Controller.Frames())
	return nil
}

// Update polls input and advances the controller and scene by one frame.
func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if TriggerPressed() {
		g.Controller.QueueTrigger()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.HUD.Debug = !g.HUD.Debug
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.HUD.Visible = !g.HUD.Visible
	}

	head := g.Head.HeadPose(deltaTime)
	g.Controller.Frame(head)
	g.Scene.AdvanceFrame(engine.Frame{HeadPose: head, DeltaTime: deltaTime})
	g.Toasts.Update(deltaTime)
	if g.Dashboard != nil {
		g.Dashboard.Update(g.Controller)
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	drawStart := time.Now()
	g.Rig.RenderEyes(g.Scene, g.Controller.HeadPose())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	g.Rig.Present()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.drawToast()
	if g.HUD.Draw(g.hudState()) {
		g.applyHUD()
	}
	rl.EndDrawing()
}

func (g *Game) hudState() HUDState {
	return HUDState{
		Score:    g.Controller.Score(),
		Gaze:     g.Controller.Gaze(),
		Target:   g.Controller.Target(),
		Stereo:   g.Rig.Config().Stereo,
		Session:  g.Session,
		UpdateMs: g.updateMs,
		DrawMs:   g.drawMs,
	}
}

// applyHUD pushes HUD edits back into the rig and head source.
func (g *Game) applyHUD() {
	if g.Rig.Config().Stereo != g.HUD.Stereo {
		g.Rig.SetStereo(g.HUD.Stereo)
		g.log.Info("render mode changed", "stereo", g.HUD.Stereo)
	}
	if m, ok := g.Head.(*headtrack.MouseSource); ok {
		m.Sensitivity = g.HUD.Sensitivity
	}
}

// drawToast centres the current toast in each eye.
func (g *Game) drawToast() {
	text, alpha, ok := g.Toasts.Current()
	if !ok {
		return
	}
	const size = 24
	w, h := int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight())
	eyes := int32(1)
	if g.Rig.Config().Stereo {
		eyes = 2
	}
	eyeW := w / eyes
	textW := rl.MeasureText(text, size)
	for i := int32(0); i < eyes; i++ {
		x := i*eyeW + (eyeW-textW)/2
		rl.DrawText(text, x, h/2+60, size, rl.Fade(rl.RayWhite, alpha))
	}
}

// openAudio starts the mixer when any sound is configured. Failures leave feedback silent.
func (g *Game) openAudio() {
	fb := g.Config.Feedback
	if fb.HitSound == "" && fb.MissSound == "" {
		return
	}
	g.mixer = audio.Open()
	if fb.HitSound != "" {
		if err := g.mixer.Load(hitSound, fb.HitSound); err != nil {
			g.log.Warn("hit sound disabled", "error", err)
		} else {
			g.Responder.HitSound = hitSound
		}
	}
	if fb.MissSound != "" {
		if err := g.mixer.Load(missSound, fb.MissSound); err != nil {
			g.log.Warn("miss sound disabled", "error", err)
		} else {
			g.Responder.MissSound = missSound
		}
	}
	g.Responder.Sounds = g.mixer
}

func (g *Game) closeAudio() {
	if g.mixer == nil {
		return
	}
	g.Responder.Sounds = nil
	g.mixer.Close()
	g.mixer = nil
}
