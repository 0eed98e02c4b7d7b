package game

import (
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/config"
	"gazehunt/internal/feedback"
	"gazehunt/internal/gaze"
	"gazehunt/internal/headtrack"
)

func TestNewWiresSession(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	g := New(cfg)

	if len(g.Session) != 36 {
		t.Errorf("Expected a uuid session id, got %q", g.Session)
	}
	if got := len(g.Scene.Drawables()); got != 3 {
		t.Errorf("Expected cube, floor and reticle in the scene, got %d drawables", got)
	}
	if g.Dashboard != nil {
		t.Error("Dashboard should be disabled without an address")
	}
	if _, ok := g.Head.(*headtrack.MouseSource); !ok {
		t.Errorf("Expected mouse head tracking by default, got %T", g.Head)
	}
	text, _, ok := g.Toasts.Current()
	if !ok || text != feedback.InstructionMessage {
		t.Errorf("Expected the instruction toast, got %q", text)
	}
}

func TestNewSweepAndDashboard(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Sweep = true
	cfg.DashboardAddr = "127.0.0.1:0"
	g := New(cfg)
	defer g.Dashboard.Shutdown()

	if _, ok := g.Head.(*headtrack.SweepSource); !ok {
		t.Errorf("Expected sweep head tracking, got %T", g.Head)
	}
	if g.Dashboard == nil {
		t.Fatal("Dashboard should be enabled")
	}
	if g.Dashboard.Status().Session != g.Session {
		t.Errorf("Dashboard session %q does not match %q", g.Dashboard.Status().Session, g.Session)
	}
}

func TestTriggerFlowsToFeedbackAndHUD(t *testing.T) {
	g := New(config.Default())

	g.Controller.Frame(rl.MatrixIdentity())
	out := g.Controller.Trigger()

	if !out.Hit {
		t.Fatal("Expected a hit looking straight ahead")
	}
	text, _, _ := g.Toasts.Current()
	if text != feedback.FoundMessage(1) {
		t.Errorf("Expected found toast, got %q", text)
	}
	lines := g.HUD.Lines(g.hudState())
	if lines[0] != "Score: 1" {
		t.Errorf("Expected score line, got %q", lines[0])
	}
	if lines[1] != "Looking: no" {
		t.Errorf("Target should have moved out of view, got %q", lines[1])
	}
}

func TestHUDDebugLines(t *testing.T) {
	h := NewHUD(true, 0.003)
	s := HUDState{
		Score:   2,
		Gaze:    gaze.Result{Looking: true},
		Target:  gaze.NewTarget(12),
		Session: "0123456789abcdef",
	}

	if got := len(h.Lines(s)); got != 4 {
		t.Errorf("Expected 4 lines, got %d", got)
	}

	h.Debug = true
	lines := h.Lines(s)
	if len(lines) != 7 {
		t.Fatalf("Expected 7 debug lines, got %d", len(lines))
	}
	if lines[1] != "Looking: yes" {
		t.Errorf("Unexpected looking line %q", lines[1])
	}
	if !strings.HasSuffix(lines[6], "01234567") {
		t.Errorf("Session should be shortened, got %q", lines[6])
	}
}
