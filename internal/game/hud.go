package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/gaze"
)

// Theme colors
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextLight = rl.NewColor(255, 255, 255, 255)
	colorFound     = rl.NewColor(255, 166, 0, 255)
)

const (
	hudX        = 10
	hudY        = 10
	hudWidth    = 240
	hudLineH    = 20
	hudPadding  = 8
	hudHeaderH  = 24
	hudControls = 2
)

// HUDState is what the HUD shows for one frame.
type HUDState struct {
	Score    int
	Gaze     gaze.Result
	Target   gaze.Target
	Stereo   bool
	Session  string
	UpdateMs float64
	DrawMs   float64
}

// HUD is the raygui overlay. Stereo and Sensitivity are editable.
type HUD struct {
	Visible     bool
	Debug       bool
	Stereo      bool
	Sensitivity float32
}

func NewHUD(stereo bool, sensitivity float32) *HUD {
	return &HUD{Visible: true, Stereo: stereo, Sensitivity: sensitivity}
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Lines returns the text rows of the panel.
func (h *HUD) Lines(s HUDState) []string {
	looking := "no"
	if s.Gaze.Looking {
		looking = "yes"
	}
	pos := s.Target.Position()
	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Looking: %s", looking),
		fmt.Sprintf("Pitch %.3f  Yaw %.3f", s.Gaze.Pitch, s.Gaze.Yaw),
		fmt.Sprintf("Distance: %.1f", s.Target.Distance),
	}
	if h.Debug {
		lines = append(lines,
			fmt.Sprintf("Target (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z),
			fmt.Sprintf("Update %.2f ms  Draw %.2f ms", s.UpdateMs, s.DrawMs),
			"Session "+shortID(s.Session),
		)
	}
	return lines
}

// Draw renders the panel and reports whether an editable value changed.
func (h *HUD) Draw(s HUDState) bool {
	if !h.Visible {
		rl.DrawText(fmt.Sprintf("Score: %d", s.Score), hudX, hudY, 20, colorText)
		return false
	}

	lines := h.Lines(s)
	height := float32(hudHeaderH + hudPadding*2 + (len(lines)+hudControls)*hudLineH)
	gui.Panel(rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: height}, "gazehunt")

	y := float32(hudY + hudHeaderH + hudPadding)
	for i, line := range lines {
		if i == 1 && s.Gaze.Looking {
			rl.DrawText(line, hudX+hudPadding, int32(y)+3, 15, colorFound)
		} else {
			gui.Label(rl.Rectangle{X: hudX + hudPadding, Y: y, Width: hudWidth - hudPadding*2, Height: hudLineH}, line)
		}
		y += hudLineH
	}

	changed := false
	stereo := gui.CheckBox(rl.Rectangle{X: hudX + hudPadding, Y: y + 3, Width: 14, Height: 14}, "Stereo", h.Stereo)
	if stereo != h.Stereo {
		h.Stereo = stereo
		changed = true
	}
	y += hudLineH

	sens := gui.Slider(
		rl.Rectangle{X: hudX + hudPadding + 70, Y: y + 2, Width: hudWidth - hudPadding*2 - 110, Height: 14},
		"Mouse", fmt.Sprintf("%.4f", h.Sensitivity), h.Sensitivity, 0.0005, 0.01,
	)
	if sens != h.Sensitivity {
		h.Sensitivity = sens
		changed = true
	}

	if h.Debug {
		rl.DrawFPS(int32(rl.GetRenderWidth())-90, hudY)
	}
	return changed
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
