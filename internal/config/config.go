// Package config loads game settings from an optional JSON file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/gaze"
)

// DefaultPath is read when no -config flag is given. It may be absent.
const DefaultPath = "gazehunt.json"

// Environment overrides, applied after the file.
const (
	EnvSeed          = "GAZEHUNT_SEED"
	EnvLogLevel      = "GAZEHUNT_LOG_LEVEL"
	EnvDashboardAddr = "GAZEHUNT_DASHBOARD_ADDR"
)

var ErrInvalid = errors.New("invalid config")

// Relocation turns outside [MinTurnFloor, MaxTurnCeiling] can leave a found
// target inside the gaze cone of the pose that found it.
const (
	MinTurnFloor   = 90
	MaxTurnCeiling = 270
)

type WindowConfig struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	TargetFPS int32  `json:"targetFps"`
	Title     string `json:"title"`
}

type TargetConfig struct {
	InitialDistance float32    `json:"initialDistance"`
	SpinDegrees     float32    `json:"spinDegrees"`
	SpinAxis        [3]float32 `json:"spinAxis"`
}

type GazeConfig struct {
	PitchLimit float32 `json:"pitchLimit"`
	YawLimit   float32 `json:"yawLimit"`
}

type RelocationConfig struct {
	MinTurn      float64 `json:"minTurn"`
	MaxTurn      float64 `json:"maxTurn"`
	MinDistance  float64 `json:"minDistance"`
	MaxDistance  float64 `json:"maxDistance"`
	MaxElevation float64 `json:"maxElevation"`
}

type RenderConfig struct {
	ZNear  float32 `json:"zNear"`
	ZFar   float32 `json:"zFar"`
	FovY   float32 `json:"fovY"` // degrees
	IPD    float32 `json:"ipd"`  // interpupillary distance, world units
	Stereo bool    `json:"stereo"`
}

type InputConfig struct {
	MouseSensitivity float32 `json:"mouseSensitivity"` // radians per pixel
	Sweep            bool    `json:"sweep"`            // scripted head motion instead of the mouse
}

type FeedbackConfig struct {
	HapticSeconds float32 `json:"hapticSeconds"`
	ToastSeconds  float32 `json:"toastSeconds"`
	HitSound      string  `json:"hitSound,omitempty"`
	MissSound     string  `json:"missSound,omitempty"`
}

type Config struct {
	Window        WindowConfig     `json:"window"`
	Target        TargetConfig     `json:"target"`
	Gaze          GazeConfig       `json:"gaze"`
	Relocation    RelocationConfig `json:"relocation"`
	Render        RenderConfig     `json:"render"`
	Input         InputConfig      `json:"input"`
	Feedback      FeedbackConfig   `json:"feedback"`
	Seed          int64            `json:"seed"` // 0 seeds from the clock
	LogLevel      string           `json:"logLevel"`
	DashboardAddr string           `json:"dashboardAddr,omitempty"` // empty disables the dashboard
}

// Default mirrors gaze.DefaultSettings plus window and render defaults.
func Default() Config {
	s := gaze.DefaultSettings()
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, TargetFPS: 60, Title: "gazehunt"},
		Target: TargetConfig{
			InitialDistance: s.InitialDistance,
			SpinDegrees:     s.SpinDegrees,
			SpinAxis:        [3]float32{s.SpinAxis.X, s.SpinAxis.Y, s.SpinAxis.Z},
		},
		Gaze: GazeConfig{PitchLimit: s.Limits.Pitch, YawLimit: s.Limits.Yaw},
		Relocation: RelocationConfig{
			MinTurn:      s.Policy.MinTurn,
			MaxTurn:      s.Policy.MaxTurn,
			MinDistance:  s.Policy.MinDistance,
			MaxDistance:  s.Policy.MaxDistance,
			MaxElevation: s.Policy.MaxElevation,
		},
		Render:   RenderConfig{ZNear: 0.1, ZFar: 100, FovY: 70, IPD: 0.064, Stereo: true},
		Input:    InputConfig{MouseSensitivity: 0.003},
		Feedback: FeedbackConfig{HapticSeconds: 0.05, ToastSeconds: 3},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. The file must exist; a missing file
// returns an error wrapping fs.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load for DefaultPath: a missing file yields the defaults.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides fields from the GAZEHUNT_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvDashboardAddr); v != "" {
		c.DashboardAddr = v
	}
	return nil
}

// Validate rejects settings that would break the game or the gaze invariants.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Target.InitialDistance <= 0:
		return fmt.Errorf("%w: initial distance %v must be positive", ErrInvalid, c.Target.InitialDistance)
	case c.Gaze.PitchLimit <= 0 || c.Gaze.YawLimit <= 0:
		return fmt.Errorf("%w: gaze limits must be positive", ErrInvalid)
	case c.Relocation.MinDistance <= 0 || c.Relocation.MaxDistance <= c.Relocation.MinDistance:
		return fmt.Errorf("%w: relocation distance range [%v, %v)", ErrInvalid, c.Relocation.MinDistance, c.Relocation.MaxDistance)
	case c.Relocation.MaxTurn <= c.Relocation.MinTurn:
		return fmt.Errorf("%w: relocation turn range [%v, %v)", ErrInvalid, c.Relocation.MinTurn, c.Relocation.MaxTurn)
	case c.Relocation.MinTurn < MinTurnFloor || c.Relocation.MaxTurn > MaxTurnCeiling:
		return fmt.Errorf("%w: relocation turn range [%v, %v) must lie within [%d, %d]", ErrInvalid, c.Relocation.MinTurn, c.Relocation.MaxTurn, MinTurnFloor, MaxTurnCeiling)
	case c.Relocation.MaxElevation < 0 || c.Relocation.MaxElevation >= 90:
		return fmt.Errorf("%w: max elevation %v must be in [0, 90)", ErrInvalid, c.Relocation.MaxElevation)
	case !c.coneClearsRelocation():
		return fmt.Errorf("%w: gaze limits pitch=%v yaw=%v are too wide for max elevation %v", ErrInvalid, c.Gaze.PitchLimit, c.Gaze.YawLimit, c.Relocation.MaxElevation)
	case c.Render.ZNear <= 0 || c.Render.ZFar <= c.Render.ZNear:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Render.ZNear, c.Render.ZFar)
	}
	return nil
}

// coneClearsRelocation reports whether no single head pose can see both a found
// target and its relocation. Anything inside the cone is within
// atan(√2·tan(limit)) of forward, so two seen points are less than twice that
// apart. A turn of at least 90° with both points at most MaxElevation off the
// horizon separates them by at least acos(sin²(MaxElevation)).
func (c Config) coneClearsRelocation() bool {
	limit := float64(max(c.Gaze.PitchLimit, c.Gaze.YawLimit))
	if limit >= math.Pi/2 {
		return false
	}
	cone := 2 * math.Atan(math.Sqrt2*math.Tan(limit))

	sinE := math.Sin(c.Relocation.MaxElevation * math.Pi / 180)
	separation := math.Acos(sinE * sinE)
	return cone < separation
}

// Settings converts the file layout into controller settings.
func (c Config) Settings() gaze.Settings {
	return gaze.Settings{
		InitialDistance: c.Target.InitialDistance,
		SpinDegrees:     c.Target.SpinDegrees,
		SpinAxis:        rl.Vector3{X: c.Target.SpinAxis[0], Y: c.Target.SpinAxis[1], Z: c.Target.SpinAxis[2]},
		Limits:          gaze.Limits{Pitch: c.Gaze.PitchLimit, Yaw: c.Gaze.YawLimit},
		Policy: gaze.Policy{
			MinTurn:      c.Relocation.MinTurn,
			MaxTurn:      c.Relocation.MaxTurn,
			MinDistance:  c.Relocation.MinDistance,
			MaxDistance:  c.Relocation.MaxDistance,
			MaxElevation: c.Relocation.MaxElevation,
		},
	}
}

// Save writes the config as indented JSON, handy for producing a starting file.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
