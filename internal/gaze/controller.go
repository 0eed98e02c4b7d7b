package gaze

import (
	"log/slog"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/engine"
	"gazehunt/internal/log"
)

// State of the interaction loop. There is no terminal state.
type State int

const (
	StateIdle State = iota
	StateEvaluating
)

func (s State) String() string {
	if s == StateEvaluating {
		return "evaluating"
	}
	return "idle"
}

// Settings configures a Controller.
type Settings struct {
	InitialDistance float32
	SpinDegrees     float32 // applied once per frame
	SpinAxis        rl.Vector3
	Limits          Limits
	Policy          Policy
}

func DefaultSettings() Settings {
	return Settings{
		InitialDistance: 12,
		SpinDegrees:     0.3,
		SpinAxis:        rl.Vector3{X: 0.5, Y: 0.5, Z: 1},
		Limits:          DefaultLimits(),
		Policy:          DefaultPolicy(),
	}
}

// Outcome describes what a trigger did.
type Outcome struct {
	Hit    bool
	Score  int
	Gaze   Result
	Target Target // target after the trigger was handled
}

// Controller owns the head pose, the target and the score, and ties trigger
// events to the gaze test. All methods except QueueTrigger must be called from
// the frame goroutine.
type Controller struct {
	settings Settings
	head     HeadPoseTracker
	target   Target
	detector Detector
	rng      Rand
	score    ScoreTracker
	state    State
	frames   uint64

	pending atomic.Int32

	OnHit  engine.Event[Outcome]
	OnMiss engine.Event[Outcome]

	log *slog.Logger
}

// NewController starts a session: target straight ahead, score zero, identity head pose.
func NewController(settings Settings, rng Rand) *Controller {
	return &Controller{
		settings: settings,
		target:   NewTarget(settings.InitialDistance),
		detector: NewDetector(settings.Limits),
		rng:      rng,
		log:      log.With("component", "gaze"),
	}
}

// Frame is the per-frame update: store the head pose, spin the target, then
// handle any triggers queued from other goroutines since the last frame.
func (c *Controller) Frame(head rl.Matrix) []Outcome {
	c.frames++
	c.head.Update(head)
	c.target.Advance(c.settings.SpinDegrees, c.settings.SpinAxis)

	n := c.pending.Swap(0)
	if n == 0 {
		return nil
	}
	outcomes := make([]Outcome, 0, n)
	for i := int32(0); i < n; i++ {
		outcomes = append(outcomes, c.Trigger())
	}
	return outcomes
}

// QueueTrigger records a trigger to be evaluated on the next Frame.
// Safe to call from any goroutine.
func (c *Controller) QueueTrigger() {
	c.pending.Add(1)
}

// Trigger evaluates the gaze test now. On a hit the score goes up and the target
// moves; on a miss nothing changes. OnHit or OnMiss fires after the state is
// back to idle.
func (c *Controller) Trigger() Outcome {
	c.state = StateEvaluating

	gaze := c.detector.Test(c.head.Pose(), c.target)
	out := Outcome{Gaze: gaze}

	if gaze.Looking {
		out.Hit = true
		out.Score = c.score.Increment()
		c.target = c.settings.Policy.Relocate(c.target, c.rng)
		out.Target = c.target

		pos := c.target.Position()
		c.log.Info("target found",
			"score", out.Score,
			"pitch", gaze.Pitch,
			"yaw", gaze.Yaw,
			"distance", c.target.Distance,
			"x", pos.X, "y", pos.Y, "z", pos.Z,
		)
		c.state = StateIdle
		c.OnHit.Invoke(out)
		return out
	}

	out.Score = c.score.Score()
	out.Target = c.target
	c.log.Debug("trigger missed", "pitch", gaze.Pitch, "yaw", gaze.Yaw, "frame", c.frames)
	c.state = StateIdle
	c.OnMiss.Invoke(out)
	return out
}

// Gaze runs the detector against the current head pose and target without side effects.
func (c *Controller) Gaze() Result {
	return c.detector.Test(c.head.Pose(), c.target)
}

// IsLookingAt reports whether the current head pose has the target in its cone.
func (c *Controller) IsLookingAt() bool {
	return c.Gaze().Looking
}

// Target returns a copy of the current target.
func (c *Controller) Target() Target {
	return c.target
}

// HeadPose returns the pose recorded by the last Frame.
func (c *Controller) HeadPose() rl.Matrix {
	return c.head.Pose()
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.score.Score()
}

// Scores exposes the tracker so callers can subscribe to OnChanged.
func (c *Controller) Scores() *ScoreTracker {
	return &c.score
}

// State returns StateEvaluating only while a trigger is being resolved.
func (c *Controller) State() State {
	return c.state
}

// Frames counts calls to Frame.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Settings returns the settings the controller was built with.
func (c *Controller) Settings() Settings {
	return c.settings
}
