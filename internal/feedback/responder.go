package feedback

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/audio"
	"gazehunt/internal/engine"
	"gazehunt/internal/gaze"
	"gazehunt/internal/log"
)

const (
	InstructionMessage = "Pull the trigger when you find an object."
	MissMessage        = "Look around to find the object!"
	foundFormat        = "Found it! Look around for another one.\nScore = %d"

	DefaultPulseSeconds = 0.05
)

func FoundMessage(score int) string {
	return fmt.Sprintf(foundFormat, score)
}

// Player is the part of audio.Mixer the responder needs.
type Player interface {
	Play(name string) error
	PlayAt(name string, l audio.Listener, pos rl.Vector3) error
}

// Responder reacts to every trigger: a toast, a haptic pulse, and an optional sound.
type Responder struct {
	Toasts       *Toaster
	Haptics      Haptics
	Sounds       Player // nil disables sound
	PulseSeconds float32
	HitSound     string
	MissSound    string

	hitID, missID engine.ListenerID
	controller    *gaze.Controller
	log           *slog.Logger
}

func NewResponder(toasts *Toaster, haptics Haptics) *Responder {
	if haptics == nil {
		haptics = NoHaptics{}
	}
	return &Responder{
		Toasts:       toasts,
		Haptics:      haptics,
		PulseSeconds: DefaultPulseSeconds,
		log:          log.With("component", "feedback"),
	}
}

// Attach subscribes to c's hit and miss events and shows the opening instruction.
func (r *Responder) Attach(c *gaze.Controller) {
	r.Detach()
	r.controller = c
	r.hitID = c.OnHit.AddListener(r.hit)
	r.missID = c.OnMiss.AddListener(r.miss)
	r.Toasts.Show(InstructionMessage)
}

func (r *Responder) Detach() {
	if r.controller == nil {
		return
	}
	r.controller.OnHit.RemoveListener(r.hitID)
	r.controller.OnMiss.RemoveListener(r.missID)
	r.controller = nil
}

func (r *Responder) hit(out gaze.Outcome) {
	r.Toasts.Show(FoundMessage(out.Score))
	r.Haptics.Pulse(r.PulseSeconds)
	if r.Sounds != nil && r.HitSound != "" {
		// The chime comes from where the object went.
		listener := audio.ListenerFromPose(r.controller.HeadPose())
		if err := r.Sounds.PlayAt(r.HitSound, listener, out.Target.Position()); err != nil {
			r.log.Debug("hit sound", "error", err)
		}
	}
}

func (r *Responder) miss(gaze.Outcome) {
	r.Toasts.Show(MissMessage)
	r.Haptics.Pulse(r.PulseSeconds)
	if r.Sounds != nil && r.MissSound != "" {
		if err := r.Sounds.Play(r.MissSound); err != nil {
			r.log.Debug("miss sound", "error", err)
		}
	}
}
