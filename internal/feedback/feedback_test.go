package feedback

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazehunt/internal/audio"
	"gazehunt/internal/gaze"
)

type countingHaptics struct {
	pulses  int
	seconds float32
}

func (h *countingHaptics) Pulse(s float32) {
	h.pulses++
	h.seconds = s
}

type recordingPlayer struct {
	played []string
	at     []rl.Vector3
	err    error
}

func (p *recordingPlayer) Play(name string) error {
	p.played = append(p.played, name)
	return p.err
}

func (p *recordingPlayer) PlayAt(name string, _ audio.Listener, pos rl.Vector3) error {
	p.played = append(p.played, name)
	p.at = append(p.at, pos)
	return p.err
}

func TestToasterLifetime(t *testing.T) {
	toasts := NewToaster(2)
	toasts.Show("hello")

	text, alpha, ok := toasts.Current()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.Equal(t, float32(1), alpha)

	toasts.Update(1.75)
	_, alpha, ok = toasts.Current()
	require.True(t, ok)
	assert.InDelta(t, 0.5, alpha, 1e-5)

	toasts.Update(0.5)
	_, _, ok = toasts.Current()
	assert.False(t, ok)
}

func TestToasterShowReplaces(t *testing.T) {
	toasts := NewToaster(3)
	toasts.Show("first")
	toasts.Update(2)
	toasts.Show("second")

	text, alpha, ok := toasts.Current()

	require.True(t, ok)
	assert.Equal(t, "second", text)
	assert.Equal(t, float32(1), alpha)
}

func TestFoundMessage(t *testing.T) {
	assert.Equal(t, "Found it! Look around for another one.\nScore = 3", FoundMessage(3))
}

func TestResponderAttachShowsInstruction(t *testing.T) {
	toasts := NewToaster(3)
	r := NewResponder(toasts, nil)

	r.Attach(gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(1)))

	text, _, ok := toasts.Current()
	require.True(t, ok)
	assert.Equal(t, InstructionMessage, text)
}

func TestResponderHit(t *testing.T) {
	toasts := NewToaster(3)
	haptics := &countingHaptics{}
	player := &recordingPlayer{}
	r := NewResponder(toasts, haptics)
	r.Sounds = player
	r.HitSound = "hit"
	r.MissSound = "miss"
	c := gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(1))
	r.Attach(c)

	out := c.Trigger()

	require.True(t, out.Hit)
	text, _, _ := toasts.Current()
	assert.Equal(t, FoundMessage(1), text)
	assert.Equal(t, 1, haptics.pulses)
	assert.Equal(t, float32(DefaultPulseSeconds), haptics.seconds)
	assert.Equal(t, []string{"hit"}, player.played)
	require.Len(t, player.at, 1)
	assert.Equal(t, c.Target().Position(), player.at[0])
}

func TestResponderMiss(t *testing.T) {
	toasts := NewToaster(3)
	haptics := &countingHaptics{}
	player := &recordingPlayer{err: errors.New("no device")}
	r := NewResponder(toasts, haptics)
	r.Sounds = player
	r.MissSound = "miss"
	c := gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(1))
	r.Attach(c)
	c.Frame(rl.MatrixRotateY(rl.Pi / 2))

	out := c.Trigger()

	require.False(t, out.Hit)
	text, _, _ := toasts.Current()
	assert.Equal(t, MissMessage, text)
	assert.Equal(t, 1, haptics.pulses)
	assert.Equal(t, []string{"miss"}, player.played)
}

func TestResponderPulsesEveryTrigger(t *testing.T) {
	haptics := &countingHaptics{}
	r := NewResponder(NewToaster(3), haptics)
	c := gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(7))
	r.Attach(c)

	for i := 0; i < 5; i++ {
		c.Trigger()
	}

	assert.Equal(t, 5, haptics.pulses)
}

func TestResponderDetach(t *testing.T) {
	haptics := &countingHaptics{}
	r := NewResponder(NewToaster(3), haptics)
	c := gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(1))
	r.Attach(c)
	r.Detach()

	c.Trigger()

	assert.Zero(t, haptics.pulses)
	assert.Zero(t, c.OnHit.ListenerCount())
	assert.Zero(t, c.OnMiss.ListenerCount())
}
