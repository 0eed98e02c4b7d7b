// Package audio plays short feedback sounds, optionally panned toward a point in the world.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrNotLoaded = errors.New("sound not loaded")

// Listener is the head's orientation in world space. The head sits at the origin.
type Listener struct {
	Forward rl.Vector3
	Right   rl.Vector3
}

// ListenerFromPose reads the head axes out of a world -> head rotation.
func ListenerFromPose(head rl.Matrix) Listener {
	return Listener{
		Right:   rl.Vector3Normalize(rl.Vector3{X: head.M0, Y: head.M4, Z: head.M8}),
		Forward: rl.Vector3Normalize(rl.Vector3{X: -head.M2, Y: -head.M6, Z: -head.M10}),
	}
}

// Spatialize computes volume and pan for a sound at pos heard by l.
// Volume falls off linearly to zero at maxDistance; sounds behind the listener are
// damped to as little as 70%. Pan is 0 for full left, 0.5 centered, 1 full right.
func Spatialize(l Listener, pos rl.Vector3, baseVolume, maxDistance float32) (volume, pan float32) {
	distance := rl.Vector3Length(pos)
	if distance < maxDistance {
		volume = baseVolume * (1 - distance/maxDistance)
	}
	pan = 0.5
	if distance <= 0.001 {
		return volume, pan
	}

	dir := rl.Vector3Scale(pos, 1/distance)
	pan = 0.5 + rl.Vector3DotProduct(dir, l.Right)*0.5
	pan = float32(math.Max(0, math.Min(1, float64(pan))))

	if front := rl.Vector3DotProduct(dir, l.Forward); front < 0 {
		volume *= 0.7 + 0.3*float32(math.Abs(float64(front)))
	}
	return volume, pan
}

// Mixer owns the audio device and a set of named sounds.
type Mixer struct {
	mu          sync.Mutex
	sounds      map[string]rl.Sound
	Volume      float32
	MaxDistance float32
}

// Open initializes the audio device.
func Open() *Mixer {
	rl.InitAudioDevice()
	return &Mixer{
		sounds:      make(map[string]rl.Sound),
		Volume:      1,
		MaxDistance: 40,
	}
}

// Load reads a sound file and registers it under name.
func (m *Mixer) Load(name, path string) error {
	s := rl.LoadSound(path)
	if !rl.IsSoundValid(s) {
		return fmt.Errorf("load sound %q from %s: invalid audio data", name, path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sounds[name]; ok {
		rl.UnloadSound(old)
	}
	m.sounds[name] = s
	return nil
}

// Play plays name centered at full volume.
func (m *Mixer) Play(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sounds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotLoaded, name)
	}
	rl.SetSoundVolume(s, m.Volume)
	rl.SetSoundPan(s, 0.5)
	rl.PlaySound(s)
	return nil
}

// PlayAt plays name as if it came from pos.
func (m *Mixer) PlayAt(name string, l Listener, pos rl.Vector3) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sounds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotLoaded, name)
	}
	volume, pan := Spatialize(l, pos, m.Volume, m.MaxDistance)
	rl.SetSoundVolume(s, volume)
	rl.SetSoundPan(s, pan)
	rl.PlaySound(s)
	return nil
}

func (m *Mixer) Close() {
	m.mu.Lock()
	for _, s := range m.sounds {
		rl.UnloadSound(s)
	}
	m.sounds = nil
	m.mu.Unlock()
	rl.CloseAudioDevice()
}
