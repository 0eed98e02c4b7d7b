package gaze

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// scriptedRand replays fixed draws, wrapping around when exhausted.
type scriptedRand struct {
	draws []float64
	next  int
}

func (s *scriptedRand) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

// lookingAt builds a rotation-only head pose whose forward axis points at p.
func lookingAt(p rl.Vector3) rl.Matrix {
	return rl.MatrixLookAt(rl.Vector3Zero(), p, rl.Vector3{X: 0, Y: 1, Z: 0})
}

func targetAt(p rl.Vector3, distance float32) Target {
	return Target{Model: rl.MatrixTranslate(p.X, p.Y, p.Z), Distance: distance}
}
