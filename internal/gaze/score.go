package gaze

import "gazehunt/internal/engine"

// ScoreTracker counts successful finds. It only ever goes up.
type ScoreTracker struct {
	score int

	// OnChanged receives the new score after every increment.
	OnChanged engine.Event[int]
}

// Increment adds one and returns the new score.
func (s *ScoreTracker) Increment() int {
	s.score++
	s.OnChanged.Invoke(s.score)
	return s.score
}

// Score returns the number of finds so far.
func (s *ScoreTracker) Score() int {
	return s.score
}
