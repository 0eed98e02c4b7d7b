package headtrack

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SweepSource pans the head back and forth on its own. Used for unattended
// demo runs and for exercising the game loop without input hardware.
type SweepSource struct {
	YawAmplitude   float32 // radians
	PitchAmplitude float32 // radians
	Period         float32 // seconds for a full yaw cycle

	elapsed float32
	current Orientation
}

func NewSweepSource() *SweepSource {
	return &SweepSource{
		YawAmplitude:   math.Pi,
		PitchAmplitude: 0.5,
		Period:         20,
	}
}

func (s *SweepSource) HeadPose(deltaTime float32) rl.Matrix {
	s.elapsed += deltaTime
	phase := 2 * math.Pi * float64(s.elapsed/s.Period)
	s.current = Orientation{
		Yaw:   s.YawAmplitude * float32(math.Sin(phase)),
		Pitch: clamp(s.PitchAmplitude*float32(math.Sin(3*phase)), -MaxPitch, MaxPitch),
	}
	return s.current.Pose()
}

// Current is the orientation produced by the last HeadPose call.
func (s *SweepSource) Current() Orientation {
	return s.current
}
