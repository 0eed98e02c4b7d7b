package headtrack

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertMatrixNear(t *testing.T, want, got rl.Matrix) {
	t.Helper()
	w := elements(want)
	g := elements(got)
	for i := range w {
		assert.InDelta(t, w[i], g[i], 1e-5, "element %d", i)
	}
}

func elements(m rl.Matrix) [16]float32 {
	return [16]float32{
		m.M0, m.M1, m.M2, m.M3, m.M4, m.M5, m.M6, m.M7,
		m.M8, m.M9, m.M10, m.M11, m.M12, m.M13, m.M14, m.M15,
	}
}

func TestZeroOrientationIsIdentity(t *testing.T) {
	var o Orientation

	assertMatrixNear(t, rl.MatrixIdentity(), o.Pose())
}

func TestForward(t *testing.T) {
	left := Orientation{Yaw: math.Pi / 2}.Forward()
	assert.InDelta(t, -1, left.X, 1e-6)
	assert.InDelta(t, 0, left.Z, 1e-6)

	up := Orientation{Pitch: math.Pi / 4}.Forward()
	assert.InDelta(t, math.Sqrt2/2, up.Y, 1e-6)
	assert.InDelta(t, -math.Sqrt2/2, up.Z, 1e-6)
}

func TestPoseMapsForwardToMinusZ(t *testing.T) {
	o := Orientation{Yaw: 0.7, Pitch: -0.3}

	p := rl.Vector3Transform(rl.Vector3Scale(o.Forward(), 5), o.Pose())

	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, -5, p.Z, 1e-5)
}

func TestTurnClampsPitchAndWrapsYaw(t *testing.T) {
	var o Orientation

	o.Turn(0, 10)
	assert.InDelta(t, MaxPitch, o.Pitch, 1e-6)
	o.Turn(0, -20)
	assert.InDelta(t, -MaxPitch, o.Pitch, 1e-6)

	o.Turn(3*math.Pi/2, 0)
	assert.InDelta(t, -math.Pi/2, o.Yaw, 1e-5)
}

func TestSweepSourceStaysInRange(t *testing.T) {
	s := NewSweepSource()

	for i := 0; i < 2000; i++ {
		s.HeadPose(1.0 / 60)
		cur := s.Current()
		assert.LessOrEqual(t, math.Abs(float64(cur.Yaw)), float64(s.YawAmplitude)+1e-6)
		assert.LessOrEqual(t, math.Abs(float64(cur.Pitch)), float64(s.PitchAmplitude)+1e-6)
	}
}

func TestSweepSourceStartsForward(t *testing.T) {
	s := NewSweepSource()

	assertMatrixNear(t, rl.MatrixIdentity(), s.HeadPose(0))
}
