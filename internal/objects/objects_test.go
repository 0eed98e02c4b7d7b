package objects

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"gazehunt/internal/engine"
	"gazehunt/internal/gaze"
)

type fakeSource struct {
	target  gaze.Target
	looking bool
}

func (f *fakeSource) Target() gaze.Target { return f.target }
func (f *fakeSource) IsLookingAt() bool   { return f.looking }

func TestCubeColorFollowsGaze(t *testing.T) {
	src := &fakeSource{target: gaze.NewTarget(12)}
	cube := NewCube(src, nil)

	cube.AdvanceFrame(engine.Frame{})
	assert.Equal(t, DefaultCubeColor, cube.Color())

	src.looking = true
	assert.Equal(t, DefaultCubeColor, cube.Color(), "color only changes on the next frame")

	cube.AdvanceFrame(engine.Frame{})
	assert.Equal(t, FoundCubeColor, cube.Color())
}

func TestCubeTracksTargetTransform(t *testing.T) {
	src := &fakeSource{target: gaze.NewTarget(12)}
	cube := NewCube(src, nil)
	assert.Equal(t, src.target.Model, cube.Transform())

	src.target.Model = rl.MatrixTranslate(3, 4, 5)
	cube.AdvanceFrame(engine.Frame{})

	assert.Equal(t, rl.MatrixTranslate(3, 4, 5), cube.Transform())
}

func TestCubeWithController(t *testing.T) {
	c := gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(1))
	cube := NewCube(c, nil)

	c.Frame(rl.MatrixIdentity())
	cube.AdvanceFrame(engine.Frame{})
	assert.Equal(t, FoundCubeColor, cube.Color())

	c.Frame(rl.MatrixRotateY(rl.Pi))
	cube.AdvanceFrame(engine.Frame{})
	assert.Equal(t, DefaultCubeColor, cube.Color())
}

func TestDrawWithoutSurfaceIsNoop(t *testing.T) {
	src := &fakeSource{target: gaze.NewTarget(12)}
	cube := NewCube(src, nil)
	floor := NewFloor(nil)

	cube.OnDrawEye(engine.Eye{})
	floor.OnDrawEye(engine.Eye{})
	cube.Unload()
	floor.Unload()
}

func TestFloorPosition(t *testing.T) {
	floor := NewFloor(nil)

	assert.Equal(t, rl.Vector3{X: 0, Y: -FloorDepth, Z: 0}, floor.Position())
}

func TestReticlePoint(t *testing.T) {
	r := NewReticle()
	cam := rl.Camera3D{
		Position: rl.Vector3{X: 1, Y: 0, Z: 0},
		Target:   rl.Vector3{X: 1, Y: 0, Z: -10},
		Up:       rl.Vector3{X: 0, Y: 1, Z: 0},
	}

	p := r.Point(cam)

	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.InDelta(t, -r.Distance, p.Z, 1e-6)
}

func TestLightingReleaseWithoutAcquire(t *testing.T) {
	l := NewLighting()

	l.Release()
	l.Apply(engine.Eye{})

	assert.Zero(t, l.refs)
}

var (
	_ engine.Drawable = (*Cube)(nil)
	_ engine.Drawable = (*Floor)(nil)
	_ engine.Drawable = (*Reticle)(nil)
)

func TestCubeVisibleIn(t *testing.T) {
	src := &fakeSource{target: gaze.NewTarget(12)}
	cube := NewCube(src, nil)
	proj := rl.MatrixPerspective(70*rl.Deg2rad, 16.0/9.0, 0.1, 100)

	ahead := engine.Eye{View: rl.MatrixIdentity(), Projection: proj}
	behind := engine.Eye{View: rl.MatrixRotateY(rl.Pi), Projection: proj}

	assert.True(t, cube.VisibleIn(ahead))
	assert.False(t, cube.VisibleIn(behind))
}
