package gaze

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestHeadPoseDefaultsToIdentity(t *testing.T) {
	var h HeadPoseTracker

	assert.Equal(t, rl.MatrixIdentity(), h.Pose())
}

func TestHeadPoseUpdateReplaces(t *testing.T) {
	var h HeadPoseTracker
	first := rl.MatrixRotateY(0.4)
	second := rl.MatrixRotateX(-0.2)

	h.Update(first)
	assert.Equal(t, first, h.Pose())

	h.Update(second)
	assert.Equal(t, second, h.Pose())
}
