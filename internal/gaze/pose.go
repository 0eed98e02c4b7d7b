package gaze

import rl "github.com/gen2brain/raylib-go/raylib"

// HeadPoseTracker keeps the most recent world -> head transform.
// The zero value reports the identity pose until the first Update.
type HeadPoseTracker struct {
	pose  rl.Matrix
	valid bool
}

// Update replaces the stored pose. Called once per frame.
func (h *HeadPoseTracker) Update(pose rl.Matrix) {
	h.pose = pose
	h.valid = true
}

// Pose returns the latest head pose, or identity if none was ever supplied.
func (h *HeadPoseTracker) Pose() rl.Matrix {
	if !h.valid {
		return rl.MatrixIdentity()
	}
	return h.pose
}
