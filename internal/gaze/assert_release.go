//go:build !gazedebug

package gaze

func assertPositiveDistance(float32) {}
