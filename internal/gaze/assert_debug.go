//go:build gazedebug

package gaze

import "fmt"

func assertPositiveDistance(d float32) {
	if !(d > 0) {
		panic(fmt.Sprintf("gaze: target distance must be positive, got %v", d))
	}
}
