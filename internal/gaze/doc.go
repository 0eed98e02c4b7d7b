// Package gaze decides whether the viewer is looking at the target and moves the
// target somewhere else once it has been found.
//
// All matrices are raylib matrices (column-major, translation in M12..M14).
// rl.MatrixMultiply(a, b) applies a first and then b, so the mathematical product
// B·A is written rl.MatrixMultiply(a, b) throughout.
package gaze
