package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Frustum is the six clip planes of an eye, used to skip objects it cannot see.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane is ax + by + cz + d = 0 with a unit normal pointing inward.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

// Frustum extracts the clip planes from the eye's view and projection
// (Gribb/Hartmann on projection * view).
func (e Eye) Frustum() Frustum {
	return FrustumFromMatrix(rl.MatrixMultiply(e.View, e.Projection))
}

// FrustumFromMatrix extracts planes from a combined view-projection matrix.
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	var f Frustum

	// row4 +/- row1..row3
	f.planes[0] = normalizePlane(vp.M3+vp.M0, vp.M7+vp.M4, vp.M11+vp.M8, vp.M15+vp.M12)
	f.planes[1] = normalizePlane(vp.M3-vp.M0, vp.M7-vp.M4, vp.M11-vp.M8, vp.M15-vp.M12)
	f.planes[2] = normalizePlane(vp.M3+vp.M1, vp.M7+vp.M5, vp.M11+vp.M9, vp.M15+vp.M13)
	f.planes[3] = normalizePlane(vp.M3-vp.M1, vp.M7-vp.M5, vp.M11-vp.M9, vp.M15-vp.M13)
	f.planes[4] = normalizePlane(vp.M3+vp.M2, vp.M7+vp.M6, vp.M11+vp.M10, vp.M15+vp.M14)
	f.planes[5] = normalizePlane(vp.M3-vp.M2, vp.M7-vp.M6, vp.M11-vp.M10, vp.M15-vp.M14)

	return f
}

func normalizePlane(a, b, c, d float32) Plane {
	n := rl.Vector3{X: a, Y: b, Z: c}
	length := rl.Vector3Length(n)
	if length == 0 {
		return Plane{Normal: n, Distance: d}
	}
	return Plane{Normal: rl.Vector3Scale(n, 1/length), Distance: d / length}
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.Normal, center)+p.Distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.Normal, point)+p.Distance < 0 {
			return false
		}
	}
	return true
}
