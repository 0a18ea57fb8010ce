package vmath

import "math"

// ClipRegion identifies one of the four depth-range/Y-orientation
// conventions projection matrices must target, selected per createContext's
// matrix clip-region override (spec.md §4.1) or left "api-specific" so the
// active GAL backend picks the convention its native pipeline expects
// (Vulkan: depth 0..1, Y-down NDC; OpenGL: depth -1..1, Y-up NDC).
type ClipRegion int

const (
	// ClipRegionNegOneToOneYUp is OpenGL's native convention: depth in
	// [-1,1], +Y up in NDC.
	ClipRegionNegOneToOneYUp ClipRegion = iota
	// ClipRegionNegOneToOneYDown: depth in [-1,1], +Y down in NDC.
	ClipRegionNegOneToOneYDown
	// ClipRegionZeroToOneYUp: depth in [0,1], +Y up in NDC.
	ClipRegionZeroToOneYUp
	// ClipRegionZeroToOneYDown is Vulkan's native convention: depth in
	// [0,1], +Y down in NDC.
	ClipRegionZeroToOneYDown
)

// Perspective builds a right-handed perspective projection for fovYRadians,
// aspect ratio, and near/far planes, in the given clip-region convention.
func Perspective(fovYRadians, aspect, near, far float32, region ClipRegion) Mat4 {
	f := float32(1 / math.Tan(float64(fovYRadians)/2))
	m := Mat4{}
	m[0] = f / aspect
	m[5] = f
	m[11] = -1

	switch region {
	case ClipRegionZeroToOneYUp, ClipRegionZeroToOneYDown:
		m[10] = far / (near - far)
		m[14] = (far * near) / (near - far)
	default: // -1..1
		m[10] = (far + near) / (near - far)
		m[14] = (2 * far * near) / (near - far)
	}

	if region == ClipRegionNegOneToOneYDown || region == ClipRegionZeroToOneYDown {
		m[5] = -m[5]
	}
	return m
}

// Orthographic builds an orthographic projection over the given box, in the
// given clip-region convention.
func Orthographic(left, right, bottom, top, near, far float32, region ClipRegion) Mat4 {
	m := Identity()
	m[0] = 2 / (right - left)
	m[12] = -(right + left) / (right - left)

	m[5] = 2 / (top - bottom)
	m[13] = -(top + bottom) / (top - bottom)

	switch region {
	case ClipRegionZeroToOneYUp, ClipRegionZeroToOneYDown:
		m[10] = -1 / (far - near)
		m[14] = -near / (far - near)
	default:
		m[10] = -2 / (far - near)
		m[14] = -(far + near) / (far - near)
	}

	if region == ClipRegionNegOneToOneYDown || region == ClipRegionZeroToOneYDown {
		m[5] = -m[5]
	}
	return m
}

// LookAt builds a right-handed view matrix placing the camera at eye,
// looking toward center, with up defining the camera's vertical axis. The
// clip-region's Y orientation is handled entirely by the projection matrix,
// so LookAt itself is convention-independent.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}
