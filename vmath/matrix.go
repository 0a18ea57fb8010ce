package vmath

// Mat4 is a column-major 4x4 matrix of float32, matching the memory layout
// both Vulkan and OpenGL expect for uniform upload without transposition.
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// at returns the element at column c, row r (column-major).
func (m Mat4) at(c, r int) float32 { return m[c*4+r] }

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(k, r) * o.at(c, k)
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m.at(0, 0)*v.X + m.at(1, 0)*v.Y + m.at(2, 0)*v.Z + m.at(3, 0)*v.W,
		m.at(0, 1)*v.X + m.at(1, 1)*v.Y + m.at(2, 1)*v.Z + m.at(3, 1)*v.W,
		m.at(0, 2)*v.X + m.at(1, 2)*v.Y + m.at(2, 2)*v.Z + m.at(3, 2)*v.W,
		m.at(0, 3)*v.X + m.at(1, 3)*v.Y + m.at(2, 3)*v.Z + m.at(3, 3)*v.W,
	}
}

// Translate returns the identity matrix translated by t.
func Translate(t Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// Scale returns the identity matrix scaled by s on each axis.
func Scale(s Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	return m
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}
