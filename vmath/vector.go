// Package vmath implements the math kernel the rest of Levikno is built on:
// vectors, matrices, quaternions, and per-clip-region projections. It is
// hand-rolled rather than built on a general linear-algebra dependency,
// matching both grounding examples (gviegas/scene's linear package and
// gazed/vu's math/lin), which do the same rather than reaching for
// go-gl/mathgl or gonum — the kernel is small, allocation-free, and tuned
// for being inlined into hot render-loop code, which a general-purpose
// library would not guarantee.
package vmath

import "math"

// Vec2 is a 2-component float32 vector.
type Vec2 struct{ X, Y float32 }

// Vec3 is a 3-component float32 vector.
type Vec3 struct{ X, Y, Z float32 }

// Vec4 is a 4-component float32 vector.
type Vec4 struct{ X, Y, Z, W float32 }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Vec3From4 promotes a Vec3 to a Vec4 with the given w, mirroring the
// frequent pattern of lifting a direction/point before a matrix multiply.
func Vec3From4(v Vec3, w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }
