package vmath

// Transform is a translation/rotation/scale node transform, the
// representation glTF nodes decompose into (spec.md §4.7 node traversal)
// when a node does not supply an explicit matrix.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// IdentityTransform returns a no-op TRS transform.
func IdentityTransform() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}, Rotation: IdentityQuat()}
}

// Mat4 composes the transform into translation * rotation * scale, the
// order glTF's spec mandates for node local transforms.
func (t Transform) Mat4() Mat4 {
	return Translate(t.Translation).Mul(t.Rotation.ToMat4()).Mul(Scale(t.Scale))
}

// Compose returns the transform equivalent to applying child after parent,
// the same parent.Mul(child) product model's Scene.WorldTransforms uses to
// accumulate world transforms.
func Compose(parent, child Mat4) Mat4 { return parent.Mul(child) }
