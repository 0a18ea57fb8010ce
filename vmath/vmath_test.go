package vmath

import "testing"

func approxEq(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestIdentityMulVec(t *testing.T) {
	v := Vec4{1, 2, 3, 1}
	out := Identity().MulVec4(v)
	if out != v {
		t.Fatalf("identity matrix changed vector: got %+v want %+v", out, v)
	}
}

func TestTranslateThenMulVec(t *testing.T) {
	m := Translate(Vec3{X: 1, Y: 2, Z: 3})
	out := m.MulVec4(Vec4{X: 0, Y: 0, Z: 0, W: 1})
	want := Vec3{X: 1, Y: 2, Z: 3}
	if !approxEq(out.X, want.X, 1e-5) || !approxEq(out.Y, want.Y, 1e-5) || !approxEq(out.Z, want.Z, 1e-5) {
		t.Fatalf("got %+v want %+v", out, want)
	}
}

func TestQuatIdentityToMat4IsIdentity(t *testing.T) {
	m := IdentityQuat().ToMat4()
	id := Identity()
	for i := range m {
		if !approxEq(m[i], id[i], 1e-6) {
			t.Fatalf("identity quaternion did not produce identity matrix at %d: %v vs %v", i, m, id)
		}
	}
}

func TestTransformMat4ComposesTRS(t *testing.T) {
	tr := Transform{Translation: Vec3{X: 5}, Rotation: IdentityQuat(), Scale: Vec3{X: 1, Y: 1, Z: 1}}
	out := tr.Mat4().MulVec4(Vec4{X: 0, Y: 0, Z: 0, W: 1})
	if !approxEq(out.X, 5, 1e-5) {
		t.Fatalf("expected translated x=5, got %v", out.X)
	}
}

func TestPerspectiveClipRegionFlipsY(t *testing.T) {
	up := Perspective(1.0, 1.0, 0.1, 100, ClipRegionNegOneToOneYUp)
	down := Perspective(1.0, 1.0, 0.1, 100, ClipRegionNegOneToOneYDown)
	if !approxEq(up[5], -down[5], 1e-6) {
		t.Fatalf("expected Y-down convention to negate [5]: up=%v down=%v", up[5], down[5])
	}
}
