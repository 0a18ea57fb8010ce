package gal

import "testing"

func TestValidateBufferRejectsMissingUsage(t *testing.T) {
	err := ValidateBuffer(BufferCreateInfo{
		Layout:     VertexInputBinding{Bindings: []VertexBinding{{}}, Attributes: []VertexAttribute{{Format: VertexAttributeVec3F32}}},
		VertexData: []byte{1},
	})
	if ResultOf(err) != Failure {
		t.Fatalf("expected Failure for buffer without vertex/index usage, got %v", err)
	}
}

func TestValidateBufferAllowsNilDataWhenDynamic(t *testing.T) {
	err := ValidateBuffer(BufferCreateInfo{
		Usage:  BufferUsageVertex | BufferUsageDynamic,
		Layout: VertexInputBinding{Bindings: []VertexBinding{{}}, Attributes: []VertexAttribute{{Format: VertexAttributeVec3F32}}},
	})
	if err != nil {
		t.Fatalf("expected dynamic buffer with nil data to validate, got %v", err)
	}
}

func TestValidateCubemapEnforcesEqualFaceDims(t *testing.T) {
	faces := [6]TextureCreateInfo{}
	for i := range faces {
		faces[i] = TextureCreateInfo{Width: 4, Height: 4, Channels: 4, Pixels: make([]byte, 64)}
	}
	faces[3].Width = 8
	err := ValidateCubemap(CubemapCreateInfo{Faces: faces})
	if ResultOf(err) != Failure {
		t.Fatalf("expected mismatched cubemap face dimensions to fail validation")
	}
}

func TestValidateFrameBufferRequiresColorAttachment(t *testing.T) {
	err := ValidateFrameBuffer(FrameBufferCreateInfo{})
	if ResultOf(err) != Failure {
		t.Fatalf("expected empty framebuffer to fail validation")
	}
}

func TestFindSupportedDepthImageFormatHonorsOrder(t *testing.T) {
	candidates := []DepthFormat{DepthFormatD32, DepthFormatD24S8, DepthFormatD16}
	supported := func(f DepthFormat) bool { return f == DepthFormatD24S8 || f == DepthFormatD16 }
	got, ok := FindSupportedDepthImageFormat(candidates, supported)
	if !ok || got != DepthFormatD24S8 {
		t.Fatalf("expected first supported candidate D24S8, got %v ok=%v", got, ok)
	}
	// idempotent
	got2, ok2 := FindSupportedDepthImageFormat(candidates, supported)
	if got2 != got || ok2 != ok {
		t.Fatalf("FindSupportedDepthImageFormat not idempotent")
	}
}

func TestVertexAttributeComponents(t *testing.T) {
	if VertexAttributeVec3F32.Components() != 3 {
		t.Fatalf("expected 3 components for Vec3F32")
	}
	if !VertexAttributeVec4U8Norm.Normalized() {
		t.Fatalf("expected Vec4U8Norm to be normalized")
	}
}
