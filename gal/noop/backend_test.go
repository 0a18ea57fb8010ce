package noop

import (
	"math"
	"testing"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/memorypool"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := New(memorypool.Pooled, 8, 8)
	if err := b.RenderInit(b.GetPhysicalDevices()[0], 2, false); err != nil {
		t.Fatalf("RenderInit: %v", err)
	}
	return b
}

func TestClearColor(t *testing.T) {
	b := newTestBackend(t)
	w, err := b.CreateWindow(gal.WindowCreateInfo{Width: 4, Height: 4, Title: "t"})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	defer b.DestroyWindow(w)

	if err := b.BeginCommandRecording(w); err != nil {
		t.Fatalf("BeginCommandRecording: %v", err)
	}
	rp := b.WindowGetRenderPass(w)
	clear := gal.ClearColor{R: 0.2, G: 0.4, B: 0.6, A: 1}
	if err := b.BeginRenderPass(w, rp, clear); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}
	if err := b.EndRenderPass(w); err != nil {
		t.Fatalf("EndRenderPass: %v", err)
	}
	if err := b.EndCommandRecording(w); err != nil {
		t.Fatalf("EndCommandRecording: %v", err)
	}

	px, ok := b.ReadPixel(w, 2, 2)
	if !ok {
		t.Fatal("ReadPixel: not ok")
	}
	if px[0] != clear.R || px[1] != clear.G || px[2] != clear.B || px[3] != clear.A {
		t.Fatalf("expected clear color %+v, got %+v", clear, px)
	}
}

func TestTexturedQuadDraw(t *testing.T) {
	b := newTestBackend(t)
	w, err := b.CreateWindow(gal.WindowCreateInfo{Width: 8, Height: 8, Title: "t"})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	defer b.DestroyWindow(w)

	shader, err := b.CreateShader(gal.ShaderSource{VertexSrc: "v", FragmentSrc: "f"})
	if err != nil {
		t.Fatalf("CreateShader: %v", err)
	}
	defer b.DestroyShader(shader)

	spec := gal.DefaultPipelineSpec()
	spec.VertexBindings = []gal.VertexBinding{{Binding: 0, Stride: 5 * 4, PerVertex: true}}
	spec.VertexAttributes = []gal.VertexAttribute{
		{Binding: 0, Location: 0, Offset: 0, Format: gal.VertexAttributeVec3F32},
		{Binding: 0, Location: 2, Offset: 3 * 4, Format: gal.VertexAttributeVec2F32},
	}
	pipeline, err := b.CreatePipeline(gal.PipelineCreateInfo{Shader: shader, Spec: spec, RenderPass: b.WindowGetRenderPass(w)})
	if err != nil {
		t.Fatalf("CreatePipeline: %v", err)
	}
	defer b.DestroyPipeline(pipeline)

	// Two triangles forming a full-screen quad in NDC, with UV matching
	// screen position so a solid-red texture reads back as solid red.
	vdata := encodeQuadVertices(t)
	vbuf, err := b.CreateBuffer(gal.BufferCreateInfo{
		Usage: gal.BufferUsageVertex,
		Layout: gal.VertexInputBinding{
			Bindings:   spec.VertexBindings,
			Attributes: spec.VertexAttributes,
		},
		VertexData: vdata,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer b.DestroyBuffer(vbuf)

	tex, err := b.CreateTexture(gal.TextureCreateInfo{
		Width: 1, Height: 1, Channels: 4,
		Pixels: []byte{255, 0, 0, 255},
		Format: gal.ColorFormatRGBA8,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	defer b.DestroyTexture(tex)

	layout, err := b.CreateDescriptorLayout(gal.DescriptorLayoutCreateInfo{
		Bindings: []gal.DescriptorBinding{{Binding: 0, Kind: gal.DescriptorCombinedImageSampler, Count: 1, Stage: gal.ShaderStageFragment, MaxAllocs: 1}},
		MaxSets:  1,
	})
	if err != nil {
		t.Fatalf("CreateDescriptorLayout: %v", err)
	}
	defer b.DestroyDescriptorLayout(layout)

	set, err := b.CreateDescriptorSet(gal.DescriptorSetCreateInfo{Layout: layout})
	if err != nil {
		t.Fatalf("CreateDescriptorSet: %v", err)
	}
	if err := b.UpdateDescriptorSetData(set, []gal.DescriptorSetUpdate{
		{Kind: gal.DescriptorCombinedImageSampler, Image: &gal.ImageBindingUpdate{Binding: 0, Texture: tex}},
	}); err != nil {
		t.Fatalf("UpdateDescriptorSetData: %v", err)
	}

	if err := b.BeginCommandRecording(w); err != nil {
		t.Fatalf("BeginCommandRecording: %v", err)
	}
	rp := b.WindowGetRenderPass(w)
	if err := b.BeginRenderPass(w, rp, gal.ClearColor{}); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}
	b.RenderCmdBindPipeline(w, pipeline)
	b.RenderCmdBindDescriptorSets(w, []gal.DescriptorSet{set})
	b.RenderCmdBindVertexBuffer(w, vbuf, 0)
	b.RenderCmdDraw(w, 6, 1, 0, 0)
	if err := b.EndRenderPass(w); err != nil {
		t.Fatalf("EndRenderPass: %v", err)
	}
	if err := b.EndCommandRecording(w); err != nil {
		t.Fatalf("EndCommandRecording: %v", err)
	}

	px, ok := b.ReadPixel(w, 4, 4)
	if !ok {
		t.Fatal("ReadPixel: not ok")
	}
	if px[0] < 0.9 || px[1] > 0.1 || px[2] > 0.1 {
		t.Fatalf("expected center pixel to read back red, got %+v", px)
	}
	if b.DrawCallCount(w) != 1 {
		t.Fatalf("expected 1 draw call, got %d", b.DrawCallCount(w))
	}
}

// encodeQuadVertices builds a 6-vertex (2-triangle) vec3 pos + vec2 uv
// full-screen quad, little-endian float32, matching the layout
// TestTexturedQuadDraw declares.
func encodeQuadVertices(t *testing.T) []byte {
	t.Helper()
	type vtx struct {
		x, y, z, u, v float32
	}
	quad := []vtx{
		{-1, -1, 0, 0, 1},
		{1, -1, 0, 1, 1},
		{1, 1, 0, 1, 0},
		{-1, -1, 0, 0, 1},
		{1, 1, 0, 1, 0},
		{-1, 1, 0, 0, 0},
	}
	out := make([]byte, 0, len(quad)*8*4)
	for _, v := range quad {
		out = appendF32(out, v.x, v.y, v.z, v.u, v.v)
	}
	return out
}

func appendF32(dst []byte, vs ...float32) []byte {
	for _, v := range vs {
		bits := math.Float32bits(v)
		dst = append(dst, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return dst
}
