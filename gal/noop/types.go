// Package noop implements a readback-capable, in-memory gal.Backend used
// by this module's own tests (spec.md §4.3's property tests P1-P9 and
// end-to-end scenarios S1-S6 call for "a test backend" / "a readback-
// capable test backend"). It mirrors the role the teacher's hal/noop
// backend plays for wgpu's own integration tests: always available, no
// driver dependency, but implementing the full dispatch contract rather
// than discarding calls.
//
// Unlike a real backend it does not compile or execute shader code — a
// Shader's source is opaque to it the same way it is to the real backends,
// so draws are rasterized with a fixed convention: vertex attribute
// location 0 is position (vec2/vec3), location 1 (if present) is an RGBA
// color, location 2 (if present) is a UV pair sampled against the texture
// bound at descriptor binding 0. This is enough to drive the pixel-level
// assertions S1-S4 describe without needing a real GPU or shader compiler.
package noop

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/memorypool"
)

type nativeWindow struct {
	width, height int
	title         string
	vsync         bool
	frameIndex    int
	maxFrames     int
	renderPass    gal.RenderPass
	color         *framebufferImage
	depth         []float32
	recording     bool
	inRenderPass  bool
	boundPipeline gal.Pipeline
	boundSets     []gal.DescriptorSet
	boundVertex   map[uint32]gal.Buffer
	boundIndex    gal.Buffer
	viewport      gal.Viewport
	scissor       gal.Scissor
	lastClear     gal.ClearColor
	drawCount     int
	destroyed     bool
}

type framebufferImage struct {
	width, height int
	pixels        [][4]float32 // linear RGBA, row-major, origin top-left
}

func newFramebufferImage(w, h int) *framebufferImage {
	return &framebufferImage{width: w, height: h, pixels: make([][4]float32, w*h)}
}

func (img *framebufferImage) at(x, y int) [4]float32 { return img.pixels[y*img.width+x] }
func (img *framebufferImage) set(x, y int, c [4]float32) { img.pixels[y*img.width+x] = c }

type nativeShader struct {
	src gal.ShaderSource
}

type nativeBuffer struct {
	usage      gal.BufferUsage
	vertexData []byte
	indexData  []uint32
	layout     gal.VertexInputBinding
}

type nativeUniformBuffer struct {
	usage       gal.UniformBufferUsage
	ringSize    int
	data        [][]byte // one slot per frame in flight
	lastWritten int
}

type nativeTexture struct {
	width, height int
	channels      int
	pixels        []byte
	format        gal.ColorFormat
	sampler       gal.Sampler
}

type nativeSampler struct {
	info gal.SamplerCreateInfo
}

type nativeCubemap struct {
	faces  [6]nativeTexture
	format gal.ColorFormat
}

type nativeDescriptorLayout struct {
	bindings []gal.DescriptorBinding
	maxSets  uint32
	issued   uint32
}

type nativeDescriptorSet struct {
	layout  gal.DescriptorLayout
	buffers map[uint32]gal.BufferBindingUpdate
	images  map[uint32]gal.ImageBindingUpdate
}

type nativePipeline struct {
	info gal.PipelineCreateInfo
}

type nativeFrameBuffer struct {
	width, height int
	info          gal.FrameBufferCreateInfo
	renderPass    gal.RenderPass
	colors        []*framebufferImage
	colorHandles  []gal.Texture
	depth         []float32
	recording     bool
}

type nativeRenderPass struct {
	colorFormat gal.ColorFormat
	depthFormat gal.DepthFormat
	hasDepth    bool
}

// kindCounts is a convenience alias used by Backend.LiveObjectCounts.
type kindCounts = map[memorypool.Kind]int
