package gal

import (
	"time"

	"github.com/binmian/levikno/memorypool"
)

// BackendKind identifies which of the two supported graphics backends is
// active (spec.md: "support for graphics APIs beyond the two named" is a
// non-goal, so this is a closed, two-variant enum rather than an open
// registry — per the Design Notes, a closed backend set favors a tagged
// enum / interface-of-two over a dyn-trait-style open registry).
type BackendKind int

const (
	BackendVulkan BackendKind = iota
	BackendOpenGL
)

func (k BackendKind) String() string {
	if k == BackendVulkan {
		return "Vulkan"
	}
	return "OpenGL"
}

// PhysicalDevice describes one GPU candidate returned by GetPhysicalDevices.
// On OpenGL the backend reports a single synthetic device (spec.md §4.3).
type PhysicalDevice struct {
	Name       string
	IsDiscrete bool
	Index      int
}

// Backend is the ~50-function dispatch table spec.md §4.3 describes,
// populated once by the chosen backend's RenderInit and never swapped
// thereafter. Two concrete implementations exist: gal/vulkan and
// gal/opengl; gal/noop provides a third for tests. This mirrors the
// teacher's hal.Backend / hal.Device split, collapsed into one interface
// because spec.md's Context dispatches through a single vtable rather than
// wgpu's Instance/Adapter/Device/Queue chain.
type Backend interface {
	Kind() BackendKind

	// --- device selection & init (spec.md §4.3) ---

	GetPhysicalDevices() []PhysicalDevice
	CheckPhysicalDeviceSupport(dev PhysicalDevice) bool
	RenderInit(dev PhysicalDevice, maxFramesInFlight int, gammaCorrection bool) error

	// --- windows & their implicit swapchain/default renderpass ---

	CreateWindow(info WindowCreateInfo) (Window, error)
	DestroyWindow(w Window)
	WindowGetRenderPass(w Window) RenderPass
	WindowFramebufferIsZeroSized(w Window) bool

	// --- frame lifecycle (spec.md §4.3 "Frames-in-flight model") ---

	BeginNextFrame(w Window) error
	DrawSubmit(w Window) error

	// --- command recording (spec.md §4.3 "Command recording") ---

	BeginCommandRecording(w Window) error
	EndCommandRecording(w Window) error
	BeginRenderPass(w Window, rp RenderPass, clear ClearColor) error
	EndRenderPass(w Window) error
	BeginFrameBuffer(fb FrameBuffer) error
	EndFrameBuffer(fb FrameBuffer) error

	RenderCmdSetViewport(w Window, vp Viewport)
	RenderCmdSetScissor(w Window, sc Scissor)
	RenderCmdBindPipeline(w Window, p Pipeline)
	RenderCmdBindDescriptorSets(w Window, sets []DescriptorSet)
	RenderCmdBindVertexBuffer(w Window, b Buffer, binding uint32)
	RenderCmdBindIndexBuffer(w Window, b Buffer)
	RenderCmdDraw(w Window, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	RenderCmdDrawIndexed(w Window, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	// --- shaders & pipelines ---

	CreateShader(src ShaderSource) (Shader, error)
	DestroyShader(s Shader)
	CreatePipeline(info PipelineCreateInfo) (Pipeline, error)
	DestroyPipeline(p Pipeline)

	// --- buffers ---

	CreateBuffer(info BufferCreateInfo) (Buffer, error)
	DestroyBuffer(b Buffer)
	BufferUpdateData(b Buffer, data []byte, offset uint64) error
	BufferResize(b Buffer, size uint64) error

	// --- uniform buffers ---

	CreateUniformBuffer(info UniformBufferCreateInfo) (UniformBuffer, error)
	DestroyUniformBuffer(u UniformBuffer)
	UpdateUniformBufferData(w Window, u UniformBuffer, data []byte, size uint64) error

	// --- textures, samplers, cubemaps ---

	CreateTexture(info TextureCreateInfo) (Texture, error)
	DestroyTexture(t Texture)
	CreateTextureSampler(info SamplerCreateInfo) (Sampler, error)
	DestroySampler(s Sampler)
	CreateCubemap(info CubemapCreateInfo) (Cubemap, error)
	DestroyCubemap(c Cubemap)

	// --- descriptors ---

	CreateDescriptorLayout(info DescriptorLayoutCreateInfo) (DescriptorLayout, error)
	DestroyDescriptorLayout(l DescriptorLayout)
	CreateDescriptorSet(info DescriptorSetCreateInfo) (DescriptorSet, error)
	UpdateDescriptorSetData(s DescriptorSet, updates []DescriptorSetUpdate) error

	// --- framebuffers ---

	CreateFrameBuffer(info FrameBufferCreateInfo) (FrameBuffer, error)
	DestroyFrameBuffer(fb FrameBuffer)
	FrameBufferResize(fb FrameBuffer, width, height int) error
	FrameBufferGetRenderPass(fb FrameBuffer) RenderPass
	FrameBufferColorTexture(fb FrameBuffer, index int) Texture

	// --- misc queries ---

	FindSupportedDepthImageFormat(candidates []DepthFormat) (DepthFormat, bool)

	// Shutdown releases every backend-owned shared resource not already
	// freed by explicit destroy* calls (debug messenger, VMA allocator,
	// hidden bootstrap context, ...).
	Shutdown()

	// LiveObjectCounts reports per-type outstanding object counts so
	// terminateContext can assert spec.md I7 (all counts zero at teardown)
	// without the Context needing to know each backend's concrete native
	// payload types.
	LiveObjectCounts() map[memorypool.Kind]int
}

// UptimeClock is implemented by Context to expose the context-creation
// timer SPEC_FULL.md §D.2 carries forward from the original.
type UptimeClock interface {
	Uptime() time.Duration
}
