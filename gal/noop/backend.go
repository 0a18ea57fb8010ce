package noop

import (
	"sync"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/memorypool"
)

var _ gal.Backend = (*Backend)(nil)

// Backend is the noop gal.Backend implementation. Zero value is not ready
// for use; call New.
type Backend struct {
	mu sync.Mutex

	maxFramesInFlight int
	gammaCorrection   bool

	// activeFB is the framebuffer bracketed by the most recent
	// BeginFrameBuffer/EndFrameBuffer pair, if any; draw commands target it
	// instead of the window's own color/depth while it is set, since
	// RenderCmdDraw's signature only carries a Window for the recording
	// scope, not the render target.
	activeFB *nativeFrameBuffer

	windows           *gal.Table[gal.WindowMarker, nativeWindow]
	shaders           *gal.Table[gal.ShaderMarker, nativeShader]
	buffers           *gal.Table[gal.BufferMarker, nativeBuffer]
	uniformBuffers    *gal.Table[gal.UniformBufferMarker, nativeUniformBuffer]
	textures          *gal.Table[gal.TextureMarker, nativeTexture]
	samplers          *gal.Table[gal.SamplerMarker, nativeSampler]
	cubemaps          *gal.Table[gal.CubemapMarker, nativeCubemap]
	descriptorLayouts *gal.Table[gal.DescriptorLayoutMarker, nativeDescriptorLayout]
	descriptorSets    *gal.Table[gal.DescriptorSetMarker, nativeDescriptorSet]
	pipelines         *gal.Table[gal.PipelineMarker, nativePipeline]
	frameBuffers      *gal.Table[gal.FrameBufferMarker, nativeFrameBuffer]
	renderPasses      *gal.Table[gal.RenderPassMarker, nativeRenderPass]
}

// New constructs a noop backend. Pool sizing mirrors createContext's
// memory-pool parameters (spec.md §4.1); tests that want to exercise
// overflow (S6) pass small initial counts.
func New(mode memorypool.Mode, initialCount, overflowCount int) *Backend {
	return &Backend{
		windows:           gal.NewTable[gal.WindowMarker, nativeWindow](mode, initialCount, overflowCount),
		shaders:           gal.NewTable[gal.ShaderMarker, nativeShader](mode, initialCount, overflowCount),
		buffers:           gal.NewTable[gal.BufferMarker, nativeBuffer](mode, initialCount, overflowCount),
		uniformBuffers:    gal.NewTable[gal.UniformBufferMarker, nativeUniformBuffer](mode, initialCount, overflowCount),
		textures:          gal.NewTable[gal.TextureMarker, nativeTexture](mode, initialCount, overflowCount),
		samplers:          gal.NewTable[gal.SamplerMarker, nativeSampler](mode, initialCount, overflowCount),
		cubemaps:          gal.NewTable[gal.CubemapMarker, nativeCubemap](mode, initialCount, overflowCount),
		descriptorLayouts: gal.NewTable[gal.DescriptorLayoutMarker, nativeDescriptorLayout](mode, initialCount, overflowCount),
		descriptorSets:    gal.NewTable[gal.DescriptorSetMarker, nativeDescriptorSet](mode, initialCount, overflowCount),
		pipelines:         gal.NewTable[gal.PipelineMarker, nativePipeline](mode, initialCount, overflowCount),
		frameBuffers:      gal.NewTable[gal.FrameBufferMarker, nativeFrameBuffer](mode, initialCount, overflowCount),
		renderPasses:      gal.NewTable[gal.RenderPassMarker, nativeRenderPass](mode, initialCount, overflowCount),
	}
}

func (b *Backend) Kind() gal.BackendKind { return gal.BackendOpenGL } // arbitrary: noop has no native API

func (b *Backend) GetPhysicalDevices() []gal.PhysicalDevice {
	return []gal.PhysicalDevice{{Name: "noop-device", IsDiscrete: false, Index: 0}}
}

func (b *Backend) CheckPhysicalDeviceSupport(gal.PhysicalDevice) bool { return true }

func (b *Backend) RenderInit(_ gal.PhysicalDevice, maxFramesInFlight int, gammaCorrection bool) error {
	if maxFramesInFlight <= 0 {
		maxFramesInFlight = 2
	}
	b.maxFramesInFlight = maxFramesInFlight
	b.gammaCorrection = gammaCorrection
	return nil
}

func (b *Backend) Shutdown() {}

func (b *Backend) LiveObjectCounts() kindCounts {
	return kindCounts{
		memorypool.KindWindow:           b.windows.Live(),
		memorypool.KindShader:           b.shaders.Live(),
		memorypool.KindBuffer:           b.buffers.Live(),
		memorypool.KindUniformBuffer:    b.uniformBuffers.Live(),
		memorypool.KindTexture:          b.textures.Live(),
		memorypool.KindSampler:          b.samplers.Live(),
		memorypool.KindCubemap:          b.cubemaps.Live(),
		memorypool.KindDescriptorLayout: b.descriptorLayouts.Live(),
		memorypool.KindDescriptorSet:    b.descriptorSets.Live(),
		memorypool.KindPipeline:         b.pipelines.Live(),
		memorypool.KindFrameBuffer:      b.frameBuffers.Live(),
		memorypool.KindRenderPass:       b.renderPasses.Live(),
	}
}
