// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package opengl is the real OpenGL gal.Backend: an EGL-backed context
// bootstrap (gal/opengl/egl) plus direct GL 3.3-class calls (gal/opengl/gl)
// for the resource/frame/draw dispatch spec.md §4.5 describes. Like
// gal/vulkan it has no window-system integration of its own; CreateWindow
// allocates an offscreen FBO render target, the same synthetic-window
// model both sibling backends use so the full recording/resource lifecycle
// can be exercised headlessly.
package opengl

import (
	"fmt"
	"sync"

	"github.com/binmian/levikno/context"
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/egl"
	"github.com/binmian/levikno/gal/opengl/gl"
	"github.com/binmian/levikno/memorypool"
)

func init() {
	context.RegisterBackend(gal.BackendOpenGL, New)
}

var _ gal.Backend = (*Backend)(nil)

// Backend is the OpenGL gal.Backend implementation. Zero value is not
// ready for use; call New. Unlike gal/vulkan there is only ever one GL
// context per Backend (no per-window context), so RenderInit makes it
// current once and every window after that shares it.
type Backend struct {
	mu sync.Mutex

	eglCtx *egl.Context
	gl     gl.Context

	maxFramesInFlight int
	gammaCorrection   bool
	ready             bool

	activeFB *nativeFrameBuffer
	activeWindow gal.Window

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

// New constructs an OpenGL backend sized per cfg, the same memory-pool
// parameters createContext threads through every backend.
func New(cfg context.MemoryPoolConfig) (gal.Backend, error) {
	mode := cfg.Mode
	initial := cfg.InitialCounts[memorypool.KindWindow]
	overflow := cfg.OverflowCounts[memorypool.KindWindow]
	if initial == 0 {
		initial = 32
	}
	if overflow == 0 {
		overflow = 16
	}

	b := &Backend{
		windows:           gal.NewTable[gal.WindowMarker, nativeWindow](mode, initial, overflow),
		shaders:           gal.NewTable[gal.ShaderMarker, nativeShader](mode, initial, overflow),
		buffers:           gal.NewTable[gal.BufferMarker, nativeBuffer](mode, initial, overflow),
		uniformBuffers:    gal.NewTable[gal.UniformBufferMarker, nativeUniformBuffer](mode, initial, overflow),
		textures:          gal.NewTable[gal.TextureMarker, nativeTexture](mode, initial, overflow),
		samplers:          gal.NewTable[gal.SamplerMarker, nativeSampler](mode, initial, overflow),
		cubemaps:          gal.NewTable[gal.CubemapMarker, nativeCubemap](mode, initial, overflow),
		descriptorLayouts: gal.NewTable[gal.DescriptorLayoutMarker, nativeDescriptorLayout](mode, initial, overflow),
		descriptorSets:    gal.NewTable[gal.DescriptorSetMarker, nativeDescriptorSet](mode, initial, overflow),
		pipelines:         gal.NewTable[gal.PipelineMarker, nativePipeline](mode, initial, overflow),
		frameBuffers:      gal.NewTable[gal.FrameBufferMarker, nativeFrameBuffer](mode, initial, overflow),
		renderPasses:      gal.NewTable[gal.RenderPassMarker, nativeRenderPass](mode, initial, overflow),
	}
	return b, nil
}

func (b *Backend) Kind() gal.BackendKind { return gal.BackendOpenGL }

// GetPhysicalDevices reports a single synthetic device (spec.md §4.3): GL
// has no device-enumeration concept prior to context creation.
func (b *Backend) GetPhysicalDevices() []gal.PhysicalDevice {
	return []gal.PhysicalDevice{{Name: "OpenGL", IsDiscrete: true, Index: 0}}
}

func (b *Backend) CheckPhysicalDeviceSupport(gal.PhysicalDevice) bool { return true }

// RenderInit creates the EGL context, makes it current, and loads the GL
// function table against it; this is the only point at which a live GL
// context exists, since egl.NewContext's pbuffer surface is never resized
// or swapped (spec.md's two backends both model windows as offscreen
// targets rather than live swapchains/surfaces).
func (b *Backend) RenderInit(_ gal.PhysicalDevice, maxFramesInFlight int, gammaCorrection bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		return nil
	}
	if maxFramesInFlight <= 0 {
		maxFramesInFlight = 2
	}
	b.maxFramesInFlight = maxFramesInFlight
	b.gammaCorrection = gammaCorrection

	cfg := egl.DefaultContextConfig()
	ctx, err := egl.NewContext(cfg)
	if err != nil {
		return fmt.Errorf("opengl: egl context: %w", err)
	}
	if err := ctx.MakeCurrent(); err != nil {
		ctx.Destroy()
		return fmt.Errorf("opengl: eglMakeCurrent: %w", err)
	}
	if err := b.gl.Load(egl.GetGLProcAddress); err != nil {
		ctx.Destroy()
		return fmt.Errorf("opengl: loading GL functions: %w", err)
	}
	b.eglCtx = ctx
	b.ready = true
	return nil
}

func (b *Backend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ready {
		return
	}
	b.gl.Finish()
	if b.eglCtx != nil {
		b.eglCtx.Destroy()
	}
	b.ready = false
}

func (b *Backend) LiveObjectCounts() map[memorypool.Kind]int {
	return map[memorypool.Kind]int{
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

// FindSupportedDepthImageFormat mirrors gal/vulkan's unconditional-support
// stance: every depth format this codebase names maps to a GL internal
// format any GL 3.3-class driver accepts.
func (b *Backend) FindSupportedDepthImageFormat(candidates []gal.DepthFormat) (gal.DepthFormat, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[0], true
}
