// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import "github.com/binmian/levikno/gal"

// nativeWindow is the OpenGL-backed gal.Window payload. Like gal/vulkan,
// this backend has no surface/swapchain of its own: CreateWindow allocates
// an offscreen color+depth FBO as the window's render target, the same
// synthetic-window model gal/noop and gal/vulkan both use.
type nativeWindow struct {
	width, height int

	colorTexture uint32
	depthRenderbuffer uint32
	fbo          uint32
	vao          uint32

	renderPassH gal.RenderPass

	boundPipeline gal.Pipeline
	drawCount     int
	frameIndex    int
}

// nativeRenderPass carries no native object on this backend (GL has no
// VkRenderPass equivalent); it exists purely so WindowGetRenderPass and
// FrameBufferGetRenderPass can hand callers an opaque, format-tagged
// handle the way gal.RenderPass's contract expects.
type nativeRenderPass struct {
	colorFormat gal.ColorFormat
	depthFormat gal.DepthFormat
	hasDepth    bool
}

type nativeShader struct {
	program uint32
}

type nativePipeline struct {
	program uint32
	spec    gal.PipelineSpec
	layouts []gal.DescriptorLayout
}

type nativeBuffer struct {
	handle uint32
	target uint32
	usage  gal.BufferUsage
	size   uint64
	layout gal.VertexInputBinding
}

type nativeUniformBuffer struct {
	handle uint32
	usage  gal.UniformBufferUsage
	size   uint64
}

type nativeTexture struct {
	handle  uint32
	width   int
	height  int
	format  gal.ColorFormat
	sampler gal.SamplerCreateInfo
}

type nativeSampler struct {
	info gal.SamplerCreateInfo
}

type nativeCubemap struct {
	handle uint32
	format gal.ColorFormat
	info   gal.SamplerCreateInfo
}

type nativeDescriptorLayout struct {
	bindings []gal.DescriptorBinding
}

type nativeDescriptorSet struct {
	layout  gal.DescriptorLayout
	buffers map[uint32]gal.UniformBuffer
	images  map[uint32]struct {
		texture gal.Texture
		sampler gal.Sampler
	}
}

type nativeFrameBuffer struct {
	width, height int
	info          gal.FrameBufferCreateInfo

	fbo         uint32
	colorTextures []uint32
	colorHandles  []gal.Texture
	depthRenderbuffer uint32

	renderPassH gal.RenderPass
}
