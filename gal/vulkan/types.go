// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// nativeRenderPass is the Vulkan-backed gal.RenderPass payload: one
// VkRenderPass compatible with every framebuffer created against the same
// color/depth format pair.
type nativeRenderPass struct {
	handle      vk.RenderPass
	colorFormat gal.ColorFormat
	depthFormat gal.DepthFormat
	hasDepth    bool
}

// nativeWindow is an offscreen render target: gal/vulkan has no surface or
// swapchain integration (presentation is the window package's concern, via
// glfw), so "window" here means a color+depth image pair and the single
// real command buffer recorded against it every frame.
type nativeWindow struct {
	width, height int

	colorImage  vk.Image
	colorView   vk.ImageView
	colorMemory *memBlock
	depthImage  vk.Image
	depthView   vk.ImageView
	depthMemory *memBlock

	renderPassH gal.RenderPass
	renderPass  *nativeRenderPass
	framebuffer vk.Framebuffer

	cmdBuffers []vk.CommandBuffer
	fences     []vk.Fence
	frameIndex int
	maxFrames  int

	recording     bool
	inRenderPass  bool
	lastClear     gal.ClearColor
	boundPipeline gal.Pipeline
	drawCount     int
}

type nativeShader struct {
	vertex   vk.ShaderModule
	fragment vk.ShaderModule
}

type nativeBuffer struct {
	handle vk.Buffer
	memory *memBlock
	size   uint64
	usage  gal.BufferUsage
}

// nativeUniformBuffer rings one VkBuffer per frame in flight, each
// persistently mapped, matching gal/noop's per-frame ring convention.
type nativeUniformBuffer struct {
	buffers  []vk.Buffer
	memories []*memBlock
	mapped   []uintptr
	size     uint64
	usage    gal.UniformBufferUsage
	ringSize int
}

type nativeTexture struct {
	image      vk.Image
	view       vk.ImageView
	memory     *memBlock
	width      int
	height     int
	format     gal.ColorFormat
	sampler    vk.Sampler
	ownsSampler bool
}

type nativeSampler struct {
	handle vk.Sampler
}

type nativeCubemap struct {
	faces   [6]nativeTexture
	sampler vk.Sampler
	format  gal.ColorFormat
}

type nativeDescriptorLayout struct {
	handle   vk.DescriptorSetLayout
	pool     vk.DescriptorPool
	bindings []gal.DescriptorBinding
}

type nativeDescriptorSet struct {
	handle vk.DescriptorSet
	layout gal.DescriptorLayout
}

type nativePipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
}

type nativeFrameBuffer struct {
	width, height int
	info          gal.FrameBufferCreateInfo

	renderPassH gal.RenderPass
	renderPass  *nativeRenderPass
	handle      vk.Framebuffer

	colorImages   []vk.Image
	colorViews    []vk.ImageView
	colorMemories []*memBlock
	colorHandles  []gal.Texture

	depthImage  vk.Image
	depthView   vk.ImageView
	depthMemory *memBlock

	recording bool
}
