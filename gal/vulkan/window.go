// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// CreateWindow allocates an offscreen color+depth render target and its
// default render pass/framebuffer, plus one command buffer and fence per
// frame in flight, the Vulkan counterpart to gal/noop's synthetic window.
func (b *Backend) CreateWindow(info gal.WindowCreateInfo) (gal.Window, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return gal.Window{}, gal.Err(gal.Failure, "vulkan: window size must be positive, got %dx%d", info.Width, info.Height)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	rpHandle, err := b.createRenderPassLocked(gal.ColorFormatRGBA8, gal.DepthFormatD32, true)
	if err != nil {
		return gal.Window{}, err
	}
	rp, _ := b.renderPasses.Get(rpHandle)

	colorImage, colorView, colorMem, err := b.createImage2DLocked(uint32(info.Width), uint32(info.Height),
		vkFormat(gal.ColorFormatRGBA8), vkImageUsageColorAttachmentBit|vkImageUsageSampledBit|vkImageUsageTransferSrcBit, vkImageAspectColorBit)
	if err != nil {
		b.destroyRenderPassLocked(rpHandle)
		return gal.Window{}, err
	}
	depthImage, depthView, depthMem, err := b.createImage2DLocked(uint32(info.Width), uint32(info.Height),
		vkDepthFormat(gal.DepthFormatD32), vkImageUsageDepthStencilAttachmentBit, vkImageAspectDepthBit)
	if err != nil {
		b.destroyImage2DLocked(colorImage, colorView, colorMem)
		b.destroyRenderPassLocked(rpHandle)
		return gal.Window{}, err
	}

	attachments := []vk.ImageView{colorView, depthView}
	fbInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      rp.handle,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    sliceHead(attachments),
		Width:           uint32(info.Width),
		Height:          uint32(info.Height),
		Layers:          1,
	}
	var fb vk.Framebuffer
	if res := b.cmds.CreateFramebuffer(b.device, &fbInfo, &fb); !res.IsSuccess() {
		b.destroyImage2DLocked(depthImage, depthView, depthMem)
		b.destroyImage2DLocked(colorImage, colorView, colorMem)
		b.destroyRenderPassLocked(rpHandle)
		return gal.Window{}, fmt.Errorf("vulkan: vkCreateFramebuffer: %w", res)
	}

	maxFrames := b.maxFramesInFlight
	if maxFrames <= 0 {
		maxFrames = 2
	}

	cmdBufInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        b.commandPool,
		Level:              vkCommandBufferLevelPrimary,
		CommandBufferCount: uint32(maxFrames),
	}
	cmdBuffers := make([]vk.CommandBuffer, maxFrames)
	if res := b.cmds.AllocateCommandBuffers(b.device, &cmdBufInfo, &cmdBuffers[0]); !res.IsSuccess() {
		b.cmds.DestroyFramebuffer(b.device, fb)
		b.destroyImage2DLocked(depthImage, depthView, depthMem)
		b.destroyImage2DLocked(colorImage, colorView, colorMem)
		b.destroyRenderPassLocked(rpHandle)
		return gal.Window{}, fmt.Errorf("vulkan: vkAllocateCommandBuffers: %w", res)
	}

	fences := make([]vk.Fence, maxFrames)
	fenceInfo := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo, Flags: vkFenceCreateSignaledBit}
	for i := range fences {
		if res := b.cmds.CreateFence(b.device, &fenceInfo, &fences[i]); !res.IsSuccess() {
			return gal.Window{}, fmt.Errorf("vulkan: vkCreateFence: %w", res)
		}
	}

	h, _, err := b.windows.Create(false, func(w *nativeWindow) {
		w.width, w.height = info.Width, info.Height
		w.colorImage, w.colorView, w.colorMemory = colorImage, colorView, colorMem
		w.depthImage, w.depthView, w.depthMemory = depthImage, depthView, depthMem
		w.renderPassH = rpHandle
		w.renderPass = rp
		w.framebuffer = fb
		w.cmdBuffers = cmdBuffers
		w.fences = fences
		w.maxFrames = maxFrames
	})
	if err != nil {
		return gal.Window{}, err
	}
	return h, nil
}

func (b *Backend) DestroyWindow(wh gal.Window) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	b.cmds.DeviceWaitIdle(b.device)
	for _, f := range w.fences {
		b.cmds.DestroyFence(b.device, f)
	}
	if len(w.cmdBuffers) > 0 {
		b.cmds.FreeCommandBuffers(b.device, b.commandPool, uint32(len(w.cmdBuffers)), &w.cmdBuffers[0])
	}
	b.cmds.DestroyFramebuffer(b.device, w.framebuffer)
	b.destroyImage2DLocked(w.depthImage, w.depthView, w.depthMemory)
	b.destroyImage2DLocked(w.colorImage, w.colorView, w.colorMemory)
	b.destroyRenderPassLocked(w.renderPassH)
	b.windows.Destroy(wh)
}

func (b *Backend) WindowGetRenderPass(wh gal.Window) gal.RenderPass {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.RenderPass{}
	}
	return w.renderPassH
}

func (b *Backend) WindowFramebufferIsZeroSized(wh gal.Window) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return true
	}
	return w.width == 0 || w.height == 0
}
