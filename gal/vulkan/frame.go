// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// BeginNextFrame waits for and resets wh's current-frame fence (DrawSubmit
// advances the ring index); no semaphore/swapchain acquire step exists since
// gal/vulkan has no presentation surface of its own.
func (b *Backend) BeginNextFrame(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: BeginNextFrame: invalid window handle")
	}
	if w.width == 0 || w.height == 0 {
		return nil
	}
	fence := w.fences[w.frameIndex]
	if res := b.cmds.WaitForFences(b.device, 1, &fence, 1, vkWholeSize); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkWaitForFences: %w", res)
	}
	b.cmds.ResetFences(b.device, 1, &fence)
	return nil
}

// DrawSubmit submits wh's current command buffer and blocks on
// vkQueueWaitIdle, fully serializing CPU/GPU work. gal/vulkan has no
// swapchain to present, so there is nothing to overlap submission with;
// this trades frame-overlap throughput for a much simpler, always-correct
// synchronization model.
func (b *Backend) DrawSubmit(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: DrawSubmit: invalid window handle")
	}
	if w.width == 0 || w.height == 0 {
		return nil
	}
	cmd := w.cmdBuffers[w.frameIndex]
	fence := w.fences[w.frameIndex]
	submit := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    ptrOf(&cmd),
	}
	if res := b.cmds.QueueSubmit(b.queue, 1, &submit, fence); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkQueueSubmit: %w", res)
	}
	if res := b.cmds.QueueWaitIdle(b.queue); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkQueueWaitIdle: %w", res)
	}
	w.frameIndex = (w.frameIndex + 1) % w.maxFrames
	return nil
}

// BeginCommandRecording begins wh's current command buffer.
func (b *Backend) BeginCommandRecording(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: BeginCommandRecording: invalid window handle")
	}
	if w.width == 0 || w.height == 0 {
		return nil
	}
	cmd := w.cmdBuffers[w.frameIndex]
	b.cmds.ResetCommandBuffer(cmd, 0)
	info := vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}
	if res := b.cmds.BeginCommandBuffer(cmd, &info); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkBeginCommandBuffer: %w", res)
	}
	w.recording = true
	return nil
}

func (b *Backend) EndCommandRecording(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: EndCommandRecording: invalid window handle")
	}
	if !w.recording {
		return nil
	}
	cmd := w.cmdBuffers[w.frameIndex]
	if res := b.cmds.EndCommandBuffer(cmd); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkEndCommandBuffer: %w", res)
	}
	w.recording = false
	return nil
}

// BeginRenderPass starts rp against wh's own color+depth target, unless an
// active framebuffer was set via BeginFrameBuffer, in which case drawing
// redirects to it — the same activeFB convention gal/noop's command
// recording uses.
func (b *Backend) BeginRenderPass(wh gal.Window, rpHandle gal.RenderPass, clear gal.ClearColor) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: BeginRenderPass: invalid window handle")
	}
	cmd := w.cmdBuffers[w.frameIndex]
	w.lastClear = clear

	clearValues := []vk.ClearValue{{Color: vk.ClearColorValue{Float32: [4]float32{clear.R, clear.G, clear.B, clear.A}}}}

	var rpH vk.RenderPass
	var fb vk.Framebuffer
	var width, height int
	if b.activeFB != nil {
		clearValues = append(clearValues, vk.ClearValue{})
		rpH = b.activeFB.renderPass.handle
		fb = b.activeFB.handle
		width, height = b.activeFB.width, b.activeFB.height
	} else {
		rp, ok := b.renderPasses.Get(rpHandle)
		if !ok {
			return gal.Err(gal.Failure, "vulkan: BeginRenderPass: invalid render pass handle")
		}
		if rp.hasDepth {
			clearValues = append(clearValues, vk.ClearValue{})
		}
		rpH = rp.handle
		fb = w.framebuffer
		width, height = w.width, w.height
	}

	beginInfo := vk.RenderPassBeginInfo{
		SType:           vk.StructureTypeRenderPassBeginInfo,
		RenderPass:      rpH,
		Framebuffer:     fb,
		RenderArea:      vk.Rect2D{Extent: vk.Extent2D{Width: uint32(width), Height: uint32(height)}},
		ClearValueCount: uint32(len(clearValues)),
		PClearValues:    sliceHead(clearValues),
	}
	b.cmds.CmdBeginRenderPass(cmd, &beginInfo, vkSubpassContentsInline)
	w.inRenderPass = true
	return nil
}

func (b *Backend) EndRenderPass(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: EndRenderPass: invalid window handle")
	}
	if !w.inRenderPass {
		return nil
	}
	cmd := w.cmdBuffers[w.frameIndex]
	b.cmds.CmdEndRenderPass(cmd)
	w.inRenderPass = false
	return nil
}

// BeginFrameBuffer marks fb as the active off-screen render target; every
// subsequent RenderCmd*/BeginRenderPass call against any window redirects
// its draw output to fb until EndFrameBuffer clears it.
func (b *Backend) BeginFrameBuffer(fbHandle gal.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbHandle)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: BeginFrameBuffer: invalid framebuffer handle")
	}
	b.activeFB = fb
	fb.recording = true
	return nil
}

func (b *Backend) EndFrameBuffer(fbHandle gal.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbHandle)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: EndFrameBuffer: invalid framebuffer handle")
	}
	fb.recording = false
	if b.activeFB == fb {
		b.activeFB = nil
	}
	return nil
}
