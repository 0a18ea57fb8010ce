// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// createFrameBufferRenderPassLocked builds a render pass compatible with
// info's attachment list. Unlike createRenderPassLocked (single color
// attachment, used by CreateWindow), a FrameBuffer may carry several color
// attachments, so the attachment/reference arrays are built from info
// directly instead of going through the window's fixed two-attachment path.
func (b *Backend) createFrameBufferRenderPassLocked(info gal.FrameBufferCreateInfo) (gal.RenderPass, error) {
	var colorAttachments []vk.AttachmentDescription
	var colorRefs []vk.AttachmentReference
	var depthFormat gal.DepthFormat
	var depthAttachment vk.AttachmentDescription
	var depthRef vk.AttachmentReference
	hasDepth := false

	for _, a := range info.Attachments {
		if a.IsDepth {
			depthFormat = a.DepthFormat
			depthAttachment = vk.AttachmentDescription{
				Format:         vkDepthFormat(a.DepthFormat),
				Samples:        vkSampleCount1Bit,
				LoadOp:         vkAttachmentLoadOpClear,
				StoreOp:        vkAttachmentStoreOpDontCare,
				StencilLoadOp:  vkAttachmentLoadOpLoad,
				StencilStoreOp: vkAttachmentStoreOpDontCare,
				InitialLayout:  vkImageLayoutUndefined,
				FinalLayout:    vkImageLayoutDepthStencilAttachOptimal,
			}
			hasDepth = true
			continue
		}
		colorAttachments = append(colorAttachments, vk.AttachmentDescription{
			Format:         vkFormat(a.ColorFormat),
			Samples:        vkSampleCount1Bit,
			LoadOp:         vkAttachmentLoadOpClear,
			StoreOp:        vkAttachmentStoreOpStore,
			StencilLoadOp:  vkAttachmentLoadOpLoad,
			StencilStoreOp: vkAttachmentStoreOpDontCare,
			InitialLayout:  vkImageLayoutUndefined,
			FinalLayout:    vkImageLayoutShaderReadOnlyOptimal,
		})
	}

	attachments := append([]vk.AttachmentDescription{}, colorAttachments...)
	colorRefs = make([]vk.AttachmentReference, len(colorAttachments))
	for i := range colorAttachments {
		colorRefs[i] = vk.AttachmentReference{Attachment: uint32(i), Layout: vkImageLayoutColorAttachmentOptimal}
	}
	if hasDepth {
		attachments = append(attachments, depthAttachment)
		depthRef = vk.AttachmentReference{Attachment: uint32(len(colorAttachments)), Layout: vkImageLayoutDepthStencilAttachOptimal}
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vkPipelineBindPointGraphics,
		ColorAttachmentCount: uint32(len(colorRefs)),
		PColorAttachments:    sliceHead(colorRefs),
	}
	if hasDepth {
		subpass.PDepthStencilAttachment = ptrOf(&depthRef)
	}

	rpInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    sliceHead(attachments),
		SubpassCount:    1,
		PSubpasses:      ptrOf(&subpass),
	}
	var handle vk.RenderPass
	if res := b.cmds.CreateRenderPass(b.device, &rpInfo, &handle); !res.IsSuccess() {
		return gal.RenderPass{}, fmt.Errorf("vulkan: vkCreateRenderPass: %w", res)
	}

	colorFormat := gal.ColorFormatRGBA8
	if len(info.Attachments) > 0 {
		for _, a := range info.Attachments {
			if !a.IsDepth {
				colorFormat = a.ColorFormat
				break
			}
		}
	}
	h, _, err := b.renderPasses.Create(false, func(rp *nativeRenderPass) {
		rp.handle = handle
		rp.colorFormat = colorFormat
		rp.depthFormat = depthFormat
		rp.hasDepth = hasDepth
	})
	if err != nil {
		b.cmds.DestroyRenderPass(b.device, handle)
		return gal.RenderPass{}, err
	}
	return h, nil
}

// CreateFrameBuffer builds an offscreen color(+depth) render target with
// one image per non-depth attachment, each also registered in the texture
// table so FrameBufferColorTexture can hand it out as a regular gal.Texture.
func (b *Backend) CreateFrameBuffer(info gal.FrameBufferCreateInfo) (gal.FrameBuffer, error) {
	if len(info.Attachments) == 0 {
		return gal.FrameBuffer{}, gal.Err(gal.Failure, "vulkan: CreateFrameBuffer: Attachments must not be empty")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	rpHandle, err := b.createFrameBufferRenderPassLocked(info)
	if err != nil {
		return gal.FrameBuffer{}, err
	}
	rp, _ := b.renderPasses.Get(rpHandle)

	var colorImages []vk.Image
	var colorViews []vk.ImageView
	var colorMemories []*memBlock
	var colorHandles []gal.Texture
	var depthImage vk.Image
	var depthView vk.ImageView
	var depthMemory *memBlock

	cleanup := func() {
		for _, th := range colorHandles {
			b.textures.Destroy(th)
		}
		for i := range colorImages {
			b.destroyImage2DLocked(colorImages[i], colorViews[i], colorMemories[i])
		}
		if depthImage != 0 {
			b.destroyImage2DLocked(depthImage, depthView, depthMemory)
		}
		b.destroyRenderPassLocked(rpHandle)
	}

	attachmentViews := make([]vk.ImageView, 0, len(info.Attachments))
	for _, a := range info.Attachments {
		if a.IsDepth {
			image, view, mem, err := b.createImage2DLocked(uint32(info.Width), uint32(info.Height),
				vkDepthFormat(a.DepthFormat), vkImageUsageDepthStencilAttachmentBit, vkImageAspectDepthBit)
			if err != nil {
				cleanup()
				return gal.FrameBuffer{}, err
			}
			depthImage, depthView, depthMemory = image, view, mem
			attachmentViews = append(attachmentViews, view)
			continue
		}
		image, view, mem, err := b.createImage2DLocked(uint32(info.Width), uint32(info.Height),
			vkFormat(a.ColorFormat), vkImageUsageColorAttachmentBit|vkImageUsageSampledBit, vkImageAspectColorBit)
		if err != nil {
			cleanup()
			return gal.FrameBuffer{}, err
		}
		colorImages = append(colorImages, image)
		colorViews = append(colorViews, view)
		colorMemories = append(colorMemories, mem)
		attachmentViews = append(attachmentViews, view)

		th, _, err := b.textures.Create(false, func(t *nativeTexture) {
			t.image, t.view, t.memory = image, view, mem
			t.width, t.height = info.Width, info.Height
			t.format = a.ColorFormat
		})
		if err != nil {
			cleanup()
			return gal.FrameBuffer{}, err
		}
		colorHandles = append(colorHandles, th)
	}

	fbInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      rp.handle,
		AttachmentCount: uint32(len(attachmentViews)),
		PAttachments:    sliceHead(attachmentViews),
		Width:           uint32(info.Width),
		Height:          uint32(info.Height),
		Layers:          1,
	}
	var handle vk.Framebuffer
	if res := b.cmds.CreateFramebuffer(b.device, &fbInfo, &handle); !res.IsSuccess() {
		cleanup()
		return gal.FrameBuffer{}, fmt.Errorf("vulkan: vkCreateFramebuffer: %w", res)
	}

	h, _, err := b.frameBuffers.Create(false, func(fb *nativeFrameBuffer) {
		fb.width, fb.height = info.Width, info.Height
		fb.info = info
		fb.renderPassH = rpHandle
		fb.renderPass = rp
		fb.handle = handle
		fb.colorImages = colorImages
		fb.colorViews = colorViews
		fb.colorMemories = colorMemories
		fb.colorHandles = colorHandles
		fb.depthImage = depthImage
		fb.depthView = depthView
		fb.depthMemory = depthMemory
	})
	if err != nil {
		b.cmds.DestroyFramebuffer(b.device, handle)
		cleanup()
		return gal.FrameBuffer{}, err
	}
	return h, nil
}

func (b *Backend) destroyFrameBufferLocked(fb *nativeFrameBuffer) {
	b.cmds.DestroyFramebuffer(b.device, fb.handle)
	for _, th := range fb.colorHandles {
		b.textures.Destroy(th)
	}
	for i := range fb.colorImages {
		b.destroyImage2DLocked(fb.colorImages[i], fb.colorViews[i], fb.colorMemories[i])
	}
	if fb.depthImage != 0 {
		b.destroyImage2DLocked(fb.depthImage, fb.depthView, fb.depthMemory)
	}
	b.destroyRenderPassLocked(fb.renderPassH)
}

func (b *Backend) DestroyFrameBuffer(fbh gal.FrameBuffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return
	}
	b.destroyFrameBufferLocked(fb)
	b.frameBuffers.Destroy(fbh)
}

// FrameBufferResize destroys and recreates every attachment at the new
// size, keeping the same handle (gal/noop follows the same
// destroy-and-rebuild convention for resize).
func (b *Backend) FrameBufferResize(fbh gal.FrameBuffer, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: FrameBufferResize: invalid framebuffer handle")
	}
	info := fb.info
	info.Width, info.Height = width, height

	b.destroyFrameBufferLocked(fb)

	rpHandle, err := b.createFrameBufferRenderPassLocked(info)
	if err != nil {
		return err
	}
	rp, _ := b.renderPasses.Get(rpHandle)

	var colorImages []vk.Image
	var colorViews []vk.ImageView
	var colorMemories []*memBlock
	var colorHandles []gal.Texture
	var depthImage vk.Image
	var depthView vk.ImageView
	var depthMemory *memBlock
	attachmentViews := make([]vk.ImageView, 0, len(info.Attachments))

	for _, a := range info.Attachments {
		if a.IsDepth {
			image, view, mem, err := b.createImage2DLocked(uint32(width), uint32(height),
				vkDepthFormat(a.DepthFormat), vkImageUsageDepthStencilAttachmentBit, vkImageAspectDepthBit)
			if err != nil {
				return err
			}
			depthImage, depthView, depthMemory = image, view, mem
			attachmentViews = append(attachmentViews, view)
			continue
		}
		image, view, mem, err := b.createImage2DLocked(uint32(width), uint32(height),
			vkFormat(a.ColorFormat), vkImageUsageColorAttachmentBit|vkImageUsageSampledBit, vkImageAspectColorBit)
		if err != nil {
			return err
		}
		colorImages = append(colorImages, image)
		colorViews = append(colorViews, view)
		colorMemories = append(colorMemories, mem)
		attachmentViews = append(attachmentViews, view)
		th, _, err := b.textures.Create(false, func(t *nativeTexture) {
			t.image, t.view, t.memory = image, view, mem
			t.width, t.height = width, height
			t.format = a.ColorFormat
		})
		if err != nil {
			return err
		}
		colorHandles = append(colorHandles, th)
	}

	fbInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      rp.handle,
		AttachmentCount: uint32(len(attachmentViews)),
		PAttachments:    sliceHead(attachmentViews),
		Width:           uint32(width),
		Height:          uint32(height),
		Layers:          1,
	}
	var handle vk.Framebuffer
	if res := b.cmds.CreateFramebuffer(b.device, &fbInfo, &handle); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkCreateFramebuffer: %w", res)
	}

	fb.width, fb.height = width, height
	fb.info = info
	fb.renderPassH = rpHandle
	fb.renderPass = rp
	fb.handle = handle
	fb.colorImages = colorImages
	fb.colorViews = colorViews
	fb.colorMemories = colorMemories
	fb.colorHandles = colorHandles
	fb.depthImage = depthImage
	fb.depthView = depthView
	fb.depthMemory = depthMemory
	return nil
}

func (b *Backend) FrameBufferGetRenderPass(fbh gal.FrameBuffer) gal.RenderPass {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.RenderPass{}
	}
	return fb.renderPassH
}

func (b *Backend) FrameBufferColorTexture(fbh gal.FrameBuffer, index int) gal.Texture {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok || index < 0 || index >= len(fb.colorHandles) {
		return gal.Texture{}
	}
	return fb.colorHandles[index]
}
