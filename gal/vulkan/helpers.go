// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	memory "github.com/binmian/levikno/gal/vulkan/valloc"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// createRenderPassLocked builds a color(+depth) render pass compatible with
// any framebuffer created against the same format pair. CreateWindow uses
// it; CreateFrameBuffer builds its own via createFrameBufferRenderPassLocked.
func (b *Backend) createRenderPassLocked(colorFormat gal.ColorFormat, depthFormat gal.DepthFormat, hasDepth bool) (gal.RenderPass, error) {
	colorFmt := vkFormat(colorFormat)
	depthFmt := vkDepthFormat(depthFormat)
	attachments := []vk.AttachmentDescription{
		{
			Format:         colorFmt,
			Samples:        vkSampleCount1Bit,
			LoadOp:         vkAttachmentLoadOpClear,
			StoreOp:        vkAttachmentStoreOpStore,
			StencilLoadOp:  vkAttachmentLoadOpLoad,
			StencilStoreOp: vkAttachmentStoreOpDontCare,
			InitialLayout:  vkImageLayoutUndefined,
			FinalLayout:    vkImageLayoutShaderReadOnlyOptimal,
		},
	}
	colorRef := vk.AttachmentReference{Attachment: 0, Layout: vkImageLayoutColorAttachmentOptimal}
	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vkPipelineBindPointGraphics,
		ColorAttachmentCount: 1,
		PColorAttachments:    ptrOf(&colorRef),
	}
	var depthRef vk.AttachmentReference
	if hasDepth {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         depthFmt,
			Samples:        vkSampleCount1Bit,
			LoadOp:         vkAttachmentLoadOpClear,
			StoreOp:        vkAttachmentStoreOpDontCare,
			StencilLoadOp:  vkAttachmentLoadOpLoad,
			StencilStoreOp: vkAttachmentStoreOpDontCare,
			InitialLayout:  vkImageLayoutUndefined,
			FinalLayout:    vkImageLayoutDepthStencilAttachOptimal,
		})
		depthRef = vk.AttachmentReference{Attachment: 1, Layout: vkImageLayoutDepthStencilAttachOptimal}
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

func (b *Backend) destroyRenderPassLocked(h gal.RenderPass) {
	rp, ok := b.renderPasses.Get(h)
	if !ok {
		return
	}
	b.cmds.DestroyRenderPass(b.device, rp.handle)
	b.renderPasses.Destroy(h)
}

// createImage2DLocked allocates a 2D image, its backing device memory, and
// a matching image view, the building block both color and depth targets
// share (spec.md texture/window resource creation).
func (b *Backend) createImage2DLocked(width, height, format, usage, aspect uint32) (vk.Image, vk.ImageView, *memBlock, error) {
	imgInfo := vk.ImageCreateInfo{
		SType:       vk.StructureTypeImageCreateInfo,
		ImageType:   vkImageTypeVar2D,
		Format:      format,
		Extent:      vk.Extent3D{Width: width, Height: height, Depth: 1},
		MipLevels:   1,
		ArrayLayers: 1,
		Samples:     vkSampleCount1Bit,
		Tiling:      vkImageTilingOptimal,
		Usage:       usage,
		SharingMode: vkSharingModeExclusive,
	}
	var image vk.Image
	if res := b.cmds.CreateImage(b.device, &imgInfo, &image); !res.IsSuccess() {
		return 0, 0, nil, fmt.Errorf("vulkan: vkCreateImage: %w", res)
	}

	var req vk.MemoryRequirements
	b.cmds.GetImageMemoryRequirements(b.device, image, &req)
	block, err := b.allocator.Alloc(memory.AllocationRequest{
		Size:           req.Size,
		Alignment:      req.Alignment,
		MemoryTypeBits: req.MemoryTypeBits,
		Usage:          memory.UsageFastDeviceAccess,
	})
	if err != nil {
		b.cmds.DestroyImage(b.device, image)
		return 0, 0, nil, fmt.Errorf("vulkan: image allocation: %w", err)
	}
	if res := b.cmds.BindImageMemory(b.device, image, block.Memory, block.Offset); !res.IsSuccess() {
		b.allocator.Free(block)
		b.cmds.DestroyImage(b.device, image)
		return 0, 0, nil, fmt.Errorf("vulkan: vkBindImageMemory: %w", res)
	}

	viewInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: vkImageViewTypeVar2D,
		Format:   format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: aspect,
			LevelCount: 1,
			LayerCount: 1,
		},
	}
	var view vk.ImageView
	if res := b.cmds.CreateImageView(b.device, &viewInfo, &view); !res.IsSuccess() {
		b.allocator.Free(block)
		b.cmds.DestroyImage(b.device, image)
		return 0, 0, nil, fmt.Errorf("vulkan: vkCreateImageView: %w", res)
	}
	return image, view, block, nil
}

func (b *Backend) destroyImage2DLocked(image vk.Image, view vk.ImageView, block *memBlock) {
	if view != 0 {
		b.cmds.DestroyImageView(b.device, view)
	}
	if image != 0 {
		b.cmds.DestroyImage(b.device, image)
	}
	if block != nil {
		b.allocator.Free(block)
	}
}
