// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// CreateTexture uploads Pixels into a device-local 2D image via a
// host-visible staging buffer, then either creates a new sampler from
// info.Sampler or reuses info.SamplerRef.
func (b *Backend) CreateTexture(info gal.TextureCreateInfo) (gal.Texture, error) {
	if len(info.Pixels) == 0 {
		return gal.Texture{}, gal.Err(gal.Failure, "vulkan: CreateTexture: Pixels must not be empty")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	format := vkFormat(info.Format)
	image, view, mem, err := b.createImage2DLocked(uint32(info.Width), uint32(info.Height), format,
		vkImageUsageTransferDstBit|vkImageUsageSampledBit, vkImageAspectColorBit)
	if err != nil {
		return gal.Texture{}, err
	}
	if err := b.uploadTexturePixelsLocked(image, uint32(info.Width), uint32(info.Height), info.Pixels); err != nil {
		b.destroyImage2DLocked(image, view, mem)
		return gal.Texture{}, err
	}

	var sampler vk.Sampler
	ownsSampler := false
	if info.Sampler != nil {
		sampler, err = b.createSamplerLocked(*info.Sampler)
		if err != nil {
			b.destroyImage2DLocked(image, view, mem)
			return gal.Texture{}, err
		}
		ownsSampler = true
	} else {
		if s, ok := b.samplers.Get(info.SamplerRef); ok {
			sampler = s.handle
		}
	}

	h, _, err := b.textures.Create(false, func(t *nativeTexture) {
		t.image, t.view, t.memory = image, view, mem
		t.width, t.height = info.Width, info.Height
		t.format = info.Format
		t.sampler = sampler
		t.ownsSampler = ownsSampler
	})
	if err != nil {
		if ownsSampler {
			b.cmds.DestroySampler(b.device, sampler)
		}
		b.destroyImage2DLocked(image, view, mem)
		return gal.Texture{}, err
	}
	return h, nil
}

// uploadTexturePixelsLocked stages pixel data through a temporary
// host-visible buffer, then transitions image into a transfer-friendly
// layout, copies the buffer into it, and transitions it again for shader
// reads, the standard Vulkan texture-upload idiom.
func (b *Backend) uploadTexturePixelsLocked(image vk.Image, width, height uint32, pixels []byte) error {
	staging, block, err := b.createDeviceBufferLocked(uint64(len(pixels)), vkBufferUsageTransferDstBit)
	if err != nil {
		return err
	}
	defer func() {
		b.allocator.Free(block)
		b.cmds.DestroyBuffer(b.device, staging)
	}()
	if err := b.uploadHostVisibleLocked(block, pixels); err != nil {
		return err
	}

	cmd, err := b.beginOneShotCommandLocked()
	if err != nil {
		return err
	}

	subrange := vk.ImageSubresourceRange{AspectMask: vkImageAspectColorBit, LevelCount: 1, LayerCount: 1}

	toTransferDst := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       0,
		DstAccessMask:       vkAccessTransferWriteBit,
		OldLayout:           vkImageLayoutUndefined,
		NewLayout:           vkImageLayoutTransferDstOptimal,
		SrcQueueFamilyIndex: vkQueueFamilyIgnored,
		DstQueueFamilyIndex: vkQueueFamilyIgnored,
		Image:               image,
		SubresourceRange:    subrange,
	}
	b.cmds.CmdPipelineBarrier(cmd, vkPipelineStageTopOfPipeBit, vkPipelineStageTransferBit, 1, &toTransferDst)

	region := vk.BufferImageCopy{
		ImageSubresource: vk.ImageSubresourceLayers{AspectMask: vkImageAspectColorBit, LayerCount: 1},
		ImageExtent:      vk.Extent3D{Width: width, Height: height, Depth: 1},
	}
	b.cmds.CmdCopyBufferToImage(cmd, staging, image, vkImageLayoutTransferDstOptimal, 1, &region)

	toShaderRead := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       vkAccessTransferWriteBit,
		DstAccessMask:       vkAccessShaderReadBit,
		OldLayout:           vkImageLayoutTransferDstOptimal,
		NewLayout:           vkImageLayoutShaderReadOnlyOptimal,
		SrcQueueFamilyIndex: vkQueueFamilyIgnored,
		DstQueueFamilyIndex: vkQueueFamilyIgnored,
		Image:               image,
		SubresourceRange:    subrange,
	}
	b.cmds.CmdPipelineBarrier(cmd, vkPipelineStageTransferBit, vkPipelineStageFragmentShaderBit, 1, &toShaderRead)

	b.endOneShotCommandLocked(cmd)
	return nil
}

func (b *Backend) createSamplerLocked(info gal.SamplerCreateInfo) (vk.Sampler, error) {
	maxAniso := info.MaxAnisotropy
	var anisoEnable uint32
	if maxAniso > 1 {
		anisoEnable = 1
	} else {
		maxAniso = 1
	}
	sInfo := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        vkFilter(info.MagFilter),
		MinFilter:        vkFilter(info.MinFilter),
		AddressModeU:     vkAddressMode(info.WrapU),
		AddressModeV:     vkAddressMode(info.WrapV),
		AddressModeW:     vkAddressMode(info.WrapW),
		AnisotropyEnable: anisoEnable,
		MaxAnisotropy:    maxAniso,
		MaxLod:           1,
	}
	var sampler vk.Sampler
	if res := b.cmds.CreateSampler(b.device, &sInfo, &sampler); !res.IsSuccess() {
		return 0, fmt.Errorf("vulkan: vkCreateSampler: %w", res)
	}
	return sampler, nil
}

func (b *Backend) DestroyTexture(th gal.Texture) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.textures.Get(th)
	if !ok {
		return
	}
	if t.ownsSampler && t.sampler != 0 {
		b.cmds.DestroySampler(b.device, t.sampler)
	}
	b.destroyImage2DLocked(t.image, t.view, t.memory)
	b.textures.Destroy(th)
}

func (b *Backend) CreateTextureSampler(info gal.SamplerCreateInfo) (gal.Sampler, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	handle, err := b.createSamplerLocked(info)
	if err != nil {
		return gal.Sampler{}, err
	}
	h, _, err := b.samplers.Create(false, func(s *nativeSampler) { s.handle = handle })
	if err != nil {
		b.cmds.DestroySampler(b.device, handle)
		return gal.Sampler{}, err
	}
	return h, nil
}

func (b *Backend) DestroySampler(sh gal.Sampler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.samplers.Get(sh)
	if !ok {
		return
	}
	b.cmds.DestroySampler(b.device, s.handle)
	b.samplers.Destroy(sh)
}

func (b *Backend) CreateCubemap(info gal.CubemapCreateInfo) (gal.Cubemap, error) {
	if err := gal.ValidateCubemap(info); err != nil {
		return gal.Cubemap{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	var faces [6]nativeTexture
	var sampler vk.Sampler
	format := vkFormat(info.Format)
	for i, face := range info.Faces {
		image, view, mem, err := b.createImage2DLocked(uint32(face.Width), uint32(face.Height), format,
			vkImageUsageTransferDstBit|vkImageUsageSampledBit, vkImageAspectColorBit)
		if err != nil {
			for j := 0; j < i; j++ {
				b.destroyImage2DLocked(faces[j].image, faces[j].view, faces[j].memory)
			}
			return gal.Cubemap{}, err
		}
		faces[i] = nativeTexture{image: image, view: view, memory: mem, width: face.Width, height: face.Height, format: info.Format}
	}

	if info.Faces[0].Sampler != nil {
		var err error
		sampler, err = b.createSamplerLocked(*info.Faces[0].Sampler)
		if err != nil {
			for i := range faces {
				b.destroyImage2DLocked(faces[i].image, faces[i].view, faces[i].memory)
			}
			return gal.Cubemap{}, err
		}
	}

	h, _, err := b.cubemaps.Create(false, func(c *nativeCubemap) {
		c.faces = faces
		c.sampler = sampler
		c.format = info.Format
	})
	if err != nil {
		if sampler != 0 {
			b.cmds.DestroySampler(b.device, sampler)
		}
		for i := range faces {
			b.destroyImage2DLocked(faces[i].image, faces[i].view, faces[i].memory)
		}
		return gal.Cubemap{}, err
	}
	return h, nil
}

func (b *Backend) DestroyCubemap(ch gal.Cubemap) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.cubemaps.Get(ch)
	if !ok {
		return
	}
	if c.sampler != 0 {
		b.cmds.DestroySampler(b.device, c.sampler)
	}
	for _, f := range c.faces {
		b.destroyImage2DLocked(f.image, f.view, f.memory)
	}
	b.cubemaps.Destroy(ch)
}

func (b *Backend) beginOneShotCommandLocked() (vk.CommandBuffer, error) {
	info := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        b.commandPool,
		Level:              vkCommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	var cmd vk.CommandBuffer
	if res := b.cmds.AllocateCommandBuffers(b.device, &info, &cmd); !res.IsSuccess() {
		return 0, fmt.Errorf("vulkan: vkAllocateCommandBuffers: %w", res)
	}
	beginInfo := vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}
	b.cmds.BeginCommandBuffer(cmd, &beginInfo)
	return cmd, nil
}

func (b *Backend) endOneShotCommandLocked(cmd vk.CommandBuffer) {
	b.cmds.EndCommandBuffer(cmd)
	submit := vk.SubmitInfo{SType: vk.StructureTypeSubmitInfo, CommandBufferCount: 1, PCommandBuffers: ptrOf(&cmd)}
	b.cmds.QueueSubmit(b.queue, 1, &submit, 0)
	b.cmds.QueueWaitIdle(b.queue)
	b.cmds.FreeCommandBuffers(b.device, b.commandPool, 1, &cmd)
}
