// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"unsafe"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// CreateUniformBuffer rings one persistently-mapped VkBuffer per frame in
// flight, the same per-frame ring gal/noop uses, so UpdateUniformBufferData
// never stalls on a frame still in flight.
func (b *Backend) CreateUniformBuffer(info gal.UniformBufferCreateInfo) (gal.UniformBuffer, error) {
	ringSize := info.MaxFramesInFlight
	if ringSize <= 0 {
		ringSize = b.maxFramesInFlight
	}
	if ringSize <= 0 {
		ringSize = 2
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	usage := vkBufferUsageUniformBufferBit
	if info.Usage == gal.UniformBufferStorage {
		usage = vkBufferUsageStorageBufferBit
	}

	buffers := make([]vk.Buffer, ringSize)
	memories := make([]*memBlock, ringSize)
	mapped := make([]uintptr, ringSize)
	for i := 0; i < ringSize; i++ {
		handle, block, err := b.createDeviceBufferLocked(info.Size, usage)
		if err != nil {
			b.destroyUniformRingLocked(buffers[:i], memories[:i])
			return gal.UniformBuffer{}, err
		}
		var ptr unsafe.Pointer
		if res := b.cmds.MapMemory(b.device, block.Memory, block.Offset, info.Size, &ptr); !res.IsSuccess() {
			b.allocator.Free(block)
			b.cmds.DestroyBuffer(b.device, handle)
			b.destroyUniformRingLocked(buffers[:i], memories[:i])
			return gal.UniformBuffer{}, fmt.Errorf("vulkan: vkMapMemory: %w", res)
		}
		buffers[i] = handle
		memories[i] = block
		mapped[i] = uintptr(ptr)
	}

	h, _, err := b.uniformBuffers.Create(false, func(u *nativeUniformBuffer) {
		u.buffers = buffers
		u.memories = memories
		u.mapped = mapped
		u.size = info.Size
		u.usage = info.Usage
		u.ringSize = ringSize
	})
	if err != nil {
		b.destroyUniformRingLocked(buffers, memories)
		return gal.UniformBuffer{}, err
	}
	return h, nil
}

func (b *Backend) destroyUniformRingLocked(buffers []vk.Buffer, memories []*memBlock) {
	for i := range buffers {
		if memories[i] != nil {
			b.cmds.UnmapMemory(b.device, memories[i].Memory)
			b.allocator.Free(memories[i])
		}
		if buffers[i] != 0 {
			b.cmds.DestroyBuffer(b.device, buffers[i])
		}
	}
}

func (b *Backend) DestroyUniformBuffer(uh gal.UniformBuffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.uniformBuffers.Get(uh)
	if !ok {
		return
	}
	b.destroyUniformRingLocked(u.buffers, u.memories)
	b.uniformBuffers.Destroy(uh)
}

// UpdateUniformBufferData writes into wh's current frame-in-flight ring
// slot, identified by the window's frame index so concurrent frames never
// alias the same mapped memory.
func (b *Backend) UpdateUniformBufferData(wh gal.Window, uh gal.UniformBuffer, data []byte, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: UpdateUniformBufferData: invalid window handle")
	}
	u, ok := b.uniformBuffers.Get(uh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: UpdateUniformBufferData: invalid uniform buffer handle")
	}
	if size > u.size {
		return gal.Err(gal.Failure, "vulkan: UpdateUniformBufferData: write exceeds buffer size")
	}
	slot := w.frameIndex % u.ringSize
	dst := unsafe.Slice((*byte)(unsafe.Pointer(u.mapped[slot])), size)
	copy(dst, data[:size])
	return nil
}
