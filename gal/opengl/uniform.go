// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"unsafe"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// CreateUniformBuffer allocates a single GL_UNIFORM_BUFFER object sized for
// info.Size, unlike gal/vulkan's per-frame-in-flight ring: glBufferSubData
// on a single buffer is synchronized by the driver against in-flight draws
// on this backend's single implicit command stream, so there is no
// frames-in-flight aliasing hazard left for a ring to solve here.
func (b *Backend) CreateUniformBuffer(info gal.UniformBufferCreateInfo) (gal.UniformBuffer, error) {
	if err := gal.ValidateUniformBuffer(info); err != nil {
		return gal.UniformBuffer{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	handle := b.gl.GenBuffers(1)
	b.gl.BindBuffer(gl.UNIFORM_BUFFER, handle)
	b.gl.BufferData(gl.UNIFORM_BUFFER, int(info.Size), 0, gl.DYNAMIC_DRAW)
	b.gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	h, _, err := b.uniformBuffers.Create(false, func(u *nativeUniformBuffer) {
		u.handle = handle
		u.usage = info.Usage
		u.size = info.Size
	})
	if err != nil {
		b.gl.DeleteBuffers(handle)
		return gal.UniformBuffer{}, err
	}
	return h, nil
}

func (b *Backend) DestroyUniformBuffer(uh gal.UniformBuffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.uniformBuffers.Get(uh)
	if !ok {
		return
	}
	b.gl.DeleteBuffers(u.handle)
	b.uniformBuffers.Destroy(uh)
}

// UpdateUniformBufferData ignores wh: with no per-frame ring there is no
// frame-indexed slot to pick, so the window handle is only validated to
// keep the call signature identical to gal/vulkan's.
func (b *Backend) UpdateUniformBufferData(wh gal.Window, uh gal.UniformBuffer, data []byte, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.windows.Get(wh); !ok {
		return gal.Err(gal.Failure, "opengl: UpdateUniformBufferData: invalid window handle")
	}
	u, ok := b.uniformBuffers.Get(uh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: UpdateUniformBufferData: invalid uniform buffer handle")
	}
	if size > u.size {
		return gal.Err(gal.Failure, "opengl: UpdateUniformBufferData: write exceeds buffer size")
	}
	var dataPtr uintptr
	if size > 0 {
		dataPtr = uintptr(unsafe.Pointer(&data[0]))
	}
	b.gl.BindBuffer(gl.UNIFORM_BUFFER, u.handle)
	b.gl.BufferSubData(gl.UNIFORM_BUFFER, 0, int(size), dataPtr)
	b.gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return nil
}
