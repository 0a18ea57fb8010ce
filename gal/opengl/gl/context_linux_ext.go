// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package gl

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Renderbuffers, stencil ops, and draw buffers were loaded as function
// pointers in context_linux.go but never wrapped; the OpenGL backend needs
// them for depth-only attachments, stencil testing, and multiple render
// targets, so this file rounds out their goffi call wrappers. Face culling
// (CullFace, FrontFace) is wrapped in context_linux.go itself.

// --- Renderbuffers ---

func (c *Context) GenRenderbuffers(n int32) uint32 {
	var rbo uint32
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&n),
		unsafe.Pointer(&rbo),
	}
	_ = ffi.CallFunction(&cifVoid2, c.glGenRenderbuffers, nil, args[:])
	return rbo
}

func (c *Context) DeleteRenderbuffers(renderbuffers ...uint32) {
	n := int32(len(renderbuffers))
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&n),
		unsafe.Pointer(&renderbuffers[0]),
	}
	_ = ffi.CallFunction(&cifVoid2, c.glDeleteRenderbuffers, nil, args[:])
}

func (c *Context) BindRenderbuffer(target, renderbuffer uint32) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&target),
		unsafe.Pointer(&renderbuffer),
	}
	_ = ffi.CallFunction(&cifVoid2UU, c.glBindRenderbuffer, nil, args[:])
}

func (c *Context) RenderbufferStorage(target, internalformat, width, height uint32) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&target),
		unsafe.Pointer(&internalformat),
		unsafe.Pointer(&width),
		unsafe.Pointer(&height),
	}
	_ = ffi.CallFunction(&cifVoid4, c.glRenderbufferStorage, nil, args[:])
}

func (c *Context) FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer uint32) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&target),
		unsafe.Pointer(&attachment),
		unsafe.Pointer(&renderbuffertarget),
		unsafe.Pointer(&renderbuffer),
	}
	_ = ffi.CallFunction(&cifVoid4, c.glFramebufferRenderbuffer, nil, args[:])
}

// --- Stencil ---

func (c *Context) StencilFunc(fn uint32, ref int32, mask uint32) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&fn),
		unsafe.Pointer(&ref),
		unsafe.Pointer(&mask),
	}
	_ = ffi.CallFunction(&cifVoid3, c.glStencilFunc, nil, args[:])
}

func (c *Context) StencilOp(sfail, dpfail, dppass uint32) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&sfail),
		unsafe.Pointer(&dpfail),
		unsafe.Pointer(&dppass),
	}
	_ = ffi.CallFunction(&cifVoid3, c.glStencilOp, nil, args[:])
}

func (c *Context) StencilMask(mask uint32) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&mask)}
	_ = ffi.CallFunction(&cifVoid1, c.glStencilMask, nil, args[:])
}

// --- Draw buffers (multiple render targets) ---

func (c *Context) DrawBuffers(attachments []uint32) {
	if len(attachments) == 0 {
		return
	}
	n := int32(len(attachments))
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&n),
		unsafe.Pointer(&attachments[0]),
	}
	_ = ffi.CallFunction(&cifVoid2, c.glDrawBuffers, nil, args[:])
}
