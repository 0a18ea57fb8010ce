// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// BeginNextFrame is a no-op on this backend: GL has no frame-in-flight
// fence ring of its own (the driver serializes work against the single
// shared context), unlike gal/vulkan's explicit per-frame fence wait.
func (b *Backend) BeginNextFrame(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: BeginNextFrame: invalid window handle")
	}
	return nil
}

// DrawSubmit flushes queued GL commands and blocks until the driver has
// executed them, the closest GL equivalent to gal/vulkan's
// vkQueueSubmit+vkQueueWaitIdle pairing given GL has no explicit queue.
func (b *Backend) DrawSubmit(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: DrawSubmit: invalid window handle")
	}
	if w.width == 0 || w.height == 0 {
		return nil
	}
	b.gl.Finish()
	w.frameIndex = (w.frameIndex + 1) % b.maxFramesInFlight
	return nil
}

// BeginCommandRecording has nothing to record into on this backend (GL
// calls execute immediately against the current context); it exists only
// to satisfy gal.Backend's symmetric begin/end recording contract.
func (b *Backend) BeginCommandRecording(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: BeginCommandRecording: invalid window handle")
	}
	return nil
}

func (b *Backend) EndCommandRecording(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: EndCommandRecording: invalid window handle")
	}
	return nil
}

// BeginRenderPass binds wh's own FBO unless an active framebuffer was set
// via BeginFrameBuffer, mirroring gal/vulkan's activeFB redirect.
func (b *Backend) BeginRenderPass(wh gal.Window, rpHandle gal.RenderPass, clear gal.ClearColor) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: BeginRenderPass: invalid window handle")
	}

	var fbo uint32
	hasDepth := true
	if b.activeFB != nil {
		fbo = b.activeFB.fbo
		hasDepth = b.activeFB.depthRenderbuffer != 0
	} else {
		rp, ok := b.renderPasses.Get(rpHandle)
		if !ok {
			return gal.Err(gal.Failure, "opengl: BeginRenderPass: invalid render pass handle")
		}
		fbo = w.fbo
		hasDepth = rp.hasDepth
	}

	b.gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	b.gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if hasDepth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	b.gl.Clear(mask)
	return nil
}

func (b *Backend) EndRenderPass(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: EndRenderPass: invalid window handle")
	}
	b.gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// BeginFrameBuffer marks fb as the active off-screen render target, the
// same redirect convention as gal/vulkan's activeFB.
func (b *Backend) BeginFrameBuffer(fbHandle gal.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbHandle)
	if !ok {
		return gal.Err(gal.Failure, "opengl: BeginFrameBuffer: invalid framebuffer handle")
	}
	b.activeFB = fb
	return nil
}

func (b *Backend) EndFrameBuffer(fbHandle gal.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbHandle)
	if !ok {
		return gal.Err(gal.Failure, "opengl: EndFrameBuffer: invalid framebuffer handle")
	}
	if b.activeFB == fb {
		b.activeFB = nil
	}
	return nil
}
