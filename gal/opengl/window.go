// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// CreateWindow allocates an offscreen color texture + depth renderbuffer
// pair bound into an FBO, the GL counterpart to gal/vulkan's color+depth
// image-pair window target; this backend likewise has no real surface or
// swapchain to present against.
func (b *Backend) CreateWindow(info gal.WindowCreateInfo) (gal.Window, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return gal.Window{}, gal.Err(gal.Failure, "opengl: window size must be positive, got %dx%d", info.Width, info.Height)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	rpHandle, _, err := b.renderPasses.Create(false, func(rp *nativeRenderPass) {
		rp.colorFormat = gal.ColorFormatRGBA8
		rp.depthFormat = gal.DepthFormatD32
		rp.hasDepth = true
	})
	if err != nil {
		return gal.Window{}, err
	}

	colorTex := b.gl.GenTextures(1)
	b.gl.BindTexture(gl.TEXTURE_2D, colorTex)
	uploadFmt, uploadType := glUploadFormat(gal.ColorFormatRGBA8)
	b.gl.TexImage2D(gl.TEXTURE_2D, 0, glInternalFormat(gal.ColorFormatRGBA8), int32(info.Width), int32(info.Height), 0, uploadFmt, uploadType, 0)
	b.gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	b.gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	depthRB := b.gl.GenRenderbuffers(1)
	b.gl.BindRenderbuffer(gl.RENDERBUFFER, depthRB)
	b.gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(glDepthInternalFormat(gal.DepthFormatD32)), uint32(info.Width), uint32(info.Height))

	fbo := b.gl.GenFramebuffers(1)
	b.gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	b.gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, colorTex, 0)
	b.gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depthRB)
	status := b.gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	b.gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		b.gl.DeleteFramebuffers(fbo)
		b.gl.DeleteRenderbuffers(depthRB)
		b.gl.DeleteTextures(colorTex)
		b.renderPasses.Destroy(rpHandle)
		return gal.Window{}, gal.Err(gal.Failure, "opengl: window framebuffer incomplete: status 0x%x", status)
	}

	vao := b.gl.GenVertexArrays(1)

	h, _, err := b.windows.Create(false, func(w *nativeWindow) {
		w.width, w.height = info.Width, info.Height
		w.colorTexture = colorTex
		w.depthRenderbuffer = depthRB
		w.fbo = fbo
		w.vao = vao
		w.renderPassH = rpHandle
	})
	if err != nil {
		b.gl.DeleteVertexArrays(vao)
		b.gl.DeleteFramebuffers(fbo)
		b.gl.DeleteRenderbuffers(depthRB)
		b.gl.DeleteTextures(colorTex)
		b.renderPasses.Destroy(rpHandle)
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
	b.gl.DeleteVertexArrays(w.vao)
	b.gl.DeleteFramebuffers(w.fbo)
	b.gl.DeleteRenderbuffers(w.depthRenderbuffer)
	b.gl.DeleteTextures(w.colorTexture)
	b.renderPasses.Destroy(w.renderPassH)
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
