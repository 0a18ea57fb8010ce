// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// createFrameBufferRenderPassLocked records the attachment formats info
// asks for so FrameBufferGetRenderPass can hand back a format-tagged
// handle; GL has no VkRenderPass object to actually build, unlike
// gal/vulkan's createFrameBufferRenderPassLocked.
func (b *Backend) createFrameBufferRenderPassLocked(info gal.FrameBufferCreateInfo) (gal.RenderPass, error) {
	colorFormat := gal.ColorFormatRGBA8
	var depthFormat gal.DepthFormat
	hasDepth := info.HasDepth
	for _, a := range info.Attachments {
		if a.IsDepth {
			depthFormat = a.DepthFormat
			continue
		}
		colorFormat = a.ColorFormat
	}
	h, _, err := b.renderPasses.Create(false, func(rp *nativeRenderPass) {
		rp.colorFormat = colorFormat
		rp.depthFormat = depthFormat
		rp.hasDepth = hasDepth
	})
	if err != nil {
		return gal.RenderPass{}, err
	}
	return h, nil
}

// builtFrameBuffer holds the GL objects assembled by buildFrameBufferLocked,
// shared by CreateFrameBuffer and FrameBufferResize so neither duplicates
// the attachment-building logic.
type builtFrameBuffer struct {
	fbo           uint32
	colorTextures []uint32
	colorHandles  []gal.Texture
	depthRB       uint32
	renderPassH   gal.RenderPass
}

func (b *Backend) buildFrameBufferLocked(info gal.FrameBufferCreateInfo) (builtFrameBuffer, error) {
	rpHandle, err := b.createFrameBufferRenderPassLocked(info)
	if err != nil {
		return builtFrameBuffer{}, err
	}

	var colorTextures []uint32
	var colorHandles []gal.Texture
	var depthRB uint32

	cleanup := func() {
		for _, th := range colorHandles {
			b.textures.Destroy(th)
		}
		for _, ct := range colorTextures {
			b.gl.DeleteTextures(ct)
		}
		if depthRB != 0 {
			b.gl.DeleteRenderbuffers(depthRB)
		}
		b.renderPasses.Destroy(rpHandle)
	}

	fbo := b.gl.GenFramebuffers(1)
	b.gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	colorAttachmentCount := uint32(0)
	var drawBuffers []uint32
	for _, a := range info.Attachments {
		if a.IsDepth {
			depthRB = b.gl.GenRenderbuffers(1)
			b.gl.BindRenderbuffer(gl.RENDERBUFFER, depthRB)
			b.gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(glDepthInternalFormat(a.DepthFormat)), uint32(info.Width), uint32(info.Height))
			b.gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depthRB)
			continue
		}
		tex := b.gl.GenTextures(1)
		b.gl.BindTexture(gl.TEXTURE_2D, tex)
		uploadFmt, uploadType := glUploadFormat(a.ColorFormat)
		b.gl.TexImage2D(gl.TEXTURE_2D, 0, glInternalFormat(a.ColorFormat), int32(info.Width), int32(info.Height), 0, uploadFmt, uploadType, 0)
		b.gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		b.gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

		attachment := gl.COLOR_ATTACHMENT0 + colorAttachmentCount
		b.gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, tex, 0)
		drawBuffers = append(drawBuffers, attachment)
		colorAttachmentCount++

		colorTextures = append(colorTextures, tex)
		th, _, err := b.textures.Create(false, func(t *nativeTexture) {
			t.handle = tex
			t.width, t.height = info.Width, info.Height
			t.format = a.ColorFormat
		})
		if err != nil {
			cleanup()
			return builtFrameBuffer{}, err
		}
		colorHandles = append(colorHandles, th)
	}
	if len(drawBuffers) > 1 {
		b.gl.DrawBuffers(drawBuffers)
	}

	status := b.gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	b.gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		b.gl.DeleteFramebuffers(fbo)
		cleanup()
		return builtFrameBuffer{}, gal.Err(gal.Failure, "opengl: framebuffer incomplete: status 0x%x", status)
	}

	return builtFrameBuffer{
		fbo:           fbo,
		colorTextures: colorTextures,
		colorHandles:  colorHandles,
		depthRB:       depthRB,
		renderPassH:   rpHandle,
	}, nil
}

// CreateFrameBuffer builds one GL texture per non-depth attachment plus an
// optional depth renderbuffer, bound into a single FBO; each color
// attachment is also registered in the texture table so
// FrameBufferColorTexture can hand it out as a regular gal.Texture, the
// same convention gal/vulkan follows.
func (b *Backend) CreateFrameBuffer(info gal.FrameBufferCreateInfo) (gal.FrameBuffer, error) {
	if err := gal.ValidateFrameBuffer(info); err != nil {
		return gal.FrameBuffer{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	built, err := b.buildFrameBufferLocked(info)
	if err != nil {
		return gal.FrameBuffer{}, err
	}
	h, _, err := b.frameBuffers.Create(false, func(fb *nativeFrameBuffer) {
		fb.width, fb.height = info.Width, info.Height
		fb.info = info
		fb.fbo = built.fbo
		fb.colorTextures = built.colorTextures
		fb.colorHandles = built.colorHandles
		fb.depthRenderbuffer = built.depthRB
		fb.renderPassH = built.renderPassH
	})
	if err != nil {
		b.destroyBuiltFrameBufferLocked(built)
		return gal.FrameBuffer{}, err
	}
	return h, nil
}

func (b *Backend) destroyBuiltFrameBufferLocked(built builtFrameBuffer) {
	b.gl.DeleteFramebuffers(built.fbo)
	for _, th := range built.colorHandles {
		b.textures.Destroy(th)
	}
	for _, ct := range built.colorTextures {
		b.gl.DeleteTextures(ct)
	}
	if built.depthRB != 0 {
		b.gl.DeleteRenderbuffers(built.depthRB)
	}
	b.renderPasses.Destroy(built.renderPassH)
}

func (b *Backend) destroyFrameBufferLocked(fb *nativeFrameBuffer) {
	b.gl.DeleteFramebuffers(fb.fbo)
	for _, th := range fb.colorHandles {
		b.textures.Destroy(th)
	}
	for _, ct := range fb.colorTextures {
		b.gl.DeleteTextures(ct)
	}
	if fb.depthRenderbuffer != 0 {
		b.gl.DeleteRenderbuffers(fb.depthRenderbuffer)
	}
	b.renderPasses.Destroy(fb.renderPassH)
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

// FrameBufferResize destroys and rebuilds every attachment at the new
// size, keeping the same handle, the same destroy-and-rebuild convention
// gal/vulkan and gal/noop both follow for resize.
func (b *Backend) FrameBufferResize(fbh gal.FrameBuffer, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: FrameBufferResize: invalid framebuffer handle")
	}
	info := fb.info
	info.Width, info.Height = width, height
	b.destroyFrameBufferLocked(fb)

	built, err := b.buildFrameBufferLocked(info)
	if err != nil {
		return err
	}
	fb.width, fb.height = width, height
	fb.info = info
	fb.fbo = built.fbo
	fb.colorTextures = built.colorTextures
	fb.colorHandles = built.colorHandles
	fb.depthRenderbuffer = built.depthRB
	fb.renderPassH = built.renderPassH
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
