package noop

import "github.com/binmian/levikno/gal"

func (b *Backend) CreateFrameBuffer(info gal.FrameBufferCreateInfo) (gal.FrameBuffer, error) {
	if err := gal.ValidateFrameBuffer(info); err != nil {
		return gal.FrameBuffer{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	colorFormat := gal.ColorFormatRGBA8
	depthFormat := gal.DepthFormatD32
	for _, a := range info.Attachments {
		if !a.IsDepth {
			colorFormat = a.ColorFormat
		} else {
			depthFormat = a.DepthFormat
		}
	}
	rp, _, err := b.renderPasses.Create(false, func(rp *nativeRenderPass) {
		rp.colorFormat = colorFormat
		rp.depthFormat = depthFormat
		rp.hasDepth = info.HasDepth
	})
	if err != nil {
		return gal.FrameBuffer{}, err
	}

	h, fb, err := b.frameBuffers.Create(false, func(fb *nativeFrameBuffer) {
		fb.width, fb.height = info.Width, info.Height
		fb.info = info
		fb.renderPass = rp
	})
	if err != nil {
		b.renderPasses.Destroy(rp)
		return gal.FrameBuffer{}, err
	}

	for range info.Attachments {
		img := newFramebufferImage(info.Width, info.Height)
		fb.colors = append(fb.colors, img)
		th, _, terr := b.textures.Create(false, func(t *nativeTexture) {
			t.width, t.height = info.Width, info.Height
			t.channels = 4
			t.format = colorFormat
		})
		if terr != nil {
			return gal.FrameBuffer{}, terr
		}
		fb.colorHandles = append(fb.colorHandles, th)
	}
	if info.HasDepth {
		fb.depth = make([]float32, info.Width*info.Height)
	}
	return h, nil
}

func (b *Backend) DestroyFrameBuffer(fbh gal.FrameBuffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return
	}
	for _, th := range fb.colorHandles {
		b.textures.Destroy(th)
	}
	b.renderPasses.Destroy(fb.renderPass)
	b.frameBuffers.Destroy(fbh)
}

func (b *Backend) FrameBufferResize(fbh gal.FrameBuffer, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.Err(gal.Failure, "noop: FrameBufferResize on unknown framebuffer")
	}
	fb.width, fb.height = width, height
	for i := range fb.colors {
		fb.colors[i] = newFramebufferImage(width, height)
	}
	if fb.info.HasDepth {
		fb.depth = make([]float32, width*height)
	}
	return nil
}

func (b *Backend) FrameBufferGetRenderPass(fbh gal.FrameBuffer) gal.RenderPass {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.RenderPass{}
	}
	return fb.renderPass
}

// FrameBufferColorTexture exposes the off-screen color attachment at index
// as a sampleable Texture handle, the render-to-texture capability
// SPEC_FULL.md §D.5 supplements from the original (spec.md was silent on
// how a framebuffer's color output becomes consumable elsewhere).
func (b *Backend) FrameBufferColorTexture(fbh gal.FrameBuffer, index int) gal.Texture {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok || index < 0 || index >= len(fb.colorHandles) {
		return gal.Texture{}
	}
	return fb.colorHandles[index]
}
