package noop

import "github.com/binmian/levikno/gal"

func (b *Backend) BeginNextFrame(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "noop: BeginNextFrame on unknown window")
	}
	w.frameIndex = (w.frameIndex + 1) % w.maxFrames
	return nil
}

func (b *Backend) DrawSubmit(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.windows.Get(wh); !ok {
		return gal.Err(gal.Failure, "noop: DrawSubmit on unknown window")
	}
	return nil
}

func (b *Backend) BeginCommandRecording(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "noop: BeginCommandRecording on unknown window")
	}
	if w.recording {
		return gal.Err(gal.AlreadyCalled, "noop: command recording already in progress")
	}
	w.recording = true
	return nil
}

func (b *Backend) EndCommandRecording(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "noop: EndCommandRecording on unknown window")
	}
	w.recording = false
	return nil
}

func (b *Backend) BeginRenderPass(wh gal.Window, rp gal.RenderPass, clear gal.ClearColor) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "noop: BeginRenderPass on unknown window")
	}
	if w.inRenderPass {
		return gal.Err(gal.AlreadyCalled, "noop: render pass already active")
	}
	w.inRenderPass = true
	w.lastClear = clear
	for i := range w.color.pixels {
		w.color.pixels[i] = [4]float32{clear.R, clear.G, clear.B, clear.A}
	}
	for i := range w.depth {
		w.depth[i] = 1
	}
	return nil
}

func (b *Backend) EndRenderPass(wh gal.Window) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "noop: EndRenderPass on unknown window")
	}
	w.inRenderPass = false
	return nil
}

func (b *Backend) BeginFrameBuffer(fbh gal.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.Err(gal.Failure, "noop: BeginFrameBuffer on unknown framebuffer")
	}
	if fb.recording {
		return gal.Err(gal.AlreadyCalled, "noop: framebuffer recording already in progress")
	}
	fb.recording = true
	b.activeFB = fb
	for ci, att := range fb.info.Attachments {
		if att.IsDepth {
			continue
		}
		img := fb.colors[ci]
		for i := range img.pixels {
			img.pixels[i] = [4]float32{att.Clear.R, att.Clear.G, att.Clear.B, att.Clear.A}
		}
	}
	if fb.info.HasDepth {
		for i := range fb.depth {
			fb.depth[i] = 1
		}
	}
	return nil
}

func (b *Backend) EndFrameBuffer(fbh gal.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok {
		return gal.Err(gal.Failure, "noop: EndFrameBuffer on unknown framebuffer")
	}
	fb.recording = false
	if b.activeFB == fb {
		b.activeFB = nil
	}
	for i, img := range fb.colors {
		if i >= len(fb.colorHandles) {
			break
		}
		tex, ok := b.textures.Get(fb.colorHandles[i])
		if !ok {
			continue
		}
		tex.pixels = make([]byte, len(img.pixels)*4)
		for p, c := range img.pixels {
			tex.pixels[p*4+0] = floatToByte(c[0])
			tex.pixels[p*4+1] = floatToByte(c[1])
			tex.pixels[p*4+2] = floatToByte(c[2])
			tex.pixels[p*4+3] = floatToByte(c[3])
		}
	}
	return nil
}

func floatToByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}
