package noop

import (
	"github.com/binmian/levikno/gal"
)

func (b *Backend) CreateWindow(info gal.WindowCreateInfo) (gal.Window, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return gal.Window{}, gal.Err(gal.Failure, "noop: window size must be positive, got %dx%d", info.Width, info.Height)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	rp, _, err := b.renderPasses.Create(false, func(rp *nativeRenderPass) {
		rp.colorFormat = gal.ColorFormatRGBA8
		rp.depthFormat = gal.DepthFormatD32
		rp.hasDepth = true
	})
	if err != nil {
		return gal.Window{}, err
	}

	maxFrames := b.maxFramesInFlight
	if maxFrames <= 0 {
		maxFrames = 2
	}

	h, _, err := b.windows.Create(false, func(w *nativeWindow) {
		w.width, w.height = info.Width, info.Height
		w.title = info.Title
		w.vsync = info.VSync
		w.maxFrames = maxFrames
		w.renderPass = rp
		w.color = newFramebufferImage(info.Width, info.Height)
		w.depth = make([]float32, info.Width*info.Height)
		w.boundVertex = make(map[uint32]gal.Buffer)
	})
	if err != nil {
		b.renderPasses.Destroy(rp)
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
	b.renderPasses.Destroy(w.renderPass)
	w.destroyed = true
	b.windows.Destroy(wh)
}

func (b *Backend) WindowGetRenderPass(wh gal.Window) gal.RenderPass {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.RenderPass{}
	}
	return w.renderPass
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

// Resize lets tests exercise a zero-sized framebuffer (spec.md "minimized
// window") without a real windowing backend behind it.
func (b *Backend) Resize(wh gal.Window, width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	w.width, w.height = width, height
	if width > 0 && height > 0 {
		w.color = newFramebufferImage(width, height)
		w.depth = make([]float32, width*height)
	}
}

// ReadPixel returns the window's current color buffer value at (x,y), the
// readback hook SPEC_FULL.md §A.4 calls for to assert S1-S4's pixel-level
// expectations without a real swapchain to read from.
func (b *Backend) ReadPixel(wh gal.Window, x, y int) ([4]float32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok || x < 0 || y < 0 || x >= w.width || y >= w.height {
		return [4]float32{}, false
	}
	return w.color.at(x, y), true
}

// LastClearColor reports the clear value passed to the most recent
// BeginRenderPass call on wh.
func (b *Backend) LastClearColor(wh gal.Window) (gal.ClearColor, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.ClearColor{}, false
	}
	return w.lastClear, true
}

// DrawCallCount reports how many draw commands have been issued against wh
// since creation; used by P-series tests asserting command recording shape.
func (b *Backend) DrawCallCount(wh gal.Window) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return 0
	}
	return w.drawCount
}

// ReadFrameBufferPixel reads back a framebuffer's color attachment at
// (x,y), the render-to-texture readback hook S4 needs.
func (b *Backend) ReadFrameBufferPixel(fbh gal.FrameBuffer, attachment, x, y int) ([4]float32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb, ok := b.frameBuffers.Get(fbh)
	if !ok || attachment < 0 || attachment >= len(fb.colors) {
		return [4]float32{}, false
	}
	img := fb.colors[attachment]
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return [4]float32{}, false
	}
	return img.at(x, y), true
}
