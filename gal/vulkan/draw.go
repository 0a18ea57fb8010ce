// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// activeCmd returns wh's current command buffer, regardless of whether an
// active framebuffer is redirecting render-pass target selection — the
// command buffer being submitted is always the window's own.
func (b *Backend) activeCmd(wh gal.Window) (vk.CommandBuffer, bool) {
	w, ok := b.windows.Get(wh)
	if !ok {
		return 0, false
	}
	return w.cmdBuffers[w.frameIndex], true
}

func (b *Backend) RenderCmdSetViewport(wh gal.Window, vp gal.Viewport) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	width, height := vp.Width, vp.Height
	if width < 0 || height < 0 {
		width, height = b.targetSizeLocked(wh)
	}
	vv := vk.Viewport{X: vp.X, Y: vp.Y, Width: width, Height: height, MinDepth: vp.MinDepth, MaxDepth: vp.MaxDepth}
	b.cmds.CmdSetViewport(cmd, 0, 1, &vv)
}

func (b *Backend) RenderCmdSetScissor(wh gal.Window, sc gal.Scissor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	width, height := sc.Width, sc.Height
	if width < 0 || height < 0 {
		w, h := b.targetSizeLocked(wh)
		width, height = int32(w), int32(h)
	}
	rect := vk.Rect2D{
		Offset: vk.Offset2D{X: sc.X, Y: sc.Y},
		Extent: vk.Extent2D{Width: uint32(width), Height: uint32(height)},
	}
	b.cmds.CmdSetScissor(cmd, 0, 1, &rect)
}

// targetSizeLocked resolves the -1/-1 "match framebuffer" Viewport/Scissor
// convention against whichever target (window or active framebuffer) is
// currently selected.
func (b *Backend) targetSizeLocked(wh gal.Window) (float32, float32) {
	if b.activeFB != nil {
		return float32(b.activeFB.width), float32(b.activeFB.height)
	}
	if w, ok := b.windows.Get(wh); ok {
		return float32(w.width), float32(w.height)
	}
	return 0, 0
}

func (b *Backend) RenderCmdBindPipeline(wh gal.Window, ph gal.Pipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	p, ok := b.pipelines.Get(ph)
	if !ok {
		return
	}
	b.cmds.CmdBindPipeline(cmd, vkPipelineBindPointGraphics, p.handle)
	if w, ok := b.windows.Get(wh); ok {
		w.boundPipeline = ph
	}
}

func (b *Backend) RenderCmdBindDescriptorSets(wh gal.Window, sets []gal.DescriptorSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok || len(sets) == 0 {
		return
	}
	handles := make([]vk.DescriptorSet, 0, len(sets))
	var layout vk.PipelineLayout
	for _, sh := range sets {
		ds, ok := b.descriptorSets.Get(sh)
		if !ok {
			continue
		}
		handles = append(handles, ds.handle)
	}
	if len(handles) == 0 {
		return
	}
	if w, ok := b.windows.Get(wh); ok {
		if p, ok := b.pipelines.Get(w.boundPipeline); ok {
			layout = p.layout
		}
	}
	b.cmds.CmdBindDescriptorSets(cmd, vkPipelineBindPointGraphics, layout, 0, uint32(len(handles)), &handles[0], 0, nil)
}

func (b *Backend) RenderCmdBindVertexBuffer(wh gal.Window, bh gal.Buffer, binding uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return
	}
	handle := buf.handle
	var offset uint64
	b.cmds.CmdBindVertexBuffers(cmd, binding, 1, &handle, &offset)
}

func (b *Backend) RenderCmdBindIndexBuffer(wh gal.Window, bh gal.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return
	}
	b.cmds.CmdBindIndexBuffer(cmd, buf.handle, 0, vkIndexTypeUint32)
}

func (b *Backend) RenderCmdDraw(wh gal.Window, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	b.cmds.CmdDraw(cmd, vertexCount, instanceCount, firstVertex, firstInstance)
	if w, ok := b.windows.Get(wh); ok {
		w.drawCount++
	}
}

func (b *Backend) RenderCmdDrawIndexed(wh gal.Window, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cmd, ok := b.activeCmd(wh)
	if !ok {
		return
	}
	b.cmds.CmdDrawIndexed(cmd, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
	if w, ok := b.windows.Get(wh); ok {
		w.drawCount++
	}
}
