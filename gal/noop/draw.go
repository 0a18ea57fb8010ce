package noop

import "github.com/binmian/levikno/gal"

func (b *Backend) RenderCmdSetViewport(wh gal.Window, vp gal.Viewport) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows.Get(wh); ok {
		w.viewport = vp
	}
}

func (b *Backend) RenderCmdSetScissor(wh gal.Window, sc gal.Scissor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows.Get(wh); ok {
		w.scissor = sc
	}
}

func (b *Backend) RenderCmdBindPipeline(wh gal.Window, p gal.Pipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows.Get(wh); ok {
		w.boundPipeline = p
	}
}

func (b *Backend) RenderCmdBindDescriptorSets(wh gal.Window, sets []gal.DescriptorSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows.Get(wh); ok {
		w.boundSets = sets
	}
}

func (b *Backend) RenderCmdBindVertexBuffer(wh gal.Window, buf gal.Buffer, binding uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows.Get(wh); ok {
		w.boundVertex[binding] = buf
	}
}

func (b *Backend) RenderCmdBindIndexBuffer(wh gal.Window, buf gal.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows.Get(wh); ok {
		w.boundIndex = buf
	}
}

// boundTexture resolves the texture bound at binding 0 of the window's
// first bound descriptor set, the fixed convention the package doc
// describes for sampling in RenderCmdDraw/RenderCmdDrawIndexed.
func (b *Backend) boundTexture(w *nativeWindow) *nativeTexture {
	if len(w.boundSets) == 0 {
		return nil
	}
	set, ok := b.descriptorSets.Get(w.boundSets[0])
	if !ok {
		return nil
	}
	upd, ok := set.images[0]
	if !ok {
		return nil
	}
	tex, ok := b.textures.Get(upd.Texture)
	if !ok {
		return nil
	}
	return tex
}

func (b *Backend) windowTarget(w *nativeWindow) target {
	depthEnabled := false
	if p, ok := b.pipelines.Get(w.boundPipeline); ok {
		depthEnabled = p.info.Spec.DepthStencil.EnableDepth
	}
	if b.activeFB != nil && len(b.activeFB.colors) > 0 {
		return target{
			width: b.activeFB.width, height: b.activeFB.height,
			color: b.activeFB.colors[0], depth: b.activeFB.depth,
			depthEnabled: depthEnabled && b.activeFB.info.HasDepth,
		}
	}
	return target{width: w.width, height: w.height, color: w.color, depth: w.depth, depthEnabled: depthEnabled}
}

func (b *Backend) RenderCmdDraw(wh gal.Window, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok || vertexCount < 3 {
		return
	}
	buf, ok := b.buffers.Get(w.boundVertex[0])
	if !ok {
		return
	}
	tgt := b.windowTarget(w)
	tex := b.boundTexture(w)
	for inst := uint32(0); inst < max1(instanceCount); inst++ {
		for i := firstVertex; i+2 < firstVertex+vertexCount; i += 3 {
			v0 := decodeVertex(buf.vertexData, buf.layout, int(i))
			v1 := decodeVertex(buf.vertexData, buf.layout, int(i+1))
			v2 := decodeVertex(buf.vertexData, buf.layout, int(i+2))
			rasterizeTriangle(tgt, tex, v0, v1, v2)
		}
	}
	w.drawCount++
}

func (b *Backend) RenderCmdDrawIndexed(wh gal.Window, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok || indexCount < 3 {
		return
	}
	vbuf, ok := b.buffers.Get(w.boundVertex[0])
	if !ok {
		return
	}
	ibuf, ok := b.buffers.Get(w.boundIndex)
	if !ok {
		return
	}
	tgt := b.windowTarget(w)
	tex := b.boundTexture(w)
	for inst := uint32(0); inst < max1(instanceCount); inst++ {
		for i := firstIndex; i+2 < firstIndex+indexCount; i += 3 {
			if int(i+2) >= len(ibuf.indexData) {
				break
			}
			i0 := int(ibuf.indexData[i]) + int(vertexOffset)
			i1 := int(ibuf.indexData[i+1]) + int(vertexOffset)
			i2 := int(ibuf.indexData[i+2]) + int(vertexOffset)
			v0 := decodeVertex(vbuf.vertexData, vbuf.layout, i0)
			v1 := decodeVertex(vbuf.vertexData, vbuf.layout, i1)
			v2 := decodeVertex(vbuf.vertexData, vbuf.layout, i2)
			rasterizeTriangle(tgt, tex, v0, v1, v2)
		}
	}
	w.drawCount++
}

func max1(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	return n
}
