// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

func (b *Backend) targetSizeLocked(wh gal.Window) (int32, int32) {
	if b.activeFB != nil {
		return int32(b.activeFB.width), int32(b.activeFB.height)
	}
	if w, ok := b.windows.Get(wh); ok {
		return int32(w.width), int32(w.height)
	}
	return 0, 0
}

func (b *Backend) RenderCmdSetViewport(wh gal.Window, vp gal.Viewport) {
	b.mu.Lock()
	defer b.mu.Unlock()
	width, height := int32(vp.Width), int32(vp.Height)
	if vp.Width < 0 || vp.Height < 0 {
		width, height = b.targetSizeLocked(wh)
	}
	b.gl.Viewport(int32(vp.X), int32(vp.Y), width, height)
}

func (b *Backend) RenderCmdSetScissor(wh gal.Window, sc gal.Scissor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	width, height := sc.Width, sc.Height
	if width < 0 || height < 0 {
		width, height = b.targetSizeLocked(wh)
	}
	b.gl.Scissor(sc.X, sc.Y, width, height)
}

// RenderCmdBindPipeline applies ph's baked rasterizer/blend/depth-stencil
// state immediately, since GL has no monolithic pipeline object to bind —
// every field of gal.PipelineSpec is re-applied as loose GL state on every
// bind, unlike gal/vulkan's single vkCmdBindPipeline call.
func (b *Backend) RenderCmdBindPipeline(wh gal.Window, ph gal.Pipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pipelines.Get(ph)
	if !ok {
		return
	}
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	w.boundPipeline = ph

	b.gl.UseProgram(p.program)

	spec := p.spec
	if face, enable := glCullFace(spec.Rasterizer.CullMode); enable {
		b.gl.Enable(gl.CULL_FACE)
		b.gl.CullFace(face)
	} else {
		b.gl.Disable(gl.CULL_FACE)
	}
	b.gl.FrontFace(glFrontFace(spec.Rasterizer.FrontFace))

	if spec.DepthStencil.EnableDepth {
		b.gl.Enable(gl.DEPTH_TEST)
		b.gl.DepthFunc(glCompareOp(spec.DepthStencil.DepthOpCompare))
	} else {
		b.gl.Disable(gl.DEPTH_TEST)
	}
	b.gl.DepthMask(spec.DepthStencil.EnableDepth)

	if spec.DepthStencil.EnableStencil {
		b.gl.Enable(gl.STENCIL_TEST)
		front := spec.DepthStencil.Front
		b.gl.StencilFunc(glCompareOp(front.CompareOp), int32(front.Reference), front.CompareMask)
		b.gl.StencilOp(glStencilOp(front.FailOp), glStencilOp(front.DepthFailOp), glStencilOp(front.PassOp))
		b.gl.StencilMask(front.WriteMask)
	} else {
		b.gl.Disable(gl.STENCIL_TEST)
	}

	if len(spec.ColorBlend.Attachments) > 0 && spec.ColorBlend.Attachments[0].Enable {
		ba := spec.ColorBlend.Attachments[0]
		b.gl.Enable(gl.BLEND)
		b.gl.BlendFuncSeparate(
			glBlendFactor(ba.SrcColorFactor), glBlendFactor(ba.DstColorFactor),
			glBlendFactor(ba.SrcAlphaFactor), glBlendFactor(ba.DstAlphaFactor),
		)
		b.gl.BlendEquationSeparate(glBlendOp(ba.ColorOp), glBlendOp(ba.AlphaOp))
	} else {
		b.gl.Disable(gl.BLEND)
	}
}

// RenderCmdBindDescriptorSets applies every recorded buffer/image binding
// of sets directly against the currently bound program, since GL resolves
// uniform-block and sampler bindings per draw rather than through a
// descriptor-set object.
func (b *Backend) RenderCmdBindDescriptorSets(wh gal.Window, sets []gal.DescriptorSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok || len(sets) == 0 {
		return
	}
	p, ok := b.pipelines.Get(w.boundPipeline)
	if !ok {
		return
	}

	unit := int32(0)
	for _, sh := range sets {
		s, ok := b.descriptorSets.Get(sh)
		if !ok {
			continue
		}
		for binding, ubh := range s.buffers {
			ub, ok := b.uniformBuffers.Get(ubh)
			if !ok {
				continue
			}
			b.gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ub.handle)
			if idx := b.gl.GetUniformBlockIndex(p.program, blockNameForBinding(binding)); idx != invalidUniformBlockIndex {
				b.gl.UniformBlockBinding(p.program, idx, binding)
			}
		}
		for binding, img := range s.images {
			t, ok := b.textures.Get(img.texture)
			if !ok {
				continue
			}
			b.gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
			b.gl.BindTexture(gl.TEXTURE_2D, t.handle)
			applySamplerState(&b.gl, gl.TEXTURE_2D, samplerInfoFor(b, img.sampler, t.sampler))
			if loc := b.gl.GetUniformLocation(p.program, samplerUniformNameForBinding(binding)); loc >= 0 {
				b.gl.Uniform1i(loc, unit)
			}
			unit++
		}
	}
}

func (b *Backend) RenderCmdBindVertexBuffer(wh gal.Window, bh gal.Buffer, binding uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return
	}
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	b.gl.BindVertexArray(w.vao)
	b.gl.BindBuffer(gl.ARRAY_BUFFER, buf.handle)

	var stride uint32
	for _, vb := range buf.layout.Bindings {
		if vb.Binding == binding {
			stride = vb.Stride
			break
		}
	}
	for _, va := range buf.layout.Attributes {
		if va.Binding != binding {
			continue
		}
		typ, count, normalized := glVertexAttribType(va.Format)
		b.gl.EnableVertexAttribArray(va.Location)
		b.gl.VertexAttribPointer(va.Location, count, typ, normalized, int32(stride), uintptr(va.Offset))
	}
}

func (b *Backend) RenderCmdBindIndexBuffer(wh gal.Window, bh gal.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return
	}
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	b.gl.BindVertexArray(w.vao)
	b.gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.handle)
}

func (b *Backend) RenderCmdDraw(wh gal.Window, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	mode := drawModeLocked(b, w.boundPipeline)
	if instanceCount <= 1 {
		b.gl.DrawArrays(mode, int32(firstVertex), int32(vertexCount))
	} else {
		b.gl.DrawArraysInstanced(mode, int32(firstVertex), int32(vertexCount), int32(instanceCount))
	}
	w.drawCount++
}

func (b *Backend) RenderCmdDrawIndexed(wh gal.Window, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return
	}
	mode := drawModeLocked(b, w.boundPipeline)
	offset := uintptr(firstIndex) * 4
	if instanceCount <= 1 {
		b.gl.DrawElements(mode, int32(indexCount), gl.UNSIGNED_INT, offset)
	} else {
		b.gl.DrawElementsInstanced(mode, int32(indexCount), gl.UNSIGNED_INT, offset, int32(instanceCount))
	}
	w.drawCount++
}

func drawModeLocked(b *Backend, ph gal.Pipeline) uint32 {
	if p, ok := b.pipelines.Get(ph); ok {
		return glTopology(p.spec.InputAssembly.Topology)
	}
	return gl.TRIANGLES
}

const invalidUniformBlockIndex = 0xFFFFFFFF
