// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// blockNameForBinding and samplerUniformNameForBinding fix the GLSL naming
// convention shaders compiled through CreateShader must follow for
// RenderCmdBindDescriptorSets to resolve a binding index to a uniform
// location: GL has no VkDescriptorSetLayoutBinding equivalent, so the
// binding-to-name mapping has to live somewhere, and the shader source is
// the only place left to put it.
func blockNameForBinding(binding uint32) string {
	return fmt.Sprintf("Block%d", binding)
}

func samplerUniformNameForBinding(binding uint32) string {
	return fmt.Sprintf("uTexture%d", binding)
}

// samplerInfoFor resolves the sampler state to apply for an image binding:
// an explicit gal.Sampler handle wins, falling back to the texture's own
// default sampler (the one resolved at CreateTexture time).
func samplerInfoFor(b *Backend, samplerHandle gal.Sampler, textureDefault gal.SamplerCreateInfo) gal.SamplerCreateInfo {
	if s, ok := b.samplers.Get(samplerHandle); ok {
		return s.info
	}
	return textureDefault
}

// applySamplerState emulates a sampler object via TexParameteri on the
// currently bound texture, since GL (outside of the sampler-object
// extension this binding doesn't wrap) ties filtering/wrap state to the
// texture itself rather than a separate bindable object.
func applySamplerState(ctx *gl.Context, target uint32, info gal.SamplerCreateInfo) {
	ctx.TexParameteri(target, gl.TEXTURE_MIN_FILTER, glFilter(info.MinFilter))
	ctx.TexParameteri(target, gl.TEXTURE_MAG_FILTER, glFilter(info.MagFilter))
	ctx.TexParameteri(target, gl.TEXTURE_WRAP_S, glWrapMode(info.WrapU))
	ctx.TexParameteri(target, gl.TEXTURE_WRAP_T, glWrapMode(info.WrapV))
	ctx.TexParameteri(target, gl.TEXTURE_WRAP_R, glWrapMode(info.WrapW))
}
