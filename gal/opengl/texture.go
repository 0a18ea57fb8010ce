// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"unsafe"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

func bytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// resolveSamplerInfoLocked picks info.Sampler when given, otherwise looks
// up info.SamplerRef, otherwise falls back to bilinear/repeat — GL has no
// sampler object to defer to at draw time the way gal/vulkan's SamplerRef
// indirection does, so the resolved state is baked into nativeTexture and
// reapplied per bind in RenderCmdBindDescriptorSets.
func (b *Backend) resolveSamplerInfoLocked(sampler *gal.SamplerCreateInfo, ref gal.Sampler) gal.SamplerCreateInfo {
	if sampler != nil {
		return *sampler
	}
	if s, ok := b.samplers.Get(ref); ok {
		return s.info
	}
	return gal.SamplerCreateInfo{MinFilter: gal.FilterLinear, MagFilter: gal.FilterLinear}
}

func (b *Backend) CreateTexture(info gal.TextureCreateInfo) (gal.Texture, error) {
	if err := gal.ValidateTexture(info); err != nil {
		return gal.Texture{}, err
	}
	if len(info.Pixels) == 0 {
		return gal.Texture{}, gal.Err(gal.Failure, "opengl: CreateTexture: Pixels must not be empty")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	sampler := b.resolveSamplerInfoLocked(info.Sampler, info.SamplerRef)

	handle := b.gl.GenTextures(1)
	b.gl.BindTexture(gl.TEXTURE_2D, handle)
	uploadFmt, uploadType := glUploadFormat(info.Format)
	b.gl.TexImage2D(gl.TEXTURE_2D, 0, glInternalFormat(info.Format), int32(info.Width), int32(info.Height), 0,
		uploadFmt, uploadType, bytesPtr(info.Pixels))
	applySamplerState(&b.gl, gl.TEXTURE_2D, sampler)
	b.gl.BindTexture(gl.TEXTURE_2D, 0)

	h, _, err := b.textures.Create(false, func(t *nativeTexture) {
		t.handle = handle
		t.width, t.height = info.Width, info.Height
		t.format = info.Format
		t.sampler = sampler
	})
	if err != nil {
		b.gl.DeleteTextures(handle)
		return gal.Texture{}, err
	}
	return h, nil
}

func (b *Backend) DestroyTexture(th gal.Texture) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.textures.Get(th)
	if !ok {
		return
	}
	b.gl.DeleteTextures(t.handle)
	b.textures.Destroy(th)
}

func (b *Backend) CreateTextureSampler(info gal.SamplerCreateInfo) (gal.Sampler, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.samplers.Create(false, func(s *nativeSampler) { s.info = info })
	if err != nil {
		return gal.Sampler{}, err
	}
	return h, nil
}

func (b *Backend) DestroySampler(sh gal.Sampler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.samplers.Get(sh); !ok {
		return
	}
	b.samplers.Destroy(sh)
}

func (b *Backend) CreateCubemap(info gal.CubemapCreateInfo) (gal.Cubemap, error) {
	if err := gal.ValidateCubemap(info); err != nil {
		return gal.Cubemap{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	sampler := b.resolveSamplerInfoLocked(info.Faces[0].Sampler, info.Faces[0].SamplerRef)

	handle := b.gl.GenTextures(1)
	b.gl.BindTexture(gl.TEXTURE_CUBE_MAP, handle)
	uploadFmt, uploadType := glUploadFormat(info.Format)
	internalFmt := glInternalFormat(info.Format)
	for i, face := range info.Faces {
		target := gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(i)
		b.gl.TexImage2D(target, 0, internalFmt, int32(face.Width), int32(face.Height), 0,
			uploadFmt, uploadType, bytesPtr(face.Pixels))
	}
	applySamplerState(&b.gl, gl.TEXTURE_CUBE_MAP, sampler)
	b.gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	h, _, err := b.cubemaps.Create(false, func(c *nativeCubemap) {
		c.handle = handle
		c.format = info.Format
		c.info = sampler
	})
	if err != nil {
		b.gl.DeleteTextures(handle)
		return gal.Cubemap{}, err
	}
	return h, nil
}

func (b *Backend) DestroyCubemap(ch gal.Cubemap) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.cubemaps.Get(ch)
	if !ok {
		return
	}
	b.gl.DeleteTextures(c.handle)
	b.cubemaps.Destroy(ch)
}
