package model

import (
	"github.com/binmian/levikno/gal"
	levikno "github.com/binmian/levikno/context"
	"github.com/binmian/levikno/vmath"
)

// AlphaMode mirrors glTF's material.alphaMode.
type AlphaMode int

const (
	AlphaOpaque AlphaMode = iota
	AlphaMask
	AlphaBlend
)

// Material holds the four GPU textures (spec.md §4.7 "one Material
// referencing four textures") plus the PBR metallic-roughness scalar
// factors, always populated even when the glTF material omits a texture
// (missing slots are filled with the documented 1×1 defaults).
type Material struct {
	Albedo                     gal.Texture
	MetallicRoughnessOcclusion gal.Texture
	Normal                     gal.Texture
	Emissive                   gal.Texture

	BaseColorFactor   vmath.Vec4
	MetallicFactor    float32
	RoughnessFactor   float32
	NormalScale       float32
	OcclusionStrength float32
	EmissiveFactor    vmath.Vec3

	AlphaMode   AlphaMode
	AlphaCutoff float32
	DoubleSided bool
}

// default1x1 creates a single-pixel texture, used for the four PBR slots a
// glTF material leaves unset.
func default1x1(ctx *levikno.Context, rgba [4]byte) (gal.Texture, error) {
	return ctx.Backend().CreateTexture(gal.TextureCreateInfo{
		Width: 1, Height: 1, Channels: 4,
		Pixels: rgba[:],
		Format: gal.ColorFormatRGBA8,
	})
}

// defaultTextures builds the four fallback 1×1 textures spec.md §4.7
// documents: white albedo, (0,1,0,1) metallic-roughness-occlusion,
// (0.5,0.5,1,1) normal (tangent-space up), and fully transparent black
// emissive.
type defaultTextures struct {
	albedo, mro, normal, emissive gal.Texture
}

func buildDefaultTextures(ctx *levikno.Context) (defaultTextures, error) {
	var d defaultTextures
	var err error
	if d.albedo, err = default1x1(ctx, [4]byte{255, 255, 255, 255}); err != nil {
		return d, err
	}
	if d.mro, err = default1x1(ctx, [4]byte{0, 255, 0, 255}); err != nil {
		return d, err
	}
	if d.normal, err = default1x1(ctx, [4]byte{127, 127, 255, 255}); err != nil {
		return d, err
	}
	if d.emissive, err = default1x1(ctx, [4]byte{0, 0, 0, 0}); err != nil {
		return d, err
	}
	return d, nil
}

func alphaModeFromString(s string) AlphaMode {
	switch s {
	case alphaMask:
		return AlphaMask
	case alphaBlend:
		return AlphaBlend
	default:
		return AlphaOpaque
	}
}

// buildMaterial resolves a glTF material into GPU textures, picking each
// referenced image's texture from images (already decoded and created by
// Load) and falling back to d's defaults for slots the material leaves
// unset or that do not resolve to an image.
func (doc *document) buildMaterial(ctx *levikno.Context, gm *gMaterial, images []gal.Texture, d defaultTextures) (*Material, error) {
	m := &Material{
		Albedo:            d.albedo,
		MetallicRoughnessOcclusion: d.mro,
		Normal:            d.normal,
		Emissive:          d.emissive,
		BaseColorFactor:   vmath.Vec4{X: 1, Y: 1, Z: 1, W: 1},
		MetallicFactor:    1,
		RoughnessFactor:   1,
		NormalScale:       1,
		OcclusionStrength: 1,
		AlphaMode:         alphaModeFromString(gm.AlphaMode),
		AlphaCutoff:       0.5,
		DoubleSided:       gm.DoubleSided,
	}
	if gm.AlphaCutoff != nil {
		m.AlphaCutoff = *gm.AlphaCutoff
	}

	texForSource := func(textureIdx int) gal.Texture {
		if textureIdx < 0 || textureIdx >= len(doc.Textures) {
			return gal.Texture{}
		}
		src := doc.Textures[textureIdx].Source
		if src == nil || *src < 0 || *src >= len(images) {
			return gal.Texture{}
		}
		return images[*src]
	}

	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorFactor != nil {
			f := *pbr.BaseColorFactor
			m.BaseColorFactor = vmath.Vec4{X: f[0], Y: f[1], Z: f[2], W: f[3]}
		}
		if pbr.MetallicFactor != nil {
			m.MetallicFactor = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			m.RoughnessFactor = *pbr.RoughnessFactor
		}
		if pbr.BaseColorTexture != nil {
			if t := texForSource(pbr.BaseColorTexture.Index); !t.IsZero() {
				m.Albedo = t
			}
		}
		if pbr.MetallicRoughnessTexture != nil {
			if t := texForSource(pbr.MetallicRoughnessTexture.Index); !t.IsZero() {
				m.MetallicRoughnessOcclusion = t
			}
		}
	}
	if gm.NormalTexture != nil {
		m.NormalScale = orDefault(gm.NormalTexture.Scale, 1)
		if t := texForSource(gm.NormalTexture.Index); !t.IsZero() {
			m.Normal = t
		}
	}
	if gm.OcclusionTexture != nil {
		m.OcclusionStrength = orDefault(gm.OcclusionTexture.Strength, 1)
	}
	if gm.EmissiveTexture != nil {
		if t := texForSource(gm.EmissiveTexture.Index); !t.IsZero() {
			m.Emissive = t
		}
	}
	if gm.EmissiveFactor != nil {
		f := *gm.EmissiveFactor
		m.EmissiveFactor = vmath.Vec3{X: f[0], Y: f[1], Z: f[2]}
	}
	return m, nil
}

func orDefault(v float32, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}
