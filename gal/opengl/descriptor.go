// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/binmian/levikno/gal"
)

// CreateDescriptorLayout only records the binding list: GL has no
// VkDescriptorSetLayout/VkDescriptorPool object, so there is nothing to
// allocate up front the way gal/vulkan does.
func (b *Backend) CreateDescriptorLayout(info gal.DescriptorLayoutCreateInfo) (gal.DescriptorLayout, error) {
	if err := gal.ValidateDescriptorLayout(info); err != nil {
		return gal.DescriptorLayout{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.descriptorLayouts.Create(false, func(l *nativeDescriptorLayout) {
		l.bindings = append([]gal.DescriptorBinding(nil), info.Bindings...)
	})
	if err != nil {
		return gal.DescriptorLayout{}, err
	}
	return h, nil
}

func (b *Backend) DestroyDescriptorLayout(lh gal.DescriptorLayout) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.descriptorLayouts.Get(lh); !ok {
		return
	}
	b.descriptorLayouts.Destroy(lh)
}

// CreateDescriptorSet allocates the buffer/image maps RenderCmdBindDescriptorSets
// reads from at draw time, the emulated stand-in for a VkDescriptorSet.
func (b *Backend) CreateDescriptorSet(info gal.DescriptorSetCreateInfo) (gal.DescriptorSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.descriptorLayouts.Get(info.Layout); !ok {
		return gal.DescriptorSet{}, gal.Err(gal.Failure, "opengl: CreateDescriptorSet: invalid layout handle")
	}
	h, _, err := b.descriptorSets.Create(false, func(s *nativeDescriptorSet) {
		s.layout = info.Layout
		s.buffers = make(map[uint32]gal.UniformBuffer)
		s.images = make(map[uint32]struct {
			texture gal.Texture
			sampler gal.Sampler
		})
	})
	if err != nil {
		return gal.DescriptorSet{}, err
	}
	return h, nil
}

// UpdateDescriptorSetData records buffer/image bindings into s's maps;
// bindless array updates are accepted but inert, the same stance
// gal/vulkan takes without a bindless-texture extension wired in.
func (b *Backend) UpdateDescriptorSetData(sh gal.DescriptorSet, updates []gal.DescriptorSetUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.descriptorSets.Get(sh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: UpdateDescriptorSetData: invalid descriptor set handle")
	}
	for _, u := range updates {
		switch {
		case u.Buffer != nil:
			if _, ok := b.uniformBuffers.Get(u.Buffer.Buffer); !ok {
				return gal.Err(gal.Failure, "opengl: UpdateDescriptorSetData: invalid uniform buffer handle")
			}
			s.buffers[u.Buffer.Binding] = u.Buffer.Buffer
		case u.Image != nil:
			if _, ok := b.textures.Get(u.Image.Texture); !ok {
				return gal.Err(gal.Failure, "opengl: UpdateDescriptorSetData: invalid texture handle")
			}
			s.images[u.Image.Binding] = struct {
				texture gal.Texture
				sampler gal.Sampler
			}{texture: u.Image.Texture, sampler: u.Image.Sampler}
		case u.Bindless != nil:
			continue
		}
	}
	return nil
}
