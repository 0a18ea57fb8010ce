// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// CreateDescriptorLayout builds a VkDescriptorSetLayout plus a
// VkDescriptorPool sized for MaxSets, owned by the layout so
// CreateDescriptorSet never has to juggle pool lifetime separately.
func (b *Backend) CreateDescriptorLayout(info gal.DescriptorLayoutCreateInfo) (gal.DescriptorLayout, error) {
	if len(info.Bindings) == 0 {
		return gal.DescriptorLayout{}, gal.Err(gal.Failure, "vulkan: CreateDescriptorLayout: Bindings must not be empty")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	vkBindings := make([]vk.DescriptorSetLayoutBinding, len(info.Bindings))
	poolSizes := make([]vk.DescriptorPoolSize, len(info.Bindings))
	for i, bind := range info.Bindings {
		count := bind.Count
		if count == 0 {
			count = 1
		}
		dt := vkDescriptorType(bind.Kind)
		vkBindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         bind.Binding,
			DescriptorType:  dt,
			DescriptorCount: count,
			StageFlags:      vkShaderStageFlags(bind.Stage),
		}
		poolSizes[i] = vk.DescriptorPoolSize{Type: dt, DescriptorCount: count * maxu32(info.MaxSets, 1)}
	}

	layoutInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(vkBindings)),
		PBindings:    sliceHead(vkBindings),
	}
	var layout vk.DescriptorSetLayout
	if res := b.cmds.CreateDescriptorSetLayout(b.device, &layoutInfo, &layout); !res.IsSuccess() {
		return gal.DescriptorLayout{}, fmt.Errorf("vulkan: vkCreateDescriptorSetLayout: %w", res)
	}

	maxSets := info.MaxSets
	if maxSets == 0 {
		maxSets = 1
	}
	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       maxSets,
		PoolSizeCount: uint32(len(poolSizes)),
		PPoolSizes:    sliceHead(poolSizes),
	}
	var pool vk.DescriptorPool
	if res := b.cmds.CreateDescriptorPool(b.device, &poolInfo, &pool); !res.IsSuccess() {
		b.cmds.DestroyDescriptorSetLayout(b.device, layout)
		return gal.DescriptorLayout{}, fmt.Errorf("vulkan: vkCreateDescriptorPool: %w", res)
	}

	h, _, err := b.descriptorLayouts.Create(false, func(l *nativeDescriptorLayout) {
		l.handle = layout
		l.pool = pool
		l.bindings = append([]gal.DescriptorBinding(nil), info.Bindings...)
	})
	if err != nil {
		b.cmds.DestroyDescriptorPool(b.device, pool)
		b.cmds.DestroyDescriptorSetLayout(b.device, layout)
		return gal.DescriptorLayout{}, err
	}
	return h, nil
}

func (b *Backend) DestroyDescriptorLayout(lh gal.DescriptorLayout) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.descriptorLayouts.Get(lh)
	if !ok {
		return
	}
	b.cmds.DestroyDescriptorPool(b.device, l.pool)
	b.cmds.DestroyDescriptorSetLayout(b.device, l.handle)
	b.descriptorLayouts.Destroy(lh)
}

func (b *Backend) CreateDescriptorSet(info gal.DescriptorSetCreateInfo) (gal.DescriptorSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.descriptorLayouts.Get(info.Layout)
	if !ok {
		return gal.DescriptorSet{}, gal.Err(gal.Failure, "vulkan: CreateDescriptorSet: invalid layout handle")
	}

	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     l.pool,
		DescriptorSetCount: 1,
		PSetLayouts:        ptrOf(&l.handle),
	}
	var set vk.DescriptorSet
	if res := b.cmds.AllocateDescriptorSets(b.device, &allocInfo, &set); !res.IsSuccess() {
		return gal.DescriptorSet{}, fmt.Errorf("vulkan: vkAllocateDescriptorSets: %w", res)
	}

	h, _, err := b.descriptorSets.Create(false, func(s *nativeDescriptorSet) {
		s.handle = set
		s.layout = info.Layout
	})
	if err != nil {
		return gal.DescriptorSet{}, err
	}
	return h, nil
}

// UpdateDescriptorSetData translates gal's tagged-union update shapes into
// a single vkUpdateDescriptorSets batch call.
func (b *Backend) UpdateDescriptorSetData(sh gal.DescriptorSet, updates []gal.DescriptorSetUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.descriptorSets.Get(sh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: UpdateDescriptorSetData: invalid descriptor set handle")
	}

	writes := make([]vk.WriteDescriptorSet, 0, len(updates))
	// bufferInfos/imageInfos are kept alive for the duration of the
	// UpdateDescriptorSets call below via these backing slices.
	bufferInfos := make([]vk.DescriptorBufferInfo, 0, len(updates))
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(updates))

	for _, u := range updates {
		write := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          s.handle,
			DescriptorCount: 1,
			DescriptorType:  vkDescriptorType(u.Kind),
		}
		switch {
		case u.Buffer != nil:
			ub, ok := b.uniformBuffers.Get(u.Buffer.Buffer)
			if !ok {
				return gal.Err(gal.Failure, "vulkan: UpdateDescriptorSetData: invalid uniform buffer handle")
			}
			rng := u.Buffer.Range
			if rng == 0 {
				rng = vkWholeSize
			}
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{
				Buffer: ub.buffers[0],
				Offset: u.Buffer.Offset,
				Range:  rng,
			})
			write.DstBinding = u.Buffer.Binding
			write.PBufferInfo = ptrOf(&bufferInfos[len(bufferInfos)-1])
		case u.Image != nil:
			t, ok := b.textures.Get(u.Image.Texture)
			if !ok {
				return gal.Err(gal.Failure, "vulkan: UpdateDescriptorSetData: invalid texture handle")
			}
			sampler := t.sampler
			if samp, ok := b.samplers.Get(u.Image.Sampler); ok {
				sampler = samp.handle
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				Sampler:     sampler,
				ImageView:   t.view,
				ImageLayout: vkImageLayoutShaderReadOnlyOptimal,
			})
			write.DstBinding = u.Image.Binding
			write.PImageInfo = ptrOf(&imageInfos[len(imageInfos)-1])
		case u.Bindless != nil:
			// Bindless arrays are laid out as a storage-buffer binding on
			// this backend (see vkDescriptorType); without a bindless
			// texture extension wired up, no descriptor write is issued,
			// so the update is accepted but inert.
			continue
		default:
			continue
		}
		writes = append(writes, write)
	}
	if len(writes) == 0 {
		return nil
	}
	b.cmds.UpdateDescriptorSets(b.device, uint32(len(writes)), &writes[0], 0, nil)
	return nil
}

func maxu32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
