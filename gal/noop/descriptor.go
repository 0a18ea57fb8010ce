package noop

import "github.com/binmian/levikno/gal"

func (b *Backend) CreateDescriptorLayout(info gal.DescriptorLayoutCreateInfo) (gal.DescriptorLayout, error) {
	if err := gal.ValidateDescriptorLayout(info); err != nil {
		return gal.DescriptorLayout{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.descriptorLayouts.Create(false, func(l *nativeDescriptorLayout) {
		l.bindings = append([]gal.DescriptorBinding(nil), info.Bindings...)
		l.maxSets = info.MaxSets
	})
	return h, err
}

func (b *Backend) DestroyDescriptorLayout(l gal.DescriptorLayout) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.descriptorLayouts.Destroy(l)
}

func (b *Backend) CreateDescriptorSet(info gal.DescriptorSetCreateInfo) (gal.DescriptorSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	layout, ok := b.descriptorLayouts.Get(info.Layout)
	if !ok {
		return gal.DescriptorSet{}, gal.Err(gal.Failure, "noop: CreateDescriptorSet references unknown layout")
	}
	if layout.issued >= layout.maxSets {
		return gal.DescriptorSet{}, gal.Err(gal.Failure, "noop: descriptor layout exhausted its MaxSets budget")
	}
	layout.issued++
	h, _, err := b.descriptorSets.Create(false, func(s *nativeDescriptorSet) {
		s.layout = info.Layout
		s.buffers = make(map[uint32]gal.BufferBindingUpdate)
		s.images = make(map[uint32]gal.ImageBindingUpdate)
	})
	return h, err
}

func (b *Backend) UpdateDescriptorSetData(sh gal.DescriptorSet, updates []gal.DescriptorSetUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	set, ok := b.descriptorSets.Get(sh)
	if !ok {
		return gal.Err(gal.Failure, "noop: UpdateDescriptorSetData on unknown descriptor set")
	}
	for _, u := range updates {
		switch {
		case u.Buffer != nil:
			set.buffers[u.Buffer.Binding] = *u.Buffer
		case u.Image != nil:
			set.images[u.Image.Binding] = *u.Image
		case u.Bindless != nil:
			for _, tex := range u.Bindless.Textures {
				set.images[u.Bindless.Binding] = gal.ImageBindingUpdate{Binding: u.Bindless.Binding, Texture: tex}
			}
		}
	}
	return nil
}
