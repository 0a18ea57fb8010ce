package gal

// DescriptorKind identifies what a single descriptor binding slot holds.
type DescriptorKind int

const (
	DescriptorUniformBuffer DescriptorKind = iota
	DescriptorStorageBuffer
	DescriptorCombinedImageSampler
	DescriptorSampledImage
	DescriptorSampler
	// DescriptorBindlessImageSamplerArray is an arbitrarily-sized array of
	// image handles addressable by runtime index in shaders (spec.md
	// Glossary "Bindless"); on OpenGL it is backed by an SSBO of
	// ARB_bindless_texture handles.
	DescriptorBindlessImageSamplerArray
)

// ShaderStage is a bitmask of shader stages a binding is visible to.
type ShaderStage uint8

const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStageFragment
)

// DescriptorBinding describes one slot in a DescriptorLayout.
type DescriptorBinding struct {
	Binding    uint32
	Kind       DescriptorKind
	Count      uint32
	Stage      ShaderStage
	MaxAllocs  uint32 // maxSets-equivalent: how many sets this binding may appear in concurrently
}

// DescriptorLayoutCreateInfo is CreateDescriptorLayout's input: an ordered,
// non-empty set of bindings (spec.md §4.4 precondition) plus how many sets
// may be allocated from it (sizes the layout's owned internal pool).
type DescriptorLayoutCreateInfo struct {
	Bindings []DescriptorBinding
	MaxSets  uint32
}

// BufferBindingUpdate overwrites a uniform/storage-buffer binding slot.
type BufferBindingUpdate struct {
	Binding uint32
	Buffer  UniformBuffer
	Offset  uint64
	Range   uint64
}

// ImageBindingUpdate overwrites a combined-image-sampler/sampled-image/
// sampler binding slot.
type ImageBindingUpdate struct {
	Binding uint32
	Texture Texture
	Sampler Sampler
}

// BindlessImageArrayUpdate overwrites a bindless array binding's whole
// handle list in one call.
type BindlessImageArrayUpdate struct {
	Binding  uint32
	Textures []Texture
}

// DescriptorSetUpdate is a tagged union of the three update shapes
// UpdateDescriptorSetData accepts; exactly one field is meaningful per Kind.
type DescriptorSetUpdate struct {
	Kind    DescriptorKind
	Buffer  *BufferBindingUpdate
	Image   *ImageBindingUpdate
	Bindless *BindlessImageArrayUpdate
}

// DescriptorSetCreateInfo is CreateDescriptorSet's input: the layout to
// allocate from.
type DescriptorSetCreateInfo struct {
	Layout DescriptorLayout
}
