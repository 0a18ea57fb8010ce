package gal

// BufferUsage is a bitmask of how a Buffer may be used. Type bits must
// include vertex and/or index but not uniform/storage (spec.md §4.4).
type BufferUsage uint8

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	// BufferUsageDynamic allows repeated CPU writes of the same size.
	BufferUsageDynamic
	// BufferUsageResize additionally allows changing the buffer's size.
	BufferUsageResize
)

// IsResizable reports whether usage permits BufferResize.
func (u BufferUsage) IsResizable() bool { return u&BufferUsageResize != 0 }

// IsDynamic reports whether usage permits repeated BufferUpdateData calls.
func (u BufferUsage) IsDynamic() bool { return u&BufferUsageDynamic != 0 || u.IsResizable() }

// VertexInputBinding pairs one VertexBinding with its attribute layout, the
// two arrays createBuffer validates as "both non-empty" (spec.md §4.4).
type VertexInputBinding struct {
	Bindings   []VertexBinding
	Attributes []VertexAttribute
}

// BufferCreateInfo is CreateBuffer's input.
type BufferCreateInfo struct {
	Usage  BufferUsage
	Layout VertexInputBinding
	// Data may be nil iff Usage is Dynamic or Resize (spec.md §4.4).
	VertexData []byte
	IndexData  []uint32
}

// UniformBufferUsage selects whether a UniformBuffer is a per-frame host-
// mapped ring (Uniform) or a single storage buffer (Storage).
type UniformBufferUsage int

const (
	UniformBufferUniform UniformBufferUsage = iota
	UniformBufferStorage
)

// UniformBufferCreateInfo is CreateUniformBuffer's input.
type UniformBufferCreateInfo struct {
	Usage         UniformBufferUsage
	Size          uint64
	MaxFramesInFlight int
}

// FilterMode selects minification/magnification filtering.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// WrapMode selects texture coordinate wrapping.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
)

// SamplerCreateInfo is CreateTextureSampler's input.
type SamplerCreateInfo struct {
	MinFilter, MagFilter FilterMode
	WrapU, WrapV, WrapW  WrapMode
	MaxAnisotropy        float32
}

// TextureCreateInfo is CreateTexture's input: decoded RGBA (or other
// channel-count) pixels plus the format they should be interpreted/stored
// as.
type TextureCreateInfo struct {
	Width, Height int
	Channels      int // 1,2,3,4 (spec.md §4.4)
	Pixels        []byte
	Format        ColorFormat
	Sampler       *SamplerCreateInfo // nil means "use an externally supplied Sampler" via SamplerRef
	SamplerRef    Sampler
}

// CubemapFace indexes the six faces of a Cubemap, in the conventional
// +X,-X,+Y,-Y,+Z,-Z order.
type CubemapFace int

const (
	CubemapPosX CubemapFace = iota
	CubemapNegX
	CubemapPosY
	CubemapNegY
	CubemapPosZ
	CubemapNegZ
)

// CubemapCreateInfo is CreateCubemap's input: all six faces, which must
// have non-null pixels and equal dimensions (spec.md §4.4, Open Question 2
// — enforced here, not commented out).
type CubemapCreateInfo struct {
	Faces  [6]TextureCreateInfo
	Format ColorFormat
}

// ClearColor is an RGBA clear value in [0,1].
type ClearColor struct{ R, G, B, A float32 }

// FrameBufferAttachment describes one color or depth attachment.
type FrameBufferAttachment struct {
	Index       int
	ColorFormat ColorFormat // meaningful when this is a color attachment
	DepthFormat DepthFormat // meaningful when this is the depth attachment
	IsDepth     bool
	Clear       ClearColor
	SampleCount SampleCount
}

// FrameBufferCreateInfo is CreateFrameBuffer's input: at least one color
// attachment, every attachment index unique and within bounds, depth index
// disjoint from color indices (spec.md §4.4).
type FrameBufferCreateInfo struct {
	Width, Height int
	Attachments   []FrameBufferAttachment
	HasDepth      bool
	DepthIndex    int
}

// ShaderSource is a tagged union of the three ways a Shader may be loaded
// (spec.md §6): in-memory source text, source file paths, or compiled
// SPIR-V binary file paths.
type ShaderSource struct {
	VertexSrc, FragmentSrc         string // in-memory GLSL source
	VertexFilePath, FragmentFilePath string // source file paths
	VertexBinPath, FragmentBinPath   string // SPIR-V binary file paths
}

// WindowCreateInfo is CreateWindow's input.
type WindowCreateInfo struct {
	Width, Height int
	Title         string
	VSync         bool
	EventCallback func(event any, userdata any)
	UserData      any
}
