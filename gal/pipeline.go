package gal

// Topology is the input-assembly primitive topology.
type Topology int

const (
	TopologyPoint Topology = iota
	TopologyLine
	TopologyLineStrip
	TopologyTriangle
	TopologyTriangleStrip
)

// CullMode selects which primitive winding to discard.
type CullMode int

const (
	CullModeDisable CullMode = iota
	CullModeFront
	CullModeBack
	CullModeBoth
)

// FrontFace selects which winding order is "front-facing".
type FrontFace int

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// SampleCount is the MSAA sample count, restricted to powers of two 1..64.
type SampleCount int

const (
	SampleCount1 SampleCount = 1 << iota
	SampleCount2
	SampleCount4
	SampleCount8
	SampleCount16
	SampleCount32
	SampleCount64
)

// CompareOp is a depth/stencil comparison function.
type CompareOp int

const (
	CompareNever CompareOp = iota
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
	CompareAlways
)

// StencilOp is an action taken on a stencil test outcome.
type StencilOp int

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementClamp
	StencilOpDecrementClamp
	StencilOpInvert
	StencilOpIncrementWrap
	StencilOpDecrementWrap
)

// BlendFactor is a source/destination blend factor.
type BlendFactor int

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOp combines the scaled source and destination colors.
type BlendOp int

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// ColorWriteMask is a bitmask of written color channels.
type ColorWriteMask uint8

const (
	ColorWriteR ColorWriteMask = 1 << iota
	ColorWriteG
	ColorWriteB
	ColorWriteA
	ColorWriteAll = ColorWriteR | ColorWriteG | ColorWriteB | ColorWriteA
)

// InputAssembly describes primitive topology and restart behavior.
type InputAssembly struct {
	Topology        Topology
	PrimitiveRestart bool
}

// Viewport describes the pipeline's viewport transform. Width/Height of -1
// mean "match the target framebuffer's current size" (spec.md §4.3).
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// Scissor describes the pipeline's scissor rectangle; Width/Height of -1
// carry the same "match framebuffer" meaning as Viewport.
type Scissor struct {
	X, Y, Width, Height int32
}

// Rasterizer describes fixed-function rasterization state.
type Rasterizer struct {
	CullMode          CullMode
	FrontFace         FrontFace
	LineWidth         float32
	DepthBiasEnable   bool
	DepthBiasConstant float32
	DepthBiasClamp    float32
	DepthBiasSlope    float32
	DepthClampEnable  bool
	RasterizerDiscard bool
}

// Multisample describes MSAA state.
type Multisample struct {
	SampleCount          SampleCount
	MinSampleShading     float32
	SampleMask           uint32
	AlphaToCoverage      bool
	AlphaToOne           bool
}

// ColorBlendAttachment is the per-color-attachment blend configuration.
type ColorBlendAttachment struct {
	Enable            bool
	SrcColorFactor    BlendFactor
	DstColorFactor    BlendFactor
	ColorOp           BlendOp
	SrcAlphaFactor    BlendFactor
	DstAlphaFactor    BlendFactor
	AlphaOp           BlendOp
	ColorWriteMask    ColorWriteMask
}

// ColorBlend is the pipeline-wide blend state.
type ColorBlend struct {
	Attachments    []ColorBlendAttachment
	LogicOpEnable  bool
	BlendConstants [4]float32
}

// StencilOpState is one face's (front or back) stencil behavior.
type StencilOpState struct {
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
	CompareOp   CompareOp
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
}

// DepthStencil is the pipeline's depth/stencil test configuration.
type DepthStencil struct {
	EnableDepth     bool
	DepthOpCompare  CompareOp
	EnableStencil   bool
	Front, Back     StencilOpState
}

// VertexAttribute describes one interleaved vertex attribute slot.
type VertexAttribute struct {
	Binding  uint32
	Location uint32
	Offset   uint32
	Format   VertexAttributeFormat
}

// VertexBinding describes one vertex buffer binding's stride and step mode.
type VertexBinding struct {
	Binding   uint32
	Stride    uint32
	PerVertex bool // false = per-instance
}

// PipelineSpec is the immutable snapshot captured at pipeline creation
// (spec.md §4.3 "Pipeline specification").
type PipelineSpec struct {
	InputAssembly    InputAssembly
	Viewport         Viewport
	Scissor          Scissor
	Rasterizer       Rasterizer
	Multisample      Multisample
	ColorBlend       ColorBlend
	DepthStencil     DepthStencil
	VertexAttributes []VertexAttribute
	VertexBindings   []VertexBinding
}

// DefaultPipelineSpec returns the context-level pipeline-spec default
// createContext installs (spec.md Data Model: "the pipeline-spec default"):
// solid-fill opaque triangles, back-face culling, CCW front face, depth
// test enabled with CompareLess, no blending.
func DefaultPipelineSpec() PipelineSpec {
	return PipelineSpec{
		InputAssembly: InputAssembly{Topology: TopologyTriangle},
		Viewport:      Viewport{Width: -1, Height: -1, MinDepth: 0, MaxDepth: 1},
		Scissor:       Scissor{Width: -1, Height: -1},
		Rasterizer:    Rasterizer{CullMode: CullModeBack, FrontFace: FrontFaceCounterClockwise, LineWidth: 1},
		Multisample:   Multisample{SampleCount: SampleCount1},
		ColorBlend: ColorBlend{
			Attachments: []ColorBlendAttachment{{ColorWriteMask: ColorWriteAll}},
		},
		DepthStencil: DepthStencil{EnableDepth: true, DepthOpCompare: CompareLess},
	}
}

// PipelineCreateInfo is CreatePipeline's input: a compiled shader (read,
// not destroyed, see SPEC_FULL.md §D.4 / spec.md Open Question 3), the pipeline
// spec, the descriptor layouts the pipeline's shaders reference (in
// declaration order), and the renderpass it may only be bound within
// (spec.md I2).
type PipelineCreateInfo struct {
	Shader            Shader
	Spec              PipelineSpec
	DescriptorLayouts []DescriptorLayout
	RenderPass        RenderPass
}
