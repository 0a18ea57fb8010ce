// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import "github.com/binmian/levikno/gal"

// vkFormat maps gal.ColorFormat to VkFormat, following the teacher's
// table-driven textureFormatToVk convention.
func vkFormat(f gal.ColorFormat) uint32 {
	switch f {
	case gal.ColorFormatRGB:
		return 23 // VK_FORMAT_R8G8B8_UNORM
	case gal.ColorFormatRGBA, gal.ColorFormatRGBA8:
		return 37 // VK_FORMAT_R8G8B8A8_UNORM
	case gal.ColorFormatRGBA16F:
		return 97 // VK_FORMAT_R16G16B16A16_SFLOAT
	case gal.ColorFormatRGBA32F:
		return 109 // VK_FORMAT_R32G32B32A32_SFLOAT
	case gal.ColorFormatSRGB:
		return 29 // VK_FORMAT_R8G8B8_SRGB
	case gal.ColorFormatSRGBA8:
		return 43 // VK_FORMAT_R8G8B8A8_SRGB
	case gal.ColorFormatRedInt:
		return 16 // VK_FORMAT_R32_SINT-equivalent single channel (R8_SINT)
	default:
		return 37
	}
}

// vkDepthFormat maps gal.DepthFormat to VkFormat.
func vkDepthFormat(f gal.DepthFormat) uint32 {
	switch f {
	case gal.DepthFormatD16:
		return 124 // VK_FORMAT_D16_UNORM
	case gal.DepthFormatD32:
		return 126 // VK_FORMAT_D32_SFLOAT
	case gal.DepthFormatD24S8:
		return 129 // VK_FORMAT_D24_UNORM_S8_UINT
	case gal.DepthFormatD32S8:
		return 130 // VK_FORMAT_D32_SFLOAT_S8_UINT
	default:
		return 126
	}
}

// vkVertexFormat maps gal.VertexAttributeFormat to VkFormat, following the
// same one-enum-to-one-table approach as vertexAttrTable in gal/format.go.
var vertexFormatTable = map[gal.VertexAttributeFormat]uint32{
	gal.VertexAttributeF32:     100, // VK_FORMAT_R32_SFLOAT
	gal.VertexAttributeF64:     114, // VK_FORMAT_R64_SFLOAT
	gal.VertexAttributeI32:     99,  // VK_FORMAT_R32_SINT
	gal.VertexAttributeU32:     98,  // VK_FORMAT_R32_UINT
	gal.VertexAttributeI8:      14,  // VK_FORMAT_R8_SINT
	gal.VertexAttributeU8:      13,  // VK_FORMAT_R8_UINT

	gal.VertexAttributeVec2F32: 103, // VK_FORMAT_R32G32_SFLOAT
	gal.VertexAttributeVec3F32: 106, // VK_FORMAT_R32G32B32_SFLOAT
	gal.VertexAttributeVec4F32: 109, // VK_FORMAT_R32G32B32A32_SFLOAT
	gal.VertexAttributeVec2F64: 117, // VK_FORMAT_R64G64_SFLOAT
	gal.VertexAttributeVec3F64: 120, // VK_FORMAT_R64G64B64_SFLOAT
	gal.VertexAttributeVec4F64: 123, // VK_FORMAT_R64G64B64A64_SFLOAT

	gal.VertexAttributeVec2I32: 102, // VK_FORMAT_R32G32_SINT
	gal.VertexAttributeVec3I32: 105, // VK_FORMAT_R32G32B32_SINT
	gal.VertexAttributeVec4I32: 108, // VK_FORMAT_R32G32B32A32_SINT
	gal.VertexAttributeVec2U32: 101, // VK_FORMAT_R32G32_UINT
	gal.VertexAttributeVec3U32: 104, // VK_FORMAT_R32G32B32_UINT
	gal.VertexAttributeVec4U32: 107, // VK_FORMAT_R32G32B32A32_UINT

	gal.VertexAttributeVec2I8: 20, // VK_FORMAT_R8G8_SINT
	gal.VertexAttributeVec3I8: 27, // VK_FORMAT_R8G8B8_SINT
	gal.VertexAttributeVec4I8: 41, // VK_FORMAT_R8G8B8A8_SINT
	gal.VertexAttributeVec2U8: 19, // VK_FORMAT_R8G8_UINT
	gal.VertexAttributeVec3U8: 26, // VK_FORMAT_R8G8B8_UINT
	gal.VertexAttributeVec4U8: 40, // VK_FORMAT_R8G8B8A8_UINT

	gal.VertexAttributeVec2I8Norm: 10, // VK_FORMAT_R8G8_SNORM-equivalent
	gal.VertexAttributeVec3I8Norm: 24, // VK_FORMAT_R8G8B8_SNORM
	gal.VertexAttributeVec4I8Norm: 38, // VK_FORMAT_R8G8B8A8_SNORM
	gal.VertexAttributeVec2U8Norm: 9,  // VK_FORMAT_R8G8_UNORM-equivalent
	gal.VertexAttributeVec3U8Norm: 23, // VK_FORMAT_R8G8B8_UNORM
	gal.VertexAttributeVec4U8Norm: 37, // VK_FORMAT_R8G8B8A8_UNORM

	gal.VertexAttribute2_10_10_10Rev:     68, // VK_FORMAT_A2B10G10R10_UINT_PACK32
	gal.VertexAttribute2_10_10_10RevNorm: 65, // VK_FORMAT_A2B10G10R10_SNORM_PACK32
}

func vkVertexFormat(f gal.VertexAttributeFormat) uint32 {
	if vk, ok := vertexFormatTable[f]; ok {
		return vk
	}
	return 109
}

func vkTopology(t gal.Topology) uint32 {
	switch t {
	case gal.TopologyPoint:
		return vkPrimitiveTopologyPointList
	case gal.TopologyLine:
		return vkPrimitiveTopologyLineList
	case gal.TopologyLineStrip:
		return vkPrimitiveTopologyLineStrip
	case gal.TopologyTriangleStrip:
		return vkPrimitiveTopologyTriangleStrip
	default:
		return vkPrimitiveTopologyTriangleList
	}
}

func vkCullMode(c gal.CullMode) uint32 {
	switch c {
	case gal.CullModeFront:
		return vkCullModeFrontBit
	case gal.CullModeBack:
		return vkCullModeBackBit
	case gal.CullModeBoth:
		return vkCullModeFrontAndBack
	default:
		return vkCullModeNone
	}
}

func vkFrontFace(f gal.FrontFace) uint32 {
	if f == gal.FrontFaceClockwise {
		return vkFrontFaceClockwise
	}
	return vkFrontFaceCounterClockwise
}

func vkFilter(f gal.FilterMode) uint32 {
	if f == gal.FilterLinear {
		return vkFilterLinear
	}
	return vkFilterNearest
}

func vkAddressMode(w gal.WrapMode) uint32 {
	switch w {
	case gal.WrapMirroredRepeat:
		return vkSamplerAddressModeMirroredRepeat
	case gal.WrapClampToEdge:
		return vkSamplerAddressModeClampToEdge
	case gal.WrapClampToBorder:
		return vkSamplerAddressModeClampToBorder
	default:
		return vkSamplerAddressModeRepeat
	}
}

func vkDescriptorType(k gal.DescriptorKind) uint32 {
	switch k {
	case gal.DescriptorStorageBuffer:
		return vkDescriptorTypeStorageBuffer
	case gal.DescriptorCombinedImageSampler:
		return vkDescriptorTypeCombinedImageSampler
	case gal.DescriptorSampledImage:
		return vkDescriptorTypeSampledImage
	case gal.DescriptorSampler:
		return vkDescriptorTypeSampler
	case gal.DescriptorBindlessImageSamplerArray:
		return vkDescriptorTypeStorageBuffer // a storage-buffer slot; UpdateDescriptorSetData writes nothing into it
	default:
		return vkDescriptorTypeUniformBuffer
	}
}

func vkCompareOp(c gal.CompareOp) uint32 {
	switch c {
	case gal.CompareNever:
		return 0
	case gal.CompareEqual:
		return 2
	case gal.CompareLessOrEqual:
		return 3
	case gal.CompareGreater:
		return 4
	case gal.CompareNotEqual:
		return 5
	case gal.CompareGreaterOrEqual:
		return 6
	case gal.CompareAlways:
		return 7
	default:
		return 1 // VK_COMPARE_OP_LESS
	}
}

func vkStencilOp(s gal.StencilOp) uint32 {
	switch s {
	case gal.StencilOpZero:
		return 1
	case gal.StencilOpReplace:
		return 2
	case gal.StencilOpIncrementClamp:
		return 3
	case gal.StencilOpDecrementClamp:
		return 4
	case gal.StencilOpInvert:
		return 5
	case gal.StencilOpIncrementWrap:
		return 6
	case gal.StencilOpDecrementWrap:
		return 7
	default:
		return 0 // VK_STENCIL_OP_KEEP
	}
}

func vkBlendFactor(f gal.BlendFactor) uint32 {
	switch f {
	case gal.BlendFactorOne:
		return 1
	case gal.BlendFactorSrcColor:
		return 2
	case gal.BlendFactorOneMinusSrcColor:
		return 3
	case gal.BlendFactorDstColor:
		return 4
	case gal.BlendFactorOneMinusDstColor:
		return 5
	case gal.BlendFactorSrcAlpha:
		return 6
	case gal.BlendFactorOneMinusSrcAlpha:
		return 7
	case gal.BlendFactorDstAlpha:
		return 8
	case gal.BlendFactorOneMinusDstAlpha:
		return 9
	default:
		return 0 // VK_BLEND_FACTOR_ZERO
	}
}

func vkBlendOp(op gal.BlendOp) uint32 {
	switch op {
	case gal.BlendOpSubtract:
		return 1
	case gal.BlendOpReverseSubtract:
		return 2
	case gal.BlendOpMin:
		return 3
	case gal.BlendOpMax:
		return 4
	default:
		return 0 // VK_BLEND_OP_ADD
	}
}

func vkColorComponentFlags(m gal.ColorWriteMask) uint32 {
	var flags uint32
	if m&gal.ColorWriteR != 0 {
		flags |= 0x1
	}
	if m&gal.ColorWriteG != 0 {
		flags |= 0x2
	}
	if m&gal.ColorWriteB != 0 {
		flags |= 0x4
	}
	if m&gal.ColorWriteA != 0 {
		flags |= 0x8
	}
	return flags
}

func vkShaderStageFlags(s gal.ShaderStage) uint32 {
	var flags uint32
	if s&gal.ShaderStageVertex != 0 {
		flags |= vkShaderStageVertexBit
	}
	if s&gal.ShaderStageFragment != 0 {
		flags |= vkShaderStageFragmentBit
	}
	return flags
}
