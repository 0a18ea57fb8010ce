// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// glInternalFormat maps gal.ColorFormat to a GL sized internal format,
// following the teacher's table-driven textureFormatToNative convention
// (see gal/vulkan/convert.go's vkFormat for the sibling backend's table).
func glInternalFormat(f gal.ColorFormat) int32 {
	switch f {
	case gal.ColorFormatRGB:
		return gl.RGB8
	case gal.ColorFormatRGBA, gal.ColorFormatRGBA8:
		return gl.RGBA8
	case gal.ColorFormatRGBA16F:
		return gl.RGBA16F
	case gal.ColorFormatRGBA32F:
		return gl.RGBA32F
	case gal.ColorFormatSRGB:
		return gl.SRGB8
	case gal.ColorFormatSRGBA8:
		return gl.SRGB8_ALPHA8
	case gal.ColorFormatRedInt:
		return gl.R8I
	default:
		return gl.RGBA8
	}
}

// glUploadFormat returns the (format, type) pair glTexImage2D needs to
// interpret client pixel data for f; always 8-bit unsigned unless f is a
// float format, matching the channel layout glInternalFormat picked.
func glUploadFormat(f gal.ColorFormat) (format, typ uint32) {
	switch f {
	case gal.ColorFormatRGB, gal.ColorFormatSRGB:
		return gl.RGB, gl.UNSIGNED_BYTE
	case gal.ColorFormatRGBA16F, gal.ColorFormatRGBA32F:
		return gl.RGBA, gl.FLOAT
	case gal.ColorFormatRedInt:
		return gl.RED_INTEGER, gl.UNSIGNED_BYTE
	default:
		return gl.RGBA, gl.UNSIGNED_BYTE
	}
}

func glDepthInternalFormat(f gal.DepthFormat) int32 {
	switch f {
	case gal.DepthFormatD16:
		return gl.DEPTH_COMPONENT16
	case gal.DepthFormatD24S8:
		return gl.DEPTH24_STENCIL8
	case gal.DepthFormatD32S8:
		return gl.DEPTH32F_STENCIL8
	default:
		return gl.DEPTH_COMPONENT32
	}
}

func glTopology(t gal.Topology) uint32 {
	switch t {
	case gal.TopologyPoint:
		return gl.POINTS
	case gal.TopologyLine:
		return gl.LINES
	case gal.TopologyLineStrip:
		return gl.LINE_STRIP
	case gal.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

func glCullFace(c gal.CullMode) (face uint32, enable bool) {
	switch c {
	case gal.CullModeFront:
		return gl.FRONT, true
	case gal.CullModeBack:
		return gl.BACK, true
	case gal.CullModeBoth:
		return gl.FRONT_AND_BACK, true
	default:
		return 0, false
	}
}

func glFrontFace(f gal.FrontFace) uint32 {
	if f == gal.FrontFaceClockwise {
		return gl.CW
	}
	return gl.CCW
}

func glCompareOp(c gal.CompareOp) uint32 {
	switch c {
	case gal.CompareNever:
		return gl.NEVER
	case gal.CompareEqual:
		return gl.EQUAL
	case gal.CompareLessOrEqual:
		return gl.LEQUAL
	case gal.CompareGreater:
		return gl.GREATER
	case gal.CompareNotEqual:
		return gl.NOTEQUAL
	case gal.CompareGreaterOrEqual:
		return gl.GEQUAL
	case gal.CompareAlways:
		return gl.ALWAYS
	default:
		return gl.LESS
	}
}

func glStencilOp(s gal.StencilOp) uint32 {
	switch s {
	case gal.StencilOpZero:
		return gl.ZERO
	case gal.StencilOpReplace:
		return gl.REPLACE
	case gal.StencilOpIncrementClamp:
		return gl.INCR
	case gal.StencilOpDecrementClamp:
		return gl.DECR
	case gal.StencilOpInvert:
		return gl.INVERT
	case gal.StencilOpIncrementWrap:
		return gl.INCR_WRAP
	case gal.StencilOpDecrementWrap:
		return gl.DECR_WRAP
	default:
		return gl.KEEP
	}
}

func glBlendFactor(f gal.BlendFactor) uint32 {
	switch f {
	case gal.BlendFactorOne:
		return gl.ONE
	case gal.BlendFactorSrcColor:
		return gl.SRC_COLOR
	case gal.BlendFactorOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case gal.BlendFactorDstColor:
		return gl.DST_COLOR
	case gal.BlendFactorOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case gal.BlendFactorSrcAlpha:
		return gl.SRC_ALPHA
	case gal.BlendFactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gal.BlendFactorDstAlpha:
		return gl.DST_ALPHA
	case gal.BlendFactorOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ZERO
	}
}

func glBlendOp(op gal.BlendOp) uint32 {
	switch op {
	case gal.BlendOpSubtract:
		return gl.FUNC_SUBTRACT
	case gal.BlendOpReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case gal.BlendOpMin:
		return gl.MIN
	case gal.BlendOpMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}

func glFilter(f gal.FilterMode) int32 {
	if f == gal.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrapMode(w gal.WrapMode) int32 {
	switch w {
	case gal.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case gal.WrapClampToEdge, gal.WrapClampToBorder:
		return gl.CLAMP_TO_EDGE // GLES has no CLAMP_TO_BORDER; nearest available equivalent
	default:
		return gl.REPEAT
	}
}

// glVertexAttribType maps a VertexAttributeFormat to the (componentType,
// componentCount, normalized) triple glVertexAttribPointer needs.
func glVertexAttribType(f gal.VertexAttributeFormat) (typ uint32, count int32, normalized bool) {
	switch f {
	case gal.VertexAttributeF32:
		return gl.FLOAT, 1, false
	case gal.VertexAttributeI32:
		return gl.INT, 1, false
	case gal.VertexAttributeU32:
		return gl.UNSIGNED_INT, 1, false
	case gal.VertexAttributeI8:
		return gl.BYTE, 1, false
	case gal.VertexAttributeU8:
		return gl.UNSIGNED_BYTE, 1, false
	case gal.VertexAttributeVec2F32:
		return gl.FLOAT, 2, false
	case gal.VertexAttributeVec3F32:
		return gl.FLOAT, 3, false
	case gal.VertexAttributeVec4F32:
		return gl.FLOAT, 4, false
	case gal.VertexAttributeVec2I32:
		return gl.INT, 2, false
	case gal.VertexAttributeVec3I32:
		return gl.INT, 3, false
	case gal.VertexAttributeVec4I32:
		return gl.INT, 4, false
	case gal.VertexAttributeVec2U32:
		return gl.UNSIGNED_INT, 2, false
	case gal.VertexAttributeVec3U32:
		return gl.UNSIGNED_INT, 3, false
	case gal.VertexAttributeVec4U32:
		return gl.UNSIGNED_INT, 4, false
	case gal.VertexAttributeVec2I8:
		return gl.BYTE, 2, false
	case gal.VertexAttributeVec3I8:
		return gl.BYTE, 3, false
	case gal.VertexAttributeVec4I8:
		return gl.BYTE, 4, false
	case gal.VertexAttributeVec2U8:
		return gl.UNSIGNED_BYTE, 2, false
	case gal.VertexAttributeVec3U8:
		return gl.UNSIGNED_BYTE, 3, false
	case gal.VertexAttributeVec4U8:
		return gl.UNSIGNED_BYTE, 4, false
	case gal.VertexAttributeVec2I8Norm:
		return gl.BYTE, 2, true
	case gal.VertexAttributeVec3I8Norm:
		return gl.BYTE, 3, true
	case gal.VertexAttributeVec4I8Norm:
		return gl.BYTE, 4, true
	case gal.VertexAttributeVec2U8Norm:
		return gl.UNSIGNED_BYTE, 2, true
	case gal.VertexAttributeVec3U8Norm:
		return gl.UNSIGNED_BYTE, 3, true
	case gal.VertexAttributeVec4U8Norm:
		return gl.UNSIGNED_BYTE, 4, true
	default:
		return gl.FLOAT, 4, false
	}
}
