package gal

// ColorFormat enumerates supported color image formats (spec.md §4.3).
type ColorFormat int

const (
	ColorFormatRGB ColorFormat = iota
	ColorFormatRGBA
	ColorFormatRGBA8
	ColorFormatRGBA16F
	ColorFormatRGBA32F
	ColorFormatSRGB
	ColorFormatSRGBA8
	ColorFormatRedInt
)

// IsSRGB reports whether format should be interpreted (and sampled) with an
// sRGB-to-linear conversion.
func (f ColorFormat) IsSRGB() bool {
	return f == ColorFormatSRGB || f == ColorFormatSRGBA8
}

// DepthFormat enumerates supported depth/stencil image formats.
type DepthFormat int

const (
	DepthFormatD16 DepthFormat = iota
	DepthFormatD32
	DepthFormatD24S8
	DepthFormatD32S8
)

// HasStencil reports whether format carries a stencil component.
func (f DepthFormat) HasStencil() bool {
	return f == DepthFormatD24S8 || f == DepthFormatD32S8
}

// DepthFormatSupportChecker reports whether a given DepthFormat is usable on
// the active device; each backend supplies one to
// FindSupportedDepthImageFormat.
type DepthFormatSupportChecker func(DepthFormat) bool

// FindSupportedDepthImageFormat returns the first candidate supported is
// true for, preserving candidate order (spec.md P7); it returns ok=false if
// none are supported.
func FindSupportedDepthImageFormat(candidates []DepthFormat, supported DepthFormatSupportChecker) (DepthFormat, bool) {
	for _, c := range candidates {
		if supported(c) {
			return c, true
		}
	}
	return 0, false
}

// VertexAttributeFormat is a closed enum of every vertex attribute layout
// the GAL accepts; backends translate each to their native equivalent.
type VertexAttributeFormat int

const (
	VertexAttributeF32 VertexAttributeFormat = iota
	VertexAttributeF64
	VertexAttributeI32
	VertexAttributeU32
	VertexAttributeI8
	VertexAttributeU8
	VertexAttributeVec2F32
	VertexAttributeVec3F32
	VertexAttributeVec4F32
	VertexAttributeVec2F64
	VertexAttributeVec3F64
	VertexAttributeVec4F64
	VertexAttributeVec2I32
	VertexAttributeVec3I32
	VertexAttributeVec4I32
	VertexAttributeVec2U32
	VertexAttributeVec3U32
	VertexAttributeVec4U32
	VertexAttributeVec2I8
	VertexAttributeVec3I8
	VertexAttributeVec4I8
	VertexAttributeVec2U8
	VertexAttributeVec3U8
	VertexAttributeVec4U8
	VertexAttributeVec2I8Norm
	VertexAttributeVec3I8Norm
	VertexAttributeVec4I8Norm
	VertexAttributeVec2U8Norm
	VertexAttributeVec3U8Norm
	VertexAttributeVec4U8Norm
	// VertexAttribute2_10_10_10Rev packs a vec4 into 32 bits: 3x10-bit
	// signed components plus a 2-bit component, the common compact normal/
	// tangent encoding.
	VertexAttribute2_10_10_10Rev
	VertexAttribute2_10_10_10RevNorm
)

// vertexAttrInfo describes a VertexAttributeFormat's component count and
// whether it is normalized when read by the shader.
type vertexAttrInfo struct {
	components int
	normalized bool
}

var vertexAttrTable = map[VertexAttributeFormat]vertexAttrInfo{
	VertexAttributeF32:               {1, false},
	VertexAttributeF64:               {1, false},
	VertexAttributeI32:                {1, false},
	VertexAttributeU32:                {1, false},
	VertexAttributeI8:                 {1, false},
	VertexAttributeU8:                 {1, false},
	VertexAttributeVec2F32:            {2, false},
	VertexAttributeVec3F32:            {3, false},
	VertexAttributeVec4F32:            {4, false},
	VertexAttributeVec2F64:            {2, false},
	VertexAttributeVec3F64:            {3, false},
	VertexAttributeVec4F64:            {4, false},
	VertexAttributeVec2I32:            {2, false},
	VertexAttributeVec3I32:            {3, false},
	VertexAttributeVec4I32:            {4, false},
	VertexAttributeVec2U32:            {2, false},
	VertexAttributeVec3U32:            {3, false},
	VertexAttributeVec4U32:            {4, false},
	VertexAttributeVec2I8:             {2, false},
	VertexAttributeVec3I8:             {3, false},
	VertexAttributeVec4I8:             {4, false},
	VertexAttributeVec2U8:             {2, false},
	VertexAttributeVec3U8:             {3, false},
	VertexAttributeVec4U8:             {4, false},
	VertexAttributeVec2I8Norm:         {2, true},
	VertexAttributeVec3I8Norm:         {3, true},
	VertexAttributeVec4I8Norm:         {4, true},
	VertexAttributeVec2U8Norm:         {2, true},
	VertexAttributeVec3U8Norm:         {3, true},
	VertexAttributeVec4U8Norm:         {4, true},
	VertexAttribute2_10_10_10Rev:      {4, false},
	VertexAttribute2_10_10_10RevNorm:  {4, true},
}

// Components returns the number of scalar components f carries.
func (f VertexAttributeFormat) Components() int { return vertexAttrTable[f].components }

// Normalized reports whether f's integer storage is normalized to [0,1] or
// [-1,1] when read in the shader.
func (f VertexAttributeFormat) Normalized() bool { return vertexAttrTable[f].normalized }
