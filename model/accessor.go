package model

import (
	"encoding/binary"
	"math"
)

// typeComponents returns the number of scalar components accessor.type
// encodes.
func typeComponents(t string) int {
	switch t {
	case typeScalar:
		return 1
	case typeVec2:
		return 2
	case typeVec3:
		return 3
	case "VEC4":
		return 4
	case "MAT2":
		return 4
	case "MAT3":
		return 9
	case typeMat4:
		return 16
	default:
		return 0
	}
}

// componentSize returns the byte size of one accessor.componentType scalar.
func componentSize(c int) int {
	switch c {
	case compByte, compUnsignedByte:
		return 1
	case compShort, compUnsignedShort:
		return 2
	case compUnsignedInt, compFloat:
		return 4
	default:
		return 0
	}
}

// accessorByteLength computes the span of bytes a tightly-packed accessor
// read covers: count × sizeof(component) × components. spec.md Open
// Question 1 resolves this as the formula to use, without double-adding the
// buffer view's own byte offset a second time (that offset is applied once,
// when the buffer view's base is computed, not again per-element here).
func accessorByteLength(a *gAccessor) int {
	return a.Count * componentSize(a.ComponentType) * typeComponents(a.Type)
}

// resolvedBuffer holds the decoded bytes of one glTF buffer, whether it came
// from a GLB BIN chunk or an external URI read by the caller.
type resolvedBuffer struct {
	data []byte
}

// bufferViewBytes slices out bufferViews[idx]'s span from its backing
// buffer.
func (doc *document) bufferViewBytes(buffers []resolvedBuffer, idx int) []byte {
	bv := &doc.BufferViews[idx]
	buf := buffers[bv.Buffer].data
	return buf[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]
}

// elementStride returns the byte stride between consecutive elements of
// accessor a: the buffer view's explicit stride if set, else the tightly-
// packed element size (componentSize × components).
func elementStride(a *gAccessor, bv *gBufferView) int {
	if bv != nil && bv.ByteStride != 0 {
		return bv.ByteStride
	}
	return componentSize(a.ComponentType) * typeComponents(a.Type)
}

// readScalar decodes one component at b[0:componentSize(ct)] into a float32,
// normalizing integer types to [0,1] or [-1,1] when normalized is set (glTF
// §Accessor Data Types).
func readScalar(b []byte, ct int, normalized bool) float32 {
	switch ct {
	case compFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case compByte:
		v := int8(b[0])
		if normalized {
			f := float32(v) / 127
			if f < -1 {
				f = -1
			}
			return f
		}
		return float32(v)
	case compUnsignedByte:
		v := b[0]
		if normalized {
			return float32(v) / 255
		}
		return float32(v)
	case compShort:
		v := int16(binary.LittleEndian.Uint16(b))
		if normalized {
			f := float32(v) / 32767
			if f < -1 {
				f = -1
			}
			return f
		}
		return float32(v)
	case compUnsignedShort:
		v := binary.LittleEndian.Uint16(b)
		if normalized {
			return float32(v) / 65535
		}
		return float32(v)
	case compUnsignedInt:
		return float32(binary.LittleEndian.Uint32(b))
	default:
		return 0
	}
}

// readAccessorFloats decodes accessor idx's elements into a flat float32
// slice of length count×components. An accessor with no bufferView (valid
// for sparse/zero-filled accessors) yields an all-zero slice.
func (doc *document) readAccessorFloats(buffers []resolvedBuffer, idx int) []float32 {
	a := &doc.Accessors[idx]
	n := typeComponents(a.Type)
	out := make([]float32, a.Count*n)
	if a.BufferView == nil {
		return out
	}
	bv := &doc.BufferViews[*a.BufferView]
	base := buffers[bv.Buffer].data[bv.ByteOffset+a.ByteOffset:]
	stride := elementStride(a, bv)
	cs := componentSize(a.ComponentType)
	for e := 0; e < a.Count; e++ {
		elem := base[e*stride:]
		for c := 0; c < n; c++ {
			out[e*n+c] = readScalar(elem[c*cs:], a.ComponentType, a.Normalized)
		}
	}
	return out
}

// readAccessorIndices decodes an index accessor (SCALAR, unsigned byte/
// short/int) into a uint32 slice, the format gal.BufferCreateInfo.IndexData
// expects.
func (doc *document) readAccessorIndices(buffers []resolvedBuffer, idx int) []uint32 {
	a := &doc.Accessors[idx]
	out := make([]uint32, a.Count)
	if a.BufferView == nil {
		return out
	}
	bv := &doc.BufferViews[*a.BufferView]
	base := buffers[bv.Buffer].data[bv.ByteOffset+a.ByteOffset:]
	stride := elementStride(a, bv)
	cs := componentSize(a.ComponentType)
	for e := 0; e < a.Count; e++ {
		elem := base[e*stride : e*stride+cs]
		switch a.ComponentType {
		case compUnsignedByte:
			out[e] = uint32(elem[0])
		case compUnsignedShort:
			out[e] = uint32(binary.LittleEndian.Uint16(elem))
		case compUnsignedInt:
			out[e] = binary.LittleEndian.Uint32(elem)
		}
	}
	return out
}
