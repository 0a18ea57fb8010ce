package model

import (
	"github.com/binmian/levikno/gal"
	levikno "github.com/binmian/levikno/context"
)

// Skin is a bound skeleton: its joint node indices and the dynamic SSBO
// holding their inverse-bind matrices, sized per spec.md §4.7 ("allocates a
// per-skin dynamic SSBO sized to #joints × 16 × sizeof(f32)").
type Skin struct {
	Joints  []int
	Buffer  gal.UniformBuffer
}

// buildSkin reads a glTF skin's inverse-bind-matrices accessor (identity if
// absent, per glTF's own default) and uploads it into a freshly created
// storage buffer.
func (doc *document) buildSkin(ctx *levikno.Context, win gal.Window, buffers []resolvedBuffer, gs *gSkin) (*Skin, error) {
	n := len(gs.Joints)
	size := uint64(n * 16 * 4)
	ub, err := ctx.Backend().CreateUniformBuffer(gal.UniformBufferCreateInfo{
		Usage: gal.UniformBufferStorage,
		Size:  size,
	})
	if err != nil {
		return nil, err
	}

	data := make([]byte, size)
	if gs.InverseBindMatrices != nil {
		flat := doc.readAccessorFloats(buffers, *gs.InverseBindMatrices)
		for i := 0; i < n && (i+1)*16 <= len(flat); i++ {
			data = appendMatrixAt(data, i*16*4, flat[i*16:i*16+16])
		}
	} else {
		for i := 0; i < n; i++ {
			data = appendMatrixAt(data, i*16*4, identityMat4())
		}
	}
	if err := ctx.Backend().UpdateUniformBufferData(win, ub, data, size); err != nil {
		ctx.Backend().DestroyUniformBuffer(ub)
		return nil, err
	}

	return &Skin{Joints: append([]int(nil), gs.Joints...), Buffer: ub}, nil
}

func identityMat4() []float32 {
	return []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// appendMatrixAt writes mat's 16 floats into dst at byte offset off,
// little-endian, returning dst unchanged in length (dst is pre-sized).
func appendMatrixAt(dst []byte, off int, mat []float32) []byte {
	b := appendFloats(nil, mat...)
	copy(dst[off:], b)
	return dst
}
