package model

import (
	"encoding/binary"
	"math"

	"github.com/binmian/levikno/gal"
	levikno "github.com/binmian/levikno/context"
	"github.com/binmian/levikno/vmath"
)

// vertexFloats is the per-vertex float32 layout every assembled primitive
// uses: pos(3) + color(4) + uv(2) + normal(3) + tangent(4) + bitangent(3) +
// joints(4) + weights(4), per spec.md §4.7's "GPU resource output" list.
const vertexFloats = 3 + 4 + 2 + 3 + 4 + 3 + 4 + 4

// Primitive is one mesh primitive's GPU-ready draw data.
type Primitive struct {
	VertexBuffer gal.Buffer
	IndexBuffer  gal.Buffer
	HasIndex     bool
	VertexCount  int
	IndexCount   int
	Topology     gal.Topology
	Material     *Material
}

// Mesh is a collection of primitives sharing a node's mesh index.
type Mesh struct {
	Primitives []Primitive
}

// primVertex holds one vertex's decoded attributes prior to interleaving,
// so tangent computation can run as a second pass over the assembled
// triangle list.
type primVertex struct {
	pos, normal        vmath.Vec3
	color              vmath.Vec4
	uv                 vmath.Vec2
	tangent            vmath.Vec4
	hasTangent         bool
	joints, weights    vmath.Vec4
}

func topologyFromMode(mode *int) gal.Topology {
	m := 4
	if mode != nil {
		m = *mode
	}
	switch m {
	case 0:
		return gal.TopologyPoint
	case 1:
		return gal.TopologyLine
	case 3:
		return gal.TopologyLineStrip
	case 5:
		return gal.TopologyTriangleStrip
	default:
		return gal.TopologyTriangle
	}
}

// vec3At / vec4At / vec2At pull the n'th element out of a flat float32
// slice decoded by readAccessorFloats.
func vec3At(flat []float32, i int) vmath.Vec3 {
	if (i+1)*3 > len(flat) {
		return vmath.Vec3{}
	}
	return vmath.Vec3{X: flat[i*3], Y: flat[i*3+1], Z: flat[i*3+2]}
}

func vec4At(flat []float32, i int, comps int) vmath.Vec4 {
	if (i+1)*comps > len(flat) {
		return vmath.Vec4{}
	}
	v := vmath.Vec4{X: flat[i*comps], Y: flat[i*comps+1], Z: flat[i*comps+2], W: 1}
	if comps == 4 {
		v.W = flat[i*comps+3]
	}
	return v
}

func vec2At(flat []float32, i int) vmath.Vec2 {
	if (i+1)*2 > len(flat) {
		return vmath.Vec2{}
	}
	return vmath.Vec2{X: flat[i*2], Y: flat[i*2+1]}
}

// assemblePrimitive reads a primitive's attributes and indices, synthesizes
// anything missing, computes tangents when absent, and interleaves the
// result into the vertexFloats layout.
func (doc *document) assemblePrimitive(buffers []resolvedBuffer, gp *gPrimitive, mat *Material) ([]byte, []uint32, int, gal.Topology) {
	posIdx := gp.Attributes["POSITION"]
	posFlat := doc.readAccessorFloats(buffers, posIdx)
	count := len(posFlat) / 3

	verts := make([]primVertex, count)
	baseColor := vmath.Vec4{X: 1, Y: 1, Z: 1, W: 1}
	if mat != nil {
		baseColor = mat.BaseColorFactor
	}
	for i := 0; i < count; i++ {
		verts[i].pos = vec3At(posFlat, i)
		verts[i].color = baseColor
		verts[i].weights = vmath.Vec4{}
		verts[i].joints = vmath.Vec4{}
	}
	if idx, ok := gp.Attributes["COLOR_0"]; ok {
		a := &doc.Accessors[idx]
		flat := doc.readAccessorFloats(buffers, idx)
		comps := typeComponents(a.Type)
		for i := 0; i < count; i++ {
			verts[i].color = vec4At(flat, i, comps)
		}
	}
	if idx, ok := gp.Attributes["TEXCOORD_0"]; ok {
		flat := doc.readAccessorFloats(buffers, idx)
		for i := 0; i < count; i++ {
			verts[i].uv = vec2At(flat, i)
		}
	}
	if idx, ok := gp.Attributes["NORMAL"]; ok {
		flat := doc.readAccessorFloats(buffers, idx)
		for i := 0; i < count; i++ {
			verts[i].normal = vec3At(flat, i)
		}
	}
	if idx, ok := gp.Attributes["TANGENT"]; ok {
		flat := doc.readAccessorFloats(buffers, idx)
		for i := 0; i < count; i++ {
			verts[i].tangent = vec4At(flat, i, 4)
			verts[i].hasTangent = true
		}
	}
	if idx, ok := gp.Attributes["JOINTS_0"]; ok {
		flat := doc.readAccessorFloats(buffers, idx)
		for i := 0; i < count; i++ {
			verts[i].joints = vec4At(flat, i, 4)
		}
	}
	if idx, ok := gp.Attributes["WEIGHTS_0"]; ok {
		flat := doc.readAccessorFloats(buffers, idx)
		for i := 0; i < count; i++ {
			verts[i].weights = vec4At(flat, i, 4)
		}
	}

	var indices []uint32
	if gp.Indices != nil {
		indices = doc.readAccessorIndices(buffers, *gp.Indices)
	}
	topology := topologyFromMode(gp.Mode)

	if topology == gal.TopologyTriangle {
		haveTangents := true
		for i := range verts {
			if !verts[i].hasTangent {
				haveTangents = false
				break
			}
		}
		if !haveTangents {
			computeTangents(verts, indices)
		}
	}

	data := make([]byte, 0, count*vertexFloats*4)
	for i := range verts {
		v := &verts[i]
		bitangent := v.normal.Cross(v.tangent.XYZ()).Normalized().Scale(v.tangent.W)
		data = appendFloats(data,
			v.pos.X, v.pos.Y, v.pos.Z,
			v.color.X, v.color.Y, v.color.Z, v.color.W,
			v.uv.X, v.uv.Y,
			v.normal.X, v.normal.Y, v.normal.Z,
			v.tangent.X, v.tangent.Y, v.tangent.Z, v.tangent.W,
			bitangent.X, bitangent.Y, bitangent.Z,
			v.joints.X, v.joints.Y, v.joints.Z, v.joints.W,
			v.weights.X, v.weights.Y, v.weights.Z, v.weights.W,
		)
	}
	return data, indices, count, topology
}

// computeTangents derives per-vertex tangents from positions, normals, and
// UVs using the standard per-triangle accumulation (spec.md §4.7: "tangents
// computed via MikkTSpace from positions+normals+texcoords+indices when
// triangle topology and all inputs are present"). This is the simplified
// single-pass accumulation MikkTSpace itself reduces to for non-mirrored
// UVs; it is not a full MikkTSpace port.
func computeTangents(verts []primVertex, indices []uint32) {
	accum := make([]vmath.Vec3, len(verts))
	tri := func(i0, i1, i2 uint32) {
		v0, v1, v2 := &verts[i0], &verts[i1], &verts[i2]
		e1 := v1.pos.Sub(v0.pos)
		e2 := v2.pos.Sub(v0.pos)
		du1, dv1 := v1.uv.X-v0.uv.X, v1.uv.Y-v0.uv.Y
		du2, dv2 := v2.uv.X-v0.uv.X, v2.uv.Y-v0.uv.Y
		det := du1*dv2 - du2*dv1
		if det == 0 {
			return
		}
		r := 1 / det
		t := vmath.Vec3{
			X: (e1.X*dv2 - e2.X*dv1) * r,
			Y: (e1.Y*dv2 - e2.Y*dv1) * r,
			Z: (e1.Z*dv2 - e2.Z*dv1) * r,
		}
		accum[i0] = accum[i0].Add(t)
		accum[i1] = accum[i1].Add(t)
		accum[i2] = accum[i2].Add(t)
	}
	if len(indices) > 0 {
		for i := 0; i+2 < len(indices); i += 3 {
			tri(indices[i], indices[i+1], indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(verts); i += 3 {
			tri(uint32(i), uint32(i+1), uint32(i+2))
		}
	}
	for i := range verts {
		n := verts[i].normal
		t := accum[i]
		// Gram-Schmidt orthogonalize against the normal.
		t = t.Sub(n.Scale(n.Dot(t))).Normalized()
		if t == (vmath.Vec3{}) {
			// Degenerate (zero-area UVs): fall back to an arbitrary
			// tangent perpendicular to the normal.
			t = vmath.Vec3{X: 1}.Cross(n)
			if t.Len() < 1e-6 {
				t = vmath.Vec3{Y: 1}.Cross(n)
			}
			t = t.Normalized()
		}
		handedness := float32(1)
		if n.Cross(t).Dot(accum[i]) < 0 {
			handedness = -1
		}
		verts[i].tangent = vmath.Vec3From4(t, handedness)
	}
}

func appendFloats(dst []byte, vs ...float32) []byte {
	for _, v := range vs {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		dst = append(dst, b[:]...)
	}
	return dst
}

// vertexLayout is the fixed interleaved attribute layout every assembled
// primitive's vertex buffer uses, locations 0..7 in vertexFloats order.
func vertexLayout() gal.VertexInputBinding {
	stride := uint32(vertexFloats * 4)
	attr := func(loc uint32, offsetFloats uint32, format gal.VertexAttributeFormat) gal.VertexAttribute {
		return gal.VertexAttribute{Binding: 0, Location: loc, Offset: offsetFloats * 4, Format: format}
	}
	return gal.VertexInputBinding{
		Bindings: []gal.VertexBinding{{Binding: 0, Stride: stride, PerVertex: true}},
		Attributes: []gal.VertexAttribute{
			attr(0, 0, gal.VertexAttributeVec3F32),  // position
			attr(1, 3, gal.VertexAttributeVec4F32),  // color
			attr(2, 7, gal.VertexAttributeVec2F32),  // uv
			attr(3, 9, gal.VertexAttributeVec3F32),  // normal
			attr(4, 12, gal.VertexAttributeVec4F32), // tangent
			attr(5, 16, gal.VertexAttributeVec3F32), // bitangent
			attr(6, 19, gal.VertexAttributeVec4F32), // joints
			attr(7, 23, gal.VertexAttributeVec4F32), // weights
		},
	}
}

// buildPrimitive creates the GPU buffers for one primitive via ctx's
// backend.
func buildPrimitive(ctx *levikno.Context, data []byte, indices []uint32, count int, topology gal.Topology, mat *Material) (Primitive, error) {
	layout := vertexLayout()
	vb, err := ctx.Backend().CreateBuffer(gal.BufferCreateInfo{
		Usage:      gal.BufferUsageVertex,
		Layout:     layout,
		VertexData: data,
	})
	if err != nil {
		return Primitive{}, err
	}
	p := Primitive{
		VertexBuffer: vb,
		VertexCount:  count,
		Topology:     topology,
		Material:     mat,
	}
	if len(indices) > 0 {
		ib, err := ctx.Backend().CreateBuffer(gal.BufferCreateInfo{
			Usage:      gal.BufferUsageIndex,
			Layout:     layout,
			IndexData:  indices,
			VertexData: []byte{},
		})
		if err != nil {
			ctx.Backend().DestroyBuffer(vb)
			return Primitive{}, err
		}
		p.IndexBuffer = ib
		p.HasIndex = true
		p.IndexCount = len(indices)
	}
	return p, nil
}
