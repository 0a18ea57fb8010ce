package model

import (
	"fmt"
	"strconv"
)

func newCheckErr(reason string) error { return fmt.Errorf("model: %s", reason) }

// check validates the structural preconditions the loader relies on before
// it starts walking accessors and buffer views: required fields present,
// and the indices buffer views, accessors, meshes, nodes, skins and
// materials reference in range. Animation sampler/node references, texture
// sources and image buffer views are not checked. It is deliberately less exhaustive
// than the full Khronos validator — Levikno is strict about the fields it
// reads (POSITION; GLB chunk framing) and lenient about everything else, per
// spec.md §6.
func (doc *document) check() error {
	vers, err := strconv.ParseFloat(doc.Asset.Version, 64)
	if err != nil || vers < 2 || vers >= 3 {
		return newCheckErr("unsupported asset.version")
	}
	if doc.Scene != nil && (*doc.Scene < 0 || *doc.Scene >= len(doc.Scenes)) {
		return newCheckErr("invalid scene index")
	}
	for i := range doc.BufferViews {
		if err := doc.checkBufferView(&doc.BufferViews[i]); err != nil {
			return err
		}
	}
	for i := range doc.Accessors {
		if err := doc.checkAccessor(&doc.Accessors[i]); err != nil {
			return err
		}
	}
	for i := range doc.Meshes {
		if err := doc.checkMesh(&doc.Meshes[i]); err != nil {
			return err
		}
	}
	for i := range doc.Nodes {
		if err := doc.checkNode(&doc.Nodes[i]); err != nil {
			return err
		}
	}
	for i := range doc.Skins {
		if err := doc.checkSkin(&doc.Skins[i]); err != nil {
			return err
		}
	}
	for i := range doc.Materials {
		if err := doc.checkMaterial(&doc.Materials[i]); err != nil {
			return err
		}
	}
	return nil
}

func (doc *document) checkBufferView(v *gBufferView) error {
	if v.Buffer < 0 || v.Buffer >= len(doc.Buffers) {
		return newCheckErr("invalid bufferView.buffer index")
	}
	if v.ByteLength < 1 || v.ByteOffset+v.ByteLength > doc.Buffers[v.Buffer].ByteLength {
		return newCheckErr("invalid bufferView.byteLength")
	}
	return nil
}

func (doc *document) checkAccessor(a *gAccessor) error {
	if a.BufferView != nil && (*a.BufferView < 0 || *a.BufferView >= len(doc.BufferViews)) {
		return newCheckErr("invalid accessor.bufferView index")
	}
	switch a.ComponentType {
	case compByte, compUnsignedByte, compShort, compUnsignedShort, compUnsignedInt, compFloat:
	default:
		return newCheckErr("invalid accessor.componentType")
	}
	if a.Count < 1 {
		return newCheckErr("invalid accessor.count")
	}
	switch a.Type {
	case typeScalar, typeVec2, typeVec3, typeVec4, "MAT2", "MAT3", typeMat4:
	default:
		return newCheckErr("invalid accessor.type")
	}
	return nil
}

func (doc *document) checkMesh(m *gMesh) error {
	if len(m.Primitives) == 0 {
		return newCheckErr("mesh has no primitives")
	}
	for i := range m.Primitives {
		p := &m.Primitives[i]
		if _, ok := p.Attributes["POSITION"]; !ok {
			return newCheckErr("primitive missing required POSITION attribute")
		}
		for name, idx := range p.Attributes {
			if idx < 0 || idx >= len(doc.Accessors) {
				return newCheckErr("invalid primitive attribute " + name + " accessor index")
			}
		}
		if p.Indices != nil && (*p.Indices < 0 || *p.Indices >= len(doc.Accessors)) {
			return newCheckErr("invalid primitive.indices accessor index")
		}
		if p.Material != nil && (*p.Material < 0 || *p.Material >= len(doc.Materials)) {
			return newCheckErr("invalid primitive.material index")
		}
	}
	return nil
}

func (doc *document) checkNode(n *gNode) error {
	if n.Mesh != nil && (*n.Mesh < 0 || *n.Mesh >= len(doc.Meshes)) {
		return newCheckErr("invalid node.mesh index")
	}
	if n.Skin != nil && (*n.Skin < 0 || *n.Skin >= len(doc.Skins)) {
		return newCheckErr("invalid node.skin index")
	}
	for _, c := range n.Children {
		if c < 0 || c >= len(doc.Nodes) {
			return newCheckErr("invalid node.children index")
		}
	}
	return nil
}

func (doc *document) checkSkin(s *gSkin) error {
	if len(s.Joints) == 0 {
		return newCheckErr("skin has no joints")
	}
	for _, j := range s.Joints {
		if j < 0 || j >= len(doc.Nodes) {
			return newCheckErr("invalid skin.joints index")
		}
	}
	if s.InverseBindMatrices != nil {
		idx := *s.InverseBindMatrices
		if idx < 0 || idx >= len(doc.Accessors) {
			return newCheckErr("invalid skin.inverseBindMatrices index")
		}
		acc := &doc.Accessors[idx]
		if acc.Type != typeMat4 || acc.Count < len(s.Joints) {
			return newCheckErr("skin.inverseBindMatrices accessor shape mismatch")
		}
	}
	return nil
}

func (doc *document) checkMaterial(m *gMaterial) error {
	checkTex := func(idx int) error {
		if idx < 0 || idx >= len(doc.Textures) {
			return newCheckErr("invalid material texture index")
		}
		return nil
	}
	if pbr := m.PBRMetallicRoughness; pbr != nil {
		if t := pbr.BaseColorTexture; t != nil {
			if err := checkTex(t.Index); err != nil {
				return err
			}
		}
		if t := pbr.MetallicRoughnessTexture; t != nil {
			if err := checkTex(t.Index); err != nil {
				return err
			}
		}
	}
	if t := m.NormalTexture; t != nil {
		if err := checkTex(t.Index); err != nil {
			return err
		}
	}
	if t := m.OcclusionTexture; t != nil {
		if err := checkTex(t.Index); err != nil {
			return err
		}
	}
	if t := m.EmissiveTexture; t != nil {
		if err := checkTex(t.Index); err != nil {
			return err
		}
	}
	switch m.AlphaMode {
	case "", alphaOpaque, alphaMask, alphaBlend:
	default:
		return newCheckErr("invalid material.alphaMode")
	}
	return nil
}
