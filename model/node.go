package model

import "github.com/binmian/levikno/vmath"

// Node is a resolved scene-graph node: its local transform, optional mesh/
// skin linkage, and children by index into Scene.Nodes.
type Node struct {
	Name        string
	Local       vmath.Mat4
	Children    []int
	Mesh        int // -1 if none
	Skin        int // -1 if none
	hasMesh     bool
	hasSkin     bool
}

// HasMesh reports whether the node references a mesh.
func (n *Node) HasMesh() bool { return n.hasMesh }

// HasSkin reports whether the node references a skin.
func (n *Node) HasSkin() bool { return n.hasSkin }

// Scene is a resolved, ready-to-traverse node graph: Levikno's Load output
// keeps node transforms local (spec.md §4.7 "composes each node's
// transform"); world transforms are produced by WorldTransforms, the second
// pass that lets animation channels target nodes by index before any
// flattening happens.
type Scene struct {
	Nodes []Node
	Roots []int
}

// nodeLocalTransform composes a node's local matrix from either an explicit
// matrix or TRS (translation, rotation quaternion, scale), in that priority,
// matching glTF's own precedence rule.
func nodeLocalTransform(n *gNode) vmath.Mat4 {
	if n.Matrix != nil {
		return vmath.Mat4(*n.Matrix)
	}
	t := vmath.Identity()
	if n.Translation != nil {
		tr := *n.Translation
		t = vmath.Translate(vmath.Vec3{X: tr[0], Y: tr[1], Z: tr[2]})
	}
	r := vmath.IdentityQuat()
	if n.Rotation != nil {
		rq := *n.Rotation
		r = vmath.Quat{X: rq[0], Y: rq[1], Z: rq[2], W: rq[3]}.Normalized()
	}
	s := vmath.Identity()
	if n.Scale != nil {
		sc := *n.Scale
		s = vmath.Scale(vmath.Vec3{X: sc[0], Y: sc[1], Z: sc[2]})
	}
	return t.Mul(r.ToMat4()).Mul(s)
}

// buildScene resolves doc's nodes (local transforms, mesh/skin linkage) and
// the chosen scene's root list. Node → mesh linkage is resolved here, in a
// pass separate from the raw gNode decode, so animation channels (built
// afterward) can address nodes purely by index.
func (doc *document) buildScene(sceneIdx int) *Scene {
	nodes := make([]Node, len(doc.Nodes))
	for i := range doc.Nodes {
		gn := &doc.Nodes[i]
		nodes[i] = Node{
			Name:     gn.Name,
			Local:    nodeLocalTransform(gn),
			Children: append([]int(nil), gn.Children...),
			Mesh:     -1,
			Skin:     -1,
		}
		if gn.Mesh != nil {
			nodes[i].Mesh = *gn.Mesh
			nodes[i].hasMesh = true
		}
		if gn.Skin != nil {
			nodes[i].Skin = *gn.Skin
			nodes[i].hasSkin = true
		}
	}
	var roots []int
	if sceneIdx >= 0 && sceneIdx < len(doc.Scenes) {
		roots = append([]int(nil), doc.Scenes[sceneIdx].Nodes...)
	}
	return &Scene{Nodes: nodes, Roots: roots}
}

// WorldTransforms walks the scene from its roots and returns each node's
// world matrix, recursively composing child transforms with their parent's
// (spec.md §4.7 "Node traversal recursively walks the scene's root nodes").
func (s *Scene) WorldTransforms() []vmath.Mat4 {
	out := make([]vmath.Mat4, len(s.Nodes))
	var walk func(idx int, parent vmath.Mat4)
	walk = func(idx int, parent vmath.Mat4) {
		world := parent.Mul(s.Nodes[idx].Local)
		out[idx] = world
		for _, c := range s.Nodes[idx].Children {
			walk(c, world)
		}
	}
	for _, r := range s.Roots {
		walk(r, vmath.Identity())
	}
	return out
}
