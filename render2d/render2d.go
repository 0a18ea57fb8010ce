// Package render2d is Levikno's higher-level 2D renderer built on top of
// GAL (spec.md's out-of-scope "batched quads/triangles/polygons on top of
// GAL"): it accumulates simple colored/textured shapes into one interleaved
// vertex/index buffer pair and flushes them as a single indexed draw call,
// the batching strategy every sprite-style 2D renderer in the retrieval
// pack's sample code follows around a GPU command encoder.
package render2d

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/binmian/levikno/gal"
)

// Vertex is one interleaved 2D vertex: position, texture coordinate, and
// per-vertex RGBA tint.
type Vertex struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

// vertexSize is Vertex's packed byte size: 8 float32 components.
const vertexSize = 8 * 4

// VertexLayout is the gal.VertexInputBinding every render2d pipeline must
// be created with.
func VertexLayout() gal.VertexInputBinding {
	return gal.VertexInputBinding{
		Bindings: []gal.VertexBinding{
			{Binding: 0, Stride: vertexSize, PerVertex: true},
		},
		Attributes: []gal.VertexAttribute{
			{Binding: 0, Location: 0, Offset: 0, Format: gal.VertexAttributeVec2F32},
			{Binding: 0, Location: 1, Offset: 8, Format: gal.VertexAttributeVec2F32},
			{Binding: 0, Location: 2, Offset: 16, Format: gal.VertexAttributeVec4F32},
		},
	}
}

// White is the default tint for shapes drawn without an explicit color.
var White = [4]float32{1, 1, 1, 1}

// Batch accumulates 2D geometry into a fixed-capacity vertex/index buffer
// pair, auto-flushing with Flush whenever a new shape would overflow it.
// The caller is responsible for the surrounding
// BeginRenderPass/EndRenderPass (or BeginFrameBuffer/EndFrameBuffer)
// bracket and for calling Begin once per frame to select the pipeline and
// descriptor sets draws should use.
type Batch struct {
	backend gal.Backend
	window  gal.Window

	vertexBuffer gal.Buffer
	indexBuffer  gal.Buffer
	maxVertices  int
	maxIndices   int

	pipeline gal.Pipeline
	sets     []gal.DescriptorSet

	vertices []Vertex
	indices  []uint32
}

// NewBatch allocates a vertex/index buffer pair sized for maxQuads
// quads (4 vertices, 6 indices each) and returns a ready Batch.
func NewBatch(backend gal.Backend, window gal.Window, maxQuads int) (*Batch, error) {
	if maxQuads <= 0 {
		return nil, fmt.Errorf("render2d: NewBatch: maxQuads must be positive")
	}
	maxVertices := maxQuads * 4
	maxIndices := maxQuads * 6

	vb, err := backend.CreateBuffer(gal.BufferCreateInfo{
		Usage:      gal.BufferUsageVertex | gal.BufferUsageDynamic,
		Layout:     VertexLayout(),
		VertexData: make([]byte, maxVertices*vertexSize),
	})
	if err != nil {
		return nil, fmt.Errorf("render2d: NewBatch: vertex buffer: %w", err)
	}
	ib, err := backend.CreateBuffer(gal.BufferCreateInfo{
		Usage:     gal.BufferUsageIndex | gal.BufferUsageDynamic,
		Layout:    VertexLayout(),
		IndexData: make([]uint32, maxIndices),
	})
	if err != nil {
		backend.DestroyBuffer(vb)
		return nil, fmt.Errorf("render2d: NewBatch: index buffer: %w", err)
	}

	return &Batch{
		backend:      backend,
		window:       window,
		vertexBuffer: vb,
		indexBuffer:  ib,
		maxVertices:  maxVertices,
		maxIndices:   maxIndices,
	}, nil
}

// Destroy releases the batch's vertex/index buffers.
func (b *Batch) Destroy() {
	b.backend.DestroyBuffer(b.vertexBuffer)
	b.backend.DestroyBuffer(b.indexBuffer)
}

// Begin selects the pipeline and descriptor sets Flush will bind, and
// resets any geometry accumulated since the last Flush. Call once per
// frame before the first shape of that frame.
func (b *Batch) Begin(pipeline gal.Pipeline, sets []gal.DescriptorSet) {
	b.pipeline = pipeline
	b.sets = sets
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Quad appends an axis-aligned rectangle at (x,y) of size (w,h), with UVs
// spanning the whole source image (0,0)-(1,1).
func (b *Batch) Quad(x, y, w, h float32, color [4]float32) error {
	return b.QuadUV(x, y, w, h, 0, 0, 1, 1, color)
}

// QuadUV appends an axis-aligned rectangle with an explicit UV sub-rect,
// for drawing one region of a texture atlas (e.g. a font.Atlas glyph).
func (b *Batch) QuadUV(x, y, w, h, u0, v0, u1, v1 float32, color [4]float32) error {
	if err := b.ensureCapacity(4, 6); err != nil {
		return err
	}
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices,
		Vertex{X: x, Y: y, U: u0, V: v0, R: color[0], G: color[1], B: color[2], A: color[3]},
		Vertex{X: x + w, Y: y, U: u1, V: v0, R: color[0], G: color[1], B: color[2], A: color[3]},
		Vertex{X: x + w, Y: y + h, U: u1, V: v1, R: color[0], G: color[1], B: color[2], A: color[3]},
		Vertex{X: x, Y: y + h, U: u0, V: v1, R: color[0], G: color[1], B: color[2], A: color[3]},
	)
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
	return nil
}

// Triangle appends one triangle from three points sharing one color.
func (b *Batch) Triangle(p0, p1, p2 [2]float32, color [4]float32) error {
	if err := b.ensureCapacity(3, 3); err != nil {
		return err
	}
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices,
		Vertex{X: p0[0], Y: p0[1], R: color[0], G: color[1], B: color[2], A: color[3]},
		Vertex{X: p1[0], Y: p1[1], R: color[0], G: color[1], B: color[2], A: color[3]},
		Vertex{X: p2[0], Y: p2[1], R: color[0], G: color[1], B: color[2], A: color[3]},
	)
	b.indices = append(b.indices, base, base+1, base+2)
	return nil
}

// Polygon appends a convex polygon, triangle-fanned from its first point,
// the same fan-from-first-vertex convention gazed-vu's font.go Panel uses
// to turn an arbitrary character quad into two index-buffer triangles.
func (b *Batch) Polygon(points [][2]float32, color [4]float32) error {
	if len(points) < 3 {
		return fmt.Errorf("render2d: Polygon: need at least 3 points, got %d", len(points))
	}
	triangles := len(points) - 2
	if err := b.ensureCapacity(len(points), triangles*3); err != nil {
		return err
	}
	base := uint32(len(b.vertices))
	for _, p := range points {
		b.vertices = append(b.vertices, Vertex{X: p[0], Y: p[1], R: color[0], G: color[1], B: color[2], A: color[3]})
	}
	for i := 0; i < triangles; i++ {
		b.indices = append(b.indices, base, base+uint32(i+1), base+uint32(i+2))
	}
	return nil
}

// ensureCapacity flushes the batch first if adding addVertices/addIndices
// would overflow its fixed-size buffers.
func (b *Batch) ensureCapacity(addVertices, addIndices int) error {
	if len(b.vertices)+addVertices > b.maxVertices || len(b.indices)+addIndices > b.maxIndices {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	if addVertices > b.maxVertices || addIndices > b.maxIndices {
		return fmt.Errorf("render2d: shape of %d vertices/%d indices exceeds batch capacity %d/%d",
			addVertices, addIndices, b.maxVertices, b.maxIndices)
	}
	return nil
}

// Flush uploads the accumulated geometry and issues one indexed draw call
// binding b.pipeline and b.sets (set via Begin). A no-op if nothing has
// been accumulated since the last Flush.
func (b *Batch) Flush() error {
	if len(b.indices) == 0 {
		return nil
	}
	vertexBytes := encodeVertices(b.vertices)
	if err := b.backend.BufferUpdateData(b.vertexBuffer, vertexBytes, 0); err != nil {
		return fmt.Errorf("render2d: Flush: vertex upload: %w", err)
	}
	indexBytes := encodeIndices(b.indices)
	if err := b.backend.BufferUpdateData(b.indexBuffer, indexBytes, 0); err != nil {
		return fmt.Errorf("render2d: Flush: index upload: %w", err)
	}

	b.backend.RenderCmdBindPipeline(b.window, b.pipeline)
	if len(b.sets) > 0 {
		b.backend.RenderCmdBindDescriptorSets(b.window, b.sets)
	}
	b.backend.RenderCmdBindVertexBuffer(b.window, b.vertexBuffer, 0)
	b.backend.RenderCmdBindIndexBuffer(b.window, b.indexBuffer)
	b.backend.RenderCmdDrawIndexed(b.window, uint32(len(b.indices)), 1, 0, 0, 0)

	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	return nil
}

func encodeVertices(vertices []Vertex) []byte {
	out := make([]byte, len(vertices)*vertexSize)
	for i, v := range vertices {
		off := i * vertexSize
		putFloat32(out[off:], v.X)
		putFloat32(out[off+4:], v.Y)
		putFloat32(out[off+8:], v.U)
		putFloat32(out[off+12:], v.V)
		putFloat32(out[off+16:], v.R)
		putFloat32(out[off+20:], v.G)
		putFloat32(out[off+24:], v.B)
		putFloat32(out[off+28:], v.A)
	}
	return out
}

func encodeIndices(indices []uint32) []byte {
	out := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

func putFloat32(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}
