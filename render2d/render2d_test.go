package render2d

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/noop"
	"github.com/binmian/levikno/memorypool"
)

func newTestBatch(t *testing.T) (*noop.Backend, gal.Window, gal.Pipeline, *Batch) {
	t.Helper()
	b := noop.New(memorypool.Pooled, 8, 8)
	if err := b.RenderInit(b.GetPhysicalDevices()[0], 2, false); err != nil {
		t.Fatalf("RenderInit: %v", err)
	}
	w, err := b.CreateWindow(gal.WindowCreateInfo{Width: 64, Height: 64, Title: "t"})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	shader, err := b.CreateShader(gal.ShaderSource{VertexSrc: "vert", FragmentSrc: "frag"})
	if err != nil {
		t.Fatalf("CreateShader: %v", err)
	}
	spec := gal.DefaultPipelineSpec()
	spec.VertexAttributes = VertexLayout().Attributes
	spec.VertexBindings = VertexLayout().Bindings
	pipeline, err := b.CreatePipeline(gal.PipelineCreateInfo{
		Shader:     shader,
		Spec:       spec,
		RenderPass: b.WindowGetRenderPass(w),
	})
	if err != nil {
		t.Fatalf("CreatePipeline: %v", err)
	}
	batch, err := NewBatch(b, w, 4)
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}
	return b, w, pipeline, batch
}

func TestBatchQuadFlushesOneDrawCall(t *testing.T) {
	b, w, pipeline, batch := newTestBatch(t)
	defer batch.Destroy()
	defer b.DestroyWindow(w)

	if err := b.BeginCommandRecording(w); err != nil {
		t.Fatalf("BeginCommandRecording: %v", err)
	}
	if err := b.BeginRenderPass(w, b.WindowGetRenderPass(w), gal.ClearColor{}); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}

	batch.Begin(pipeline, nil)
	if err := batch.Quad(0, 0, 8, 8, White); err != nil {
		t.Fatalf("Quad: %v", err)
	}
	if len(batch.vertices) != 4 || len(batch.indices) != 6 {
		t.Fatalf("expected 4 vertices/6 indices accumulated, got %d/%d", len(batch.vertices), len(batch.indices))
	}
	if err := batch.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(batch.vertices) != 0 || len(batch.indices) != 0 {
		t.Fatalf("expected Flush to clear accumulated geometry")
	}

	if err := b.EndRenderPass(w); err != nil {
		t.Fatalf("EndRenderPass: %v", err)
	}
	if err := b.EndCommandRecording(w); err != nil {
		t.Fatalf("EndCommandRecording: %v", err)
	}
}

func TestBatchAutoFlushesOnOverflow(t *testing.T) {
	b, w, pipeline, batch := newTestBatch(t)
	defer batch.Destroy()
	defer b.DestroyWindow(w)

	if err := b.BeginCommandRecording(w); err != nil {
		t.Fatalf("BeginCommandRecording: %v", err)
	}
	if err := b.BeginRenderPass(w, b.WindowGetRenderPass(w), gal.ClearColor{}); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}

	batch.Begin(pipeline, nil)
	for i := 0; i < 4; i++ {
		if err := batch.Quad(float32(i), 0, 1, 1, White); err != nil {
			t.Fatalf("Quad %d: %v", i, err)
		}
	}
	if len(batch.vertices) != 16 {
		t.Fatalf("expected batch full at capacity, got %d vertices", len(batch.vertices))
	}
	// A 5th quad exceeds the 4-quad capacity and must auto-flush first.
	if err := batch.Quad(5, 0, 1, 1, White); err != nil {
		t.Fatalf("Quad 5: %v", err)
	}
	if len(batch.vertices) != 4 {
		t.Fatalf("expected auto-flush to leave only the new quad's 4 vertices, got %d", len(batch.vertices))
	}

	if err := batch.Flush(); err != nil {
		t.Fatalf("final Flush: %v", err)
	}
	if err := b.EndRenderPass(w); err != nil {
		t.Fatalf("EndRenderPass: %v", err)
	}
	if err := b.EndCommandRecording(w); err != nil {
		t.Fatalf("EndCommandRecording: %v", err)
	}
}

func TestBatchRejectsShapeLargerThanCapacity(t *testing.T) {
	_, _, _, batch := newTestBatch(t)
	defer batch.Destroy()

	points := make([][2]float32, 6) // 6-gon needs 6 vertices, capacity is 4 quads = 16, fine for vertices
	for i := range points {
		points[i] = [2]float32{float32(i), float32(i)}
	}
	// Force a tiny batch to exercise the over-capacity error path.
	tiny := &Batch{backend: batch.backend, window: batch.window, maxVertices: 3, maxIndices: 3}
	if err := tiny.Polygon(points, White); err == nil {
		t.Fatalf("expected error when a shape exceeds total batch capacity")
	}
}

func TestEncodeVerticesRoundTrips(t *testing.T) {
	vertices := []Vertex{{X: 1, Y: 2, U: 0.5, V: 0.25, R: 1, G: 0, B: 0, A: 1}}
	encoded := encodeVertices(vertices)
	if len(encoded) != vertexSize {
		t.Fatalf("expected %d bytes, got %d", vertexSize, len(encoded))
	}
	for i, want := range []float32{1, 2, 0.5, 0.25, 1, 0, 0, 1} {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(encoded[i*4:])); got != want {
			t.Fatalf("component %d: got %v, want %v", i, got, want)
		}
	}
}
