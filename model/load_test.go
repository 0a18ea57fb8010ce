package model

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"testing"

	levikno "github.com/binmian/levikno/context"
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/vmath"
)

func testContext(t *testing.T) (*levikno.Context, gal.Window) {
	t.Helper()
	ctx, err := levikno.CreateContext(levikno.Config{AppName: "model-test"})
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	t.Cleanup(func() { levikno.TerminateContext(ctx) })

	win, err := ctx.Backend().CreateWindow(gal.WindowCreateInfo{Width: 4, Height: 4, Title: "t"})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	return ctx, win
}

// buildTriangleGLB assembles a minimal single-triangle GLB blob in memory:
// one buffer holding interleaved POSITION (VEC3 float) data, one mesh
// primitive referencing it, one node, one scene.
func buildTriangleGLB(t *testing.T) []byte {
	t.Helper()
	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	}
	var bin bytes.Buffer
	for _, f := range positions {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
		bin.Write(b[:])
	}
	binLen := bin.Len()

	doc := map[string]any{
		"asset": map[string]any{"version": "2.0"},
		"scene": 0,
		"scenes": []any{
			map[string]any{"nodes": []int{0}},
		},
		"nodes": []any{
			map[string]any{"mesh": 0},
		},
		"meshes": []any{
			map[string]any{
				"primitives": []any{
					map[string]any{
						"attributes": map[string]any{"POSITION": 0},
						"mode":       4,
					},
				},
			},
		},
		"accessors": []any{
			map[string]any{
				"bufferView":    0,
				"componentType": compFloat,
				"count":         3,
				"type":          "VEC3",
			},
		},
		"bufferViews": []any{
			map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": binLen},
		},
		"buffers": []any{
			map[string]any{"byteLength": binLen},
		},
	}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	// glTF chunk bytes must be 4-byte aligned; pad JSON with spaces and BIN
	// with zeros per the Khronos spec.
	for len(jsonBytes)%4 != 0 {
		jsonBytes = append(jsonBytes, ' ')
	}
	binBytes := bin.Bytes()
	for len(binBytes)%4 != 0 {
		binBytes = append(binBytes, 0)
	}

	var out bytes.Buffer
	header := [3]uint32{glbMagic, glbVersion, 0}
	totalLen := uint32(glbHeaderSz + chunkHdrSz + len(jsonBytes) + chunkHdrSz + len(binBytes))
	header[2] = totalLen
	binary.Write(&out, binary.LittleEndian, header[:])

	binary.Write(&out, binary.LittleEndian, [2]uint32{uint32(len(jsonBytes)), chunkJSON})
	out.Write(jsonBytes)

	binary.Write(&out, binary.LittleEndian, [2]uint32{uint32(len(binBytes)), chunkBIN})
	out.Write(binBytes)

	return out.Bytes()
}

func TestLoadReaderGLBTriangle(t *testing.T) {
	ctx, win := testContext(t)
	blob := buildTriangleGLB(t)

	m, err := LoadReader(ctx, win, bytes.NewReader(blob), Options{})
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(m.Meshes))
	}
	prim := m.Meshes[0].Primitives[0]
	if prim.VertexCount != 3 {
		t.Fatalf("expected 3 vertices, got %d", prim.VertexCount)
	}
	if prim.Topology != gal.TopologyTriangle {
		t.Fatalf("expected triangle topology, got %v", prim.Topology)
	}
	if prim.HasIndex {
		t.Fatal("expected no index buffer for this primitive")
	}
	if m.Scene == nil || len(m.Scene.Nodes) != 1 {
		t.Fatalf("expected a 1-node scene, got %+v", m.Scene)
	}
	world := m.Scene.WorldTransforms()
	if len(world) != 1 {
		t.Fatalf("expected 1 world transform, got %d", len(world))
	}
	if world[0] != vmath.Identity() {
		t.Fatalf("expected identity world transform for a root node with no TRS, got %v", world[0])
	}
}

func TestLoadReaderMultithreaded(t *testing.T) {
	ctx, win := testContext(t)
	blob := buildTriangleGLB(t)

	m, err := LoadReader(ctx, win, bytes.NewReader(blob), Options{Multithreaded: true})
	if err != nil {
		t.Fatalf("LoadReader (multithreaded): %v", err)
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(m.Meshes))
	}
}

func TestLoadReaderRejectsGarbage(t *testing.T) {
	ctx, win := testContext(t)
	if _, err := LoadReader(ctx, win, bytes.NewReader([]byte("not a gltf document")), Options{}); err == nil {
		t.Fatal("expected an error for garbage input")
	}
}
