package model

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/binmian/levikno/gal"
	levikno "github.com/binmian/levikno/context"
	"github.com/binmian/levikno/imagedecode"
)

// Options configures Load.
type Options struct {
	// Dir resolves buffer/image URIs that are relative file paths. Ignored
	// for data URIs and for the GLB BIN chunk.
	Dir string
	// Multithreaded reads the images' encoded bytes on a second goroutine
	// while animations are built. Image decoding, primitive CPU-side
	// assembly and the GPU resource calls run afterwards, serially on the
	// caller's goroutine.
	Multithreaded bool
}

// Model is the fully loaded, GPU-resident result of Load.
type Model struct {
	Meshes     []Mesh
	Materials  []*Material
	Scene      *Scene
	Skins      []*Skin
	Animations []Animation
}

// Load reads a glTF (.gltf) or GLB (.glb) file at path and builds its GPU
// resources through ctx. win supplies the frame-index context
// UpdateUniformBufferData needs for skin SSBO uploads.
func Load(ctx *levikno.Context, win gal.Window, path string, opts Options) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	defer f.Close()
	if opts.Dir == "" {
		opts.Dir = filepath.Dir(path)
	}
	return LoadReader(ctx, win, f, opts)
}

// LoadReader loads a glTF/GLB document from r, auto-detecting the container
// by sniffing the GLB magic.
func LoadReader(ctx *levikno.Context, win gal.Window, r io.Reader, opts Options) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	var doc *document
	var glbBin []byte
	if len(data) >= glbHeaderSz {
		if _, _, _, ok := isGLB(bytes.NewReader(data)); ok {
			doc, glbBin, err = unpackGLB(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
		}
	}
	if doc == nil {
		doc, err = decodeDocument(data)
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
	}
	if err := doc.check(); err != nil {
		return nil, err
	}

	buffers, err := doc.resolveBuffers(opts.Dir, glbBin)
	if err != nil {
		return nil, err
	}

	var rawImages [][]byte
	var animations []Animation
	if opts.Multithreaded {
		var wg sync.WaitGroup
		var imgErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			rawImages, imgErr = doc.resolveImageBytes(opts.Dir, buffers)
		}()
		animations = doc.buildAnimations(buffers)
		wg.Wait()
		if imgErr != nil {
			return nil, imgErr
		}
	} else {
		if rawImages, err = doc.resolveImageBytes(opts.Dir, buffers); err != nil {
			return nil, err
		}
		animations = doc.buildAnimations(buffers)
	}

	decoded := make([]imagedecode.Image, len(rawImages))
	for i, raw := range rawImages {
		img, err := imagedecode.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("model: image %d: %w", i, err)
		}
		decoded[i] = img
	}

	imageTextures := make([]gal.Texture, len(decoded))
	for i, img := range decoded {
		t, err := ctx.Backend().CreateTexture(gal.TextureCreateInfo{
			Width: img.Width, Height: img.Height, Channels: 4,
			Pixels: img.Pixels,
			Format: gal.ColorFormatRGBA8,
		})
		if err != nil {
			return nil, fmt.Errorf("model: texture %d: %w", i, err)
		}
		imageTextures[i] = t
	}

	defaults, err := buildDefaultTextures(ctx)
	if err != nil {
		return nil, err
	}

	materials := make([]*Material, len(doc.Materials))
	for i := range doc.Materials {
		m, err := doc.buildMaterial(ctx, &doc.Materials[i], imageTextures, defaults)
		if err != nil {
			return nil, err
		}
		materials[i] = m
	}

	meshes := make([]Mesh, len(doc.Meshes))
	for mi := range doc.Meshes {
		gm := &doc.Meshes[mi]
		mesh := Mesh{Primitives: make([]Primitive, len(gm.Primitives))}
		for pi := range gm.Primitives {
			gp := &gm.Primitives[pi]
			var mat *Material
			if gp.Material != nil {
				mat = materials[*gp.Material]
			}
			data, indices, count, topology := doc.assemblePrimitive(buffers, gp, mat)
			prim, err := buildPrimitive(ctx, data, indices, count, topology, mat)
			if err != nil {
				return nil, fmt.Errorf("model: mesh %d primitive %d: %w", mi, pi, err)
			}
			mesh.Primitives[pi] = prim
		}
		meshes[mi] = mesh
	}

	skins := make([]*Skin, len(doc.Skins))
	for i := range doc.Skins {
		s, err := doc.buildSkin(ctx, win, buffers, &doc.Skins[i])
		if err != nil {
			return nil, fmt.Errorf("model: skin %d: %w", i, err)
		}
		skins[i] = s
	}

	sceneIdx := -1
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	} else if len(doc.Scenes) > 0 {
		sceneIdx = 0
	}
	scene := doc.buildScene(sceneIdx)

	return &Model{
		Meshes:     meshes,
		Materials:  materials,
		Scene:      scene,
		Skins:      skins,
		Animations: animations,
	}, nil
}

func (doc *document) buildAnimations(buffers []resolvedBuffer) []Animation {
	out := make([]Animation, len(doc.Animations))
	for i := range doc.Animations {
		out[i] = doc.buildAnimation(buffers, &doc.Animations[i])
	}
	return out
}

// resolveBuffers loads every glTF buffer's bytes: the GLB BIN chunk for a
// URI-less buffer, base64 payload for a data URI, or a file read relative
// to dir otherwise.
func (doc *document) resolveBuffers(dir string, glbBin []byte) ([]resolvedBuffer, error) {
	out := make([]resolvedBuffer, len(doc.Buffers))
	for i, b := range doc.Buffers {
		switch {
		case b.URI == "":
			if glbBin == nil {
				return nil, fmt.Errorf("model: buffer %d has no URI and no GLB BIN chunk is present", i)
			}
			out[i].data = glbBin
		case strings.HasPrefix(b.URI, "data:"):
			raw, err := decodeDataURI(b.URI)
			if err != nil {
				return nil, fmt.Errorf("model: buffer %d: %w", i, err)
			}
			out[i].data = raw
		default:
			raw, err := os.ReadFile(filepath.Join(dir, b.URI))
			if err != nil {
				return nil, fmt.Errorf("model: buffer %d: %w", i, err)
			}
			out[i].data = raw
		}
	}
	return out, nil
}

// resolveImageBytes reads each glTF image's raw (still-encoded) bytes,
// either sliced out of a buffer view, decoded from a data URI, or read from
// an external file.
func (doc *document) resolveImageBytes(dir string, buffers []resolvedBuffer) ([][]byte, error) {
	out := make([][]byte, len(doc.Images))
	for i, img := range doc.Images {
		switch {
		case img.BufferView != nil:
			out[i] = doc.bufferViewBytes(buffers, *img.BufferView)
		case strings.HasPrefix(img.URI, "data:"):
			raw, err := decodeDataURI(img.URI)
			if err != nil {
				return nil, fmt.Errorf("model: image %d: %w", i, err)
			}
			out[i] = raw
		default:
			raw, err := os.ReadFile(filepath.Join(dir, img.URI))
			if err != nil {
				return nil, fmt.Errorf("model: image %d: %w", i, err)
			}
			out[i] = raw
		}
	}
	return out, nil
}

// decodeDataURI decodes the base64 payload of a "data:...;base64,..." URI.
func decodeDataURI(uri string) ([]byte, error) {
	idx := strings.Index(uri, ",")
	if idx < 0 || !strings.Contains(uri[:idx], "base64") {
		return nil, fmt.Errorf("unsupported data URI encoding")
	}
	return base64.StdEncoding.DecodeString(uri[idx+1:])
}
