// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"os"
	"unsafe"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/opengl/gl"
)

// --- shaders ---

// CreateShader compiles GLSL directly, unlike gal/vulkan's SPIR-V-only
// restriction: GL takes shader source text natively, so both the in-memory
// and file-path variants of gal.ShaderSource are honored here, and only the
// precompiled-binary path fields are rejected.
func (b *Backend) CreateShader(src gal.ShaderSource) (gal.Shader, error) {
	if src.VertexBinPath != "" || src.FragmentBinPath != "" {
		return gal.Shader{}, gal.Err(gal.Failure, "opengl: CreateShader: precompiled binary shaders are not supported, only GLSL source")
	}
	if err := gal.ValidateShaderSource(src); err != nil {
		return gal.Shader{}, err
	}
	vertSrc, err := resolveShaderSource(src.VertexSrc, src.VertexFilePath)
	if err != nil {
		return gal.Shader{}, err
	}
	fragSrc, err := resolveShaderSource(src.FragmentSrc, src.FragmentFilePath)
	if err != nil {
		return gal.Shader{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vertShader, err := b.compileShaderLocked(gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gal.Shader{}, err
	}
	fragShader, err := b.compileShaderLocked(gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		b.gl.DeleteShader(vertShader)
		return gal.Shader{}, err
	}

	program := b.gl.CreateProgram()
	b.gl.AttachShader(program, vertShader)
	b.gl.AttachShader(program, fragShader)
	b.gl.LinkProgram(program)

	var linked int32
	b.gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	// glDeleteShader after linking: the shader objects aren't needed once
	// attached and linked (the program keeps its own compiled copy).
	b.gl.DeleteShader(vertShader)
	b.gl.DeleteShader(fragShader)
	if linked == 0 {
		log := b.gl.GetProgramInfoLog(program)
		b.gl.DeleteProgram(program)
		return gal.Shader{}, gal.Err(gal.Failure, "opengl: CreateShader: program link failed: %s", log)
	}

	h, _, err := b.shaders.Create(false, func(s *nativeShader) {
		s.program = program
	})
	if err != nil {
		b.gl.DeleteProgram(program)
		return gal.Shader{}, err
	}
	return h, nil
}

func resolveShaderSource(inMemory, filePath string) (string, error) {
	if inMemory != "" {
		return inMemory, nil
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", gal.Err(gal.Failure, "opengl: reading shader source %q: %v", filePath, err)
		}
		return string(data), nil
	}
	return "", gal.Err(gal.Failure, "opengl: CreateShader: no source provided")
}

func (b *Backend) compileShaderLocked(stage uint32, source string) (uint32, error) {
	shader := b.gl.CreateShader(stage)
	b.gl.ShaderSource(shader, source)
	b.gl.CompileShader(shader)
	var compiled int32
	b.gl.GetShaderiv(shader, gl.COMPILE_STATUS, &compiled)
	if compiled == 0 {
		log := b.gl.GetShaderInfoLog(shader)
		b.gl.DeleteShader(shader)
		return 0, gal.Err(gal.Failure, "opengl: shader compile failed: %s", log)
	}
	return shader, nil
}

func (b *Backend) DestroyShader(sh gal.Shader) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.shaders.Get(sh)
	if !ok {
		return
	}
	b.gl.DeleteProgram(s.program)
	b.shaders.Destroy(sh)
}

// --- pipelines ---

// CreatePipeline bakes spec into a stored struct applied at bind time
// (RenderCmdBindPipeline), since GL has no monolithic pipeline object the
// way Vulkan does; the linked program is the only thing actually compiled
// up front.
func (b *Backend) CreatePipeline(info gal.PipelineCreateInfo) (gal.Pipeline, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	shader, ok := b.shaders.Get(info.Shader)
	if !ok {
		return gal.Pipeline{}, gal.Err(gal.Failure, "opengl: CreatePipeline: invalid shader handle")
	}
	if _, ok := b.renderPasses.Get(info.RenderPass); !ok {
		return gal.Pipeline{}, gal.Err(gal.Failure, "opengl: CreatePipeline: invalid render pass handle")
	}
	for _, lh := range info.DescriptorLayouts {
		if _, ok := b.descriptorLayouts.Get(lh); !ok {
			return gal.Pipeline{}, gal.Err(gal.Failure, "opengl: CreatePipeline: invalid descriptor layout handle")
		}
	}

	h, _, err := b.pipelines.Create(false, func(p *nativePipeline) {
		p.program = shader.program
		p.spec = info.Spec
		p.layouts = append([]gal.DescriptorLayout(nil), info.DescriptorLayouts...)
	})
	if err != nil {
		return gal.Pipeline{}, err
	}
	return h, nil
}

func (b *Backend) DestroyPipeline(ph gal.Pipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.pipelines.Get(ph)
	if !ok {
		return
	}
	b.pipelines.Destroy(ph)
}

// --- buffers ---

func (b *Backend) CreateBuffer(info gal.BufferCreateInfo) (gal.Buffer, error) {
	if err := gal.ValidateBuffer(info); err != nil {
		return gal.Buffer{}, err
	}
	var data []byte
	var size uint64
	switch {
	case info.Usage&gal.BufferUsageIndex != 0 && len(info.IndexData) > 0:
		data = uint32SliceBytes(info.IndexData)
		size = uint64(len(data))
	case len(info.VertexData) > 0:
		data = info.VertexData
		size = uint64(len(data))
	default:
		size = 4096
	}

	target := uint32(gl.ARRAY_BUFFER)
	if info.Usage&gal.BufferUsageIndex != 0 {
		target = gl.ELEMENT_ARRAY_BUFFER
	}
	usage := uint32(gl.STATIC_DRAW)
	if info.Usage.IsDynamic() {
		usage = gl.DYNAMIC_DRAW
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	handle := b.gl.GenBuffers(1)
	b.gl.BindBuffer(target, handle)
	var dataPtr uintptr
	if len(data) > 0 {
		dataPtr = uintptr(unsafe.Pointer(&data[0]))
	}
	b.gl.BufferData(target, int(size), dataPtr, usage)
	b.gl.BindBuffer(target, 0)

	h, _, err := b.buffers.Create(false, func(buf *nativeBuffer) {
		buf.handle = handle
		buf.target = target
		buf.usage = info.Usage
		buf.size = size
		buf.layout = info.Layout
	})
	if err != nil {
		b.gl.DeleteBuffers(handle)
		return gal.Buffer{}, err
	}
	return h, nil
}

func (b *Backend) DestroyBuffer(bh gal.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return
	}
	b.gl.DeleteBuffers(buf.handle)
	b.buffers.Destroy(bh)
}

func (b *Backend) BufferUpdateData(bh gal.Buffer, data []byte, offset uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: BufferUpdateData: invalid buffer handle")
	}
	if !buf.usage.IsDynamic() {
		return gal.Err(gal.Failure, "opengl: BufferUpdateData: buffer is not dynamic")
	}
	if offset+uint64(len(data)) > buf.size {
		return gal.Err(gal.Failure, "opengl: BufferUpdateData: write out of bounds")
	}
	b.gl.BindBuffer(buf.target, buf.handle)
	var dataPtr uintptr
	if len(data) > 0 {
		dataPtr = uintptr(unsafe.Pointer(&data[0]))
	}
	b.gl.BufferSubData(buf.target, int(offset), len(data), dataPtr)
	b.gl.BindBuffer(buf.target, 0)
	return nil
}

func (b *Backend) BufferResize(bh gal.Buffer, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return gal.Err(gal.Failure, "opengl: BufferResize: invalid buffer handle")
	}
	if !buf.usage.IsResizable() {
		return gal.Err(gal.Failure, "opengl: BufferResize: buffer is not resizable")
	}
	usage := uint32(gl.DYNAMIC_DRAW)
	b.gl.BindBuffer(buf.target, buf.handle)
	b.gl.BufferData(buf.target, int(size), 0, usage)
	b.gl.BindBuffer(buf.target, 0)
	buf.size = size
	return nil
}

func uint32SliceBytes(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
