// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/binmian/levikno/gal"
	memory "github.com/binmian/levikno/gal/vulkan/valloc"
	"github.com/binmian/levikno/gal/vulkan/vk"
)

// readSPIRV loads a compiled SPIR-V binary from disk, validating its magic
// number so a mistakenly-pointed-at GLSL source file fails fast instead of
// producing a cryptic vkCreateShaderModule error.
func readSPIRV(path string) ([]byte, error) {
	if path == "" {
		return nil, gal.Err(gal.Failure, "vulkan: CreateShader: missing SPIR-V binary path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vulkan: reading SPIR-V %q: %w", path, err)
	}
	if len(data) < 4 || len(data)%4 != 0 {
		return nil, fmt.Errorf("vulkan: %q is not a valid SPIR-V binary", path)
	}
	const spirvMagic = 0x07230203
	magic := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	if magic != spirvMagic {
		magic = uint32(data[3]) | uint32(data[2])<<8 | uint32(data[1])<<16 | uint32(data[0])<<24
		if magic != spirvMagic {
			return nil, fmt.Errorf("vulkan: %q has no valid SPIR-V magic number", path)
		}
	}
	return data, nil
}

// --- shaders ---

// CreateShader only accepts pre-compiled SPIR-V binary data via
// ShaderSource's VertexBinPath/FragmentBinPath file-path fields; gal/vulkan
// carries no GLSL-to-SPIR-V compiler (none of the teacher's dependency
// stack provides one), so VertexSrc/FragmentSrc in-memory source and
// VertexFilePath/FragmentFilePath raw-GLSL-file variants are unsupported
// here and return an error instead of silently mis-compiling.
func (b *Backend) CreateShader(src gal.ShaderSource) (gal.Shader, error) {
	if src.VertexSrc != "" || src.FragmentSrc != "" || src.VertexFilePath != "" || src.FragmentFilePath != "" {
		return gal.Shader{}, gal.Err(gal.Failure, "vulkan: CreateShader: only precompiled SPIR-V binaries (VertexBinPath/FragmentBinPath) are supported")
	}
	vertCode, err := readSPIRV(src.VertexBinPath)
	if err != nil {
		return gal.Shader{}, err
	}
	fragCode, err := readSPIRV(src.FragmentBinPath)
	if err != nil {
		return gal.Shader{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vertMod, err := b.createShaderModuleLocked(vertCode)
	if err != nil {
		return gal.Shader{}, err
	}
	fragMod, err := b.createShaderModuleLocked(fragCode)
	if err != nil {
		b.cmds.DestroyShaderModule(b.device, vertMod)
		return gal.Shader{}, err
	}

	h, _, err := b.shaders.Create(false, func(s *nativeShader) {
		s.vertex = vertMod
		s.fragment = fragMod
	})
	if err != nil {
		b.cmds.DestroyShaderModule(b.device, fragMod)
		b.cmds.DestroyShaderModule(b.device, vertMod)
		return gal.Shader{}, err
	}
	return h, nil
}

func (b *Backend) createShaderModuleLocked(code []byte) (vk.ShaderModule, error) {
	info := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(code)),
		PCode:    bytesPtr(code),
	}
	var mod vk.ShaderModule
	if res := b.cmds.CreateShaderModule(b.device, &info, &mod); !res.IsSuccess() {
		return 0, fmt.Errorf("vulkan: vkCreateShaderModule: %w", res)
	}
	return mod, nil
}

func (b *Backend) DestroyShader(sh gal.Shader) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.shaders.Get(sh)
	if !ok {
		return
	}
	b.cmds.DestroyShaderModule(b.device, s.vertex)
	b.cmds.DestroyShaderModule(b.device, s.fragment)
	b.shaders.Destroy(sh)
}

// --- pipelines ---

func (b *Backend) CreatePipeline(info gal.PipelineCreateInfo) (gal.Pipeline, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	shader, ok := b.shaders.Get(info.Shader)
	if !ok {
		return gal.Pipeline{}, gal.Err(gal.Failure, "vulkan: CreatePipeline: invalid shader handle")
	}
	rp, ok := b.renderPasses.Get(info.RenderPass)
	if !ok {
		return gal.Pipeline{}, gal.Err(gal.Failure, "vulkan: CreatePipeline: invalid render pass handle")
	}

	setLayouts := make([]vk.DescriptorSetLayout, 0, len(info.DescriptorLayouts))
	for _, lh := range info.DescriptorLayouts {
		l, ok := b.descriptorLayouts.Get(lh)
		if !ok {
			return gal.Pipeline{}, gal.Err(gal.Failure, "vulkan: CreatePipeline: invalid descriptor layout handle")
		}
		setLayouts = append(setLayouts, l.handle)
	}
	layoutInfo := vk.PipelineLayoutCreateInfo{SType: vk.StructureTypePipelineLayoutCreateInfo}
	if len(setLayouts) > 0 {
		layoutInfo.SetLayoutCount = uint32(len(setLayouts))
		layoutInfo.PSetLayouts = sliceHead(setLayouts)
	}
	var layout vk.PipelineLayout
	if res := b.cmds.CreatePipelineLayout(b.device, &layoutInfo, &layout); !res.IsSuccess() {
		return gal.Pipeline{}, fmt.Errorf("vulkan: vkCreatePipelineLayout: %w", res)
	}

	vertName := cString("main")
	fragName := cString("main")
	stages := []vk.PipelineShaderStageCreateInfo{
		{SType: vk.StructureTypePipelineShaderStageCreateInfo, Stage: vkShaderStageVertexBit, Module: shader.vertex, PName: bytesPtr(vertName)},
		{SType: vk.StructureTypePipelineShaderStageCreateInfo, Stage: vkShaderStageFragmentBit, Module: shader.fragment, PName: bytesPtr(fragName)},
	}

	bindings := make([]vk.VertexInputBindingDescription, len(info.Spec.VertexBindings))
	for i, vb := range info.Spec.VertexBindings {
		rate := uint32(0)
		if !vb.PerVertex {
			rate = 1
		}
		bindings[i] = vk.VertexInputBindingDescription{Binding: vb.Binding, Stride: vb.Stride, InputRate: rate}
	}
	attrs := make([]vk.VertexInputAttributeDescription, len(info.Spec.VertexAttributes))
	for i, va := range info.Spec.VertexAttributes {
		attrs[i] = vk.VertexInputAttributeDescription{
			Location: va.Location,
			Binding:  va.Binding,
			Format:   vkVertexFormat(va.Format),
			Offset:   va.Offset,
		}
	}
	vertexInput := vk.PipelineVertexInputStateCreateInfo{SType: vk.StructureTypePipelineVertexInputStateCreateInfo}
	if len(bindings) > 0 {
		vertexInput.VertexBindingDescriptionCount = uint32(len(bindings))
		vertexInput.PVertexBindingDescriptions = sliceHead(bindings)
	}
	if len(attrs) > 0 {
		vertexInput.VertexAttributeDescriptionCount = uint32(len(attrs))
		vertexInput.PVertexAttributeDescriptions = sliceHead(attrs)
	}

	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: vkTopology(info.Spec.InputAssembly.Topology),
	}
	if info.Spec.InputAssembly.PrimitiveRestart {
		inputAssembly.PrimitiveRestartEnable = 1
	}

	viewport := vk.Viewport{MinDepth: info.Spec.Viewport.MinDepth, MaxDepth: info.Spec.Viewport.MaxDepth}
	scissor := vk.Rect2D{}
	viewportState := vk.PipelineViewportStateCreateInfo{
		SType: vk.StructureTypePipelineViewportStateCreateInfo, ViewportCount: 1, PViewports: ptrOf(&viewport),
		ScissorCount: 1, PScissors: ptrOf(&scissor),
	}

	raster := vk.PipelineRasterizationStateCreateInfo{
		SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode: vkPolygonModeFill,
		CullMode:    vkCullMode(info.Spec.Rasterizer.CullMode),
		FrontFace:   vkFrontFace(info.Spec.Rasterizer.FrontFace),
		LineWidth:   info.Spec.Rasterizer.LineWidth,
	}
	if raster.LineWidth == 0 {
		raster.LineWidth = 1
	}

	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: uint32(info.Spec.Multisample.SampleCount),
	}
	if multisample.RasterizationSamples == 0 {
		multisample.RasterizationSamples = vkSampleCount1Bit
	}

	depthStencil := vk.PipelineDepthStencilStateCreateInfo{
		SType:          vk.StructureTypePipelineDepthStencilStateCreateInfo,
		DepthCompareOp: vkCompareOp(info.Spec.DepthStencil.DepthOpCompare),
		Front: vk.StencilOpState{
			FailOp: vkStencilOp(info.Spec.DepthStencil.Front.FailOp), PassOp: vkStencilOp(info.Spec.DepthStencil.Front.PassOp),
			DepthFailOp: vkStencilOp(info.Spec.DepthStencil.Front.DepthFailOp), CompareOp: vkCompareOp(info.Spec.DepthStencil.Front.CompareOp),
			CompareMask: info.Spec.DepthStencil.Front.CompareMask, WriteMask: info.Spec.DepthStencil.Front.WriteMask, Reference: info.Spec.DepthStencil.Front.Reference,
		},
		Back: vk.StencilOpState{
			FailOp: vkStencilOp(info.Spec.DepthStencil.Back.FailOp), PassOp: vkStencilOp(info.Spec.DepthStencil.Back.PassOp),
			DepthFailOp: vkStencilOp(info.Spec.DepthStencil.Back.DepthFailOp), CompareOp: vkCompareOp(info.Spec.DepthStencil.Back.CompareOp),
			CompareMask: info.Spec.DepthStencil.Back.CompareMask, WriteMask: info.Spec.DepthStencil.Back.WriteMask, Reference: info.Spec.DepthStencil.Back.Reference,
		},
		MaxDepthBounds: 1,
	}
	if info.Spec.DepthStencil.EnableDepth {
		depthStencil.DepthTestEnable = 1
		depthStencil.DepthWriteEnable = 1
	}
	if info.Spec.DepthStencil.EnableStencil {
		depthStencil.StencilTestEnable = 1
	}

	blendAttachments := make([]vk.PipelineColorBlendAttachmentState, len(info.Spec.ColorBlend.Attachments))
	for i, a := range info.Spec.ColorBlend.Attachments {
		var enable uint32
		if a.Enable {
			enable = 1
		}
		blendAttachments[i] = vk.PipelineColorBlendAttachmentState{
			BlendEnable: enable, SrcColorBlendFactor: vkBlendFactor(a.SrcColorFactor), DstColorBlendFactor: vkBlendFactor(a.DstColorFactor),
			ColorBlendOp: vkBlendOp(a.ColorOp), SrcAlphaBlendFactor: vkBlendFactor(a.SrcAlphaFactor), DstAlphaBlendFactor: vkBlendFactor(a.DstAlphaFactor),
			AlphaBlendOp: vkBlendOp(a.AlphaOp), ColorWriteMask: vkColorComponentFlags(a.ColorWriteMask),
		}
	}
	if len(blendAttachments) == 0 {
		blendAttachments = []vk.PipelineColorBlendAttachmentState{{ColorWriteMask: vkColorComponentFlags(gal.ColorWriteAll)}}
	}
	colorBlend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		AttachmentCount: uint32(len(blendAttachments)),
		PAttachments:    sliceHead(blendAttachments),
		BlendConstants:  info.Spec.ColorBlend.BlendConstants,
	}

	dynamicStates := []uint32{dynamicStateViewport, dynamicStateScissor}
	dynamicState := vk.PipelineDynamicStateCreateInfo{
		SType: vk.StructureTypePipelineDynamicStateCreateInfo, DynamicStateCount: uint32(len(dynamicStates)), PDynamicStates: sliceHead(dynamicStates),
	}

	pipeInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             sliceHead(stages),
		PVertexInputState:   ptrOf(&vertexInput),
		PInputAssemblyState: ptrOf(&inputAssembly),
		PViewportState:      ptrOf(&viewportState),
		PRasterizationState: ptrOf(&raster),
		PMultisampleState:   ptrOf(&multisample),
		PDepthStencilState:  ptrOf(&depthStencil),
		PColorBlendState:    ptrOf(&colorBlend),
		PDynamicState:       ptrOf(&dynamicState),
		Layout:              layout,
		RenderPass:          rp.handle,
	}
	var pipeline vk.Pipeline
	if res := b.cmds.CreateGraphicsPipelines(b.device, 0, 1, &pipeInfo, &pipeline); !res.IsSuccess() {
		b.cmds.DestroyPipelineLayout(b.device, layout)
		return gal.Pipeline{}, fmt.Errorf("vulkan: vkCreateGraphicsPipelines: %w", res)
	}

	h, _, err := b.pipelines.Create(false, func(p *nativePipeline) {
		p.handle = pipeline
		p.layout = layout
	})
	if err != nil {
		b.cmds.DestroyPipeline(b.device, pipeline)
		b.cmds.DestroyPipelineLayout(b.device, layout)
		return gal.Pipeline{}, err
	}
	return h, nil
}

func (b *Backend) DestroyPipeline(ph gal.Pipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pipelines.Get(ph)
	if !ok {
		return
	}
	b.cmds.DestroyPipeline(b.device, p.handle)
	b.cmds.DestroyPipelineLayout(b.device, p.layout)
	b.pipelines.Destroy(ph)
}

// --- buffers ---

func (b *Backend) CreateBuffer(info gal.BufferCreateInfo) (gal.Buffer, error) {
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
		if !info.Usage.IsDynamic() {
			return gal.Buffer{}, gal.Err(gal.Failure, "vulkan: CreateBuffer: non-dynamic buffer requires initial data")
		}
		size = 4096
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	usage := vkBufferUsageTransferDstBit
	if info.Usage&gal.BufferUsageVertex != 0 {
		usage |= vkBufferUsageVertexBufferBit
	}
	if info.Usage&gal.BufferUsageIndex != 0 {
		usage |= vkBufferUsageIndexBufferBit
	}

	handle, block, err := b.createDeviceBufferLocked(size, usage)
	if err != nil {
		return gal.Buffer{}, err
	}
	if data != nil {
		if err := b.uploadHostVisibleLocked(block, data); err != nil {
			b.allocator.Free(block)
			b.cmds.DestroyBuffer(b.device, handle)
			return gal.Buffer{}, err
		}
	}

	h, _, err := b.buffers.Create(false, func(buf *nativeBuffer) {
		buf.handle = handle
		buf.memory = block
		buf.size = size
		buf.usage = info.Usage
	})
	if err != nil {
		b.allocator.Free(block)
		b.cmds.DestroyBuffer(b.device, handle)
		return gal.Buffer{}, err
	}
	return h, nil
}

func (b *Backend) createDeviceBufferLocked(size uint64, usage uint32) (vk.Buffer, *memBlock, error) {
	info := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       usage,
		SharingMode: vkSharingModeExclusive,
	}
	var handle vk.Buffer
	if res := b.cmds.CreateBuffer(b.device, &info, &handle); !res.IsSuccess() {
		return 0, nil, fmt.Errorf("vulkan: vkCreateBuffer: %w", res)
	}
	var req vk.MemoryRequirements
	b.cmds.GetBufferMemoryRequirements(b.device, handle, &req)
	block, err := b.allocator.Alloc(memory.AllocationRequest{
		Size: req.Size, Alignment: req.Alignment, MemoryTypeBits: req.MemoryTypeBits,
		Usage: memory.UsageHostAccess | memory.UsageUpload,
	})
	if err != nil {
		b.cmds.DestroyBuffer(b.device, handle)
		return 0, nil, fmt.Errorf("vulkan: buffer allocation: %w", err)
	}
	if res := b.cmds.BindBufferMemory(b.device, handle, block.Memory, block.Offset); !res.IsSuccess() {
		b.allocator.Free(block)
		b.cmds.DestroyBuffer(b.device, handle)
		return 0, nil, fmt.Errorf("vulkan: vkBindBufferMemory: %w", res)
	}
	return handle, block, nil
}

// uploadHostVisibleLocked copies data into block via a manual Map/Unmap
// pair; valloc's MemoryBlock carries no Map helper of its own, so callers
// go straight through vk.Commands.
func (b *Backend) uploadHostVisibleLocked(block *memBlock, data []byte) error {
	var ptr unsafe.Pointer
	if res := b.cmds.MapMemory(b.device, block.Memory, block.Offset, uint64(len(data)), &ptr); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkMapMemory: %w", res)
	}
	dst := unsafe.Slice((*byte)(ptr), len(data))
	copy(dst, data)
	b.cmds.UnmapMemory(b.device, block.Memory)
	return nil
}

func (b *Backend) DestroyBuffer(bh gal.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return
	}
	b.cmds.DestroyBuffer(b.device, buf.handle)
	b.allocator.Free(buf.memory)
	b.buffers.Destroy(bh)
}

func (b *Backend) BufferUpdateData(bh gal.Buffer, data []byte, offset uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: BufferUpdateData: invalid buffer handle")
	}
	if !buf.usage.IsDynamic() {
		return gal.Err(gal.Failure, "vulkan: BufferUpdateData: buffer is not dynamic")
	}
	if offset+uint64(len(data)) > buf.size {
		return gal.Err(gal.Failure, "vulkan: BufferUpdateData: write out of bounds")
	}
	var ptr unsafe.Pointer
	if res := b.cmds.MapMemory(b.device, buf.memory.Memory, buf.memory.Offset+offset, uint64(len(data)), &ptr); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkMapMemory: %w", res)
	}
	dst := unsafe.Slice((*byte)(ptr), len(data))
	copy(dst, data)
	b.cmds.UnmapMemory(b.device, buf.memory.Memory)
	return nil
}

func (b *Backend) BufferResize(bh gal.Buffer, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return gal.Err(gal.Failure, "vulkan: BufferResize: invalid buffer handle")
	}
	if !buf.usage.IsResizable() {
		return gal.Err(gal.Failure, "vulkan: BufferResize: buffer is not resizable")
	}
	usage := vkBufferUsageTransferDstBit
	if buf.usage&gal.BufferUsageVertex != 0 {
		usage |= vkBufferUsageVertexBufferBit
	}
	if buf.usage&gal.BufferUsageIndex != 0 {
		usage |= vkBufferUsageIndexBufferBit
	}
	handle, block, err := b.createDeviceBufferLocked(size, usage)
	if err != nil {
		return err
	}
	b.cmds.DestroyBuffer(b.device, buf.handle)
	b.allocator.Free(buf.memory)
	buf.handle = handle
	buf.memory = block
	buf.size = size
	return nil
}

func uint32SliceBytes(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

const (
	dynamicStateViewport uint32 = 0
	dynamicStateScissor  uint32 = 1
)
