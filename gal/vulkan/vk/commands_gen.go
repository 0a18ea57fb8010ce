// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Commands holds the function pointers resolved for one instance or
// device, mirroring the vk.xml command table a real generator would
// emit. Fields are populated by LoadGlobal/LoadInstance/LoadDevice and
// invoked through call/callVoid, which build their CallInterface on
// first use and cache it by arity.
type Commands struct {
	createInstance             uintptr
	destroyInstance            uintptr
	enumeratePhysicalDevices   uintptr
	getPhysicalDeviceProps     uintptr
	getPhysicalDeviceMemProps  uintptr
	createDevice               uintptr
	destroyDevice              uintptr
	getDeviceQueue             uintptr
	deviceWaitIdle             uintptr
	queueWaitIdle              uintptr
	queueSubmit                uintptr
	createCommandPool          uintptr
	destroyCommandPool         uintptr
	allocateCommandBuffers     uintptr
	freeCommandBuffers         uintptr
	beginCommandBuffer         uintptr
	endCommandBuffer           uintptr
	resetCommandBuffer         uintptr
	createBuffer               uintptr
	destroyBuffer              uintptr
	getBufferMemoryRequirements uintptr
	bindBufferMemory           uintptr
	createImage                uintptr
	destroyImage               uintptr
	getImageMemoryRequirements uintptr
	bindImageMemory            uintptr
	createImageView            uintptr
	destroyImageView           uintptr
	allocateMemory             uintptr
	freeMemory                 uintptr
	mapMemory                  uintptr
	unmapMemory                uintptr
	createRenderPass           uintptr
	destroyRenderPass          uintptr
	createFramebuffer          uintptr
	destroyFramebuffer         uintptr
	createShaderModule         uintptr
	destroyShaderModule        uintptr
	createGraphicsPipelines    uintptr
	destroyPipeline            uintptr
	createPipelineLayout       uintptr
	destroyPipelineLayout      uintptr
	createDescriptorSetLayout  uintptr
	destroyDescriptorSetLayout uintptr
	createDescriptorPool       uintptr
	destroyDescriptorPool      uintptr
	allocateDescriptorSets     uintptr
	updateDescriptorSets       uintptr
	createSampler              uintptr
	destroySampler             uintptr
	createSemaphore            uintptr
	destroySemaphore           uintptr
	createFence                uintptr
	destroyFence               uintptr
	waitForFences              uintptr
	resetFences                uintptr
	cmdBeginRenderPass         uintptr
	cmdEndRenderPass           uintptr
	cmdBindPipeline            uintptr
	cmdBindVertexBuffers       uintptr
	cmdBindIndexBuffer         uintptr
	cmdBindDescriptorSets      uintptr
	cmdSetViewport             uintptr
	cmdSetScissor              uintptr
	cmdDraw                    uintptr
	cmdDrawIndexed             uintptr
	cmdCopyBuffer              uintptr
	cmdPipelineBarrier         uintptr
	cmdCopyBufferToImage       uintptr
}

func resolveInstanceFn(instance Instance, name string) uintptr {
	return uintptr(GetInstanceProcAddr(instance, name))
}

func resolveDeviceFn(device Device, name string) uintptr {
	return uintptr(GetDeviceProcAddr(device, name))
}

// LoadGlobal resolves the subset of commands that are valid before any
// VkInstance exists (just vkCreateInstance, looked up with a null handle).
func (c *Commands) LoadGlobal() {
	c.createInstance = resolveInstanceFn(0, "vkCreateInstance")
}

// LoadInstance resolves instance-level and physical-device-level commands.
func (c *Commands) LoadInstance(instance Instance) {
	c.destroyInstance = resolveInstanceFn(instance, "vkDestroyInstance")
	c.enumeratePhysicalDevices = resolveInstanceFn(instance, "vkEnumeratePhysicalDevices")
	c.getPhysicalDeviceProps = resolveInstanceFn(instance, "vkGetPhysicalDeviceProperties")
	c.getPhysicalDeviceMemProps = resolveInstanceFn(instance, "vkGetPhysicalDeviceMemoryProperties")
	c.createDevice = resolveInstanceFn(instance, "vkCreateDevice")
	SetDeviceProcAddr(instance)
}

// LoadDevice resolves every device-level and command-buffer-level command.
func (c *Commands) LoadDevice(device Device) {
	get := func(name string) uintptr { return resolveDeviceFn(device, name) }

	c.destroyDevice = get("vkDestroyDevice")
	c.getDeviceQueue = get("vkGetDeviceQueue")
	c.deviceWaitIdle = get("vkDeviceWaitIdle")
	c.queueWaitIdle = get("vkQueueWaitIdle")
	c.queueSubmit = get("vkQueueSubmit")
	c.createCommandPool = get("vkCreateCommandPool")
	c.destroyCommandPool = get("vkDestroyCommandPool")
	c.allocateCommandBuffers = get("vkAllocateCommandBuffers")
	c.freeCommandBuffers = get("vkFreeCommandBuffers")
	c.beginCommandBuffer = get("vkBeginCommandBuffer")
	c.endCommandBuffer = get("vkEndCommandBuffer")
	c.resetCommandBuffer = get("vkResetCommandBuffer")
	c.createBuffer = get("vkCreateBuffer")
	c.destroyBuffer = get("vkDestroyBuffer")
	c.getBufferMemoryRequirements = get("vkGetBufferMemoryRequirements")
	c.bindBufferMemory = get("vkBindBufferMemory")
	c.createImage = get("vkCreateImage")
	c.destroyImage = get("vkDestroyImage")
	c.getImageMemoryRequirements = get("vkGetImageMemoryRequirements")
	c.bindImageMemory = get("vkBindImageMemory")
	c.createImageView = get("vkCreateImageView")
	c.destroyImageView = get("vkDestroyImageView")
	c.allocateMemory = get("vkAllocateMemory")
	c.freeMemory = get("vkFreeMemory")
	c.mapMemory = get("vkMapMemory")
	c.unmapMemory = get("vkUnmapMemory")
	c.createRenderPass = get("vkCreateRenderPass")
	c.destroyRenderPass = get("vkDestroyRenderPass")
	c.createFramebuffer = get("vkCreateFramebuffer")
	c.destroyFramebuffer = get("vkDestroyFramebuffer")
	c.createShaderModule = get("vkCreateShaderModule")
	c.destroyShaderModule = get("vkDestroyShaderModule")
	c.createGraphicsPipelines = get("vkCreateGraphicsPipelines")
	c.destroyPipeline = get("vkDestroyPipeline")
	c.createPipelineLayout = get("vkCreatePipelineLayout")
	c.destroyPipelineLayout = get("vkDestroyPipelineLayout")
	c.createDescriptorSetLayout = get("vkCreateDescriptorSetLayout")
	c.destroyDescriptorSetLayout = get("vkDestroyDescriptorSetLayout")
	c.createDescriptorPool = get("vkCreateDescriptorPool")
	c.destroyDescriptorPool = get("vkDestroyDescriptorPool")
	c.allocateDescriptorSets = get("vkAllocateDescriptorSets")
	c.updateDescriptorSets = get("vkUpdateDescriptorSets")
	c.createSampler = get("vkCreateSampler")
	c.destroySampler = get("vkDestroySampler")
	c.createSemaphore = get("vkCreateSemaphore")
	c.destroySemaphore = get("vkDestroySemaphore")
	c.createFence = get("vkCreateFence")
	c.destroyFence = get("vkDestroyFence")
	c.waitForFences = get("vkWaitForFences")
	c.resetFences = get("vkResetFences")
	c.cmdBeginRenderPass = get("vkCmdBeginRenderPass")
	c.cmdEndRenderPass = get("vkCmdEndRenderPass")
	c.cmdBindPipeline = get("vkCmdBindPipeline")
	c.cmdBindVertexBuffers = get("vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = get("vkCmdBindIndexBuffer")
	c.cmdBindDescriptorSets = get("vkCmdBindDescriptorSets")
	c.cmdSetViewport = get("vkCmdSetViewport")
	c.cmdSetScissor = get("vkCmdSetScissor")
	c.cmdDraw = get("vkCmdDraw")
	c.cmdDrawIndexed = get("vkCmdDrawIndexed")
	c.cmdCopyBuffer = get("vkCmdCopyBuffer")
	c.cmdPipelineBarrier = get("vkCmdPipelineBarrier")
	c.cmdCopyBufferToImage = get("vkCmdCopyBufferToImage")
}

// cifCache holds the lazily-built CallInterfaces used to invoke Vulkan
// commands through goffi. Every Vulkan argument and handle is
// pointer-width, so one CallInterface per (argument count, return kind)
// covers the whole command table instead of one per command.
var (
	cifMu    sync.Mutex
	cifRes   = map[int]*types.CallInterface{}
	cifVoidC = map[int]*types.CallInterface{}
)

func cifFor(n int, returnsResult bool) (*types.CallInterface, error) {
	cifMu.Lock()
	defer cifMu.Unlock()

	cache := cifVoidC
	if returnsResult {
		cache = cifRes
	}
	if cif, ok := cache[n]; ok {
		return cif, nil
	}

	args := make([]*types.TypeDescriptor, n)
	for i := range args {
		args[i] = types.UInt64TypeDescriptor
	}

	ret := types.VoidTypeDescriptor
	if returnsResult {
		ret = types.Int32TypeDescriptor
	}

	cif := &types.CallInterface{}
	if err := ffi.PrepareCallInterface(cif, types.DefaultCall, ret, args); err != nil {
		return nil, err
	}
	cache[n] = cif
	return cif, nil
}

// call invokes a Vulkan command expected to return VkResult. Every
// argument is passed as a pointer-sized value; pointers-to-structs are
// passed as their uintptr representation, matching loader.go's
// "pointer to where the value is stored" convention.
func call(fn uintptr, args ...uintptr) Result {
	if fn == 0 {
		return ErrorInitializationFailed
	}
	cif, err := cifFor(len(args), true)
	if err != nil {
		return ErrorInitializationFailed
	}

	argPtrs := make([]unsafe.Pointer, len(args))
	for i := range args {
		argPtrs[i] = unsafe.Pointer(&args[i])
	}

	var result int32
	if err := ffi.CallFunction(cif, unsafe.Pointer(fn), unsafe.Pointer(&result), argPtrs); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// callVoid invokes a Vulkan command with no return value (vkDestroy*,
// vkCmd*, vkGetDeviceQueue, ...).
func callVoid(fn uintptr, args ...uintptr) {
	if fn == 0 {
		return
	}
	cif, err := cifFor(len(args), false)
	if err != nil {
		return
	}

	argPtrs := make([]unsafe.Pointer, len(args))
	for i := range args {
		argPtrs[i] = unsafe.Pointer(&args[i])
	}

	_ = ffi.CallFunction(cif, unsafe.Pointer(fn), nil, argPtrs)
}

func ptr(p unsafe.Pointer) uintptr { return uintptr(p) }

// --- Typed wrappers -------------------------------------------------

func (c *Commands) CreateInstance(info *InstanceCreateInfo, instance *Instance) Result {
	return call(c.createInstance, 0, ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(instance)))
}

func (c *Commands) DestroyInstance(instance Instance) {
	callVoid(c.destroyInstance, uintptr(instance), 0)
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, devices *PhysicalDevice) Result {
	return call(c.enumeratePhysicalDevices, uintptr(instance), ptr(unsafe.Pointer(count)), ptr(unsafe.Pointer(devices)))
}

func (c *Commands) GetPhysicalDeviceProperties(dev PhysicalDevice, props *PhysicalDeviceProperties) {
	callVoid(c.getPhysicalDeviceProps, uintptr(dev), ptr(unsafe.Pointer(props)))
}

func (c *Commands) GetPhysicalDeviceMemoryProperties(dev PhysicalDevice, props *PhysicalDeviceMemoryProperties) {
	callVoid(c.getPhysicalDeviceMemProps, uintptr(dev), ptr(unsafe.Pointer(props)))
}

func (c *Commands) CreateDevice(physicalDevice PhysicalDevice, info *DeviceCreateInfo, device *Device) Result {
	return call(c.createDevice, uintptr(physicalDevice), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(device)))
}

func (c *Commands) DestroyDevice(device Device) {
	callVoid(c.destroyDevice, uintptr(device), 0)
}

func (c *Commands) GetDeviceQueue(device Device, familyIndex, queueIndex uint32, queue *Queue) {
	callVoid(c.getDeviceQueue, uintptr(device), uintptr(familyIndex), uintptr(queueIndex), ptr(unsafe.Pointer(queue)))
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	return call(c.deviceWaitIdle, uintptr(device))
}

func (c *Commands) QueueWaitIdle(queue Queue) Result {
	return call(c.queueWaitIdle, uintptr(queue))
}

func (c *Commands) QueueSubmit(queue Queue, count uint32, submits *SubmitInfo, fence Fence) Result {
	return call(c.queueSubmit, uintptr(queue), uintptr(count), ptr(unsafe.Pointer(submits)), uintptr(fence))
}

func (c *Commands) CreateCommandPool(device Device, info *CommandPoolCreateInfo, pool *CommandPool) Result {
	return call(c.createCommandPool, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(pool)))
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool) {
	callVoid(c.destroyCommandPool, uintptr(device), uintptr(pool), 0)
}

func (c *Commands) AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo, buffers *CommandBuffer) Result {
	return call(c.allocateCommandBuffers, uintptr(device), ptr(unsafe.Pointer(info)), ptr(unsafe.Pointer(buffers)))
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, buffers *CommandBuffer) {
	callVoid(c.freeCommandBuffers, uintptr(device), uintptr(pool), uintptr(count), ptr(unsafe.Pointer(buffers)))
}

func (c *Commands) BeginCommandBuffer(cmd CommandBuffer, info *CommandBufferBeginInfo) Result {
	return call(c.beginCommandBuffer, uintptr(cmd), ptr(unsafe.Pointer(info)))
}

func (c *Commands) EndCommandBuffer(cmd CommandBuffer) Result {
	return call(c.endCommandBuffer, uintptr(cmd))
}

func (c *Commands) ResetCommandBuffer(cmd CommandBuffer, flags uint32) Result {
	return call(c.resetCommandBuffer, uintptr(cmd), uintptr(flags))
}

func (c *Commands) CreateBuffer(device Device, info *BufferCreateInfo, buf *Buffer) Result {
	return call(c.createBuffer, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(buf)))
}

func (c *Commands) DestroyBuffer(device Device, buf Buffer) {
	callVoid(c.destroyBuffer, uintptr(device), uintptr(buf), 0)
}

func (c *Commands) GetBufferMemoryRequirements(device Device, buf Buffer, req *MemoryRequirements) {
	callVoid(c.getBufferMemoryRequirements, uintptr(device), uintptr(buf), ptr(unsafe.Pointer(req)))
}

func (c *Commands) BindBufferMemory(device Device, buf Buffer, mem DeviceMemory, offset uint64) Result {
	return call(c.bindBufferMemory, uintptr(device), uintptr(buf), uintptr(mem), uintptr(offset))
}

func (c *Commands) CreateImage(device Device, info *ImageCreateInfo, img *Image) Result {
	return call(c.createImage, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(img)))
}

func (c *Commands) DestroyImage(device Device, img Image) {
	callVoid(c.destroyImage, uintptr(device), uintptr(img), 0)
}

func (c *Commands) GetImageMemoryRequirements(device Device, img Image, req *MemoryRequirements) {
	callVoid(c.getImageMemoryRequirements, uintptr(device), uintptr(img), ptr(unsafe.Pointer(req)))
}

func (c *Commands) BindImageMemory(device Device, img Image, mem DeviceMemory, offset uint64) Result {
	return call(c.bindImageMemory, uintptr(device), uintptr(img), uintptr(mem), uintptr(offset))
}

func (c *Commands) CreateImageView(device Device, info *ImageViewCreateInfo, view *ImageView) Result {
	return call(c.createImageView, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(view)))
}

func (c *Commands) DestroyImageView(device Device, view ImageView) {
	callVoid(c.destroyImageView, uintptr(device), uintptr(view), 0)
}

func (c *Commands) AllocateMemory(device Device, info *MemoryAllocateInfo, mem *DeviceMemory) Result {
	return call(c.allocateMemory, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(mem)))
}

func (c *Commands) FreeMemory(device Device, mem DeviceMemory) {
	callVoid(c.freeMemory, uintptr(device), uintptr(mem), 0)
}

func (c *Commands) MapMemory(device Device, mem DeviceMemory, offset, size uint64, data *unsafe.Pointer) Result {
	return call(c.mapMemory, uintptr(device), uintptr(mem), uintptr(offset), uintptr(size), 0, ptr(unsafe.Pointer(data)))
}

func (c *Commands) UnmapMemory(device Device, mem DeviceMemory) {
	callVoid(c.unmapMemory, uintptr(device), uintptr(mem))
}

func (c *Commands) CreateRenderPass(device Device, info *RenderPassCreateInfo, rp *RenderPass) Result {
	return call(c.createRenderPass, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(rp)))
}

func (c *Commands) DestroyRenderPass(device Device, rp RenderPass) {
	callVoid(c.destroyRenderPass, uintptr(device), uintptr(rp), 0)
}

func (c *Commands) CreateFramebuffer(device Device, info *FramebufferCreateInfo, fb *Framebuffer) Result {
	return call(c.createFramebuffer, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(fb)))
}

func (c *Commands) DestroyFramebuffer(device Device, fb Framebuffer) {
	callVoid(c.destroyFramebuffer, uintptr(device), uintptr(fb), 0)
}

func (c *Commands) CreateShaderModule(device Device, info *ShaderModuleCreateInfo, mod *ShaderModule) Result {
	return call(c.createShaderModule, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(mod)))
}

func (c *Commands) DestroyShaderModule(device Device, mod ShaderModule) {
	callVoid(c.destroyShaderModule, uintptr(device), uintptr(mod), 0)
}

func (c *Commands) CreateGraphicsPipelines(device Device, cache uintptr, count uint32, infos *GraphicsPipelineCreateInfo, pipelines *Pipeline) Result {
	return call(c.createGraphicsPipelines, uintptr(device), cache, uintptr(count), ptr(unsafe.Pointer(infos)), 0, ptr(unsafe.Pointer(pipelines)))
}

func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline) {
	callVoid(c.destroyPipeline, uintptr(device), uintptr(pipeline), 0)
}

func (c *Commands) CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo, layout *PipelineLayout) Result {
	return call(c.createPipelineLayout, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(layout)))
}

func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout) {
	callVoid(c.destroyPipelineLayout, uintptr(device), uintptr(layout), 0)
}

func (c *Commands) CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo, layout *DescriptorSetLayout) Result {
	return call(c.createDescriptorSetLayout, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(layout)))
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout) {
	callVoid(c.destroyDescriptorSetLayout, uintptr(device), uintptr(layout), 0)
}

func (c *Commands) CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo, pool *DescriptorPool) Result {
	return call(c.createDescriptorPool, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(pool)))
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool) {
	callVoid(c.destroyDescriptorPool, uintptr(device), uintptr(pool), 0)
}

func (c *Commands) AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	return call(c.allocateDescriptorSets, uintptr(device), ptr(unsafe.Pointer(info)), ptr(unsafe.Pointer(sets)))
}

func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	callVoid(c.updateDescriptorSets, uintptr(device), uintptr(writeCount), ptr(unsafe.Pointer(writes)), uintptr(copyCount), ptr(unsafe.Pointer(copies)))
}

func (c *Commands) CreateSampler(device Device, info *SamplerCreateInfo, sampler *Sampler) Result {
	return call(c.createSampler, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(sampler)))
}

func (c *Commands) DestroySampler(device Device, sampler Sampler) {
	callVoid(c.destroySampler, uintptr(device), uintptr(sampler), 0)
}

func (c *Commands) CreateSemaphore(device Device, info *SemaphoreCreateInfo, sem *Semaphore) Result {
	return call(c.createSemaphore, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(sem)))
}

func (c *Commands) DestroySemaphore(device Device, sem Semaphore) {
	callVoid(c.destroySemaphore, uintptr(device), uintptr(sem), 0)
}

func (c *Commands) CreateFence(device Device, info *FenceCreateInfo, fence *Fence) Result {
	return call(c.createFence, uintptr(device), ptr(unsafe.Pointer(info)), 0, ptr(unsafe.Pointer(fence)))
}

func (c *Commands) DestroyFence(device Device, fence Fence) {
	callVoid(c.destroyFence, uintptr(device), uintptr(fence), 0)
}

func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll uint32, timeout uint64) Result {
	return call(c.waitForFences, uintptr(device), uintptr(count), ptr(unsafe.Pointer(fences)), uintptr(waitAll), uintptr(timeout))
}

func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	return call(c.resetFences, uintptr(device), uintptr(count), ptr(unsafe.Pointer(fences)))
}

func (c *Commands) CmdBeginRenderPass(cmd CommandBuffer, info *RenderPassBeginInfo, contents uint32) {
	callVoid(c.cmdBeginRenderPass, uintptr(cmd), ptr(unsafe.Pointer(info)), uintptr(contents))
}

func (c *Commands) CmdEndRenderPass(cmd CommandBuffer) {
	callVoid(c.cmdEndRenderPass, uintptr(cmd))
}

func (c *Commands) CmdBindPipeline(cmd CommandBuffer, bindPoint uint32, pipeline Pipeline) {
	callVoid(c.cmdBindPipeline, uintptr(cmd), uintptr(bindPoint), uintptr(pipeline))
}

func (c *Commands) CmdBindVertexBuffers(cmd CommandBuffer, firstBinding, count uint32, buffers *Buffer, offsets *uint64) {
	callVoid(c.cmdBindVertexBuffers, uintptr(cmd), uintptr(firstBinding), uintptr(count), ptr(unsafe.Pointer(buffers)), ptr(unsafe.Pointer(offsets)))
}

func (c *Commands) CmdBindIndexBuffer(cmd CommandBuffer, buf Buffer, offset uint64, indexType uint32) {
	callVoid(c.cmdBindIndexBuffer, uintptr(cmd), uintptr(buf), uintptr(offset), uintptr(indexType))
}

func (c *Commands) CmdBindDescriptorSets(cmd CommandBuffer, bindPoint uint32, layout PipelineLayout, firstSet, count uint32, sets *DescriptorSet, dynOffsetCount uint32, dynOffsets *uint32) {
	callVoid(c.cmdBindDescriptorSets, uintptr(cmd), uintptr(bindPoint), uintptr(layout), uintptr(firstSet), uintptr(count), ptr(unsafe.Pointer(sets)), uintptr(dynOffsetCount), ptr(unsafe.Pointer(dynOffsets)))
}

func (c *Commands) CmdSetViewport(cmd CommandBuffer, first, count uint32, viewports *Viewport) {
	callVoid(c.cmdSetViewport, uintptr(cmd), uintptr(first), uintptr(count), ptr(unsafe.Pointer(viewports)))
}

func (c *Commands) CmdSetScissor(cmd CommandBuffer, first, count uint32, scissors *Rect2D) {
	callVoid(c.cmdSetScissor, uintptr(cmd), uintptr(first), uintptr(count), ptr(unsafe.Pointer(scissors)))
}

func (c *Commands) CmdDraw(cmd CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	callVoid(c.cmdDraw, uintptr(cmd), uintptr(vertexCount), uintptr(instanceCount), uintptr(firstVertex), uintptr(firstInstance))
}

func (c *Commands) CmdDrawIndexed(cmd CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	callVoid(c.cmdDrawIndexed, uintptr(cmd), uintptr(indexCount), uintptr(instanceCount), uintptr(firstIndex), uintptr(int32(vertexOffset)), uintptr(firstInstance))
}

func (c *Commands) CmdCopyBuffer(cmd CommandBuffer, src, dst Buffer, count uint32, regions *BufferCopy) {
	callVoid(c.cmdCopyBuffer, uintptr(cmd), uintptr(src), uintptr(dst), uintptr(count), ptr(unsafe.Pointer(regions)))
}

func (c *Commands) CmdPipelineBarrier(cmd CommandBuffer, srcStage, dstStage uint32, imageBarrierCount uint32, imageBarriers *ImageMemoryBarrier) {
	callVoid(c.cmdPipelineBarrier, uintptr(cmd), uintptr(srcStage), uintptr(dstStage), uintptr(0),
		uintptr(0), uintptr(0), uintptr(0), uintptr(0), uintptr(imageBarrierCount), ptr(unsafe.Pointer(imageBarriers)))
}

func (c *Commands) CmdCopyBufferToImage(cmd CommandBuffer, src Buffer, dst Image, dstLayout uint32, count uint32, regions *BufferImageCopy) {
	callVoid(c.cmdCopyBufferToImage, uintptr(cmd), uintptr(src), uintptr(dst), uintptr(dstLayout), uintptr(count), ptr(unsafe.Pointer(regions)))
}
