// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vulkan is the real Vulkan 1.x gal.Backend: instance/device
// bootstrap, VMA-style suballocation via gal/vulkan/valloc, and the
// resource/frame/draw dispatch spec.md §4.5 describes. It has no
// surface/swapchain integration of its own (windowing lives in the window
// package); CreateWindow here allocates an offscreen color+depth render
// target, the same model gal/noop uses for its synthetic windows, so the
// full command-recording and resource lifecycle can be exercised without a
// live presentation engine.
package vulkan

import (
	"fmt"
	"sync"

	"github.com/binmian/levikno/context"
	"github.com/binmian/levikno/gal"
	memory "github.com/binmian/levikno/gal/vulkan/valloc"
	"github.com/binmian/levikno/gal/vulkan/vk"
	"github.com/binmian/levikno/memorypool"
)

func init() {
	context.RegisterBackend(gal.BackendVulkan, New)
}

type memBlock = memory.MemoryBlock

var _ gal.Backend = (*Backend)(nil)

// Backend is the Vulkan gal.Backend implementation. Zero value is not
// ready for use; call New.
type Backend struct {
	mu sync.Mutex

	instanceOnce sync.Once
	instanceErr  error
	instance     vk.Instance
	globalCmds   vk.Commands

	physicalDevices    []vk.PhysicalDevice
	physicalDeviceInfo []gal.PhysicalDevice

	device         vk.Device
	physicalDevice vk.PhysicalDevice
	queueFamily    uint32
	queue          vk.Queue
	commandPool    vk.CommandPool
	cmds           vk.Commands
	allocator      *memory.GpuAllocator

	maxFramesInFlight int
	gammaCorrection   bool

	activeFB *nativeFrameBuffer

	windows           *gal.Table[gal.WindowMarker, nativeWindow]
	shaders           *gal.Table[gal.ShaderMarker, nativeShader]
	buffers           *gal.Table[gal.BufferMarker, nativeBuffer]
	uniformBuffers    *gal.Table[gal.UniformBufferMarker, nativeUniformBuffer]
	textures          *gal.Table[gal.TextureMarker, nativeTexture]
	samplers          *gal.Table[gal.SamplerMarker, nativeSampler]
	cubemaps          *gal.Table[gal.CubemapMarker, nativeCubemap]
	descriptorLayouts *gal.Table[gal.DescriptorLayoutMarker, nativeDescriptorLayout]
	descriptorSets    *gal.Table[gal.DescriptorSetMarker, nativeDescriptorSet]
	pipelines         *gal.Table[gal.PipelineMarker, nativePipeline]
	frameBuffers      *gal.Table[gal.FrameBufferMarker, nativeFrameBuffer]
	renderPasses      *gal.Table[gal.RenderPassMarker, nativeRenderPass]
}

// New constructs a Vulkan backend sized per cfg, the same memory-pool
// parameters createContext threads through every backend.
func New(cfg context.MemoryPoolConfig) (gal.Backend, error) {
	mode := cfg.Mode
	initial := cfg.InitialCounts[memorypool.KindWindow]
	overflow := cfg.OverflowCounts[memorypool.KindWindow]
	if initial == 0 {
		initial = 32
	}
	if overflow == 0 {
		overflow = 16
	}

	b := &Backend{
		windows:           gal.NewTable[gal.WindowMarker, nativeWindow](mode, initial, overflow),
		shaders:           gal.NewTable[gal.ShaderMarker, nativeShader](mode, initial, overflow),
		buffers:           gal.NewTable[gal.BufferMarker, nativeBuffer](mode, initial, overflow),
		uniformBuffers:    gal.NewTable[gal.UniformBufferMarker, nativeUniformBuffer](mode, initial, overflow),
		textures:          gal.NewTable[gal.TextureMarker, nativeTexture](mode, initial, overflow),
		samplers:          gal.NewTable[gal.SamplerMarker, nativeSampler](mode, initial, overflow),
		cubemaps:          gal.NewTable[gal.CubemapMarker, nativeCubemap](mode, initial, overflow),
		descriptorLayouts: gal.NewTable[gal.DescriptorLayoutMarker, nativeDescriptorLayout](mode, initial, overflow),
		descriptorSets:    gal.NewTable[gal.DescriptorSetMarker, nativeDescriptorSet](mode, initial, overflow),
		pipelines:         gal.NewTable[gal.PipelineMarker, nativePipeline](mode, initial, overflow),
		frameBuffers:      gal.NewTable[gal.FrameBufferMarker, nativeFrameBuffer](mode, initial, overflow),
		renderPasses:      gal.NewTable[gal.RenderPassMarker, nativeRenderPass](mode, initial, overflow),
	}
	return b, nil
}

func (b *Backend) Kind() gal.BackendKind { return gal.BackendVulkan }

// ensureInstance lazily creates the VkInstance and enumerates physical
// devices; GetPhysicalDevices must work before RenderInit picks one, so
// instance creation can't wait for RenderInit the way device creation does.
func (b *Backend) ensureInstance() error {
	b.instanceOnce.Do(func() {
		b.instanceErr = b.createInstance()
	})
	return b.instanceErr
}

func (b *Backend) createInstance() error {
	if err := vk.Init(); err != nil {
		return fmt.Errorf("vulkan: loading libvulkan: %w", err)
	}
	b.globalCmds.LoadGlobal()

	appName := cString("levikno")
	engineName := cString("levikno")
	appInfo := vk.ApplicationInfo{
		SType:            vk.StructureTypeApplicationInfo,
		PApplicationName: bytesPtr(appName),
		PEngineName:      bytesPtr(engineName),
		APIVersion:       vkAPIVersion1_0,
	}

	createInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: ptrOf(&appInfo),
	}

	var instance vk.Instance
	if res := b.globalCmds.CreateInstance(&createInfo, &instance); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkCreateInstance: %w", res)
	}
	b.instance = instance
	b.globalCmds.LoadInstance(instance)

	var count uint32
	if res := b.globalCmds.EnumeratePhysicalDevices(instance, &count, nil); !res.IsSuccess() || count == 0 {
		return fmt.Errorf("vulkan: no physical devices available")
	}
	devices := make([]vk.PhysicalDevice, count)
	if res := b.globalCmds.EnumeratePhysicalDevices(instance, &count, &devices[0]); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkEnumeratePhysicalDevices: %w", res)
	}
	b.physicalDevices = devices

	infos := make([]gal.PhysicalDevice, len(devices))
	for i, dev := range devices {
		var props vk.PhysicalDeviceProperties
		b.globalCmds.GetPhysicalDeviceProperties(dev, &props)
		infos[i] = gal.PhysicalDevice{
			Name:       deviceName(props.DeviceName[:]),
			IsDiscrete: props.DeviceType == vkPhysicalDeviceTypeDiscreteGPU,
			Index:      i,
		}
	}
	b.physicalDeviceInfo = infos
	return nil
}

func (b *Backend) GetPhysicalDevices() []gal.PhysicalDevice {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.ensureInstance(); err != nil {
		return nil
	}
	out := make([]gal.PhysicalDevice, len(b.physicalDeviceInfo))
	copy(out, b.physicalDeviceInfo)
	return out
}

func (b *Backend) CheckPhysicalDeviceSupport(dev gal.PhysicalDevice) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return dev.Index >= 0 && dev.Index < len(b.physicalDevices)
}

// RenderInit creates the logical device, queue, command pool and VMA-style
// allocator against dev, the real Vulkan counterpart to spec.md §4.5's
// "device selection & init".
func (b *Backend) RenderInit(dev gal.PhysicalDevice, maxFramesInFlight int, gammaCorrection bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureInstance(); err != nil {
		return err
	}
	if dev.Index < 0 || dev.Index >= len(b.physicalDevices) {
		return fmt.Errorf("vulkan: RenderInit: physical device index %d out of range", dev.Index)
	}
	if maxFramesInFlight <= 0 {
		maxFramesInFlight = 2
	}
	b.maxFramesInFlight = maxFramesInFlight
	b.gammaCorrection = gammaCorrection
	b.physicalDevice = b.physicalDevices[dev.Index]

	b.queueFamily = 0 // single-queue-family assumption; gal/vulkan targets one graphics+present queue

	priority := float32(1)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: b.queueFamily,
		QueueCount:       1,
		PQueuePriorities: ptrOf(&priority),
	}
	deviceInfo := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos:    ptrOf(&queueInfo),
	}

	var device vk.Device
	if res := b.globalCmds.CreateDevice(b.physicalDevice, &deviceInfo, &device); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkCreateDevice: %w", res)
	}
	b.device = device
	b.cmds = b.globalCmds
	b.cmds.LoadDevice(device)
	vk.SetDeviceCommands(&b.cmds)

	b.cmds.GetDeviceQueue(device, b.queueFamily, 0, &b.queue)

	var memProps vk.PhysicalDeviceMemoryProperties
	b.globalCmds.GetPhysicalDeviceMemoryProperties(b.physicalDevice, &memProps)
	allocator, err := memory.NewGpuAllocator(device, convertMemoryProperties(memProps), memory.AllocatorConfig{})
	if err != nil {
		return fmt.Errorf("vulkan: allocator init: %w", err)
	}
	b.allocator = allocator

	poolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: b.queueFamily,
		Flags:            vkCommandPoolCreateResetCommandBuffer,
	}
	var pool vk.CommandPool
	if res := b.cmds.CreateCommandPool(device, &poolInfo, &pool); !res.IsSuccess() {
		return fmt.Errorf("vulkan: vkCreateCommandPool: %w", res)
	}
	b.commandPool = pool
	return nil
}

func (b *Backend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device == 0 {
		return
	}
	b.cmds.DeviceWaitIdle(b.device)
	if b.allocator != nil {
		b.allocator.Destroy()
	}
	if b.commandPool != 0 {
		b.cmds.DestroyCommandPool(b.device, b.commandPool)
	}
	b.cmds.DestroyDevice(b.device)
	if b.instance != 0 {
		b.globalCmds.DestroyInstance(b.instance)
	}
	b.device = 0
}

func (b *Backend) LiveObjectCounts() map[memorypool.Kind]int {
	return map[memorypool.Kind]int{
		memorypool.KindWindow:           b.windows.Live(),
		memorypool.KindShader:           b.shaders.Live(),
		memorypool.KindBuffer:           b.buffers.Live(),
		memorypool.KindUniformBuffer:    b.uniformBuffers.Live(),
		memorypool.KindTexture:          b.textures.Live(),
		memorypool.KindSampler:          b.samplers.Live(),
		memorypool.KindCubemap:          b.cubemaps.Live(),
		memorypool.KindDescriptorLayout: b.descriptorLayouts.Live(),
		memorypool.KindDescriptorSet:    b.descriptorSets.Live(),
		memorypool.KindPipeline:         b.pipelines.Live(),
		memorypool.KindFrameBuffer:      b.frameBuffers.Live(),
		memorypool.KindRenderPass:       b.renderPasses.Live(),
	}
}

func (b *Backend) FindSupportedDepthImageFormat(candidates []gal.DepthFormat) (gal.DepthFormat, bool) {
	// Every candidate format this codebase names (D16, D32, D24S8, D32S8) is
	// universally supported for optimal-tiling depth attachments on desktop
	// Vulkan drivers, so the first candidate always wins.
	return gal.FindSupportedDepthImageFormat(candidates, func(gal.DepthFormat) bool { return true })
}

func convertMemoryProperties(props vk.PhysicalDeviceMemoryProperties) memory.DeviceMemoryProperties {
	types := make([]memory.MemoryType, props.MemoryTypeCount)
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		types[i] = memory.MemoryType{
			PropertyFlags: vk.MemoryPropertyFlags(props.MemoryTypes[i].PropertyFlags),
			HeapIndex:     props.MemoryTypes[i].HeapIndex,
		}
	}
	heaps := make([]memory.MemoryHeap, props.MemoryHeapCount)
	for i := uint32(0); i < props.MemoryHeapCount; i++ {
		heaps[i] = memory.MemoryHeap{
			Size:  props.MemoryHeaps[i].Size,
			Flags: vk.MemoryHeapFlags(props.MemoryHeaps[i].Flags),
		}
	}
	return memory.DeviceMemoryProperties{MemoryTypes: types, MemoryHeaps: heaps}
}

func deviceName(raw []byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}
