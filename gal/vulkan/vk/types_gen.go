// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Dispatchable and non-dispatchable handles. All are 64-bit on every
// platform goffi targets, matching VK_DEFINE_HANDLE / VK_DEFINE_NON_DISPATCHABLE_HANDLE.
type (
	Instance             uint64
	PhysicalDevice       uint64
	Device               uint64
	Queue                uint64
	CommandPool          uint64
	CommandBuffer        uint64
	Buffer               uint64
	Image                uint64
	ImageView            uint64
	DeviceMemory         uint64
	RenderPass           uint64
	Framebuffer          uint64
	ShaderModule         uint64
	Pipeline             uint64
	PipelineLayout       uint64
	DescriptorSetLayout  uint64
	DescriptorPool       uint64
	DescriptorSet        uint64
	Sampler              uint64
	Semaphore            uint64
	Fence                uint64
	Surface              uint64
)

// Result mirrors VkResult.
type Result int32

const (
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	EventSet                  Result = 3
	EventReset                Result = 4
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorOutOfDateKHR         Result = -1000001004
)

func (r Result) IsSuccess() bool { return r == Success }

func (r Result) Error() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrorFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case ErrorOutOfDateKHR:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	default:
		return "VK_RESULT_UNKNOWN"
	}
}

// MemoryPropertyFlags mirrors VkMemoryPropertyFlags.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 1 << 0
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 1 << 1
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 1 << 2
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 1 << 3
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 1 << 4
)

// MemoryHeapFlags mirrors VkMemoryHeapFlags.
type MemoryHeapFlags uint32

const (
	MemoryHeapDeviceLocalBit MemoryHeapFlags = 1 << 0
)

// AllocationCallbacks is never populated by this binding; it exists so
// call sites match the C signature. A nil *AllocationCallbacks means
// "use the driver's default allocator".
type AllocationCallbacks struct{}

// DeviceSize mirrors VkDeviceSize.
type DeviceSize uint64

// StructureType mirrors VkStructureType. Only the subset this backend
// populates is named; unnamed codes are never produced by gal/vulkan.
type StructureType uint32

const (
	StructureTypeApplicationInfo               uint32 = 0
	StructureTypeInstanceCreateInfo             uint32 = 1
	StructureTypeDeviceQueueCreateInfo          uint32 = 2
	StructureTypeDeviceCreateInfo               uint32 = 3
	StructureTypeSubmitInfo                     uint32 = 4
	StructureTypeMemoryAllocateInfo             uint32 = 5
	StructureTypeBufferCreateInfo               uint32 = 12
	StructureTypeImageCreateInfo                uint32 = 14
	StructureTypeImageViewCreateInfo            uint32 = 15
	StructureTypeShaderModuleCreateInfo         uint32 = 16
	StructureTypePipelineVertexInputStateCreateInfo   uint32 = 19
	StructureTypePipelineInputAssemblyStateCreateInfo uint32 = 20
	StructureTypePipelineViewportStateCreateInfo      uint32 = 22
	StructureTypePipelineRasterizationStateCreateInfo uint32 = 23
	StructureTypePipelineMultisampleStateCreateInfo   uint32 = 24
	StructureTypePipelineDepthStencilStateCreateInfo  uint32 = 25
	StructureTypePipelineColorBlendStateCreateInfo    uint32 = 26
	StructureTypePipelineDynamicStateCreateInfo       uint32 = 27
	StructureTypePipelineLayoutCreateInfo             uint32 = 30
	StructureTypeSamplerCreateInfo              uint32 = 31
	StructureTypeDescriptorSetLayoutCreateInfo  uint32 = 32
	StructureTypeDescriptorPoolCreateInfo       uint32 = 33
	StructureTypeDescriptorSetAllocateInfo      uint32 = 34
	StructureTypeWriteDescriptorSet             uint32 = 35
	StructureTypeCopyDescriptorSet              uint32 = 36
	StructureTypeFramebufferCreateInfo          uint32 = 37
	StructureTypeRenderPassCreateInfo           uint32 = 38
	StructureTypeCommandPoolCreateInfo          uint32 = 39
	StructureTypeCommandBufferAllocateInfo      uint32 = 40
	StructureTypeCommandBufferBeginInfo         uint32 = 42
	StructureTypeRenderPassBeginInfo            uint32 = 43
	StructureTypePipelineShaderStageCreateInfo  uint32 = 18
	StructureTypeGraphicsPipelineCreateInfo     uint32 = 28
	StructureTypeFenceCreateInfo                uint32 = 8
	StructureTypeSemaphoreCreateInfo             uint32 = 9
	StructureTypeImageMemoryBarrier             uint32 = 45
)

// AllocateMemory and FreeMemory are exposed as free functions dispatched
// against the process-wide device command table, set once via
// SetDeviceCommands after the logical device is created. gal/vulkan
// never juggles more than one logical device at a time, so a single
// global table is sufficient and mirrors how GetDeviceProcAddr itself
// is cached in loader.go.
var globalDeviceCmds *Commands

// SetDeviceCommands records the Commands table used by the package-level
// memory helpers below.
func SetDeviceCommands(cmds *Commands) {
	globalDeviceCmds = cmds
}

func AllocateMemory(device Device, allocInfo *MemoryAllocateInfo, _ *AllocationCallbacks, memory *DeviceMemory) Result {
	if globalDeviceCmds == nil {
		return ErrorInitializationFailed
	}
	return globalDeviceCmds.AllocateMemory(device, allocInfo, memory)
}

func FreeMemory(device Device, memory DeviceMemory, _ *AllocationCallbacks) {
	if globalDeviceCmds == nil {
		return
	}
	globalDeviceCmds.FreeMemory(device, memory)
}

type ApplicationInfo struct {
	SType              uint32
	PNext              uintptr
	PApplicationName   uintptr
	ApplicationVersion uint32
	PEngineName        uintptr
	EngineVersion      uint32
	APIVersion         uint32
}

type InstanceCreateInfo struct {
	SType                   uint32
	PNext                   uintptr
	Flags                   uint32
	PApplicationInfo        uintptr
	EnabledLayerCount       uint32
	PpEnabledLayerNames     uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames uintptr
}

type DeviceQueueCreateInfo struct {
	SType            uint32
	PNext            uintptr
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities uintptr
}

type PhysicalDeviceFeatures struct {
	// Only the subset gal/vulkan opts into is named; the rest of the
	// 55-field struct collapses to padding since we never request it.
	SamplerAnisotropy uint32
	_                 [216]byte
}

type DeviceCreateInfo struct {
	SType                   uint32
	PNext                   uintptr
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       uintptr
	EnabledLayerCount       uint32
	PpEnabledLayerNames     uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames uintptr
	PEnabledFeatures        uintptr
}

type MemoryType struct {
	PropertyFlags uint32
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags uint32
	_     [4]byte
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

type PhysicalDeviceLimits struct {
	MinUniformBufferOffsetAlignment uint64
	MinStorageBufferOffsetAlignment uint64
	MaxImageDimension2D             uint32
	_                               [200]byte
}

type PhysicalDeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        uint32
	DeviceName        [256]byte
	PipelineCacheUUID [16]byte
	Limits            PhysicalDeviceLimits
	SparseProperties  [8]byte
}

type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
	_              [4]byte
}

type MemoryAllocateInfo struct {
	SType           uint32
	PNext           uintptr
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

type Extent3D struct {
	Width, Height, Depth uint32
}

type BufferCreateInfo struct {
	SType                 uint32
	PNext                 uintptr
	Flags                 uint32
	Size                  uint64
	Usage                 uint32
	SharingMode           uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   uintptr
}

type ImageCreateInfo struct {
	SType                 uint32
	PNext                 uintptr
	Flags                 uint32
	ImageType             uint32
	Format                uint32
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               uint32
	Tiling                uint32
	Usage                 uint32
	SharingMode           uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   uintptr
	InitialLayout         uint32
}

type ComponentMapping struct {
	R, G, B, A uint32
}

type ImageSubresourceRange struct {
	AspectMask     uint32
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageViewCreateInfo struct {
	SType            uint32
	PNext            uintptr
	Flags            uint32
	Image            Image
	ViewType         uint32
	Format           uint32
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

type AttachmentDescription struct {
	Flags          uint32
	Format         uint32
	Samples        uint32
	LoadOp         uint32
	StoreOp        uint32
	StencilLoadOp  uint32
	StencilStoreOp uint32
	InitialLayout  uint32
	FinalLayout    uint32
}

type AttachmentReference struct {
	Attachment uint32
	Layout     uint32
}

type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       uint32
	InputAttachmentCount    uint32
	PInputAttachments       uintptr
	ColorAttachmentCount    uint32
	PColorAttachments       uintptr
	PResolveAttachments     uintptr
	PDepthStencilAttachment uintptr
	PreserveAttachmentCount uint32
	PPreserveAttachments    uintptr
}

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    uint32
	DstStageMask    uint32
	SrcAccessMask   uint32
	DstAccessMask   uint32
	DependencyFlags uint32
}

type RenderPassCreateInfo struct {
	SType           uint32
	PNext           uintptr
	Flags           uint32
	AttachmentCount uint32
	PAttachments    uintptr
	SubpassCount    uint32
	PSubpasses      uintptr
	DependencyCount uint32
	PDependencies   uintptr
}

type FramebufferCreateInfo struct {
	SType           uint32
	PNext           uintptr
	Flags           uint32
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    uintptr
	Width           uint32
	Height          uint32
	Layers          uint32
}

type ShaderModuleCreateInfo struct {
	SType    uint32
	PNext    uintptr
	Flags    uint32
	CodeSize uintptr
	PCode    uintptr
}

type PipelineShaderStageCreateInfo struct {
	SType               uint32
	PNext               uintptr
	Flags               uint32
	Stage               uint32
	Module              ShaderModule
	PName               uintptr
	PSpecializationInfo uintptr
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate uint32
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   uint32
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                           uint32
	PNext                           uintptr
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      uintptr
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    uintptr
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  uint32
	PNext                  uintptr
	Flags                  uint32
	Topology               uint32
	PrimitiveRestartEnable uint32
}

type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

type Offset2D struct{ X, Y int32 }
type Offset3D struct{ X, Y, Z int32 }
type Extent2D struct{ Width, Height uint32 }
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type PipelineViewportStateCreateInfo struct {
	SType         uint32
	PNext         uintptr
	Flags         uint32
	ViewportCount uint32
	PViewports    uintptr
	ScissorCount  uint32
	PScissors     uintptr
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   uint32
	PNext                   uintptr
	Flags                   uint32
	DepthClampEnable        uint32
	RasterizerDiscardEnable uint32
	PolygonMode             uint32
	CullMode                uint32
	FrontFace               uint32
	DepthBiasEnable         uint32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type PipelineMultisampleStateCreateInfo struct {
	SType                 uint32
	PNext                 uintptr
	Flags                 uint32
	RasterizationSamples  uint32
	SampleShadingEnable   uint32
	MinSampleShading      float32
	PSampleMask           uintptr
	AlphaToCoverageEnable uint32
	AlphaToOneEnable      uint32
}

type StencilOpState struct {
	FailOp      uint32
	PassOp      uint32
	DepthFailOp uint32
	CompareOp   uint32
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 uint32
	PNext                 uintptr
	Flags                 uint32
	DepthTestEnable       uint32
	DepthWriteEnable      uint32
	DepthCompareOp        uint32
	DepthBoundsTestEnable uint32
	StencilTestEnable     uint32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         uint32
	SrcColorBlendFactor uint32
	DstColorBlendFactor uint32
	ColorBlendOp        uint32
	SrcAlphaBlendFactor uint32
	DstAlphaBlendFactor uint32
	AlphaBlendOp        uint32
	ColorWriteMask      uint32
}

type PipelineColorBlendStateCreateInfo struct {
	SType           uint32
	PNext           uintptr
	Flags           uint32
	LogicOpEnable   uint32
	LogicOp         uint32
	AttachmentCount uint32
	PAttachments    uintptr
	BlendConstants  [4]float32
}

type PipelineDynamicStateCreateInfo struct {
	SType             uint32
	PNext             uintptr
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    uintptr
}

type GraphicsPipelineCreateInfo struct {
	SType               uint32
	PNext               uintptr
	Flags               uint32
	StageCount          uint32
	PStages             uintptr
	PVertexInputState   uintptr
	PInputAssemblyState uintptr
	PTessellationState  uintptr
	PViewportState      uintptr
	PRasterizationState uintptr
	PMultisampleState   uintptr
	PDepthStencilState  uintptr
	PColorBlendState    uintptr
	PDynamicState       uintptr
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

type PushConstantRange struct {
	StageFlags uint32
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  uint32
	PNext                  uintptr
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            uintptr
	PushConstantRangeCount uint32
	PPushConstantRanges    uintptr
}

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     uint32
	DescriptorCount    uint32
	StageFlags         uint32
	PImmutableSamplers uintptr
}

type DescriptorSetLayoutCreateInfo struct {
	SType        uint32
	PNext        uintptr
	Flags        uint32
	BindingCount uint32
	PBindings    uintptr
}

type DescriptorPoolSize struct {
	Type            uint32
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         uint32
	PNext         uintptr
	Flags         uint32
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    uintptr
}

type DescriptorSetAllocateInfo struct {
	SType              uint32
	PNext              uintptr
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        uintptr
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset uint64
	Range  uint64
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout uint32
}

type WriteDescriptorSet struct {
	SType            uint32
	PNext            uintptr
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   uint32
	PImageInfo       uintptr
	PBufferInfo      uintptr
	PTexelBufferView uintptr
}

type CopyDescriptorSet struct {
	SType           uint32
	PNext           uintptr
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

type SamplerCreateInfo struct {
	SType                   uint32
	PNext                   uintptr
	Flags                   uint32
	MagFilter               uint32
	MinFilter               uint32
	MipmapMode              uint32
	AddressModeU            uint32
	AddressModeV            uint32
	AddressModeW            uint32
	MipLodBias              float32
	AnisotropyEnable        uint32
	MaxAnisotropy           float32
	CompareEnable           uint32
	CompareOp               uint32
	MinLod                  float32
	MaxLod                  float32
	BorderColor             uint32
	UnnormalizedCoordinates uint32
}

type CommandPoolCreateInfo struct {
	SType            uint32
	PNext            uintptr
	Flags            uint32
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              uint32
	PNext              uintptr
	CommandPool        CommandPool
	Level              uint32
	CommandBufferCount uint32
}

type CommandBufferBeginInfo struct {
	SType            uint32
	PNext            uintptr
	Flags            uint32
	PInheritanceInfo uintptr
}

type ClearColorValue struct {
	Float32 [4]float32
}

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

type ClearValue struct {
	Color ClearColorValue
	_     [8]byte // overlaps DepthStencil in the real union; color path is all we drive
}

type RenderPassBeginInfo struct {
	SType           uint32
	PNext           uintptr
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	PClearValues    uintptr
}

type BufferCopy struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

type ImageSubresourceLayers struct {
	AspectMask     uint32
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type BufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageMemoryBarrier struct {
	SType               uint32
	PNext               uintptr
	SrcAccessMask       uint32
	DstAccessMask       uint32
	OldLayout           uint32
	NewLayout           uint32
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

type SemaphoreCreateInfo struct {
	SType uint32
	PNext uintptr
	Flags uint32
}

type FenceCreateInfo struct {
	SType uint32
	PNext uintptr
	Flags uint32
}

type SubmitInfo struct {
	SType                uint32
	PNext                uintptr
	WaitSemaphoreCount   uint32
	PWaitSemaphores      uintptr
	PWaitDstStageMask    uintptr
	CommandBufferCount   uint32
	PCommandBuffers      uintptr
	SignalSemaphoreCount uint32
	PSignalSemaphores    uintptr
}
