// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import "unsafe"

// Raw VkStructureType-adjacent enum values this backend needs that aren't
// worth a full named constant block in vk: physical device type, command
// pool flags, image/buffer usage bits, and so on. Values match the Vulkan
// spec's numeric assignment.
const (
	vkAPIVersion1_0                       uint32 = 1 << 22
	vkPhysicalDeviceTypeDiscreteGPU        uint32 = 2
	vkCommandPoolCreateResetCommandBuffer  uint32 = 0x00000002
	vkCommandBufferLevelPrimary            uint32 = 0
	vkSharingModeExclusive                 uint32 = 0
	vkImageTypeVar2D                       uint32 = 1
	vkImageTilingOptimal                   uint32 = 0
	vkImageLayoutUndefined                 uint32 = 0
	vkImageLayoutColorAttachmentOptimal    uint32 = 2
	vkImageLayoutDepthStencilAttachOptimal uint32 = 3
	vkImageLayoutShaderReadOnlyOptimal     uint32 = 5
	vkImageLayoutPresentSrc                uint32 = 1000001002
	vkImageUsageTransferSrcBit             uint32 = 0x00000001
	vkImageUsageTransferDstBit             uint32 = 0x00000002
	vkImageUsageSampledBit                 uint32 = 0x00000004
	vkImageUsageColorAttachmentBit         uint32 = 0x00000010
	vkImageUsageDepthStencilAttachmentBit  uint32 = 0x00000020
	vkBufferUsageTransferDstBit            uint32 = 0x00000002
	vkBufferUsageVertexBufferBit           uint32 = 0x00000080
	vkBufferUsageIndexBufferBit            uint32 = 0x00000040
	vkBufferUsageUniformBufferBit          uint32 = 0x00000010
	vkBufferUsageStorageBufferBit          uint32 = 0x00000020
	vkImageAspectColorBit                  uint32 = 0x00000001
	vkImageAspectDepthBit                  uint32 = 0x00000002
	vkImageViewTypeVar2D                   uint32 = 1
	vkSampleCount1Bit                      uint32 = 1
	vkAttachmentLoadOpClear                uint32 = 1
	vkAttachmentLoadOpLoad                 uint32 = 0
	vkAttachmentStoreOpStore               uint32 = 0
	vkAttachmentStoreOpDontCare            uint32 = 1
	vkPipelineBindPointGraphics            uint32 = 0
	vkSubpassContentsInline                uint32 = 0
	vkShaderStageVertexBit                 uint32 = 0x00000001
	vkShaderStageFragmentBit               uint32 = 0x00000010
	vkPrimitiveTopologyTriangleList        uint32 = 3
	vkPrimitiveTopologyPointList           uint32 = 0
	vkPrimitiveTopologyLineList            uint32 = 1
	vkPrimitiveTopologyLineStrip           uint32 = 2
	vkPrimitiveTopologyTriangleStrip       uint32 = 4
	vkPolygonModeFill                      uint32 = 0
	vkCullModeNone                         uint32 = 0
	vkCullModeFrontBit                     uint32 = 0x00000001
	vkCullModeBackBit                      uint32 = 0x00000002
	vkCullModeFrontAndBack                 uint32 = 0x00000003
	vkFrontFaceCounterClockwise            uint32 = 1
	vkFrontFaceClockwise                   uint32 = 0
	vkCompareOpLess                        uint32 = 1
	vkDescriptorTypeUniformBuffer          uint32 = 6
	vkDescriptorTypeStorageBuffer          uint32 = 7
	vkDescriptorTypeCombinedImageSampler   uint32 = 1
	vkDescriptorTypeSampledImage           uint32 = 2
	vkDescriptorTypeSampler                uint32 = 0
	vkFilterNearest                        uint32 = 0
	vkFilterLinear                         uint32 = 1
	vkSamplerAddressModeRepeat             uint32 = 0
	vkSamplerAddressModeMirroredRepeat     uint32 = 1
	vkSamplerAddressModeClampToEdge        uint32 = 2
	vkSamplerAddressModeClampToBorder      uint32 = 3
	vkIndexTypeUint32                      uint32 = 1
	vkFenceCreateSignaledBit               uint32 = 0x00000001
	vkWholeSize                            uint64 = ^uint64(0)
	vkImageLayoutTransferDstOptimal        uint32 = 6
	vkAccessTransferWriteBit               uint32 = 0x00001000
	vkAccessShaderReadBit                  uint32 = 0x00000020
	vkPipelineStageTopOfPipeBit            uint32 = 0x00000001
	vkPipelineStageTransferBit             uint32 = 0x00001000
	vkPipelineStageFragmentShaderBit       uint32 = 0x00000080
	vkQueueFamilyIgnored                   uint32 = 0xFFFFFFFF
)

// ptrOf returns the raw address of v as a uintptr, the "pointer to where
// the value is stored" convention vk.Commands' goffi dispatch expects.
func ptrOf[T any](v *T) uintptr {
	if v == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(v))
}

// sliceHead returns the address of s's first element, or 0 for an empty
// slice (matching Vulkan's "count 0 means pointer ignored" convention).
func sliceHead[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}

// cString returns a NUL-terminated byte slice. Callers that keep the
// returned slice alive for the duration of the Vulkan call (typically via
// a local variable referenced by runtime.KeepAlive-equivalent scoping) may
// safely pass bytesPtr's result as a C string argument.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func bytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
