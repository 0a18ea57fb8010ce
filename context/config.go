package context

import (
	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/memorypool"
	"github.com/binmian/levikno/vmath"
)

// WindowBackend selects the windowing system CreateWindow's glfw-backed
// facade opens against. Levikno ships a single concrete backend (glfw); the
// id exists because createContext's original signature names one, and the
// Config mirrors every field of that signature per SPEC_FULL.md §A.3.
type WindowBackend int

const (
	WindowBackendGLFW WindowBackend = iota
)

// LogConfig mirrors createContext's logging flags.
type LogConfig struct {
	Enabled               bool
	SuppressCore          bool
	EnableValidationLayers bool
}

// MemoryPoolConfig mirrors createContext's memory-pool parameters: the
// allocation mode plus per-type initial and overflow-block counts, keyed by
// memorypool.Kind so a caller can tune e.g. textures differently from
// descriptor sets.
type MemoryPoolConfig struct {
	Mode            memorypool.Mode
	InitialCounts   map[memorypool.Kind]int
	OverflowCounts  map[memorypool.Kind]int
}

// DefaultMemoryPoolConfig returns createContext's documented default: pooled
// allocation, 32 initial and 16 overflow per type.
func DefaultMemoryPoolConfig() MemoryPoolConfig {
	initial := make(map[memorypool.Kind]int)
	overflow := make(map[memorypool.Kind]int)
	for k := memorypool.KindWindow; k <= memorypool.KindRenderPass; k++ {
		initial[k] = 32
		overflow[k] = 16
	}
	return MemoryPoolConfig{Mode: memorypool.Pooled, InitialCounts: initial, OverflowCounts: overflow}
}

func (c MemoryPoolConfig) initialCount(k memorypool.Kind) int {
	if n, ok := c.InitialCounts[k]; ok {
		return n
	}
	return 32
}

func (c MemoryPoolConfig) overflowCount(k memorypool.Kind) int {
	if n, ok := c.OverflowCounts[k]; ok {
		return n
	}
	return 16
}

// Config is createContext's input (spec.md §4.1): application identity,
// backend selection, logging flags, the default framebuffer color format,
// an optional clip-region override, and memory-pool sizing. Zero-value
// fields fall back to the documented defaults noted per field, matching the
// teacher's pattern of documented defaults on descriptor structs.
type Config struct {
	AppName string

	WindowBackend   WindowBackend
	GraphicsBackend gal.BackendKind

	Logging LogConfig

	// DefaultColorFormat is the color format new windows/framebuffers use
	// absent an explicit override. Zero value (ColorFormatRGB) is linear;
	// set ColorFormatSRGBA8 for gamma-correct output.
	DefaultColorFormat gal.ColorFormat

	// ClipRegion overrides the backend's native clip-region convention. Nil
	// means "api-specific": Vulkan gets ClipRegionZeroToOneYDown, OpenGL
	// gets ClipRegionNegOneToOneYUp (spec.md §4.1).
	ClipRegion *vmath.ClipRegion

	MaxFramesInFlight int

	MemoryPool MemoryPoolConfig
}

func (c Config) maxFramesInFlight() int {
	if c.MaxFramesInFlight <= 0 {
		return 2
	}
	return c.MaxFramesInFlight
}

func (c Config) resolveClipRegion() vmath.ClipRegion {
	if c.ClipRegion != nil {
		return *c.ClipRegion
	}
	if c.GraphicsBackend == gal.BackendVulkan {
		return vmath.ClipRegionZeroToOneYDown
	}
	return vmath.ClipRegionNegOneToOneYUp
}
