// Package context implements Levikno's process-wide Context: the single
// instance spec.md §4.1 describes, created by CreateContext and torn down
// by TerminateContext. It owns the backend vtable (bound once, never
// swapped), the core+client logger pair, the default pipeline spec, and the
// per-type object-count table surfaced by the active gal.Backend.
package context

import (
	"fmt"
	"sync"
	"time"

	"github.com/binmian/levikno/gal"
	"github.com/binmian/levikno/gal/noop"
	"github.com/binmian/levikno/internal/logger"
	"github.com/binmian/levikno/memorypool"
	"github.com/binmian/levikno/vmath"
)

// Context is the single process-wide instance every GAL operation
// ultimately dispatches through. The zero value is not valid; obtain one
// via CreateContext.
type Context struct {
	mu sync.Mutex

	appName           string
	windowBackend     WindowBackend
	backend           gal.Backend
	backendKind       gal.BackendKind
	clipRegion        vmath.ClipRegion
	pipelineSpec      gal.PipelineSpec
	maxFramesInFlight int

	core   *logger.Logger
	client *logger.Logger

	startTime time.Time
	terminated bool
}

var (
	globalMu  sync.Mutex
	globalCtx *Context
)

// CreateContext builds the process-wide Context from config, selecting and
// initializing the requested graphics backend. Returns Success (nil error)
// or a specific failure code, leaving no partial state on failure — per
// spec.md §4.1, a failed CreateContext releases anything it had partially
// constructed before returning.
func CreateContext(cfg Config) (*Context, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCtx != nil {
		return nil, gal.Err(gal.AlreadyCalled, "context: CreateContext already called")
	}

	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	devices := backend.GetPhysicalDevices()
	if len(devices) == 0 {
		return nil, gal.Err(gal.Failure, "context: no physical devices reported by backend")
	}
	chosen := devices[0]
	for _, d := range devices {
		if d.IsDiscrete {
			chosen = d
			break
		}
	}
	if !backend.CheckPhysicalDeviceSupport(chosen) {
		return nil, gal.Err(gal.Failure, "context: chosen physical device %q does not meet requirements", chosen.Name)
	}

	maxFrames := cfg.maxFramesInFlight()
	gammaCorrection := cfg.DefaultColorFormat.IsSRGB()
	if err := backend.RenderInit(chosen, maxFrames, gammaCorrection); err != nil {
		return nil, fmt.Errorf("context: RenderInit: %w", err)
	}

	core := logger.New(logger.Config{
		Name:    "core",
		Level:   logger.LevelTrace,
		Enabled: cfg.Logging.Enabled && !cfg.Logging.SuppressCore,
	})
	client := logger.New(logger.Config{
		Name:    "client",
		Level:   logger.LevelTrace,
		Enabled: cfg.Logging.Enabled,
	})

	ctx := &Context{
		appName:           cfg.AppName,
		windowBackend:     cfg.WindowBackend,
		backend:           backend,
		backendKind:       cfg.GraphicsBackend,
		clipRegion:        cfg.resolveClipRegion(),
		pipelineSpec:      gal.DefaultPipelineSpec(),
		maxFramesInFlight: maxFrames,
		core:              core,
		client:            client,
		startTime:         time.Now(),
	}
	core.Info("context created: app=%q backend=%s device=%q validation=%v", cfg.AppName, cfg.GraphicsBackend, chosen.Name, cfg.Logging.EnableValidationLayers)

	globalCtx = ctx
	return ctx, nil
}

// newBackend constructs the concrete gal.Backend the Config selects.
// gal/vulkan and gal/opengl are the two real backends; any other value
// (including the zero value when no real backend is linked in a test
// build) resolves to gal/noop so tests never need a GPU.
func newBackend(cfg Config) (gal.Backend, error) {
	mp := cfg.MemoryPool
	if mp.InitialCounts == nil {
		mp = DefaultMemoryPoolConfig()
	}
	initial := mp.initialCount(memorypool.KindWindow)
	overflow := mp.overflowCount(memorypool.KindWindow)

	switch cfg.GraphicsBackend {
	case gal.BackendVulkan, gal.BackendOpenGL:
		// Real backends are not linked into every build (they carry cgo-free
		// but platform-specific driver loading); this port's context package
		// wires the dispatch point, not the presence of a driver. Builds that
		// want a real backend import gal/vulkan or gal/opengl for side
		// effects and provide a backend constructor via RegisterBackend.
		if ctor, ok := registeredBackends[cfg.GraphicsBackend]; ok {
			return ctor(mp)
		}
		return nil, gal.Err(gal.Failure, "context: graphics backend %s is not registered (blank-import gal/vulkan or gal/opengl)", cfg.GraphicsBackend)
	default:
		return noop.New(memorypool.Pooled, initial, overflow), nil
	}
}

// BackendConstructor builds a gal.Backend given memory-pool sizing; real
// backend packages register one via RegisterBackend so context never
// imports gal/vulkan or gal/opengl directly (avoiding a hard dependency on
// cgo-free but platform-specific driver loading in builds that don't need
// it), the same "backend registration via blank import" pattern the
// teacher's hal/allbackends uses.
type BackendConstructor func(MemoryPoolConfig) (gal.Backend, error)

var registeredBackends = map[gal.BackendKind]BackendConstructor{}

// RegisterBackend installs the constructor for kind. Called from a real
// backend package's init().
func RegisterBackend(kind gal.BackendKind, ctor BackendConstructor) {
	registeredBackends[kind] = ctor
}

// GetContext returns the process-wide Context created by CreateContext, or
// nil if none has been created (or it has already been terminated).
func GetContext() *Context {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalCtx
}

// TerminateContext reverses CreateContext: it reports any non-zero
// per-type live-object counts at warn level (spec.md I7), shuts down the
// backend, and releases the Context. Safe to call at most once per
// CreateContext; a second call returns AlreadyCalled.
func TerminateContext(ctx *Context) error {
	if ctx == nil {
		return gal.Err(gal.Failure, "context: TerminateContext on nil Context")
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.terminated {
		return gal.Err(gal.AlreadyCalled, "context: TerminateContext already called")
	}
	ctx.terminated = true

	leaked := false
	for kind, count := range ctx.backend.LiveObjectCounts() {
		if count > 0 {
			leaked = true
			ctx.core.Warn("terminateContext: %d live %s object(s) were not destroyed", count, kind)
		}
	}
	if !leaked {
		ctx.core.Info("terminateContext: clean teardown, no live objects")
	}

	ctx.backend.Shutdown()

	globalMu.Lock()
	if globalCtx == ctx {
		globalCtx = nil
	}
	globalMu.Unlock()
	return nil
}

// Backend returns the bound backend vtable every GAL free function
// dispatches through.
func (c *Context) Backend() gal.Backend { return c.backend }

// BackendKind reports which of the two backends is active.
func (c *Context) BackendKind() gal.BackendKind { return c.backendKind }

// ClipRegion returns the active clip-region convention (spec.md §4.1).
func (c *Context) ClipRegion() vmath.ClipRegion { return c.clipRegion }

// DefaultPipelineSpec returns the context-level pipeline-spec default new
// pipelines may start from.
func (c *Context) DefaultPipelineSpec() gal.PipelineSpec { return c.pipelineSpec }

// MaxFramesInFlight returns the frames-in-flight count chosen at init.
func (c *Context) MaxFramesInFlight() int { return c.maxFramesInFlight }

// CoreLogger returns the engine-internal logger.
func (c *Context) CoreLogger() *logger.Logger { return c.core }

// ClientLogger returns the logger the embedding application may log
// through without mixing output formats with the engine's own.
func (c *Context) ClientLogger() *logger.Logger { return c.client }

// Uptime returns the elapsed time since CreateContext, SPEC_FULL.md §D.2's
// context-creation timer.
func (c *Context) Uptime() time.Duration { return time.Since(c.startTime) }

// LiveObjectCounts reports the backend's current per-type outstanding
// object counts (spec.md I7).
func (c *Context) LiveObjectCounts() map[memorypool.Kind]int { return c.backend.LiveObjectCounts() }
