package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw requires every call to originate from the thread that called
	// glfw.Init, same convention the runsys-core desktop driver follows.
	runtime.LockOSThread()
}

var glfwInit sync.Once
var glfwInitErr error

func ensureGLFW() error {
	glfwInit.Do(func() {
		glfwInitErr = glfw.Init()
	})
	return glfwInitErr
}

// glfwWindow is the concrete Window that New returns. No gal backend's
// CreateWindow uses it; they create their own windows.
type glfwWindow struct {
	win     *glfw.Window
	state   *pressedState
	vsync   bool
	fullscr bool
	windowedX, windowedY, windowedW, windowedH int
}

func newGLFWWindow(title string, x, y, width, height int, vsync bool) (Window, error) {
	if err := ensureGLFW(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window: CreateWindow: %w", err)
	}
	win.SetPos(x, y)

	w := &glfwWindow{
		win:       win,
		state:     newPressedState(),
		vsync:     vsync,
		windowedX: x, windowedY: y, windowedW: width, windowedH: height,
	}
	w.installCallbacks()
	return w, nil
}

func (w *glfwWindow) installCallbacks() {
	w.win.SetCloseCallback(func(*glfw.Window) {})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.state.setFocus(focused)
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.state.markResized()
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.state.setMouse(int(xpos), int(ypos))
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.state.addScroll(int(yoff))
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		name, ok := glfwKeyNames[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			w.state.recordPress(name)
		case glfw.Release:
			w.state.recordRelease(name)
		}
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		name, ok := glfwButtonNames[button]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			w.state.recordPress(name)
		case glfw.Release:
			w.state.recordRelease(name)
		}
	})
}

func (w *glfwWindow) Open() {
	w.win.Show()
	w.win.MakeContextCurrent()
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *glfwWindow) Dispose() {
	w.win.Destroy()
}

func (w *glfwWindow) IsAlive() bool {
	return !w.win.ShouldClose()
}

func (w *glfwWindow) Size() (x, y, width, height int) {
	x, y = w.win.GetPos()
	width, height = w.win.GetFramebufferSize()
	return x, y, width, height
}

func (w *glfwWindow) ShowCursor(show bool) {
	if show {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

func (w *glfwWindow) SetCursorAt(x, y int) {
	w.win.SetCursorPos(float64(x), float64(y))
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) IsFullScreen() bool {
	return w.fullscr
}

// ToggleFullScreen flips between the windowed position/size last recorded
// and the primary monitor's full video mode, the same toggle runsys-core's
// desktop driver exposes via SetMonitor.
func (w *glfwWindow) ToggleFullScreen() {
	if w.fullscr {
		w.win.SetMonitor(nil, w.windowedX, w.windowedY, w.windowedW, w.windowedH, 0)
		w.fullscr = false
		return
	}
	w.windowedX, w.windowedY = w.win.GetPos()
	w.windowedW, w.windowedH = w.win.GetFramebufferSize()
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.fullscr = true
}

func (w *glfwWindow) Update() *Pressed {
	glfw.PollEvents()
	return w.state.snapshot()
}

func (w *glfwWindow) NativeHandle() uintptr {
	return nativeHandle(w.win)
}
