// Package window is Levikno's windowing/input adapter (spec.md's
// out-of-scope "abstract Window with events, key/mouse state,
// framebuffer-resize signal, native-handle accessor"). It wraps
// github.com/go-gl/glfw/v3.3/glfw the way the rest of the retrieval pack's
// desktop drivers do, but collapses the OS-thread/channel indirection those
// cgo-backed drivers need down to direct callback registration: glfw
// already delivers its callbacks synchronously on the calling goroutine
// during PollEvents, so there is no native event queue to drain on a
// separate goroutine.
package window

// Window wraps a native OS window and its input state. The expected usage:
//
//	w, err := window.New("title", 0, 0, 1280, 720, true)
//	w.Open()
//	for w.IsAlive() {
//	    pressed := w.Update()
//	    // render using pressed and w.NativeHandle()
//	    w.SwapBuffers()
//	}
//	w.Dispose()
type Window interface {
	Open()                // Shows the window and starts processing events.
	ShowCursor(show bool) // Shows or hides the cursor.
	SetCursorAt(x, y int) // Places the cursor at the given window-relative location.
	Dispose()             // Releases the native window.

	IsAlive() bool // False once a close has been requested or the window is destroyed.

	// Size returns the framebuffer location and size, excluding OS window trim.
	Size() (x, y, width, height int)
	IsFullScreen() bool
	ToggleFullScreen()

	// SwapBuffers exchanges the front/back drawing buffers. Only meaningful
	// for an OpenGL-backed gal.Window sharing this native window's context;
	// gal/vulkan windows ignore it.
	SwapBuffers()

	// Update polls native events and returns the current input snapshot.
	// Expected to be called once per application update tick.
	Update() *Pressed

	// NativeHandle returns the platform window handle (HWND, NSWindow*, or
	// X11 Window id) a graphics backend needs to create a native surface.
	NativeHandle() uintptr
}

// Pressed communicates a snapshot of user input: the keys and mouse
// buttons currently down and how long they have been held (measured in
// update ticks). A positive duration means the key is still held; a
// negative duration means it was released since the last Update, and the
// total held duration prior to release is the difference with
// keyReleased.
type Pressed struct {
	Mx, My  int            // Current mouse location, window-relative.
	Scroll  int            // Scroll delta accumulated since the last Update.
	Down    map[string]int // Pressed keys/buttons and their held duration.
	Focus   bool           // True if the window currently has input focus.
	Resized bool           // True if the framebuffer was resized since the last Update.
}

// keyReleased marks a key or button as released in Pressed.Down; held
// duration prior to release is recoverable as the difference with this
// constant. A user would need to hold a key for decades before a normal
// per-frame duration count collided with it.
const keyReleased = -1000000000

// New opens (but does not yet show) a native window of the given size at
// the given screen position, ready for a graphics backend to attach a
// rendering context to.
func New(title string, x, y, width, height int, vsync bool) (Window, error) {
	return newGLFWWindow(title, x, y, width, height, vsync)
}
