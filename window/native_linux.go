//go:build linux

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// nativeHandle returns the X11 window id, the handle gal/opengl's EGL
// bootstrap or a future GLX path would need to attach a rendering surface.
func nativeHandle(w *glfw.Window) uintptr {
	return uintptr(w.GetX11Window())
}
