//go:build darwin

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// nativeHandle returns the NSWindow pointer a MoltenVK/Metal surface would
// need.
func nativeHandle(w *glfw.Window) uintptr {
	return uintptr(w.GetCocoaWindow())
}
