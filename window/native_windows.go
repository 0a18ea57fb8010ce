//go:build windows

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// nativeHandle returns the HWND a Vulkan VkWin32SurfaceCreateInfoKHR would need.
func nativeHandle(w *glfw.Window) uintptr {
	return uintptr(w.GetWin32Window())
}
