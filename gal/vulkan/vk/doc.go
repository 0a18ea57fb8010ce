// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides pure-Go Vulkan 1.x bindings, hand-written in the
// layout a vk.xml generator produces:
// low-level types, constants, and function-pointer loading built on
// goffi, so gal/vulkan never needs cgo to reach the driver.
//
// Initialize Vulkan and load function pointers:
//
//	if err := vk.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cmds vk.Commands
//	cmds.LoadGlobal()
//
//	// Create instance...
//	cmds.LoadInstance(instance)
//
// # Platform support
//
// - Windows: vulkan-1.dll
// - Linux: libvulkan.so.1
// - macOS: libvulkan.dylib (MoltenVK)
package vk
