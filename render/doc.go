// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between fstri and GPU
// frameworks.
//
// This package defines the abstractions host applications use to execute
// fullscreen passes: device handles, render targets, and renderers.
//
// # Key Principle
//
// fstri RECEIVES a GPU device from the host application, it does NOT create
// its own. A host like gogpu.App implements DeviceHandle and passes it to
// NewGPURenderer, which shares the device with the registered accelerator.
// Without a host device the GPU accelerator opens its own, and without any
// accelerator every pass runs on the CPU rasterizer.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access from the host application
//   - RenderTarget: where pass output goes
//   - Renderer: executes a pass against a target
//
// # Implementations
//
//   - SoftwareRenderer: always uses the CPU rasterizer
//   - GPURenderer: uses the registered accelerator, CPU fallback otherwise
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - NullDeviceHandle: nil device for CPU-only workflows and tests
//
// # Usage
//
// Software rendering:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//
//	pass := fstri.NewPass(fstri.EncodingBitShift)
//	if err := renderer.Render(target, pass); err != nil {
//	    log.Fatal(err)
//	}
//	img := target.Image()
//
// GPU rendering with a shared host device:
//
//	import _ "github.com/gogpu/fstri/gpu" // register the accelerator
//
//	renderer, err := render.NewGPURenderer(app.GPUContextProvider())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	renderer.Render(target, pass)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
package render
