// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"
	"image/color"

	"github.com/gogpu/fstri"
	"github.com/gogpu/fstri/render"
)

// ExampleNewSoftwareRenderer demonstrates CPU-based pass rendering.
func ExampleNewSoftwareRenderer() {
	// Create software renderer (no GPU required)
	renderer := render.NewSoftwareRenderer()

	// Create a CPU-backed render target
	target := render.NewPixmapTarget(200, 200)

	// Render the canonical coordinate-gradient pass
	pass := fstri.NewPass(fstri.EncodingShiftMask)
	if err := renderer.Render(target, pass); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	// Access the rendered image
	img := target.Image()
	fmt.Printf("rendered %dx%d image\n", img.Bounds().Dx(), img.Bounds().Dy())
	// Output: rendered 200x200 image
}

// ExampleNewGPURenderer demonstrates creating a GPU renderer with a
// DeviceHandle.
//
// In real usage, the DeviceHandle would come from the host application
// (e.g., gogpu.App.GPUContextProvider()). For testing without a GPU,
// use NullDeviceHandle.
func ExampleNewGPURenderer() {
	// Create renderer with null device (for testing without GPU)
	renderer, err := render.NewGPURenderer(render.NullDeviceHandle{})
	if err != nil {
		fmt.Println("failed to create renderer:", err)
		return
	}

	// Create a CPU target; GPU output is read back into it
	target := render.NewPixmapTarget(100, 100)

	// Render the canonical clip-position pass
	pass := fstri.NewPass(fstri.EncodingBitShift)
	if err := renderer.Render(target, pass); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	fmt.Println("rendered successfully")
	// Output: rendered successfully
}

// ExampleSoftwareRenderer_customFragment demonstrates replacing the
// built-in payload with a per-pixel function.
func ExampleSoftwareRenderer_customFragment() {
	renderer := render.NewSoftwareRenderer()
	target := render.NewPixmapTarget(200, 200)

	pass := fstri.NewPass(fstri.EncodingBitShift)
	pass.Fragment = func(f fstri.Fragment) fstri.Vec4 {
		// Coordinate gradient by hand: compare PayloadCoordGradient
		return fstri.Vec4{X: f.Coord.X, Y: f.Coord.Y, Z: 0, W: 1}
	}

	if err := renderer.Render(target, pass); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	center := target.GetPixel(100, 100).(color.RGBA)
	fmt.Printf("center: R=%d G=%d\n", center.R, center.G)
	// Output: center: R=128 G=128
}

// ExampleNewPixmapTarget demonstrates creating and using a CPU render target.
func ExampleNewPixmapTarget() {
	// Create a 400x300 pixel render target
	target := render.NewPixmapTarget(400, 300)

	fmt.Printf("target size: %dx%d\n", target.Width(), target.Height())
	fmt.Printf("stride: %d bytes per row\n", target.Stride())
	fmt.Printf("pixels: %d bytes total\n", len(target.Pixels()))
	// Output:
	// target size: 400x300
	// stride: 1600 bytes per row
	// pixels: 480000 bytes total
}

// ExamplePixmapTarget_Clear demonstrates clearing a target with a color.
func ExamplePixmapTarget_Clear() {
	target := render.NewPixmapTarget(100, 100)

	// Clear to red
	target.Clear(color.RGBA{R: 255, G: 0, B: 0, A: 255})

	// Check a pixel
	pixel := target.GetPixel(50, 50).(color.RGBA)
	fmt.Printf("pixel at (50,50): R=%d, G=%d, B=%d, A=%d\n",
		pixel.R, pixel.G, pixel.B, pixel.A)
	// Output: pixel at (50,50): R=255, G=0, B=0, A=255
}

// ExampleNullDeviceHandle demonstrates the null device for testing.
func ExampleNullDeviceHandle() {
	handle := render.NullDeviceHandle{}

	// NullDeviceHandle returns nil for all GPU resources
	fmt.Printf("device: %v\n", handle.Device())
	fmt.Printf("queue: %v\n", handle.Queue())
	fmt.Printf("adapter: %v\n", handle.Adapter())
	// Output:
	// device: <nil>
	// queue: <nil>
	// adapter: <nil>
}

// ExampleGPURenderer_Capabilities demonstrates querying renderer capabilities.
func ExampleGPURenderer_Capabilities() {
	renderer, err := render.NewGPURenderer(render.NullDeviceHandle{})
	if err != nil {
		fmt.Println("failed:", err)
		return
	}

	// Without the fstri/gpu registration package imported, passes run on
	// the CPU and the renderer reports that honestly.
	caps := renderer.Capabilities()
	fmt.Printf("GPU execution: %v\n", caps.IsGPU)
	fmt.Printf("custom fragments: %v\n", caps.SupportsCustomFragments)
	// Output:
	// GPU execution: false
	// custom fragments: true
}
