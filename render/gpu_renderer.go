// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/fstri"
)

// GPURenderer executes fullscreen passes through the registered GPU
// accelerator, falling back to the CPU rasterizer transparently.
//
// The renderer uses the GPU device provided by the host application when
// the handle exposes the underlying hal objects. Passes the accelerator
// cannot express (custom fragment functions, non-canonical pairings) and
// passes rendered without a registered accelerator run on the CPU path
// and produce the same bytes.
//
// GPU execution requires the accelerator registration package:
//
//	import _ "github.com/gogpu/fstri/gpu"
//
// Example:
//
//	app := gogpu.NewApp(gogpu.Config{...})
//
//	app.OnInit(func(gc *gogpu.Context) {
//	    renderer, _ = render.NewGPURenderer(app.GPUContextProvider())
//	})
//
//	app.OnDraw(func(gc *gogpu.Context) {
//	    target := render.NewPixmapTarget(800, 600)
//	    renderer.Render(target, pass)
//	})
type GPURenderer struct {
	// handle is the GPU device handle from the host application.
	handle DeviceHandle
}

// halDeviceProvider matches handles that expose the underlying hal
// objects for device sharing with the accelerator.
type halDeviceProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewGPURenderer creates a new GPU-backed renderer.
//
// The DeviceHandle must be provided by the host application (e.g.,
// gogpu.App). The renderer does NOT create its own GPU device; when the
// handle exposes HalDevice()/HalQueue(), the device is shared with the
// registered accelerator.
//
// A handle without hal access (like NullDeviceHandle) is accepted: the
// accelerator then keeps its own device, or, when none is registered,
// every pass renders on the CPU.
//
// Returns an error if the handle is nil or the accelerator rejects the
// shared device.
func NewGPURenderer(handle DeviceHandle) (*GPURenderer, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}
	if _, ok := handle.(halDeviceProvider); ok {
		if err := fstri.SetAcceleratorDeviceProvider(handle); err != nil {
			return nil, fmt.Errorf("render: sharing GPU device: %w", err)
		}
	}
	return &GPURenderer{handle: handle}, nil
}

// Render draws the pass to the target.
//
// Canonical passes execute on the registered accelerator with the result
// read back into the target's pixel buffer. Everything else, including
// rendering without an accelerator, runs on the CPU rasterizer. A nil
// pass is a no-op.
func (r *GPURenderer) Render(target RenderTarget, pass *fstri.Pass) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	if pass == nil {
		return nil
	}

	pt, err := pixelTarget(target)
	if err != nil {
		return err
	}
	return pass.Rasterize(pt)
}

// Flush ensures all GPU commands are submitted and complete.
//
// Pass execution submits and waits on a fence before returning, so there
// is never pending GPU work to flush.
func (r *GPURenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
//
// IsGPU reflects the live accelerator state: it is false when no
// accelerator is registered or its device never initialized.
func (r *GPURenderer) Capabilities() RendererCapabilities {
	caps := RendererCapabilities{
		SupportsCustomFragments: true,
	}
	// Probe with a canonical pass: CanAccelerate is false whenever the
	// accelerator exists but has no usable device.
	if a := fstri.RegisteredAccelerator(); a != nil && a.CanAccelerate(fstri.NewPass(fstri.EncodingBitShift)) {
		caps.IsGPU = true
		caps.MaxTargetSize = 8192 // Typical GPU texture limit
	}
	return caps
}

// DeviceHandle returns the underlying device handle.
// This allows advanced users to access the GPU device for custom rendering.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}

// Ensure GPURenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*GPURenderer)(nil)
	_ CapableRenderer = (*GPURenderer)(nil)
)
