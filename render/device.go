// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the primary integration point between fstri and GPU
// frameworks like gogpu. The host application (e.g., gogpu.App) implements
// DeviceHandle and passes it to NewGPURenderer, allowing fullscreen passes
// to run on the shared GPU device.
//
// Key principle: fstri RECEIVES the device from the host, it does NOT
// create one. This enables:
//   - Shared GPU resources between fstri and the host application
//   - Zero device creation overhead in fstri
//   - Consistent resource management across the stack
//
// For the device to be usable by the accelerator, the handle should also
// expose the underlying hal objects via HalDevice() any and HalQueue() any.
// Handles without those methods (like NullDeviceHandle) still construct a
// working renderer; passes then run on the CPU rasterizer.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing an
// fstri-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
