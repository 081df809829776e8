//go:build !nogpu

// Package gpu registers the GPU accelerator for hardware-accelerated
// fullscreen passes.
//
// Import this package to route canonical passes through a wgpu/hal render
// pipeline instead of the CPU reference rasterizer. If GPU initialization
// fails (no Vulkan available), the accelerator stays registered but every
// pass renders on the CPU.
//
// Usage:
//
//	import _ "github.com/gogpu/fstri/gpu" // enable GPU acceleration
package gpu

import (
	"github.com/gogpu/fstri"
	gpuimpl "github.com/gogpu/fstri/internal/gpu"
)

func init() {
	if err := fstri.RegisterAccelerator(&gpuimpl.Accelerator{}); err != nil {
		fstri.Logger().Warn("GPU accelerator not available", "err", err)
	}
}

// SetDeviceProvider configures the GPU accelerator to use a shared GPU
// device from an external provider (e.g., gogpu). This avoids creating a
// separate GPU instance and enables efficient device sharing.
//
// The provider should be a gpucontext.DeviceProvider that also implements
// gpucontext.HalProvider for direct HAL access.
//
// Call this after importing the package, before rendering passes.
func SetDeviceProvider(provider any) error {
	return fstri.SetAcceleratorDeviceProvider(provider)
}
