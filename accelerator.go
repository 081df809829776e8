package fstri

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the GPU accelerator cannot handle this pass.
// The caller should transparently fall back to CPU rasterization.
var ErrFallbackToCPU = errors.New("fstri: falling back to CPU rendering")

// Accelerator is an optional GPU execution provider for fullscreen passes.
//
// When registered via RegisterAccelerator, Rasterize tries GPU execution
// first for supported passes. If the accelerator returns ErrFallbackToCPU
// or any error, rendering transparently falls back to CPU.
//
// Implementations are provided by GPU backend packages (fstri/gpu).
// Users opt in to GPU acceleration via blank import:
//
//	import _ "github.com/gogpu/fstri/gpu" // enables GPU acceleration
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "vulkan").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// pass. This is a fast check used to skip GPU entirely for passes it
	// cannot express (custom fragment functions, non-canonical pairings).
	CanAccelerate(pass *Pass) bool

	// RenderPass executes the pass on the GPU and reads the result back
	// into the target. Returns ErrFallbackToCPU if the pass cannot be
	// GPU-executed.
	RenderPass(target PixelTarget, pass *Pass) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share a GPU device with an external provider (e.g., a gogpu window).
// When SetDeviceProvider is called, the accelerator reuses the provided
// device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers a GPU accelerator for optional GPU
// rendering.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration. If Init() fails, the accelerator is not registered and
// the error is returned.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    fstri.RegisterAccelerator(&gpuimpl.Accelerator{})
//	}
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("fstri: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// RegisteredAccelerator returns the currently registered accelerator, or
// nil if none.
func RegisteredAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling GPU device sharing. If no accelerator is
// registered or it doesn't support device sharing, this is a no-op.
//
// The provider should implement HalDevice() any and HalQueue() any methods
// that return wgpu/hal types.
func SetAcceleratorDeviceProvider(provider any) error {
	a := RegisteredAccelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}
