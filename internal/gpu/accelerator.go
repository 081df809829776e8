// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/fstri"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Accelerator renders fullscreen passes on the GPU through wgpu/hal.
// It implements fstri.Accelerator and fstri.DeviceProviderAware.
//
// The zero value is ready for registration: Init opens a standalone
// Vulkan device, or the host hands one over later via SetDeviceProvider.
// When no device can be opened the accelerator stays registered but
// reports every pass as unsupported, so rendering falls back to the CPU.
type Accelerator struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	session *renderSession

	gpuReady       bool
	externalDevice bool // true when using a shared device (don't destroy on Close)
}

// Interface compliance checks.
var _ fstri.Accelerator = (*Accelerator)(nil)
var _ fstri.DeviceProviderAware = (*Accelerator)(nil)

// Name returns the accelerator identifier.
func (a *Accelerator) Name() string { return "fstri-gpu" }

// Init opens a standalone GPU device. A failed open is not an error:
// the accelerator registers anyway and CanAccelerate reports false until
// a device arrives via SetDeviceProvider.
func (a *Accelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initGPU(); err != nil {
		slogger().Warn("fstri-gpu: GPU init failed, passes stay on CPU", "err", err)
	}
	return nil
}

// Close releases all GPU resources held by the accelerator.
func (a *Accelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		a.session.Destroy()
		a.session = nil
	}

	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
			a.device = nil
		}
		if a.instance != nil {
			a.instance.Destroy()
			a.instance = nil
		}
	} else {
		// Don't destroy shared resources -- we don't own them.
		a.device = nil
		a.instance = nil
	}
	a.queue = nil
	a.gpuReady = false
	a.externalDevice = false
}

// SetLogger sets the logger for the GPU accelerator and its internals.
// Called by fstri.SetLogger to propagate logging configuration.
func (a *Accelerator) SetLogger(l *slog.Logger) {
	setLogger(l)
}

// CanAccelerate reports whether the pass can run on the GPU. Only the
// canonical encoding/payload pairs have shaders; a pass with a custom
// fragment hook or a cross-paired payload renders on the CPU.
func (a *Accelerator) CanAccelerate(pass *fstri.Pass) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gpuReady && pass.Canonical()
}

// RenderPass renders the pass into target.Data on the GPU. Returns
// fstri.ErrFallbackToCPU when no device is available or the pass is not
// a canonical pair.
func (a *Accelerator) RenderPass(target fstri.PixelTarget, pass *fstri.Pass) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.gpuReady || a.session == nil {
		return fstri.ErrFallbackToCPU
	}
	if !pass.Canonical() {
		return fstri.ErrFallbackToCPU
	}
	return a.session.RenderPass(target, pass)
}

// SetDeviceProvider switches the accelerator to use a shared GPU device
// from an external provider (e.g., gogpu). The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func (a *Accelerator) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("fstri-gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("fstri-gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("fstri-gpu: provider HalQueue is not hal.Queue")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Destroy own resources if we created them.
	if a.session != nil {
		a.session.Destroy()
		a.session = nil
	}
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	// Use provided resources.
	a.device = device
	a.queue = queue
	a.externalDevice = true
	a.session = newRenderSession(device, queue)
	a.gpuReady = true

	slogger().Debug("fstri-gpu: switched to shared GPU device")
	return nil
}

// initGPU opens a standalone Vulkan device. This is the fallback path
// when no external device is provided via SetDeviceProvider.
func (a *Accelerator) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue
	a.session = newRenderSession(a.device, a.queue)
	a.gpuReady = true

	slogger().Info("fstri-gpu: GPU initialized (standalone)", "adapter", selected.Info.Name)
	return nil
}
