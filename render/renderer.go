// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/fstri"

// Renderer executes a fullscreen pass against a render target.
//
// The Renderer interface is the primary abstraction for rendering backends.
// Different implementations provide CPU or GPU execution:
//
//   - SoftwareRenderer: CPU rasterization, no GPU dependencies
//   - GPURenderer: accelerator execution with transparent CPU fallback
//
// Renderers are stateless between Render calls, allowing the same renderer
// to be used with different targets and passes.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
//
// Example:
//
//	// Create renderer
//	renderer := render.NewSoftwareRenderer()
//
//	// Create target
//	target := render.NewPixmapTarget(800, 600)
//
//	// Render a pass
//	pass := fstri.NewPass(fstri.EncodingBitShift)
//	if err := renderer.Render(target, pass); err != nil {
//	    log.Printf("render failed: %v", err)
//	}
type Renderer interface {
	// Render draws the pass to the target.
	//
	// The target is cleared to the pass clear color and then fully covered
	// by the pass payload. Returns an error if rendering fails (e.g., a
	// target without CPU pixel access).
	//
	// The pass is not modified by this operation and can be rendered
	// multiple times to different targets.
	Render(target RenderTarget, pass *fstri.Pass) error

	// Flush ensures all pending rendering operations are complete.
	//
	// All current implementations render synchronously, so this is a
	// no-op. GPU renderers with deferred submission would submit command
	// buffers and wait for completion here.
	//
	// Returns an error if flushing fails.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates whether canonical passes execute on the GPU.
	IsGPU bool

	// SupportsCustomFragments indicates whether passes with a custom
	// Fragment function are honored. Custom fragments always execute on
	// the CPU path, so a renderer may support them without being able to
	// accelerate them.
	SupportsCustomFragments bool

	// MaxTargetSize is the maximum target dimension (0 = unlimited).
	MaxTargetSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
