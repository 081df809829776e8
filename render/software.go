// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/fstri"
)

// SoftwareRenderer executes fullscreen passes on the CPU rasterizer.
//
// This renderer never touches a GPU, even when an accelerator is
// registered. It is the reference path: the GPU renderer produces the
// same bytes for canonical passes.
//
// Performance characteristics:
//   - Single-threaded
//   - O(n) where n is the number of target pixels
//   - No allocations per pass
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//
//	pass := fstri.NewPass(fstri.EncodingShiftMask)
//	renderer.Render(target, pass)
//	img := target.Image()
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render draws the pass to the target on the CPU.
//
// Returns an error if the target has no CPU pixel access or describes an
// unusable pixel buffer. A nil pass is a no-op.
func (r *SoftwareRenderer) Render(target RenderTarget, pass *fstri.Pass) error {
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
	return pass.RasterizeCPU(pt)
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                   false,
		SupportsCustomFragments: true,
		MaxTargetSize:           0, // No limit
	}
}

// Ensure SoftwareRenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)
