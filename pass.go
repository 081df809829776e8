// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fstri

import "fmt"

// PixelTarget provides pixel buffer access for pass output. The Data slice
// is RGBA, 4 bytes per pixel, laid out row by row with the given Stride.
// Both the CPU rasterizer and the GPU readback write into this layout.
type PixelTarget struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// Validate checks that the target describes a usable pixel buffer.
func (t *PixelTarget) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("fstri: invalid target size %dx%d", t.Width, t.Height)
	}
	if t.Stride < t.Width*4 {
		return fmt.Errorf("fstri: stride %d too small for width %d", t.Stride, t.Width)
	}
	if need := t.Stride * t.Height; len(t.Data) < need {
		return fmt.Errorf("fstri: data length %d, need %d", len(t.Data), need)
	}
	return nil
}

// Pass describes one fullscreen draw: which encoding synthesizes the
// triangle, which payload colors the pixels, and what the target is
// cleared to first.
//
// A Pass holds no GPU resources and no mutable state; the same Pass can be
// rendered any number of times to any target.
type Pass struct {
	// Encoding selects the index-to-coordinate formula.
	Encoding Encoding

	// Payload selects the built-in per-pixel color rule. Ignored when
	// Fragment is non-nil.
	Payload Payload

	// Fragment optionally replaces Payload with a user-supplied per-pixel
	// function. Custom fragments execute on the CPU path only; GPU
	// accelerators fall back to software for them.
	Fragment FragmentFunc

	// ClearColor is written to the target before the triangle is drawn.
	// The overscan triangle covers every pixel, so the clear never shows
	// through a full pass; it matches what a host render pass does before
	// the draw.
	ClearColor Vec4
}

// NewPass returns a pass using the given encoding, its conventionally
// paired payload, and an opaque black clear.
func NewPass(enc Encoding) *Pass {
	return &Pass{
		Encoding:   enc,
		Payload:    DefaultPayload(enc),
		ClearColor: Vec4{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// Canonical reports whether the pass is one of the two variant pairings
// the GPU pipelines implement: bitshift with the clip-position payload, or
// shiftmask with the coordinate gradient. Non-canonical combinations and
// custom fragments render on the CPU path.
func (p *Pass) Canonical() bool {
	return p.Fragment == nil && p.Payload == DefaultPayload(p.Encoding)
}

// shade evaluates the pass's effective per-pixel function.
func (p *Pass) shade(f Fragment) Vec4 {
	if p.Fragment != nil {
		return p.Fragment(f)
	}
	return p.Payload.Shade(f)
}
