// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fstri

// Fragment is the rasterizer-interpolated input to the per-pixel stage for
// one covered pixel. ClipPosition and Coord are interpolated identically
// from the three triangle vertices; since z=0 and w=1 at every vertex, the
// interpolation is affine with no perspective correction.
type Fragment struct {
	// ClipPosition is the interpolated clip-space position at the pixel.
	// Over the visible viewport region x and y each span [-1,1]; z is
	// always 0 and w always 1.
	ClipPosition Vec4

	// Coord is the interpolated parameter-space coordinate at the pixel.
	// Over the visible viewport region each axis spans [0,1].
	Coord Vec2
}

// FragmentFunc computes a color for one fragment. The returned color is
// unclamped; render targets clamp each channel to [0,1] on encode, the
// same clamp a unorm attachment applies.
//
// This is the replacement point for real post-process payloads: a texture
// or buffer sample keyed by f.Coord goes here.
type FragmentFunc func(f Fragment) Vec4

// Payload identifies one of the built-in per-pixel color rules. The two
// built-ins are deliberately divergent placeholder payloads; anything
// beyond them is expressed as a FragmentFunc.
type Payload uint8

const (
	// PayloadClipPosition outputs (clip.x, clip.y, 0, 1): the interpolated
	// clip position visualized as red/green. It ignores the coordinate
	// entirely. Negative clip components clamp to 0 on encode, so the
	// lower-left clip quadrant renders black.
	PayloadClipPosition Payload = iota

	// PayloadCoordGradient outputs (coord.x, coord.y, 0, 1): the
	// parameter-space coordinate visualized as a red/green gradient
	// across the viewport.
	PayloadCoordGradient
)

// String returns the payload name.
func (p Payload) String() string {
	switch p {
	case PayloadClipPosition:
		return "clip-position"
	case PayloadCoordGradient:
		return "coord-gradient"
	default:
		return "unknown"
	}
}

// Valid reports whether p is a known payload.
func (p Payload) Valid() bool {
	return p == PayloadClipPosition || p == PayloadCoordGradient
}

// Shade evaluates the payload for one fragment.
func (p Payload) Shade(f Fragment) Vec4 {
	switch p {
	case PayloadCoordGradient:
		return Vec4{X: f.Coord.X, Y: f.Coord.Y, Z: 0, W: 1}
	default:
		return Vec4{X: f.ClipPosition.X, Y: f.ClipPosition.Y, Z: 0, W: 1}
	}
}

// Func returns the payload as a FragmentFunc.
func (p Payload) Func() FragmentFunc {
	return p.Shade
}

// DefaultPayload returns the payload paired with an encoding: the bitshift
// variant visualizes the interpolated clip position, the shiftmask variant
// the coordinate gradient. The pairing is a convention, not a constraint;
// a Pass may combine any encoding with any payload on the CPU path.
func DefaultPayload(enc Encoding) Payload {
	if enc == EncodingShiftMask {
		return PayloadCoordGradient
	}
	return PayloadClipPosition
}
