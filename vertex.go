// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fstri

// VertexCount is the number of vertices in a fullscreen triangle draw.
// The host pipeline issues a non-indexed draw of exactly this many vertices
// with no vertex buffer bound.
const VertexCount = 3

// Encoding selects the formula that derives the parameter-space coordinate
// from the vertex index. Both encodings produce an overscan triangle whose
// clip-space hull contains the full [-1,1] viewport square; they differ in
// which vertex overscans which axis and, consequently, in winding order.
//
// Pipelines rendering either encoding must disable back-face culling, since
// EncodingBitShift winds counter-clockwise in clip space while
// EncodingShiftMask winds clockwise.
type Encoding uint8

const (
	// EncodingBitShift derives the coordinate as (i>>1, i&1)*2, producing
	// (0,0), (0,2), (2,0) for indices 0, 1, 2. The associated payload is
	// PayloadClipPosition.
	EncodingBitShift Encoding = iota

	// EncodingShiftMask derives the coordinate as ((i<<1)&2, i&2),
	// producing (0,0), (2,0), (0,2) for indices 0, 1, 2. The associated
	// payload is PayloadCoordGradient.
	EncodingShiftMask
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingBitShift:
		return "bitshift"
	case EncodingShiftMask:
		return "shiftmask"
	default:
		return "unknown"
	}
}

// Valid reports whether e is a known encoding.
func (e Encoding) Valid() bool {
	return e == EncodingBitShift || e == EncodingShiftMask
}

// Vertex is one synthesized vertex of the fullscreen triangle. It is an
// ephemeral record: produced per invocation, interpolated across the
// triangle by the rasterizer, then discarded.
type Vertex struct {
	// ClipPosition is the clip-space position (x, y, z, w) with z=0, w=1.
	ClipPosition Vec4

	// Coord is the parameter-space coordinate. It spans [0,2] per axis
	// across the three vertices; interpolation inside the visible region
	// of the triangle restricts it to the usable [0,1] sub-range.
	Coord Vec2
}

// Generate synthesizes the vertex for the given invocation index.
//
// It is a pure function of (enc, index) and is defined for index 0, 1, 2.
// Values outside that domain are the host's contract violation; Generate
// performs no validation and simply evaluates the formula, matching the
// behavior of the vertex stage it models.
func Generate(enc Encoding, index uint32) Vertex {
	var coord Vec2
	switch enc {
	case EncodingShiftMask:
		coord = Vec2{X: float32((index << 1) & 2), Y: float32(index & 2)}
	default:
		coord = Vec2{X: float32(index >> 1), Y: float32(index & 1)}.Mul(2)
	}
	return Vertex{
		ClipPosition: ClipFromCoord(coord),
		Coord:        coord,
	}
}

// Triangle returns the three vertices of one fullscreen triangle in
// invocation order.
func Triangle(enc Encoding) [VertexCount]Vertex {
	return [VertexCount]Vertex{
		Generate(enc, 0),
		Generate(enc, 1),
		Generate(enc, 2),
	}
}

// ClipFromCoord maps a parameter-space coordinate into clip space:
//
//	clip.xy = coord*(2,-2) + (-1,1),  clip.z = 0,  clip.w = 1
//
// The vertical flip converts the top-left-origin parameter space (Y down)
// into clip space (Y up): coord (0,0) lands at clip (-1,1), the top-left
// viewport corner. When targeting a rasterizer with the opposite clip-space
// Y direction the sign must be re-derived, not copied.
func ClipFromCoord(coord Vec2) Vec4 {
	return Vec4{
		X: coord.X*2 - 1,
		Y: coord.Y*-2 + 1,
		Z: 0,
		W: 1,
	}
}

// CoordFromClip inverts ClipFromCoord. The mapping is affine and exactly
// invertible, which the tests rely on.
func CoordFromClip(clip Vec4) Vec2 {
	return Vec2{
		X: (clip.X + 1) * 0.5,
		Y: (clip.Y - 1) * -0.5,
	}
}
