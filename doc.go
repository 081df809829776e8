// Package fstri implements the fullscreen triangle technique for the
// GoGPU ecosystem.
//
// # Overview
//
// A fullscreen (or "overscan") triangle covers the entire viewport with a
// single triangle whose three vertices are synthesized from the vertex
// index alone. No vertex buffer, no index buffer, one non-indexed draw of
// exactly 3 vertices. The triangle extends past the clip-space square so
// that its rasterized footprint covers every viewport pixel exactly once;
// the overscan region is clipped away by the rasterizer. This is the
// standard way to run a per-pixel computation (post-processing, blits,
// procedural backgrounds) without uploading any geometry.
//
// # Quick Start
//
//	import "github.com/gogpu/fstri"
//
//	// Build a pass that visualizes the parameter-space coordinate
//	// as a red/green gradient.
//	pass := fstri.NewPass(fstri.EncodingShiftMask)
//
//	// Rasterize on the CPU into an image.
//	img := pass.Image(512, 512)
//
// For GPU execution, blank-import the gpu package and render through
// fstri/render:
//
//	import _ "github.com/gogpu/fstri/gpu"
//
// # The Technique
//
// Each of the 3 vertex invocations derives a 2D parameter-space coordinate
// from its index and maps it affinely into clip space:
//
//	clip.xy = coord*(2,-2) + (-1,1),  clip.z = 0,  clip.w = 1
//
// Two index encodings are provided. EncodingBitShift computes
// (i>>1, i&1)*2, EncodingShiftMask computes ((i<<1)&2, i&2). Both produce
// a triangle whose hull contains the full [-1,1] clip square; they differ
// in which vertex overscans which axis and in winding order. See Encoding
// for the exact vertex values.
//
// The coordinate interpolates linearly across the triangle and spans
// [0,1]x[0,1] over the visible viewport, making it directly usable as a
// texture-sampling key in the per-pixel stage.
//
// # Coordinate System
//
// Parameter space has its origin at the top-left of the viewport with Y
// increasing downward; clip space has Y increasing upward. The vertical
// flip in the clip mapping converts between the two. The CPU rasterizer
// and the WGSL shaders share this convention, so both backends produce
// identical images.
//
// # Architecture
//
//   - Public API: Encoding, Vertex, Fragment, Payload, Pass
//   - internal/raster: CPU edge-function rasterizer (reference semantics)
//   - internal/gpu: wgpu/hal pipelines and offscreen sessions
//   - render: renderer layer over pixmap and GPU targets
//   - gpu: blank-import registration of the GPU accelerator
package fstri

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
