// Package raster provides a CPU reference rasterizer for clip-space
// triangles. It reproduces the fixed-function sampling rules a GPU
// rasterizer applies to the fullscreen pass: pixel centers at half-integer
// coordinates, edge-function inside tests, and barycentric attribute
// interpolation. Because the triangles it draws have w=1 at every vertex,
// interpolation is affine and needs no perspective correction.
package raster

// Vertex is one triangle corner: a clip-space XY position (z=0, w=1
// assumed) with a 2-component attribute interpolated across the triangle.
type Vertex struct {
	ClipX, ClipY float32
	U, V         float32
}

// Fragment carries the interpolated values at one covered pixel center.
type Fragment struct {
	// X, Y are the pixel coordinates, top-left origin.
	X, Y int

	// ClipX, ClipY are the interpolated clip-space coordinates at the
	// pixel center.
	ClipX, ClipY float32

	// U, V are the interpolated vertex attributes at the pixel center.
	U, V float32
}

// FragmentFn computes an unclamped RGBA color for one fragment.
type FragmentFn func(f Fragment) (r, g, b, a float32)

// Clear fills the target rectangle with a single color, clamped to [0,1]
// per channel. Equivalent to a render pass load-op clear.
func Clear(data []uint8, width, height, stride int, r, g, b, a float32) {
	cr, cg, cb, ca := encodeRGBA8(r, g, b, a)
	for y := 0; y < height; y++ {
		row := data[y*stride:]
		for x := 0; x < width; x++ {
			o := x * 4
			row[o+0] = cr
			row[o+1] = cg
			row[o+2] = cb
			row[o+3] = ca
		}
	}
}

// DrawTriangle rasterizes one clip-space triangle over a width x height
// pixel grid, invoking frag once per covered pixel and writing the clamped
// RGBA8 result into data.
//
// Screen mapping follows the top-left-origin convention: clip (-1,1) is
// the top-left viewport corner, clip y decreases down the screen. A pixel
// is covered when its center (px+0.5, py+0.5) passes the inside test for
// all three edges. Edge signs are normalized by the triangle's signed
// area, so clockwise and counter-clockwise triangles rasterize alike.
// Degenerate (zero-area) triangles produce no fragments.
func DrawTriangle(data []uint8, width, height, stride int, v0, v1, v2 Vertex, frag FragmentFn) {
	if width <= 0 || height <= 0 {
		return
	}

	// Viewport transform: clip XY to screen-space pixel coordinates.
	x0, y0 := toScreen(v0.ClipX, v0.ClipY, width, height)
	x1, y1 := toScreen(v1.ClipX, v1.ClipY, width, height)
	x2, y2 := toScreen(v2.ClipX, v2.ClipY, width, height)

	area := edgeFunction(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	// Normalize winding so the inside test is sign-independent.
	sign := float32(1)
	if area < 0 {
		sign = -1
		area = -area
	}
	invArea := 1 / area

	// Scan the triangle's bounding box clamped to the viewport.
	minX, maxX := boundPixels(x0, x1, x2, width)
	minY, maxY := boundPixels(y0, y1, y2, height)

	for py := minY; py <= maxY; py++ {
		cy := float32(py) + 0.5
		row := data[py*stride:]
		for px := minX; px <= maxX; px++ {
			cx := float32(px) + 0.5

			w0 := sign * edgeFunction(x1, y1, x2, y2, cx, cy)
			w1 := sign * edgeFunction(x2, y2, x0, y0, cx, cy)
			w2 := sign * edgeFunction(x0, y0, x1, y1, cx, cy)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			// Barycentric weights. Screen space is an affine image of
			// clip space here (w=1 everywhere), so the same weights
			// interpolate clip positions and attributes exactly.
			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea

			f := Fragment{
				X:     px,
				Y:     py,
				ClipX: b0*v0.ClipX + b1*v1.ClipX + b2*v2.ClipX,
				ClipY: b0*v0.ClipY + b1*v1.ClipY + b2*v2.ClipY,
				U:     b0*v0.U + b1*v1.U + b2*v2.U,
				V:     b0*v0.V + b1*v1.V + b2*v2.V,
			}
			r, g, b, a := frag(f)
			cr, cg, cb, ca := encodeRGBA8(r, g, b, a)
			o := px * 4
			row[o+0] = cr
			row[o+1] = cg
			row[o+2] = cb
			row[o+3] = ca
		}
	}
}

// toScreen maps clip-space XY to screen-space pixel coordinates with a
// top-left origin. Clip y=+1 maps to screen y=0.
func toScreen(clipX, clipY float32, width, height int) (sx, sy float32) {
	sx = (clipX + 1) * 0.5 * float32(width)
	sy = (1 - clipY) * 0.5 * float32(height)
	return sx, sy
}

// edgeFunction returns twice the signed area of triangle (a, b, p).
// Positive when p lies to the left of the directed edge a->b in a
// top-left-origin (y-down) screen space.
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// boundPixels returns the inclusive pixel range covered by three screen
// coordinates, clamped to [0, limit).
func boundPixels(a, b, c float32, limit int) (lo, hi int) {
	minf := a
	if b < minf {
		minf = b
	}
	if c < minf {
		minf = c
	}
	maxf := a
	if b > maxf {
		maxf = b
	}
	if c > maxf {
		maxf = c
	}

	lo = int(minf)
	hi = int(maxf)
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}

// encodeRGBA8 clamps each channel to [0,1] and quantizes to 8 bits with
// round-to-nearest. This is the conversion a unorm render target applies
// on write.
func encodeRGBA8(r, g, b, a float32) (cr, cg, cb, ca uint8) {
	return quantize(r), quantize(g), quantize(b), quantize(a)
}

func quantize(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}
