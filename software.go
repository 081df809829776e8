// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fstri

import (
	"errors"
	"image"

	"github.com/gogpu/fstri/internal/raster"
)

// Rasterize renders the pass into the target. If a GPU accelerator is
// registered and supports the pass, it runs there; otherwise, or when the
// accelerator reports a fallback, the CPU reference rasterizer runs. The
// two paths produce the same image.
func (p *Pass) Rasterize(target PixelTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if a := RegisteredAccelerator(); a != nil && a.CanAccelerate(p) {
		err := a.RenderPass(target, p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			Logger().Warn("fstri: GPU pass failed, falling back to CPU",
				"accelerator", a.Name(), "err", err)
		}
	}
	return p.RasterizeCPU(target)
}

// RasterizeCPU renders the pass on the CPU reference rasterizer,
// bypassing any registered accelerator.
func (p *Pass) RasterizeCPU(target PixelTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	raster.Clear(target.Data, target.Width, target.Height, target.Stride,
		p.ClearColor.X, p.ClearColor.Y, p.ClearColor.Z, p.ClearColor.W)

	tri := Triangle(p.Encoding)
	raster.DrawTriangle(target.Data, target.Width, target.Height, target.Stride,
		rasterVertex(tri[0]), rasterVertex(tri[1]), rasterVertex(tri[2]),
		func(f raster.Fragment) (r, g, b, a float32) {
			c := p.shade(Fragment{
				ClipPosition: Vec4{X: f.ClipX, Y: f.ClipY, Z: 0, W: 1},
				Coord:        Vec2{X: f.U, Y: f.V},
			})
			return c.X, c.Y, c.Z, c.W
		})
	return nil
}

// Image renders the pass into a freshly allocated image of the given
// size, using the accelerator when one is available.
func (p *Pass) Image(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	_ = p.Rasterize(TargetFromImage(img))
	return img
}

// TargetFromImage wraps an *image.RGBA as a PixelTarget sharing the same
// pixel memory.
func TargetFromImage(img *image.RGBA) PixelTarget {
	b := img.Bounds()
	return PixelTarget{
		Data:   img.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
		Stride: img.Stride,
	}
}

// rasterVertex converts a generated vertex into the rasterizer's input
// form. Clip z and w are dropped: z is 0 and w is 1 by construction.
func rasterVertex(v Vertex) raster.Vertex {
	return raster.Vertex{
		ClipX: v.ClipPosition.X,
		ClipY: v.ClipPosition.Y,
		U:     v.Coord.X,
		V:     v.Coord.Y,
	}
}
