// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/fstri"
)

func TestNewSoftwareRenderer(t *testing.T) {
	renderer := NewSoftwareRenderer()

	if renderer == nil {
		t.Fatal("NewSoftwareRenderer() returned nil")
	}
}

func TestSoftwareRendererCapabilities(t *testing.T) {
	renderer := NewSoftwareRenderer()
	caps := renderer.Capabilities()

	if caps.IsGPU {
		t.Error("SoftwareRenderer should not be GPU")
	}
	if !caps.SupportsCustomFragments {
		t.Error("SoftwareRenderer should support custom fragments")
	}
	if caps.MaxTargetSize != 0 {
		t.Errorf("MaxTargetSize = %d, want 0 (unlimited)", caps.MaxTargetSize)
	}
}

func TestSoftwareRendererFlush(t *testing.T) {
	renderer := NewSoftwareRenderer()

	err := renderer.Flush()
	if err != nil {
		t.Errorf("Flush() error = %v, want nil", err)
	}
}

func TestSoftwareRendererNilTarget(t *testing.T) {
	renderer := NewSoftwareRenderer()
	pass := fstri.NewPass(fstri.EncodingBitShift)

	err := renderer.Render(nil, pass)
	if err == nil {
		t.Error("Render(nil, _) should return error")
	}
}

func TestSoftwareRendererNilPass(t *testing.T) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(100, 100)

	err := renderer.Render(target, nil)
	if err != nil {
		t.Errorf("Render(_, nil) error = %v, want nil", err)
	}
}

func TestSoftwareRendererClipPositionPass(t *testing.T) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(64, 64)

	// Canonical bitshift pass visualizes the clip position: red grows to
	// the right, green grows upward, the lower-left quadrant clamps black.
	pass := fstri.NewPass(fstri.EncodingBitShift)

	if err := renderer.Render(target, pass); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	topLeft := target.GetPixel(0, 0).(color.RGBA)
	if topLeft.R != 0 || topLeft.G < 200 || topLeft.A != 255 {
		t.Errorf("top-left = %v, want green", topLeft)
	}

	topRight := target.GetPixel(63, 0).(color.RGBA)
	if topRight.R < 200 || topRight.G < 200 {
		t.Errorf("top-right = %v, want yellow", topRight)
	}

	bottomRight := target.GetPixel(63, 63).(color.RGBA)
	if bottomRight.R < 200 || bottomRight.G != 0 {
		t.Errorf("bottom-right = %v, want red", bottomRight)
	}

	bottomLeft := target.GetPixel(0, 63).(color.RGBA)
	if bottomLeft.R != 0 || bottomLeft.G != 0 || bottomLeft.A != 255 {
		t.Errorf("bottom-left = %v, want black", bottomLeft)
	}
}

func TestSoftwareRendererCoordGradientPass(t *testing.T) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(64, 64)

	// Canonical shiftmask pass visualizes the coordinate gradient: both
	// channels grow toward the bottom-right corner.
	pass := fstri.NewPass(fstri.EncodingShiftMask)

	if err := renderer.Render(target, pass); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	topLeft := target.GetPixel(0, 0).(color.RGBA)
	if topLeft.R > 10 || topLeft.G > 10 || topLeft.A != 255 {
		t.Errorf("top-left = %v, want near black", topLeft)
	}

	bottomRight := target.GetPixel(63, 63).(color.RGBA)
	if bottomRight.R < 245 || bottomRight.G < 245 {
		t.Errorf("bottom-right = %v, want near yellow", bottomRight)
	}
}

func TestSoftwareRendererMatchesDirectRasterize(t *testing.T) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(96, 64)
	pass := fstri.NewPass(fstri.EncodingShiftMask)

	if err := renderer.Render(target, pass); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := image.NewRGBA(image.Rect(0, 0, 96, 64))
	if err := pass.RasterizeCPU(fstri.TargetFromImage(want)); err != nil {
		t.Fatalf("RasterizeCPU() error = %v", err)
	}

	if !bytes.Equal(target.Pixels(), want.Pix) {
		t.Error("renderer output differs from direct CPU rasterization")
	}
}

func TestSoftwareRendererCustomFragment(t *testing.T) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(32, 32)

	pass := fstri.NewPass(fstri.EncodingBitShift)
	pass.Fragment = func(fstri.Fragment) fstri.Vec4 {
		return fstri.Vec4{X: 0, Y: 0, Z: 1, W: 1}
	}

	if err := renderer.Render(target, pass); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, p := range [][2]int{{0, 0}, {31, 0}, {16, 16}, {0, 31}, {31, 31}} {
		pixel := target.GetPixel(p[0], p[1]).(color.RGBA)
		if pixel.B != 255 || pixel.R != 0 || pixel.G != 0 {
			t.Errorf("pixel at (%d, %d) = %v, want blue", p[0], p[1], pixel)
		}
	}
}

func TestSoftwareRendererGPUTargetError(t *testing.T) {
	renderer := NewSoftwareRenderer()
	pass := fstri.NewPass(fstri.EncodingBitShift)

	err := renderer.Render(&gpuOnlyTarget{width: 100, height: 100}, pass)
	if err == nil {
		t.Error("Render() on a target without CPU access should return error")
	}
}

func TestSoftwareRendererEmptyTarget(t *testing.T) {
	renderer := NewSoftwareRenderer()
	pass := fstri.NewPass(fstri.EncodingBitShift)

	err := renderer.Render(NewPixmapTarget(0, 0), pass)
	if err == nil {
		t.Error("Render() on an empty target should return error")
	}
}

func BenchmarkSoftwareRendererPass(b *testing.B) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(800, 600)
	pass := fstri.NewPass(fstri.EncodingBitShift)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = renderer.Render(target, pass)
	}
}

func BenchmarkSoftwareRendererCustomFragment(b *testing.B) {
	renderer := NewSoftwareRenderer()
	target := NewPixmapTarget(800, 600)
	pass := fstri.NewPass(fstri.EncodingBitShift)
	pass.Fragment = func(f fstri.Fragment) fstri.Vec4 {
		return fstri.Vec4{X: f.Coord.X, Y: f.Coord.Y, Z: f.Coord.X * f.Coord.Y, W: 1}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = renderer.Render(target, pass)
	}
}
