//go:build !nogpu

package gpu

import (
	"testing"

	"github.com/gogpu/fstri"
)

func newTestTarget(w, h int) fstri.PixelTarget {
	return fstri.PixelTarget{
		Data:   make([]uint8, w*h*4),
		Width:  w,
		Height: h,
		Stride: w * 4,
	}
}

func TestRenderSessionNew(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	s := newRenderSession(device, queue)
	if s.device != device {
		t.Error("device not stored correctly")
	}
	if s.queue != queue {
		t.Error("queue not stored correctly")
	}
	if s.colorTex != nil {
		t.Error("expected nil colorTex before first render")
	}
	w, h := s.Size()
	if w != 0 || h != 0 {
		t.Errorf("expected size (0, 0) before first render, got (%d, %d)", w, h)
	}
}

func TestRenderSessionEnsureTargetIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	s := newRenderSession(device, queue)
	defer s.Destroy()

	if err := s.ensureTarget(640, 480); err != nil {
		t.Fatalf("first ensureTarget failed: %v", err)
	}
	orig := s.colorTex

	if err := s.ensureTarget(640, 480); err != nil {
		t.Fatalf("second ensureTarget failed: %v", err)
	}
	if s.colorTex != orig {
		t.Error("color texture was recreated unnecessarily")
	}

	w, h := s.Size()
	if w != 640 || h != 480 {
		t.Errorf("expected size (640, 480), got (%d, %d)", w, h)
	}
}

func TestRenderSessionEnsureTargetResize(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	s := newRenderSession(device, queue)
	defer s.Destroy()

	if err := s.ensureTarget(800, 600); err != nil {
		t.Fatalf("initial ensureTarget failed: %v", err)
	}
	if err := s.ensureTarget(1920, 1080); err != nil {
		t.Fatalf("resize ensureTarget failed: %v", err)
	}

	w, h := s.Size()
	if w != 1920 || h != 1080 {
		t.Errorf("expected size (1920, 1080), got (%d, %d)", w, h)
	}
	if s.colorTex == nil || s.colorView == nil {
		t.Error("expected color texture and view after resize")
	}
}

func TestRenderSessionRenderPass(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	s := newRenderSession(device, queue)
	defer s.Destroy()

	// This exercises the full pipeline creation, render pass encoding,
	// submit, and readback with the noop device.
	for _, enc := range []fstri.Encoding{fstri.EncodingBitShift, fstri.EncodingShiftMask} {
		target := newTestTarget(100, 100)
		pass := fstri.NewPass(enc)

		if err := s.RenderPass(target, pass); err != nil {
			t.Fatalf("RenderPass(%s) failed: %v", enc, err)
		}

		if s.pipelines[enc] == nil {
			t.Errorf("%s: expected pipeline after render", enc)
		}
	}

	w, h := s.Size()
	if w != 100 || h != 100 {
		t.Errorf("expected size (100, 100), got (%d, %d)", w, h)
	}
}

func TestRenderSessionRenderPassUnknownEncoding(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	s := newRenderSession(device, queue)
	defer s.Destroy()

	target := newTestTarget(16, 16)
	pass := &fstri.Pass{Encoding: fstri.Encoding(99)}

	if err := s.RenderPass(target, pass); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestRenderSessionDestroy(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	s := newRenderSession(device, queue)

	target := newTestTarget(64, 64)
	if err := s.RenderPass(target, fstri.NewPass(fstri.EncodingBitShift)); err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}

	s.Destroy()

	if s.colorTex != nil || s.colorView != nil {
		t.Error("expected nil color resources after Destroy")
	}
	for i, p := range s.pipelines {
		if p != nil {
			t.Errorf("expected nil pipeline %d after Destroy", i)
		}
	}
	w, h := s.Size()
	if w != 0 || h != 0 {
		t.Errorf("expected size (0, 0) after Destroy, got (%d, %d)", w, h)
	}

	// Double-destroy should be safe.
	s.Destroy()
}

func TestCopyBGRARows(t *testing.T) {
	// 2x2 image read back with a 256-byte row pitch. Pixel bytes are
	// BGRA; the target rows carry 8 bytes of stride padding.
	const w, h = 2, 2
	const pitch = 256

	readback := make([]byte, pitch*h)
	writePixel := func(x, y int, b, g, r, a byte) {
		o := y*pitch + x*4
		readback[o], readback[o+1], readback[o+2], readback[o+3] = b, g, r, a
	}
	writePixel(0, 0, 0x10, 0x20, 0x30, 0xFF)
	writePixel(1, 0, 0xAA, 0xBB, 0xCC, 0xDD)
	writePixel(0, 1, 0x01, 0x02, 0x03, 0x04)
	writePixel(1, 1, 0x05, 0x06, 0x07, 0x08)

	target := fstri.PixelTarget{
		Data:   make([]uint8, (w*4+8)*h),
		Width:  w,
		Height: h,
		Stride: w*4 + 8,
	}
	for i := range target.Data {
		target.Data[i] = 0xEE
	}

	copyBGRARows(readback, pitch, target)

	wantPixels := []struct {
		x, y       int
		r, g, b, a byte
	}{
		{0, 0, 0x30, 0x20, 0x10, 0xFF},
		{1, 0, 0xCC, 0xBB, 0xAA, 0xDD},
		{0, 1, 0x03, 0x02, 0x01, 0x04},
		{1, 1, 0x07, 0x06, 0x05, 0x08},
	}
	for _, px := range wantPixels {
		o := px.y*target.Stride + px.x*4
		got := target.Data[o : o+4]
		if got[0] != px.r || got[1] != px.g || got[2] != px.b || got[3] != px.a {
			t.Errorf("pixel (%d,%d) = [%02X %02X %02X %02X], want [%02X %02X %02X %02X]",
				px.x, px.y, got[0], got[1], got[2], got[3], px.r, px.g, px.b, px.a)
		}
	}

	// Stride padding must stay untouched.
	for y := 0; y < h; y++ {
		for i := w * 4; i < target.Stride; i++ {
			if target.Data[y*target.Stride+i] != 0xEE {
				t.Errorf("row %d padding byte %d overwritten", y, i)
			}
		}
	}
}
