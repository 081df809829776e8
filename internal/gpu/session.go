// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/fstri"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyPitchAlignment is the BytesPerRow alignment WebGPU (and DX12)
// require for texture-to-buffer copies.
const copyPitchAlignment = 256

// renderSession owns the offscreen color target and the per-encoding
// pipelines, and encodes one fullscreen pass per RenderPass call.
//
// The color texture is single-sampled: the triangle's only edges lie
// outside the viewport, so multisampling would resolve to the same image.
type renderSession struct {
	device hal.Device
	queue  hal.Queue

	pipelines [2]*trianglePipeline // indexed by fstri.Encoding

	colorTex  hal.Texture
	colorView hal.TextureView

	width, height uint32
}

func newRenderSession(device hal.Device, queue hal.Queue) *renderSession {
	return &renderSession{device: device, queue: queue}
}

// RenderPass renders one fullscreen pass into target.Data. The target
// must already be validated by the caller.
func (s *renderSession) RenderPass(target fstri.PixelTarget, pass *fstri.Pass) error {
	w, h := uint32(target.Width), uint32(target.Height) //nolint:gosec // dimensions always fit uint32
	if err := s.ensureTarget(w, h); err != nil {
		return err
	}
	pipeline, err := s.pipelineFor(pass.Encoding)
	if err != nil {
		return err
	}
	return s.encodeAndReadback(w, h, pipeline, pass.ClearColor, target)
}

// pipelineFor returns the ready pipeline for the encoding, creating it
// lazily on first use.
func (s *renderSession) pipelineFor(enc fstri.Encoding) (*trianglePipeline, error) {
	if !enc.Valid() {
		return nil, fmt.Errorf("fstri-gpu: no pipeline for encoding %d", enc)
	}
	p := s.pipelines[enc]
	if p == nil {
		p = newTrianglePipeline(s.device, enc)
		s.pipelines[enc] = p
	}
	if err := p.ensureReady(); err != nil {
		return nil, err
	}
	return p, nil
}

// ensureTarget creates or recreates the color texture if the requested
// dimensions differ from the current size.
func (s *renderSession) ensureTarget(w, h uint32) error {
	if s.width == w && s.height == h && s.colorTex != nil {
		return nil
	}
	s.destroyTarget()

	colorTex, err := s.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "fstri_color",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	s.colorTex = colorTex

	colorView, err := s.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label:         "fstri_color_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		s.destroyTarget()
		return fmt.Errorf("create color view: %w", err)
	}
	s.colorView = colorView

	s.width = w
	s.height = h
	return nil
}

// encodeAndReadback encodes the fullscreen pass, copies the color texture
// to a staging buffer, submits, waits, and reads back pixels into target.
func (s *renderSession) encodeAndReadback(
	w, h uint32, pipeline *trianglePipeline,
	clear fstri.Vec4, target fstri.PixelTarget,
) error {
	encoder, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "fstri_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("fstri_pass"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "fstri_render_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:    s.colorView,
				LoadOp:  gputypes.LoadOpClear,
				StoreOp: gputypes.StoreOpStore,
				ClearValue: gputypes.Color{
					R: float64(clear.X),
					G: float64(clear.Y),
					B: float64(clear.Z),
					A: float64(clear.W),
				},
			},
		},
	})
	pipeline.RecordDraw(rp)
	rp.End()

	// After the pass the texture is in COLOR_ATTACHMENT layout;
	// CopyTextureToBuffer requires TRANSFER_SRC. A no-op on backends
	// without explicit layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: s.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "fstri_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer s.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(s.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: s.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	// Return the texture to RenderAttachment so the next frame's pass
	// starts from the layout its barrier expects.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: s.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer s.device.FreeCommandBuffer(cmdBuf)

	fence, err := s.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer s.device.DestroyFence(fence)

	if err := s.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := s.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := s.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}

	copyBGRARows(readback, int(alignedBytesPerRow), target)
	return nil
}

// destroyTarget releases the color texture and resets dimensions.
func (s *renderSession) destroyTarget() {
	if s.colorView != nil {
		s.device.DestroyTextureView(s.colorView)
		s.colorView = nil
	}
	if s.colorTex != nil {
		s.device.DestroyTexture(s.colorTex)
		s.colorTex = nil
	}
	s.width = 0
	s.height = 0
}

// Destroy releases all GPU resources owned by the session. Safe to call
// multiple times.
func (s *renderSession) Destroy() {
	for i, p := range s.pipelines {
		if p != nil {
			p.destroy()
			s.pipelines[i] = nil
		}
	}
	s.destroyTarget()
}

// Size returns the current color target dimensions.
func (s *renderSession) Size() (uint32, uint32) {
	return s.width, s.height
}

// copyBGRARows copies aligned BGRA readback rows into the RGBA target,
// stripping any copy-pitch padding and swapping the red and blue channels.
func copyBGRARows(readback []byte, srcPitch int, target fstri.PixelTarget) {
	rowBytes := target.Width * 4
	for y := 0; y < target.Height; y++ {
		src := readback[y*srcPitch : y*srcPitch+rowBytes]
		dst := target.Data[y*target.Stride:]
		for x := 0; x < target.Width; x++ {
			o := x * 4
			dst[o+0] = src[o+2]
			dst[o+1] = src[o+1]
			dst[o+2] = src[o+0]
			dst[o+3] = src[o+3]
		}
	}
}
