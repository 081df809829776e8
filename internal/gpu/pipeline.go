// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/fstri"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// trianglePipeline holds the GPU objects for one vertex encoding.
//
// The pipeline is deliberately bare: no vertex buffers, no index buffer,
// no bind groups. The vertex stage synthesizes the overscan triangle from
// the vertex index alone, so recording a frame is SetPipeline plus a
// single Draw(3, 1, 0, 0).
type trianglePipeline struct {
	device hal.Device

	encoding fstri.Encoding

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

func newTrianglePipeline(device hal.Device, enc fstri.Encoding) *trianglePipeline {
	return &trianglePipeline{device: device, encoding: enc}
}

// ensureReady creates the shader module and render pipeline on first use.
func (p *trianglePipeline) ensureReady() error {
	if p.pipeline != nil {
		return nil
	}
	return p.createPipeline()
}

// createPipeline compiles the encoding's shader and creates the render
// pipeline. Both encodings share one pipeline shape; they differ only in
// shader source and label.
func (p *trianglePipeline) createPipeline() error {
	source, err := shaderSource(p.encoding)
	if err != nil {
		return err
	}

	shader, err := p.createShaderModule(source)
	if err != nil {
		return fmt.Errorf("compile %s shader: %w", p.encoding, err)
	}
	p.shader = shader

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: p.label("pipe_layout"),
		// No bind group layouts: the pass binds no resources.
	})
	if err != nil {
		p.destroy()
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.label("pipeline"),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			// No vertex buffers: positions come from the vertex index.
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			// The two encodings wind opposite ways; culling must stay off
			// or one of them would discard the whole triangle.
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.destroy()
		return fmt.Errorf("create render pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// createShaderModule prefers naga-precompiled SPIR-V and falls back to
// handing the WGSL source to the backend's own compiler.
func (p *trianglePipeline) createShaderModule(source string) (hal.ShaderModule, error) {
	label := p.label("shader")
	if spirv, err := compileToSPIRV(source); err == nil {
		shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  label,
			Source: hal.ShaderSource{SPIRV: spirv},
		})
		if err == nil {
			return shader, nil
		}
		slogger().Debug("fstri-gpu: SPIR-V module rejected, retrying with WGSL source",
			"encoding", p.encoding.String(), "err", err)
	} else {
		slogger().Debug("fstri-gpu: WGSL precompile failed, passing source to backend",
			"encoding", p.encoding.String(), "err", err)
	}
	return p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: source},
	})
}

// RecordDraw records the fullscreen draw into an open render pass.
func (p *trianglePipeline) RecordDraw(rp hal.RenderPassEncoder) {
	rp.SetPipeline(p.pipeline)
	rp.Draw(fstri.VertexCount, 1, 0, 0)
}

// destroy releases pipeline resources in reverse creation order. Safe to
// call repeatedly or on a partially created pipeline.
func (p *trianglePipeline) destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

func (p *trianglePipeline) label(suffix string) string {
	return "fullscreen_" + p.encoding.String() + "_" + suffix
}
