// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/fstri"
	"github.com/gogpu/naga"
)

// Embedded WGSL shader sources, one per vertex encoding. Each shader is a
// complete vertex+fragment pair: the vertex stage expands the vertex index
// into the overscan triangle and the fragment stage writes the payload
// paired with that encoding.

//go:embed shaders/fullscreen_bitshift.wgsl
var bitshiftShaderSource string

//go:embed shaders/fullscreen_shiftmask.wgsl
var shiftmaskShaderSource string

// shaderSource returns the WGSL source for the given vertex encoding.
func shaderSource(enc fstri.Encoding) (string, error) {
	switch enc {
	case fstri.EncodingBitShift:
		if bitshiftShaderSource == "" {
			return "", fmt.Errorf("fullscreen_bitshift shader source is empty")
		}
		return bitshiftShaderSource, nil
	case fstri.EncodingShiftMask:
		if shiftmaskShaderSource == "" {
			return "", fmt.Errorf("fullscreen_shiftmask shader source is empty")
		}
		return shiftmaskShaderSource, nil
	default:
		return "", fmt.Errorf("no shader for encoding %v", enc)
	}
}

// compileToSPIRV compiles WGSL source to SPIR-V words for backends that
// prefer precompiled shaders. SPIR-V is little-endian 32-bit words.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}
