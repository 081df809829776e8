// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fstri

import "testing"

func TestNewPass_Defaults(t *testing.T) {
	tests := []struct {
		enc     Encoding
		payload Payload
	}{
		{EncodingBitShift, PayloadClipPosition},
		{EncodingShiftMask, PayloadCoordGradient},
	}

	for _, tt := range tests {
		p := NewPass(tt.enc)
		if p.Encoding != tt.enc {
			t.Errorf("NewPass(%v).Encoding = %v", tt.enc, p.Encoding)
		}
		if p.Payload != tt.payload {
			t.Errorf("NewPass(%v).Payload = %v, want %v", tt.enc, p.Payload, tt.payload)
		}
		if p.ClearColor != V4(0, 0, 0, 1) {
			t.Errorf("NewPass(%v).ClearColor = %v, want opaque black", tt.enc, p.ClearColor)
		}
		if p.Fragment != nil {
			t.Errorf("NewPass(%v).Fragment non-nil", tt.enc)
		}
	}
}

func TestPass_Canonical(t *testing.T) {
	p := NewPass(EncodingBitShift)
	if !p.Canonical() {
		t.Error("default pass should be canonical")
	}

	p.Payload = PayloadCoordGradient
	if p.Canonical() {
		t.Error("cross-paired pass should not be canonical")
	}

	p = NewPass(EncodingShiftMask)
	p.Fragment = func(Fragment) Vec4 { return Vec4{} }
	if p.Canonical() {
		t.Error("pass with custom fragment should not be canonical")
	}
}

func TestPixelTarget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		target  PixelTarget
		wantErr bool
	}{
		{"valid", PixelTarget{Data: make([]uint8, 4*4*4), Width: 4, Height: 4, Stride: 16}, false},
		{"padded stride", PixelTarget{Data: make([]uint8, 32*4), Width: 4, Height: 4, Stride: 32}, false},
		{"zero width", PixelTarget{Data: make([]uint8, 16), Width: 0, Height: 4, Stride: 16}, true},
		{"zero height", PixelTarget{Data: make([]uint8, 16), Width: 4, Height: 0, Stride: 16}, true},
		{"stride too small", PixelTarget{Data: make([]uint8, 64), Width: 4, Height: 4, Stride: 8}, true},
		{"data too short", PixelTarget{Data: make([]uint8, 16), Width: 4, Height: 4, Stride: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
