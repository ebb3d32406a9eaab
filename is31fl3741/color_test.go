// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"testing"
)

func TestExpand565(t *testing.T) {
	for _, tc := range []struct {
		c       uint16
		r, g, b byte
	}{
		{0x0000, 0x00, 0x00, 0x00},
		{0xFFFF, 0xFF, 0xFF, 0xFF},
		{0xF800, 0xFF, 0x00, 0x00},
		{0x07E0, 0x00, 0xFF, 0x00},
		{0x001F, 0x00, 0x00, 0xFF},
		{0x8410, 0x84, 0x82, 0x84},
	} {
		r, g, b := Expand565(tc.c)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("Expand565(%#04x) = %#02x, %#02x, %#02x; want %#02x, %#02x, %#02x", tc.c, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestExpand565_roundTrip(t *testing.T) {
	for c := 0; c < 0x10000; c++ {
		r, g, b := Expand565(uint16(c))
		if got := Color565(r, g, b); got != uint16(c) {
			t.Fatalf("Color565(Expand565(%#04x)) = %#04x", c, got)
		}
	}
	// The low bits replicate the high bits.
	for v := 0; v < 32; v++ {
		r, _, b := Expand565(uint16(v<<11 | v))
		if want := byte(v<<3 | v>>2); r != want || b != want {
			t.Fatalf("5 bits %d expanded to %d, %d; want %d", v, r, b, want)
		}
	}
	for v := 0; v < 64; v++ {
		_, g, _ := Expand565(uint16(v << 5))
		if want := byte(v<<2 | v>>4); g != want {
			t.Fatalf("6 bits %d expanded to %d; want %d", v, g, want)
		}
	}
}

func TestColor565Packed(t *testing.T) {
	for rgb := uint32(0); rgb <= 0xFFFFFF; rgb += 0x010307 {
		if got, want := Color565Packed(rgb), Color565(Unpack(rgb)); got != want {
			t.Fatalf("Color565Packed(%#06x) = %#04x; want %#04x", rgb, got, want)
		}
	}
	if got := Color565Packed(0xFFFFFF); got != 0xFFFF {
		t.Fatalf("white = %#04x", got)
	}
}

func TestColorHSV(t *testing.T) {
	for _, tc := range []struct {
		hue      uint16
		sat, val byte
		want     uint32
	}{
		{0, 255, 255, 0xFF0000},
		{10923, 255, 255, 0xFFFF00},
		{21845, 255, 255, 0x00FF00},
		{43690, 255, 255, 0x0000FF},
		{65535, 255, 255, 0xFF0000},
		{0, 255, 0, 0x000000},
		{43690, 255, 0, 0x000000},
		{0, 0, 255, 0xFFFFFF},
	} {
		if got := ColorHSV(tc.hue, tc.sat, tc.val); got != tc.want {
			t.Errorf("ColorHSV(%d, %d, %d) = %#06x; want %#06x", tc.hue, tc.sat, tc.val, got, tc.want)
		}
	}
}

func TestColorHSV_gray(t *testing.T) {
	for v := 0; v < 256; v++ {
		for _, hue := range []uint16{0, 12345, 40000, 65535} {
			r, g, b := Unpack(ColorHSV(hue, 0, byte(v)))
			if r != byte(v) || g != byte(v) || b != byte(v) {
				t.Fatalf("ColorHSV(%d, 0, %d) = %d, %d, %d", hue, v, r, g, b)
			}
		}
	}
}

func TestScaleBrightness(t *testing.T) {
	for c := 0; c < 256; c++ {
		if got := scaleBrightness(byte(c), 256); got != byte(c) {
			t.Fatalf("full brightness changed %d to %d", c, got)
		}
		if got := scaleBrightness(byte(c), 1); got != 0 {
			t.Fatalf("zero brightness left %d", got)
		}
	}
	if got := scaleBrightness(255, 128); got != 127 {
		t.Fatalf("half brightness = %d", got)
	}
}

func TestGamma(t *testing.T) {
	for _, table := range [][]byte{gammaRB[:], gammaG[:]} {
		if table[0] != 0 || table[len(table)-1] != 255 {
			t.Fatalf("endpoints %d, %d", table[0], table[len(table)-1])
		}
		for i := 1; i < len(table); i++ {
			if table[i] < table[i-1] {
				t.Fatalf("not monotonic at %d", i)
			}
		}
	}
}
