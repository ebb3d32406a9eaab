// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

// Expand565 splits a RGB565 color into 8 bits channels.
//
// The top bits of each channel are replicated into the low bits, so 0x1F
// expands to 0xFF and not 0xF8.
func Expand565(c uint16) (r, g, b byte) {
	r = byte(c>>8) & 0xF8
	r |= r >> 5
	g = byte(c>>3) & 0xFC
	g |= g >> 6
	b = byte(c << 3)
	b |= b >> 5
	return r, g, b
}

// Color565 packs 8 bits channels into RGB565, dropping the low bits.
func Color565(r, g, b byte) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)
}

// Color565Packed converts a 0x00RRGGBB color into RGB565.
func Color565Packed(rgb uint32) uint16 {
	return uint16((rgb>>8)&0xF800 | (rgb>>5)&0x07E0 | (rgb>>3)&0x001F)
}

// Unpack returns the channels of a 0x00RRGGBB color.
func Unpack(rgb uint32) (r, g, b byte) {
	return byte(rgb >> 16), byte(rgb >> 8), byte(rgb)
}

// ColorHSV converts hue, saturation and value into a 0x00RRGGBB color.
//
// hue covers the whole color wheel over 0-65535, red at 0, green near
// 21845 and blue near 43690. Internally the wheel has 1530 steps, 255 per
// sixth, so the boundaries are not repeated.
func ColorHSV(hue uint16, sat, val byte) uint32 {
	h := (uint32(hue)*1530 + 32768) / 65536
	var r, g, b uint32
	switch {
	case h < 255:
		// Red to yellow.
		r, g, b = 255, h, 0
	case h < 510:
		// Yellow to green.
		r, g, b = 510-h, 255, 0
	case h < 765:
		// Green to cyan.
		r, g, b = 0, 255, h-510
	case h < 1020:
		// Cyan to blue.
		r, g, b = 0, 1020-h, 255
	case h < 1275:
		// Blue to magenta.
		r, g, b = h-1020, 0, 255
	case h < 1530:
		// Magenta to red.
		r, g, b = 255, 0, 1530-h
	default:
		// Last half step of red.
		r, g, b = 255, 0, 0
	}
	// 1-256 scales permit >>8 instead of /255.
	v1 := uint32(val) + 1
	s1 := uint32(sat) + 1
	s2 := 255 - uint32(sat)
	return (((r*s1)>>8+s2)*v1&0xFF00)<<8 |
		((g*s1)>>8+s2)*v1&0xFF00 |
		((b*s1)>>8+s2)*v1>>8
}

// scaleBrightness scales a channel by a brightness in the 1-256 range.
func scaleBrightness(c byte, brightness uint16) byte {
	return byte(uint16(c) * brightness >> 8)
}
