// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import "fmt"

// RingPixels is the number of pixels of a glasses ring.
const RingPixels = 24

// Ring is one of the two 24 pixels rings of the LED glasses, addressed like a
// NeoPixel ring.
//
// Some ring pixels are the same LEDs as matrix pixels, see the ring tables.
type Ring struct {
	w     PWMWriter
	leds  *[RingPixels][3]uint16
	order ColorOrder
	name  string
	// brightness is kept in 1-256 so 255 is full scale after >>8.
	brightness uint16
}

func newRing(w PWMWriter, leds *[RingPixels][3]uint16, order ColorOrder, name string) *Ring {
	return &Ring{w: w, leds: leds, order: order, name: name, brightness: 256}
}

func (r *Ring) String() string {
	return fmt.Sprintf("Ring{%s, %d}", r.name, r.brightness-1)
}

// NumPixels returns the number of pixels in the ring.
func (r *Ring) NumPixels() int {
	return RingPixels
}

// SetBrightness sets the brightness applied to colors set afterward, from 0
// (off) to 255 (unchanged).
//
// It is a mathematical scale and is independent of the LED scaling
// registers, which the matrix shares with the rings.
func (r *Ring) SetBrightness(b byte) {
	r.brightness = uint16(b) + 1
}

// Brightness returns the value passed to SetBrightness.
func (r *Ring) Brightness() byte {
	return byte(r.brightness - 1)
}

// SetPixelColor sets pixel n, clockwise from the top, to a 0x00RRGGBB color.
// Out of range positions are ignored.
func (r *Ring) SetPixelColor(n int, rgb uint32) error {
	if n < 0 || n >= RingPixels {
		return nil
	}
	red, green, blue := Unpack(rgb)
	leds := r.leds[n]
	if err := r.w.SetLEDPWM(int(leds[r.order.R]), scaleBrightness(red, r.brightness)); err != nil {
		return err
	}
	if err := r.w.SetLEDPWM(int(leds[r.order.G]), scaleBrightness(green, r.brightness)); err != nil {
		return err
	}
	return r.w.SetLEDPWM(int(leds[r.order.B]), scaleBrightness(blue, r.brightness))
}

// Fill sets every pixel of the ring to a 0x00RRGGBB color.
func (r *Ring) Fill(rgb uint32) error {
	for n := 0; n < RingPixels; n++ {
		if err := r.SetPixelColor(n, rgb); err != nil {
			return err
		}
	}
	return nil
}
