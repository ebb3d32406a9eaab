// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"fmt"
)

// Buffered stages the PWM value of every LED in memory and sends them to the
// chip only when Show is called.
//
// A full frame is sent in as few I²C writes as the host allows, which is
// much faster than one write per LED.
type Buffered struct {
	dev *Dev
	// buf[0] is scratch space so a register address can be placed right in
	// front of any run of LED values. LED n is at buf[n+1].
	buf [NumLEDs + 1]byte
}

// NewBuffered returns a zeroed frame buffer for an initialized Dev.
func NewBuffered(d *Dev) *Buffered {
	return &Buffered{dev: d}
}

func (b *Buffered) String() string {
	return fmt.Sprintf("Buffered{%s}", b.dev)
}

// Dev returns the underlying device, for register level access.
func (b *Buffered) Dev() *Dev {
	return b.dev
}

// Buffer returns the staged PWM values, one byte per LED. It can be modified
// directly.
func (b *Buffered) Buffer() []byte {
	return b.buf[1:]
}

// SetLEDPWM stages the duty cycle of a single LED.
func (b *Buffered) SetLEDPWM(led int, pwm byte) error {
	if led < 0 || led >= NumLEDs {
		return fmt.Errorf("%w: %d", ErrInvalidLED, led)
	}
	b.buf[led+1] = pwm
	return nil
}

// Fill stages the same duty cycle for every LED.
func (b *Buffered) Fill(pwm byte) {
	for i := range b.Buffer() {
		b.buf[i+1] = pwm
	}
}

// Halt implements conn.Resource. It clears the frame and shuts the chip down.
func (b *Buffered) Halt() error {
	b.Fill(0)
	if err := b.Show(); err != nil {
		return err
	}
	return b.dev.Halt()
}

// Show sends the whole frame to the chip.
//
// Each write reuses the byte just before its payload to carry the register
// address, then restores it, so no transfer buffer is allocated. On error
// the chip is left with a partially updated frame; calling Show again is
// safe.
func (b *Buffered) Show() error {
	chunk := NumLEDs
	if m := b.dev.maxTransfer; m > 0 {
		chunk = m - 1
	}
	if err := b.showPage(byte(PWM), 0, firstPageLEDs, chunk); err != nil {
		return err
	}
	return b.showPage(byte(PWM)+1, firstPageLEDs, NumLEDs, chunk)
}

// showPage writes LEDs [start, end) to page, the first LED being register 0.
func (b *Buffered) showPage(page byte, start, end, chunk int) error {
	if err := b.dev.selectPage(page); err != nil {
		return err
	}
	for led := start; led < end; led += chunk {
		n := min(chunk, end-led)
		// The payload is buf[led+1:led+1+n]; buf[led] is the slot in front.
		saved := b.buf[led]
		b.buf[led] = byte(led - start)
		err := b.dev.tx(b.buf[led : led+1+n])
		b.buf[led] = saved
		if err != nil {
			return err
		}
	}
	return nil
}

var _ PWMWriter = &Buffered{}
