// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder is a PWMWriter keeping the last value written to each LED.
type recorder struct {
	pwm   map[int]byte
	calls int
	err   error
}

func newRecorder() *recorder {
	return &recorder{pwm: map[int]byte{}}
}

func (r *recorder) SetLEDPWM(led int, pwm byte) error {
	if r.err != nil {
		return r.err
	}
	r.calls++
	r.pwm[led] = pwm
	return nil
}

func TestMatrix_drawPixel(t *testing.T) {
	rec := newRecorder()
	m := NewMatrix(rec, QT)
	if err := m.DrawPixel(0, 0, 0xF800); err != nil {
		t.Fatal(err)
	}
	// (0, 0) is wired to 240-242 and the board is BGR.
	want := map[int]byte{240: 0, 241: 0, 242: 0xFF}
	if diff := cmp.Diff(want, rec.pwm); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	// Odd columns have their triplet reversed, so red lands on the first LED.
	if err := m.DrawPixel(1, 0, 0xF800); err != nil {
		t.Fatal(err)
	}
	if rec.pwm[243] != 0xFF || rec.pwm[245] != 0 {
		t.Fatalf("odd column: %v", rec.pwm)
	}
}

func TestMatrix_outOfBounds(t *testing.T) {
	rec := newRecorder()
	m := NewMatrix(rec, QT)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {13, 0}, {0, 9}, {100, 100}} {
		if err := m.DrawPixel(p.X, p.Y, 0xFFFF); err != nil {
			t.Fatal(err)
		}
	}
	g := NewMatrix(rec, GlassesBoard)
	if err := g.DrawPixel(0, 0, 0xFFFF); err != nil {
		t.Fatal(err)
	}
	if rec.calls != 0 {
		t.Fatalf("%d writes; want none", rec.calls)
	}
}

func TestMatrix_rotation(t *testing.T) {
	rec := newRecorder()
	m := NewMatrix(rec, QT)
	m.SetRotation(Rotate90)
	if b := m.Bounds(); b != image.Rect(0, 0, 9, 13) {
		t.Fatalf("Bounds() = %v", b)
	}
	// Logical (0, 0) is native (12, 0), LEDs 348-350.
	if err := m.SetPixelRGB(0, 0, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	want := map[int]byte{348: 3, 349: 2, 350: 1}
	if diff := cmp.Diff(want, rec.pwm); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	// Out of the rotated bounds.
	if err := m.SetPixelRGB(9, 0, 1, 2, 3); err != nil || rec.calls != 3 {
		t.Fatalf("%v, %d writes", err, rec.calls)
	}
	m.SetRotation(6)
	if m.Rotation() != Rotate180 {
		t.Fatalf("Rotation() = %s", m.Rotation())
	}
}

func TestMatrix_draw(t *testing.T) {
	rec := newRecorder()
	m := NewMatrix(rec, mustBreakout(t, 9, 13))
	src := &image.Uniform{C: color.NRGBA{R: 10, G: 20, B: 30, A: 255}}
	if err := m.Draw(m.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if len(rec.pwm) != NumLEDs {
		t.Fatalf("%d LEDs written", len(rec.pwm))
	}
	for led, v := range rec.pwm {
		want := [3]byte{30, 20, 10}[led%3]
		if v != want {
			t.Fatalf("LED %d = %d; want %d", led, v, want)
		}
	}

	rec = newRecorder()
	m = NewMatrix(rec, mustBreakout(t, 9, 13))
	if err := m.Draw(image.Rect(7, 11, 20, 20), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if rec.calls != 4*3 {
		t.Fatalf("%d writes; want 12", rec.calls)
	}
}

func TestMatrix_fillColor(t *testing.T) {
	rec := newRecorder()
	m := NewMatrix(rec, GlassesBoard)
	if err := m.FillColor(0xFFFF); err != nil {
		t.Fatal(err)
	}
	if len(rec.pwm) != 84*3 {
		t.Fatalf("%d LEDs written", len(rec.pwm))
	}
	// Ring only pixel.
	for _, led := range leftRingLEDs[4] {
		if _, ok := rec.pwm[int(led)]; ok {
			t.Fatalf("ring LED %d written", led)
		}
	}
	if err := m.Halt(); err != nil {
		t.Fatal(err)
	}
	for led, v := range rec.pwm {
		if v != 0 {
			t.Fatalf("LED %d = %d after Halt", led, v)
		}
	}
}

func TestMatrix_error(t *testing.T) {
	rec := newRecorder()
	rec.err = errors.New("bus")
	m := NewMatrix(rec, QT)
	if err := m.DrawPixel(0, 0, 0xFFFF); err != rec.err {
		t.Fatalf("DrawPixel() = %v", err)
	}
	if err := m.FillColor(0xFFFF); err != rec.err {
		t.Fatalf("FillColor() = %v", err)
	}
}

func TestMatrix_dev(t *testing.T) {
	// Drawing directly on the chip.
	chip := newChip(t)
	m := NewMatrix(chip.dev, QT)
	if err := m.DrawPixel(12, 8, 0x001F); err != nil {
		t.Fatal(err)
	}
	// QT (12, 8) is SW7 x CS37-39: LEDs 330-332, blue in the first slot.
	if chip.PWM(330) != 0xFF || chip.PWM(331) != 0 || chip.PWM(332) != 0 {
		t.Fatalf("got %d %d %d", chip.PWM(330), chip.PWM(331), chip.PWM(332))
	}
}

func TestNewMatrix_invalidOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewMatrix(newRecorder(), Board{Name: "bad", Layout: Grid{W: 1, H: 1}, Order: ColorOrder{0, 0, 0}})
}
