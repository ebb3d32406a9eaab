// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/GermanBionicSystems/ledmatrix/is31fl3741"
	"github.com/GermanBionicSystems/ledmatrix/is31fl3741/is31fl3741test"
	"github.com/GermanBionicSystems/ledmatrix/webpreview"
)

func newTestOutput(t *testing.T, board is31fl3741.Board, rot is31fl3741.Rotation) (*output, *is31fl3741test.Chip) {
	chip := &is31fl3741test.Chip{MaxTransfer: 32}
	dev, err := is31fl3741.NewI2C(chip, &is31fl3741.Opts{MaxTransfer: 32})
	if err != nil {
		t.Fatal(err)
	}
	o := newOutput(is31fl3741.NewBuffered(dev), board, rot)
	o.pwm = chip.PWM
	return o, chip
}

func uniform(s image.Point, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rectangle{Max: s})
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestOutput_matrix(t *testing.T) {
	o, chip := newTestOutput(t, is31fl3741.QT, is31fl3741.Rotate90)
	if s := o.canvasSize(); s != image.Pt(9, 13) {
		t.Fatalf("canvasSize() = %v", s)
	}
	want := color.NRGBA{R: 255, G: 0, B: 64, A: 255}
	if err := o.show(frame{img: uniform(o.canvasSize(), want)}); err != nil {
		t.Fatal(err)
	}
	snap := snapshot(chip.PWM, is31fl3741.QT)
	for y := 0; y < 9; y++ {
		for x := 0; x < 13; x++ {
			if got := snap.At(x, y); got != want {
				t.Fatalf("(%d, %d) = %v; want %v", x, y, got, want)
			}
		}
	}
	if err := o.halt(); err != nil {
		t.Fatal(err)
	}
	if chip.PWM(0) != 0 || chip.Enabled() {
		t.Fatal("halt did not clear the chip")
	}
}

func TestOutput_glasses(t *testing.T) {
	o, chip := newTestOutput(t, is31fl3741.GlassesBoard, is31fl3741.Rotate0)
	if s := o.canvasSize(); s != image.Pt(54, 15) {
		t.Fatalf("canvasSize() = %v", s)
	}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if err := o.show(frame{img: uniform(o.canvasSize(), white)}); err != nil {
		t.Fatal(err)
	}
	snap := snapshot(chip.PWM, is31fl3741.GlassesBoard)
	// Cells not shared with the rings.
	for _, p := range []image.Point{{0, 1}, {17, 3}, {8, 2}, {1, 0}} {
		if got := snap.At(p.X, p.Y); got != white {
			t.Fatalf("%v = %v", p, got)
		}
	}
	// Missing cells stay transparent.
	if got := snap.At(0, 0); got != (color.NRGBA{}) {
		t.Fatalf("(0, 0) = %v", got)
	}
	// The top of the left ring is red with hue 0.
	if got := snap.At(3, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("(3, 0) = %v", got)
	}
}

func TestRenderer(t *testing.T) {
	r := newRenderer("Hi", image.Pt(13, 9))
	f := r.next()
	if b := f.img.Bounds(); b != image.Rect(0, 0, 13, 9) {
		t.Fatalf("Bounds() = %v", b)
	}
	if f.hue != 0 || r.hue != 256 {
		t.Fatalf("hue %d then %d", f.hue, r.hue)
	}
	// The text starts off screen on the right.
	if r.x != 12 {
		t.Fatalf("x = %v", r.x)
	}
}

func TestRenderer_run(t *testing.T) {
	r := newRenderer("Hi", image.Pt(13, 9))
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan frame)
	done := make(chan error)
	go func() {
		done <- r.run(ctx, time.Millisecond, frames)
	}()
	for i := 0; i < 3; i++ {
		<-frames
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("run() = %v", err)
	}
}

func TestOutput_web(t *testing.T) {
	o, _ := newTestOutput(t, is31fl3741.EVB, is31fl3741.Rotate0)
	// Read back from the frame buffer, as on real hardware.
	o.pwm = func(led int) byte { return o.buf.Buffer()[led] }
	o.web = webpreview.New(&webpreview.Options{Size: image.Pt(13, 9), Pitch: 8})
	green := color.NRGBA{G: 255, A: 255}
	if err := o.show(frame{img: uniform(o.canvasSize(), green)}); err != nil {
		t.Fatal(err)
	}
	got := color.RGBAModel.Convert(o.web.Picture().At(12*8+4, 8*8+4))
	if got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("dot = %v", got)
	}
	if err := o.halt(); err != nil {
		t.Fatal(err)
	}
}
