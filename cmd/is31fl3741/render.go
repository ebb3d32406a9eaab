// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"image/draw"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/ledmatrix/is31fl3741"
	"github.com/GermanBionicSystems/ledmatrix/screen2d"
	"github.com/GermanBionicSystems/ledmatrix/webpreview"
)

// frame is one rendered image plus the hue used for the rings.
type frame struct {
	img image.Image
	hue uint16
}

// renderer draws scrolling rainbow text.
type renderer struct {
	dc    *gg.Context
	text  string
	width float64
	x     float64
	hue   uint16
}

func newRenderer(text string, size image.Point) *renderer {
	dc := gg.NewContext(size.X, size.Y)
	var face font.Face = basicfont.Face7x13
	if f, err := truetype.Parse(goregular.TTF); err == nil {
		face = truetype.NewFace(f, &truetype.Options{Size: float64(size.Y), Hinting: font.HintingFull})
	}
	dc.SetFontFace(face)
	w, _ := dc.MeasureString(text)
	return &renderer{dc: dc, text: text, width: w, x: float64(size.X)}
}

// next renders the next frame and advances the animation.
func (r *renderer) next() frame {
	r.dc.SetRGB(0, 0, 0)
	r.dc.Clear()
	red, green, blue := is31fl3741.Unpack(is31fl3741.ColorHSV(r.hue, 255, 255))
	r.dc.SetRGB255(int(red), int(green), int(blue))
	h := float64(r.dc.Height())
	r.dc.DrawStringAnchored(r.text, r.x, h/2, 0, 0.35)

	img := image.NewNRGBA(r.dc.Image().Bounds())
	draw.Draw(img, img.Bounds(), r.dc.Image(), image.Point{}, draw.Src)
	f := frame{img: img, hue: r.hue}

	r.x--
	if r.x < -r.width {
		r.x = float64(r.dc.Width())
	}
	r.hue += 256
	return f
}

func (r *renderer) run(ctx context.Context, period time.Duration, frames chan<- frame) error {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frames <- r.next():
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// output owns the device. Only the goroutine calling show touches it.
type output struct {
	buf     *is31fl3741.Buffered
	board   is31fl3741.Board
	matrix  *is31fl3741.Matrix
	glasses *is31fl3741.Glasses

	// pwm reads back the LEDs for the previews.
	pwm     func(led int) byte
	preview *screen2d.Dev
	web     *webpreview.Display
}

func newOutput(buf *is31fl3741.Buffered, board is31fl3741.Board, rot is31fl3741.Rotation) *output {
	o := &output{buf: buf, board: board}
	o.pwm = func(led int) byte { return buf.Buffer()[led] }
	if board.Name == is31fl3741.GlassesBoard.Name {
		o.glasses = is31fl3741.NewGlasses(buf, true)
		o.matrix = o.glasses.Matrix
	} else {
		o.matrix = is31fl3741.NewMatrix(buf, board)
	}
	o.matrix.SetRotation(rot)
	return o
}

// canvasSize returns the size the renderer draws at.
func (o *output) canvasSize() image.Point {
	if o.glasses != nil {
		return o.glasses.Canvas().Bounds().Size()
	}
	return o.matrix.Bounds().Size()
}

func (o *output) show(f frame) error {
	if o.glasses != nil {
		c := o.glasses.Canvas()
		draw.Draw(c, c.Bounds(), f.img, image.Point{}, draw.Src)
		if err := o.glasses.Scale(); err != nil {
			return err
		}
		for n := 0; n < is31fl3741.RingPixels; n++ {
			rgb := is31fl3741.ColorHSV(f.hue+uint16(n*65536/is31fl3741.RingPixels), 255, 255)
			if err := o.glasses.Left.SetPixelColor(n, rgb); err != nil {
				return err
			}
			if err := o.glasses.Right.SetPixelColor(is31fl3741.RingPixels-1-n, rgb); err != nil {
				return err
			}
		}
	} else if err := o.matrix.Draw(o.matrix.Bounds(), f.img, image.Point{}); err != nil {
		return err
	}
	if err := o.buf.Show(); err != nil {
		return err
	}
	if o.preview == nil && o.web == nil {
		return nil
	}
	img := snapshot(o.pwm, o.board)
	if o.preview != nil {
		if err := o.preview.Draw(o.preview.Bounds(), img, image.Point{}); err != nil {
			return err
		}
	}
	if o.web != nil {
		return o.web.Draw(o.web.Bounds(), img, image.Point{})
	}
	return nil
}

func (o *output) halt() error {
	if o.preview != nil {
		_ = o.preview.Halt()
	}
	if o.web != nil {
		_ = o.web.Halt()
	}
	return o.buf.Halt()
}

// snapshot reads back the LEDs as an image in the native orientation of the
// board. Positions without LED are transparent.
func snapshot(pwm func(led int) byte, b is31fl3741.Board) image.Image {
	s := b.Layout.Size()
	img := image.NewNRGBA(image.Rectangle{Max: s})
	for y := 0; y < s.Y; y++ {
		for x := 0; x < s.X; x++ {
			leds, ok := b.Layout.LEDs(x, y)
			if !ok {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = pwm(int(leds[b.Order.R]))
			img.Pix[i+1] = pwm(int(leds[b.Order.G]))
			img.Pix[i+2] = pwm(int(leds[b.Order.B]))
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
