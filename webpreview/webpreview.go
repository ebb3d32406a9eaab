// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package webpreview serves a live picture of an LED matrix over HTTP.
//
// Every pixel is drawn as a round LED dot on a black board, so the preview
// looks like the hardware rather than a tiny bitmap. Clients receive a
// multipart/x-mixed-replace stream, better known as MJPEG, refreshed after
// every Draw. Browsers display it directly in an <img> tag.
//
// PNG is used by default since it is lossless on flat colors. JPEG can be
// selected with Options.Format or the "format" URL parameter.
package webpreview

import (
	"image"
	"image/color"
	"image/draw"
	"net/http"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"periph.io/x/conn/v3/display"
)

// DefaultPitch is the distance in image pixels between two LED dots.
const DefaultPitch = 16

// Options for a Display.
type Options struct {
	// Size is the size of the matrix, in LED pixels.
	Size image.Point
	// Pitch is the distance between two LED dots in the rendered picture.
	// 0 means DefaultPitch.
	Pitch int
	// Format is the image format sent to clients which don't ask for one.
	Format ImageFormat
	// MinInterval is the minimum time between two pictures sent to a client.
	// Frames drawn in between are coalesced. 0 sends every frame.
	MinInterval time.Duration
}

// Display is a display.Drawer whose content is streamed to HTTP clients.
//
// Fully transparent pixels are positions without LED and are not drawn.
type Display struct {
	format   ImageFormat
	pitch    int
	interval time.Duration

	mu      sync.Mutex
	leds    *image.NRGBA
	dc      *gg.Context
	clients map[*client]struct{}
	// encoded caches the current picture per format, reset on Draw.
	encoded map[ImageFormat][]byte
}

// New returns a Display showing an all black matrix.
func New(opts *Options) *Display {
	pitch := opts.Pitch
	if pitch <= 0 {
		pitch = DefaultPitch
	}
	leds := image.NewNRGBA(image.Rectangle{Max: opts.Size})
	draw.Draw(leds, leds.Bounds(), image.Black, image.Point{}, draw.Src)
	d := &Display{
		format:   opts.Format,
		pitch:    pitch,
		interval: opts.MinInterval,
		leds:     leds,
		dc:       gg.NewContext(opts.Size.X*pitch, opts.Size.Y*pitch),
		clients:  map[*client]struct{}{},
		encoded:  map[ImageFormat][]byte{},
	}
	d.renderLocked()
	return d
}

func (d *Display) String() string {
	return "WebPreview"
}

// Halt implements conn.Resource.
//
// It ends all the running client streams. New clients are still served.
func (d *Display) Halt() error {
	d.mu.Lock()
	for c := range d.clients {
		c.stop()
	}
	d.mu.Unlock()
	return nil
}

// ColorModel implements display.Drawer.
func (d *Display) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer. The unit is one LED.
func (d *Display) Bounds() image.Rectangle {
	return d.leds.Bounds()
}

// Draw implements display.Drawer.
func (d *Display) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	draw.Draw(d.leds, dstRect, src, sp, draw.Src)
	d.renderLocked()
	for f := range d.encoded {
		delete(d.encoded, f)
	}
	for c := range d.clients {
		c.notify()
	}
	return nil
}

// Picture returns a copy of the rendered picture.
func (d *Display) Picture() image.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	src := d.dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// offColor is the dot color of a LED that is off, so the grid stays visible.
var offColor = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}

func (d *Display) renderLocked() {
	d.dc.SetRGB(0, 0, 0)
	d.dc.Clear()
	p := float64(d.pitch)
	b := d.leds.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := d.leds.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			if c.R == 0 && c.G == 0 && c.B == 0 {
				c = offColor
			}
			d.dc.SetRGB255(int(c.R), int(c.G), int(c.B))
			d.dc.DrawCircle((float64(x-b.Min.X)+0.5)*p, (float64(y-b.Min.Y)+0.5)*p, 0.4*p)
			d.dc.Fill()
		}
	}
}

var _ display.Drawer = &Display{}
var _ http.Handler = &Display{}
