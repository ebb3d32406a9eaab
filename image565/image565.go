// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image565 implements 16 bits per pixel RGB565 2D graphics.
//
// It is compatible with package image/draw. It is the canvas format of small
// microcontroller graphics libraries: 5 bits of red, 6 bits of green, 5 bits
// of blue packed in an uint16.
package image565

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// Color is a RGB565 color, 0bRRRRRGGGGGGBBBBB.
type Color uint16

// RGBA implements color.Color.
//
// Each channel is widened to 16 bits by replicating its bits, so the minimum
// and maximum values map to 0 and 0xFFFF.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r5, g6, b5 := c.Channels()
	r := uint32(r5)<<11 | uint32(r5)<<6 | uint32(r5)<<1 | uint32(r5)>>4
	g := uint32(g6)<<10 | uint32(g6)<<4 | uint32(g6)>>2
	b := uint32(b5)<<11 | uint32(b5)<<6 | uint32(b5)<<1 | uint32(b5)>>4
	return r, g, b, 0xFFFF
}

// Channels returns the raw 5, 6 and 5 bits channels.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 11), uint8(c>>5) & 0x3F, uint8(c) & 0x1F
}

func (c Color) String() string {
	return "Color(0x" + strconv.FormatUint(uint64(c), 16) + ")"
}

// Model is the color Model for RGB565 colors.
var Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertColor(c)
}

// convertColor keeps the top bits of each channel.
func convertColor(c color.Color) Color {
	if t, ok := c.(Color); ok {
		return t
	}
	r, g, b, _ := c.RGBA()
	return Color(r&0xF800 | (g&0xFC00)>>5 | b>>11)
}

// Image is a RGB565 image.
type Image struct {
	// Pix holds one Color per pixel, row by row.
	Pix []Color
	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// New returns an initialized Image, all black.
func New(r image.Rectangle) *Image {
	w := r.Dx()
	return &Image{Pix: make([]Color, w*r.Dy()), Stride: w, Rect: r}
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *Image) At(x, y int) color.Color {
	return i.RGB565At(x, y)
}

// RGB565At is the optimized version of At().
func (i *Image) RGB565At(x, y int) Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return 0
	}
	return i.Pix[i.PixOffset(x, y)]
}

// Opaque scans the entire image and reports whether it is fully opaque.
func (i *Image) Opaque() bool {
	return true
}

// PixOffset returns the index of the element of Pix that corresponds to the
// pixel at (x, y).
func (i *Image) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x - i.Rect.Min.X)
}

// Set implements draw.Image.
func (i *Image) Set(x, y int, c color.Color) {
	i.SetRGB565(x, y, convertColor(c))
}

// SetRGB565 is the optimized version of Set().
func (i *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	i.Pix[i.PixOffset(x, y)] = c
}

// Fill sets every pixel to c.
func (i *Image) Fill(c Color) {
	for n := range i.Pix {
		i.Pix[n] = c
	}
}

var _ draw.Image = &Image{}
