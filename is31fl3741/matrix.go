// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
)

// Matrix is a pixel addressable RGB surface on top of a board layout.
//
// It writes through a PWMWriter, so it draws immediately on a Dev and into
// the frame buffer on a Buffered. The writer must outlive the Matrix.
type Matrix struct {
	w     PWMWriter
	board Board
	size  image.Point
	rot   Rotation
}

// NewMatrix returns a Matrix drawing on w with the wiring of b.
func NewMatrix(w PWMWriter, b Board) *Matrix {
	if !b.Order.Valid() {
		panic("is31fl3741: invalid color order")
	}
	return &Matrix{w: w, board: b, size: b.Layout.Size()}
}

func (m *Matrix) String() string {
	return "Matrix{" + m.board.String() + ", " + m.rot.String() + "}"
}

// Board returns the board the matrix was created with.
func (m *Matrix) Board() Board {
	return m.board
}

// SetRotation sets the software rotation applied to coordinates.
func (m *Matrix) SetRotation(r Rotation) {
	m.rot = r % 4
}

// Rotation returns the current software rotation.
func (m *Matrix) Rotation() Rotation {
	return m.rot
}

// ColorModel implements display.Drawer.
func (m *Matrix) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer. It accounts for rotation.
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rectangle{Max: m.rot.Size(m.size)}
}

// DrawPixel sets a pixel to a RGB565 color.
//
// Coordinates outside the surface, or positions without LEDs, are ignored.
func (m *Matrix) DrawPixel(x, y int, c uint16) error {
	r, g, b := Expand565(c)
	return m.SetPixelRGB(x, y, r, g, b)
}

// SetPixelRGB sets a pixel to 8 bits channel values.
func (m *Matrix) SetPixelRGB(x, y int, r, g, b byte) error {
	p := m.rot.Apply(image.Pt(x, y), m.size)
	return m.setNative(p.X, p.Y, r, g, b)
}

// setNative writes a pixel in native coordinates.
func (m *Matrix) setNative(x, y int, r, g, b byte) error {
	leds, ok := m.board.Layout.LEDs(x, y)
	if !ok {
		return nil
	}
	o := m.board.Order
	if err := m.w.SetLEDPWM(int(leds[o.R]), r); err != nil {
		return err
	}
	if err := m.w.SetLEDPWM(int(leds[o.G]), g); err != nil {
		return err
	}
	return m.w.SetLEDPWM(int(leds[o.B]), b)
}

// FillColor sets every pixel of the matrix to a RGB565 color.
//
// Only the LEDs wired to the matrix are touched.
func (m *Matrix) FillColor(c uint16) error {
	r, g, b := Expand565(c)
	for y := 0; y < m.size.Y; y++ {
		for x := 0; x < m.size.X; x++ {
			if err := m.setNative(x, y, r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw implements display.Drawer.
//
// On a Dev every pixel is a bus write, prefer a Buffered for full frames.
func (m *Matrix) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	r := dstRect.Intersect(m.Bounds())
	delta := sp.Sub(dstRect.Min)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x+delta.X, y+delta.Y)).(color.NRGBA)
			if err := m.SetPixelRGB(x, y, c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return nil
}

// Halt implements conn.Resource. It turns off the matrix pixels.
func (m *Matrix) Halt() error {
	return m.FillColor(0)
}

var _ display.Drawer = &Matrix{}
