// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"fmt"
	"image"
	"strings"
)

// NoLED marks a pixel position that has no LED wired to it.
const NoLED uint16 = 0xFFFF

// PWMWriter sets the duty cycle of a single LED.
//
// It is implemented by Dev, which writes to the chip immediately, and by
// Buffered, which stages the value until Show is called.
type PWMWriter interface {
	SetLEDPWM(led int, pwm byte) error
}

// Layout maps a pixel of a board to the LEDs wired to it.
//
// Coordinates are in the board's native orientation, before rotation.
type Layout interface {
	// Size returns the native width and height in pixels.
	Size() image.Point
	// LEDs returns the three LED indices of the pixel in wiring order. ok is
	// false when the position is outside the board or has no LED.
	LEDs(x, y int) (leds [3]uint16, ok bool)
}

// ColorOrder describes which slot of a wired LED triplet drives each color
// channel.
type ColorOrder struct {
	R, G, B uint8
}

// Common color orders, named after the channel found in each slot.
var (
	RGB = ColorOrder{R: 0, G: 1, B: 2}
	RBG = ColorOrder{R: 0, G: 2, B: 1}
	GRB = ColorOrder{R: 1, G: 0, B: 2}
	GBR = ColorOrder{R: 2, G: 0, B: 1}
	BRG = ColorOrder{R: 1, G: 2, B: 0}
	BGR = ColorOrder{R: 2, G: 1, B: 0}
)

// Valid reports whether o is a permutation of the three slots.
func (o ColorOrder) Valid() bool {
	return o.R < 3 && o.G < 3 && o.B < 3 && o.R != o.G && o.R != o.B && o.G != o.B
}

func (o ColorOrder) String() string {
	var s [3]byte
	s[o.R%3] = 'R'
	s[o.G%3] = 'G'
	s[o.B%3] = 'B'
	return string(s[:])
}

// Grid is the row-major layout of the generic breakout: pixel (x, y) is wired
// to LEDs 3*(x+W*y) to 3*(x+W*y)+2.
type Grid struct {
	W, H int
}

// Size implements Layout.
func (g Grid) Size() image.Point {
	return image.Pt(g.W, g.H)
}

// LEDs implements Layout.
func (g Grid) LEDs(x, y int) ([3]uint16, bool) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return [3]uint16{}, false
	}
	return triplet((x + g.W*y) * 3)
}

// EVBLayout is the Lumissil evaluation board, 13x9 pixels. The first ten
// columns use the CS1-CS30 lines of each SW row, the last three columns use
// CS31-CS39.
type EVBLayout struct{}

// Size implements Layout.
func (EVBLayout) Size() image.Point {
	return image.Pt(13, 9)
}

// LEDs implements Layout.
func (EVBLayout) LEDs(x, y int) ([3]uint16, bool) {
	if x < 0 || y < 0 || x >= 13 || y >= 9 {
		return [3]uint16{}, false
	}
	if x > 9 {
		return triplet((x + 80 + y*3) * 3)
	}
	return triplet((x + y*10) * 3)
}

// qtRows maps a display row of the STEMMA QT board to its SW line.
var qtRows = [9]int{8, 5, 4, 3, 2, 1, 0, 7, 6}

// QTLayout is the Adafruit STEMMA QT board, 13x9 pixels.
//
// Rows are wired out of order and every odd column has its triplet reversed
// compared to the even ones.
type QTLayout struct{}

// Size implements Layout.
func (QTLayout) Size() image.Point {
	return image.Pt(13, 9)
}

// LEDs implements Layout.
func (QTLayout) LEDs(x, y int) ([3]uint16, bool) {
	if x < 0 || y < 0 || x >= 13 || y >= 9 {
		return [3]uint16{}, false
	}
	row := qtRows[y]
	var offset int
	switch {
	case x >= 10:
		// CS31-CS39, 9 LEDs per SW line, all in page 1.
		offset = firstPageLEDs + 90 + row*9 + (x-10)*3
	case row <= 5:
		// SW1-SW6 x CS1-CS30, page 0.
		offset = row*30 + x*3
	default:
		// SW7-SW9 x CS1-CS30, page 1.
		offset = firstPageLEDs + (row-6)*30 + x*3
	}
	leds, ok := triplet(offset)
	if x&1 == 1 {
		leds[0], leds[2] = leds[2], leds[0]
	}
	return leds, ok
}

const (
	glassesWidth  = 18
	glassesHeight = 5
)

// GlassesLayout is the matrix part of the LED glasses, 18x5 pixels with the
// corners and the nose bridge cut away. The wiring is irregular so it is
// table driven.
type GlassesLayout struct{}

// Size implements Layout.
func (GlassesLayout) Size() image.Point {
	return image.Pt(glassesWidth, glassesHeight)
}

// LEDs implements Layout.
func (GlassesLayout) LEDs(x, y int) ([3]uint16, bool) {
	if x < 0 || y < 0 || x >= glassesWidth || y >= glassesHeight {
		return [3]uint16{}, false
	}
	leds := glassesLEDs[y*glassesWidth+x]
	return leds, leds[0] != NoLED
}

func triplet(offset int) ([3]uint16, bool) {
	o := uint16(offset)
	return [3]uint16{o, o + 1, o + 2}, true
}

// Board describes a physical product built around the chip.
type Board struct {
	Name   string
	Layout Layout
	Order  ColorOrder
}

func (b Board) String() string {
	s := b.Layout.Size()
	return fmt.Sprintf("%s(%dx%d %s)", b.Name, s.X, s.Y, b.Order)
}

// Known boards.
var (
	// EVB is the Lumissil IS31FL3741 evaluation board.
	EVB = Board{Name: "evb", Layout: EVBLayout{}, Order: BGR}
	// QT is the Adafruit 13x9 PWM RGB LED matrix, STEMMA QT.
	QT = Board{Name: "qt", Layout: QTLayout{}, Order: BGR}
	// GlassesBoard is the matrix part of the Adafruit LED glasses driver.
	GlassesBoard = Board{Name: "glasses", Layout: GlassesLayout{}, Order: RBG}
)

// Breakout returns the generic breakout board with a w by h row-major grid.
func Breakout(w, h int) (Board, error) {
	if w <= 0 || h <= 0 || w*h*3 > NumLEDs {
		return Board{}, fmt.Errorf("is31fl3741: invalid breakout size %dx%d", w, h)
	}
	return Board{Name: "breakout", Layout: Grid{W: w, H: h}, Order: BGR}, nil
}

// BoardByName returns a known board. "breakout" is the default 9x13 grid.
func BoardByName(name string) (Board, error) {
	switch strings.ToLower(name) {
	case "evb":
		return EVB, nil
	case "qt":
		return QT, nil
	case "glasses":
		return GlassesBoard, nil
	case "breakout", "":
		return Breakout(9, 13)
	}
	return Board{}, fmt.Errorf("is31fl3741: unknown board %q", name)
}
