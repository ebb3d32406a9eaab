// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"image"

	"github.com/GermanBionicSystems/ledmatrix/image565"
)

// CanvasScale is the oversampling factor of the Glasses canvas.
const CanvasScale = 3

// Glasses groups the three surfaces of the Adafruit LED glasses driver: the
// 18x5 matrix and the two rings.
type Glasses struct {
	Matrix *Matrix
	Left   *Ring
	Right  *Ring

	canvas *image565.Image
}

// NewGlasses returns the surfaces of the LED glasses drawing on w, usually a
// Buffered.
//
// When withCanvas is true, a canvas three times the size of the matrix is
// allocated. Draw on it then call Scale for antialiased rendering.
func NewGlasses(w PWMWriter, withCanvas bool) *Glasses {
	g := &Glasses{
		Matrix: NewMatrix(w, GlassesBoard),
		Left:   newRing(w, &leftRingLEDs, GlassesBoard.Order, "left"),
		Right:  newRing(w, &rightRingLEDs, GlassesBoard.Order, "right"),
	}
	if withCanvas {
		g.canvas = image565.New(image.Rect(0, 0, glassesWidth*CanvasScale, glassesHeight*CanvasScale))
	}
	return g
}

// Canvas returns the oversampled canvas, or nil if it was not requested.
func (g *Glasses) Canvas() *image565.Image {
	return g.canvas
}

// Scale downsamples the canvas into the matrix. Each matrix pixel is the
// gamma corrected average of a 3x3 block of the canvas.
//
// The canvas is in the native orientation of the matrix; its rotation is
// ignored. Scale is a no-op without canvas.
func (g *Glasses) Scale() error {
	if g.canvas == nil {
		return nil
	}
	for y := 0; y < glassesHeight; y++ {
		for x := 0; x < glassesWidth; x++ {
			var rSum, gSum, bSum int
			for dy := 0; dy < CanvasScale; dy++ {
				for dx := 0; dx < CanvasScale; dx++ {
					c := g.canvas.RGB565At(x*CanvasScale+dx, y*CanvasScale+dy)
					r, gr, b := c.Channels()
					rSum += int(r)
					gSum += int(gr)
					bSum += int(b)
				}
			}
			if err := g.Matrix.setNative(x, y, gammaRB[rSum], gammaG[gSum], gammaRB[bSum]); err != nil {
				return err
			}
		}
	}
	return nil
}
