// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image565_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GermanBionicSystems/ledmatrix/image565"
)

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := image565.Color(0xFFFF).RGBA()
	assert.Equal(t, [4]uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, [4]uint32{r, g, b, a})
	r, g, b, a = image565.Color(0).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0, 0xFFFF}, [4]uint32{r, g, b, a})
	r, g, b, _ = image565.Color(0xF800).RGBA()
	assert.Equal(t, [3]uint32{0xFFFF, 0, 0}, [3]uint32{r, g, b})
}

func TestColor_Channels(t *testing.T) {
	r, g, b := image565.Color(0x8410).Channels()
	assert.Equal(t, uint8(16), r)
	assert.Equal(t, uint8(32), g)
	assert.Equal(t, uint8(16), b)
	assert.Equal(t, "Color(0x8410)", image565.Color(0x8410).String())
}

func TestModel(t *testing.T) {
	for _, tc := range []struct {
		in   color.Color
		want image565.Color
	}{
		{color.White, 0xFFFF},
		{color.Black, 0},
		{color.NRGBA{R: 255, A: 255}, 0xF800},
		{color.NRGBA{G: 255, A: 255}, 0x07E0},
		{color.NRGBA{B: 255, A: 255}, 0x001F},
		{image565.Color(0x1234), 0x1234},
	} {
		assert.Equal(t, tc.want, image565.Model.Convert(tc.in), "%v", tc.in)
	}
	// Every color survives a trip through RGBA.
	for c := 0; c < 0x10000; c += 7 {
		assert.Equal(t, image565.Color(c), image565.Model.Convert(color.RGBA64Model.Convert(image565.Color(c))))
	}
}

func TestImage(t *testing.T) {
	img := image565.New(image.Rect(2, 3, 6, 5))
	assert.Equal(t, image.Rect(2, 3, 6, 5), img.Bounds())
	assert.Len(t, img.Pix, 8)
	assert.True(t, img.Opaque())
	assert.Equal(t, image565.Model, img.ColorModel())

	img.Set(2, 3, color.White)
	img.SetRGB565(5, 4, 0x07E0)
	assert.Equal(t, image565.Color(0xFFFF), img.At(2, 3))
	assert.Equal(t, image565.Color(0x07E0), img.RGB565At(5, 4))
	assert.Equal(t, 7, img.PixOffset(5, 4))

	// Out of bounds.
	img.SetRGB565(0, 0, 0xFFFF)
	img.Set(6, 5, color.White)
	assert.Equal(t, image565.Color(0), img.RGB565At(0, 0))
	assert.Equal(t, image565.Color(0), img.At(6, 5))

	img.Fill(0x001F)
	for _, c := range img.Pix {
		assert.Equal(t, image565.Color(0x001F), c)
	}
}

func TestImage_draw(t *testing.T) {
	img := image565.New(image.Rect(0, 0, 4, 4))
	draw.Draw(img, image.Rect(1, 1, 3, 3), &image.Uniform{C: color.NRGBA{R: 255, A: 255}}, image.Point{}, draw.Src)
	assert.Equal(t, image565.Color(0), img.RGB565At(0, 0))
	assert.Equal(t, image565.Color(0xF800), img.RGB565At(1, 1))
	assert.Equal(t, image565.Color(0xF800), img.RGB565At(2, 2))
	assert.Equal(t, image565.Color(0), img.RGB565At(3, 3))
}
