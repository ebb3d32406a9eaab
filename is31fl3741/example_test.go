// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/ledmatrix/is31fl3741"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := is31fl3741.NewI2C(b, &is31fl3741.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize IS31FL3741: %v", err)
	}
	fmt.Printf("device=%s\n", dev)
	if err := dev.SetAllLEDScaling(0xFF); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetGlobalCurrent(0x40); err != nil {
		log.Fatal(err)
	}
	if err := dev.Enable(true); err != nil {
		log.Fatal(err)
	}

	// Draw a diagonal rainbow, one pixel at a time.
	m := is31fl3741.NewMatrix(dev, is31fl3741.QT)
	r := m.Bounds()
	for x := r.Min.X; x < r.Max.X; x++ {
		rgb := is31fl3741.ColorHSV(uint16(x*65536/r.Dx()), 255, 255)
		if err := m.DrawPixel(x, x%r.Dy(), is31fl3741.Color565Packed(rgb)); err != nil {
			log.Fatal(err)
		}
	}
}

func Example_glasses() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := is31fl3741.NewI2C(b, &is31fl3741.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.SetAllLEDScaling(0xFF); err != nil {
		log.Fatal(err)
	}
	if err := dev.Enable(true); err != nil {
		log.Fatal(err)
	}

	// Stage the whole frame in memory then send it at once.
	buf := is31fl3741.NewBuffered(dev)
	g := is31fl3741.NewGlasses(buf, false)
	g.Left.SetBrightness(64)
	g.Right.SetBrightness(64)
	for n := 0; n < g.Left.NumPixels(); n++ {
		rgb := is31fl3741.ColorHSV(uint16(n*65536/g.Left.NumPixels()), 255, 255)
		_ = g.Left.SetPixelColor(n, rgb)
		_ = g.Right.SetPixelColor(n, rgb)
	}
	_ = g.Matrix.FillColor(is31fl3741.Color565(0, 0, 32))
	if err := buf.Show(); err != nil {
		log.Fatal(err)
	}
}
