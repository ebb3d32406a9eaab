// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package is31fl3741 controls an IS31FL3741 LED matrix driver over I²C.
//
// The chip drives 351 LEDs, 117 RGB pixels, with an 8 bits duty cycle (PWM)
// and an 8 bits current scaling per LED, plus a global current control.
// Registers are banked in five pages: PWM in pages 0 and 1, scaling in pages
// 2 and 3, function registers in page 4. Dev selects pages transparently and
// skips redundant page changes.
//
// Dev writes each LED as it is set. Buffered keeps a copy of all the PWM
// values in memory and sends them in a few large writes when Show is called,
// which is much faster for animations.
//
// Matrix maps pixel coordinates to LEDs for a given Board: the generic
// breakout, the Lumissil evaluation board, the Adafruit STEMMA QT matrix or
// the Adafruit LED glasses. The glasses also have two 24 pixels rings, see
// Glasses.
//
// # Datasheet
//
// https://www.lumissil.com/assets/pdf/core/IS31FL3741_DS.pdf
//
// # Boards
//
// https://www.adafruit.com/product/5201
//
// https://www.adafruit.com/product/5210
package is31fl3741
