// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"image"
	"strconv"
)

// Rotation is a clockwise software rotation in steps of 90°.
type Rotation uint8

// Supported rotations.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	return strconv.Itoa(int(r%4)*90) + "°"
}

// Size returns the logical size seen by a caller drawing on a surface of
// native size s.
func (r Rotation) Size(s image.Point) image.Point {
	if r&1 == 1 {
		return image.Pt(s.Y, s.X)
	}
	return s
}

// Apply converts a logical coordinate into the native coordinate of a
// surface of native size s. The result may be out of bounds when p is.
func (r Rotation) Apply(p image.Point, s image.Point) image.Point {
	switch r % 4 {
	case Rotate90:
		return image.Pt(s.X-p.Y-1, p.X)
	case Rotate180:
		return image.Pt(s.X-p.X-1, s.Y-p.Y-1)
	case Rotate270:
		return image.Pt(p.Y, s.Y-p.X-1)
	}
	return p
}
