// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ledmatrix is a container for the IS31FL3741 LED matrix driver and
// its supporting packages.
//
// See is31fl3741 for the driver, is31fl3741/is31fl3741test for an in-memory
// chip, and cmd/is31fl3741 for a demo program that runs with or without
// hardware.
package ledmatrix
