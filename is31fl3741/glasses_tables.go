// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

// glassesLEDs holds the wired LED triplet of every matrix cell of the LED
// glasses, row by row. Cells cut away by the frame shape hold NoLED.
var glassesLEDs = [glassesWidth * glassesHeight][3]uint16{
	// Row 0.
	{NoLED, NoLED, NoLED}, {90, 91, 92}, {240, 241, 242}, {123, 124, 125}, {6, 7, 8}, {156, 157, 158},
	{39, 40, 41}, {189, 190, 191}, {72, 73, 74}, {192, 193, 194}, {45, 46, 47}, {195, 196, 197},
	{78, 79, 80}, {228, 229, 230}, {111, 112, 113}, {261, 262, 263}, {144, 145, 146}, {NoLED, NoLED, NoLED},
	// Row 1.
	{0, 1, 2}, {120, 121, 122}, {3, 4, 5}, {153, 154, 155}, {36, 37, 38}, {186, 187, 188},
	{69, 70, 71}, {219, 220, 221}, {102, 103, 104}, {222, 223, 224}, {75, 76, 77}, {225, 226, 227},
	{108, 109, 110}, {258, 259, 260}, {141, 142, 143}, {24, 25, 26}, {174, 175, 176}, {27, 28, 29},
	// Row 2.
	{30, 31, 32}, {150, 151, 152}, {33, 34, 35}, {183, 184, 185}, {66, 67, 68}, {216, 217, 218},
	{99, 100, 101}, {249, 250, 251}, {132, 133, 134}, {252, 253, 254}, {105, 106, 107}, {255, 256, 257},
	{138, 139, 140}, {21, 22, 23}, {171, 172, 173}, {54, 55, 56}, {204, 205, 206}, {57, 58, 59},
	// Row 3.
	{60, 61, 62}, {180, 181, 182}, {63, 64, 65}, {213, 214, 215}, {96, 97, 98}, {246, 247, 248},
	{129, 130, 131}, {12, 13, 14}, {162, 163, 164}, {15, 16, 17}, {135, 136, 137}, {18, 19, 20},
	{168, 169, 170}, {51, 52, 53}, {201, 202, 203}, {84, 85, 86}, {234, 235, 236}, {87, 88, 89},
	// Row 4.
	{NoLED, NoLED, NoLED}, {210, 211, 212}, {93, 94, 95}, {243, 244, 245}, {126, 127, 128}, {9, 10, 11},
	{159, 160, 161}, {42, 43, 44}, {NoLED, NoLED, NoLED}, {NoLED, NoLED, NoLED}, {165, 166, 167}, {48, 49, 50},
	{198, 199, 200}, {81, 82, 83}, {231, 232, 233}, {114, 115, 116}, {264, 265, 266}, {NoLED, NoLED, NoLED},
}

// leftRingLEDs lists the 24 pixels of the left eye ring clockwise from the
// top. Positions 0-3 and 12-15 are the same LEDs as matrix cells (3..6, 0)
// and (6..3, 4).
var leftRingLEDs = [RingPixels][3]uint16{
	{123, 124, 125}, {6, 7, 8}, {156, 157, 158}, {39, 40, 41}, {117, 118, 119}, {147, 148, 149},
	{177, 178, 179}, {207, 208, 209}, {237, 238, 239}, {267, 268, 269}, {270, 271, 272}, {279, 280, 281},
	{159, 160, 161}, {9, 10, 11}, {126, 127, 128}, {243, 244, 245}, {288, 289, 290}, {297, 298, 299},
	{306, 307, 308}, {315, 316, 317}, {324, 325, 326}, {333, 334, 335}, {342, 343, 344}, {273, 274, 275},
}

// rightRingLEDs lists the 24 pixels of the right eye ring clockwise from the
// top. Positions 0-3 and 12-15 are the same LEDs as matrix cells (11..14, 0)
// and (14..11, 4).
var rightRingLEDs = [RingPixels][3]uint16{
	{195, 196, 197}, {78, 79, 80}, {228, 229, 230}, {111, 112, 113}, {282, 283, 284}, {291, 292, 293},
	{300, 301, 302}, {309, 310, 311}, {318, 319, 320}, {327, 328, 329}, {336, 337, 338}, {345, 346, 347},
	{231, 232, 233}, {81, 82, 83}, {198, 199, 200}, {48, 49, 50}, {276, 277, 278}, {285, 286, 287},
	{294, 295, 296}, {303, 304, 305}, {312, 313, 314}, {321, 322, 323}, {330, 331, 332}, {339, 340, 341},
}
