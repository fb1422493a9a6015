// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ht16k33

// Glyph is the segment bitmask for one 14-segment display cell. The low
// byte holds the outer segments and the two halves of the middle bar, the
// high byte holds the diagonal/vertical inner segments and the decimal
// point. The two bytes are written to the display RAM low byte first.
type Glyph uint16

// Segment layout of one cell. A-F are the outer segments as on a classic
// 7-segment digit, G1/G2 are the left and right halves of the middle bar,
// H-N are the inner diagonals and verticals:
//
//	 ----A----
//	| \  |  / |
//	F  H J K  B
//	|   \|/   |
//	 -G1- -G2-
//	|   /|\   |
//	E  L M N  C
//	| /  |  \ |
//	 ----D----   DP
const (
	segA Glyph = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG1
	segG2
	segH // top left diagonal
	segJ // top center vertical
	segK // top right diagonal
	segL // bottom left diagonal
	segM // bottom center vertical
	segN // bottom right diagonal
	// DecimalPoint is the decimal point segment to the lower right of the
	// cell. OR it with a Glyph, or use WithDecimalPoint.
	DecimalPoint
)

// glyphs is the character set of the driver: digits, percent, space and
// the letters A-Z in both cases. Characters without an entry render blank.
var glyphs = map[rune]Glyph{
	' ': 0,
	'%': segC | segF | segK | segL,
	'0': segA | segB | segC | segD | segE | segF | segK | segL,
	'1': segB | segC,
	'2': segA | segB | segD | segE | segG1 | segG2,
	'3': segA | segB | segC | segD | segG2,
	'4': segB | segC | segF | segG1 | segG2,
	'5': segA | segD | segF | segG1 | segN,
	'6': segA | segC | segD | segE | segF | segG1 | segG2,
	'7': segA | segB | segC,
	'8': segA | segB | segC | segD | segE | segF | segG1 | segG2,
	'9': segA | segB | segC | segD | segF | segG1 | segG2,
	'A': segA | segB | segC | segE | segF | segG1 | segG2,
	'B': segA | segB | segC | segD | segG2 | segJ | segM,
	'C': segA | segD | segE | segF,
	'D': segA | segB | segC | segD | segJ | segM,
	'E': segA | segD | segE | segF | segG1 | segG2,
	'F': segA | segE | segF | segG1,
	'G': segA | segC | segD | segE | segF | segG2,
	'H': segB | segC | segE | segF | segG1 | segG2,
	'I': segA | segD | segJ | segM,
	'J': segB | segC | segD | segE,
	'K': segE | segF | segG1 | segK | segN,
	'L': segD | segE | segF,
	'M': segB | segC | segE | segF | segH | segK,
	'N': segB | segC | segE | segF | segH | segN,
	'O': segA | segB | segC | segD | segE | segF,
	'P': segA | segB | segE | segF | segG1 | segG2,
	'Q': segA | segB | segC | segD | segE | segF | segN,
	'R': segA | segB | segE | segF | segG1 | segG2 | segN,
	'S': segA | segC | segD | segG2 | segH,
	'T': segA | segJ | segM,
	'U': segB | segC | segD | segE | segF,
	'V': segE | segF | segK | segL,
	'W': segB | segC | segE | segF | segL | segN,
	'X': segH | segK | segL | segN,
	'Y': segH | segK | segM,
	'Z': segA | segD | segK | segL,
	'a': segD | segE | segG1 | segM,
	'b': segD | segE | segF | segG1 | segN,
	'c': segD | segE | segG1 | segG2,
	'd': segB | segC | segD | segG2 | segL,
	'e': segD | segE | segG1 | segL,
	'f': segA | segE | segF | segG1,
	'g': segB | segC | segD | segG2 | segK,
	'h': segE | segF | segG1 | segM,
	'i': segM,
	'j': segB | segC | segD,
	'k': segJ | segK | segM | segN,
	'l': segE | segF,
	'm': segC | segE | segG1 | segG2 | segM,
	'n': segE | segG1 | segM,
	'o': segC | segD | segE | segG1 | segG2,
	'p': segE | segF | segG1 | segH,
	'q': segB | segC | segG2 | segK,
	'r': segE | segG1,
	's': segD | segG2 | segN,
	't': segD | segE | segF | segG1,
	'u': segC | segD | segE,
	'v': segC | segN,
	'w': segC | segE | segL | segN,
	'x': segG1 | segG2 | segL | segN,
	'y': segB | segC | segD | segN,
	'z': segD | segG1 | segL,
}

// GlyphFor returns the segment bitmask for r. It is total: characters
// outside the supported set return the blank glyph.
func GlyphFor(r rune) Glyph {
	return glyphs[r]
}

// WithDecimalPoint returns g with the decimal point segment lit. The rest
// of the glyph is untouched, so applying it twice is the same as once.
func (g Glyph) WithDecimalPoint() Glyph {
	return g | DecimalPoint
}

// bytes returns the glyph in display RAM order, low byte first.
func (g Glyph) bytes() (byte, byte) {
	return byte(g), byte(g >> 8)
}
