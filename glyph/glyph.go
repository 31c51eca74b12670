// Package glyph holds the fixed 4x5 digit bitmaps the turtle stamps with
// DrawInt. Each digit is packed row-major, MSB first, into three bytes
// (20 pixel bits plus four bits of padding) and unpacked with a bit
// reader at startup.
package glyph

import (
	"bytes"
	"strings"

	"github.com/32bitkid/bitreader"
)

const (
	// Width and Height are the pixel dimensions of every digit glyph.
	Width  = 4
	Height = 5
)

// Bitmap is one unpacked glyph.
type Bitmap struct {
	bits [Width * Height]bool
}

// At reports whether the glyph pixel at (x, y) is set. Row 0 is the top
// of the glyph.
func (b *Bitmap) At(x, y int) bool {
	return b.bits[y*Width+x]
}

// String renders the glyph as block art, handy in test failures.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.At(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// packedDigits holds the ten digit glyphs, one packed bitmap per digit.
var packedDigits = [10][3]byte{
	{0x69, 0x99, 0x60}, // 0
	{0x62, 0x22, 0x70}, // 1
	{0xe1, 0x68, 0xf0}, // 2
	{0xe1, 0x61, 0xe0}, // 3
	{0x55, 0x71, 0x10}, // 4
	{0xf8, 0xe1, 0xe0}, // 5
	{0x68, 0xe9, 0x60}, // 6
	{0xf1, 0x24, 0x40}, // 7
	{0x69, 0x69, 0x60}, // 8
	{0x69, 0x71, 0x60}, // 9
}

var digits [10]Bitmap

func init() {
	for d, packed := range packedDigits {
		br := bitreader.NewReader(bytes.NewReader(packed[:]))
		for i := range digits[d].bits {
			bit, err := br.Read1()
			if err != nil {
				panic(err)
			}
			digits[d].bits[i] = bit
		}
	}
}

// Digit returns the glyph for a digit in [0, 9].
func Digit(d int) *Bitmap {
	return &digits[d]
}
