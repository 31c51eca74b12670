package yatg

import "yatg/glyph"

// DrawInt stamps the decimal digits of n at the current location using
// the fixed 4x5 digit glyphs, drawing left to right with a 5-pixel
// advance per digit. Negative values are stamped without a sign.
func (t *Turtle) DrawInt(n int) {
	if n < 0 {
		n = -n
	}

	count := 1
	for m := n; m > 9; m /= 10 {
		count++
	}

	for i := count - 1; i >= 0; i-- {
		t.drawDigit(n%10, i)
		n /= 10
	}
}

// drawDigit stamps one digit glyph at the given position within the
// number. Glyph rows grow downward from the turtle's y position.
func (t *Turtle) drawDigit(digit, index int) {
	g := glyph.Digit(digit)
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			if g.At(x, y) {
				t.DrawPixel(int(t.cur.xpos)+index*5+x, int(t.cur.ypos)-y)
			}
		}
	}
}
