package glyph

import "testing"

func TestDigitShapes(t *testing.T) {
	cases := []struct {
		digit int
		want  string
	}{
		{0, "" +
			" ██ \n" +
			"█  █\n" +
			"█  █\n" +
			"█  █\n" +
			" ██ \n"},
		{7, "" +
			"████\n" +
			"   █\n" +
			"  █ \n" +
			" █  \n" +
			" █  \n"},
		{4, "" +
			" █ █\n" +
			" █ █\n" +
			" ███\n" +
			"   █\n" +
			"   █\n"},
	}
	for _, c := range cases {
		if got := Digit(c.digit).String(); got != c.want {
			t.Errorf("digit %d:\n%swant:\n%s", c.digit, got, c.want)
		}
	}
}

func TestAt(t *testing.T) {
	one := Digit(1)
	if !one.At(1, 0) || !one.At(2, 0) {
		t.Fatal("digit 1 top bar missing")
	}
	if one.At(0, 1) {
		t.Fatal("digit 1 should have an empty left column in row 1")
	}
}

func TestAllDigitsPopulated(t *testing.T) {
	for d := 0; d <= 9; d++ {
		g := Digit(d)
		set := 0
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if g.At(x, y) {
					set++
				}
			}
		}
		if set < 7 {
			t.Errorf("digit %d has only %d set pixels:\n%s", d, set, g)
		}
	}
}
