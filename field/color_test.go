package field

import "testing"

func TestHex(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#ff0000", RGB{255, 0, 0}},
		{"#00ff00", RGB{0, 255, 0}},
		{"#336699", RGB{0x33, 0x66, 0x99}},
	}
	for _, c := range cases {
		got, err := Hex(c.in)
		if err != nil {
			t.Fatalf("Hex(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Hex(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := Hex("not-a-color"); err == nil {
		t.Fatal("expected error for malformed hex string")
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RGB{255, 0, 128}.RGBA()
	if r != 0xFFFF || g != 0 || a != 0xFFFF {
		t.Fatalf("RGBA() = %d,%d,%d,%d", r, g, b, a)
	}
	if b != 0x8080 {
		t.Fatalf("blue channel not widened correctly: %#x", b)
	}
}

func TestBlend(t *testing.T) {
	red := RGB{255, 0, 0}
	black := RGB{0, 0, 0}

	// grayscale endpoint blends take the RGB path and are exact
	if got := Blend(red, black, 0); got != red {
		t.Fatalf("Blend(red, black, 0) = %v", got)
	}
	if got := Blend(red, black, 1); got != black {
		t.Fatalf("Blend(red, black, 1) = %v", got)
	}

	mid := Blend(red, RGB{0, 0, 255}, 0.5)
	if mid == red || mid == (RGB{0, 0, 255}) {
		t.Fatalf("midpoint blend should differ from both endpoints, got %v", mid)
	}
}

func TestLightenDarken(t *testing.T) {
	gray := RGB{100, 100, 100}
	if Lighten(gray, 0.2) == gray {
		t.Fatal("Lighten should change the color")
	}
	if Darken(gray, 0.2) == gray {
		t.Fatal("Darken should change the color")
	}
}

func TestHsv(t *testing.T) {
	if got := Hsv(0, 1, 1); got != (RGB{255, 0, 0}) {
		t.Fatalf("Hsv(0,1,1) = %v, want pure red", got)
	}
	if got := Hsv(120, 1, 1); got != (RGB{0, 255, 0}) {
		t.Fatalf("Hsv(120,1,1) = %v, want pure green", got)
	}
}
