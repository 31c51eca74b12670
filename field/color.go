package field

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// RGB is one pixel of the field: three 8-bit channels, no alpha.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
	Green = RGB{0, 255, 0}
)

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xFFFF
	return
}

// Hex parses a color from a hex string such as "#ff0080".
func Hex(s string) (RGB, error) {
	c, err := clr.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful color, clamping to the RGB cube.
func FromColorful(c clr.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: uint8(c.R*255.0 + 0.5),
		G: uint8(c.G*255.0 + 0.5),
		B: uint8(c.B*255.0 + 0.5),
	}
}

// Hsv builds a color from hue (degrees), saturation, and value.
func Hsv(h, s, v float64) RGB {
	return FromColorful(clr.Hsv(h, s, v))
}

func (c RGB) colorful() clr.Color {
	cc, _ := clr.MakeColor(c)
	return cc
}

// Blend mixes two colors. Grayscale pairs are blended in RGB space so
// grays stay gray; everything else blends in Lab for perceptual evenness.
func Blend(c1, c2 RGB, t float64) RGB {
	a, b := c1.colorful(), c2.colorful()
	if (a.R == a.G && a.G == a.B) || (b.R == b.G && b.G == b.B) {
		return FromColorful(a.BlendRgb(b, t))
	}
	return FromColorful(a.BlendLab(b, t))
}

// Lighten raises the HCL lightness of a color by p.
func Lighten(c RGB, p float64) RGB {
	h, ch, l := c.colorful().Hcl()
	return FromColorful(clr.Hcl(h, ch, l+p))
}

// Darken lowers the HCL lightness of a color by p.
func Darken(c RGB, p float64) RGB {
	h, ch, l := c.colorful().Hcl()
	return FromColorful(clr.Hcl(h, ch, l-p))
}

var _ color.Color = RGB{}
