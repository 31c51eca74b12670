// Package field implements the pixel field that a turtle draws on: a
// fixed-size grid of 24-bit RGB values addressed by centered integer
// coordinates, where (0,0) is the middle of the canvas and y grows upward.
//
// The valid coordinate range is [-width/2, width/2] x [-height/2, height/2]
// using integer division, so for even dimensions the range is one pixel
// wider than the canvas on the positive side. Writes that survive the
// centered check but land outside the backing array are dropped. Both
// quirks are kept for bit-compatibility with the BMP output of the
// original array-based engine.
package field

type Field struct {
	width  int
	height int
	pix    []RGB
}

// New allocates a width x height field initialized to white.
func New(width, height int) *Field {
	f := &Field{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
	f.Clear(White)
	return f
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// InBounds reports whether the centered coordinate may be drawn to.
func (f *Field) InBounds(x, y int) bool {
	return x >= -(f.width/2) && x <= f.width/2 &&
		y >= -(f.height/2) && y <= f.height/2
}

// index maps a centered coordinate to a position in the backing array.
// Row 0 holds the bottom of the canvas (y = -height/2).
func (f *Field) index(x, y int) int {
	return f.width*(y+f.height/2) + (x + f.width/2)
}

// Set writes a pixel at a centered coordinate. Coordinates whose linear
// index falls outside the backing array are ignored; callers that care
// about rejection run InBounds first.
func (f *Field) Set(x, y int, c RGB) {
	i := f.index(x, y)
	if i < 0 || i >= len(f.pix) {
		return
	}
	f.pix[i] = c
}

// Get reads a pixel at a centered coordinate. The second return value is
// false when the coordinate maps outside the backing array.
func (f *Field) Get(x, y int) (RGB, bool) {
	i := f.index(x, y)
	if i < 0 || i >= len(f.pix) {
		return RGB{}, false
	}
	return f.pix[i], true
}

// Clear sets every pixel to the given color.
func (f *Field) Clear(c RGB) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Row returns the storage row i (0 is the bottom of the canvas) as a
// slice aliasing the backing array.
func (f *Field) Row(i int) []RGB {
	return f.pix[i*f.width : (i+1)*f.width]
}
