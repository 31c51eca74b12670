package field

import (
	"image"
	"image/color"
)

// view adapts a Field to image.Image with the usual top-left origin, so
// the canvas can be handed to the stdlib and golang.org/x/image codecs.
type view struct {
	f *Field
}

// Image returns a read-only image.Image view of the field. The view
// aliases the field; later draws show through.
func (f *Field) Image() image.Image {
	return view{f}
}

func (v view) ColorModel() color.Model { return color.RGBAModel }

func (v view) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.f.width, v.f.height)
}

func (v view) At(ix, iy int) color.Color {
	// Image row 0 is the top of the canvas; storage row 0 is the bottom.
	row := v.f.height - 1 - iy
	return v.f.pix[row*v.f.width+ix]
}
