// Package yatg implements a stateful 2D turtle-graphics engine.
//
// A turtle carries a position, heading, pen color, fill color, and pen
// state over a fixed-size pixel field. Motion commands rasterize lines,
// circles, and even-odd filled polygons into the field, which can be
// saved as a 24-bit BMP file or streamed as a numbered frame sequence
// while drawing.
//
// Coordinates are centered: (0,0) is the middle of the field, x grows to
// the right and y grows upward. Headings are degrees counterclockwise,
// with 0 facing right.
//
// An engine instance is single-threaded by design: every operation runs
// to completion before returning, and no locking is performed. Callers
// sharing one Turtle across goroutines must synchronize externally.
package yatg

import (
	"yatg/field"
)

// MaxPolygonVertices is the hard limit on vertices recorded for one
// polygon fill. Exceeding it panics with ErrTooManyVertices.
const MaxPolygonVertices = 128

// state is the full turtle state. Backup and Restore copy it wholesale,
// which is what gives them their exact single-level-undo semantics.
type state struct {
	xpos    float64
	ypos    float64
	heading float64

	penColor  field.RGB
	fillColor field.RGB
	pendown   bool
	filled    bool
}

type vertex struct {
	x, y float64
}

// Turtle is a drawing engine instance. It owns its field and its one
// backup slot for the lifetime of the instance.
type Turtle struct {
	cur   state
	saved state

	img *field.Field

	poly []vertex

	saveFrames    bool
	frameCount    int
	frameInterval int
	pixelCount    int

	outOfBounds uint64
}

// New creates a turtle on a fresh white width x height field, resets it
// to the defaults, and takes a backup of that initial state.
func New(width, height int) *Turtle {
	t := &Turtle{
		img:  field.New(width, height),
		poly: make([]vertex, 0, MaxPolygonVertices),
	}
	t.Reset()
	t.Backup()
	return t
}

// Reset returns the turtle to its defaults: centered at (0,0), facing
// right, black pen, green fill, pen down, fill off, empty polygon path.
// The field's pixels are left untouched.
func (t *Turtle) Reset() {
	t.cur = state{
		penColor:  field.Black,
		fillColor: field.Green,
		pendown:   true,
	}
	t.poly = t.poly[:0]
}

// Backup saves the current turtle state. A second Backup overwrites the
// first; there is exactly one level of undo.
func (t *Turtle) Backup() {
	t.saved = t.cur
}

// Restore copies the backed-up state over the current one.
func (t *Turtle) Restore() {
	t.cur = t.saved
}

// X returns the current x-coordinate.
func (t *Turtle) X() float64 { return t.cur.xpos }

// Y returns the current y-coordinate.
func (t *Turtle) Y() float64 { return t.cur.ypos }

// Heading returns the current heading in degrees.
func (t *Turtle) Heading() float64 { return t.cur.heading }

// SetHeading points the turtle at the given heading in degrees, without
// normalization. 0 faces right, 90 faces straight up.
func (t *Turtle) SetHeading(angle float64) {
	t.cur.heading = angle
}

// PenUp lifts the pen; subsequent motion does not draw.
func (t *Turtle) PenUp() {
	t.cur.pendown = false
}

// PenDown lowers the pen; subsequent motion draws.
func (t *Turtle) PenDown() {
	t.cur.pendown = true
}

// SetPenColor sets the stroke color.
func (t *Turtle) SetPenColor(c field.RGB) {
	t.cur.penColor = c
}

// SetFillColor sets the color used for polygon and circle fills.
func (t *Turtle) SetFillColor(c field.RGB) {
	t.cur.fillColor = c
}

// Field exposes the pixel field the turtle draws on.
func (t *Turtle) Field() *field.Field {
	return t.img
}
