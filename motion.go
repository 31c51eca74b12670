package yatg

import "math"

// Forward moves the turtle along its heading, drawing a straight line if
// the pen is down.
func (t *Turtle) Forward(pixels float64) {
	radians := t.cur.heading * math.Pi / 180.0
	dx := math.Cos(radians) * pixels
	dy := math.Sin(radians) * pixels
	t.GoTo(t.cur.xpos+dx, t.cur.ypos+dy)
}

// Backward moves the turtle against its heading.
func (t *Turtle) Backward(pixels float64) {
	t.Forward(-pixels)
}

// StrafeLeft moves the turtle sideways to its left without changing the
// heading. It is a compound move: turn 90, forward, turn back.
func (t *Turtle) StrafeLeft(pixels float64) {
	t.TurnLeft(90)
	t.Forward(pixels)
	t.TurnRight(90)
}

// StrafeRight moves the turtle sideways to its right.
func (t *Turtle) StrafeRight(pixels float64) {
	t.TurnRight(90)
	t.Forward(pixels)
	t.TurnLeft(90)
}

// TurnLeft rotates the turtle counterclockwise by the given number of
// degrees. The heading is kept in [0, 360) for any angle magnitude.
func (t *Turtle) TurnLeft(angle float64) {
	t.cur.heading = normalizeHeading(t.cur.heading + angle)
}

// TurnRight rotates the turtle clockwise by the given number of degrees.
func (t *Turtle) TurnRight(angle float64) {
	t.TurnLeft(-angle)
}

// GoTo moves the turtle to an absolute position. All motion funnels
// through here: it strokes a line from the old to the new position when
// the pen is down, updates the position, and, when a fill is being
// accumulated with the pen down, records the destination as a polygon
// vertex.
func (t *Turtle) GoTo(x, y float64) {
	if t.cur.pendown {
		t.DrawLine(
			int(math.Round(t.cur.xpos)),
			int(math.Round(t.cur.ypos)),
			int(math.Round(x)),
			int(math.Round(y)),
		)
	}

	t.cur.xpos = x
	t.cur.ypos = y

	if t.cur.filled && t.cur.pendown {
		if len(t.poly) >= MaxPolygonVertices {
			panic(ErrTooManyVertices)
		}
		t.poly = append(t.poly, vertex{x, y})
	}
}

func normalizeHeading(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}
