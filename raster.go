package yatg

import "math"

// maxOutOfBoundsReports caps the number of out-of-bounds diagnostics per
// instance so pathological geometry cannot flood the log.
const maxOutOfBoundsReports = 100

// DrawPixel plots one pixel in the pen color at a centered coordinate,
// regardless of turtle position or pen status. Out-of-bounds coordinates
// are dropped; the first hundred or so are reported through the package
// logger. Every accepted pen plot advances the frame-emission counter.
func (t *Turtle) DrawPixel(x, y int) {
	if !t.img.InBounds(x, y) {
		t.outOfBounds++
		if t.outOfBounds < maxOutOfBoundsReports {
			logger().Warn("pixel out of bounds", "x", x, "y", y)
		}
		return
	}

	t.img.Set(x, y, t.cur.penColor)

	// Emit a video frame each time a frame interval is crossed. Only
	// pen plots count; fill pixels never advance the counter.
	if t.saveFrames {
		if t.pixelCount%t.frameInterval == 0 {
			t.emitFrame()
		}
		t.pixelCount++
	}
}

// FillPixel plots one pixel in the fill color at a centered coordinate.
// Same bounds discipline as DrawPixel, but rejections are silent and the
// frame-emission counter is not advanced.
func (t *Turtle) FillPixel(x, y int) {
	if !t.img.InBounds(x, y) {
		return
	}
	t.img.Set(x, y, t.cur.fillColor)
}

// Dot draws a single pixel at the current location in the pen color,
// regardless of pen status.
func (t *Turtle) Dot() {
	t.DrawPixel(
		int(math.Round(t.cur.xpos)),
		int(math.Round(t.cur.ypos)),
	)
}

// DrawLine strokes a straight line between two centered coordinates,
// regardless of turtle position or pen status. Bresenham variant: the
// start pixel is always plotted, the longer axis is stepped one pixel at
// a time, and the error term decides when the shorter axis advances, so
// the path is 8-connected with no gaps and ends exactly on (x1, y1).
func (t *Turtle) DrawLine(x0, y0, x1, y1 int) {
	absX := abs(x1 - x0)
	absY := abs(y1 - y0)
	offX := 1
	if x0 >= x1 {
		offX = -1
	}
	offY := 1
	if y0 >= y1 {
		offY = -1
	}
	x, y := x0, y0

	t.DrawPixel(x, y)
	if absX > absY {
		// line is more horizontal; increment along x-axis
		err := absX / 2
		for x != x1 {
			err -= absY
			if err < 0 {
				y += offY
				err += absX
			}
			x += offX
			t.DrawPixel(x, y)
		}
	} else {
		// line is more vertical; increment along y-axis
		err := absY / 2
		for y != y1 {
			err -= absX
			if err < 0 {
				x += offX
				err += absY
			}
			y += offY
			t.DrawPixel(x, y)
		}
	}
}

// DrawCircle strokes a circle outline around a centered coordinate using
// the midpoint circle algorithm, plotting all eight octant reflections
// per step. If a fill is active the interior is filled first and the
// outline is stroked on top. Radius 0 degenerates to the center pixel.
func (t *Turtle) DrawCircle(x0, y0, radius int) {
	x := radius
	y := 0
	switchCriteria := 1 - x

	if t.cur.filled {
		t.FillCircle(x0, y0, radius)
	}

	for x >= y {
		t.DrawPixel(x+x0, y+y0)
		t.DrawPixel(y+x0, x+y0)
		t.DrawPixel(-x+x0, y+y0)
		t.DrawPixel(-y+x0, x+y0)
		t.DrawPixel(-x+x0, -y+y0)
		t.DrawPixel(-y+x0, -x+y0)
		t.DrawPixel(x+x0, -y+y0)
		t.DrawPixel(y+x0, -x+y0)
		y++
		if switchCriteria <= 0 {
			switchCriteria += 2*y + 1 // no x-coordinate change
		} else {
			x--
			switchCriteria += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a circle's interior with the fill color by scanning
// the bounding box and testing dx²+dy² < r². Dense on purpose: the radii
// involved are small (decorative stamps), so the O(r²) scan beats the
// bookkeeping of an incremental fill.
func (t *Turtle) FillCircle(x0, y0, radius int) {
	radSq := radius * radius
	for x := x0 - radius; x < x0+radius; x++ {
		for y := y0 - radius; y < y0+radius; y++ {
			dx := x - x0
			dy := y - y0
			if dx*dx+dy*dy < radSq {
				t.FillPixel(x, y)
			}
		}
	}
}

// FillCircleAt fills a circle of the given radius at the turtle's
// current position.
func (t *Turtle) FillCircleAt(radius int) {
	t.FillCircle(int(t.cur.xpos), int(t.cur.ypos), radius)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
