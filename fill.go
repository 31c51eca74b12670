package yatg

import (
	"errors"
	"math"
)

// ErrTooManyVertices is the panic value raised when a polygon fill path
// grows beyond MaxPolygonVertices. Drawing cannot continue past this
// point; there is deliberately no recovery path inside the engine.
var ErrTooManyVertices = errors.New("too many vertices in polygon fill path")

// BeginFill starts accumulating a polygon. Until EndFill, every move
// made with the pen down appends its destination to the vertex path.
func (t *Turtle) BeginFill() {
	t.cur.filled = true
	t.poly = t.poly[:0]
}

// EndFill closes the polygon and fills it using the even-odd scan-line
// rule, then re-strokes every edge. The fill is based on the
// public-domain polygon fill by Darel Rex Finley (2007),
// http://alienryderflex.com/polygon_fill/.
//
// For each canvas row, the exact x-intercept of every edge crossing the
// row is computed by linear interpolation; a vertex sitting exactly on
// the row belongs to the edge below it. The sorted intercepts are paired
// off and the pixels strictly between floor(a)+1 and ceil(b)-1 of each
// pair are filled. Sharp corners can leave the span a pixel short, which
// is why the edges are stroked again afterwards.
func (t *Turtle) EndFill() {
	nodeX := make([]float64, 0, MaxPolygonVertices)
	height := t.img.Height()

	for y := -(height / 2); y < height/2; y++ {
		fy := float64(y)

		// build a list of polygon intercepts on the current row
		nodeX = nodeX[:0]
		j := len(t.poly) - 1
		for i := 0; i < len(t.poly); i++ {
			pi, pj := t.poly[i], t.poly[j]
			if (pi.y < fy && pj.y >= fy) || (pj.y < fy && pi.y >= fy) {
				nodeX = append(nodeX,
					pi.x+(fy-pi.y)/(pj.y-pi.y)*(pj.x-pi.x))
			}
			j = i
		}

		// insertion sort; vertex counts are small
		for i := 1; i < len(nodeX); i++ {
			temp := nodeX[i]
			k := i
			for ; k > 0 && temp < nodeX[k-1]; k-- {
				nodeX[k] = nodeX[k-1]
			}
			nodeX[k] = temp
		}

		// fill between node pairs; an unpaired trailing intercept
		// from a degenerate polygon is ignored
		for i := 0; i+1 < len(nodeX); i += 2 {
			lo := int(math.Floor(nodeX[i])) + 1
			hi := int(math.Ceil(nodeX[i+1]))
			for x := lo; x < hi; x++ {
				t.FillPixel(x, y)
			}
		}
	}

	t.cur.filled = false

	// redraw the polygon; filling is imperfect and can occlude sides
	n := len(t.poly)
	for i := 0; i < n; i++ {
		next := t.poly[(i+1)%n]
		t.DrawLine(
			int(math.Round(t.poly[i].x)),
			int(math.Round(t.poly[i].y)),
			int(math.Round(next.x)),
			int(math.Round(next.y)),
		)
	}
}
