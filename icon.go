package yatg

// DrawSelf draws a small turtle icon at the current location: four legs
// and a head as filled circles around a body of concentric rings, all
// outlined in the pen color and filled with the fill color. The full
// turtle state is restored afterwards.
func (t *Turtle) DrawSelf() {
	// Keep a private copy of the state; Backup only gives one level of
	// undo and the leg loop below needs it for itself.
	original := t.cur

	t.PenUp()

	// legs
	for i := -1; i < 2; i += 2 {
		for j := -1; j < 2; j += 2 {
			t.Backup()
			t.Forward(float64(i * 7))
			t.StrafeLeft(float64(j * 7))

			t.SetFillColor(t.cur.penColor)
			t.FillCircleAt(5)
			t.SetFillColor(original.fillColor)
			t.FillCircleAt(3)
			t.Restore()
		}
	}

	// head
	t.Backup()
	t.Forward(10)
	t.SetFillColor(t.cur.penColor)
	t.FillCircleAt(5)
	t.SetFillColor(original.fillColor)
	t.FillCircleAt(3)
	t.Restore()

	// body rings
	for i := 9; i >= 0; i -= 4 {
		t.Backup()
		t.SetFillColor(t.cur.penColor)
		t.FillCircleAt(i + 2)
		t.SetFillColor(original.fillColor)
		t.FillCircleAt(i)
		t.Restore()
	}

	t.cur = original
}
