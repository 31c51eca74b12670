package yatg

import (
	"fmt"

	"yatg/bmp"
)

// SaveBMP writes the current field to a 24-bit BMP file.
func (t *Turtle) SaveBMP(path string) error {
	return bmp.Save(path, t.img)
}

// BeginVideo enables frame emission: while drawing, a BMP snapshot of
// the field is written every pixelsPerFrame pen-plotted pixels (fill
// pixels do not count). Frames are numbered frame00001.bmp,
// frame00002.bmp, ... in the working directory. Some experimentation may
// be needed to find a good interval for a given shape.
func (t *Turtle) BeginVideo(pixelsPerFrame int) {
	t.saveFrames = true
	t.frameCount = 0
	t.frameInterval = pixelsPerFrame
	t.pixelCount = 0
}

// EndVideo disables frame emission. A later BeginVideo resets the
// counters and restarts numbering from one.
func (t *Turtle) EndVideo() {
	t.saveFrames = false
}

// SaveFrame writes one video frame containing the current field.
func (t *Turtle) SaveFrame() error {
	t.frameCount++
	return t.SaveBMP(fmt.Sprintf("frame%05d.bmp", t.frameCount))
}

// emitFrame is the automatic in-line emission path used by DrawPixel.
// A failed frame write aborts drawing; matching the engine's
// fatal-on-I/O-failure policy, there is no recovery.
func (t *Turtle) emitFrame() {
	if err := t.SaveFrame(); err != nil {
		panic(err)
	}
}
