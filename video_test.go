package yatg

import (
	"os"
	"testing"

	"yatg/field"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func frameExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func TestFrameEmission(t *testing.T) {
	chdirTemp(t)

	tt := New(20, 20)
	tt.BeginVideo(2)

	// five pen plots with interval 2: frames at plot 0, 2, and 4
	for x := 0; x < 5; x++ {
		tt.DrawPixel(x, 0)
	}

	for _, name := range []string{"frame00001.bmp", "frame00002.bmp", "frame00003.bmp"} {
		if !frameExists(name) {
			t.Fatalf("missing %s", name)
		}
	}
	if frameExists("frame00004.bmp") {
		t.Fatal("too many frames emitted")
	}

	tt.EndVideo()
	tt.DrawPixel(5, 0)
	if frameExists("frame00004.bmp") {
		t.Fatal("frame emitted after EndVideo")
	}
}

func TestFillPixelsDoNotEmitFrames(t *testing.T) {
	chdirTemp(t)

	tt := New(20, 20)
	tt.BeginVideo(1)
	for x := -5; x <= 5; x++ {
		tt.FillPixel(x, 0)
	}
	if frameExists("frame00001.bmp") {
		t.Fatal("fill pixels must not advance the frame counter")
	}

	// a polygon fill emits frames only for the repair stroke, not the
	// interior
	tt2 := New(40, 40)
	tt2.BeginVideo(1000000)
	tt2.SetFillColor(field.RGB{R: 255, G: 0, B: 0})
	tt2.BeginFill()
	tt2.GoTo(-5, -5)
	tt2.GoTo(5, -5)
	tt2.GoTo(0, 5)
	tt2.EndFill()
	if !frameExists("frame00001.bmp") {
		t.Fatal("the first pen plot should emit a frame")
	}
	if frameExists("frame00002.bmp") {
		t.Fatal("interior fill pixels counted toward the frame interval")
	}
}

func TestSaveFrameNumbering(t *testing.T) {
	chdirTemp(t)

	tt := New(10, 10)
	if err := tt.SaveFrame(); err != nil {
		t.Fatal(err)
	}
	if err := tt.SaveFrame(); err != nil {
		t.Fatal(err)
	}
	if !frameExists("frame00001.bmp") || !frameExists("frame00002.bmp") {
		t.Fatal("frames not numbered sequentially with 5-digit padding")
	}
}

func TestBeginVideoRestartsNumbering(t *testing.T) {
	chdirTemp(t)

	tt := New(10, 10)
	tt.BeginVideo(1)
	tt.DrawPixel(0, 0)
	tt.EndVideo()

	tt.BeginVideo(1)
	tt.DrawPixel(1, 0)
	// the counter was reset, so the first frame gets overwritten
	if frameExists("frame00002.bmp") {
		t.Fatal("BeginVideo should restart frame numbering")
	}
	if !frameExists("frame00001.bmp") {
		t.Fatal("no frame written after restart")
	}
}

func TestSaveBMPBadPath(t *testing.T) {
	tt := New(10, 10)
	if err := tt.SaveBMP("/no/such/directory/out.bmp"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
