// Command yatg renders turtle-graphics scene scripts to BMP files.
//
// Usage:
//
//	yatg scene.yaml          render a YAML scene script
//	yatg -demo               render the built-in demo
//	yatg -o spiral.bmp ...   override the output path
//
// A scene script declares a canvas, an optional frame-emission interval,
// and a list of turtle ops; see Scene for the format.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	clr "github.com/lucasb-eyer/go-colorful"

	"yatg"
	"yatg/field"
)

func main() {
	var (
		demo    = flag.Bool("demo", false, "render the built-in demo scene")
		output  = flag.String("o", "", "output path (overrides the scene's output)")
		verbose = flag.Bool("v", false, "log engine diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		yatg.SetLogger(slog.Default())
	}

	if err := run(*demo, *output, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "yatg:", err)
		os.Exit(1)
	}
}

func run(demo bool, output string, args []string) error {
	if demo {
		if output == "" {
			output = "demo.bmp"
		}
		return runDemo(output)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one scene file, got %d arguments", len(args))
	}

	scene, err := LoadScene(args[0])
	if err != nil {
		return err
	}
	if output != "" {
		scene.Output = output
	}

	t := yatg.New(scene.Canvas.Width, scene.Canvas.Height)
	if scene.Video.PixelsPerFrame > 0 {
		t.BeginVideo(scene.Video.PixelsPerFrame)
	}
	if err := scene.Run(t); err != nil {
		return err
	}
	t.EndVideo()
	return t.SaveBMP(scene.Output)
}

// runDemo draws a rainbow spiral with a turtle icon sitting in the
// middle of it.
func runDemo(output string) error {
	t := yatg.New(600, 600)

	t.PenUp()
	t.GoTo(0, -20)
	t.PenDown()

	for i := 0; i < 720; i++ {
		hue := float64(i % 360)
		t.SetPenColor(field.FromColorful(clr.Hsv(hue, 0.9, 0.95)))
		t.Forward(float64(i) / 3.0)
		t.TurnLeft(59)
	}

	t.PenUp()
	t.GoTo(0, 0)
	t.SetHeading(90)
	t.SetPenColor(field.Black)
	t.SetFillColor(field.Hsv(120, 1, 0.8))
	t.DrawSelf()

	return t.SaveBMP(output)
}
