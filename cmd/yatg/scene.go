package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"yatg"
	"yatg/field"
)

// Scene is a drawing script: a canvas, an optional video setting, and an
// ordered list of turtle ops to run against a fresh engine.
type Scene struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Video  VideoConfig  `yaml:"video"`
	Output string       `yaml:"output"`
	Steps  []Step       `yaml:"steps"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type VideoConfig struct {
	PixelsPerFrame int `yaml:"pixelsPerFrame"`
}

// Step is one scripted turtle operation. Which fields are meaningful
// depends on the op; unused fields are simply ignored.
type Step struct {
	Op    string  `yaml:"op"`
	N     float64 `yaml:"n"`
	Deg   float64 `yaml:"deg"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	X1    float64 `yaml:"x1"`
	Y1    float64 `yaml:"y1"`
	R     int     `yaml:"r"`
	Value int     `yaml:"value"`
	Color string  `yaml:"color"`
}

// LoadScene reads and parses a scene file, applying defaults for the
// canvas size and output path.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if s.Canvas.Width == 0 {
		s.Canvas.Width = 500
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = 500
	}
	if s.Output == "" {
		s.Output = "out.bmp"
	}
	return &s, nil
}

// Run executes every step of the scene on the given turtle.
func (s *Scene) Run(t *yatg.Turtle) error {
	for i, step := range s.Steps {
		if err := step.apply(t); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func (st Step) apply(t *yatg.Turtle) error {
	switch st.Op {
	case "forward":
		t.Forward(st.N)
	case "backward":
		t.Backward(st.N)
	case "strafeLeft":
		t.StrafeLeft(st.N)
	case "strafeRight":
		t.StrafeRight(st.N)
	case "turnLeft":
		t.TurnLeft(st.Deg)
	case "turnRight":
		t.TurnRight(st.Deg)
	case "setHeading":
		t.SetHeading(st.Deg)
	case "goTo":
		t.GoTo(st.X, st.Y)
	case "penUp":
		t.PenUp()
	case "penDown":
		t.PenDown()
	case "penColor":
		c, err := field.Hex(st.Color)
		if err != nil {
			return err
		}
		t.SetPenColor(c)
	case "fillColor":
		c, err := field.Hex(st.Color)
		if err != nil {
			return err
		}
		t.SetFillColor(c)
	case "beginFill":
		t.BeginFill()
	case "endFill":
		t.EndFill()
	case "dot":
		t.Dot()
	case "line":
		t.DrawLine(int(st.X), int(st.Y), int(st.X1), int(st.Y1))
	case "circle":
		t.DrawCircle(int(st.X), int(st.Y), st.R)
	case "fillCircle":
		t.FillCircleAt(st.R)
	case "drawInt":
		t.DrawInt(st.Value)
	case "drawSelf":
		t.DrawSelf()
	case "backup":
		t.Backup()
	case "restore":
		t.Restore()
	case "reset":
		t.Reset()
	default:
		return fmt.Errorf("unhandled op %q", st.Op)
	}
	return nil
}
