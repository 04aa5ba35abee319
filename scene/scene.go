package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape selects which solid the renderer draws.
type Shape int

const (
	ShapePyramid Shape = iota
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapePyramid:
		return "pyramid"
	case ShapeSphere:
		return "sphere"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name (case-insensitive) to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pyramid":
		return ShapePyramid, nil
	case "sphere":
		return ShapeSphere, nil
	default:
		return ShapeSphere, fmt.Errorf("unknown shape %q (want pyramid or sphere)", name)
	}
}

// State is the mutable scene the keyboard edits and the renderer reads each frame.
// It is owned by the window host and only touched from the event loop.
type State struct {
	// LightPosition is homogeneous; w=1 makes the light positional.
	LightPosition mgl32.Vec4
	LightEnabled  bool
	CurrentShape  Shape
	// RotationAngle is in degrees and is never wrapped.
	RotationAngle float32
}

// NewState returns the scene as it looks when the window first opens.
func NewState() *State {
	return &State{
		LightPosition: mgl32.Vec4{0, 2, 2, 1},
		LightEnabled:  true,
		CurrentShape:  ShapeSphere,
		RotationAngle: 0,
	}
}
