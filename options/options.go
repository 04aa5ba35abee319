package options

import (
	"errors"
	"fmt"

	"github.com/richinsley/litsolid/scene"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "OpenGL with GLFW"
	DefaultShape  = "sphere"
)

type ViewerOptions struct {
	Width  *int
	Height *int
	Title  *string
	Shape  *string // initial solid: "pyramid" or "sphere"
	Help   *bool
}

// Default returns options holding the built-in defaults, for callers that do not parse flags.
func Default() *ViewerOptions {
	width, height := DefaultWidth, DefaultHeight
	title, shape := DefaultTitle, DefaultShape
	help := false
	return &ViewerOptions{
		Width:  &width,
		Height: &height,
		Title:  &title,
		Shape:  &shape,
		Help:   &help,
	}
}

// Validate checks the option values and returns the initial shape.
func (o *ViewerOptions) Validate() (scene.Shape, error) {
	if o.Width == nil || o.Height == nil || o.Title == nil || o.Shape == nil {
		return scene.ShapeSphere, errors.New("options are not fully initialized")
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return scene.ShapeSphere, fmt.Errorf("window size must be positive, got %dx%d", *o.Width, *o.Height)
	}
	shape, err := scene.ParseShape(*o.Shape)
	if err != nil {
		return scene.ShapeSphere, fmt.Errorf("invalid -shape: %w", err)
	}
	return shape, nil
}
