// Package input maps key presses onto scene edits.
package input

import (
	"github.com/richinsley/litsolid/scene"
)

const (
	// LightStep is how far one key press moves the light along an axis.
	LightStep float32 = 0.5
	// AngleStep is how many degrees one arrow press rotates the solid.
	AngleStep float32 = 5.0
)

// Action tells the window host what to do after a key press.
type Action struct {
	// Redraw is set when the scene changed and the window needs a repaint.
	Redraw bool
	// Close is set when the key asks the window to close.
	Close bool
}

// Handle applies the effect of a key press to s. Keys without a binding leave s
// untouched and return the zero Action.
func Handle(s *scene.State, k Key) Action {
	switch k {
	case KeyW:
		s.LightPosition[1] += LightStep
	case KeyS:
		s.LightPosition[1] -= LightStep
	case KeyA:
		s.LightPosition[0] -= LightStep
	case KeyD:
		s.LightPosition[0] += LightStep
	case KeyQ:
		s.LightPosition[2] += LightStep
	case KeyE:
		s.LightPosition[2] -= LightStep
	case KeyP:
		s.CurrentShape = scene.ShapePyramid
	case KeyO:
		s.CurrentShape = scene.ShapeSphere
	case KeySpace:
		s.LightEnabled = !s.LightEnabled
	case KeyUp:
		s.RotationAngle += AngleStep
	case KeyDown:
		s.RotationAngle -= AngleStep
	case KeyEsc:
		return Action{Close: true}
	default:
		return Action{}
	}
	return Action{Redraw: true}
}
