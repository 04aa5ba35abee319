package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting is the fixed light and material setup applied once when the graphics
// context is created. None of it changes while the program runs.
type Lighting struct {
	ClearColor mgl32.Vec4

	LightDiffuse mgl32.Vec3
	LightAmbient mgl32.Vec3
	// SceneAmbient is added to every lit fragment regardless of the light.
	SceneAmbient mgl32.Vec3

	MaterialDiffuse mgl32.Vec4
	// ColorMaterial makes the material reflectance follow DrawColor.
	ColorMaterial bool
	DrawColor     mgl32.Vec4
}

// DefaultLighting returns a red point light over a white solid on a pale pink background.
func DefaultLighting() Lighting {
	return Lighting{
		ClearColor:      mgl32.Vec4{1.0, 0.85, 0.9, 1.0},
		LightDiffuse:    mgl32.Vec3{1, 0, 0},
		LightAmbient:    mgl32.Vec3{0, 0, 0},
		SceneAmbient:    mgl32.Vec3{0.2, 0.2, 0.2},
		MaterialDiffuse: mgl32.Vec4{1, 1, 1, 1},
		ColorMaterial:   true,
		DrawColor:       mgl32.Vec4{1, 1, 1, 1},
	}
}

// Reflectance returns the diffuse reflectance lit fragments use.
func (l Lighting) Reflectance() mgl32.Vec4 {
	if l.ColorMaterial {
		return l.DrawColor
	}
	return l.MaterialDiffuse
}
