// Package camera computes the fixed viewing transforms of the viewer: the camera
// placement, the perspective projection, the solid's spin and the viewport.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/litsolid/scene"
)

const (
	FieldOfView float32 = 45.0 // degrees, vertical
	NearPlane   float32 = 1.0
	FarPlane    float32 = 100.0
)

var (
	Eye    = mgl32.Vec3{0, 3, 7}
	Target = mgl32.Vec3{0, 0, 0}
	Up     = mgl32.Vec3{0, 1, 0}

	// SpinAxis is the diagonal the solid rotates around.
	SpinAxis = mgl32.Vec3{1, 1, 1}
)

// Viewport is a framebuffer rectangle in pixels.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// NewViewport covers the whole framebuffer of the given size.
func NewViewport(width, height int) Viewport {
	return Viewport{X: 0, Y: 0, Width: width, Height: height}
}

// View looks from Eye at Target.
func View() mgl32.Mat4 {
	return mgl32.LookAtV(Eye, Target, Up)
}

// Aspect returns width/height, treating a zero or negative side as 1. A minimised
// window reports 0x0.
func Aspect(width, height int) float32 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective projection for a framebuffer of the given size.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), Aspect(width, height), NearPlane, FarPlane)
}

// Model rotates by angle degrees around SpinAxis. The axis is normalised first, the
// same way a fixed-function rotate call treats it.
func Model(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(angle), SpinAxis.Normalize())
}

// EyeLight moves a light position into eye space using the view matrix alone, which
// is where a light set before any model transform ends up.
func EyeLight(view mgl32.Mat4, light mgl32.Vec4) mgl32.Vec4 {
	return view.Mul4x1(light)
}

// Transforms is everything a frame needs from the scene besides the mesh.
type Transforms struct {
	View  mgl32.Mat4
	Model mgl32.Mat4
	// Light is the scene light position as set by the user.
	Light mgl32.Vec4
	// EyeLight is Light in eye space, the value the shader receives.
	EyeLight mgl32.Vec4
}

// ForScene computes the transforms for drawing s.
func ForScene(s *scene.State) Transforms {
	view := View()
	return Transforms{
		View:     view,
		Model:    Model(s.RotationAngle),
		Light:    s.LightPosition,
		EyeLight: EyeLight(view, s.LightPosition),
	}
}
