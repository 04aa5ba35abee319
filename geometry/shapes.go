package geometry

import (
	"github.com/richinsley/litsolid/scene"
)

// Sphere tessellation used for scene.ShapeSphere.
const (
	SphereRadius  float32 = 1.5
	SphereSectors         = 30
	SphereStacks          = 30
)

// MeshForShape builds a fresh mesh for the given shape. Meshes are not cached.
func MeshForShape(shape scene.Shape) *Mesh {
	switch shape {
	case scene.ShapePyramid:
		return MeshFromTriangles(Pyramid())
	default:
		return MeshFromStrips(Sphere(SphereRadius, SphereSectors, SphereStacks))
	}
}
