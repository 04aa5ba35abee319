// Package geometry builds the vertex and normal data for the solids the viewer draws.
// Nothing here touches OpenGL; the renderer streams the results to the GPU.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a position with its lighting normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Triangle is three vertices in counter-clockwise order.
type Triangle [3]Vertex

// Strip is a triangle strip: every vertex after the second closes a triangle
// with the two before it.
type Strip []Vertex

// faceNormal returns the unit normal of the counter-clockwise triangle a, b, c.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// flatTriangle builds a triangle whose three vertices share the face normal.
func flatTriangle(a, b, c, normal mgl32.Vec3) Triangle {
	return Triangle{
		{Position: a, Normal: normal},
		{Position: b, Normal: normal},
		{Position: c, Normal: normal},
	}
}
