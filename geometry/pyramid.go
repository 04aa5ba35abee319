package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	pyramidApex = mgl32.Vec3{0, 1, 0}

	// base corners, front-left going counter-clockwise seen from above
	pyramidFrontLeft  = mgl32.Vec3{-1, -1, 1}
	pyramidFrontRight = mgl32.Vec3{1, -1, 1}
	pyramidBackRight  = mgl32.Vec3{1, -1, -1}
	pyramidBackLeft   = mgl32.Vec3{-1, -1, -1}

	pyramidBaseNormal = mgl32.Vec3{0, -1, 0}
)

// PyramidTriangleCount is the number of triangles returned by Pyramid.
const PyramidTriangleCount = 6

// Pyramid returns the square pyramid: four lateral faces with one outward normal each,
// followed by the two triangles of the base facing straight down.
func Pyramid() []Triangle {
	lateral := [4][2]mgl32.Vec3{
		{pyramidFrontLeft, pyramidFrontRight},
		{pyramidFrontRight, pyramidBackRight},
		{pyramidBackRight, pyramidBackLeft},
		{pyramidBackLeft, pyramidFrontLeft},
	}

	tris := make([]Triangle, 0, PyramidTriangleCount)
	for _, edge := range lateral {
		n := faceNormal(pyramidApex, edge[0], edge[1])
		tris = append(tris, flatTriangle(pyramidApex, edge[0], edge[1], n))
	}

	tris = append(tris,
		flatTriangle(pyramidFrontLeft, pyramidBackLeft, pyramidBackRight, pyramidBaseNormal),
		flatTriangle(pyramidFrontLeft, pyramidBackRight, pyramidFrontRight, pyramidBaseNormal),
	)
	return tris
}
