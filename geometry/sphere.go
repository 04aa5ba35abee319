package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere tessellates a sphere centred on the origin into one triangle strip per
// latitude band. Each strip walks sectors+1 longitudes, repeating longitude 0 at 2π
// so the seam closes, and emits the lower then the upper vertex of the band at each step.
// Normals are the positions scaled back to unit length.
//
// Inputs are not validated; radius must be positive, sectors at least 3 and stacks at least 1.
func Sphere(radius float32, sectors, stacks int) []Strip {
	strips := make([]Strip, 0, stacks)
	for i := 0; i < stacks; i++ {
		lat0 := math32.Pi * (-0.5 + float32(i)/float32(stacks))
		lat1 := math32.Pi * (-0.5 + float32(i+1)/float32(stacks))
		z0, zr0 := radius*math32.Sin(lat0), radius*math32.Cos(lat0)
		z1, zr1 := radius*math32.Sin(lat1), radius*math32.Cos(lat1)

		strip := make(Strip, 0, 2*(sectors+1))
		for j := 0; j <= sectors; j++ {
			lng := 2 * math32.Pi * float32(j) / float32(sectors)
			y, x := math32.Sincos(lng)

			lower := mgl32.Vec3{x * zr0, y * zr0, z0}
			upper := mgl32.Vec3{x * zr1, y * zr1, z1}
			strip = append(strip,
				Vertex{Position: lower, Normal: lower.Mul(1 / radius)},
				Vertex{Position: upper, Normal: upper.Mul(1 / radius)},
			)
		}
		strips = append(strips, strip)
	}
	return strips
}
