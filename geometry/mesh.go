package geometry

// Mode is the primitive type of a draw range.
type Mode int

const (
	ModeTriangles Mode = iota
	ModeTriangleStrip
)

func (m Mode) String() string {
	switch m {
	case ModeTriangles:
		return "triangles"
	case ModeTriangleStrip:
		return "triangle-strip"
	default:
		return "unknown"
	}
}

// FloatsPerVertex is the interleaved layout: position xyz then normal xyz.
const FloatsPerVertex = 6

// DrawRange is one draw call over a contiguous run of vertices in a Mesh.
type DrawRange struct {
	Mode  Mode
	First int
	Count int
}

// Mesh is vertex data packed for upload plus the draw calls that consume it.
type Mesh struct {
	Data   []float32
	Ranges []DrawRange
}

// VertexCount returns the number of vertices held in Data.
func (m *Mesh) VertexCount() int {
	return len(m.Data) / FloatsPerVertex
}

func (m *Mesh) appendVertex(v Vertex) {
	m.Data = append(m.Data,
		v.Position[0], v.Position[1], v.Position[2],
		v.Normal[0], v.Normal[1], v.Normal[2],
	)
}

// MeshFromTriangles packs triangles into a mesh drawn with a single triangles call.
func MeshFromTriangles(tris []Triangle) *Mesh {
	m := &Mesh{Data: make([]float32, 0, len(tris)*3*FloatsPerVertex)}
	for _, t := range tris {
		for _, v := range t {
			m.appendVertex(v)
		}
	}
	m.Ranges = []DrawRange{{Mode: ModeTriangles, First: 0, Count: len(tris) * 3}}
	return m
}

// MeshFromStrips packs strips back to back, one strip draw call each.
func MeshFromStrips(strips []Strip) *Mesh {
	total := 0
	for _, s := range strips {
		total += len(s)
	}
	m := &Mesh{
		Data:   make([]float32, 0, total*FloatsPerVertex),
		Ranges: make([]DrawRange, 0, len(strips)),
	}
	for _, s := range strips {
		first := m.VertexCount()
		for _, v := range s {
			m.appendVertex(v)
		}
		m.Ranges = append(m.Ranges, DrawRange{Mode: ModeTriangleStrip, First: first, Count: len(s)})
	}
	return m
}
