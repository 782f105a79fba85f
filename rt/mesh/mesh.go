package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout shared by every generator: position, normal, texcoord.
const (
	PositionSize = 3
	NormalSize   = 3
	TexCoordSize = 2
	Stride       = PositionSize + NormalSize + TexCoordSize
)

type Topology int

const (
	Triangles Topology = iota
	TriangleStrip
)

type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeCone
	ShapePrism
	ShapePlane
)

var shapeNames = map[Shape]string{
	ShapeCube:   "cube",
	ShapeSphere: "sphere",
	ShapeCone:   "cone",
	ShapePrism:  "prism",
	ShapePlane:  "plane",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape resolves the lowercase shape name used in scene files.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Mesh is interleaved vertex data with an optional index list.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Topology Topology
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

// DrawCount is the number of elements submitted by a single draw call.
func (m *Mesh) DrawCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return m.VertexCount()
}

func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * Stride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*Stride + PositionSize
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func (m *Mesh) TexCoord(i int) mgl32.Vec2 {
	o := i*Stride + PositionSize + NormalSize
	return mgl32.Vec2{m.Vertices[o], m.Vertices[o+1]}
}

func (m *Mesh) push(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	m.Vertices = append(m.Vertices,
		pos[0], pos[1], pos[2],
		normal[0], normal[1], normal[2],
		uv[0], uv[1],
	)
}

// Generate builds the default mesh for a shape.
func Generate(shape Shape) (*Mesh, error) {
	switch shape {
	case ShapeCube:
		return Cube(), nil
	case ShapeSphere:
		return Sphere(DefaultSphereParams()), nil
	case ShapeCone:
		return Cone(DefaultConeParams()), nil
	case ShapePrism:
		return Prism(), nil
	case ShapePlane:
		return TrianglePlane(), nil
	}
	return nil, fmt.Errorf("no generator for %v", shape)
}
