package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type cubeFace struct {
	normal, u, v mgl32.Vec3
}

// u x v == normal for every face so the corner order below winds CCW
// when seen from outside.
var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
}

var quadCorners = [6][2]float32{
	{-1, -1}, {1, -1}, {1, 1},
	{1, 1}, {-1, 1}, {-1, -1},
}

// Cube is a 2x2x2 cube centred on the origin: 36 vertices, flat normals.
func Cube() *Mesh {
	m := &Mesh{Topology: Triangles}
	for _, f := range cubeFaces {
		for _, c := range quadCorners {
			pos := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			uv := mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2}
			m.push(pos, f.normal, uv)
		}
	}
	return m
}

type SphereParams struct {
	Slices int
	Stacks int
	Radius float32
}

func DefaultSphereParams() SphereParams {
	return SphereParams{Slices: 30, Stacks: 30, Radius: 1}
}

// SphereN returns the vertex and strip index counts for a sphere.
func SphereN(p SphereParams) (numVertex, numIndex int) {
	numVertex = (p.Slices + 1) * (p.Stacks + 1)
	numIndex = numVertex * 2
	return
}

// Sphere is a UV sphere drawn as one triangle strip. Each stack ring is
// paired with the next one; the last ring pairs with itself so the strip
// ends in degenerate triangles and never indexes past the vertex data.
func Sphere(p SphereParams) *Mesh {
	numVertex, numIndex := SphereN(p)
	m := &Mesh{
		Topology: TriangleStrip,
		Vertices: make([]float32, 0, numVertex*Stride),
		Indices:  make([]uint32, 0, numIndex),
	}

	for stack := 0; stack <= p.Stacks; stack++ {
		phi := math32.Pi * float32(stack) / float32(p.Stacks)
		for slice := 0; slice <= p.Slices; slice++ {
			theta := 2 * math32.Pi * float32(slice) / float32(p.Slices)
			n := mgl32.Vec3{
				math32.Cos(theta) * math32.Sin(phi),
				math32.Sin(theta) * math32.Sin(phi),
				math32.Cos(phi),
			}
			uv := mgl32.Vec2{float32(slice) / float32(p.Slices), float32(stack) / float32(p.Stacks)}
			m.push(n.Mul(p.Radius), n, uv)
		}
	}

	ring := uint32(p.Slices + 1)
	for stack := 0; stack <= p.Stacks; stack++ {
		next := min(stack+1, p.Stacks)
		for slice := 0; slice <= p.Slices; slice++ {
			m.Indices = append(m.Indices,
				uint32(stack)*ring+uint32(slice),
				uint32(next)*ring+uint32(slice),
			)
		}
	}
	return m
}

type ConeParams struct {
	Segments int
	Radius   float32
	Height   float32
	// RadialNormals shades the sides with the base-circle position vector
	// instead of the slant normal. It is an approximation kept for
	// reproducing older captures.
	RadialNormals bool
}

func DefaultConeParams() ConeParams {
	return ConeParams{Segments: 30, Radius: 0.5, Height: 1}
}

// Cone is centred on the origin with its apex on +Y: a base fan followed
// by one side triangle per segment.
func Cone(p ConeParams) *Mesh {
	m := &Mesh{
		Topology: Triangles,
		Vertices: make([]float32, 0, p.Segments*6*Stride),
	}
	half := p.Height / 2
	down := mgl32.Vec3{0, -1, 0}
	center := mgl32.Vec3{0, -half, 0}
	apex := mgl32.Vec3{0, half, 0}

	rim := func(i int) (mgl32.Vec3, float32) {
		theta := 2 * math32.Pi * float32(i%p.Segments) / float32(p.Segments)
		return mgl32.Vec3{p.Radius * math32.Cos(theta), -half, p.Radius * math32.Sin(theta)}, theta
	}
	baseUV := func(v mgl32.Vec3) mgl32.Vec2 {
		return mgl32.Vec2{v[0]/p.Radius + 0.5, v[2]/p.Radius + 0.5}
	}
	sideUV := func(v mgl32.Vec3) mgl32.Vec2 {
		return mgl32.Vec2{0.5 + 0.5*v[0]/p.Radius, 0.5 + 0.5*v[2]/p.Radius}
	}
	slant := func(theta float32) mgl32.Vec3 {
		return mgl32.Vec3{p.Height * math32.Cos(theta), p.Radius, p.Height * math32.Sin(theta)}.Normalize()
	}

	for i := 0; i < p.Segments; i++ {
		a, _ := rim(i)
		b, _ := rim(i + 1)
		m.push(center, down, mgl32.Vec2{0.5, 0.5})
		m.push(a, down, baseUV(a))
		m.push(b, down, baseUV(b))
	}

	for i := 0; i < p.Segments; i++ {
		a, ta := rim(i)
		b, tb := rim(i + 1)
		if p.RadialNormals {
			m.push(a, a, sideUV(a))
			m.push(apex, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0.5, 1})
			m.push(b, b, sideUV(b))
			continue
		}
		if i == p.Segments-1 {
			tb = 2 * math32.Pi
		}
		m.push(a, slant(ta), sideUV(a))
		m.push(apex, slant((ta+tb)/2), mgl32.Vec2{0.5, 1})
		m.push(b, slant(tb), sideUV(b))
	}
	return m
}

var prismBase = [3]mgl32.Vec3{
	{-0.5, 0, -0.5},
	{0.5, 0, -0.5},
	{0, 0, 0.5},
}

// Prism is a unit-height triangular prism standing on the y=0 plane:
// two caps and three flat-shaded side quads, 24 vertices.
func Prism() *Mesh {
	m := &Mesh{Topology: Triangles}
	up := mgl32.Vec3{0, 1, 0}
	capUV := func(v mgl32.Vec3) mgl32.Vec2 { return mgl32.Vec2{v[0] + 0.5, v[2] + 0.5} }
	top := func(v mgl32.Vec3) mgl32.Vec3 { return v.Add(up) }

	a, b, c := prismBase[0], prismBase[1], prismBase[2]
	m.push(a, up.Mul(-1), capUV(a))
	m.push(b, up.Mul(-1), capUV(b))
	m.push(c, up.Mul(-1), capUV(c))

	m.push(top(a), up, capUV(a))
	m.push(top(c), up, capUV(c))
	m.push(top(b), up, capUV(b))

	for i := range prismBase {
		p := prismBase[i]
		q := prismBase[(i+1)%len(prismBase)]
		n := top(q).Sub(p).Cross(q.Sub(p)).Normalize()

		m.push(p, n, mgl32.Vec2{0, 0})
		m.push(top(q), n, mgl32.Vec2{1, 1})
		m.push(q, n, mgl32.Vec2{1, 0})

		m.push(p, n, mgl32.Vec2{0, 0})
		m.push(top(p), n, mgl32.Vec2{0, 1})
		m.push(top(q), n, mgl32.Vec2{1, 1})
	}
	return m
}

// TrianglePlane is a single upward facing triangle in the y=0 plane, one
// unit across. Vertices are ordered counter-clockwise seen from +Y.
func TrianglePlane() *Mesh {
	m := &Mesh{Topology: Triangles}
	n := mgl32.Vec3{0, 1, 0}
	m.push(mgl32.Vec3{-0.5, 0, -0.5}, n, mgl32.Vec2{0, 0})
	m.push(mgl32.Vec3{0, 0, 0.5}, n, mgl32.Vec2{0.5, 1})
	m.push(mgl32.Vec3{0.5, 0, -0.5}, n, mgl32.Vec2{1, 0})
	return m
}
