package gpu

import (
	"fmt"
	"unsafe"

	"github.com/gekko3d/omnishadow/rt/mesh"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type meshBuffers struct {
	vao, vbo, ebo uint32
	mode          uint32
	count         int32
	indexed       bool
}

// MeshLibrary owns the GPU buffers of every shape. Buffers are created on
// the first draw of a shape and live until Delete.
type MeshLibrary struct {
	build   func(mesh.Shape) (*mesh.Mesh, error)
	buffers map[mesh.Shape]*meshBuffers
}

func NewMeshLibrary(build func(mesh.Shape) (*mesh.Mesh, error)) *MeshLibrary {
	if build == nil {
		build = mesh.Generate
	}
	return &MeshLibrary{
		build:   build,
		buffers: make(map[mesh.Shape]*meshBuffers),
	}
}

// Upload creates the buffers for shape if they do not exist yet.
func (l *MeshLibrary) Upload(shape mesh.Shape) error {
	if _, ok := l.buffers[shape]; ok {
		return nil
	}
	m, err := l.build(shape)
	if err != nil {
		return err
	}
	l.buffers[shape] = uploadMesh(m)
	return nil
}

func (l *MeshLibrary) Uploaded(shape mesh.Shape) bool {
	_, ok := l.buffers[shape]
	return ok
}

func (l *MeshLibrary) Draw(shape mesh.Shape) {
	if err := l.Upload(shape); err != nil {
		panic(fmt.Errorf("mesh library: %w", err))
	}
	b := l.buffers[shape]

	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElements(b.mode, b.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

func (l *MeshLibrary) Delete() {
	for shape, b := range l.buffers {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		if b.indexed {
			gl.DeleteBuffers(1, &b.ebo)
		}
		delete(l.buffers, shape)
	}
}

func uploadMesh(m *mesh.Mesh) *meshBuffers {
	b := &meshBuffers{
		mode:    gl.TRIANGLES,
		count:   int32(m.DrawCount()),
		indexed: m.Indexed(),
	}
	if m.Topology == mesh.TriangleStrip {
		b.mode = gl.TRIANGLE_STRIP
	}

	floatSize := int(unsafe.Sizeof(float32(0)))
	stride := int32(mesh.Stride * floatSize)

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*floatSize, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	if b.indexed {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*int(unsafe.Sizeof(uint32(0))), gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, mesh.PositionSize, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, mesh.NormalSize, gl.FLOAT, false, stride, gl.PtrOffset(mesh.PositionSize*floatSize))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, mesh.TexCoordSize, gl.FLOAT, false, stride, gl.PtrOffset((mesh.PositionSize+mesh.NormalSize)*floatSize))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}
