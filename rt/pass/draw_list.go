package pass

import (
	"github.com/gekko3d/omnishadow/rt/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

type Material struct {
	// ReverseNormals is set for the enclosing room: it is seen from the
	// inside, so culling is off and the shader flips its normals.
	ReverseNormals bool
	// Emissive objects render flat white (the light marker).
	Emissive bool
	// Highlight objects use a flat albedo instead of the diffuse texture.
	Highlight bool
}

type DrawItem struct {
	Shape    mesh.Shape
	Model    mgl32.Mat4
	Material Material
}

// DrawList is an ordered set of objects drawn with the same program.
type DrawList struct {
	Items []DrawItem
}

func (l *DrawList) Add(item DrawItem) {
	l.Items = append(l.Items, item)
}

func (l *DrawList) Reset() {
	l.Items = l.Items[:0]
}

// Scene returns a SceneFunc drawing the list. Per-object flags are
// uploaded for every item, and culling and reverse_normals are restored
// after the room is drawn.
func (l *DrawList) Scene(dev Device, meshes MeshDrawer) SceneFunc {
	return func(u Uniforms) {
		for _, item := range l.Items {
			u.SetMat4(UniformModel, item.Model)
			u.SetInt(UniformLight, boolUniform(item.Material.Emissive))
			u.SetInt(UniformAnother, boolUniform(item.Material.Highlight))

			if item.Material.ReverseNormals {
				dev.SetCulling(false)
				u.SetInt(UniformReverseNormals, 1)
			}

			meshes.Draw(item.Shape)

			if item.Material.ReverseNormals {
				u.SetInt(UniformReverseNormals, 0)
				dev.SetCulling(true)
			}
		}
	}
}
