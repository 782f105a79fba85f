package pass

import (
	"github.com/gekko3d/omnishadow/rt/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared by the shaders in rt/shaders.
const (
	UniformProjection     = "projection"
	UniformView           = "view"
	UniformModel          = "model"
	UniformLightPos       = "lightPos"
	UniformViewPos        = "viewPos"
	UniformShadows        = "shadows"
	UniformFarPlane       = "far_plane"
	UniformDiffuse        = "diffuseTexture"
	UniformDepthMap       = "depthMap"
	UniformLight          = "light"
	UniformReverseNormals = "reverse_normals"
	UniformAnother        = "another"
)

var shadowMatrixNames = [6]string{
	"shadowMatrices[0]",
	"shadowMatrices[1]",
	"shadowMatrices[2]",
	"shadowMatrices[3]",
	"shadowMatrices[4]",
	"shadowMatrices[5]",
}

const (
	DiffuseUnit  = 0
	DepthMapUnit = 1
)

type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

type Program interface {
	Uniforms
	Use()
}

// Device is the slice of GL state the passes touch.
type Device interface {
	BindDefaultFramebuffer()
	Viewport(x, y, width, height int32)
	Clear(color, depth bool)
	SetCulling(enabled bool)
	BindTexture2D(unit uint32, texture uint32)
	BindCubemap(unit uint32, texture uint32)
}

// ShadowMap is a depth-only render target backed by a cubemap texture.
type ShadowMap interface {
	Bind()
	Size() int32
	Texture() uint32
}

type MeshDrawer interface {
	Draw(shape mesh.Shape)
}

// SceneFunc draws every object with the currently bound program.
type SceneFunc func(u Uniforms)

func boolUniform(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
