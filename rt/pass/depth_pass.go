package pass

import (
	"github.com/gekko3d/omnishadow/rt/core"

	"github.com/go-gl/mathgl/mgl32"
)

// DepthPass renders linear light distance into every face of a depth
// cubemap with a single geometry shader expanded draw per object.
type DepthPass struct {
	Program Program
	Map     ShadowMap
	Near    float32
	Far     float32
}

func (p *DepthPass) Run(dev Device, light mgl32.Vec3, draw SceneFunc) [6]mgl32.Mat4 {
	size := p.Map.Size()
	p.Map.Bind()
	dev.Viewport(0, 0, size, size)
	dev.Clear(false, true)

	transforms := core.ShadowTransforms(light, p.Near, p.Far)

	p.Program.Use()
	for i, m := range transforms {
		p.Program.SetMat4(shadowMatrixNames[i], m)
	}
	p.Program.SetFloat(UniformFarPlane, p.Far)
	p.Program.SetVec3(UniformLightPos, light)

	draw(p.Program)

	dev.BindDefaultFramebuffer()
	return transforms
}
