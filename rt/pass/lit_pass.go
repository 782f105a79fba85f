package pass

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	CameraNear = 0.1
	CameraFar  = 100
)

// Frame carries the per-frame inputs of the lit pass. Width and Height are
// the framebuffer size in pixels; Projection is built for one half.
type Frame struct {
	Width      int32
	Height     int32
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Light      mgl32.Vec3
}

// HalfAspect is the aspect ratio of one side of the split view.
func HalfAspect(width, height int32) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width/2) / float32(height)
}

// LitPass draws the scene twice side by side: shadowed on the left,
// unshadowed on the right.
type LitPass struct {
	Program  Program
	Diffuse  uint32
	DepthMap uint32
	Far      float32
}

// Init binds the sampler units once after the program is linked.
func (p *LitPass) Init() {
	p.Program.Use()
	p.Program.SetInt(UniformDiffuse, DiffuseUnit)
	p.Program.SetInt(UniformDepthMap, DepthMapUnit)
}

func (p *LitPass) Run(dev Device, f Frame, draw SceneFunc) {
	half := f.Width / 2

	dev.BindDefaultFramebuffer()
	dev.Viewport(0, 0, half, f.Height)
	dev.Clear(true, true)

	p.Program.Use()
	p.Program.SetMat4(UniformProjection, f.Projection)
	p.Program.SetMat4(UniformView, f.View)
	p.Program.SetVec3(UniformLightPos, f.Light)
	p.Program.SetVec3(UniformViewPos, f.Eye)
	p.Program.SetInt(UniformShadows, 1)
	p.Program.SetFloat(UniformFarPlane, p.Far)
	p.bindTextures(dev)
	draw(p.Program)

	// Right half reuses every uniform above except the shadow toggle.
	dev.Viewport(half, 0, half, f.Height)
	p.Program.SetInt(UniformShadows, 0)
	p.bindTextures(dev)
	draw(p.Program)
}

func (p *LitPass) bindTextures(dev Device) {
	dev.BindTexture2D(DiffuseUnit, p.Diffuse)
	dev.BindCubemap(DepthMapUnit, p.DepthMap)
}
