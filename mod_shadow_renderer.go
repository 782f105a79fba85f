package omnishadow

import (
	"fmt"

	"github.com/gekko3d/omnishadow/rt/core"
	"github.com/gekko3d/omnishadow/rt/gpu"
	"github.com/gekko3d/omnishadow/rt/mesh"
	"github.com/gekko3d/omnishadow/rt/pass"
	"github.com/gekko3d/omnishadow/rt/shaders"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadowRenderer owns every GPU object of the point shadow pipeline.
// It must be created and used on the thread holding the GL context.
type ShadowRenderer struct {
	device  *gpu.Device
	meshes  *gpu.MeshLibrary
	depthSh *gpu.Program
	litSh   *gpu.Program
	cubemap *gpu.DepthCubemap
	diffuse uint32

	depth pass.DepthPass
	lit   pass.LitPass
}

// meshBuilder returns the generator used by the mesh library. Cones honour
// the configured normal mode.
func meshBuilder(cfg ShadowConfig) func(mesh.Shape) (*mesh.Mesh, error) {
	return func(shape mesh.Shape) (*mesh.Mesh, error) {
		if shape == mesh.ShapeCone {
			p := mesh.DefaultConeParams()
			p.RadialNormals = cfg.RadialConeNormals
			return mesh.Cone(p), nil
		}
		return mesh.Generate(shape)
	}
}

// NewShadowRenderer compiles both programs, allocates the depth cubemap,
// uploads the diffuse texture and the given shapes.
func NewShadowRenderer(cfg ShadowConfig, tex TextureAsset, shapes []mesh.Shape) (*ShadowRenderer, error) {
	r := &ShadowRenderer{
		device: gpu.NewDevice(),
		meshes: gpu.NewMeshLibrary(meshBuilder(cfg)),
	}
	r.device.Init()

	var err error
	if r.depthSh, err = gpu.NewProgram(shaders.DepthVert, shaders.DepthFrag, shaders.DepthGeom); err != nil {
		r.Delete()
		return nil, fmt.Errorf("depth program: %w", err)
	}
	if r.litSh, err = gpu.NewProgram(shaders.PointShadowsVert, shaders.PointShadowsFrag, ""); err != nil {
		r.Delete()
		return nil, fmt.Errorf("lit program: %w", err)
	}
	if r.cubemap, err = gpu.NewDepthCubemap(cfg.Size); err != nil {
		r.Delete()
		return nil, err
	}
	if r.diffuse, err = gpu.NewTexture2D(tex.Texels, tex.Width, tex.Height, tex.Channels); err != nil {
		r.Delete()
		return nil, fmt.Errorf("diffuse texture %s: %w", tex.Path, err)
	}
	for _, shape := range shapes {
		if err := r.meshes.Upload(shape); err != nil {
			r.Delete()
			return nil, fmt.Errorf("upload %s: %w", shape, err)
		}
	}

	r.depth = pass.DepthPass{Program: r.depthSh, Map: r.cubemap, Near: cfg.Near, Far: cfg.Far}
	r.lit = pass.LitPass{Program: r.litSh, Diffuse: r.diffuse, DepthMap: r.cubemap.Texture(), Far: cfg.Far}
	r.lit.Init()
	return r, nil
}

// Render runs the depth pass and then the split lit pass into a
// framebuffer of width x height pixels.
func (r *ShadowRenderer) Render(width, height int32, cam *core.CameraState, light mgl32.Vec3, list *pass.DrawList) {
	scene := list.Scene(r.device, r.meshes)

	r.depth.Run(r.device, light, scene)
	r.lit.Run(r.device, pass.Frame{
		Width:      width,
		Height:     height,
		View:       cam.GetViewMatrix(),
		Projection: cam.GetProjectionMatrix(pass.HalfAspect(width, height), pass.CameraNear, pass.CameraFar),
		Eye:        cam.Position,
		Light:      light,
	}, scene)
}

// Delete releases every GPU object. Safe on a partially built renderer.
func (r *ShadowRenderer) Delete() {
	if r.meshes != nil {
		r.meshes.Delete()
	}
	if r.depthSh != nil {
		r.depthSh.Delete()
		r.depthSh = nil
	}
	if r.litSh != nil {
		r.litSh.Delete()
		r.litSh = nil
	}
	if r.cubemap != nil {
		r.cubemap.Delete()
		r.cubemap = nil
	}
	if r.diffuse != 0 {
		gpu.DeleteTexture(r.diffuse)
		r.diffuse = 0
	}
}

// ShadowRendererModule installs a renderer created by NewShadowRenderer.
type ShadowRendererModule struct {
	Renderer *ShadowRenderer
}

func (m ShadowRendererModule) Install(app *App, cmd *Commands) {
	if m.Renderer == nil {
		panic("ShadowRendererModule: no renderer provided")
	}
	ensureSingleRenderer(app, RendererShadow)
	cmd.AddResources(m.Renderer)

	app.UseSystem(
		System(shadowRenderSystem).
			InStage(Render).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(shadowCleanupSystem).
			InStage(Render).
			InState(OnEnter(StateShutdown)),
	)
}

func shadowRenderSystem(r *ShadowRenderer, win *WindowState, rig *LightRig, list *pass.DrawList, cmd *Commands) {
	cam := ActiveCamera(cmd)
	if cam == nil {
		return
	}
	w, h := win.FramebufferSize()
	r.Render(int32(w), int32(h), cam, rig.Position(), list)
}

func shadowCleanupSystem(r *ShadowRenderer, cmd *Commands) {
	r.Delete()
	cmd.Logger().Debugf("Shadow renderer resources released")
}
