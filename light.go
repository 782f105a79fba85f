package omnishadow

import (
	"github.com/gekko3d/omnishadow/rt/core"

	"github.com/go-gl/mathgl/mgl32"
)

// LightRig selects the active capture station. Index is one-based and is
// only advanced by the capture controller.
type LightRig struct {
	Index int
}

func (r *LightRig) Position() mgl32.Vec3 {
	return core.LightAt(r.Index)
}

type LightModule struct{}

func (m LightModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&LightRig{Index: 1})
	app.UseSystem(
		System(lightMarkerSystem).
			InStage(Update).
			RunAlways(),
	)
}

func lightMarkerSystem(rig *LightRig, cmd *Commands) {
	pos := rig.Position()
	MakeQuery2[TransformComponent, LightMarker](cmd).Map(func(eid EntityId, tr *TransformComponent, _ *LightMarker) bool {
		tr.Position = pos
		return true
	})
}
