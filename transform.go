package omnishadow

import (
	"github.com/gekko3d/omnishadow/rt/core"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent places an entity in the world.
type TransformComponent struct {
	core.Transform
}

func (t *TransformComponent) Model() mgl32.Mat4 {
	return t.ObjectToWorld()
}

// placement rotates around PlacementAxis.
func placement(position mgl32.Vec3, angleDeg, scale float32) core.Transform {
	return core.NewPlacement(position, angleDeg, PlacementAxis, scale)
}
