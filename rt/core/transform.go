package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// NewPlacement builds a transform from a translation, an angle in degrees
// around axis and a uniform scale. A zero axis means no rotation.
func NewPlacement(position mgl32.Vec3, angleDeg float32, axis mgl32.Vec3, scale float32) Transform {
	rot := mgl32.QuatIdent()
	if angleDeg != 0 && axis.Len() > 0 {
		rot = mgl32.QuatRotate(mgl32.DegToRad(angleDeg), axis.Normalize())
	}
	return Transform{
		Position: position,
		Rotation: rot,
		Scale:    mgl32.Vec3{scale, scale, scale},
	}
}

func (t *Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}
