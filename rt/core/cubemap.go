package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CubeFace is one side of a cubemap in GL face order (+X, -X, +Y, -Y, +Z, -Z).
type CubeFace struct {
	Direction mgl32.Vec3
	Up        mgl32.Vec3
}

var CubeFaces = [6]CubeFace{
	{Direction: mgl32.Vec3{1, 0, 0}, Up: mgl32.Vec3{0, -1, 0}},
	{Direction: mgl32.Vec3{-1, 0, 0}, Up: mgl32.Vec3{0, -1, 0}},
	{Direction: mgl32.Vec3{0, 1, 0}, Up: mgl32.Vec3{0, 0, 1}},
	{Direction: mgl32.Vec3{0, -1, 0}, Up: mgl32.Vec3{0, 0, -1}},
	{Direction: mgl32.Vec3{0, 0, 1}, Up: mgl32.Vec3{0, -1, 0}},
	{Direction: mgl32.Vec3{0, 0, -1}, Up: mgl32.Vec3{0, -1, 0}},
}

// ShadowProjection is the 90 degree square frustum shared by all faces.
func ShadowProjection(near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(90), 1, near, far)
}

// FaceViews returns the six look-at matrices from the light toward each face.
func FaceViews(light mgl32.Vec3) [6]mgl32.Mat4 {
	var views [6]mgl32.Mat4
	for i, f := range CubeFaces {
		views[i] = mgl32.LookAtV(light, light.Add(f.Direction), f.Up)
	}
	return views
}

// ShadowTransforms returns projection*view for every face, in face order.
func ShadowTransforms(light mgl32.Vec3, near, far float32) [6]mgl32.Mat4 {
	proj := ShadowProjection(near, far)
	views := FaceViews(light)

	var res [6]mgl32.Mat4
	for i := range views {
		res[i] = proj.Mul4(views[i])
	}
	return res
}
