package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
)

const (
	defaultYaw         = -90
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1
	MaxZoom            = 45
	MinZoom            = 1
)

// CameraState is a Y-up fly camera. Angles and zoom are in degrees.
type CameraState struct {
	Position    mgl32.Vec3
	WorldUp     mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	Zoom        float32
}

func NewCameraState(position mgl32.Vec3) *CameraState {
	return &CameraState{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         defaultYaw,
		Pitch:       0,
		Speed:       defaultSpeed,
		Sensitivity: defaultSensitivity,
		Zoom:        MaxZoom,
	}
}

func (c *CameraState) GetForward() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func (c *CameraState) GetRight() mgl32.Vec3 {
	return c.GetForward().Cross(c.WorldUp).Normalize()
}

func (c *CameraState) GetUp() mgl32.Vec3 {
	return c.GetRight().Cross(c.GetForward()).Normalize()
}

func (c *CameraState) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.GetForward()), c.GetUp())
}

// GetProjectionMatrix uses Zoom as the vertical field of view.
func (c *CameraState) GetProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

func (c *CameraState) Move(dir CameraMovement, dt float32) {
	step := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.GetForward().Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.GetForward().Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.GetRight().Mul(step))
	case Right:
		c.Position = c.Position.Add(c.GetRight().Mul(step))
	}
}

// Look applies a mouse offset. Positive dy looks up.
func (c *CameraState) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -89, 89)
}

func (c *CameraState) Scroll(dy float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-dy, MinZoom, MaxZoom)
}
