package omnishadow

import (
	"github.com/gekko3d/omnishadow/rt/core"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent is the viewer. Only the first camera entity is rendered.
type CameraComponent struct {
	*core.CameraState
}

func NewCameraComponent(position mgl32.Vec3) *CameraComponent {
	return &CameraComponent{CameraState: core.NewCameraState(position)}
}

// FlyingCameraComponent holds the per-frame intent gathered from input.
type FlyingCameraComponent struct {
	Move   [4]bool
	Look   mgl32.Vec2
	Scroll float32
}

type FlyingCameraModule struct {
	Position mgl32.Vec3
}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	cmd.AddEntity(NewCameraComponent(m.Position), &FlyingCameraComponent{})

	app.UseSystem(
		System(FlyingCameraInputSystem).
			InStage(Update).
			RunAlways(),
	)
	app.UseSystem(
		System(FlyingCameraControlSystem).
			InStage(Update).
			RunAlways(),
	)
}

func FlyingCameraInputSystem(input *Input, cmd *Commands) {
	MakeQuery1[FlyingCameraComponent](cmd).Map(func(eid EntityId, fly *FlyingCameraComponent) bool {
		fly.Move[core.Forward] = input.Pressed[KeyW]
		fly.Move[core.Backward] = input.Pressed[KeyS]
		fly.Move[core.Left] = input.Pressed[KeyA]
		fly.Move[core.Right] = input.Pressed[KeyD]

		if input.MouseCaptured {
			// Screen y grows downwards.
			fly.Look = mgl32.Vec2{float32(input.MouseDeltaX), float32(-input.MouseDeltaY)}
		} else {
			fly.Look = mgl32.Vec2{}
		}
		fly.Scroll = float32(input.ScrollY)
		return true
	})
}

func FlyingCameraControlSystem(cmd *Commands, time *Time) {
	dt := time.DeltaSeconds()

	MakeQuery2[CameraComponent, FlyingCameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, fly *FlyingCameraComponent) bool {
		applyFlyingCamera(cam.CameraState, fly, dt)
		return true
	})
}

func applyFlyingCamera(cam *core.CameraState, fly *FlyingCameraComponent, dt float32) {
	cam.Look(fly.Look.X(), fly.Look.Y())
	if fly.Scroll != 0 {
		cam.Scroll(fly.Scroll)
	}
	if dt <= 0 {
		return
	}
	for dir, pressed := range fly.Move {
		if pressed {
			cam.Move(core.CameraMovement(dir), dt)
		}
	}
}

// ActiveCamera returns the first camera entity, or nil when there is none.
func ActiveCamera(cmd *Commands) *core.CameraState {
	var cam *core.CameraState
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, c *CameraComponent) bool {
		cam = c.CameraState
		return false
	})
	return cam
}
