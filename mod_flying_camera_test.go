package omnishadow

import (
	"testing"
	"time"

	"github.com/gekko3d/omnishadow/rt/core"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlyingCamera_MovesForward(t *testing.T) {
	cam := core.NewCameraState(mgl32.Vec3{0, 0, 3})
	fly := &FlyingCameraComponent{}
	fly.Move[core.Forward] = true

	applyFlyingCamera(cam, fly, 1)

	// Default yaw looks down -Z.
	assert.InDelta(t, 3-cam.Speed, cam.Position.Z(), 1e-5)
	assert.InDelta(t, 0, cam.Position.X(), 1e-5)
}

func TestApplyFlyingCamera_LookAndZoom(t *testing.T) {
	cam := core.NewCameraState(mgl32.Vec3{})
	fly := &FlyingCameraComponent{Look: mgl32.Vec2{100, 2000}, Scroll: 50}

	applyFlyingCamera(cam, fly, 0)

	assert.InDelta(t, -90+100*cam.Sensitivity, cam.Yaw, 1e-4)
	assert.Equal(t, float32(89), cam.Pitch)
	assert.Equal(t, float32(core.MinZoom), cam.Zoom)
	assert.Equal(t, mgl32.Vec3{}, cam.Position)
}

func TestFlyingCamera_Systems(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()
	cmd.AddResources(&Input{MouseCaptured: true}, &Time{Dt: time.Second})
	app.UseModules(FlyingCameraModule{Position: mgl32.Vec3{0, 0, 3}})

	input := Resource[Input](cmd)
	input.Pressed[KeyS] = true
	input.MouseDeltaY = -10

	app.Step()

	cam := ActiveCamera(cmd)
	require.NotNil(t, cam)
	assert.InDelta(t, 3+cam.Speed, cam.Position.Z(), 1e-2)
	assert.InDelta(t, 10*cam.Sensitivity, cam.Pitch, 1e-4)
}

func TestActiveCamera_None(t *testing.T) {
	app := NewApp()
	assert.Nil(t, ActiveCamera(app.Commands()))
}
