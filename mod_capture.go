package omnishadow

import (
	"github.com/gekko3d/omnishadow/rt/capture"
	"github.com/gekko3d/omnishadow/rt/gpu"
)

// CaptureModule saves a screenshot each time Space is pressed, stepping
// through every shot of every light station. The app shuts down once the
// grid is complete.
type CaptureModule struct {
	Scene   int
	Dir     string
	Quality int
	// Source defaults to the window back buffer.
	Source capture.FrameSource
}

type CaptureState struct {
	Controller *capture.Controller
	Source     capture.FrameSource
}

func (m CaptureModule) Install(app *App, cmd *Commands) {
	state := &CaptureState{
		Controller: capture.NewController(m.Scene, m.Dir, m.Quality),
		Source:     m.Source,
	}
	cmd.AddResources(state)

	if rig := Resource[LightRig](cmd); rig != nil {
		rig.Index = state.Controller.Cursor.Light
	}

	app.UseSystem(
		System(captureSystem).
			InStage(PostRender).
			InState(OnExecute(StateRunning)),
	)
}

// captureSystem runs after rendering and before the buffers are swapped so
// the back buffer still holds the finished frame.
func captureSystem(state *CaptureState, input *Input, rig *LightRig, win *WindowState, cmd *Commands) {
	if !input.JustPressed[KeySpace] {
		return
	}
	if state.Source == nil {
		state.Source = gpu.BackBufferReader{Size: win.FramebufferSize}
	}
	triggerCapture(state, rig, cmd)
}

func triggerCapture(state *CaptureState, rig *LightRig, cmd *Commands) {
	res, err := state.Controller.Trigger(state.Source)
	if err != nil {
		cmd.Logger().Errorf("Failed to save screenshot %s: %v", res.Path, err)
		return
	}
	if res.Path != "" {
		cmd.Logger().Infof("Screenshot saved as %s", res.Path)
	}

	rig.Index = state.Controller.Cursor.Light
	if res.LightChanged && !res.Done {
		cmd.Logger().Debugf("Light moved to station %d", rig.Index)
	}
	if res.Done {
		cmd.Logger().Infof("Captured %d screenshots, shutting down", state.Controller.Cursor.Taken())
		cmd.ChangeState(StateShutdown)
	}
}
