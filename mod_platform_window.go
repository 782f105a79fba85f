package omnishadow

import (
	"reflect"
)

// PlatformWindowModule shares one WindowState with the renderer, input and
// capture modules. The window is created by the caller because GL context
// creation must happen on the locked main thread before any module runs.
type PlatformWindowModule struct {
	Window *WindowState
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if !app.hasResource(t) {
		if m.Window == nil {
			panic("PlatformWindowModule: no window provided")
		}
		app.addResources(m.Window)
	}

	app.UseSystem(
		System(windowCloseSystem).
			InStage(PreUpdate).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(swapBuffersSystem).
			InStage(Finale).
			InState(OnExecute(StateRunning)),
	)
}

// windowCloseSystem runs after input polling and moves the app to
// shutdown when the window is closed or Escape is pressed.
func windowCloseSystem(s *WindowState, input *Input, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		s.Close()
	}
	if s.ShouldClose() {
		cmd.ChangeState(StateShutdown)
	}
}

func swapBuffersSystem(s *WindowState) {
	s.SwapBuffers()
}
