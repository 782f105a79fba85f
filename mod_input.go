package omnishadow

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyD
	KeyS
	KeyW
	KeyQ
	KeyE
	KeySpace
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	MouseButtonLeft
	MouseButtonRight
	keyCount
)

type InputModule struct {
	// CaptureMouse starts with the cursor disabled so the camera follows
	// the mouse right away.
	CaptureMouse bool
}

type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	MouseCaptured            bool
	ScrollY                  float64

	firstMouse    bool
	pendingScroll float64
	callbacksSet  bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{MouseCaptured: mod.CaptureMouse, firstMouse: true})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

// setButton records the polled state of one key and derives its edges.
func (input *Input) setButton(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// setCursor updates the mouse delta. The first sample after capture only
// records the position so the camera does not jump.
func (input *Input) setCursor(x, y float64) {
	if !input.MouseCaptured || input.firstMouse {
		input.MouseDeltaX, input.MouseDeltaY = 0, 0
		input.firstMouse = !input.MouseCaptured
	} else {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	}
	input.MouseX, input.MouseY = x, y
}

// flushScroll moves the scroll accumulated by callbacks into ScrollY.
func (input *Input) flushScroll() {
	input.ScrollY = input.pendingScroll
	input.pendingScroll = 0
}

func inputSystem(s *WindowState, input *Input) {
	if !input.callbacksSet {
		s.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.pendingScroll += yoff
		})
		input.callbacksSet = true
	}

	glfw.PollEvents()
	input.flushScroll()

	for key, glfwKey := range keyToGlfw {
		input.setButton(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range mouseToGlfw {
		input.setButton(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	if input.JustPressed[KeyTab] {
		input.MouseCaptured = !input.MouseCaptured
		input.firstMouse = true
	}
	input.setCursor(s.windowGlfw.GetCursorPos())

	if input.MouseCaptured {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:      glfw.KeyA,
	KeyD:      glfw.KeyD,
	KeyS:      glfw.KeyS,
	KeyW:      glfw.KeyW,
	KeyQ:      glfw.KeyQ,
	KeyE:      glfw.KeyE,
	KeySpace:  glfw.KeySpace,
	KeyEscape: glfw.KeyEscape,
	KeyTab:    glfw.KeyTab,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:  glfw.MouseButtonLeft,
	MouseButtonRight: glfw.MouseButtonRight,
}
