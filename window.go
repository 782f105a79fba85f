package omnishadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState owns the GLFW window and its current OpenGL context.
// glfw.Init must have been called on the locked main thread.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func NewWindowState(cfg WindowConfig) (*WindowState, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfwBool(cfg.Decorated))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("init OpenGL: %w", err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  cfg.Width,
		WindowHeight: cfg.Height,
		windowTitle:  cfg.Title,
	}, nil
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on HiDPI displays.
func (s *WindowState) FramebufferSize() (int, int) {
	return s.windowGlfw.GetFramebufferSize()
}

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

func (s *WindowState) Close() {
	s.windowGlfw.SetShouldClose(true)
}

func (s *WindowState) SwapBuffers() {
	s.windowGlfw.SwapBuffers()
}

func (s *WindowState) Destroy() {
	s.windowGlfw.Destroy()
}
