package capture

import (
	"fmt"
	"path/filepath"
)

type State int

const (
	Idle State = iota
	Capturing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	ShotsPerLight = 10
	LightCount    = 10
)

// Cursor walks the (light, shot) grid for one scene. Light and Shot are
// one-based.
type Cursor struct {
	Scene int
	Light int
	Shot  int
	State State
}

func NewCursor(scene int) *Cursor {
	return &Cursor{Scene: scene, Light: 1, Shot: 1, State: Idle}
}

// FileName is the capture name for the current cursor position.
func (c *Cursor) FileName() string {
	return fmt.Sprintf("%d_%d_%d.jpg", c.Scene, c.Light, c.Shot)
}

func (c *Cursor) Path(dir string) string {
	return filepath.Join(dir, c.FileName())
}

// Advance moves to the next shot after a successful write. It reports
// whether the light station changed.
func (c *Cursor) Advance() (lightChanged bool) {
	if c.State == Done {
		return false
	}
	c.State = Capturing
	c.Shot++
	if c.Shot <= ShotsPerLight {
		return false
	}
	if c.Light >= LightCount {
		c.Shot = ShotsPerLight
		c.State = Done
		return false
	}
	c.Shot = 1
	c.Light++
	return true
}

func (c *Cursor) Done() bool {
	return c.State == Done
}

// Taken is the number of captures written so far.
func (c *Cursor) Taken() int {
	if c.State == Done {
		return LightCount * ShotsPerLight
	}
	return (c.Light-1)*ShotsPerLight + c.Shot - 1
}
