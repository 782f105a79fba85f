package capture

import (
	"image"
)

// FrameSource returns the current back buffer, bottom row first.
type FrameSource interface {
	ReadFrame() (*image.RGBA, error)
}

type Result struct {
	Path         string
	LightChanged bool
	Done         bool
}

type Controller struct {
	Cursor *Cursor
	Dir    string
	Writer *Writer
}

func NewController(scene int, dir string, quality int) *Controller {
	return &Controller{
		Cursor: NewCursor(scene),
		Dir:    dir,
		Writer: NewWriter(quality),
	}
}

// Trigger captures one frame at the cursor position. The cursor only moves
// when the file was written, so a failed capture is retried under the same
// name on the next trigger.
func (c *Controller) Trigger(src FrameSource) (Result, error) {
	if c.Cursor.Done() {
		return Result{Done: true}, nil
	}

	path := c.Cursor.Path(c.Dir)
	frame, err := src.ReadFrame()
	if err != nil {
		return Result{Path: path}, err
	}
	if err := c.Writer.Write(path, frame); err != nil {
		return Result{Path: path}, err
	}

	changed := c.Cursor.Advance()
	return Result{Path: path, LightChanged: changed, Done: c.Cursor.Done()}, nil
}
