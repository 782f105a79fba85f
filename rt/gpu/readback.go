package gpu

import (
	"image"

	"github.com/gekko3d/omnishadow/rt/capture"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BackBufferReader reads the default framebuffer's back buffer as RGB.
type BackBufferReader struct {
	Size func() (width, height int)
}

func (r BackBufferReader) ReadFrame() (*image.RGBA, error) {
	w, h := r.Size()
	if w <= 0 || h <= 0 {
		return nil, capture.ErrNoFrame
	}
	pix := make([]byte, w*h*3)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	return capture.FrameFromRGB(w, h, pix)
}
