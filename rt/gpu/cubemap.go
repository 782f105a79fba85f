package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DepthCubemap is a framebuffer whose only attachment is a depth cubemap.
type DepthCubemap struct {
	fbo  uint32
	tex  uint32
	size int32
}

func NewDepthCubemap(size int32) (*DepthCubemap, error) {
	c := &DepthCubemap{size: size}

	gl.GenFramebuffers(1, &c.fbo)
	gl.GenTextures(1, &c.tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.tex)
	for face := uint32(0); face < 6; face++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face, 0, gl.DEPTH_COMPONENT, size, size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.FramebufferTexture(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, c.tex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		c.Delete()
		return nil, fmt.Errorf("depth cubemap framebuffer incomplete: 0x%x", status)
	}
	return c, nil
}

func (c *DepthCubemap) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
}

func (c *DepthCubemap) Size() int32 {
	return c.size
}

func (c *DepthCubemap) Texture() uint32 {
	return c.tex
}

func (c *DepthCubemap) Delete() {
	gl.DeleteFramebuffers(1, &c.fbo)
	gl.DeleteTextures(1, &c.tex)
}
