package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// NewTexture2D uploads tightly packed 8-bit texels with 1, 3 or 4 channels
// and builds mipmaps. RGBA textures clamp at the edges, others repeat.
func NewTexture2D(texels []byte, width, height, channels int) (uint32, error) {
	var format uint32
	switch channels {
	case 1:
		format = gl.RED
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", channels)
	}
	if width <= 0 || height <= 0 || len(texels) < width*height*channels {
		return 0, fmt.Errorf("texture data too short for %dx%dx%d", width, height, channels)
	}

	wrap := int32(gl.REPEAT)
	if format == gl.RGBA {
		wrap = gl.CLAMP_TO_EDGE
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(texels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return tex, nil
}

func DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}
