package omnishadow

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServer_LoadTexturePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wood.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 255})
	require.NoError(t, imgio.Save(path, img, imgio.PNGEncoder()))

	server := NewAssetServer()
	id, err := server.LoadTexture(path)
	require.NoError(t, err)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, path, tex.Path)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 1, tex.Height)
	assert.Equal(t, 3, tex.Channels)
	assert.Equal(t, []uint8{10, 20, 30, 40, 50, 60}, tex.Texels)
}

func TestAssetServer_TextureChannels(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	tex := textureFromImage(gray)
	assert.Equal(t, 1, tex.Channels)
	assert.Len(t, tex.Texels, 4)
	assert.Equal(t, uint8(200), tex.Texels[3])

	translucent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	translucent.Set(0, 0, color.NRGBA{R: 255, A: 128})
	tex = textureFromImage(translucent)
	assert.Equal(t, 4, tex.Channels)
	assert.Len(t, tex.Texels, 4)
}

func TestAssetServer_LoadTextureOrFallback(t *testing.T) {
	var errOut bytes.Buffer
	log := NewLoggerTo(&bytes.Buffer{}, &errOut, "", false)

	server := NewAssetServer()
	missing := filepath.Join(t.TempDir(), "missing.png")
	id := server.LoadTextureOrFallback(missing, log)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, 1, tex.Width)
	assert.Equal(t, 1, tex.Height)
	assert.Equal(t, 3, tex.Channels)
	assert.Contains(t, errOut.String(), "Texture failed to load at path: "+missing)
}

func TestAssetServer_IdsAreUnique(t *testing.T) {
	server := NewAssetServer()
	a := server.CreateTexture([]uint8{0}, 1, 1, 1)
	b := server.CreateTexture([]uint8{0}, 1, 1, 1)
	if a == b {
		t.Errorf("asset ids should be unique, got %s twice", a)
	}
}
