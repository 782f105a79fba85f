package omnishadow

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type AssetId string

// TextureAsset holds tightly packed 8-bit texels with 1, 3 or 4 channels.
type TextureAsset struct {
	Path     string
	Texels   []uint8
	Width    int
	Height   int
	Channels int
}

type AssetServer struct {
	textures map[AssetId]TextureAsset
}

// AssetServerModule shares Server, or a new empty server when nil.
type AssetServerModule struct {
	Server *AssetServer
}

func (m AssetServerModule) Install(app *App, cmd *Commands) {
	server := m.Server
	if server == nil {
		server = NewAssetServer()
	}
	app.addResources(server)
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		textures: make(map[AssetId]TextureAsset),
	}
}

func (server *AssetServer) CreateTexture(texels []uint8, width, height, channels int) AssetId {
	id := makeAssetId()
	server.textures[id] = TextureAsset{
		Texels:   texels,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
	return id
}

// LoadTexture decodes a PNG, JPEG, BMP, TIFF or WebP file.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	img, err := imgio.Open(filename)
	if err != nil {
		return "", fmt.Errorf("load texture %s: %w", filename, err)
	}

	tex := textureFromImage(img)
	tex.Path = filename

	id := makeAssetId()
	server.textures[id] = tex
	return id, nil
}

// LoadTextureOrFallback logs a failed load and returns a 1x1 white texture
// so the renderer never binds an undefined handle.
func (server *AssetServer) LoadTextureOrFallback(filename string, log Logger) AssetId {
	id, err := server.LoadTexture(filename)
	if err != nil {
		log.Errorf("Texture failed to load at path: %s (%v)", filename, err)
		return server.CreateTexture([]uint8{255, 255, 255}, 1, 1, 3)
	}
	return id
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	tex, ok := server.textures[id]
	return tex, ok
}

// textureFromImage picks the channel count from the decoded image: gray
// images keep one channel, opaque images three, the rest four.
func textureFromImage(img image.Image) TextureAsset {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	channels := 4
	switch {
	case img.ColorModel() == color.GrayModel:
		channels = 1
	case rgba.Opaque():
		channels = 3
	}

	texels := rgba.Pix
	if channels != 4 {
		texels = make([]uint8, 0, b.Dx()*b.Dy()*channels)
		for i := 0; i < len(rgba.Pix); i += 4 {
			texels = append(texels, rgba.Pix[i:i+channels]...)
		}
	}

	return TextureAsset{
		Texels:   texels,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
	}
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
