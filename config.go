package omnishadow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownScene  = errors.New("unknown scene")
)

const DefaultSceneID = 3

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Decorated bool   `yaml:"decorated"`
}

type AssetsConfig struct {
	Dir string `yaml:"dir"`
	// Textures maps a scene id to its diffuse texture file inside Dir.
	Textures map[int]string `yaml:"textures"`
}

type ShadowConfig struct {
	Size int32   `yaml:"size"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// RadialConeNormals shades cone sides with the legacy radial normals.
	RadialConeNormals bool `yaml:"radial_cone_normals"`
}

type CaptureConfig struct {
	Dir     string `yaml:"dir"`
	Quality int    `yaml:"quality"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
}

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   int           `yaml:"scene"`
	Assets  AssetsConfig  `yaml:"assets"`
	Shadow  ShadowConfig  `yaml:"shadow"`
	Capture CaptureConfig `yaml:"capture"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   bool          `yaml:"debug"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:     512,
			Height:    256,
			Title:     "omnishadow",
			Decorated: false,
		},
		Scene: DefaultSceneID,
		Assets: AssetsConfig{
			Dir: "assets",
			Textures: map[int]string{
				1: "wood.png",
				2: "123.png",
				3: "456.jpg",
				4: "wood.png",
			},
		},
		Shadow: ShadowConfig{
			Size: 1024,
			Near: 1,
			Far:  25,
		},
		Capture: CaptureConfig{
			Dir:     "captures",
			Quality: 100,
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 0, 3},
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, ok := Scenes[c.Scene]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownScene, c.Scene)
	}
	if c.Shadow.Size <= 0 {
		return fmt.Errorf("%w: shadow map size %d", ErrInvalidConfig, c.Shadow.Size)
	}
	if c.Shadow.Near <= 0 || c.Shadow.Near >= c.Shadow.Far {
		return fmt.Errorf("%w: shadow planes near=%v far=%v", ErrInvalidConfig, c.Shadow.Near, c.Shadow.Far)
	}
	if c.Capture.Quality < 1 || c.Capture.Quality > 100 {
		return fmt.Errorf("%w: capture quality %d", ErrInvalidConfig, c.Capture.Quality)
	}
	return nil
}

// TexturePath is the diffuse texture for the configured scene, or "" when
// the scene has none.
func (c Config) TexturePath() string {
	name, ok := c.Assets.Textures[c.Scene]
	if !ok || name == "" {
		return ""
	}
	return filepath.Join(c.Assets.Dir, name)
}

func (c Config) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Position)
}
