package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/omnishadow"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	sceneID := flag.Int("scene", 0, "scene id, overrides the config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *sceneID, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, sceneID int, debug bool) error {
	cfg, err := omnishadow.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if sceneID != 0 {
		cfg.Scene = sceneID
	}
	cfg.Debug = cfg.Debug || debug
	if err := cfg.Validate(); err != nil {
		return err
	}
	scene, err := omnishadow.LookupScene(cfg.Scene)
	if err != nil {
		return err
	}

	app := omnishadow.NewAppBuilder().
		UseStates(omnishadow.StateRunning, omnishadow.StateShutdown).
		UseModule(omnishadow.LoggingModule{Prefix: "omnishadow", Debug: cfg.Debug}).
		Build()
	log := app.Logger()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	window, err := omnishadow.NewWindowState(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	assets := omnishadow.NewAssetServer()
	var diffuse omnishadow.TextureAsset
	if path := cfg.TexturePath(); path != "" {
		diffuse, _ = assets.Texture(assets.LoadTextureOrFallback(path, log))
	} else {
		diffuse, _ = assets.Texture(assets.CreateTexture([]uint8{255, 255, 255}, 1, 1, 3))
	}

	renderer, err := omnishadow.NewShadowRenderer(cfg.Shadow, diffuse, scene.Shapes())
	if err != nil {
		return err
	}

	app.UseModules(
		omnishadow.TimeModule{},
		omnishadow.InputModule{CaptureMouse: true},
		omnishadow.PlatformWindowModule{Window: window},
		omnishadow.AssetServerModule{Server: assets},
		omnishadow.LightModule{},
		omnishadow.SceneModule{Scene: scene},
		omnishadow.FlyingCameraModule{Position: cfg.CameraPosition()},
		omnishadow.CaptureModule{
			Scene:   cfg.Scene,
			Dir:     cfg.Capture.Dir,
			Quality: cfg.Capture.Quality,
		},
	)
	app.UseRenderer(omnishadow.RendererShadow, omnishadow.ShadowRendererModule{Renderer: renderer})

	log.Infof("Scene %d, press Space to capture, Tab to toggle the mouse, Esc to quit", cfg.Scene)
	app.Run()
	return nil
}
