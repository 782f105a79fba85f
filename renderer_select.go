package omnishadow

// RendererName identifies a concrete renderer module.
type RendererName string

const (
	RendererShadow RendererName = "point-shadows"
)

// UseRenderer installs mod as the only renderer of the app. The window
// must already be installed by PlatformWindowModule.
func (app *App) UseRenderer(name RendererName, mod Module) *App {
	ensureSingleRenderer(app, name)
	app.Logger().Infof("Renderer selected: %s", name)
	app.UseModules(mod)
	return app
}
