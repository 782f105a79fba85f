package omnishadow

import (
	"fmt"
	"reflect"
)

// RendererTag records which renderer owns the GL context.
type RendererTag struct {
	Name RendererName
}

// ensureSingleRenderer panics when a different renderer is already
// installed. Installing the same renderer twice is allowed.
func ensureSingleRenderer(app *App, name RendererName) {
	if app == nil {
		panic("ensureSingleRenderer: app is nil")
	}
	t := reflect.TypeOf((*RendererTag)(nil)).Elem()
	res, ok := app.resources[t]
	if !ok {
		app.addResources(&RendererTag{Name: name})
		return
	}
	tag := res.(*RendererTag)
	if tag.Name != name {
		app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
		panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
	}
}
