package omnishadow

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_changeState(t *testing.T) {
	app := NewAppBuilder().UseStates(StateRunning, StateShutdown).Build()

	app.changeState(StateShutdown)
	if app.nextState != StateShutdown {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

	app.executeChangeState(StateShutdown)
	if app.state != StateShutdown {
		t.Errorf("The app state should change correctly.")
	}
}

func TestApp_addResources(t *testing.T) {
	app := &App{resources: make(map[reflect.Type]any)}

	resource1 := &MockResource1{name: "Resource1"}
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := &MockResource2{name: "Resource2"}
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_SystemInjection(t *testing.T) {
	app := NewApp()
	app.addResources(&MockResource1{name: "first"})

	var seen string
	app.UseSystem(System(func(r *MockResource1, cmd *Commands) {
		seen = r.name
		cmd.Quit()
	}))

	app.Run()
	assert.Equal(t, "first", seen)
}

func TestApp_MissingDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_StageOrder(t *testing.T) {
	app := NewApp()

	var order []string
	for _, stage := range []Stage{Finale, Render, PostRender, Prelude, Update, PreUpdate} {
		name := stage.Name
		app.UseSystem(System(func() { order = append(order, name) }).InStage(stage))
	}
	app.Step()

	assert.Equal(t, []string{"Prelude", "PreUpdate", "Update", "Render", "PostRender", "Finale"}, order)
}

func TestApp_UseStage(t *testing.T) {
	app := NewApp()
	custom := Stage{Name: "Custom"}
	app.UseStage(custom, AfterStage(Render))

	var order []string
	app.UseSystem(System(func() { order = append(order, "post") }).InStage(PostRender))
	app.UseSystem(System(func() { order = append(order, "custom") }).InStage(custom))
	app.UseSystem(System(func() { order = append(order, "render") }).InStage(Render))
	app.Step()

	assert.Equal(t, []string{"render", "custom", "post"}, order)
	assert.Panics(t, func() { app.UseStage(Stage{Name: "X"}, BeforeStage(Stage{Name: "missing"})) })
}

func TestApp_StatefulLifecycle(t *testing.T) {
	app := NewAppBuilder().UseStates(StateRunning, StateShutdown).Build()

	var events []string
	frames := 0
	app.UseSystem(System(func() { events = append(events, "enter running") }).InState(OnEnter(StateRunning)))
	app.UseSystem(System(func() { events = append(events, "exit running") }).InState(OnExit(StateRunning)))
	app.UseSystem(System(func() { events = append(events, "enter shutdown") }).InState(OnEnter(StateShutdown)))
	app.UseSystem(System(func() { events = append(events, "exit shutdown") }).InState(OnExit(StateShutdown)))
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 3 {
			cmd.ChangeState(StateShutdown)
		}
	}).InState(OnExecute(StateRunning)))

	app.Run()

	assert.Equal(t, 3, frames)
	assert.Equal(t, StateShutdown, app.State())
	assert.Equal(t, []string{"enter running", "exit running", "enter shutdown", "exit shutdown"}, events)
	assert.True(t, app.Step(), "a finished app stays finished")
}

func TestApp_StatefulSystemInStatelessAppPanics(t *testing.T) {
	app := NewApp()
	assert.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		app.UseSystem(System(func() {}).InState(OnEnter(StateRunning)))
	})
}

func TestApp_CommandsAreDeferred(t *testing.T) {
	type Tag struct{ n int }

	app := NewApp()
	cmd := app.Commands()
	id := cmd.AddEntity(Tag{n: 1})

	assert.Nil(t, cmd.GetAllComponents(id))
	app.FlushCommands()
	assert.Equal(t, []any{Tag{n: 1}}, cmd.GetAllComponents(id))

	cmd.RemoveEntity(id)
	cmd.AddComponents(id, Tag{n: 2})
	app.FlushCommands()
	assert.Nil(t, cmd.GetAllComponents(id))
}

func TestApp_ResourceLookup(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()
	assert.Nil(t, Resource[MockResource1](cmd))

	cmd.AddResources(&MockResource1{name: "x"})
	assert.Equal(t, "x", Resource[MockResource1](cmd).name)
}
