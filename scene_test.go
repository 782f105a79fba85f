package omnishadow

import (
	"testing"

	"github.com/gekko3d/omnishadow/rt/core"
	"github.com/gekko3d/omnishadow/rt/mesh"
	"github.com/gekko3d/omnishadow/rt/pass"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenes_RoomComesFirst(t *testing.T) {
	for id, def := range Scenes {
		assert.Equal(t, id, def.ID)
		require.NotEmpty(t, def.Objects, "scene %d", id)

		first := def.Objects[0]
		assert.Equal(t, mesh.ShapeCube, first.Shape, "scene %d", id)
		assert.Equal(t, float32(10), first.Scale, "scene %d", id)
		assert.True(t, first.Material.ReverseNormals, "scene %d", id)

		for _, obj := range def.Objects[1:] {
			assert.False(t, obj.Material.ReverseNormals, "scene %d", id)
			assert.Greater(t, obj.Scale, float32(0), "scene %d", id)
		}
	}
}

func TestScenes_Contents(t *testing.T) {
	assert.Len(t, Scenes[1].Objects, 6)
	assert.Len(t, Scenes[2].Objects, 10)
	assert.Len(t, Scenes[3].Objects, 7)

	sphere := Scenes[3].Objects[6]
	assert.Equal(t, mesh.ShapeSphere, sphere.Shape)
	assert.Equal(t, mgl32.Vec3{0, 0, -3}, sphere.Position)
	assert.True(t, sphere.Material.Highlight)

	cone := Scenes[2].Objects[9]
	assert.Equal(t, mesh.ShapeCone, cone.Shape)
	assert.Equal(t, mgl32.Vec3{0.5, -1, 1}, cone.Position)

	assert.ElementsMatch(t, []mesh.Shape{mesh.ShapeCube, mesh.ShapePrism, mesh.ShapePlane}, Scenes[4].Shapes())
	assert.ElementsMatch(t, []mesh.Shape{mesh.ShapeCube, mesh.ShapeSphere}, Scenes[3].Shapes())
}

func TestLookupScene(t *testing.T) {
	def, err := LookupScene(DefaultSceneID)
	require.NoError(t, err)
	assert.Equal(t, DefaultSceneID, def.ID)

	_, err = LookupScene(42)
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestPlacement_MatchesTRS(t *testing.T) {
	tr := TransformComponent{Transform: placement(mgl32.Vec3{-3, -2, 0}, 30, 0.5)}

	want := mgl32.Translate3D(-3, -2, 0).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(30), mgl32.Vec3{1, 0, 1}.Normalize())).
		Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))

	got := tr.Model()
	for i := range want {
		if d := got[i] - want[i]; d > 1e-5 || d < -1e-5 {
			t.Errorf("model matrix element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSceneModule_BuildsDrawList(t *testing.T) {
	app := NewApp()
	app.UseModules(LightModule{}, SceneModule{Scene: Scenes[1]})
	app.Step()

	list := Resource[pass.DrawList](app.Commands())
	require.NotNil(t, list)
	require.Len(t, list.Items, len(Scenes[1].Objects)+1)

	assert.True(t, list.Items[0].Material.ReverseNormals)
	marker := list.Items[len(list.Items)-1]
	assert.True(t, marker.Material.Emissive)
	assert.Equal(t, mesh.ShapeCube, marker.Shape)

	// Stepping again rebuilds rather than appends.
	app.Step()
	assert.Len(t, list.Items, len(Scenes[1].Objects)+1)
}

func TestLightMarker_FollowsRig(t *testing.T) {
	app := NewApp()
	app.UseModules(LightModule{}, SceneModule{Scene: Scenes[3]})
	app.Step()

	cmd := app.Commands()
	rig := Resource[LightRig](cmd)
	require.NotNil(t, rig)
	assert.Equal(t, core.LightAt(1), rig.Position())

	rig.Index = 4
	app.Step()

	list := Resource[pass.DrawList](cmd)
	marker := list.Items[len(list.Items)-1]
	assert.Equal(t, core.LightPositions[3], marker.Model.Col(3).Vec3())
	assert.InDelta(t, lightMarkerScale, marker.Model.At(0, 0), 1e-6)
}
