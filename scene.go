package omnishadow

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gekko3d/omnishadow/rt/core"
	"github.com/gekko3d/omnishadow/rt/mesh"
	"github.com/gekko3d/omnishadow/rt/pass"

	"github.com/go-gl/mathgl/mgl32"
)

// PlacementAxis is the rotation axis shared by every placement.
var PlacementAxis = mgl32.Vec3{1, 0, 1}.Normalize()

// SceneDef defines the initial state of a scene.
type SceneDef struct {
	ID      int
	Objects []ObjectDef
}

// ObjectDef places one shape: model = T(Position) * R(Angle, PlacementAxis) * S(Scale).
type ObjectDef struct {
	Shape    mesh.Shape
	Position mgl32.Vec3
	Angle    float32
	Scale    float32
	Material pass.Material
}

// Shapes lists the distinct shapes a scene draws, light marker included.
func (s SceneDef) Shapes() []mesh.Shape {
	shapes := []mesh.Shape{mesh.ShapeCube}
	for _, obj := range s.Objects {
		if !slices.Contains(shapes, obj.Shape) {
			shapes = append(shapes, obj.Shape)
		}
	}
	return shapes
}

type MeshComponent struct {
	Shape mesh.Shape
}

type MaterialComponent struct {
	pass.Material
}

// LightMarker tags the small emissive cube that follows the light.
type LightMarker struct{}

const lightMarkerScale = 0.1

var room = ObjectDef{Shape: mesh.ShapeCube, Scale: 10, Material: pass.Material{ReverseNormals: true}}

func cube(x, y, z, angle, scale float32) ObjectDef {
	return ObjectDef{Shape: mesh.ShapeCube, Position: mgl32.Vec3{x, y, z}, Angle: angle, Scale: scale}
}

var roomCubes = []ObjectDef{
	cube(2, -3.5, 0, 0, 0.5),
	cube(4, 3, 1, 0, 0.75),
	cube(-3, -2, 0, 30, 0.5),
	cube(-1.5, 1, 3.5, 0, 0.5),
	cube(-1.5, -2, -4, 50, 0.75),
}

// Scenes holds every selectable scene by id.
var Scenes = map[int]SceneDef{
	1: {
		ID:      1,
		Objects: append([]ObjectDef{room}, roomCubes...),
	},
	2: {
		ID: 2,
		Objects: []ObjectDef{
			room,
			cube(5, -5, 0, 40, 0.5),
			cube(4, 3, 1, 0, 0.1),
			cube(-3, -2, 0, 30, 0.3),
			cube(6.5, 1, 3.5, 0, 0.6),
			cube(1.5, 2, -1, 60, 0.75),
			cube(5, 7, -8, 20, 0.75),
			cube(-4.5, -9, -4, 20, 0.75),
			cube(-1.5, 3, -2, 20, 2),
			{Shape: mesh.ShapeCone, Position: mgl32.Vec3{0.5, -1, 1}, Scale: 1},
		},
	},
	3: {
		ID: 3,
		Objects: slices.Concat([]ObjectDef{room}, roomCubes, []ObjectDef{
			{Shape: mesh.ShapeSphere, Position: mgl32.Vec3{0, 0, -3}, Scale: 1, Material: pass.Material{Highlight: true}},
		}),
	},
	4: {
		ID: 4,
		Objects: []ObjectDef{
			room,
			{Shape: mesh.ShapePrism, Position: mgl32.Vec3{-2, -3, 0}, Scale: 1.5, Material: pass.Material{Highlight: true}},
			{Shape: mesh.ShapePlane, Position: mgl32.Vec3{2, -4.9, 0}, Scale: 4},
			cube(2, -4, 0, 0, 0.5),
			cube(-3, 2, 2, 30, 0.5),
		},
	},
}

func LookupScene(id int) (SceneDef, error) {
	def, ok := Scenes[id]
	if !ok {
		return SceneDef{}, fmt.Errorf("%w: %d", ErrUnknownScene, id)
	}
	return def, nil
}

// LoadScene spawns one entity per object plus the light marker at light.
func LoadScene(cmd *Commands, def SceneDef, light mgl32.Vec3) {
	for _, obj := range def.Objects {
		spawnObject(cmd, obj)
	}

	cmd.AddEntity(
		&TransformComponent{Transform: placement(light, 0, lightMarkerScale)},
		&MeshComponent{Shape: mesh.ShapeCube},
		&MaterialComponent{Material: pass.Material{Emissive: true}},
		&LightMarker{},
	)
}

func spawnObject(cmd *Commands, def ObjectDef) EntityId {
	return cmd.AddEntity(
		&TransformComponent{Transform: placement(def.Position, def.Angle, def.Scale)},
		&MeshComponent{Shape: def.Shape},
		&MaterialComponent{Material: def.Material},
	)
}

// SceneModule spawns the selected scene and rebuilds the shared draw list
// every frame.
type SceneModule struct {
	Scene SceneDef
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	rig := Resource[LightRig](cmd)
	light := core.LightAt(1)
	if rig != nil {
		light = rig.Position()
	}

	cmd.AddResources(&pass.DrawList{})
	LoadScene(cmd, m.Scene, light)

	app.UseSystem(
		System(drawListSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

// drawListSystem collects every drawable entity in entity id order so the
// draw order matches the placement list.
func drawListSystem(list *pass.DrawList, cmd *Commands) {
	type entry struct {
		eid  EntityId
		item pass.DrawItem
	}
	var entries []entry

	MakeQuery3[TransformComponent, MeshComponent, MaterialComponent](cmd).Map(
		func(eid EntityId, tr *TransformComponent, m *MeshComponent, mat *MaterialComponent) bool {
			entries = append(entries, entry{eid: eid, item: pass.DrawItem{
				Shape:    m.Shape,
				Model:    tr.Model(),
				Material: mat.Material,
			}})
			return true
		})

	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.eid, b.eid) })

	list.Reset()
	for _, e := range entries {
		list.Add(e.item)
	}
}
