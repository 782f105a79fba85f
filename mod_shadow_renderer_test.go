package omnishadow

import (
	"testing"

	"github.com/gekko3d/omnishadow/rt/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshBuilder_ConeNormalMode(t *testing.T) {
	first := mesh.DefaultConeParams().Segments * 3

	slant, err := meshBuilder(ShadowConfig{})(mesh.ShapeCone)
	require.NoError(t, err)
	radial, err := meshBuilder(ShadowConfig{RadialConeNormals: true})(mesh.ShapeCone)
	require.NoError(t, err)

	assert.Equal(t, radial.Position(first), radial.Normal(first))
	assert.NotEqual(t, slant.Normal(first), radial.Normal(first))
}

func TestMeshBuilder_EveryScene(t *testing.T) {
	build := meshBuilder(DefaultConfig().Shadow)
	for id, def := range Scenes {
		for _, shape := range def.Shapes() {
			m, err := build(shape)
			require.NoError(t, err, "scene %d shape %s", id, shape)
			assert.Positive(t, m.VertexCount(), "scene %d shape %s", id, shape)
		}
	}
}
