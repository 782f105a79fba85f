package pass

import (
	"fmt"
	"testing"

	"github.com/gekko3d/omnishadow/rt/core"
	"github.com/gekko3d/omnishadow/rt/mesh"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs every call as a short string so tests can assert ordering.
type recorder struct {
	calls    []string
	mats     map[string]mgl32.Mat4
	vecs     map[string]mgl32.Vec3
	floats   map[string]float32
	ints     map[string]int32
	uploads  []string
	draws    []mesh.Shape
	mapBound int
}

func newRecorder() *recorder {
	return &recorder{
		mats:   map[string]mgl32.Mat4{},
		vecs:   map[string]mgl32.Vec3{},
		floats: map[string]float32{},
		ints:   map[string]int32{},
	}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Use() { r.log("use") }
func (r *recorder) SetMat4(name string, m mgl32.Mat4) {
	r.mats[name] = m
	r.uploads = append(r.uploads, name)
}
func (r *recorder) SetVec3(name string, v mgl32.Vec3) {
	r.vecs[name] = v
	r.uploads = append(r.uploads, name)
}
func (r *recorder) SetFloat(name string, v float32) {
	r.floats[name] = v
	r.uploads = append(r.uploads, name)
}
func (r *recorder) SetInt(name string, v int32) {
	r.ints[name] = v
	r.uploads = append(r.uploads, name)
	r.log("int %s=%d", name, v)
}

func (r *recorder) BindDefaultFramebuffer()   { r.log("fb default") }
func (r *recorder) Viewport(x, y, w, h int32) { r.log("viewport %d %d %d %d", x, y, w, h) }
func (r *recorder) Clear(color, depth bool)   { r.log("clear %v %v", color, depth) }
func (r *recorder) SetCulling(enabled bool)   { r.log("cull %v", enabled) }
func (r *recorder) BindTexture2D(unit, tex uint32) {
	r.log("tex2d %d %d", unit, tex)
}
func (r *recorder) BindCubemap(unit, tex uint32) { r.log("cube %d %d", unit, tex) }

func (r *recorder) Bind()           { r.mapBound++; r.log("fb shadow") }
func (r *recorder) Size() int32     { return 1024 }
func (r *recorder) Texture() uint32 { return 7 }

func (r *recorder) Draw(shape mesh.Shape) {
	r.draws = append(r.draws, shape)
	r.log("draw %v", shape)
}

func TestDepthPass_Run(t *testing.T) {
	r := newRecorder()
	p := &DepthPass{Program: r, Map: r, Near: 1, Far: 25}
	light := mgl32.Vec3{1, 1, 3}

	drawn := 0
	got := p.Run(r, light, func(u Uniforms) { drawn++ })

	assert.Equal(t, 1, drawn)
	assert.Equal(t, 1, r.mapBound)
	assert.Equal(t, []string{"fb shadow", "viewport 0 0 1024 1024", "clear false true", "use", "fb default"}, r.calls)

	expected := core.ShadowTransforms(light, 1, 25)
	assert.Equal(t, expected, got)
	for i := range expected {
		assert.Equal(t, expected[i], r.mats[fmt.Sprintf("shadowMatrices[%d]", i)])
	}
	assert.Equal(t, float32(25), r.floats[UniformFarPlane])
	assert.Equal(t, light, r.vecs[UniformLightPos])
}

func TestLitPass_Init(t *testing.T) {
	r := newRecorder()
	(&LitPass{Program: r}).Init()

	assert.Equal(t, int32(DiffuseUnit), r.ints[UniformDiffuse])
	assert.Equal(t, int32(DepthMapUnit), r.ints[UniformDepthMap])
}

func TestLitPass_SplitViewport(t *testing.T) {
	r := newRecorder()
	p := &LitPass{Program: r, Diffuse: 3, DepthMap: 7, Far: 25}
	f := Frame{
		Width:      512,
		Height:     256,
		View:       mgl32.Ident4(),
		Projection: mgl32.Perspective(mgl32.DegToRad(45), HalfAspect(512, 256), CameraNear, CameraFar),
		Eye:        mgl32.Vec3{0, 0, 3},
		Light:      mgl32.Vec3{2, -2, 1},
	}

	var shadowsAtDraw []int32
	p.Run(r, f, func(u Uniforms) {
		shadowsAtDraw = append(shadowsAtDraw, r.ints[UniformShadows])
	})

	assert.Equal(t, []int32{1, 0}, shadowsAtDraw)
	assert.Equal(t, []string{
		"fb default",
		"viewport 0 0 256 256",
		"clear true true",
		"use",
		"int shadows=1",
		"tex2d 0 3",
		"cube 1 7",
		"viewport 256 0 256 256",
		"int shadows=0",
		"tex2d 0 3",
		"cube 1 7",
	}, r.calls)
	assert.Equal(t, f.Projection, r.mats[UniformProjection])
	assert.Equal(t, f.Eye, r.vecs[UniformViewPos])
}

func TestLitPass_ShadowToggleKeepsCameraUniforms(t *testing.T) {
	r := newRecorder()
	p := &LitPass{Program: r, Far: 25}

	var atLeft, atRight []string
	calls := 0
	p.Run(r, Frame{Width: 800, Height: 600, View: mgl32.Ident4(), Projection: mgl32.Ident4()}, func(u Uniforms) {
		if calls == 0 {
			atLeft = append([]string(nil), r.uploads...)
		} else {
			atRight = append([]string(nil), r.uploads...)
		}
		calls++
	})

	require.Equal(t, 2, calls)
	between := atRight[len(atLeft):]
	assert.Equal(t, []string{UniformShadows}, between)
}

func TestHalfAspect(t *testing.T) {
	assert.Equal(t, float32(1), HalfAspect(512, 256))
	assert.InDelta(t, 0.6666, HalfAspect(800, 600), 1e-3)
	assert.Equal(t, float32(1), HalfAspect(800, 0))
}

func TestDrawList_RoomTogglesCulling(t *testing.T) {
	r := newRecorder()
	var list DrawList
	list.Add(DrawItem{Shape: mesh.ShapeCube, Model: mgl32.Scale3D(10, 10, 10), Material: Material{ReverseNormals: true}})
	list.Add(DrawItem{Shape: mesh.ShapeSphere, Model: mgl32.Translate3D(0, 0, -3), Material: Material{Highlight: true}})
	list.Add(DrawItem{Shape: mesh.ShapeCube, Model: mgl32.Ident4(), Material: Material{Emissive: true}})

	list.Scene(r, r)(r)

	assert.Equal(t, []string{
		"int light=0",
		"int another=0",
		"cull false",
		"int reverse_normals=1",
		"draw cube",
		"int reverse_normals=0",
		"cull true",
		"int light=0",
		"int another=1",
		"draw sphere",
		"int light=1",
		"int another=0",
		"draw cube",
	}, r.calls)
	assert.Equal(t, mgl32.Ident4(), r.mats[UniformModel])

	list.Reset()
	assert.Empty(t, list.Items)
}
