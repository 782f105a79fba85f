package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked GL shader program with cached uniform locations.
type Program struct {
	id        uint32
	locations map[string]int32
}

type shaderStage struct {
	kind uint32
	src  string
	name string
}

// NewProgram compiles and links a program. geom may be empty.
func NewProgram(vert, frag, geom string) (*Program, error) {
	stages := []shaderStage{
		{gl.VERTEX_SHADER, vert, "vertex"},
		{gl.FRAGMENT_SHADER, frag, "fragment"},
	}
	if geom != "" {
		stages = append(stages, shaderStage{gl.GEOMETRY_SHADER, geom, "geometry"})
	}

	id := gl.CreateProgram()
	var compiled []uint32
	defer func() {
		for _, s := range compiled {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		s, err := compileShader(st.src, st.kind)
		if err != nil {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("%s shader: %w", st.name, err)
		}
		compiled = append(compiled, s)
		gl.AttachShader(id, s)
	}

	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)

		return nil, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return &Program{id: id, locations: make(map[string]int32)}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

// location returns -1 for uniforms the linker dropped; GL ignores writes to -1.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}
