package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spinlight/pkg/math"
)

// Device is the slice of the graphics API the shader package needs.
type Device interface {
	CompileShader(stage Stage, source string) (id uint32, log string, ok bool)
	DeleteShader(id uint32)
	LinkProgram(shaders ...uint32) (id uint32, log string, ok bool)
	DeleteProgram(id uint32)
	UseProgram(id uint32)

	// UniformLocation returns -1 for names the program does not use.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m *math.Mat4)
	UniformMatrix3(location int32, m *math.Mat3)
	Uniform3(location int32, v math.Vec3)
	Uniform1(location int32, v float32)
}

// GL implements Device on the current OpenGL context.
type GL struct{}

var stageTypes = map[Stage]uint32{
	StageVertex:   gl.VERTEX_SHADER,
	StageFragment: gl.FRAGMENT_SHADER,
}

// CompileShader compiles a single shader of the given stage.
func (GL) CompileShader(stage Stage, source string) (uint32, string, bool) {
	shader := gl.CreateShader(stageTypes[stage])
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return shader, log, false
	}
	return shader, "", true
}

func (GL) DeleteShader(id uint32) { gl.DeleteShader(id) }

// LinkProgram links the shaders into a new program.
func (GL) LinkProgram(shaders ...uint32) (uint32, string, bool) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
		return program, log, false
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, "", true
}

func (GL) DeleteProgram(id uint32) { gl.DeleteProgram(id) }
func (GL) UseProgram(id uint32)    { gl.UseProgram(id) }

func (GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GL) UniformMatrix4(location int32, m *math.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, m.Ptr())
}

func (GL) UniformMatrix3(location int32, m *math.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, m.Ptr())
}

func (GL) Uniform3(location int32, v math.Vec3) {
	gl.Uniform3f(location, v.X, v.Y, v.Z)
}

func (GL) Uniform1(location int32, v float32) {
	gl.Uniform1f(location, v)
}
