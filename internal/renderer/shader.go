package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// compileProgram compiles vertex and fragment shaders and links them into a program.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

func infoLog(
	obj uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var logLen int32
	getiv(obj, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "(no info log)"
	}
	log := make([]byte, logLen)
	getLog(obj, logLen, nil, &log[0])
	return string(log[:logLen-1])
}

// uniform returns the location of a required uniform.
func uniform(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("uniform %q not found in program %d", name, program)
	}
	return loc, nil
}
