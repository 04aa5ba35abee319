package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	shader "github.com/richinsley/litsolid/shader"
	xlate "github.com/richinsley/litsolid/translator"
)

// solidProgram is the linked lit-solid program and the locations of its inputs.
type solidProgram struct {
	shaderProgram uint32

	positionAttrib uint32
	normalAttrib   uint32

	modelLoc       int32
	viewLoc        int32
	projectionLoc  int32
	lightPosLoc    int32
	lightDiffLoc   int32
	lightAmbLoc    int32
	sceneAmbLoc    int32
	reflectanceLoc int32
	colorLoc       int32
	lightingLoc    int32
}

func newSolidProgram() (*solidProgram, error) {
	translated, err := xlate.TranslateProgram(shader.GenerateVertexShader(), shader.GetFragmentShader())
	if err != nil {
		return nil, err
	}

	program, err := newProgram(translated.VertexCode, translated.FragmentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	p := &solidProgram{shaderProgram: program}
	gl.UseProgram(program)

	p.positionAttrib = attribLocation(program, translated, shader.AttribPosition, 0)
	p.normalAttrib = attribLocation(program, translated, shader.AttribNormal, 1)

	p.modelLoc = uniformLocation(program, translated, shader.UniformModel)
	p.viewLoc = uniformLocation(program, translated, shader.UniformView)
	p.projectionLoc = uniformLocation(program, translated, shader.UniformProjection)
	p.lightPosLoc = uniformLocation(program, translated, shader.UniformLightPosition)
	p.lightDiffLoc = uniformLocation(program, translated, shader.UniformLightDiffuse)
	p.lightAmbLoc = uniformLocation(program, translated, shader.UniformLightAmbient)
	p.sceneAmbLoc = uniformLocation(program, translated, shader.UniformSceneAmbient)
	p.reflectanceLoc = uniformLocation(program, translated, shader.UniformReflectance)
	p.colorLoc = uniformLocation(program, translated, shader.UniformColor)
	p.lightingLoc = uniformLocation(program, translated, shader.UniformLighting)

	return p, nil
}

func (p *solidProgram) Destroy() {
	gl.DeleteProgram(p.shaderProgram)
}

// uniformLocation looks a uniform up by the name the translator gave it. Returns -1
// when the uniform was optimised out; gl.Uniform* ignores that location.
func uniformLocation(program uint32, translated *xlate.Program, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(translated.MappedName(name)+"\x00"))
}

// attribLocation resolves a vertex attribute, falling back to the layout location
// written in the source.
func attribLocation(program uint32, translated *xlate.Program, name string, fallback uint32) uint32 {
	loc := gl.GetAttribLocation(program, gl.Str(translated.MappedName(name)+"\x00"))
	if loc < 0 {
		return fallback
	}
	return uint32(loc)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
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
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
