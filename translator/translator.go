package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		ctx := context.Background()
		translator, translatorErr = gst.NewShaderTranslator(ctx)
	})
	return translator, translatorErr
}

// Program is a translated vertex/fragment pair ready for compilation.
type Program struct {
	VertexCode   string
	FragmentCode string
	// Variables merges the variable maps of both stages, keyed by source name.
	Variables map[string]gst.ShaderVariable
}

// MappedName returns the name the translator gave a source variable. Names the
// translator did not report are returned unchanged.
func (p *Program) MappedName(name string) string {
	if v, ok := p.Variables[name]; ok && v.MappedName != "" {
		return v.MappedName
	}
	return name
}

// TranslateProgram converts WebGL2 vertex and fragment sources to desktop GLSL 4.10.
func TranslateProgram(vertexSource, fragmentSource string) (*Program, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}

	vs, err := t.TranslateShader(vertexSource, "vertex", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("vertex shader translation failed: %w", err)
	}
	fs, err := t.TranslateShader(fragmentSource, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}

	p := &Program{
		VertexCode:   vs.Code,
		FragmentCode: fs.Code,
		Variables:    make(map[string]gst.ShaderVariable, len(vs.Variables)+len(fs.Variables)),
	}
	for name, v := range vs.Variables {
		p.Variables[name] = v
	}
	for name, v := range fs.Variables {
		p.Variables[name] = v
	}
	return p, nil
}
