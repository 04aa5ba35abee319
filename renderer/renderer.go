package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/litsolid/camera"
	"github.com/richinsley/litsolid/geometry"
	"github.com/richinsley/litsolid/graphics"
	"github.com/richinsley/litsolid/scene"
)

// Ensure gl.Init() is called only once.
var glInitOnce sync.Once

// Renderer draws the scene's solid into the current framebuffer. It never swaps
// buffers; presenting is the window host's job.
type Renderer struct {
	context    graphics.Context
	lighting   scene.Lighting
	program    *solidProgram
	vao        uint32
	vbo        uint32
	projection mgl32.Mat4
	viewport   camera.Viewport
}

// NewRenderer makes ctx current and loads the OpenGL entry points.
func NewRenderer(ctx graphics.Context, lighting scene.Lighting) (*Renderer, error) {
	r := &Renderer{
		context:  ctx,
		lighting: lighting,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	width, height := ctx.GetFramebufferSize()
	r.projection = camera.Projection(width, height)
	r.viewport = camera.NewViewport(width, height)
	return r, nil
}

// Init performs the one-time setup: clear color, depth testing, the lit-solid
// program with its fixed light and material, and the streaming vertex buffer.
func (r *Renderer) Init() error {
	cc := r.lighting.ClearColor
	gl.ClearColor(cc[0], cc[1], cc[2], cc[3])
	gl.Enable(gl.DEPTH_TEST)

	var err error
	r.program, err = newSolidProgram()
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(r.program.positionAttrib)
	gl.VertexAttribPointer(r.program.positionAttrib, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.program.normalAttrib)
	gl.VertexAttribPointer(r.program.normalAttrib, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	p := r.program
	l := r.lighting
	refl := l.Reflectance()
	gl.UseProgram(p.shaderProgram)
	gl.Uniform3f(p.lightDiffLoc, l.LightDiffuse[0], l.LightDiffuse[1], l.LightDiffuse[2])
	gl.Uniform3f(p.lightAmbLoc, l.LightAmbient[0], l.LightAmbient[1], l.LightAmbient[2])
	gl.Uniform3f(p.sceneAmbLoc, l.SceneAmbient[0], l.SceneAmbient[1], l.SceneAmbient[2])
	gl.Uniform4f(p.reflectanceLoc, refl[0], refl[1], refl[2], refl[3])
	gl.Uniform4f(p.colorLoc, l.DrawColor[0], l.DrawColor[1], l.DrawColor[2], l.DrawColor[3])
	gl.UseProgram(0)

	return nil
}

// Resize updates the viewport and projection for a new framebuffer size. Both
// values come from camera and are tested there; the gl.Viewport call needs a
// live context and is only checked by running the viewer.
func (r *Renderer) Resize(width, height int) {
	r.viewport = camera.NewViewport(width, height)
	r.projection = camera.Projection(width, height)
	gl.Viewport(int32(r.viewport.X), int32(r.viewport.Y), int32(r.viewport.Width), int32(r.viewport.Height))
}

// RenderFrame draws s into the back buffer.
func (r *Renderer) RenderFrame(s *scene.State) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	t := camera.ForScene(s)

	gl.UseProgram(p.shaderProgram)
	gl.UniformMatrix4fv(p.projectionLoc, 1, false, &r.projection[0])
	gl.UniformMatrix4fv(p.viewLoc, 1, false, &t.View[0])
	gl.Uniform4f(p.lightPosLoc, t.EyeLight[0], t.EyeLight[1], t.EyeLight[2], t.EyeLight[3])
	if s.LightEnabled {
		gl.Uniform1i(p.lightingLoc, 1)
	} else {
		gl.Uniform1i(p.lightingLoc, 0)
	}
	gl.UniformMatrix4fv(p.modelLoc, 1, false, &t.Model[0])

	mesh := geometry.MeshForShape(s.CurrentShape)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Data)*4, gl.Ptr(mesh.Data), gl.STREAM_DRAW)
	for _, dr := range mesh.Ranges {
		gl.DrawArrays(glMode(dr.Mode), int32(dr.First), int32(dr.Count))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Shutdown releases the GL objects. The context itself is shut down by the host.
func (r *Renderer) Shutdown() {
	if r.program != nil {
		r.program.Destroy()
		r.program = nil
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

func glMode(m geometry.Mode) uint32 {
	switch m {
	case geometry.ModeTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}
