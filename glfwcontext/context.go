package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/litsolid/graphics"
	options "github.com/richinsley/litsolid/options"
)

// Context is a GLFW window together with its OpenGL context.
type Context struct {
	window *glfw.Window

	onKeyDown func(key int)
	onResize  func(width, height int)
	onRefresh func()
	onClose   func()
}

var _ graphics.Context = &Context{}

// New creates the window and its OpenGL 4.1 core context. The context is not made
// current; the renderer does that before loading GL.
func New(opts *options.ViewerOptions) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// 32-bit RGBA, 24-bit depth, 8-bit stencil, double buffered
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	c := &Context{window: win}

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(c.glfwKeyCallback)

	// Framebuffer size rather than window size: on high-DPI displays they differ and
	// the viewport needs pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if c.onResize != nil {
			c.onResize(width, height)
		}
	})

	win.SetRefreshCallback(func(_ *glfw.Window) {
		if c.onRefresh != nil {
			c.onRefresh()
		}
	})

	win.SetCloseCallback(func(w *glfw.Window) {
		// the host decides when the window actually goes away
		w.SetShouldClose(false)
		if c.onClose != nil {
			c.onClose()
		}
	})

	return c, nil
}

// glfwKeyCallback forwards key-down events, auto-repeat included, to the registered callback.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if c.onKeyDown != nil {
		c.onKeyDown(int(key))
	}
}

func (c *Context) SetKeyDownCallback(callback func(key int)) {
	c.onKeyDown = callback
}

func (c *Context) SetResizeCallback(callback func(width, height int)) {
	c.onResize = callback
}

func (c *Context) SetRefreshCallback(callback func()) {
	c.onRefresh = callback
}

func (c *Context) SetCloseCallback(callback func()) {
	c.onClose = callback
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown detaches the context and destroys the window.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	glfw.DetachCurrentContext()
	c.window.Destroy()
	c.window = nil
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) WaitEvents() {
	glfw.WaitEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
