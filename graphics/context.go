package graphics

// Context defines the interface for a window with an OpenGL context.
type Context interface {
	MakeCurrent()
	// Shutdown releases the GL context and destroys the window.
	Shutdown()
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	GetFramebufferSize() (int, int)
	// WaitEvents blocks until at least one window event arrives and runs the
	// registered callbacks for everything pending.
	WaitEvents()

	SetKeyDownCallback(callback func(key int))
	SetResizeCallback(callback func(width, height int))
	SetRefreshCallback(callback func())
	SetCloseCallback(callback func())
}
