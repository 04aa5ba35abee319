package input

// Key is a keyboard key code. Values match GLFW key codes, which use ASCII for
// printable keys, so a glfw.Key converts directly.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

const (
	KeySpace Key = 32  // Spacebar (ASCII)
	KeyA     Key = 65  // A key (ASCII)
	KeyD     Key = 68  // D key (ASCII)
	KeyE     Key = 69  // E key (ASCII)
	KeyO     Key = 79  // O key (ASCII)
	KeyP     Key = 80  // P key (ASCII)
	KeyQ     Key = 81  // Q key (ASCII)
	KeyS     Key = 83  // S key (ASCII)
	KeyW     Key = 87  // W key (ASCII)
	KeyEsc   Key = 256 // Escape key (GLFW)
	KeyDown  Key = 264 // Down arrow (GLFW)
	KeyUp    Key = 265 // Up arrow (GLFW)
)
