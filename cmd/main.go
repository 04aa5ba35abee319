package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	glfwcontext "github.com/richinsley/litsolid/glfwcontext"
	host "github.com/richinsley/litsolid/host"
	options "github.com/richinsley/litsolid/options"
	renderer "github.com/richinsley/litsolid/renderer"
	scene "github.com/richinsley/litsolid/scene"
)

func runViewer(opts *options.ViewerOptions, shape scene.Shape) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(ctx, scene.DefaultLighting())
	if err != nil {
		ctx.Shutdown()
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	state := scene.NewState()
	state.CurrentShape = shape

	log.Println("Starting interactive render loop...")
	return host.New(ctx, r, state).Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.ViewerOptions{
		Width:  flag.Int("width", options.DefaultWidth, "Initial window width"),
		Height: flag.Int("height", options.DefaultHeight, "Initial window height"),
		Title:  flag.String("title", options.DefaultTitle, "Window title"),
		Shape:  flag.String("shape", options.DefaultShape, "Initial shape: pyramid or sphere"),
		Help:   flag.Bool("help", false, "Show help message"),
	}

	flag.Parse()

	if *opts.Help {
		fmt.Println("Lit solid viewer")
		fmt.Println("Keys: W/S/A/D/Q/E move the light, P pyramid, O sphere, Space light on/off,")
		fmt.Println("      Up/Down rotate, Esc quit")
		flag.PrintDefaults()
		return
	}

	shape, err := opts.Validate()
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := runViewer(opts, shape); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}
