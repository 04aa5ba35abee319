// Package host runs the window lifecycle: it owns the scene state, turns window
// events into input and render calls, and pumps the blocking event queue.
package host

import (
	"fmt"
	"log"

	"github.com/richinsley/litsolid/graphics"
	"github.com/richinsley/litsolid/input"
	"github.com/richinsley/litsolid/scene"
)

// Renderer is what the host needs from the drawing side.
type Renderer interface {
	Init() error
	Resize(width, height int)
	RenderFrame(s *scene.State)
	Shutdown()
}

// Host drives one window from creation to teardown. All methods must be called
// from the thread that owns the graphics context.
type Host struct {
	context  graphics.Context
	renderer Renderer
	state    *scene.State

	phase Phase
	dirty bool
	err   error
}

// New wires the context callbacks to the host. Nothing happens until Run.
func New(ctx graphics.Context, r Renderer, s *scene.State) *Host {
	h := &Host{
		context:  ctx,
		renderer: r,
		state:    s,
		phase:    PhaseUninitialized,
	}

	ctx.SetKeyDownCallback(func(key int) {
		h.Dispatch(Event{Kind: EventKey, Key: input.Key(key)})
	})
	ctx.SetResizeCallback(func(width, height int) {
		h.Dispatch(Event{Kind: EventResize, Width: width, Height: height})
	})
	ctx.SetRefreshCallback(func() {
		h.Dispatch(Event{Kind: EventPaint})
	})
	ctx.SetCloseCallback(func() {
		h.Dispatch(Event{Kind: EventClose})
	})

	return h
}

// Phase returns the current lifecycle stage.
func (h *Host) Phase() Phase {
	return h.phase
}

// State returns the scene the host owns.
func (h *Host) State() *scene.State {
	return h.state
}

// NeedsRepaint reports whether a paint is pending.
func (h *Host) NeedsRepaint() bool {
	return h.dirty
}

// Run creates the scene and processes events until the window is destroyed.
// A close only marks the window for destruction; Run tears it down once the
// event wait has returned. It returns the error that stopped creation, if any.
func (h *Host) Run() error {
	h.Dispatch(Event{Kind: EventCreate})
	if h.err != nil {
		return h.err
	}

	for h.phase != PhaseTerminated {
		// the window is destroyed here, never from inside a callback
		if h.phase == PhaseDestroying {
			h.Dispatch(Event{Kind: EventDestroy})
			continue
		}
		if h.dirty {
			h.Dispatch(Event{Kind: EventPaint})
			continue
		}
		h.context.WaitEvents()
	}
	return nil
}

// Dispatch handles a single event to completion. Events that make no sense in the
// current phase are dropped.
func (h *Host) Dispatch(ev Event) {
	switch ev.Kind {
	case EventCreate:
		h.onCreate()
	case EventResize:
		h.onResize(ev.Width, ev.Height)
	case EventPaint:
		h.onPaint()
	case EventKey:
		h.onKey(ev.Key)
	case EventClose:
		h.onClose()
	case EventDestroy:
		h.onDestroy()
	}
}

func (h *Host) onCreate() {
	if h.phase != PhaseUninitialized {
		return
	}
	if err := h.renderer.Init(); err != nil {
		h.err = fmt.Errorf("failed to initialize renderer: %w", err)
		h.phase = PhaseDestroying
		h.onDestroy()
		return
	}
	h.phase = PhaseContextReady
	log.Printf("Context ready, drawing %s", h.state.CurrentShape)

	// a new window gets a size and then a paint
	width, height := h.context.GetFramebufferSize()
	h.onResize(width, height)
	h.dirty = true
}

func (h *Host) onResize(width, height int) {
	if h.phase != PhaseContextReady {
		return
	}
	h.renderer.Resize(width, height)
	h.dirty = true
}

func (h *Host) onPaint() {
	if h.phase != PhaseContextReady {
		h.dirty = false
		return
	}
	h.renderer.RenderFrame(h.state)
	h.context.SwapBuffers()
	h.dirty = false
}

func (h *Host) onKey(key input.Key) {
	if h.phase != PhaseContextReady {
		return
	}
	prev := h.state.CurrentShape
	act := input.Handle(h.state, key)
	if h.state.CurrentShape != prev {
		log.Printf("Switched to %s", h.state.CurrentShape)
	}
	if act.Redraw {
		h.dirty = true
	}
	if act.Close {
		h.Dispatch(Event{Kind: EventClose})
	}
}

func (h *Host) onClose() {
	if h.phase != PhaseContextReady {
		return
	}
	h.phase = PhaseDestroying
	h.dirty = false
}

func (h *Host) onDestroy() {
	if h.phase != PhaseDestroying {
		return
	}
	log.Println("Shutting down")
	h.renderer.Shutdown()
	h.context.Shutdown()
	h.dirty = false
	h.phase = PhaseTerminated
}
