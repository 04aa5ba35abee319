package host

import (
	"fmt"

	"github.com/richinsley/litsolid/input"
)

// EventKind tags an Event.
type EventKind int

const (
	EventCreate EventKind = iota
	EventResize
	EventPaint
	EventKey
	EventClose
	EventDestroy
)

func (k EventKind) String() string {
	switch k {
	case EventCreate:
		return "create"
	case EventResize:
		return "resize"
	case EventPaint:
		return "paint"
	case EventKey:
		return "key"
	case EventClose:
		return "close"
	case EventDestroy:
		return "destroy"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a window-system event. Width and Height are set for EventResize,
// Key for EventKey.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	Key    input.Key
}

// Phase is the window lifecycle stage.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseContextReady
	PhaseDestroying
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseContextReady:
		return "context-ready"
	case PhaseDestroying:
		return "destroying"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
