package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-draw/components"
	"github.com/rs/zerolog/log"
)

// Target receives routed intents, implemented by the draw session
type Target interface {
	Prompting() bool
	AppendDigit(r rune)
	Backspace()
	Submit() error
	Reset()
	ContactBegin(id components.ContactID, pos components.Point)
	ContactMove(id components.ContactID, pos components.Point)
	ContactEnd(id components.ContactID)
}

// Router feeds terminal events through the Machine and dispatches the intents
type Router struct {
	machine   *Machine
	target    Target
	toSurface func(x, y int) components.Point
	onResize  func()
	buf       []Intent
}

// NewRouter creates a router; toSurface converts a cell to surface coordinates
func NewRouter(machine *Machine, target Target, toSurface func(x, y int) components.Point, onResize func()) *Router {
	return &Router{
		machine:   machine,
		target:    target,
		toSurface: toSurface,
		onResize:  onResize,
		buf:       make([]Intent, 0, len(contactButtons)),
	}
}

// Handle processes one event, returns false when quit was requested
func (r *Router) Handle(ev tcell.Event) bool {
	if r.target.Prompting() {
		r.machine.SetMode(ModePrompt)
	} else {
		r.machine.SetMode(ModeDraw)
	}

	r.buf = r.machine.Process(r.buf[:0], ev)
	for _, it := range r.buf {
		if !r.dispatch(it) {
			return false
		}
	}
	return true
}

func (r *Router) dispatch(it Intent) bool {
	switch it.Type {
	case IntentQuit:
		return false
	case IntentResize:
		if r.onResize != nil {
			r.onResize()
		}
	case IntentDigit:
		r.target.AppendDigit(it.Char)
	case IntentBackspace:
		r.target.Backspace()
	case IntentStart:
		if err := r.target.Submit(); err != nil {
			log.Debug().Err(err).Msg("start rejected")
		}
	case IntentReset:
		r.target.Reset()
	case IntentContactBegin:
		r.target.ContactBegin(components.ContactID(it.Contact), r.toSurface(it.X, it.Y))
	case IntentContactMove:
		r.target.ContactMove(components.ContactID(it.Contact), r.toSurface(it.X, it.Y))
	case IntentContactEnd:
		r.target.ContactEnd(components.ContactID(it.Contact))
	}
	return true
}
