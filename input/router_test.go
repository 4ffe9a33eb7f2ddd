package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-draw/components"
)

type fakeTarget struct {
	prompting bool
	digits    []rune
	submits   int
	resets    int
	begins    []components.Point
	moves     int
	ends      []components.ContactID
}

func (f *fakeTarget) Prompting() bool    { return f.prompting }
func (f *fakeTarget) AppendDigit(r rune) { f.digits = append(f.digits, r) }
func (f *fakeTarget) Backspace()         {}
func (f *fakeTarget) Submit() error      { f.submits++; return nil }
func (f *fakeTarget) Reset()             { f.resets++ }
func (f *fakeTarget) ContactBegin(_ components.ContactID, pos components.Point) {
	f.begins = append(f.begins, pos)
}
func (f *fakeTarget) ContactMove(components.ContactID, components.Point) { f.moves++ }
func (f *fakeTarget) ContactEnd(id components.ContactID)                 { f.ends = append(f.ends, id) }

func cellCenter(x, y int) components.Point {
	return components.Point{X: float64(x)*8 + 4, Y: float64(y)*16 + 8}
}

func TestRouterPromptFlow(t *testing.T) {
	target := &fakeTarget{prompting: true}
	r := NewRouter(NewMachine(nil), target, cellCenter, nil)

	r.Handle(tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone))
	r.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if len(target.digits) != 1 || target.digits[0] != '4' || target.submits != 1 {
		t.Errorf("target = %+v", target)
	}
}

func TestRouterContacts(t *testing.T) {
	target := &fakeTarget{}
	r := NewRouter(NewMachine(nil), target, cellCenter, nil)

	r.Handle(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone))
	r.Handle(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	r.Handle(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))

	if len(target.begins) != 1 || target.begins[0] != (components.Point{X: 20, Y: 56}) {
		t.Errorf("begins = %v", target.begins)
	}
	if target.moves != 1 || len(target.ends) != 1 || target.ends[0] != 1 {
		t.Errorf("moves %d ends %v", target.moves, target.ends)
	}

	// digits are ignored once a draw is running
	r.Handle(tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone))
	if len(target.digits) != 0 {
		t.Error("digit routed outside the prompt")
	}
}

func TestRouterQuitAndResize(t *testing.T) {
	resized := 0
	target := &fakeTarget{}
	r := NewRouter(NewMachine(nil), target, cellCenter, func() { resized++ })

	if !r.Handle(tcell.NewEventResize(120, 40)) || resized != 1 {
		t.Errorf("resize handled %d times", resized)
	}
	if !r.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) || target.resets != 1 {
		t.Error("reset not routed")
	}
	if r.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("quit did not stop handling")
	}
}
