package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
	buttons  [len(contactButtons)]buttonState
}

// NewMachine creates a new input machine with the given bindings, nil selects the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		mode:     ModePrompt,
		keyTable: kt,
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the parser's mode context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Reset forgets held buttons without reporting releases
func (m *Machine) Reset() {
	m.buttons = [len(contactButtons)]buttonState{}
}

// Process parses an event and appends the resulting intents to dst
func (m *Machine) Process(dst []Intent, ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return append(dst, Intent{Type: IntentResize})
	case *tcell.EventKey:
		if it, ok := m.processKey(ev); ok {
			return append(dst, it)
		}
	case *tcell.EventMouse:
		return m.processMouse(dst, ev)
	}
	return dst
}

func (m *Machine) processKey(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() != tcell.KeyRune {
		it, ok := m.keyTable.Keys[ev.Key()]
		if !ok || it == IntentNone {
			return Intent{}, false
		}
		return Intent{Type: it}, true
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		if m.mode != ModePrompt {
			return Intent{}, false
		}
		return Intent{Type: IntentDigit, Char: r}, true
	}

	it, ok := m.keyTable.Runes[r]
	if !ok || it == IntentNone {
		return Intent{}, false
	}
	return Intent{Type: it}, true
}

// processMouse diffs the button mask against the previous event
// Each tracked button yields begin on press, move on drag and end on release
func (m *Machine) processMouse(dst []Intent, ev *tcell.EventMouse) []Intent {
	x, y := ev.Position()
	mask := ev.Buttons()

	for i, b := range contactButtons {
		prev := &m.buttons[i]
		down := mask&b.mask != 0

		switch {
		case down && !prev.down:
			dst = append(dst, Intent{Type: IntentContactBegin, Contact: b.id, X: x, Y: y})
		case down && prev.down && (prev.x != x || prev.y != y):
			dst = append(dst, Intent{Type: IntentContactMove, Contact: b.id, X: x, Y: y})
		case !down && prev.down:
			dst = append(dst, Intent{Type: IntentContactEnd, Contact: b.id, X: x, Y: y})
		}

		*prev = buttonState{down: down, x: x, y: y}
	}
	return dst
}
