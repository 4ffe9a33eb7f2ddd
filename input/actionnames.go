package input

import (
	"slices"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve YAML action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":      IntentQuit,
	"start":     IntentStart,
	"reset":     IntentReset,
	"backspace": IntentBackspace,
}

// ActionIntent returns the intent bound to an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionNames returns all registered action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
