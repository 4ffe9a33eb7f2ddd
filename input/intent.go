package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Prompt intents
	IntentDigit     // 0-9
	IntentBackspace // Backspace
	IntentStart     // Enter

	// Draw intents
	IntentReset // r

	// Pointer intents, one per tracked button transition
	IntentContactBegin
	IntentContactMove
	IntentContactEnd
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type    IntentType
	Char    rune  // Typed digit
	Contact int64 // Contact id for pointer intents
	X, Y    int   // Cell position for pointer intents
}
