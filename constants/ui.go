package constants

// Status Bar Layout
const (
	// StatusBarHeight is the number of rows reserved below the drawing surface
	StatusBarHeight = 1

	// WinnerFieldWidth is the max number of digits accepted in the winner field
	WinnerFieldWidth = 2

	// DigitScale is the horizontal cell count per countdown glyph column
	DigitScale = 2
)

// GlyphFull is the solid block the countdown digits are built from
const GlyphFull = '█'
