package input

import "github.com/gdamore/tcell/v2"

// InputMode mirrors the session mode for parser context
// Kept in sync by Router via SetMode
type InputMode uint8

const (
	ModePrompt InputMode = iota // Idle, editing the winner count
	ModeDraw                    // Collecting, counting down or celebrating
)

// contactButtons maps the tracked mouse buttons to contact ids
// A terminal pointer delivers at most three simultaneous contacts
var contactButtons = [...]struct {
	mask tcell.ButtonMask
	id   int64
}{
	{tcell.Button1, 1},
	{tcell.Button2, 2},
	{tcell.Button3, 3},
}

// buttonState is the last seen pointer state per tracked button
type buttonState struct {
	down bool
	x, y int
}
