package constants

import "time"

// Render Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffered capacity between the screen poller and the loop
	EventChannelSize = 100
)

// Surface geometry, one terminal cell covers CellWidth x CellHeight surface pixels
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)
