package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-draw/constants"
)

// StatusBar is the text chrome drawn around the layers
type StatusBar struct {
	Status  string // Winner target, empty once winners are drawn
	Field   string // Winner count entry, shown while idle
	Hint    string // Key hints, includes the reset affordance when available
	Message string // Transient instruction or validation message
	Error   bool   // Message is a validation failure
	Debug   string // Metrics line, empty unless debug is enabled
}

// Compositor stacks layers bottom-up onto the screen and adds the status bar
type Compositor struct {
	screen tcell.Screen
	layers []*Layer
}

// NewCompositor creates a compositor drawing layers in the given order
func NewCompositor(screen tcell.Screen, layers ...*Layer) *Compositor {
	return &Compositor{
		screen: screen,
		layers: layers,
	}
}

// SurfaceCells returns the drawable area in cells, the screen minus the status bar
func (c *Compositor) SurfaceCells() (int, int) {
	w, h := c.screen.Size()
	h -= constants.StatusBarHeight
	if h < 0 {
		h = 0
	}
	return w, h
}

// Resize matches every layer to the current screen size
func (c *Compositor) Resize() {
	w, h := c.SurfaceCells()
	for _, l := range c.layers {
		if l.Width() != w || l.Height() != h {
			l.Resize(w, h)
		}
	}
}

// Draw paints one frame and shows it
func (c *Compositor) Draw(bar StatusBar) {
	c.screen.Clear()

	for _, l := range c.layers {
		for y := 0; y < l.height; y++ {
			row := l.cells[y*l.width : (y+1)*l.width]
			for x := range row {
				if row[x].Set {
					c.screen.SetContent(x, y, row[x].Rune, nil, row[x].Style)
				}
			}
		}
	}

	w, h := c.screen.Size()
	if h == 0 {
		c.screen.Show()
		return
	}
	barY := h - 1

	statusStyle := tcell.StyleDefault.Foreground(StatusColor)
	x := c.drawText(0, barY, bar.Status, statusStyle.Bold(true))
	if bar.Field != "" {
		if x > 0 {
			x = c.drawText(x, barY, " | ", statusStyle)
		}
		c.drawText(x, barY, bar.Field, statusStyle.Reverse(true))
	}
	if bar.Hint != "" {
		c.drawText(w-len([]rune(bar.Hint)), barY, bar.Hint, statusStyle)
	}

	if bar.Message != "" {
		style := tcell.StyleDefault.Foreground(MessageColor)
		if bar.Error {
			style = tcell.StyleDefault.Foreground(ErrorColor).Bold(true)
		}
		msg := []rune(bar.Message)
		c.drawText((w-len(msg))/2, 1, bar.Message, style)
	}

	if bar.Debug != "" {
		c.drawText(0, 0, bar.Debug, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	c.screen.Show()
}

// drawText writes text starting at (x, y) and returns the column after it
func (c *Compositor) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
