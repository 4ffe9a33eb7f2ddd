package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/constants"
)

// Fixed UI colours
var (
	BorderColor    = tcell.ColorWhite
	CountdownColor = tcell.ColorWhite
	StatusColor    = tcell.ColorSilver
	MessageColor   = tcell.ColorYellow
	ErrorColor     = tcell.ColorRed
)

var paletteColors [constants.PaletteSize]tcell.Color

func init() {
	for i, name := range constants.Palette {
		paletteColors[i] = tcell.GetColor(name)
	}
}

// PaletteColor resolves a colour tag to a terminal colour
func PaletteColor(tag components.ColorTag) tcell.Color {
	i := int(tag) % constants.PaletteSize
	if i < 0 {
		i += constants.PaletteSize
	}
	return paletteColors[i]
}
