package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-draw/constants"
)

const (
	digitCols    = 3
	digitRows    = 5
	digitSpacing = 1
)

// digitFont holds 3x5 bitmaps, MSB-first: bit 2 = column 0
var digitFont = [10][digitRows]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111},
	{0b010, 0b110, 0b010, 0b010, 0b111},
	{0b111, 0b001, 0b111, 0b100, 0b111},
	{0b111, 0b001, 0b111, 0b001, 0b111},
	{0b101, 0b101, 0b111, 0b001, 0b001},
	{0b111, 0b100, 0b111, 0b001, 0b111},
	{0b111, 0b100, 0b111, 0b101, 0b111},
	{0b111, 0b001, 0b001, 0b001, 0b001},
	{0b111, 0b101, 0b111, 0b101, 0b111},
	{0b111, 0b101, 0b111, 0b001, 0b111},
}

// DigitsWidth returns the cell width of text rendered with DrawDigits
func DigitsWidth(text string) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	return n*digitCols*constants.DigitScale + (n-1)*digitSpacing*constants.DigitScale
}

// DrawDigits renders decimal digits as block glyphs centred on the layer
// Non-digit characters leave a gap
func (l *Layer) DrawDigits(text string, color tcell.Color) {
	scale := constants.DigitScale
	originX := (l.width - DigitsWidth(text)) / 2
	originY := (l.height - digitRows) / 2
	style := tcell.StyleDefault.Foreground(color)

	for i, ch := range text {
		if ch < '0' || ch > '9' {
			continue
		}
		glyph := digitFont[ch-'0']
		charX := originX + i*(digitCols+digitSpacing)*scale

		for row := 0; row < digitRows; row++ {
			bits := glyph[row]
			for col := 0; col < digitCols; col++ {
				if bits&(1<<(digitCols-1-col)) == 0 {
					continue
				}
				for s := 0; s < scale; s++ {
					l.Set(charX+col*scale+s, originY+row, constants.GlyphFull, style)
				}
			}
		}
	}
}
