package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-draw/components"
)

// Cell is one painted terminal cell of a layer
type Cell struct {
	Rune  rune
	Style tcell.Style
	Set   bool
}

// Layer is a persistent drawable grid, painted in surface pixels and stored in cells
// Like a canvas, paint stays until it is cleared
type Layer struct {
	cells  []Cell
	width  int
	height int
	cellW  float64
	cellH  float64
}

// NewLayer creates a layer of width x height cells, each cellW x cellH surface pixels
func NewLayer(width, height int, cellW, cellH float64) *Layer {
	l := &Layer{cellW: cellW, cellH: cellH}
	l.Resize(width, height)
	return l
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient, and clears
func (l *Layer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(l.cells) < size {
		l.cells = make([]Cell, size)
	} else {
		l.cells = l.cells[:size]
	}
	l.width = width
	l.height = height
	l.Clear()
}

// Clear resets all cells using exponential copy
func (l *Layer) Clear() {
	if len(l.cells) == 0 {
		return
	}
	l.cells[0] = Cell{}
	for filled := 1; filled < len(l.cells); filled *= 2 {
		copy(l.cells[filled:], l.cells[:filled])
	}
}

// Width returns the layer width in cells
func (l *Layer) Width() int {
	return l.width
}

// Height returns the layer height in cells
func (l *Layer) Height() int {
	return l.height
}

// SurfaceSize returns the layer size in surface pixels
func (l *Layer) SurfaceSize() (float64, float64) {
	return float64(l.width) * l.cellW, float64(l.height) * l.cellH
}

// ToSurface maps the centre of cell (x, y) to surface pixels
func (l *Layer) ToSurface(x, y int) components.Point {
	return components.Point{
		X: (float64(x) + 0.5) * l.cellW,
		Y: (float64(y) + 0.5) * l.cellH,
	}
}

// ToCell maps a surface point to the cell containing it
func (l *Layer) ToCell(p components.Point) (int, int) {
	return int(math.Floor(p.X / l.cellW)), int(math.Floor(p.Y / l.cellH))
}

func (l *Layer) inBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Get returns the cell at (x, y)
func (l *Layer) Get(x, y int) (Cell, bool) {
	if !l.inBounds(x, y) {
		return Cell{}, false
	}
	return l.cells[y*l.width+x], true
}

// Set paints one cell, out-of-bounds writes are dropped
func (l *Layer) Set(x, y int, r rune, style tcell.Style) {
	if !l.inBounds(x, y) {
		return
	}
	l.cells[y*l.width+x] = Cell{Rune: r, Style: style, Set: true}
}

// Erase makes one cell transparent
func (l *Layer) Erase(x, y int) {
	if !l.inBounds(x, y) {
		return
	}
	l.cells[y*l.width+x] = Cell{}
}

// Painted returns the number of non-transparent cells
func (l *Layer) Painted() int {
	n := 0
	for i := range l.cells {
		if l.cells[i].Set {
			n++
		}
	}
	return n
}

// cellSpan returns the cell range covering [lo, hi] surface pixels on one axis
func cellSpan(lo, hi, size float64, limit int) (int, int) {
	a := int(math.Floor(lo / size))
	b := int(math.Floor(hi / size))
	if a < 0 {
		a = 0
	}
	if b > limit-1 {
		b = limit - 1
	}
	return a, b
}

// FillCircle paints a disc of radius pixels; border > 0 paints the outer ring in BorderColor
func (l *Layer) FillCircle(center components.Point, radius float64, fill tcell.Color, border float64) {
	if radius <= 0 {
		return
	}
	x0, x1 := cellSpan(center.X-radius, center.X+radius, l.cellW, l.width)
	y0, y1 := cellSpan(center.Y-radius, center.Y+radius, l.cellH, l.height)

	fillStyle := tcell.StyleDefault.Background(fill)
	ringStyle := tcell.StyleDefault.Background(BorderColor)
	painted := false

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := l.ToSurface(x, y)
			d := math.Hypot(p.X-center.X, p.Y-center.Y)
			if d > radius {
				continue
			}
			if border > 0 && d > radius-border {
				l.Set(x, y, ' ', ringStyle)
			} else {
				l.Set(x, y, ' ', fillStyle)
			}
			painted = true
		}
	}

	// Sub-cell discs still get their own cell
	if !painted {
		cx, cy := l.ToCell(center)
		l.Set(cx, cy, ' ', fillStyle)
	}
}

// ClearCircle erases every cell whose area touches the disc
func (l *Layer) ClearCircle(center components.Point, radius float64) {
	if radius <= 0 {
		return
	}
	x0, x1 := cellSpan(center.X-radius, center.X+radius, l.cellW, l.width)
	y0, y1 := cellSpan(center.Y-radius, center.Y+radius, l.cellH, l.height)
	halfDiag := math.Hypot(l.cellW, l.cellH) / 2

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := l.ToSurface(x, y)
			if math.Hypot(p.X-center.X, p.Y-center.Y) <= radius+halfDiag {
				l.Erase(x, y)
			}
		}
	}
}

// spinGlyphs approximate a small rectangle turning through a quarter per glyph
var spinGlyphs = [4]rune{'▀', '▐', '▄', '▌'}

// FillRotatedRect paints a w x h rectangle centred at (cx, cy) rotated by angle degrees
func (l *Layer) FillRotatedRect(cx, cy, w, h, angle float64, color tcell.Color) {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	halfW, halfH := w/2, h/2
	reach := math.Hypot(halfW, halfH)

	x0, x1 := cellSpan(cx-reach, cx+reach, l.cellW, l.width)
	y0, y1 := cellSpan(cy-reach, cy+reach, l.cellH, l.height)

	style := tcell.StyleDefault.Background(color)
	painted := false

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := l.ToSurface(x, y)
			dx, dy := p.X-cx, p.Y-cy
			u := dx*cos + dy*sin
			v := -dx*sin + dy*cos
			if math.Abs(u) <= halfW && math.Abs(v) <= halfH {
				l.Set(x, y, ' ', style)
				painted = true
			}
		}
	}

	if !painted {
		gx, gy := l.ToCell(components.Point{X: cx, Y: cy})
		quarter := int(math.Floor(angle/90)) % 4
		if quarter < 0 {
			quarter += 4
		}
		l.Set(gx, gy, spinGlyphs[quarter], tcell.StyleDefault.Foreground(color))
	}
}

// CenterText writes text centred on row
func (l *Layer) CenterText(row int, text string, style tcell.Style) {
	runes := []rune(text)
	x := (l.width - len(runes)) / 2
	for i, r := range runes {
		l.Set(x+i, row, r, style)
	}
}
