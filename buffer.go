package sticky

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Attribute is a set of text styling flags.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrInverse
)

// Has reports whether the set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// ColorMode selects how a Color value is interpreted.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default
	ColorANSI                     // 16/256 palette index
	ColorRGB                      // 24-bit true color
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	Mode    ColorMode
	Index   uint8 // palette index for ColorANSI
	R, G, B uint8 // channels for ColorRGB
}

// Palette returns one of the 256 palette colors.
func Palette(index uint8) Color {
	return Color{Mode: ColorANSI, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Basic palette colors for convenience.
var (
	Black   = Palette(0)
	Red     = Palette(1)
	Green   = Palette(2)
	Yellow  = Palette(3)
	Blue    = Palette(4)
	Magenta = Palette(5)
	Cyan    = Palette(6)
	White   = Palette(7)
)

// Style combines foreground, background and attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a copy of the style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy of the style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a copy of the style with bold enabled.
func (s Style) Bold() Style {
	s.Attr |= AttrBold
	return s
}

// Dim returns a copy of the style with dim enabled.
func (s Style) Dim() Style {
	s.Attr |= AttrDim
	return s
}

// Underline returns a copy of the style with underline enabled.
func (s Style) Underline() Style {
	s.Attr |= AttrUnderline
	return s
}

// Inverse returns a copy of the style with inverse enabled.
func (s Style) Inverse() Style {
	s.Attr |= AttrInverse
	return s
}

// Cell is a single character cell. A zero Rune marks the continuation cell
// of a preceding wide rune.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with default styling.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// Buffer is a 2D grid of cells used as the paint surface for slivers and
// boxes. Out-of-bounds writes are silently dropped, which is what clips
// children that paint past the viewport edges.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the given cell dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), or an empty cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Clear resets every cell to blank with default styling.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// FillRect fills the given rectangle with c, clipped to the buffer.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString writes s starting at (x, y) with the given style and returns
// the number of cells consumed. Wide runes occupy two cells: the rune in
// the first, a zero-rune continuation in the second.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	cx := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(cx, y, Cell{Rune: r, Style: style})
		if w == 2 {
			b.Set(cx+1, y, Cell{Rune: 0, Style: style})
		}
		cx += w
	}
	return cx - x
}

// Line returns row y as a string with trailing blanks trimmed. Wide-rune
// continuation cells contribute nothing.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	lastInk := 0
	for x := 0; x < b.width; x++ {
		c := b.Get(x, y)
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
		if c.Rune != ' ' {
			lastInk = sb.Len()
		}
	}
	return sb.String()[:lastInk]
}

// Blit copies a w×h region of src at (srcX, srcY) into b at (dstX, dstY),
// clipped to both buffers.
func (b *Buffer) Blit(src *Buffer, srcX, srcY, dstX, dstY, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !src.InBounds(srcX+dx, srcY+dy) {
				continue
			}
			b.Set(dstX+dx, dstY+dy, src.Get(srcX+dx, srcY+dy))
		}
	}
}
