package sticky

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Row is one fixed-extent line in a SliverList.
type Row struct {
	Text  string
	Style Style
}

// SliverList is a body sliver of fixed-extent rows. Layout is O(1) in the
// row count; painting touches only the rows inside the paint window.
type SliverList struct {
	rows      []Row
	rowExtent float64

	constraints ViewportConstraints
	geometry    Geometry

	onRowHit func(index int)
}

// NewSliverList creates a list whose rows each occupy rowExtent cells on
// the main axis.
func NewSliverList(rowExtent float64, rows ...Row) *SliverList {
	if rowExtent <= 0 {
		panic("sticky: NewSliverList requires a positive row extent")
	}
	return &SliverList{rows: rows, rowExtent: rowExtent}
}

// SetRows replaces the list content. The caller is responsible for marking
// the owning viewport dirty.
func (s *SliverList) SetRows(rows []Row) *SliverList {
	s.rows = rows
	return s
}

// Rows returns the current rows.
func (s *SliverList) Rows() []Row { return s.rows }

// OnRowHit installs a callback fired when a hit test lands on a row.
// Chainable.
func (s *SliverList) OnRowHit(fn func(index int)) *SliverList {
	s.onRowHit = fn
	return s
}

// Layout implements Sliver.
func (s *SliverList) Layout(vc ViewportConstraints) Geometry {
	s.constraints = vc
	total := float64(len(s.rows)) * s.rowExtent
	s.geometry = Geometry{
		ScrollExtent:   total,
		PaintExtent:    clamp(vc.RemainingPaintExtent, 0, total-vc.ScrollOffset),
		MaxPaintExtent: total,
	}
	return s.geometry
}

// Geometry implements Sliver.
func (s *SliverList) Geometry() Geometry { return s.geometry }

// Paint implements Sliver. Rows before the scroll offset or past the paint
// window are skipped entirely.
func (s *SliverList) Paint(buf *Buffer, x, y int) {
	vc := s.constraints
	first := int(vc.ScrollOffset / s.rowExtent)
	for i := first; i >= 0 && i < len(s.rows); i++ {
		top := float64(i)*s.rowExtent - vc.ScrollOffset
		if top >= vc.RemainingPaintExtent {
			break
		}
		cx, cy := cellOffset(x, y, vc.Axis, top)
		buf.WriteString(cx, cy, s.rows[i].Text, s.rows[i].Style)
	}
}

// HitTest implements Sliver. A position inside a row claims the hit and
// fires the row callback when one is installed.
func (s *SliverList) HitTest(main, cross float64) bool {
	if main < 0 || cross < 0 || cross >= s.constraints.CrossAxisExtent {
		return false
	}
	index := int((main + s.constraints.ScrollOffset) / s.rowExtent)
	if index < 0 || index >= len(s.rows) {
		return false
	}
	if s.onRowHit != nil {
		s.onRowHit(index)
	}
	return true
}

// BoxText is a header box: styled text lines over a filled band. On the
// tight cross axis it stretches to whatever the constraints dictate; on
// the unconstrained main axis it sizes to its content.
type BoxText struct {
	lines []string
	style Style
	size  Size
	onTap func()
}

// NewBoxText creates a box displaying the given lines.
func NewBoxText(lines ...string) *BoxText {
	return &BoxText{lines: lines}
}

// Style sets the box's fill and text style. Chainable.
func (b *BoxText) Style(s Style) *BoxText {
	b.style = s
	return b
}

// OnTap installs a callback fired when a hit test lands on the box.
// Chainable.
func (b *BoxText) OnTap(fn func()) *BoxText {
	b.onTap = fn
	return b
}

// Lines returns the box content.
func (b *BoxText) Lines() []string { return b.lines }

// Layout implements Box.
func (b *BoxText) Layout(bc BoxConstraints) Size {
	natural := Size{Height: float64(len(b.lines))}
	for _, line := range b.lines {
		natural.Width = math.Max(natural.Width, float64(runewidth.StringWidth(line)))
	}
	b.size = bc.Constrain(natural)
	return b.size
}

// Size implements Box.
func (b *BoxText) Size() Size { return b.size }

// Paint implements Box.
func (b *BoxText) Paint(buf *Buffer, x, y int) {
	w := int(math.Round(b.size.Width))
	h := int(math.Round(b.size.Height))
	buf.FillRect(x, y, w, h, Cell{Rune: ' ', Style: b.style})
	for i, line := range b.lines {
		if i >= h {
			break
		}
		buf.WriteString(x, y+i, line, b.style)
	}
}

// HitTest implements Box.
func (b *BoxText) HitTest(x, y float64) bool {
	if x < 0 || y < 0 || x >= b.size.Width || y >= b.size.Height {
		return false
	}
	if b.onTap != nil {
		b.onTap()
	}
	return true
}
