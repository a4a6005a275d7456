// Package sticky implements a sticky header layout primitive for
// cell-based scrollable UIs. A StickyHeaderLayout pairs a fixed header box
// with a scrollable body sliver: the header pins itself to the viewport's
// leading edge while the body scrolls underneath, and slides away with the
// body once the whole region leaves the window. The package also ships a
// minimal sliver viewport, a cell paint buffer and an ANSI renderer so the
// layout can be driven end to end inside a terminal program.
package sticky

import "math"

// Axis is the direction content scrolls along.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// GrowthDirection is the direction content extends relative to the scroll
// axis.
type GrowthDirection uint8

const (
	GrowthForward GrowthDirection = iota
	GrowthReverse
)

// ViewportConstraints is the immutable input to one sliver layout pass.
// All extents are in cells along the scroll axis unless named otherwise.
type ViewportConstraints struct {
	Axis            Axis
	GrowthDirection GrowthDirection

	// ScrollOffset is how far this sliver's content has scrolled past the
	// viewport's leading edge. Never negative.
	ScrollOffset float64

	// PrecedingScrollExtent is the scroll extent consumed by earlier
	// slivers.
	PrecedingScrollExtent float64

	// Overlap is how far the previous sliver's paint intrudes into this
	// sliver's paint space.
	Overlap float64

	// RemainingPaintExtent is the paint window still available, measured
	// from this sliver's paint origin.
	RemainingPaintExtent float64

	// CrossAxisExtent is the tight extent perpendicular to the axis.
	CrossAxisExtent float64

	// CacheOrigin is where the cache window starts relative to the scroll
	// offset. Never positive.
	CacheOrigin float64

	// RemainingCacheExtent is the length of the cache window starting at
	// CacheOrigin.
	RemainingCacheExtent float64
}

// PaintOffsetWithin returns the visible length of the content span
// [from, to), given the current scroll offset and paint window.
func (c ViewportConstraints) PaintOffsetWithin(from, to float64) float64 {
	a := clamp(from-c.ScrollOffset, 0, c.RemainingPaintExtent)
	b := clamp(to-c.ScrollOffset, 0, c.RemainingPaintExtent)
	return b - a
}

// CacheOffsetWithin returns the length of the content span [from, to) that
// falls inside the cache window.
func (c ViewportConstraints) CacheOffsetWithin(from, to float64) float64 {
	a := clamp(from-c.ScrollOffset, c.CacheOrigin, c.CacheOrigin+c.RemainingCacheExtent)
	b := clamp(to-c.ScrollOffset, c.CacheOrigin, c.CacheOrigin+c.RemainingCacheExtent)
	return b - a
}

// InsetByLeading returns the constraints a sliver should hand a child that
// starts after a fixed leading region of the given extent. The child's
// scroll offset, paint window and cache window are all adjusted as though
// the leading region were a preceding sliver; overlap does not propagate
// past it.
func (c ViewportConstraints) InsetByLeading(extent float64) ViewportConstraints {
	out := c
	out.ScrollOffset = math.Max(0, c.ScrollOffset-extent)
	out.PrecedingScrollExtent = c.PrecedingScrollExtent + extent
	out.Overlap = 0
	out.RemainingPaintExtent = c.RemainingPaintExtent - c.PaintOffsetWithin(0, extent)
	out.CacheOrigin = math.Min(0, c.CacheOrigin+extent)
	out.RemainingCacheExtent = c.RemainingCacheExtent - c.CacheOffsetWithin(0, extent)
	return out
}

// BoxConstraints derives the box constraints for a box child hosted inside
// this sliver: tight on the cross axis, unbounded along the scroll axis so
// the box sizes to its content.
func (c ViewportConstraints) BoxConstraints() BoxConstraints {
	if c.Axis == Horizontal {
		return BoxConstraints{
			MinHeight: c.CrossAxisExtent,
			MaxHeight: c.CrossAxisExtent,
			MaxWidth:  math.Inf(1),
		}
	}
	return BoxConstraints{
		MinWidth:  c.CrossAxisExtent,
		MaxWidth:  c.CrossAxisExtent,
		MaxHeight: math.Inf(1),
	}
}

// Geometry is the output of one sliver layout pass.
type Geometry struct {
	// ScrollExtent is the total scrollable length of the sliver's content.
	ScrollExtent float64

	// PaintExtent is how much of the paint window the sliver occupies this
	// pass.
	PaintExtent float64

	// MaxPaintExtent is the most the sliver could ever paint at once.
	MaxPaintExtent float64

	// HasVisualOverflow reports whether the sliver may paint outside the
	// span its extents describe and therefore needs clipping.
	HasVisualOverflow bool
}

// Visible reports whether the sliver paints anything this pass.
func (g Geometry) Visible() bool {
	return g.PaintExtent > 0
}

// BoxConstraints bound a box child's size on both dimensions.
type BoxConstraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Constrain clamps s into the constraints.
func (bc BoxConstraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, bc.MinWidth, bc.MaxWidth),
		Height: clamp(s.Height, bc.MinHeight, bc.MaxHeight),
	}
}

// Size is a box extent in cells.
type Size struct {
	Width  float64
	Height float64
}

// Along returns the size's extent along the given scroll axis.
func (s Size) Along(axis Axis) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Across returns the size's extent perpendicular to the given scroll axis.
func (s Size) Across(axis Axis) float64 {
	if axis == Horizontal {
		return s.Height
	}
	return s.Width
}

// clamp bounds v to [lo, hi]. When the interval is inverted lo wins, so
// extents derived from it never go negative.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// roundToPixel snaps v to the device grid of the given resolution. A ratio
// of zero or below leaves v alone.
func roundToPixel(v, ratio float64) float64 {
	if ratio <= 0 {
		return v
	}
	return math.Round(v*ratio) / ratio
}

// cellOffset displaces a cell position by main cells along the axis.
func cellOffset(x, y int, axis Axis, main float64) (int, int) {
	d := int(math.Round(main))
	if axis == Horizontal {
		return x + d, y
	}
	return x, y + d
}
