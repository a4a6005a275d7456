package sticky

import "math"

// DefaultCacheExtent is how many cells beyond the visible window slivers
// keep laid out so scrolling stays smooth.
const DefaultCacheExtent = 10.0

// Viewport owns the scroll offset for a sequence of slivers and drives
// their layout, paint and hit testing. It is also the ScrollPositionSource
// sticky layouts observe: scrolling notifies subscribers, and the origin
// transform reports where each mounted sliver sits relative to the visible
// window.
//
// The whole type is single-threaded: the host calls LayoutPass and Paint
// from its frame loop and the scroll mutators from its event handlers.
type Viewport struct {
	ScrollNotifier

	axis        Axis
	offset      float64
	cacheExtent float64

	slivers []Sliver
	leading []float64 // preceding scroll extent per sliver
	origins []float64 // clamped paint origin per sliver
	laidOut int       // slivers with a resolvable origin this pass

	mainExtent    float64
	crossExtent   float64
	contentExtent float64

	needsLayout bool
}

// NewViewport creates an empty viewport scrolling along the given axis.
func NewViewport(axis Axis) *Viewport {
	return &Viewport{
		axis:        axis,
		cacheExtent: DefaultCacheExtent,
		needsLayout: true,
	}
}

// Axis returns the scroll axis.
func (v *Viewport) Axis() Axis { return v.axis }

// CacheExtent sets the pre-layout region kept beyond the visible window.
// Chainable.
func (v *Viewport) CacheExtent(extent float64) *Viewport {
	v.cacheExtent = math.Max(0, extent)
	v.MarkNeedsLayout()
	return v
}

// Mount appends slivers to the viewport. Sticky layouts are attached and
// receive the viewport's invalidation hook.
func (v *Viewport) Mount(slivers ...Sliver) *Viewport {
	for _, s := range slivers {
		v.slivers = append(v.slivers, s)
		if sh, ok := s.(*StickyHeaderLayout); ok {
			sh.Attach(v.MarkNeedsLayout)
		}
	}
	v.MarkNeedsLayout()
	return v
}

// Unmount removes a sliver, detaching it first when it is a sticky layout
// so its scroll subscription is released.
func (v *Viewport) Unmount(s Sliver) {
	for i, mounted := range v.slivers {
		if mounted != s {
			continue
		}
		if sh, ok := s.(*StickyHeaderLayout); ok {
			sh.Detach()
		}
		v.slivers = append(v.slivers[:i], v.slivers[i+1:]...)
		v.laidOut = 0
		v.MarkNeedsLayout()
		return
	}
}

// Slivers returns the mounted slivers in layout order.
func (v *Viewport) Slivers() []Sliver { return v.slivers }

// MarkNeedsLayout flags the viewport dirty; the host runs LayoutPass
// before the next paint.
func (v *Viewport) MarkNeedsLayout() { v.needsLayout = true }

// NeedsLayout reports whether a LayoutPass is due.
func (v *Viewport) NeedsLayout() bool { return v.needsLayout }

// ContentExtent returns the total scroll extent of all mounted slivers,
// valid after a LayoutPass.
func (v *Viewport) ContentExtent() float64 { return v.contentExtent }

// MaxScroll returns the largest valid scroll offset.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.contentExtent-v.mainExtent)
}

// LayoutPass lays out every sliver for a window of the given main and
// cross extents. Constraints accumulate: each sliver sees the scroll
// extent consumed before it, how far it has scrolled past the leading
// edge, and how much paint window remains.
func (v *Viewport) LayoutPass(mainExtent, crossExtent float64) {
	v.mainExtent = mainExtent
	v.crossExtent = crossExtent
	if len(v.leading) != len(v.slivers) {
		v.leading = make([]float64, len(v.slivers))
		v.origins = make([]float64, len(v.slivers))
	}

	v.layoutSlivers()
	// Content may have shrunk under the current offset; clamp and redo the
	// pass so geometry matches the offset actually in effect.
	if v.clampOffset() {
		v.layoutSlivers()
	}
	v.needsLayout = false
}

func (v *Viewport) layoutSlivers() {
	preceding := 0.0
	for i, s := range v.slivers {
		v.leading[i] = preceding
		v.laidOut = i + 1

		scrollOffset := math.Max(0, v.offset-preceding)
		paintOrigin := math.Max(0, preceding-v.offset)
		remaining := clamp(v.mainExtent-paintOrigin, 0, v.mainExtent)
		cacheOrigin := math.Max(-v.cacheExtent, -scrollOffset)

		g := s.Layout(ViewportConstraints{
			Axis:                  v.axis,
			GrowthDirection:       GrowthForward,
			ScrollOffset:          scrollOffset,
			PrecedingScrollExtent: preceding,
			RemainingPaintExtent:  remaining,
			CrossAxisExtent:       v.crossExtent,
			CacheOrigin:           cacheOrigin,
			RemainingCacheExtent:  remaining + v.cacheExtent - cacheOrigin,
		})
		v.origins[i] = paintOrigin
		preceding += g.ScrollExtent
	}
	v.contentExtent = preceding
}

func (v *Viewport) clampOffset() bool {
	clamped := clamp(v.offset, 0, v.MaxScroll())
	if clamped == v.offset {
		return false
	}
	v.offset = clamped
	return true
}

// Paint draws every visible sliver at its layout origin.
func (v *Viewport) Paint(buf *Buffer) {
	for i, s := range v.slivers {
		if i >= v.laidOut || !s.Geometry().Visible() {
			continue
		}
		x, y := cellOffset(0, 0, v.axis, v.origins[i])
		s.Paint(buf, x, y)
	}
}

// HitTest routes a viewport-space position to the sliver whose paint
// window contains it.
func (v *Viewport) HitTest(main, cross float64) bool {
	for i, s := range v.slivers {
		if i >= v.laidOut || !s.Geometry().Visible() {
			continue
		}
		local := main - v.origins[i]
		if local < 0 || local >= s.Geometry().PaintExtent {
			continue
		}
		if s.HitTest(local, cross) {
			return true
		}
	}
	return false
}

// --- ScrollPositionSource ---

// Offset returns the current scroll offset.
func (v *Viewport) Offset() float64 { return v.offset }

// MainAxisOriginOf reports where the sliver's origin sits relative to the
// viewport's leading edge, unclamped: negative once the sliver has started
// scrolling out. ok is false for slivers the current pass has not reached.
func (v *Viewport) MainAxisOriginOf(node Sliver) (float64, bool) {
	for i, s := range v.slivers {
		if s == node {
			if i >= v.laidOut {
				return 0, false
			}
			return v.leading[i] - v.offset, true
		}
	}
	return 0, false
}

// --- Scroll mutators (clamped; each change notifies subscribers) ---

// ScrollTo sets the absolute scroll offset, clamped to the content.
func (v *Viewport) ScrollTo(offset float64) {
	clamped := clamp(offset, 0, v.MaxScroll())
	if clamped == v.offset {
		return
	}
	v.offset = clamped
	v.MarkNeedsLayout()
	v.Notify()
}

// ScrollBy adjusts the offset by delta.
func (v *Viewport) ScrollBy(delta float64) {
	v.ScrollTo(v.offset + delta)
}

// PageDown scrolls forward by one window.
func (v *Viewport) PageDown() { v.ScrollBy(v.mainExtent) }

// PageUp scrolls backward by one window.
func (v *Viewport) PageUp() { v.ScrollBy(-v.mainExtent) }

// ScrollToTop scrolls to the start of the content.
func (v *Viewport) ScrollToTop() { v.ScrollTo(0) }

// ScrollToEnd scrolls to the end of the content.
func (v *Viewport) ScrollToEnd() { v.ScrollTo(v.MaxScroll()) }
