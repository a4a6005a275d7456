package sticky

import (
	"fmt"
	"math"
)

// Config is the full mutable configuration of a StickyHeaderLayout.
// Mutation goes through Configure, which diffs against the previous value
// instead of hiding invalidation inside field setters.
type Config struct {
	// Reverse pins the header at the trailing edge of the growth direction
	// instead of the leading one. Used when the layout sits on the side of
	// a viewport's center where content grows backward.
	Reverse bool

	// OverlayHeader paints the header on top of the body without reserving
	// scroll extent for it: the total scroll extent becomes the max of the
	// two children instead of their sum, and the body is laid out with the
	// full incoming constraints.
	OverlayHeader bool

	// Source is the scroll position observable the layout subscribes to for
	// relayout and reads for the stuck offset.
	Source ScrollPositionSource

	// OnStuckAmountChanged is invoked at the end of every layout pass with
	// the freshly computed stuck amount. Every pass, not only on change.
	// Consumers that only care about changes deduplicate themselves (see
	// HeaderBuilder).
	OnStuckAmountChanged func(float64)
}

// NeedsRelayout reports whether switching from old to c invalidates the
// cached layout. Callback identity is not comparable in Go, so only its
// presence participates in the diff; swapping one live callback for
// another takes effect on the next pass regardless.
func (c Config) NeedsRelayout(old Config) bool {
	return c.Reverse != old.Reverse ||
		c.OverlayHeader != old.OverlayHeader ||
		c.Source != old.Source ||
		(c.OnStuckAmountChanged == nil) != (old.OnStuckAmountChanged == nil)
}

// StickyHeaderLayout composes a fixed header box and a scrollable body
// sliver into one sliver. The header stays pinned at the viewport's
// leading edge while the body scrolls underneath, until the whole region
// has scrolled out of view. It is driven synchronously by its host: Layout
// then Paint, once per frame when dirty, never from other goroutines.
type StickyHeaderLayout struct {
	header Box
	body   Sliver

	cfg Config

	// Parent data, rewritten every layout pass.
	headerPlacement ChildPlacement
	bodyPlacement   ChildPlacement

	// Cached pass results.
	constraints  ViewportConstraints
	geometry     Geometry
	headerExtent float64
	bodyExtent   float64
	stuckAmount  float64

	// pixelRatio is device units per logical unit, used to snap the stuck
	// offset. 1 on a cell grid.
	pixelRatio float64

	attached    bool
	unsubscribe func()
	invalidate  func()
}

// NewStickyHeader creates a layout over its two permanent children.
func NewStickyHeader(header Box, body Sliver) *StickyHeaderLayout {
	if header == nil || body == nil {
		panic("sticky: NewStickyHeader requires both a header and a body")
	}
	return &StickyHeaderLayout{
		header:     header,
		body:       body,
		pixelRatio: 1,
	}
}

// Header returns the header box.
func (l *StickyHeaderLayout) Header() Box { return l.header }

// Body returns the body sliver.
func (l *StickyHeaderLayout) Body() Sliver { return l.body }

// Config returns the current configuration.
func (l *StickyHeaderLayout) Config() Config { return l.cfg }

// StuckAmount returns the value reported by the last layout pass.
func (l *StickyHeaderLayout) StuckAmount() float64 { return l.stuckAmount }

// Geometry returns the geometry from the last layout pass.
func (l *StickyHeaderLayout) Geometry() Geometry { return l.geometry }

// Configure applies a new configuration. While attached, a source swap
// moves the subscription from the old source to the new one; the layout is
// never subscribed to more than one source at a time.
func (l *StickyHeaderLayout) Configure(cfg Config) {
	old := l.cfg
	l.cfg = cfg
	if l.attached && cfg.Source != old.Source {
		if l.unsubscribe != nil {
			l.unsubscribe()
			l.unsubscribe = nil
		}
		if cfg.Source != nil {
			l.unsubscribe = cfg.Source.Subscribe(l.markNeedsLayout)
		}
	}
	if cfg.NeedsRelayout(old) {
		l.markNeedsLayout()
	}
}

// Reverse sets the reverse flag. Chainable.
func (l *StickyHeaderLayout) Reverse(v bool) *StickyHeaderLayout {
	cfg := l.cfg
	cfg.Reverse = v
	l.Configure(cfg)
	return l
}

// Overlay sets the overlay-header flag. Chainable.
func (l *StickyHeaderLayout) Overlay(v bool) *StickyHeaderLayout {
	cfg := l.cfg
	cfg.OverlayHeader = v
	l.Configure(cfg)
	return l
}

// Source sets the scroll position source. Chainable.
func (l *StickyHeaderLayout) Source(s ScrollPositionSource) *StickyHeaderLayout {
	cfg := l.cfg
	cfg.Source = s
	l.Configure(cfg)
	return l
}

// OnStuckAmountChanged sets the per-pass stuck amount callback. Chainable.
func (l *StickyHeaderLayout) OnStuckAmountChanged(fn func(float64)) *StickyHeaderLayout {
	cfg := l.cfg
	cfg.OnStuckAmountChanged = fn
	l.Configure(cfg)
	return l
}

// PixelRatio sets the device resolution used to snap stuck offsets.
// Chainable.
func (l *StickyHeaderLayout) PixelRatio(r float64) *StickyHeaderLayout {
	l.pixelRatio = r
	return l
}

// Attach wires the layout into a host. invalidate is the host's
// mark-needs-layout hook; scroll notifications and config changes funnel
// into it. Hosts call Detach before the layout is discarded so the scroll
// subscription is released.
func (l *StickyHeaderLayout) Attach(invalidate func()) {
	l.attached = true
	l.invalidate = invalidate
	if l.unsubscribe == nil && l.cfg.Source != nil {
		l.unsubscribe = l.cfg.Source.Subscribe(l.markNeedsLayout)
	}
}

// Detach releases the scroll subscription and the invalidation hook.
func (l *StickyHeaderLayout) Detach() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.invalidate = nil
	l.attached = false
}

// Attached reports whether the layout is currently attached to a host.
func (l *StickyHeaderLayout) Attached() bool { return l.attached }

func (l *StickyHeaderLayout) markNeedsLayout() {
	if l.invalidate != nil {
		l.invalidate()
	}
}

// Layout implements Sliver. It lays out both children, derives the
// combined geometry, reports the stuck amount, and records both child
// placements. Calling it twice with identical constraints and identical
// external scroll state produces identical results.
func (l *StickyHeaderLayout) Layout(vc ViewportConstraints) Geometry {
	l.constraints = vc

	if l.cfg.Reverse {
		l.layoutReverse(vc)
	} else {
		l.layoutForward(vc)
	}

	scrollExtent := l.headerExtent + l.bodyExtent
	if l.cfg.OverlayHeader {
		scrollExtent = math.Max(l.headerExtent, l.bodyExtent)
	}

	l.geometry = Geometry{
		ScrollExtent:   scrollExtent,
		PaintExtent:    clamp(vc.RemainingPaintExtent, 0, scrollExtent-vc.ScrollOffset),
		MaxPaintExtent: scrollExtent,
		// Conservative: the pinned header routinely paints outside the
		// span the scroll math alone would predict.
		HasVisualOverflow: true,
	}

	stuckOffset := 0.0
	if l.cfg.Source != nil {
		if pos, ok := l.cfg.Source.MainAxisOriginOf(l); ok {
			stuckOffset = roundToPixel(pos, l.pixelRatio)
		}
	}
	if l.headerExtent > 0 {
		l.stuckAmount = clamp(stuckOffset, -l.headerExtent, l.headerExtent) / l.headerExtent
	} else {
		l.stuckAmount = 0
	}
	if l.cfg.OnStuckAmountChanged != nil {
		l.cfg.OnStuckAmountChanged(l.stuckAmount)
	}

	l.headerPlacement = ChildPlacement{
		PaintOffset:  l.ChildMainAxisPosition(ChildHeader),
		ScrollOffset: l.ChildScrollOffset(ChildHeader),
	}
	l.bodyPlacement = ChildPlacement{
		PaintOffset:  l.ChildMainAxisPosition(ChildBody),
		ScrollOffset: l.ChildScrollOffset(ChildBody),
	}

	return l.geometry
}

// layoutForward lays out the header first and hands the body constraints
// that skip past the header's extent, so the body behaves as though the
// header occupied a fixed prefix of the scrollable timeline.
func (l *StickyHeaderLayout) layoutForward(vc ViewportConstraints) {
	size := l.header.Layout(vc.BoxConstraints())
	l.headerExtent = size.Along(vc.Axis)

	bodyConstraints := vc
	if !l.cfg.OverlayHeader {
		bodyConstraints = vc.InsetByLeading(l.headerExtent)
	}
	l.bodyExtent = l.body.Layout(bodyConstraints).ScrollExtent
}

// layoutReverse lays out the body first with unmodified constraints, then
// the header. The mirrored inset shifts only the scroll bookkeeping; the
// header box itself consumes just the cross axis, which the inset leaves
// untouched.
func (l *StickyHeaderLayout) layoutReverse(vc ViewportConstraints) {
	l.bodyExtent = l.body.Layout(vc).ScrollExtent

	headerConstraints := vc
	if !l.cfg.OverlayHeader {
		headerConstraints = vc.InsetByLeading(l.bodyExtent)
	}
	size := l.header.Layout(headerConstraints.BoxConstraints())
	l.headerExtent = size.Along(vc.Axis)
}

// ChildMainAxisPosition returns the child's paint position along the main
// axis, relative to the layout's paint origin. Unknown children are a
// caller defect.
func (l *StickyHeaderLayout) ChildMainAxisPosition(child Child) float64 {
	vc := l.constraints
	switch child {
	case ChildHeader:
		limit := l.bodyExtent
		if l.cfg.OverlayHeader {
			limit = l.bodyExtent - l.headerExtent
		}
		if l.cfg.Reverse {
			pos := math.Max(0, vc.RemainingPaintExtent-l.headerExtent)
			return math.Min(pos, limit-vc.ScrollOffset)
		}
		// Pinned at the leading edge until the body's end approaches, then
		// pushed out with it.
		return math.Min(0, limit-vc.ScrollOffset)
	case ChildBody:
		if l.cfg.Reverse || l.cfg.OverlayHeader {
			return 0
		}
		return math.Max(0, l.headerExtent-vc.ScrollOffset)
	}
	panic(fmt.Sprintf("sticky: ChildMainAxisPosition: unknown child %s", child))
}

// ChildScrollOffset returns where the child's scroll space begins inside
// this layout's scroll space. Unknown children are a caller defect.
func (l *StickyHeaderLayout) ChildScrollOffset(child Child) float64 {
	switch child {
	case ChildHeader:
		if !l.cfg.Reverse {
			return 0
		}
		if l.cfg.OverlayHeader {
			return l.bodyExtent - l.headerExtent
		}
		return l.bodyExtent
	case ChildBody:
		if l.cfg.Reverse || l.cfg.OverlayHeader {
			return 0
		}
		return l.headerExtent
	}
	panic(fmt.Sprintf("sticky: ChildScrollOffset: unknown child %s", child))
}

// ChildPaintExtent returns how much of the child can paint this frame.
// Unknown children are a caller defect.
func (l *StickyHeaderLayout) ChildPaintExtent(child Child) float64 {
	switch child {
	case ChildHeader:
		return math.Min(l.headerExtent, l.constraints.RemainingPaintExtent)
	case ChildBody:
		return l.body.Geometry().PaintExtent
	}
	panic(fmt.Sprintf("sticky: ChildPaintExtent: unknown child %s", child))
}

// Placement returns the parent data recorded for the child by the last
// layout pass. Unknown children are a caller defect.
func (l *StickyHeaderLayout) Placement(child Child) ChildPlacement {
	switch child {
	case ChildHeader:
		return l.headerPlacement
	case ChildBody:
		return l.bodyPlacement
	}
	panic(fmt.Sprintf("sticky: Placement: unknown child %s", child))
}

// Paint implements Sliver: body first, header second, so the header always
// sits visually on top. Each child paints at the layout origin displaced
// by its placement, quantized to cells.
func (l *StickyHeaderLayout) Paint(buf *Buffer, x, y int) {
	if !l.geometry.Visible() {
		return
	}
	if l.body.Geometry().Visible() {
		bx, by := cellOffset(x, y, l.constraints.Axis, l.bodyPlacement.PaintOffset)
		l.body.Paint(buf, bx, by)
	}
	if l.headerExtent > 0 {
		hx, hy := cellOffset(x, y, l.constraints.Axis, l.headerPlacement.PaintOffset)
		l.header.Paint(buf, hx, hy)
	}
}

// HitTest implements Sliver. The header is tested first as a box at its
// pinned position; misses fall through to the body, translated into the
// body's paint space.
func (l *StickyHeaderLayout) HitTest(main, cross float64) bool {
	headerPos := l.headerPlacement.PaintOffset
	if main >= headerPos && main < headerPos+l.headerExtent {
		x, y := cross, main-headerPos
		if l.constraints.Axis == Horizontal {
			x, y = main-headerPos, cross
		}
		if l.header.HitTest(x, y) {
			return true
		}
	}
	return l.body.HitTest(main-l.bodyPlacement.PaintOffset, cross)
}
