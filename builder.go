package sticky

// HeaderBuilder re-renders header content as the reported stuck amount
// changes. It implements Box by delegating to the most recently built box,
// so it plugs straight into NewStickyHeader as the header child.
//
// The layout reports every stuck amount sample; the builder owns the
// latest value and decides whether acting on it is worth a rebuild. The
// rebuild itself is deferred to the frame scheduler so it never re-enters
// the layout pass that reported the value, and it is gated on liveness so
// a disposed builder stays inert.
type HeaderBuilder struct {
	build     func(stuckAmount float64) Box
	scheduler *FrameScheduler

	header    Box
	stuck     float64
	lastBuilt float64
	queued    bool
	live      bool
	onRebuild func()
}

// NewHeaderBuilder creates a builder over the given build function and
// immediately builds the header for a stuck amount of 0.
func NewHeaderBuilder(scheduler *FrameScheduler, build func(stuckAmount float64) Box) *HeaderBuilder {
	if scheduler == nil || build == nil {
		panic("sticky: NewHeaderBuilder requires a scheduler and a build function")
	}
	h := &HeaderBuilder{
		build:     build,
		scheduler: scheduler,
		live:      true,
	}
	h.header = build(0)
	return h
}

// OnRebuild installs the host's invalidation hook, invoked after the
// header box has been rebuilt. Chainable.
func (h *HeaderBuilder) OnRebuild(fn func()) *HeaderBuilder {
	h.onRebuild = fn
	return h
}

// Callback returns the function to wire into the sticky layout's
// OnStuckAmountChanged configuration.
func (h *HeaderBuilder) Callback() func(float64) {
	return h.report
}

// Header returns the most recently built header box.
func (h *HeaderBuilder) Header() Box {
	return h.header
}

// StuckAmount returns the latest reported value, whether or not it has
// been built yet.
func (h *HeaderBuilder) StuckAmount() float64 {
	return h.stuck
}

// Dispose marks the builder dead. Pending rebuilds become no-ops; the
// current header box keeps painting until the layout itself is discarded.
func (h *HeaderBuilder) Dispose() {
	h.live = false
}

// report records the latest sample and schedules at most one pending
// rebuild. Rapid successive samples coalesce: the rebuild sees whatever
// value is current when the frame completes.
func (h *HeaderBuilder) report(stuckAmount float64) {
	h.stuck = stuckAmount
	if h.queued || stuckAmount == h.lastBuilt {
		return
	}
	h.queued = true
	h.scheduler.PostFrame(h.rebuild)
}

func (h *HeaderBuilder) rebuild() {
	h.queued = false
	if !h.live || h.stuck == h.lastBuilt {
		return
	}
	h.header = h.build(h.stuck)
	h.lastBuilt = h.stuck
	if h.onRebuild != nil {
		h.onRebuild()
	}
}

// Layout implements Box.
func (h *HeaderBuilder) Layout(bc BoxConstraints) Size {
	return h.header.Layout(bc)
}

// Size implements Box.
func (h *HeaderBuilder) Size() Size {
	return h.header.Size()
}

// Paint implements Box.
func (h *HeaderBuilder) Paint(buf *Buffer, x, y int) {
	h.header.Paint(buf, x, y)
}

// HitTest implements Box.
func (h *HeaderBuilder) HitTest(x, y float64) bool {
	return h.header.HitTest(x, y)
}
