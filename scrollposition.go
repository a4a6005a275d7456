package sticky

// ScrollPositionSource is the read-only capability a StickyHeaderLayout
// observes to compute its stuck offset. The layout never owns the source;
// it subscribes on attach and unsubscribes on detach.
type ScrollPositionSource interface {
	// Offset is the ancestor scrollable's absolute scroll offset along its
	// main axis.
	Offset() float64

	// MainAxisOriginOf resolves the main-axis coordinate of the node's
	// origin in the ancestor's coordinate space. ok is false while the node
	// is detached or mid-attach; callers treat that as a recoverable
	// condition, not an error.
	MainAxisOriginOf(node Sliver) (pos float64, ok bool)

	// Subscribe registers fn to run on every scroll change and returns the
	// matching unsubscribe function.
	Subscribe(fn func()) (unsubscribe func())
}

// ScrollNotifier is an embeddable change broadcaster. Unsubscribing zeroes
// the listener slot rather than reordering, so unsubscribe functions stay
// valid across concurrent registrations.
type ScrollNotifier struct {
	listeners []func()
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (n *ScrollNotifier) Subscribe(fn func()) func() {
	n.listeners = append(n.listeners, fn)
	idx := len(n.listeners) - 1
	return func() {
		n.listeners[idx] = nil
	}
}

// Notify invokes every live listener.
func (n *ScrollNotifier) Notify() {
	for _, fn := range n.listeners {
		if fn != nil {
			fn()
		}
	}
}
