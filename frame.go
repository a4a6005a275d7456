package sticky

// FrameScheduler queues work to run after the current frame's layout and
// paint phases complete. It is the single deferred-execution point in the
// package: builders use it to rebuild header content without re-entering
// an in-progress layout pass. Single-threaded, driven by the host calling
// Flush once per frame.
type FrameScheduler struct {
	pending []func()
}

// PostFrame enqueues fn for the next Flush.
func (s *FrameScheduler) PostFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// Pending returns the number of queued callbacks.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Flush runs the queued callbacks in order. Callbacks enqueued while
// flushing run on the next Flush, not this one.
func (s *FrameScheduler) Flush() {
	queue := s.pending
	s.pending = nil
	for _, fn := range queue {
		fn()
	}
}
