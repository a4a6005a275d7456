package sticky

import "testing"

func mountedSection(v *Viewport, title string, headerLines []string, rowCount int) (*StickyHeaderLayout, *SliverList) {
	rows := make([]Row, rowCount)
	for i := range rows {
		rows[i] = Row{Text: title + " row " + twoDigits(i+1)}
	}
	list := NewSliverList(1, rows...)
	layout := NewStickyHeader(NewBoxText(headerLines...), list)
	layout.Configure(Config{Source: v})
	v.Mount(layout)
	return layout, list
}

func twoDigits(n int) string {
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}

func paint(v *Viewport, width, height int) *Buffer {
	if v.NeedsLayout() {
		v.LayoutPass(float64(height), float64(width))
	}
	buf := NewBuffer(width, height)
	v.Paint(buf)
	return buf
}

func TestViewportPinnedHeader(t *testing.T) {
	v := NewViewport(Vertical)
	mountedSection(v, "alpha", []string{"== Alpha =="}, 20)

	t.Run("at rest the header leads its rows", func(t *testing.T) {
		buf := paint(v, 30, 10)
		if got := buf.Line(0); got != "== Alpha ==" {
			t.Errorf("line 0: got %q, want the header", got)
		}
		if got := buf.Line(1); got != "alpha row 01" {
			t.Errorf("line 1: got %q, want the first row", got)
		}
	})

	t.Run("scrolled, the header stays while rows move", func(t *testing.T) {
		v.ScrollTo(5)
		buf := paint(v, 30, 10)
		if got := buf.Line(0); got != "== Alpha ==" {
			t.Errorf("line 0: got %q, want the header still pinned", got)
		}
		// Content position 6 is row 06; position 5 sits under the header.
		if got := buf.Line(1); got != "alpha row 06" {
			t.Errorf("line 1: got %q, want %q", got, "alpha row 06")
		}
	})
}

func TestViewportHeaderPushOff(t *testing.T) {
	v := NewViewport(Vertical)
	mountedSection(v, "alpha", []string{"Alpha", "-----"}, 10)
	mountedSection(v, "beta", []string{"Beta", "----"}, 10)

	v.ScrollTo(11)
	buf := paint(v, 30, 10)

	// The first section has one cell of paint window left: its header's
	// trailing line, pushed halfway out by the next section.
	if got := buf.Line(0); got != "-----" {
		t.Errorf("line 0: got %q, want the tail of the outgoing header", got)
	}
	if got := buf.Line(1); got != "Beta" {
		t.Errorf("line 1: got %q, want the incoming header", got)
	}
	if got := buf.Line(2); got != "----" {
		t.Errorf("line 2: got %q, want the incoming header's second line", got)
	}
	if got := buf.Line(3); got != "beta row 01" {
		t.Errorf("line 3: got %q, want the second section's first row", got)
	}
}

func TestViewportStuckAmount(t *testing.T) {
	v := NewViewport(Vertical)
	layout, _ := mountedSection(v, "alpha", []string{"Alpha", "-----"}, 10)

	v.LayoutPass(5, 20)
	if got := layout.StuckAmount(); got != 0 {
		t.Fatalf("at rest: got %v, want 0", got)
	}

	v.ScrollTo(1)
	v.LayoutPass(5, 20)
	if got := layout.StuckAmount(); got != -0.5 {
		t.Errorf("scrolled by half the header: got %v, want -0.5", got)
	}
}

func TestViewportMainAxisOriginOf(t *testing.T) {
	v := NewViewport(Vertical)
	layout, _ := mountedSection(v, "alpha", []string{"Alpha"}, 5)

	if _, ok := v.MainAxisOriginOf(layout); ok {
		t.Error("before any layout pass: got ok, want not ok")
	}

	v.LayoutPass(10, 20)
	if pos, ok := v.MainAxisOriginOf(layout); !ok || pos != 0 {
		t.Errorf("after layout: got (%v, %v), want (0, true)", pos, ok)
	}

	foreign := NewSliverList(1, Row{Text: "x"})
	if _, ok := v.MainAxisOriginOf(foreign); ok {
		t.Error("unmounted sliver: got ok, want not ok")
	}
}

func TestViewportScrollClamping(t *testing.T) {
	v := NewViewport(Vertical)
	list := NewSliverList(1)
	rows := make([]Row, 20)
	for i := range rows {
		rows[i] = Row{Text: "r"}
	}
	list.SetRows(rows)
	v.Mount(list)
	v.LayoutPass(10, 20)

	notified := 0
	v.Subscribe(func() { notified++ })

	v.ScrollTo(50)
	if got := v.Offset(); got != 10 {
		t.Errorf("offset after overscroll: got %v, want MaxScroll 10", got)
	}
	if notified != 1 {
		t.Errorf("notifications: got %d, want 1", notified)
	}

	v.ScrollTo(10) // no-op, already there
	if notified != 1 {
		t.Errorf("notifications after no-op scroll: got %d, want still 1", notified)
	}

	v.ScrollBy(-100)
	if got := v.Offset(); got != 0 {
		t.Errorf("offset after underscroll: got %v, want 0", got)
	}
}

func TestViewportReclampsWhenContentShrinks(t *testing.T) {
	v := NewViewport(Vertical)
	list := NewSliverList(1)
	rows := make([]Row, 20)
	for i := range rows {
		rows[i] = Row{Text: "r"}
	}
	list.SetRows(rows)
	v.Mount(list)
	v.LayoutPass(10, 20)
	v.ScrollTo(10)

	list.SetRows(rows[:5])
	v.MarkNeedsLayout()
	v.LayoutPass(10, 20)

	if got := v.Offset(); got != 0 {
		t.Errorf("offset after shrink: got %v, want 0", got)
	}
	if got := v.ContentExtent(); got != 5 {
		t.Errorf("content extent: got %v, want 5", got)
	}
}

func TestViewportHitTest(t *testing.T) {
	v := NewViewport(Vertical)
	layout, list := mountedSection(v, "alpha", []string{"Alpha", "-----"}, 10)

	tapped := false
	layout.Header().(*BoxText).OnTap(func() { tapped = true })
	hitRow := -1
	list.OnRowHit(func(i int) { hitRow = i })

	v.LayoutPass(10, 20)

	if !v.HitTest(0, 3) {
		t.Fatal("header band: got miss, want hit")
	}
	if !tapped {
		t.Error("header tap callback not fired")
	}

	if !v.HitTest(4, 3) {
		t.Fatal("row band: got miss, want hit")
	}
	if hitRow != 2 {
		t.Errorf("row index: got %d, want 2 (main 4 minus header extent 2)", hitRow)
	}

	if v.HitTest(30, 3) {
		t.Error("past the content: got hit, want miss")
	}
}

func TestViewportUnmountDetaches(t *testing.T) {
	v := NewViewport(Vertical)
	layout, _ := mountedSection(v, "alpha", []string{"Alpha"}, 5)

	if !layout.Attached() {
		t.Fatal("after mount: got detached, want attached")
	}
	v.Unmount(layout)
	if layout.Attached() {
		t.Error("after unmount: got attached, want detached")
	}
	if got := len(v.Slivers()); got != 0 {
		t.Errorf("mounted slivers: got %d, want 0", got)
	}
}

func TestViewportScrollNotifiesLayouts(t *testing.T) {
	v := NewViewport(Vertical)
	mountedSection(v, "alpha", []string{"Alpha"}, 5)
	v.LayoutPass(10, 20)

	if v.NeedsLayout() {
		t.Fatal("fresh pass: viewport still dirty")
	}
	v.ScrollTo(1)
	if !v.NeedsLayout() {
		t.Error("after scroll: viewport not marked dirty")
	}
}
