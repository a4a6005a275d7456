package sticky

import (
	"math"
	"testing"
)

func TestPaintOffsetWithin(t *testing.T) {
	c := ViewportConstraints{ScrollOffset: 30, RemainingPaintExtent: 400}

	t.Run("span fully before the scroll offset", func(t *testing.T) {
		if got := c.PaintOffsetWithin(0, 20); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("span straddling the scroll offset", func(t *testing.T) {
		if got := c.PaintOffsetWithin(0, 50); got != 20 {
			t.Errorf("got %v, want 20", got)
		}
	})

	t.Run("span larger than the paint window", func(t *testing.T) {
		if got := c.PaintOffsetWithin(0, 1000); got != 400 {
			t.Errorf("got %v, want 400", got)
		}
	})

	t.Run("span fully visible", func(t *testing.T) {
		if got := c.PaintOffsetWithin(40, 90); got != 50 {
			t.Errorf("got %v, want 50", got)
		}
	})
}

func TestCacheOffsetWithin(t *testing.T) {
	c := ViewportConstraints{
		ScrollOffset:         30,
		RemainingPaintExtent: 100,
		CacheOrigin:          -10,
		RemainingCacheExtent: 120,
	}

	// Cache window covers [20, 140) in content coordinates.
	t.Run("span inside the cache window", func(t *testing.T) {
		if got := c.CacheOffsetWithin(25, 60); got != 35 {
			t.Errorf("got %v, want 35", got)
		}
	})

	t.Run("span before the cache window", func(t *testing.T) {
		if got := c.CacheOffsetWithin(0, 20); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("span overflowing the cache window", func(t *testing.T) {
		if got := c.CacheOffsetWithin(100, 300); got != 40 {
			t.Errorf("got %v, want 40", got)
		}
	})
}

func TestInsetByLeading(t *testing.T) {
	base := ViewportConstraints{
		Axis:                  Vertical,
		ScrollOffset:          0,
		PrecedingScrollExtent: 100,
		RemainingPaintExtent:  400,
		CrossAxisExtent:       80,
		CacheOrigin:           0,
		RemainingCacheExtent:  400,
	}

	t.Run("leading region fully visible", func(t *testing.T) {
		in := base.InsetByLeading(50)
		if in.ScrollOffset != 0 {
			t.Errorf("ScrollOffset: got %v, want 0", in.ScrollOffset)
		}
		if in.RemainingPaintExtent != 350 {
			t.Errorf("RemainingPaintExtent: got %v, want 350", in.RemainingPaintExtent)
		}
		if in.PrecedingScrollExtent != 150 {
			t.Errorf("PrecedingScrollExtent: got %v, want 150", in.PrecedingScrollExtent)
		}
	})

	t.Run("leading region partially scrolled past", func(t *testing.T) {
		c := base
		c.ScrollOffset = 30
		in := c.InsetByLeading(50)
		if in.ScrollOffset != 0 {
			t.Errorf("ScrollOffset: got %v, want 0", in.ScrollOffset)
		}
		// Only the 20 still-visible cells of the leading region shrink the
		// paint window.
		if in.RemainingPaintExtent != 380 {
			t.Errorf("RemainingPaintExtent: got %v, want 380", in.RemainingPaintExtent)
		}
	})

	t.Run("leading region fully scrolled past", func(t *testing.T) {
		c := base
		c.ScrollOffset = 80
		in := c.InsetByLeading(50)
		if in.ScrollOffset != 30 {
			t.Errorf("ScrollOffset: got %v, want 30", in.ScrollOffset)
		}
		if in.RemainingPaintExtent != 400 {
			t.Errorf("RemainingPaintExtent: got %v, want 400", in.RemainingPaintExtent)
		}
	})

	t.Run("cache origin stays clipped at zero", func(t *testing.T) {
		c := base
		c.ScrollOffset = 30
		c.CacheOrigin = -10
		in := c.InsetByLeading(50)
		if in.CacheOrigin > 0 {
			t.Errorf("CacheOrigin: got %v, want <= 0", in.CacheOrigin)
		}
		if in.Overlap != 0 {
			t.Errorf("Overlap: got %v, want 0", in.Overlap)
		}
	})
}

func TestBoxConstraintsDerivation(t *testing.T) {
	t.Run("vertical axis is tight across and loose along", func(t *testing.T) {
		c := ViewportConstraints{Axis: Vertical, CrossAxisExtent: 80}
		bc := c.BoxConstraints()
		if bc.MinWidth != 80 || bc.MaxWidth != 80 {
			t.Errorf("width: got [%v, %v], want tight 80", bc.MinWidth, bc.MaxWidth)
		}
		if !math.IsInf(bc.MaxHeight, 1) {
			t.Errorf("MaxHeight: got %v, want +Inf", bc.MaxHeight)
		}
	})

	t.Run("horizontal axis flips the tight dimension", func(t *testing.T) {
		c := ViewportConstraints{Axis: Horizontal, CrossAxisExtent: 24}
		bc := c.BoxConstraints()
		if bc.MinHeight != 24 || bc.MaxHeight != 24 {
			t.Errorf("height: got [%v, %v], want tight 24", bc.MinHeight, bc.MaxHeight)
		}
		if !math.IsInf(bc.MaxWidth, 1) {
			t.Errorf("MaxWidth: got %v, want +Inf", bc.MaxWidth)
		}
	})
}

func TestSizeAxisAccessors(t *testing.T) {
	s := Size{Width: 3, Height: 7}
	if got := s.Along(Vertical); got != 7 {
		t.Errorf("Along(Vertical): got %v, want 7", got)
	}
	if got := s.Along(Horizontal); got != 3 {
		t.Errorf("Along(Horizontal): got %v, want 3", got)
	}
	if got := s.Across(Vertical); got != 3 {
		t.Errorf("Across(Vertical): got %v, want 3", got)
	}
	if got := s.Across(Horizontal); got != 7 {
		t.Errorf("Across(Horizontal): got %v, want 7", got)
	}
}

func TestClampInvertedInterval(t *testing.T) {
	// Paint extents must never go negative even when the content has
	// scrolled entirely past.
	if got := clamp(400, 0, -20); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestRoundToPixel(t *testing.T) {
	if got := roundToPixel(1.4, 1); got != 1 {
		t.Errorf("ratio 1: got %v, want 1", got)
	}
	if got := roundToPixel(1.26, 2); got != 1.5 {
		t.Errorf("ratio 2: got %v, want 1.5", got)
	}
	if got := roundToPixel(1.26, 0); got != 1.26 {
		t.Errorf("ratio 0: got %v, want value unchanged", got)
	}
}
