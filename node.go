package sticky

import "fmt"

// Box is a node with a fixed two-dimensional size, laid out under box
// constraints. Headers are boxes.
type Box interface {
	// Layout sizes the box under the given constraints and returns the
	// chosen size.
	Layout(bc BoxConstraints) Size

	// Size returns the size chosen by the last Layout call.
	Size() Size

	// Paint draws the box with its origin at cell (x, y).
	Paint(buf *Buffer, x, y int)

	// HitTest reports whether the position, in the box's local cell space,
	// hits interactive content.
	HitTest(x, y float64) bool
}

// Sliver is a node that occupies a variable span of a scrollable axis,
// laid out under viewport constraints. Bodies are slivers.
type Sliver interface {
	// Layout computes the sliver's geometry for the given constraints.
	Layout(vc ViewportConstraints) Geometry

	// Geometry returns the geometry from the last Layout call.
	Geometry() Geometry

	// Paint draws the visible part of the sliver with its paint origin at
	// cell (x, y).
	Paint(buf *Buffer, x, y int)

	// HitTest reports whether the position, given as main-axis and
	// cross-axis cells from the sliver's paint origin, hits interactive
	// content.
	HitTest(main, cross float64) bool
}

// ChildPlacement is the parent data a StickyHeaderLayout records for each
// child during layout.
type ChildPlacement struct {
	// PaintOffset is the child's paint position along the main axis,
	// relative to the layout's paint origin.
	PaintOffset float64

	// ScrollOffset is where the child's scroll space begins inside the
	// layout's scroll space.
	ScrollOffset float64
}

// Child identifies one of the two permanent slots of a StickyHeaderLayout.
type Child uint8

const (
	ChildHeader Child = iota
	ChildBody
)

func (c Child) String() string {
	switch c {
	case ChildHeader:
		return "header"
	case ChildBody:
		return "body"
	}
	return fmt.Sprintf("Child(%d)", uint8(c))
}
