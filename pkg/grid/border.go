package grid

// Border holds the glyphs for the 8 facets of a single cell: 4 edges and
// 4 corners. A zero rune means the facet is not set.
type Border struct {
	Top, Bottom, Left, Right                   rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

// IsEmpty reports whether no facet is set.
func (b Border) IsEmpty() bool { return b == Border{} }

// touchesTop reports whether any facet of b sits on the cell's top border
// line. Used to maintain the row index set for HasHorizontal.
func (b Border) touchesTop() bool { return b.Top != 0 || b.TopLeft != 0 || b.TopRight != 0 }

func (b Border) touchesBottom() bool {
	return b.Bottom != 0 || b.BottomLeft != 0 || b.BottomRight != 0
}

func (b Border) touchesLeft() bool { return b.Left != 0 || b.TopLeft != 0 || b.BottomLeft != 0 }

func (b Border) touchesRight() bool { return b.Right != 0 || b.TopRight != 0 || b.BottomRight != 0 }

// HLine overrides one horizontal border line of the grid. Main is the glyph
// drawn along cell edges, Intersection at interior crossings, Left and Right
// at the two outer connectors where the line meets the frame.
type HLine struct {
	Main, Intersection rune
	Left, Right        rune
}

// IsEmpty reports whether no glyph is set.
func (l HLine) IsEmpty() bool { return l == HLine{} }

// VLine overrides one vertical border line of the grid; Top and Bottom are
// the outer connectors.
type VLine struct {
	Main, Intersection rune
	Top, Bottom        rune
}

// IsEmpty reports whether no glyph is set.
func (l VLine) IsEmpty() bool { return l == VLine{} }

// Borders is the global frame/split glyph set: the outer frame edges and
// corners, the interior split lines, and the nine intersection variants.
// A zero rune means the glyph is not set.
type Borders struct {
	// Outer frame edges.
	Top, Bottom, Left, Right rune

	// Outer frame corners.
	TopLeft, TopRight, BottomLeft, BottomRight rune

	// Connectors where an interior split meets the frame.
	TopIntersection, BottomIntersection, LeftIntersection, RightIntersection rune

	// Interior split lines and their crossing.
	Horizontal, Vertical, Intersection rune
}

// IsEmpty reports whether no glyph is set.
func (b Borders) IsEmpty() bool { return b == Borders{} }

// hasTop reports whether any glyph on the top frame line is set.
func (b Borders) hasTop() bool {
	return b.Top != 0 || b.TopLeft != 0 || b.TopRight != 0 || b.TopIntersection != 0
}

func (b Borders) hasBottom() bool {
	return b.Bottom != 0 || b.BottomLeft != 0 || b.BottomRight != 0 || b.BottomIntersection != 0
}

func (b Borders) hasLeft() bool {
	return b.Left != 0 || b.TopLeft != 0 || b.BottomLeft != 0 || b.LeftIntersection != 0
}

func (b Borders) hasRight() bool {
	return b.Right != 0 || b.TopRight != 0 || b.BottomRight != 0 || b.RightIntersection != 0
}

// hasHorizontal reports whether any glyph on an interior horizontal split is set.
func (b Borders) hasHorizontal() bool {
	return b.Horizontal != 0 || b.LeftIntersection != 0 || b.RightIntersection != 0 || b.Intersection != 0
}

// hasVertical reports whether any glyph on an interior vertical split is set.
func (b Borders) hasVertical() bool {
	return b.Vertical != 0 || b.TopIntersection != 0 || b.BottomIntersection != 0 || b.Intersection != 0
}

// intersection returns the global glyph for the border crossing at
// (row, col), where row ranges 0..shape.Rows and col ranges 0..shape.Cols.
// The variant is chosen by whether the crossing sits on the outer frame or
// an interior split.
func (b Borders) intersection(row, col int, shape Shape) rune {
	onTop := row == 0
	onBottom := row == shape.Rows
	onLeft := col == 0
	onRight := col == shape.Cols

	switch {
	case onTop && onLeft:
		return b.TopLeft
	case onTop && onRight:
		return b.TopRight
	case onBottom && onLeft:
		return b.BottomLeft
	case onBottom && onRight:
		return b.BottomRight
	case onTop:
		return b.TopIntersection
	case onBottom:
		return b.BottomIntersection
	case onLeft:
		return b.LeftIntersection
	case onRight:
		return b.RightIntersection
	default:
		return b.Intersection
	}
}
