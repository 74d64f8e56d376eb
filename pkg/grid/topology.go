package grid

// ColumnSpan returns the column span length declared at pos, if the span is
// valid for shape: the origin lies inside the shape and the span does not
// run past the last column. Invalid spans report false and are ignored by
// the rest of the engine, never clamped or repaired.
func (c *Config) ColumnSpan(pos Position, shape Shape) (int, bool) {
	n, ok := c.colSpans[pos]
	if !ok || !shape.Contains(pos) || pos.Col+n > shape.Cols {
		return 0, false
	}
	return n, true
}

// RowSpan returns the row span length declared at pos, if the span is valid
// for shape.
func (c *Config) RowSpan(pos Position, shape Shape) (int, bool) {
	n, ok := c.rowSpans[pos]
	if !ok || !shape.Contains(pos) || pos.Row+n > shape.Rows {
		return 0, false
	}
	return n, true
}

// spanExtent returns the rectangle occupied by the cell at origin: its valid
// column span and row span lengths, both at least 1.
func (c *Config) spanExtent(origin Position, shape Shape) (cols, rows int) {
	cols, rows = 1, 1
	if n, ok := c.ColumnSpan(origin, shape); ok && n > 1 {
		cols = n
	}
	if n, ok := c.RowSpan(origin, shape); ok && n > 1 {
		rows = n
	}
	return cols, rows
}

// IsVisible reports whether the cell at pos is rendered. A cell is hidden
// iff it lies strictly inside the extent of another cell's valid span: the
// span origin is at or up-and-left of pos (at least one coordinate strictly
// so) and pos falls within the spanned rectangle. Span origins are always
// visible. Positions outside the shape report false.
func (c *Config) IsVisible(pos Position, shape Shape) bool {
	if !shape.Contains(pos) {
		return false
	}
	_, ok := c.coveringOrigin(pos, shape)
	return !ok
}

// Covering returns the origin of the cell occupying pos: pos itself when
// visible, otherwise the origin of the span hiding it.
func (c *Config) Covering(pos Position, shape Shape) Position {
	if o, ok := c.coveringOrigin(pos, shape); ok {
		return o
	}
	return pos
}

// coveringOrigin finds a span origin strictly dominating pos whose extent
// contains it. When several match (overlapping spans are a caller mistake),
// the topmost-leftmost origin wins, deterministically.
func (c *Config) coveringOrigin(pos Position, shape Shape) (Position, bool) {
	var best Position
	found := false
	consider := func(origin Position) {
		if origin == pos {
			return
		}
		if origin.Row > pos.Row || origin.Col > pos.Col {
			return
		}
		cols, rows := c.spanExtent(origin, shape)
		if cols == 1 && rows == 1 {
			return
		}
		if pos.Row >= origin.Row+rows || pos.Col >= origin.Col+cols {
			return
		}
		if !found || origin.Row < best.Row || (origin.Row == best.Row && origin.Col < best.Col) {
			best = origin
			found = true
		}
	}
	for origin := range c.colSpans {
		consider(origin)
	}
	for origin := range c.rowSpans {
		if _, dup := c.colSpans[origin]; dup {
			continue
		}
		consider(origin)
	}
	return best, found
}

// HasHorizontal reports whether the horizontal border line at the given
// index exists: a global glyph is set for that frame position, a line
// override is present, a per-cell override touches the line, or the global
// fallback glyph is set (which forces every border position to exist).
func (c *Config) HasHorizontal(row int, shape Shape) bool {
	if c.fallback != 0 {
		return true
	}
	if l, ok := c.hlines[row]; ok && !l.IsEmpty() {
		return true
	}
	if _, ok := c.borderRows[row]; ok {
		return true
	}
	switch {
	case row == 0:
		return c.borders.hasTop()
	case row == shape.Rows:
		return c.borders.hasBottom()
	default:
		return c.borders.hasHorizontal()
	}
}

// HasVertical reports whether the vertical border line at the given index
// exists.
func (c *Config) HasVertical(col int, shape Shape) bool {
	if c.fallback != 0 {
		return true
	}
	if l, ok := c.vlines[col]; ok && !l.IsEmpty() {
		return true
	}
	if _, ok := c.borderCols[col]; ok {
		return true
	}
	switch {
	case col == 0:
		return c.borders.hasLeft()
	case col == shape.Cols:
		return c.borders.hasRight()
	default:
		return c.borders.hasVertical()
	}
}

// CountHorizontal returns the number of existing horizontal border lines
// for a grid of the given shape, including the frame.
func (c *Config) CountHorizontal(shape Shape) int {
	n := 0
	for row := 0; row <= shape.Rows; row++ {
		if c.HasHorizontal(row, shape) {
			n++
		}
	}
	return n
}

// CountVertical returns the number of existing vertical border lines for a
// grid of the given shape, including the frame.
func (c *Config) CountVertical(shape Shape) int {
	n := 0
	for col := 0; col <= shape.Cols; col++ {
		if c.HasVertical(col, shape) {
			n++
		}
	}
	return n
}
