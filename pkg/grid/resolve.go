package grid

// Resolve returns the glyphs drawn on all 8 facets of the cell at pos. Each
// facet is resolved independently through the override chain: per-cell
// override, then per-line override, then the global frame/split set, then
// the fallback glyph. The fallback is emitted only when the topology
// confirms a border of that orientation exists at that index, so it fills
// gaps without inventing borders.
//
// Facets that resolve to zero are not drawn.
func (c *Config) Resolve(pos Position, shape Shape) Border {
	ov := c.cellBorders[pos]
	return Border{
		Top:         c.resolveHorizontal(ov.Top, pos.Row, shape),
		Bottom:      c.resolveHorizontal(ov.Bottom, pos.Row+1, shape),
		Left:        c.resolveVertical(ov.Left, pos.Col, shape),
		Right:       c.resolveVertical(ov.Right, pos.Col+1, shape),
		TopLeft:     c.resolveIntersection(ov.TopLeft, pos.Row, pos.Col, shape),
		TopRight:    c.resolveIntersection(ov.TopRight, pos.Row, pos.Col+1, shape),
		BottomLeft:  c.resolveIntersection(ov.BottomLeft, pos.Row+1, pos.Col, shape),
		BottomRight: c.resolveIntersection(ov.BottomRight, pos.Row+1, pos.Col+1, shape),
	}
}

// resolveHorizontal resolves the glyph for a cell edge lying on the
// horizontal border line at row.
func (c *Config) resolveHorizontal(override rune, row int, shape Shape) rune {
	if override != 0 {
		return override
	}
	if l, ok := c.hlines[row]; ok && l.Main != 0 {
		return l.Main
	}
	var g rune
	switch {
	case row == 0:
		g = c.borders.Top
	case row == shape.Rows:
		g = c.borders.Bottom
	default:
		g = c.borders.Horizontal
	}
	if g != 0 {
		return g
	}
	if c.fallback != 0 && c.HasHorizontal(row, shape) {
		return c.fallback
	}
	return 0
}

// resolveVertical resolves the glyph for a cell edge lying on the vertical
// border line at col.
func (c *Config) resolveVertical(override rune, col int, shape Shape) rune {
	if override != 0 {
		return override
	}
	if l, ok := c.vlines[col]; ok && l.Main != 0 {
		return l.Main
	}
	var g rune
	switch {
	case col == 0:
		g = c.borders.Left
	case col == shape.Cols:
		g = c.borders.Right
	default:
		g = c.borders.Vertical
	}
	if g != 0 {
		return g
	}
	if c.fallback != 0 && c.HasVertical(col, shape) {
		return c.fallback
	}
	return 0
}

// resolveIntersection resolves the glyph for a corner facet at the border
// crossing (row, col). A horizontal line override supplies its edge
// connectors before a vertical one; the fallback requires both orientations
// to exist at the crossing.
func (c *Config) resolveIntersection(override rune, row, col int, shape Shape) rune {
	if override != 0 {
		return override
	}
	if l, ok := c.hlines[row]; ok {
		var g rune
		switch {
		case col == 0:
			g = l.Left
		case col == shape.Cols:
			g = l.Right
		default:
			g = l.Intersection
		}
		if g != 0 {
			return g
		}
	}
	if l, ok := c.vlines[col]; ok {
		var g rune
		switch {
		case row == 0:
			g = l.Top
		case row == shape.Rows:
			g = l.Bottom
		default:
			g = l.Intersection
		}
		if g != 0 {
			return g
		}
	}
	if g := c.borders.intersection(row, col, shape); g != 0 {
		return g
	}
	if c.fallback != 0 && c.HasHorizontal(row, shape) && c.HasVertical(col, shape) {
		return c.fallback
	}
	return 0
}
