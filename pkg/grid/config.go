package grid

// Alignment controls horizontal placement of cell text within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Padding is the number of blank columns (Left, Right) and blank lines
// (Top, Bottom) around a cell's text.
type Padding struct {
	Left, Right, Top, Bottom int
}

// Config is the table configuration owning all border layers, spans, padding,
// and alignment. It is constructed once per table and mutated in place; the
// layout queries (Resolve, Estimate, HasHorizontal, ...) read it without
// modifying it.
//
// Config is not safe for concurrent mutation; the caller sequences writes
// before reads.
type Config struct {
	borders  Borders
	fallback rune

	cellBorders map[Position]Border
	hlines      map[int]HLine
	vlines      map[int]VLine

	colSpans map[Position]int
	rowSpans map[Position]int

	padding     Padding
	cellPadding map[Position]Padding

	alignment Alignment
	cellAlign map[Position]Alignment

	width WidthFunc

	// Index sets tracking which border lines are touched by at least one
	// per-cell override. Maintained incrementally by SetBorder; RemoveBorder
	// re-derives membership by scanning the remaining overrides.
	borderRows map[int]struct{}
	borderCols map[int]struct{}
}

// NewConfig returns an empty configuration: no borders, no spans, zero
// padding, left alignment, and DisplayWidth as the width function.
func NewConfig() *Config {
	return &Config{
		cellBorders: make(map[Position]Border),
		hlines:      make(map[int]HLine),
		vlines:      make(map[int]VLine),
		colSpans:    make(map[Position]int),
		rowSpans:    make(map[Position]int),
		cellPadding: make(map[Position]Padding),
		cellAlign:   make(map[Position]Alignment),
		borderRows:  make(map[int]struct{}),
		borderCols:  make(map[int]struct{}),
		width:       DisplayWidth,
	}
}

// SetBorders replaces the global frame/split glyph set.
func (c *Config) SetBorders(b Borders) { c.borders = b }

// Borders returns the global frame/split glyph set.
func (c *Config) Borders() Borders { return c.borders }

// SetBorderDefault sets the fallback glyph used to fill any border position
// that exists but has no specific glyph. Setting it forces every border
// position to exist. A zero rune clears it.
func (c *Config) SetBorderDefault(r rune) { c.fallback = r }

// BorderDefault returns the fallback glyph, or zero if unset.
func (c *Config) BorderDefault() rune { return c.fallback }

// SetBorder installs a per-cell border override for pos, the highest
// precedence layer. An empty border is equivalent to RemoveBorder.
func (c *Config) SetBorder(pos Position, b Border) {
	if b.IsEmpty() {
		c.RemoveBorder(pos)
		return
	}
	c.cellBorders[pos] = b
	if b.touchesTop() {
		c.borderRows[pos.Row] = struct{}{}
	}
	if b.touchesBottom() {
		c.borderRows[pos.Row+1] = struct{}{}
	}
	if b.touchesLeft() {
		c.borderCols[pos.Col] = struct{}{}
	}
	if b.touchesRight() {
		c.borderCols[pos.Col+1] = struct{}{}
	}
}

// Border returns the raw per-cell override at pos, without resolving the
// lower layers. The zero Border means no override is set.
func (c *Config) Border(pos Position) Border { return c.cellBorders[pos] }

// RemoveBorder deletes the per-cell override at pos. Membership of the four
// adjacent border lines in the index sets is recomputed from the remaining
// overrides, since other cells may still touch the same lines.
func (c *Config) RemoveBorder(pos Position) {
	delete(c.cellBorders, pos)
	c.rescanRow(pos.Row)
	c.rescanRow(pos.Row + 1)
	c.rescanCol(pos.Col)
	c.rescanCol(pos.Col + 1)
}

func (c *Config) rescanRow(row int) {
	for p, b := range c.cellBorders {
		if p.Row == row && b.touchesTop() {
			return
		}
		if p.Row+1 == row && b.touchesBottom() {
			return
		}
	}
	delete(c.borderRows, row)
}

func (c *Config) rescanCol(col int) {
	for p, b := range c.cellBorders {
		if p.Col == col && b.touchesLeft() {
			return
		}
		if p.Col+1 == col && b.touchesRight() {
			return
		}
	}
	delete(c.borderCols, col)
}

// SetHorizontalLine overrides the horizontal border line at the given index
// (0 is above the first row, shape.Rows is below the last).
func (c *Config) SetHorizontalLine(row int, l HLine) {
	if l.IsEmpty() {
		delete(c.hlines, row)
		return
	}
	c.hlines[row] = l
}

// HorizontalLine returns the override for the horizontal line at row.
func (c *Config) HorizontalLine(row int) (HLine, bool) {
	l, ok := c.hlines[row]
	return l, ok
}

// RemoveHorizontalLine deletes the override for the horizontal line at row.
func (c *Config) RemoveHorizontalLine(row int) { delete(c.hlines, row) }

// SetVerticalLine overrides the vertical border line at the given index
// (0 is left of the first column, shape.Cols is right of the last).
func (c *Config) SetVerticalLine(col int, l VLine) {
	if l.IsEmpty() {
		delete(c.vlines, col)
		return
	}
	c.vlines[col] = l
}

// VerticalLine returns the override for the vertical line at col.
func (c *Config) VerticalLine(col int) (VLine, bool) {
	l, ok := c.vlines[col]
	return l, ok
}

// RemoveVerticalLine deletes the override for the vertical line at col.
func (c *Config) RemoveVerticalLine(col int) { delete(c.vlines, col) }

// SetColumnSpan declares that the cell at pos occupies length columns.
// Lengths of 0 and 1 have no layout effect. Validity against the grid shape
// is checked at query time, not here: a span that does not fit its shape is
// ignored, never clamped.
func (c *Config) SetColumnSpan(pos Position, length int) {
	if length < 0 {
		return
	}
	c.colSpans[pos] = length
}

// RemoveColumnSpan deletes the column span declared at pos.
func (c *Config) RemoveColumnSpan(pos Position) { delete(c.colSpans, pos) }

// SetRowSpan declares that the cell at pos occupies length rows.
func (c *Config) SetRowSpan(pos Position, length int) {
	if length < 0 {
		return
	}
	c.rowSpans[pos] = length
}

// RemoveRowSpan deletes the row span declared at pos.
func (c *Config) RemoveRowSpan(pos Position) { delete(c.rowSpans, pos) }

// SetPadding sets the grid-wide default padding.
func (c *Config) SetPadding(p Padding) { c.padding = p }

// SetCellPadding overrides padding for a single cell.
func (c *Config) SetCellPadding(pos Position, p Padding) { c.cellPadding[pos] = p }

// PaddingAt returns the padding for the cell at pos.
func (c *Config) PaddingAt(pos Position) Padding {
	if p, ok := c.cellPadding[pos]; ok {
		return p
	}
	return c.padding
}

// SetAlignment sets the grid-wide default alignment.
func (c *Config) SetAlignment(a Alignment) { c.alignment = a }

// SetCellAlignment overrides alignment for a single cell.
func (c *Config) SetCellAlignment(pos Position, a Alignment) { c.cellAlign[pos] = a }

// AlignmentAt returns the alignment for the cell at pos.
func (c *Config) AlignmentAt(pos Position) Alignment {
	if a, ok := c.cellAlign[pos]; ok {
		return a
	}
	return c.alignment
}

// SetWidthFunc replaces the display-width function used by Estimate.
// A nil fn restores DisplayWidth.
func (c *Config) SetWidthFunc(fn WidthFunc) {
	if fn == nil {
		fn = DisplayWidth
	}
	c.width = fn
}

// WidthOf measures a single line of text with the configured width function.
func (c *Config) WidthOf(line string) int { return c.width(line) }
