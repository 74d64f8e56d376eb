// Package render paints tabular records into framed text using the layout
// engine in pkg/grid. It is a thin consumer: every border glyph comes from
// the grid's border resolution and every dimension from its estimator.
package render

import (
	"strings"

	"github.com/matzehuels/gridtable/pkg/grid"
)

// Text renders records as a framed table under cfg. The output has no
// trailing newline; an empty grid renders as the empty string.
func Text(records grid.Records, cfg *grid.Config) string {
	widths, heights := grid.Estimate(records, cfg)
	p := newPainter(records, cfg, widths, heights)
	if p.shape.IsEmpty() {
		return ""
	}

	var lines []string
	for r := range p.shape.Rows {
		if cfg.HasHorizontal(r, p.shape) {
			lines = append(lines, p.borderLine(r))
		}
		for k := range p.heights[r] {
			lines = append(lines, p.contentLine(r, k))
		}
	}
	if cfg.HasHorizontal(p.shape.Rows, p.shape) {
		lines = append(lines, p.borderLine(p.shape.Rows))
	}
	return strings.Join(lines, "\n")
}

type painter struct {
	rows    [][]string
	cfg     *grid.Config
	shape   grid.Shape
	widths  grid.Widths
	heights grid.Heights
}

func newPainter(records grid.Records, cfg *grid.Config, widths grid.Widths, heights grid.Heights) *painter {
	var rows [][]string
	for row := range records.Rows() {
		rows = append(rows, row)
	}
	return &painter{
		rows:    rows,
		cfg:     cfg,
		shape:   grid.Shape{Rows: len(rows), Cols: records.ColumnCount()},
		widths:  widths,
		heights: heights,
	}
}

// resolve is border resolution through the covering cell, so a spanned
// cell's overrides apply across its whole extent.
func (p *painter) resolve(pos grid.Position) grid.Border {
	return p.cfg.Resolve(p.cfg.Covering(pos, p.shape), p.shape)
}

// override is the raw per-cell border of the cell covering pos, the
// highest layer of border resolution.
func (p *painter) override(pos grid.Position) grid.Border {
	return p.cfg.Border(p.cfg.Covering(pos, p.shape))
}

// verticalGlyph picks the glyph for the vertical border at colIdx in
// content row r. Both adjacent cells are consulted, per-cell overrides on
// either side before any resolved layer: the neighbor's lower layers must
// not shadow an override set across the boundary.
func (p *painter) verticalGlyph(r, colIdx int) rune {
	right, left := colIdx < p.shape.Cols, colIdx > 0
	if right {
		if g := p.override(grid.Pos(r, colIdx)).Left; g != 0 {
			return g
		}
	}
	if left {
		if g := p.override(grid.Pos(r, colIdx-1)).Right; g != 0 {
			return g
		}
	}
	if right {
		if g := p.resolve(grid.Pos(r, colIdx)).Left; g != 0 {
			return g
		}
	}
	if left {
		if g := p.resolve(grid.Pos(r, colIdx-1)).Right; g != 0 {
			return g
		}
	}
	return 0
}

// horizontalGlyph picks the edge glyph drawn over column c on the border
// line at r. Overrides from both sides win over resolved facets; within a
// layer the cell below the line is consulted before the cell above it.
func (p *painter) horizontalGlyph(r, c int) rune {
	below, above := r < p.shape.Rows, r > 0
	if below {
		if g := p.override(grid.Pos(r, c)).Top; g != 0 {
			return g
		}
	}
	if above {
		if g := p.override(grid.Pos(r-1, c)).Bottom; g != 0 {
			return g
		}
	}
	if below {
		if g := p.cfg.Resolve(grid.Pos(r, c), p.shape).Top; g != 0 {
			return g
		}
	}
	if above {
		if g := p.cfg.Resolve(grid.Pos(r-1, c), p.shape).Bottom; g != 0 {
			return g
		}
	}
	return 0
}

// intersectionGlyph picks the glyph at the border crossing (r, colIdx) from
// the corner facets of the up to four cells meeting there. All four cells'
// per-cell overrides are consulted before any resolved facet; within a
// layer the order is below-right first.
func (p *painter) intersectionGlyph(r, colIdx int) rune {
	below, above := r < p.shape.Rows, r > 0
	right, left := colIdx < p.shape.Cols, colIdx > 0
	corners := [4]struct {
		ok    bool
		pos   grid.Position
		facet func(grid.Border) rune
	}{
		{below && right, grid.Pos(r, colIdx), func(b grid.Border) rune { return b.TopLeft }},
		{below && left, grid.Pos(r, colIdx-1), func(b grid.Border) rune { return b.TopRight }},
		{above && right, grid.Pos(r-1, colIdx), func(b grid.Border) rune { return b.BottomLeft }},
		{above && left, grid.Pos(r-1, colIdx-1), func(b grid.Border) rune { return b.BottomRight }},
	}
	for _, c := range corners {
		if !c.ok {
			continue
		}
		if g := c.facet(p.override(c.pos)); g != 0 {
			return g
		}
	}
	for _, c := range corners {
		if !c.ok {
			continue
		}
		if g := c.facet(p.cfg.Resolve(c.pos, p.shape)); g != 0 {
			return g
		}
	}
	return 0
}

// extent returns the valid span lengths of the cell at origin, both at
// least 1.
func (p *painter) extent(origin grid.Position) (cols, rows int) {
	cols, rows = 1, 1
	if n, ok := p.cfg.ColumnSpan(origin, p.shape); ok && n > 1 {
		cols = n
	}
	if n, ok := p.cfg.RowSpan(origin, p.shape); ok && n > 1 {
		rows = n
	}
	return cols, rows
}

// chunkWidth is the display width of the cell starting at origin: the sum
// of the columns it spans plus the interior vertical border positions it
// swallows.
func (p *painter) chunkWidth(origin grid.Position, spanCols int) int {
	w := 0
	for i := origin.Col; i < origin.Col+spanCols; i++ {
		w += p.widths[i]
	}
	for i := origin.Col + 1; i < origin.Col+spanCols; i++ {
		if p.cfg.HasVertical(i, p.shape) {
			w++
		}
	}
	return w
}

// lineWithin maps grid row r to the index of its border line (or, without a
// border at r, its first content line) inside the extent of the cell at
// origin.
func (p *painter) lineWithin(origin grid.Position, r int) int {
	n := 0
	for i := origin.Row; i < r; i++ {
		n += p.heights[i]
	}
	for j := origin.Row + 1; j < r; j++ {
		if p.cfg.HasHorizontal(j, p.shape) {
			n++
		}
	}
	return n
}

// contentLine renders the k-th text line of grid row r.
func (p *painter) contentLine(r, k int) string {
	var sb strings.Builder
	c := 0
	for c < p.shape.Cols {
		origin := p.cfg.Covering(grid.Pos(r, c), p.shape)
		if p.cfg.HasVertical(c, p.shape) {
			writeGlyph(&sb, p.verticalGlyph(r, c))
		}
		spanCols, _ := p.extent(origin)
		line := p.lineWithin(origin, r)
		if origin.Row < r && p.cfg.HasHorizontal(r, p.shape) {
			line++ // the border line at r belongs to the span's extent
		}
		sb.WriteString(p.cellChunk(origin, line+k, p.chunkWidth(origin, spanCols)))
		c = origin.Col + spanCols
	}
	if p.cfg.HasVertical(p.shape.Cols, p.shape) {
		writeGlyph(&sb, p.verticalGlyph(r, p.shape.Cols))
	}
	return sb.String()
}

// borderLine renders the horizontal border line at index r. Segments
// crossed by a row span show the spanned cell's continued content instead
// of border glyphs.
func (p *painter) borderLine(r int) string {
	var sb strings.Builder
	c := 0
	for c < p.shape.Cols {
		if origin, ok := p.crossing(r, c); ok {
			if p.cfg.HasVertical(c, p.shape) {
				writeGlyph(&sb, p.resolve(origin).Left)
			}
			spanCols, _ := p.extent(origin)
			sb.WriteString(p.cellChunk(origin, p.lineWithin(origin, r), p.chunkWidth(origin, spanCols)))
			c = origin.Col + spanCols
			continue
		}
		if p.cfg.HasVertical(c, p.shape) {
			writeGlyph(&sb, p.intersectionGlyph(r, c))
		}
		writeRepeated(&sb, p.horizontalGlyph(r, c), p.widths[c])
		c++
	}
	if p.cfg.HasVertical(p.shape.Cols, p.shape) {
		if origin, ok := p.crossing(r, p.shape.Cols-1); ok {
			writeGlyph(&sb, p.resolve(origin).Right)
		} else {
			writeGlyph(&sb, p.intersectionGlyph(r, p.shape.Cols))
		}
	}
	return sb.String()
}

// crossing reports whether a row span runs through the horizontal border
// line at r in column c, returning the spanning cell's origin.
func (p *painter) crossing(r, c int) (grid.Position, bool) {
	if r == 0 || r == p.shape.Rows {
		return grid.Position{}, false
	}
	origin := p.cfg.Covering(grid.Pos(r, c), p.shape)
	if origin.Row < r {
		return origin, true
	}
	return grid.Position{}, false
}

// cellChunk renders one display line of the cell at origin: padding, the
// aligned text line (or blank filler outside the text block), padding.
func (p *painter) cellChunk(origin grid.Position, line, width int) string {
	pad := p.cfg.PaddingAt(origin)
	text := ""
	if origin.Row < len(p.rows) && origin.Col < len(p.rows[origin.Row]) {
		text = p.rows[origin.Row][origin.Col]
	}
	content := ""
	if i := line - pad.Top; i >= 0 {
		if lines := strings.Split(text, "\n"); i < len(lines) {
			content = lines[i]
		}
	}

	inner := width - pad.Left - pad.Right
	aligned := alignText(content, inner, p.cfg.AlignmentAt(origin), p.cfg.WidthOf)
	return strings.Repeat(" ", pad.Left) + aligned + strings.Repeat(" ", pad.Right)
}

// alignText pads content with spaces to exactly width display columns.
// Content wider than the target (possible only with a stale estimate) is
// returned unchanged.
func alignText(content string, width int, align grid.Alignment, measure func(string) int) string {
	gap := width - measure(content)
	if gap <= 0 {
		return content
	}
	switch align {
	case grid.AlignRight:
		return strings.Repeat(" ", gap) + content
	case grid.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return content + strings.Repeat(" ", gap)
	}
}

// writeGlyph writes r, or a space when the facet resolved to nothing but
// the border position still occupies a display column.
func writeGlyph(sb *strings.Builder, r rune) {
	if r == 0 {
		r = ' '
	}
	sb.WriteRune(r)
}

func writeRepeated(sb *strings.Builder, r rune, n int) {
	if r == 0 {
		r = ' '
	}
	for range n {
		sb.WriteRune(r)
	}
}
