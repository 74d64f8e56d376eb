// Package table is the high-level API for building framed text tables. It
// collects headers, rows, spans and styling, then hands layout to pkg/grid
// and painting to pkg/render.
package table

import (
	"iter"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridtable/pkg/errors"
	"github.com/matzehuels/gridtable/pkg/grid"
	"github.com/matzehuels/gridtable/pkg/render"
)

// Table accumulates content and presentation settings. Construction is
// order-independent: the grid configuration is built when String is called,
// so spans may be set before or after the header.
type Table struct {
	header      []string
	rows        [][]string
	style       Style
	headerStyle *lipgloss.Style
	alignment   grid.Alignment
	padding     grid.Padding

	colSpans   map[grid.Position]int
	rowSpans   map[grid.Position]int
	cellAlign  map[grid.Position]grid.Alignment
	highlights []highlight
}

type highlight struct {
	positions []grid.Position
	border    grid.Border
}

// New returns an empty table in the ASCII style.
func New() *Table {
	return &Table{
		style:     StyleASCII,
		colSpans:  make(map[grid.Position]int),
		rowSpans:  make(map[grid.Position]int),
		cellAlign: make(map[grid.Position]grid.Alignment),
	}
}

// SetHeader sets the header row. Data row coordinates are unaffected: row 0
// always refers to the first appended row.
func (t *Table) SetHeader(cells ...string) *Table {
	t.header = cells
	return t
}

// SetHeaderStyle sets a lipgloss style applied to each header cell before
// layout. Styled text is measured by display width, so color sequences do
// not distort column sizing.
func (t *Table) SetHeaderStyle(style lipgloss.Style) *Table {
	t.headerStyle = &style
	return t
}

// AppendRow adds one data row.
func (t *Table) AppendRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AppendRows adds several data rows.
func (t *Table) AppendRows(rows [][]string) *Table {
	t.rows = append(t.rows, rows...)
	return t
}

// SetStyle sets the border style.
func (t *Table) SetStyle(style Style) *Table {
	t.style = style
	return t
}

// SetAlignment sets the default cell alignment.
func (t *Table) SetAlignment(a grid.Alignment) *Table {
	t.alignment = a
	return t
}

// SetCellAlignment overrides the alignment of one data cell.
func (t *Table) SetCellAlignment(row, col int, a grid.Alignment) *Table {
	t.cellAlign[grid.Pos(row, col)] = a
	return t
}

// SetPadding sets the default cell padding.
func (t *Table) SetPadding(p grid.Padding) *Table {
	t.padding = p
	return t
}

// SetColumnSpan makes the data cell at (row, col) span length columns.
func (t *Table) SetColumnSpan(row, col, length int) *Table {
	t.colSpans[grid.Pos(row, col)] = length
	return t
}

// SetRowSpan makes the data cell at (row, col) span length rows.
func (t *Table) SetRowSpan(row, col, length int) *Table {
	t.rowSpans[grid.Pos(row, col)] = length
	return t
}

// Highlight frames the given data cells with border. Adjacent cells are
// clustered and framed as one region, so a rectangular block gets a single
// outline rather than a box per cell.
func (t *Table) Highlight(border grid.Border, cells ...grid.Position) *Table {
	t.highlights = append(t.highlights, highlight{positions: cells, border: border})
	return t
}

// ColumnCount reports the widest row, header included.
func (t *Table) ColumnCount() int {
	n := len(t.header)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	return n
}

// String renders the table.
func (t *Table) String() string {
	records, offset := t.records()
	cfg := t.build(offset)
	return render.Text(records, cfg)
}

// records assembles the grid rows and reports the data row offset (1 when a
// header is present).
func (t *Table) records() (grid.Records, int) {
	offset := 0
	var rows [][]string
	if len(t.header) > 0 {
		offset = 1
		header := t.header
		if t.headerStyle != nil {
			header = make([]string, len(t.header))
			for i, cell := range t.header {
				header[i] = t.headerStyle.Render(cell)
			}
		}
		rows = append(rows, header)
	}
	rows = append(rows, t.rows...)
	return paddedRecords{rows: rows, cols: t.ColumnCount()}, offset
}

// build translates the accumulated settings into a grid configuration,
// shifting data row coordinates past the header.
func (t *Table) build(offset int) *grid.Config {
	cfg := grid.NewConfig()
	cfg.SetBorders(t.style.Borders)
	cfg.SetAlignment(t.alignment)
	cfg.SetPadding(t.padding)

	if offset > 0 && t.style.HeaderLine != (grid.HLine{}) {
		cfg.SetHorizontalLine(1, t.style.HeaderLine)
	}
	for pos, n := range t.colSpans {
		cfg.SetColumnSpan(grid.Pos(pos.Row+offset, pos.Col), n)
	}
	for pos, n := range t.rowSpans {
		cfg.SetRowSpan(grid.Pos(pos.Row+offset, pos.Col), n)
	}
	for pos, a := range t.cellAlign {
		cfg.SetCellAlignment(grid.Pos(pos.Row+offset, pos.Col), a)
	}
	for _, h := range t.highlights {
		shifted := make([]grid.Position, len(h.positions))
		for i, pos := range h.positions {
			shifted[i] = grid.Pos(pos.Row+offset, pos.Col)
		}
		for pos, b := range grid.Outline(shifted, h.border) {
			cfg.SetBorder(pos, b)
		}
	}
	return cfg
}

// Validate reports the first inconsistency in the accumulated settings:
// spans shorter than 2 or placed outside the data.
func (t *Table) Validate() error {
	shape := grid.Shape{Rows: len(t.rows), Cols: t.ColumnCount()}
	for pos, n := range t.colSpans {
		if n < 2 || !shape.Contains(pos) || pos.Col+n > shape.Cols {
			return errors.New(errors.ErrCodeInvalidSpan,
				"column span of %d at row %d, column %d does not fit a %dx%d table",
				n, pos.Row, pos.Col, shape.Rows, shape.Cols)
		}
	}
	for pos, n := range t.rowSpans {
		if n < 2 || !shape.Contains(pos) || pos.Row+n > shape.Rows {
			return errors.New(errors.ErrCodeInvalidSpan,
				"row span of %d at row %d, column %d does not fit a %dx%d table",
				n, pos.Row, pos.Col, shape.Rows, shape.Cols)
		}
	}
	return nil
}

// paddedRecords serves rows under a fixed column count, padding short rows
// with empty cells.
type paddedRecords struct {
	rows [][]string
	cols int
}

func (p paddedRecords) ColumnCount() int { return p.cols }

func (p paddedRecords) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range p.rows {
			if len(row) < p.cols {
				padded := make([]string, p.cols)
				copy(padded, row)
				row = padded
			}
			if !yield(row) {
				return
			}
		}
	}
}
