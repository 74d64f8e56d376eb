package grid

import "iter"

// Records is the read capability the layout engine needs from tabular data:
// iterate rows in order and report the column count. Rows shorter than
// ColumnCount are padded with empty cells by the consumers.
type Records interface {
	// ColumnCount reports the number of columns in the grid.
	ColumnCount() int
	// Rows iterates the rows top to bottom.
	Rows() iter.Seq[[]string]
}

// RowCounter is implemented by Records that know their row count up front.
// It is a sizing hint only; the engine works without it.
type RowCounter interface {
	RowCount() int
}

// SliceRecords adapts [][]string to Records. The column count is taken from
// the first row.
type SliceRecords [][]string

// ColumnCount implements Records.
func (s SliceRecords) ColumnCount() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rows implements Records.
func (s SliceRecords) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range s {
			if !yield(row) {
				return
			}
		}
	}
}

// RowCount implements RowCounter.
func (s SliceRecords) RowCount() int { return len(s) }

// collect materializes records into row-major form. The row count of most
// inputs is only known after a full pass, and span validity checks need the
// final shape, so the engine always works from the materialized snapshot.
func collect(records Records) ([][]string, Shape) {
	var rows [][]string
	if rc, ok := records.(RowCounter); ok {
		rows = make([][]string, 0, rc.RowCount())
	}
	for row := range records.Rows() {
		rows = append(rows, row)
	}
	return rows, Shape{Rows: len(rows), Cols: records.ColumnCount()}
}

// cellText returns the text at pos, or the empty string for short rows.
func cellText(rows [][]string, pos Position) string {
	if pos.Row >= len(rows) || pos.Col >= len(rows[pos.Row]) {
		return ""
	}
	return rows[pos.Row][pos.Col]
}
