package grid

// Position identifies a cell by zero-based (row, col) coordinates.
type Position struct {
	Row, Col int
}

// Pos is a shorthand constructor for Position.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// Shape is the authoritative grid bounds used by span validity and
// visibility checks.
type Shape struct {
	Rows, Cols int
}

// Contains reports whether p lies inside the shape.
func (s Shape) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// IsEmpty reports whether the shape has no cells.
func (s Shape) IsEmpty() bool { return s.Rows == 0 || s.Cols == 0 }
