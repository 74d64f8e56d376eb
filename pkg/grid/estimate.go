package grid

import (
	"cmp"
	"slices"
)

// Widths holds per-column display widths, indexed by column.
type Widths []int

// Heights holds per-row line counts, indexed by row.
type Heights []int

// Total returns the sum of all entries.
func (w Widths) Total() int { return sum(w) }

// Total returns the sum of all entries.
func (h Heights) Total() int { return sum(h) }

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}

// pendingSpan is a spanned cell whose size requirement is reconciled against
// the columns (or rows) it straddles once the whole grid has been measured.
type pendingSpan struct {
	origin Position
	length int
	need   int
}

// Estimate computes the column widths and row heights needed to lay out
// records under cfg. It is a pure function of its inputs: the results are
// valid only for this exact content and configuration snapshot and must be
// recomputed after any change.
//
// The estimate runs in two passes. The first measures every visible cell's
// intrinsic size (widest line plus horizontal padding, line count plus
// vertical padding) and folds it into its column and row, except that cells
// carrying a valid span of length > 1 are set aside. The second pass
// reconciles those spanned cells: smaller spans first, so a larger span sees
// columns already widened by the spans it contains. A span's available space
// is the sum of the columns it straddles plus the border lines between them;
// any deficit is spread by integer division, remainder to the first column.
// That remainder rule is an arbitrary but frozen tie-break: renderers rely
// on it for byte-identical output.
//
// Invisible cells contribute nothing. A cell whose span fails the validity
// check is measured as an ordinary single cell.
func Estimate(records Records, cfg *Config) (Widths, Heights) {
	rows, shape := collect(records)
	if shape.IsEmpty() {
		return Widths{}, Heights{}
	}

	widths := make(Widths, shape.Cols)
	heights := make(Heights, shape.Rows)
	var pendingW, pendingH []pendingSpan

	for r := range shape.Rows {
		for col := range shape.Cols {
			pos := Pos(r, col)
			if !cfg.IsVisible(pos, shape) {
				continue
			}
			text := cellText(rows, pos)
			pad := cfg.PaddingAt(pos)
			w := textWidth(text, cfg.width) + pad.Left + pad.Right
			h := textHeight(text) + pad.Top + pad.Bottom

			if n, ok := cfg.ColumnSpan(pos, shape); ok && n > 1 {
				pendingW = append(pendingW, pendingSpan{origin: pos, length: n, need: w})
			} else {
				widths[col] = max(widths[col], w)
			}
			if n, ok := cfg.RowSpan(pos, shape); ok && n > 1 {
				pendingH = append(pendingH, pendingSpan{origin: pos, length: n, need: h})
			} else {
				heights[r] = max(heights[r], h)
			}
		}
	}

	reconcile(pendingW, widths, func(p pendingSpan) (int, func(int) bool) {
		return p.origin.Col, func(i int) bool { return cfg.HasVertical(i, shape) }
	})
	reconcile(pendingH, heights, func(p pendingSpan) (int, func(int) bool) {
		return p.origin.Row, func(i int) bool { return cfg.HasHorizontal(i, shape) }
	})

	return widths, heights
}

// reconcile widens sizes so every pending span fits. axis extracts the
// span's starting index and the border-existence predicate for the axis
// being reconciled.
func reconcile(pending []pendingSpan, sizes []int, axis func(pendingSpan) (int, func(int) bool)) {
	// Smaller spans first: a fully contained span must not be hidden by a
	// larger one resolving before it. Ties break by origin, row-major.
	slices.SortFunc(pending, func(a, b pendingSpan) int {
		if c := cmp.Compare(a.length, b.length); c != 0 {
			return c
		}
		if c := cmp.Compare(a.origin.Row, b.origin.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.origin.Col, b.origin.Col)
	})

	for _, p := range pending {
		start, hasBorder := axis(p)
		available := 0
		for i := start; i < start+p.length; i++ {
			available += sizes[i]
		}
		// Interior border lines swallowed by the span count as usable space.
		for i := start + 1; i < start+p.length; i++ {
			if hasBorder(i) {
				available++
			}
		}
		if available >= p.need {
			continue
		}
		deficit := p.need - available
		share, extra := deficit/p.length, deficit%p.length
		sizes[start] += share + extra
		for i := start + 1; i < start+p.length; i++ {
			sizes[i] += share
		}
	}
}
