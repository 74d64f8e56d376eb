package grid

import (
	"slices"
	"testing"
)

func TestEstimateBasic(t *testing.T) {
	records := SliceRecords{
		{"0-0", "0-1"},
		{"1-0", "1-1"},
	}
	cfg := NewConfig()
	cfg.SetBorders(asciiBorders())

	widths, heights := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{3, 3}) {
		t.Errorf("widths = %v, want [3 3]", widths)
	}
	if !slices.Equal(heights, Heights{1, 1}) {
		t.Errorf("heights = %v, want [1 1]", heights)
	}
}

func TestEstimatePadding(t *testing.T) {
	records := SliceRecords{
		{"0-0", "0-1"},
		{"1-0", "1-1"},
	}
	cfg := NewConfig()
	cfg.SetPadding(Padding{Left: 1, Right: 1, Top: 1, Bottom: 1})

	widths, heights := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{5, 5}) {
		t.Errorf("widths = %v, want [5 5]", widths)
	}
	if !slices.Equal(heights, Heights{3, 3}) {
		t.Errorf("heights = %v, want [3 3]", heights)
	}
}

func TestEstimateCellPaddingOverride(t *testing.T) {
	records := SliceRecords{{"a", "b"}}
	cfg := NewConfig()
	cfg.SetCellPadding(Pos(0, 1), Padding{Left: 2, Right: 2})

	widths, _ := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{1, 5}) {
		t.Errorf("widths = %v, want [1 5]", widths)
	}
}

func TestEstimateMultiline(t *testing.T) {
	records := SliceRecords{
		{"one\ntwo\nthree", "x"},
	}
	cfg := NewConfig()

	widths, heights := Estimate(records, cfg)
	if widths[0] != 5 {
		t.Errorf("widths[0] = %d, want 5 (widest line)", widths[0])
	}
	if heights[0] != 3 {
		t.Errorf("heights[0] = %d, want 3", heights[0])
	}
}

func TestEstimateWideRunes(t *testing.T) {
	records := SliceRecords{
		{"日本語", "ab"},
	}
	cfg := NewConfig()

	widths, _ := Estimate(records, cfg)
	if widths[0] != 6 {
		t.Errorf("widths[0] = %d, want 6 (CJK runes are double width)", widths[0])
	}
}

func TestEstimateSpanNoAdjustment(t *testing.T) {
	// The spanned cell's need (4) equals the sum of the columns beneath it
	// (1 + 3), so reconciliation leaves the widths untouched.
	records := SliceRecords{
		{"1234", ""},
		{"a", "bcd"},
	}
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), 2)

	widths, _ := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{1, 3}) {
		t.Errorf("widths = %v, want [1 3]", widths)
	}
}

func TestEstimateSpanDeficitDistribution(t *testing.T) {
	// Need 9 over two columns of width 1 each, no interior border: deficit 7
	// splits 3/3 with the remainder going to the first column.
	records := SliceRecords{
		{"123456789", ""},
		{"a", "b"},
	}
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), 2)

	widths, _ := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{5, 4}) {
		t.Errorf("widths = %v, want [5 4] (remainder to first column)", widths)
	}
	if widths.Total() < 9 {
		t.Errorf("span does not fit: total %d < 9", widths.Total())
	}
}

func TestEstimateSpanCountsInteriorBorders(t *testing.T) {
	// With a vertical split between the two columns, the span gains one
	// usable column from the swallowed border: 1 + 3 + 1 = 5 >= 5.
	records := SliceRecords{
		{"12345", ""},
		{"a", "bcd"},
	}
	cfg := NewConfig()
	cfg.SetBorders(asciiBorders())
	cfg.SetColumnSpan(Pos(0, 0), 2)

	widths, _ := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{1, 3}) {
		t.Errorf("widths = %v, want [1 3] (interior border counts as space)", widths)
	}
}

func TestEstimateSmallerSpansFirst(t *testing.T) {
	// A short span nested inside a longer one must be resolved first, so the
	// longer span sees columns the short one already widened.
	records := SliceRecords{
		{"123456", "", ""},    // span of 3, need 6
		{"12345", "", "x"},    // span of 2 over cols 0-1, need 5
		{"a", "b", "c"},
	}
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), 3)
	cfg.SetColumnSpan(Pos(1, 0), 2)

	widths, _ := Estimate(records, cfg)
	// Short span first: cols 0-1 grow from 1+1 to need 5 -> [3 2 1].
	// Long span then sees 3+2+1 = 6 = need, no further adjustment.
	if !slices.Equal(widths, Widths{3, 2, 1}) {
		t.Errorf("widths = %v, want [3 2 1]", widths)
	}
}

func TestEstimateRowSpan(t *testing.T) {
	records := SliceRecords{
		{"a\nb\nc\nd", "x"},
		{"", "y"},
	}
	cfg := NewConfig()
	cfg.SetRowSpan(Pos(0, 0), 2)

	_, heights := Estimate(records, cfg)
	// Need 4 lines over two rows of height 1: deficit 2 splits 1/1.
	if !slices.Equal(heights, Heights{2, 2}) {
		t.Errorf("heights = %v, want [2 2]", heights)
	}
}

func TestEstimateInvalidSpanFallsBack(t *testing.T) {
	// The span runs out of the grid, so the cell is measured as a plain
	// single cell. Degraded, not an error.
	records := SliceRecords{
		{"wide", "x"},
	}
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), 3)

	widths, _ := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{4, 1}) {
		t.Errorf("widths = %v, want [4 1]", widths)
	}
}

func TestEstimateHiddenCellContributesNothing(t *testing.T) {
	records := SliceRecords{
		{"ab", "this text is ignored"},
		{"c", "d"},
	}
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), 2)

	widths, _ := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{1, 1}) {
		t.Errorf("widths = %v, want [1 1] (covered cell must not contribute)", widths)
	}
}

func TestEstimateEmptyGrid(t *testing.T) {
	cfg := NewConfig()
	widths, heights := Estimate(SliceRecords{}, cfg)
	if len(widths) != 0 || len(heights) != 0 {
		t.Errorf("empty records gave widths %v heights %v", widths, heights)
	}
}

func TestEstimateShortRows(t *testing.T) {
	records := SliceRecords{
		{"aa", "bb"},
		{"c"},
	}
	cfg := NewConfig()
	widths, heights := Estimate(records, cfg)
	if !slices.Equal(widths, Widths{2, 2}) {
		t.Errorf("widths = %v, want [2 2]", widths)
	}
	if !slices.Equal(heights, Heights{1, 1}) {
		t.Errorf("heights = %v, want [1 1]", heights)
	}
}

func TestEstimateDeterminism(t *testing.T) {
	records := SliceRecords{
		{"1234", "", "x"},
		{"a", "bcd", "e"},
	}
	cfg := NewConfig()
	cfg.SetBorders(asciiBorders())
	cfg.SetColumnSpan(Pos(0, 0), 2)

	w1, h1 := Estimate(records, cfg)
	w2, h2 := Estimate(records, cfg)
	if !slices.Equal(w1, w2) || !slices.Equal(h1, h2) {
		t.Errorf("Estimate not deterministic: %v/%v vs %v/%v", w1, h1, w2, h2)
	}
}

func TestEstimateSpanConservation(t *testing.T) {
	// After reconciliation the columns under a span plus the interior
	// borders always cover the span's need.
	records := SliceRecords{
		{"span across three columns here", "", ""},
		{"a", "longer", "mid"},
	}
	cfg := NewConfig()
	cfg.SetBorders(asciiBorders())
	cfg.SetColumnSpan(Pos(0, 0), 3)

	widths, _ := Estimate(records, cfg)
	shape := Shape{Rows: 2, Cols: 3}
	need := DisplayWidth("span across three columns here")
	available := widths[0] + widths[1] + widths[2]
	for i := 1; i < 3; i++ {
		if cfg.HasVertical(i, shape) {
			available++
		}
	}
	if available < need {
		t.Errorf("conservation violated: available %d < need %d", available, need)
	}
}
