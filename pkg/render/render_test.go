package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridtable/pkg/grid"
)

func asciiConfig() *grid.Config {
	cfg := grid.NewConfig()
	cfg.SetBorders(grid.Borders{
		Top: '-', Bottom: '-', Left: '|', Right: '|',
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		TopIntersection: '+', BottomIntersection: '+',
		LeftIntersection: '+', RightIntersection: '+',
		Horizontal: '-', Vertical: '|', Intersection: '+',
	})
	return cfg
}

func records(rows ...[]string) grid.Records {
	return grid.SliceRecords(rows)
}

func expect(t *testing.T, got string, lines ...string) {
	t.Helper()
	want := strings.Join(lines, "\n")
	if got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextRoundTrip(t *testing.T) {
	got := Text(records(
		[]string{"0-0", "0-1"},
		[]string{"1-0", "1-1"},
	), asciiConfig())

	expect(t, got,
		"+---+---+",
		"|0-0|0-1|",
		"+---+---+",
		"|1-0|1-1|",
		"+---+---+",
	)
}

func TestTextColumnSpan(t *testing.T) {
	cfg := asciiConfig()
	cfg.SetColumnSpan(grid.Pos(0, 0), 2)

	got := Text(records(
		[]string{"title", "hidden"},
		[]string{"a", "b"},
	), cfg)

	expect(t, got,
		"+--+--+",
		"|title|",
		"+--+--+",
		"|a |b |",
		"+--+--+",
	)
}

func TestTextRowSpanAcrossBorder(t *testing.T) {
	cfg := asciiConfig()
	cfg.SetRowSpan(grid.Pos(0, 0), 2)

	got := Text(records(
		[]string{"a\nb\nc", "x"},
		[]string{"hidden", "y"},
	), cfg)

	expect(t, got,
		"+-+-+",
		"|a|x|",
		"|b+-+",
		"|c|y|",
		"+-+-+",
	)
}

func TestTextPaddingAndAlignment(t *testing.T) {
	cfg := asciiConfig()
	cfg.SetPadding(grid.Padding{Left: 1, Right: 1})
	cfg.SetAlignment(grid.AlignRight)

	got := Text(records(
		[]string{"ab", "x"},
		[]string{"c", "wide"},
	), cfg)

	expect(t, got,
		"+----+------+",
		"|  ab|     x|",
		"+----+------+",
		"|   c|  wide|",
		"+----+------+",
	)
}

func TestTextCenterAlignment(t *testing.T) {
	cfg := asciiConfig()
	cfg.SetAlignment(grid.AlignCenter)

	got := Text(records(
		[]string{"abcd"},
		[]string{"x"},
	), cfg)

	expect(t, got,
		"+----+",
		"|abcd|",
		"+----+",
		"| x  |",
		"+----+",
	)
}

func TestTextNoBorders(t *testing.T) {
	got := Text(records([]string{"a", "b"}), grid.NewConfig())
	expect(t, got, "ab")
}

func TestTextEmpty(t *testing.T) {
	if got := Text(records(), asciiConfig()); got != "" {
		t.Errorf("empty grid rendered %q, want empty string", got)
	}
}

// A per-cell box on a borderless grid frames just that cell. Glyphs on the
// far side of a boundary come from the boxed cell's facets, so both the
// left and the right edge of the box show up.
func TestTextPerCellBox(t *testing.T) {
	cfg := grid.NewConfig()
	cfg.SetBorder(grid.Pos(0, 0), grid.Border{
		Top: '-', Bottom: '-', Left: '|', Right: '|',
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
	})

	got := Text(records(
		[]string{"a", "b"},
		[]string{"c", "d"},
	), cfg)

	expect(t, got,
		"+-+ ",
		"|a|b",
		"+-+ ",
		" c d",
	)
}

// With global borders set, a per-cell override still wins on every side of
// the cell: the neighbor's resolved glyphs must not shadow the override on
// the shared right and bottom boundaries.
func TestTextPerCellBoxOverBorders(t *testing.T) {
	cfg := asciiConfig()
	cfg.SetBorder(grid.Pos(0, 0), grid.Border{
		Top: '=', Bottom: '=', Left: '#', Right: '#',
		TopLeft: '*', TopRight: '*', BottomLeft: '*', BottomRight: '*',
	})

	got := Text(records(
		[]string{"a", "b"},
		[]string{"c", "d"},
	), cfg)

	expect(t, got,
		"*=*-+",
		"#a#b|",
		"*=*-+",
		"|c|d|",
		"+-+-+",
	)
}

func TestTextMultiline(t *testing.T) {
	got := Text(records(
		[]string{"one\ntwo", "x"},
	), asciiConfig())

	expect(t, got,
		"+---+-+",
		"|one|x|",
		"|two| |",
		"+---+-+",
	)
}

func TestTextWideRunes(t *testing.T) {
	got := Text(records(
		[]string{"日本", "ab"},
	), asciiConfig())

	expect(t, got,
		"+----+--+",
		"|日本|ab|",
		"+----+--+",
	)
}

func TestTextDeterministic(t *testing.T) {
	cfg := asciiConfig()
	cfg.SetColumnSpan(grid.Pos(0, 0), 2)
	cfg.SetRowSpan(grid.Pos(1, 1), 2)

	rows := [][]string{
		{"span", ""},
		{"a", "t\nb"},
		{"c", ""},
	}
	first := Text(records(rows...), cfg)
	for range 5 {
		if got := Text(records(rows...), cfg); got != first {
			t.Fatalf("rendering not deterministic:\n%s\nvs\n%s", first, got)
		}
	}
}
