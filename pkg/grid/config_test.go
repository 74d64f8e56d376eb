package grid

import "testing"

func TestConfigPadding(t *testing.T) {
	cfg := NewConfig()
	cfg.SetPadding(Padding{Left: 1, Right: 1})
	cfg.SetCellPadding(Pos(0, 0), Padding{Left: 3})

	if got := cfg.PaddingAt(Pos(0, 0)); got != (Padding{Left: 3}) {
		t.Errorf("cell override padding = %+v", got)
	}
	if got := cfg.PaddingAt(Pos(1, 1)); got != (Padding{Left: 1, Right: 1}) {
		t.Errorf("default padding = %+v", got)
	}
}

func TestConfigAlignment(t *testing.T) {
	cfg := NewConfig()
	cfg.SetAlignment(AlignRight)
	cfg.SetCellAlignment(Pos(0, 1), AlignCenter)

	if got := cfg.AlignmentAt(Pos(0, 1)); got != AlignCenter {
		t.Errorf("cell alignment = %v, want AlignCenter", got)
	}
	if got := cfg.AlignmentAt(Pos(2, 2)); got != AlignRight {
		t.Errorf("default alignment = %v, want AlignRight", got)
	}
}

func TestConfigEmptyBorderRemoves(t *testing.T) {
	shape := Shape{Rows: 2, Cols: 2}
	cfg := NewConfig()
	cfg.SetBorder(Pos(0, 0), Border{Top: '-'})
	if !cfg.HasHorizontal(0, shape) {
		t.Fatal("line 0 should exist")
	}
	cfg.SetBorder(Pos(0, 0), Border{})
	if cfg.HasHorizontal(0, shape) {
		t.Error("setting an empty border should remove the override")
	}
	if !cfg.Border(Pos(0, 0)).IsEmpty() {
		t.Error("override should be gone")
	}
}

func TestConfigLineOverrideAccessors(t *testing.T) {
	cfg := NewConfig()
	cfg.SetHorizontalLine(1, HLine{Main: '-'})
	if l, ok := cfg.HorizontalLine(1); !ok || l.Main != '-' {
		t.Errorf("HorizontalLine(1) = %+v, %v", l, ok)
	}
	cfg.RemoveHorizontalLine(1)
	if _, ok := cfg.HorizontalLine(1); ok {
		t.Error("line override should be removed")
	}

	cfg.SetVerticalLine(0, VLine{Main: '|'})
	if l, ok := cfg.VerticalLine(0); !ok || l.Main != '|' {
		t.Errorf("VerticalLine(0) = %+v, %v", l, ok)
	}
	cfg.SetVerticalLine(0, VLine{})
	if _, ok := cfg.VerticalLine(0); ok {
		t.Error("empty vertical line should clear the override")
	}
}

func TestConfigWidthFunc(t *testing.T) {
	cfg := NewConfig()
	cfg.SetWidthFunc(func(s string) int { return len(s) * 2 })
	if got := cfg.WidthOf("ab"); got != 4 {
		t.Errorf("WidthOf = %d, want 4", got)
	}
	cfg.SetWidthFunc(nil)
	if got := cfg.WidthOf("ab"); got != 2 {
		t.Errorf("WidthOf after reset = %d, want 2", got)
	}
}

func TestConfigNegativeSpanIgnored(t *testing.T) {
	shape := Shape{Rows: 2, Cols: 2}
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), -1)
	if _, ok := cfg.ColumnSpan(Pos(0, 0), shape); ok {
		t.Error("negative span should not be stored")
	}
}
